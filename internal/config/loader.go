package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLife loads Game of Life configuration.
// Search order: customPath -> ~/.tui-sims/configs/life.yaml -> ./configs/life.yaml -> embedded default
func LoadLife(customPath string) (LifeConfig, error) {
	var cfg LifeConfig
	if done, err := loadInto("life.yaml", customPath, &cfg); done {
		return cfg, err
	}
	if err := yaml.Unmarshal(defaultLifeYAML, &cfg); err != nil {
		return DefaultLifeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.tui-sims/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig
	if done, err := loadInto("snake.yaml", customPath, &cfg); done {
		return cfg, err
	}
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil
	}
	return cfg, nil
}

// LoadCube loads cube configuration.
// Search order: customPath -> ~/.tui-sims/configs/cube.yaml -> ./configs/cube.yaml -> embedded default
func LoadCube(customPath string) (CubeConfig, error) {
	var cfg CubeConfig
	if done, err := loadInto("cube.yaml", customPath, &cfg); done {
		return cfg, err
	}
	if err := yaml.Unmarshal(defaultCubeYAML, &cfg); err != nil {
		return DefaultCubeConfig(), nil
	}
	return cfg, nil
}

// loadInto tries the custom path, then the user config directory, then the
// local configs directory. Returns done=true when a file was decoded (or the
// custom path failed, which is a hard error).
func loadInto(name, customPath string, out any) (bool, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return true, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return true, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return true, nil
	}

	if userPath := userConfigPath(name); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return true, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", name)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return true, nil
		}
	}

	return false, nil
}

// userConfigPath returns the per-user config path for the given file name,
// or "" if the home directory cannot be determined.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-sims", "configs", name)
}
