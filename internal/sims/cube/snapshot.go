package cube

// Snapshot captures the read-only per-frame state handed to external
// collaborators: the current angles and speeds for title display.
type Snapshot struct {
	Theta      float64
	Sigma      float64
	ThetaSpeed float64
	SigmaSpeed float64
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Theta:      e.theta,
		Sigma:      e.sigma,
		ThetaSpeed: e.thetaSpeed,
		SigmaSpeed: e.sigmaSpeed,
	}
}
