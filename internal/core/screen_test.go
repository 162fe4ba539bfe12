package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	s.SetColored(4, 2, '█', ColorBrightCyan)
	cell := s.GetCell(4, 2)
	if cell.Rune != '█' || cell.Color != ColorBrightCyan {
		t.Errorf("GetCell(4, 2) = %+v, expected bright cyan block", cell)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// Writes outside the buffer are dropped, reads return a blank cell.
	s.Set(-1, 0, 'X')
	s.Set(10, 0, 'X')
	s.Set(0, -1, 'X')
	s.Set(0, 5, 'X')

	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
	if !strings.Contains(s.String(), strings.Repeat(" ", 10)) {
		t.Error("Screen should remain blank after out-of-bounds writes")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(3, 2, 'X', ColorRed)

	s.Clear()

	cell := s.GetCell(3, 2)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear should reset cells, got %+v", cell)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'A')
	s.Set(9, 4, 'B')

	s.Resize(6, 4)

	if s.Width() != 6 || s.Height() != 4 {
		t.Errorf("Size = %dx%d, expected 6x4", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'A' {
		t.Error("In-range content should survive a shrink")
	}

	s.Resize(12, 8)
	if s.Get(2, 2) != 'A' {
		t.Error("Content should survive a grow")
	}
	if s.Get(9, 4) != ' ' {
		t.Error("Content dropped by a shrink should not reappear")
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if s.Row(1) != "  hello   " {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), "  hello   ")
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if s.Row(0) != "        ab" {
		t.Errorf("Row(0) = %q, expected %q", s.Row(0), "        ab")
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)
	s.DrawTextCentered(1, "abc")
	if s.Row(1) != "    abc    " {
		t.Errorf("Row(1) = %q, expected %q", s.Row(1), "    abc    ")
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("Box corners missing")
	}
	if s.Get(3, 1) != '─' || s.Get(3, 4) != '─' {
		t.Error("Box horizontal edges missing")
	}
	if s.Get(1, 2) != '│' || s.Get(5, 3) != '│' {
		t.Error("Box vertical edges missing")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("Box interior should remain empty")
	}
}

func TestDrawHLineVLine(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawHLine(2, 1, 5, '─')
	for x := 2; x < 7; x++ {
		if s.Get(x, 1) != '─' {
			t.Errorf("DrawHLine missing rune at (%d, 1)", x)
		}
	}
	if s.Get(7, 1) != ' ' {
		t.Error("DrawHLine should stop after its length")
	}

	s.DrawVLine(3, 2, 4, '│')
	for y := 2; y < 6; y++ {
		if s.Get(3, y) != '│' {
			t.Errorf("DrawVLine missing rune at (3, %d)", y)
		}
	}
	if s.Get(3, 6) != ' ' {
		t.Error("DrawVLine should stop after its length")
	}

	// Clipped at the bottom edge, no panic
	s.DrawVLine(0, 8, 5, '│')
	if s.Get(0, 9) != '│' {
		t.Error("DrawVLine should draw the in-bounds part of a clipped line")
	}
}

func TestDrawLine(t *testing.T) {
	s := NewScreen(10, 10)

	// Horizontal
	s.DrawLine(1, 1, 5, 1, '•', ColorCyan)
	for x := 1; x <= 5; x++ {
		if s.Get(x, 1) != '•' {
			t.Errorf("Horizontal line missing point at (%d, 1)", x)
		}
	}

	// Diagonal hits both endpoints and exactly one cell per column
	s.Clear()
	s.DrawLine(0, 0, 4, 4, '•', ColorCyan)
	for i := 0; i <= 4; i++ {
		if s.Get(i, i) != '•' {
			t.Errorf("Diagonal line missing point at (%d, %d)", i, i)
		}
	}

	// Endpoint order does not matter
	s.Clear()
	s.DrawLine(4, 2, 0, 2, '•', ColorCyan)
	for x := 0; x <= 4; x++ {
		if s.Get(x, 2) != '•' {
			t.Errorf("Reversed line missing point at (%d, 2)", x)
		}
	}
}

func TestDrawLineColor(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawLine(0, 0, 3, 0, '•', ColorRed)
	if cell := s.GetCell(2, 0); cell.Color != ColorRed {
		t.Errorf("Line cell color = %d, expected red", cell.Color)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q, expected %q", got, "a  \n  b")
	}
}

func TestRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if s.Row(-1) != "    " || s.Row(2) != "    " {
		t.Error("Out-of-bounds Row should return a blank row")
	}
}
