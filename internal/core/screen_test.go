package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Expected 'X' at (3,2), got %q", got)
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Expected space for out-of-bounds read, got %q", got)
	}
}

func TestScreenColoredCell(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(1, 1, '#', ColorBrightRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '#' || cell.Color != ColorBrightRed {
		t.Errorf("Expected colored '#', got %q color %d", cell.Rune, cell.Color)
	}

	// Plain Set uses the default color
	s.Set(2, 1, '#')
	if c := s.GetCell(2, 1).Color; c != ColorDefault {
		t.Errorf("Expected default color, got %d", c)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(8, 4)
	s.Set(2, 2, 'A')

	s.Resize(12, 6)
	if got := s.Get(2, 2); got != 'A' {
		t.Errorf("Expected 'A' preserved after grow, got %q", got)
	}

	s.Resize(2, 2)
	if s.Width() != 2 || s.Height() != 2 {
		t.Errorf("Expected 2x2 after shrink, got %dx%d", s.Width(), s.Height())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	want := "abc\ndef"
	if got := s.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	if rows := strings.Count(s.String(), "\n"); rows != 1 {
		t.Errorf("Expected 1 newline, got %d", rows)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("Box corners not drawn correctly")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("Box edges not drawn correctly")
	}
}
