package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(10, 5)

	if s.Width() != 10 {
		t.Errorf("Width() = %d, want 10", s.Width())
	}
	if s.Height() != 5 {
		t.Errorf("Height() = %d, want 5", s.Height())
	}

	// All cells should start as spaces
	for y := 0; y < 5; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("cell (%d,%d) = %q, want space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if s.Get(3, 2) != '#' {
		t.Errorf("Get(3,2) = %q, want #", s.Get(3, 2))
	}

	// Out of bounds writes are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestSetCellColor(t *testing.T) {
	s := NewScreen(4, 2)

	s.SetCell(1, 1, '@', ColorOrange)

	cell := s.GetCell(1, 1)
	if cell.Rune != '@' {
		t.Errorf("GetCell rune = %q, want @", cell.Rune)
	}
	if cell.Color != ColorOrange {
		t.Errorf("GetCell color = %d, want ColorOrange", cell.Color)
	}

	// Plain Set writes in the default color
	s.Set(1, 1, '*')
	if got := s.GetCell(1, 1).Color; got != ColorDefault {
		t.Errorf("Set should reset color, got %d", got)
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText failed, row = %q", s.Row(1))
	}

	// Clipped at the right edge
	s.DrawText(8, 0, "abc")
	if s.Get(8, 0) != 'a' || s.Get(9, 0) != 'b' {
		t.Errorf("DrawText clipping failed, row = %q", s.Row(0))
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "ab")

	if s.Get(4, 0) != 'a' || s.Get(5, 0) != 'b' {
		t.Errorf("DrawTextCentered misplaced, row = %q", s.Row(0))
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(Rect{X: 0, Y: 0, W: 6, H: 4})

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' {
		t.Error("top corners wrong")
	}
	if s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("bottom corners wrong")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("edges wrong")
	}
}

func TestResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.Set(1, 1, 'x')

	s.Resize(8, 5)
	if s.Width() != 8 || s.Height() != 5 {
		t.Errorf("Resize dims = %dx%d, want 8x5", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'x' {
		t.Error("Resize should preserve existing content")
	}

	// Shrinking clips
	s.Resize(2, 2)
	if s.Get(1, 1) != 'x' {
		t.Error("content inside new bounds should survive shrink")
	}
}

func TestString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() should have 1 newline, got %d", strings.Count(got, "\n"))
	}
}

func TestRowOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, want 4 spaces", got)
	}
	if got := s.Row(2); got != "    " {
		t.Errorf("Row(2) = %q, want 4 spaces", got)
	}
}
