package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, '●', ColorRed)
	if c := s.GetCell(3, 2); c.Rune != '●' || c.Color != ColorRed {
		t.Errorf("GetCell(3, 2) = %+v", c)
	}

	s.Set(4, 2, 'x')
	if c := s.GetCell(4, 2); c.Color != ColorDefault {
		t.Errorf("Set should leave the default color, got %v", c.Color)
	}

	// Out of bounds writes are ignored
	s.SetColored(-1, 0, 'A', ColorBlue)
	s.SetColored(10, 0, 'A', ColorBlue)
	s.SetColored(0, 5, 'A', ColorBlue)
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.FillRect(NewRect(0, 0, 6, 3), '#', ColorGreen)
	s.Clear()
	if got := s.String(); got != strings.Repeat(" ", 6)+"\n"+strings.Repeat(" ", 6)+"\n"+strings.Repeat(" ", 6) {
		t.Errorf("Clear left %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColored(7, 0, "Score", ColorGold)

	if got := s.Row(0); got != "       Sco" {
		t.Errorf("Row(0) = %q", got)
	}
	if c := s.GetCell(8, 0); c.Color != ColorGold {
		t.Errorf("text color = %v", c.Color)
	}

	s.DrawTextCentered(1, "ab", ColorDefault)
	if got := s.Row(1); got != "    ab    " {
		t.Errorf("centered Row(1) = %q", got)
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(0, 0, "●○●")
	if got := s.Row(0); got != "●○●  " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGray)

	want := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, line := range want {
		if got := s.Row(y); got != line {
			t.Errorf("Row(%d) = %q, expected %q", y, got, line)
		}
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box should use the given color")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'x')
	s.Resize(8, 2)

	if s.Width() != 8 || s.Height() != 2 {
		t.Errorf("size after resize = %dx%d", s.Width(), s.Height())
	}
	if s.Get(1, 1) != ' ' {
		t.Error("resize should clear content")
	}

	s.Resize(-3, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should collapse to 0, got %d %q", s.Width(), s.String())
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q", got)
	}
}
