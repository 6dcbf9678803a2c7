package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, 'X', ColorRed)
	cell := s.GetCell(5, 5)
	if cell.Rune != 'X' || cell.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected X in red", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0) != blankCell {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.Fill('X', ColorGold)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blankCell {
				t.Fatalf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorWhite)

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorWhite)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(2, 2, 3, 3, '#', ColorBrown)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 5 && y >= 2 && y < 5
			got := s.Get(x, y)
			if inside && got != '#' {
				t.Errorf("FillRect: expected '#' at (%d, %d), got %q", x, y, got)
			}
			if !inside && got != ' ' {
				t.Errorf("FillRect: expected ' ' at (%d, %d), got %q", x, y, got)
			}
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(0, 0, 5, 4, ColorDefault)

	if s.Get(0, 0) != '┌' || s.Get(4, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(4, 3) != '┘' {
		t.Error("DrawBox corners are wrong")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("DrawBox edges are wrong")
	}
}

func TestScreenStringAndRow(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc", ColorDefault)
	s.DrawText(0, 1, "def", ColorDefault)

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}
	if got := s.Row(1); got != "def" {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(5); got != strings.Repeat(" ", 3) {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Resize(8, 2)
	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("Resize() gave %dx%d", s.Width(), s.Height())
	}
	s.Set(7, 1, 'z')
	if s.Get(7, 1) != 'z' {
		t.Error("resized buffer should be writable to its new bounds")
	}
}
