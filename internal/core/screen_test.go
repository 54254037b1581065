package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(38, 22)
	if s.Width() != 38 || s.Height() != 22 {
		t.Fatalf("size = %dx%d, expected 38x22", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("new screen should be blank:\n%s", s.String())
	}
}

func TestScreenOutOfBoundsIsIgnored(t *testing.T) {
	s := NewScreen(6, 4)

	for _, p := range []Vector2{V(-1, 0), V(6, 0), V(0, -1), V(0, 4)} {
		s.Set(p.X, p.Y, '█')
		if s.Get(p.X, p.Y) != ' ' {
			t.Errorf("Get(%d, %d) outside the screen should be a space", p.X, p.Y)
		}
	}
	if strings.ContainsRune(s.String(), '█') {
		t.Error("out-of-bounds writes must not land on the screen")
	}
}

func TestScreenAgentGlyphFootprint(t *testing.T) {
	tests := []struct {
		name string
		rows [2]string
	}{
		{"east", [2]string{"┌─╖", "└─╜"}},
		{"west", [2]string{"╓─┐", "╙─┘"}},
		{"solid", [2]string{"███", "███"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Cell (1,1) of a framed world starts at column 1+1*3, row 1+1*2.
			s := NewScreen(8, 6)
			for i, line := range tc.rows {
				s.DrawTextColored(4, 3+i, line, ColorBrightGreen)
			}
			for i, line := range tc.rows {
				if got := s.Row(3 + i)[4:]; !strings.HasPrefix(got, line) {
					t.Errorf("row %d = %q, expected prefix %q", 3+i, got, line)
				}
			}
			if c := s.GetCell(6, 4); c.Color != ColorBrightGreen {
				t.Errorf("glyph color = %v, expected bright green", c.Color)
			}
			if s.Get(7, 3) != ' ' {
				t.Error("a 3-column glyph must not spill into the next column")
			}
		})
	}
}

func TestScreenHUDTextClipsAtEdge(t *testing.T) {
	s := NewScreen(20, 2)
	s.DrawTextColored(0, 1, "upd 19  turn 8  move 10", ColorWhite)

	if got := s.Row(1); got != "upd 19  turn 8  move" {
		t.Errorf("Row(1) = %q, expected the HUD clipped to 20 columns", got)
	}
}

func TestScreenTooSmallMessageIsCentered(t *testing.T) {
	s := NewScreen(20, 10)
	s.DrawTextCentered(4, "Terminal too small")
	s.DrawTextCentered(5, "need 14x14")

	if got := s.Row(4); got != " Terminal too small " {
		t.Errorf("Row(4) = %q", got)
	}
	if got := s.Row(5); got != "     need 14x14     " {
		t.Errorf("Row(5) = %q", got)
	}
}

func TestScreenDrawWorldFrame(t *testing.T) {
	// A 2x1 world in box mode: 2*3+2 columns by 1*2+2 rows.
	s := NewScreen(8, 4)
	s.DrawBox(NewRect(0, 0, 8, 4), ColorGray)

	expected := strings.Join([]string{
		"┌──────┐",
		"│      │",
		"│      │",
		"└──────┘",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("frame mismatch:\ngot:\n%s\nexpected:\n%s", got, expected)
	}
	for _, p := range []Vector2{V(0, 0), V(7, 0), V(0, 3), V(7, 3), V(3, 0), V(0, 2)} {
		if c := s.GetCell(p.X, p.Y); c.Color != ColorGray {
			t.Errorf("frame cell %v color = %v, expected gray", p, c.Color)
		}
	}
	if c := s.GetCell(3, 1); c.Color != ColorDefault {
		t.Errorf("interior color = %v, expected default", c.Color)
	}
}

func TestScreenClearResetsRuneAndColor(t *testing.T) {
	s := NewScreen(6, 2)
	s.SetColored(5, 1, '█', ColorGray)
	s.DrawTextColored(1, 0, "↓", ColorBrightYellow)

	s.Clear()
	for _, p := range []Vector2{V(5, 1), V(1, 0)} {
		if c := s.GetCell(p.X, p.Y); c != (ScreenCell{Rune: ' ', Color: ColorDefault}) {
			t.Errorf("GetCell(%v) after Clear = %+v", p, c)
		}
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	// The help bar grows from one line to four: the sim screen shrinks.
	s := NewScreen(80, 23)
	s.DrawText(0, 0, "Tunnel [running]")
	s.DrawText(0, 22, "upd 0")

	s.Resize(80, 20)
	if s.Width() != 80 || s.Height() != 20 {
		t.Fatalf("size = %dx%d, expected 80x20", s.Width(), s.Height())
	}
	if !strings.HasPrefix(s.Row(0), "Tunnel [running]") {
		t.Errorf("title lost on shrink: %q", s.Row(0))
	}

	s.Resize(80, 23)
	if !strings.HasPrefix(s.Row(0), "Tunnel [running]") {
		t.Errorf("title lost on grow: %q", s.Row(0))
	}
	if strings.TrimSpace(s.Row(22)) != "" {
		t.Errorf("rows cut by a shrink come back blank, got %q", s.Row(22))
	}
	if got := s.Row(-1); got != strings.Repeat(" ", 80) {
		t.Errorf("out-of-range Row = %q, expected blanks", got)
	}
}
