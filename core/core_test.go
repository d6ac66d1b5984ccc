package core

import "testing"

func TestNewGrid(t *testing.T) {
	g := NewGrid(600, 20)
	if g.Width != 30 || g.Height != 30 {
		t.Fatalf("Expected 30x30 grid, got %dx%d", g.Width, g.Height)
	}
	if g.Cells() != 900 {
		t.Errorf("Expected 900 cells, got %d", g.Cells())
	}
	if c := g.Center(); c != (Position{X: 15, Y: 15}) {
		t.Errorf("Expected center (15,15), got %+v", c)
	}

	if z := NewGrid(600, 0); z != (Grid{}) {
		t.Errorf("Expected zero grid for zero cell size, got %+v", z)
	}
}

func TestInBounds(t *testing.T) {
	g := Grid{Width: 30, Height: 30}

	tests := []struct {
		name string
		pos  Position
		want bool
	}{
		{"Origin", Position{0, 0}, true},
		{"Far corner", Position{29, 29}, true},
		{"Left wall", Position{-1, 5}, false},
		{"Right wall", Position{30, 5}, false},
		{"Top wall", Position{5, -1}, false},
		{"Bottom wall", Position{5, 30}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.InBounds(tt.pos); got != tt.want {
				t.Errorf("InBounds(%+v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestIsOccupiedBySnake(t *testing.T) {
	body := []Position{{5, 5}, {4, 5}, {3, 5}}

	if !IsOccupiedBySnake(Position{4, 5}, body) {
		t.Error("Expected (4,5) to be occupied")
	}
	if IsOccupiedBySnake(Position{6, 5}, body) {
		t.Error("Expected (6,5) to be free")
	}
	if IsOccupiedBySnake(Position{0, 0}, nil) {
		t.Error("Expected empty snake to occupy nothing")
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		dir      Direction
		dx, dy   int
		opposite Direction
		name     string
	}{
		{DirUp, 0, -1, DirDown, "UP"},
		{DirDown, 0, 1, DirUp, "DOWN"},
		{DirLeft, -1, 0, DirRight, "LEFT"},
		{DirRight, 1, 0, DirLeft, "RIGHT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("Delta() = (%d,%d), want (%d,%d)", dx, dy, tt.dx, tt.dy)
			}
			if tt.dir.Opposite() != tt.opposite {
				t.Errorf("Opposite() = %s, want %s", tt.dir.Opposite(), tt.opposite)
			}
			if tt.dir.String() != tt.name {
				t.Errorf("String() = %s, want %s", tt.dir.String(), tt.name)
			}
			parsed, err := ParseDirection(tt.name)
			if err != nil || parsed != tt.dir {
				t.Errorf("ParseDirection(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}

	if _, err := ParseDirection("diagonal"); err == nil {
		t.Error("Expected error for unknown direction")
	}
}

func TestStep(t *testing.T) {
	p := Position{X: 5, Y: 5}
	if got := p.Step(DirRight); got != (Position{6, 5}) {
		t.Errorf("Step(Right) = %+v", got)
	}
	if got := p.Step(DirUp); got != (Position{5, 4}) {
		t.Errorf("Step(Up) = %+v", got)
	}
}

func TestParseHexRGB(t *testing.T) {
	c, err := ParseHexRGB("#ff6b6b")
	if err != nil {
		t.Fatalf("ParseHexRGB failed: %v", err)
	}
	if c != (RGB{255, 107, 107}) {
		t.Errorf("Unexpected color %+v", c)
	}
	if c.Hex() != "#ff6b6b" {
		t.Errorf("Hex() = %s", c.Hex())
	}

	for _, bad := range []string{"", "#fff", "#gggggg", "ff6b6b00"} {
		if _, err := ParseHexRGB(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestBlend(t *testing.T) {
	c := RGBBlack.Blend(RGBWhite, 0.5)
	if c.R != 127 || c.G != 127 || c.B != 127 {
		t.Errorf("Expected mid gray, got %+v", c)
	}
	if RGBBlack.Blend(RGBWhite, 0) != RGBBlack {
		t.Error("alpha 0 should keep destination")
	}
	if RGBBlack.Blend(RGBWhite, 2) != RGBWhite {
		t.Error("alpha >= 1 should return source")
	}
}
