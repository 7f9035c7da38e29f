package paint

import "testing"

func TestDirectionAdd(t *testing.T) {
	tests := []struct {
		dir  Direction
		n    int
		want Direction
	}{
		{DirectionWest, 1, DirectionNorth},
		{DirectionWest, -1, DirectionSouth},
		{DirectionSouth, 2, DirectionNorth},
		{DirectionEast, 3, DirectionNorth},
		{DirectionNorth, -6, DirectionSouth},
	}
	for _, tt := range tests {
		if got := tt.dir.Add(tt.n); got != tt.want {
			t.Errorf("%d.Add(%d): expected %d, got %d", tt.dir, tt.n, tt.want, got)
		}
	}
	if DirectionNorth.Reverse() != DirectionSouth {
		t.Errorf("Expected north to reverse to south")
	}
	if Direction(4).IsValid() {
		t.Errorf("Expected direction 4 to be invalid")
	}
}

func TestBoundBoxRotate(t *testing.T) {
	bb := BoundBoxXYZ{Offset: CoordsXYZ{0, 27, 0}, Length: CoordsXYZ{32, 1, 98}}

	if bb.Rotate(DirectionEast) != bb {
		t.Errorf("Expected even rotation to keep the box")
	}
	rotated := bb.Rotate(DirectionSouth)
	want := BoundBoxXYZ{Offset: CoordsXYZ{27, 0, 0}, Length: CoordsXYZ{1, 32, 98}}
	if rotated != want {
		t.Errorf("Expected %v, got %v", want, rotated)
	}

	corners := bb.GetCorners()
	if corners[0] != bb.Offset || corners[6] != (CoordsXYZ{32, 28, 98}) {
		t.Errorf("Unexpected corners %v", corners)
	}
}

func TestParseColour(t *testing.T) {
	c, err := ParseColour("bright_red")
	if err != nil || c != ColourBrightRed {
		t.Fatalf("Expected bright_red, got %v (%v)", c, err)
	}
	if c.String() != "bright_red" {
		t.Errorf("Expected name round trip, got %s", c)
	}
	if _, err := ParseColour("chartreuse"); err == nil {
		t.Errorf("Expected error for unknown colour")
	}
}
