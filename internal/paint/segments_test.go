package paint

import "testing"

func TestRotateSegments(t *testing.T) {
	tests := []struct {
		name     string
		segments uint16
		dir      Direction
		want     uint16
	}{
		{"identity", SegmentB4 | SegmentC4, DirectionWest, SegmentB4 | SegmentC4},
		{"corner quarter turn", SegmentB4, DirectionNorth, SegmentBC},
		{"corner half turn", SegmentB4, DirectionEast, SegmentC0},
		{"corner three quarters", SegmentB4, DirectionSouth, SegmentB8},
		{"edge wraps", SegmentC8, DirectionNorth, SegmentCC},
		{"centre untouched", SegmentC4, DirectionSouth, SegmentC4},
		{"all stays all", SegmentsAll, DirectionEast, SegmentsAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RotateSegments(tt.segments, tt.dir); got != tt.want {
				t.Errorf("Expected %#x, got %#x", tt.want, got)
			}
		})
	}
}

func TestRotateSegmentsFullTurn(t *testing.T) {
	for mask := uint16(0); mask <= SegmentsAll; mask++ {
		got := mask
		for i := 0; i < 4; i++ {
			got = RotateSegments(got, DirectionNorth)
		}
		if got != mask {
			t.Fatalf("Four quarter turns of %#x gave %#x", mask, got)
		}
	}
}

func TestShouldPaintSupports(t *testing.T) {
	tests := []struct {
		pos  CoordsXY
		want bool
	}{
		{CoordsXY{0, 0}, true},
		{CoordsXY{32, 0}, false},
		{CoordsXY{0, 32}, false},
		{CoordsXY{32, 32}, true},
		{CoordsXY{95, 64}, true},
	}
	for _, tt := range tests {
		if got := ShouldPaintSupports(tt.pos); got != tt.want {
			t.Errorf("At %v: expected %v, got %v", tt.pos, tt.want, got)
		}
	}
}
