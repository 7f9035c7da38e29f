package ride

import (
	"testing"

	"coasterpaint/internal/config"
	"coasterpaint/internal/paint"
)

func TestApplyColours(t *testing.T) {
	r := New(7, "Test Coaster", TrackColour{
		Main:       paint.ColourBrightRed,
		Additional: paint.ColourYellow,
		Supports:   paint.ColourDarkBrown,
	})
	s := paint.NewSession(paint.CoordsXY{})
	r.ApplyColours(s)

	track := s.TrackColours[paint.SchemeTrack]
	if !track.IsRemapped() || track.Primary() != paint.ColourBrightRed || track.Secondary() != paint.ColourYellow {
		t.Errorf("Unexpected track colours %s", track)
	}
	if s.TrackColours[paint.SchemeSupports].Primary() != paint.ColourDarkBrown {
		t.Errorf("Unexpected support colours %s", s.TrackColours[paint.SchemeSupports])
	}
	if s.Fences == nil {
		t.Errorf("Expected the ride to become the fence checker")
	}
}

func TestStations(t *testing.T) {
	r := New(1, "Test", TrackColour{})
	first := r.AddStation(Station{Start: paint.CoordsXY{X: 64, Y: 64}, Direction: paint.DirectionEast, Length: 3})
	second := r.AddStation(Station{Start: paint.CoordsXY{X: 64, Y: 96}, Direction: paint.DirectionEast, Length: 2})
	if first != 0 || second != 1 {
		t.Fatalf("Expected station indices 0 and 1, got %d and %d", first, second)
	}

	tests := []struct {
		pos   paint.CoordsXY
		index uint8
		ok    bool
	}{
		{paint.CoordsXY{X: 64, Y: 64}, 0, true},
		{paint.CoordsXY{X: 128, Y: 64}, 0, true},
		{paint.CoordsXY{X: 160, Y: 64}, 0, false},
		{paint.CoordsXY{X: 96, Y: 96}, 1, true},
		{paint.CoordsXY{X: 32, Y: 64}, 0, false},
	}
	for _, tt := range tests {
		index, ok := r.StationAt(tt.pos)
		if ok != tt.ok || (ok && index != tt.index) {
			t.Errorf("StationAt(%v) = %d, %v; expected %d, %v", tt.pos, index, ok, tt.index, tt.ok)
		}
	}
}

func TestHasStationFence(t *testing.T) {
	r := New(1, "Test", TrackColour{})
	r.AddStation(Station{
		Start:     paint.CoordsXY{X: 0, Y: 0},
		Direction: paint.DirectionEast,
		Length:    3,
		Entrance:  &paint.CoordsXY{X: 32, Y: 32},
		Exit:      &paint.CoordsXY{X: 64, Y: -32},
	})
	r.AddStation(Station{Start: paint.CoordsXY{X: 0, Y: 96}, Direction: paint.DirectionEast, Length: 2})

	tests := []struct {
		name    string
		pos     paint.CoordsXY
		edge    paint.Direction
		station uint8
		fence   bool
	}{
		{"entrance side", paint.CoordsXY{X: 32, Y: 0}, paint.DirectionNorth, 0, false},
		{"opposite the entrance", paint.CoordsXY{X: 32, Y: 0}, paint.DirectionSouth, 0, true},
		{"exit side", paint.CoordsXY{X: 64, Y: 0}, paint.DirectionSouth, 0, false},
		{"long side without access", paint.CoordsXY{X: 0, Y: 0}, paint.DirectionNorth, 0, true},
		{"next platform tile", paint.CoordsXY{X: 0, Y: 0}, paint.DirectionEast, 0, true},
		{"station without buildings", paint.CoordsXY{X: 0, Y: 96}, paint.DirectionNorth, 1, true},
		{"other station's entrance", paint.CoordsXY{X: 32, Y: 0}, paint.DirectionNorth, 1, true},
		{"unknown station", paint.CoordsXY{X: 32, Y: 0}, paint.DirectionNorth, 5, true},
	}
	for _, tt := range tests {
		if got := r.HasStationFence(tt.pos, tt.edge, tt.station); got != tt.fence {
			t.Errorf("%s: HasStationFence(%v, %d, %d) = %v, expected %v", tt.name, tt.pos, tt.edge, tt.station, got, tt.fence)
		}
	}
}

func TestStationPlatformFences(t *testing.T) {
	r := New(1, "Test", TrackColour{})
	idx := r.AddStation(Station{
		Start:     paint.CoordsXY{X: 64, Y: 64},
		Direction: paint.DirectionEast,
		Length:    1,
		Entrance:  &paint.CoordsXY{X: 64, Y: 96},
	})

	s := paint.NewSession(paint.CoordsXY{X: 64, Y: 64})
	r.ApplyColours(s)
	s.DrawStationPlatforms(paint.DirectionEast, 80, 112, idx)

	fences := 0
	for _, c := range s.Images() {
		if c.Image == paint.SprStationFenceSW {
			fences++
		}
	}
	if fences != 1 {
		t.Errorf("Expected one fence beside the entrance platform, got %d", fences)
	}
}

func TestNewFromConfig(t *testing.T) {
	r, err := NewFromConfig(3, "Configured", config.PaintConfig{
		TrackColour:    "teal",
		SupportsColour: "black",
		MiscColour:     "white",
	})
	if err != nil {
		t.Fatalf("Failed to build ride: %v", err)
	}
	expected := TrackColour{Main: paint.ColourTeal, Additional: paint.ColourWhite, Supports: paint.ColourBlack}
	if r.Colours != expected {
		t.Errorf("Expected colours %+v, got %+v", expected, r.Colours)
	}

	if _, err := NewFromConfig(3, "Broken", config.PaintConfig{TrackColour: "plaid"}); err == nil {
		t.Errorf("Expected an error for an unknown colour")
	}
}
