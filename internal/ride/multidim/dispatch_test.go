package multidim

import (
	"errors"
	"testing"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"
)

func TestDispatchCoversStyle(t *testing.T) {
	reg := loadStyle(t)

	for _, typ := range track.AllElemTypes() {
		fn := GetTrackPaintFunction(typ)
		if reg.Supports(typ) && fn == nil {
			t.Errorf("Expected a paint function for %s", typ)
		}
		if !reg.Supports(typ) && fn != nil {
			t.Errorf("Expected no paint function for %s, which the style does not build", typ)
		}
	}
}

func TestDispatchUnsupported(t *testing.T) {
	unsupported := []track.ElemType{
		track.LeftVerticalLoop,
		track.RightVerticalLoop,
		track.LeftCorkscrewUp,
		track.RightCorkscrewUp,
		track.Booster,
		track.Watersplash,
		track.ElemTypeCount,
		track.ElemTypeCount + 40,
	}
	for _, typ := range unsupported {
		if GetTrackPaintFunction(typ) != nil {
			t.Errorf("Expected nil paint function for %s", typ)
		}
	}
}

func TestPaintChecksArguments(t *testing.T) {
	tests := []struct {
		name string
		typ  track.ElemType
		seq  uint8
		dir  paint.Direction
		want error
	}{
		{"unsupported piece", track.Booster, 0, 0, ErrUnsupportedPiece},
		{"sequence past end", track.Flat, 1, 0, ErrSequenceOutOfRange},
		{"large helix past end", track.LeftHalfBankedHelixUpLarge, 14, 0, ErrSequenceOutOfRange},
		{"direction out of range", track.Up25, 0, 4, ErrInvalidDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession()
			err := Paint(s, testRide, track.NewElement(tt.typ), tt.seq, tt.dir, testHeight)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if len(s.Calls) != 0 {
				t.Errorf("Expected no calls after a rejected paint, got %d", len(s.Calls))
			}
		})
	}
}

func TestPaintMatchesPaintFunction(t *testing.T) {
	el := track.NewElement(track.RightQuarterTurn5Tiles)
	el.SetSequenceIndex(3)

	checked := newTestSession()
	if err := Paint(checked, testRide, el, 3, paint.DirectionEast, testHeight); err != nil {
		t.Fatalf("Paint failed: %v", err)
	}

	raw := newTestSession()
	GetTrackPaintFunction(track.RightQuarterTurn5Tiles)(raw, testRide, 3, paint.DirectionEast, testHeight, el)

	if len(checked.Calls) == 0 || len(checked.Calls) != len(raw.Calls) {
		t.Errorf("Expected %d calls from Paint, got %d", len(raw.Calls), len(checked.Calls))
	}
}
