package multidim

import (
	"testing"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

const testHeight = 80

const styleFile = "../../../assets/multi_dimension.yaml"

var testRide = ride.New(1, "Test Coaster", ride.TrackColour{
	Main:       paint.ColourBrightRed,
	Additional: paint.ColourYellow,
	Supports:   paint.ColourDarkBrown,
})

type paintCase struct {
	typ      track.ElemType
	seq      uint8
	dir      paint.Direction
	inverted bool
	chain    bool
	closed   bool
	photo    bool
}

func (c paintCase) element() *track.Element {
	el := track.NewElement(c.typ)
	el.SetSequenceIndex(c.seq)
	el.SetInverted(c.inverted)
	el.SetHasChain(c.chain)
	el.SetBlockBrakeClosed(c.closed)
	el.SetTakingPhoto(c.photo)
	return el
}

func loadStyle(t *testing.T) *track.StyleRegistry {
	t.Helper()
	reg := track.NewStyleRegistry()
	if err := reg.LoadStyleFile(styleFile); err != nil {
		t.Fatalf("Failed to load style file: %v", err)
	}
	return reg
}

// allCases lists every tile the style can draw with each flag combination
// that selects different sprites.
func allCases(reg *track.StyleRegistry) []paintCase {
	var cases []paintCase
	for _, typ := range reg.Pieces() {
		variants := []paintCase{{}}
		if reg.HasChainVariant(typ) {
			variants = append(variants, paintCase{chain: true})
		}
		if reg.IsInvertible(typ) {
			variants = append(variants, paintCase{inverted: true})
		}
		if typ == track.EndStation || typ == track.BlockBrakes {
			variants = append(variants, paintCase{closed: true})
		}
		if typ == track.OnRidePhoto {
			variants = append(variants, paintCase{photo: true})
		}
		for seq := uint8(0); seq < track.SequenceCount(typ); seq++ {
			for dir := paint.Direction(0); dir < paint.NumOrthogonalDirections; dir++ {
				for _, v := range variants {
					v.typ, v.seq, v.dir = typ, seq, dir
					cases = append(cases, v)
				}
			}
		}
	}
	return cases
}

func newTestSession() *paint.Session {
	s := paint.NewSession(paint.CoordsXY{X: 64, Y: 64})
	testRide.ApplyColours(s)
	return s
}

func paintCaseWith(fn PaintFunction, c paintCase) *paint.Session {
	s := newTestSession()
	fn(s, testRide, c.seq, c.dir, testHeight, c.element())
	return s
}

func imageIndices(s *paint.Session) []paint.ImageIndex {
	var ids []paint.ImageIndex
	for _, c := range s.Images() {
		ids = append(ids, c.Image)
	}
	return ids
}
