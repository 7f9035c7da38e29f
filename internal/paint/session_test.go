package paint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSessionRecordsCalls(t *testing.T) {
	s := NewSession(CoordsXY{X: 32, Y: 64})
	s.SetTrackColours(
		NewRemappedImageID(0, ColourBrightRed, ColourYellow),
		NewRemappedImageID(0, ColourDarkBrown, ColourDarkBrown),
		NewImageID(0),
	)

	bb := BoundBoxXYZ{Offset: CoordsXYZ{0, 6, 0}, Length: CoordsXYZ{32, 20, 3}}
	s.AddImageAsParentRotated(DirectionEast, s.TrackColours[SchemeTrack].WithIndex(100), CoordsXYZ{0, 0, 16}, bb.WithZ(16))
	if !s.MetalASupportsPaintSetup(MetalSupportTubes, SupportPlaceCentre, 4, 16, s.TrackColours[SchemeSupports]) {
		t.Fatalf("Expected centre support to be accepted")
	}
	if s.MetalBSupportsPaintSetup(MetalSupportTubes, NumSupportPlaces, 0, 16, s.TrackColours[SchemeSupports]) {
		t.Errorf("Expected out-of-range support place to be rejected")
	}
	s.PushTunnelRotated(DirectionEast, 16, TunnelSquareFlat)
	s.SetSegmentSupportHeight(SegmentB4|SegmentC4, SupportHeightBlocked, 0)
	s.SetGeneralSupportHeight(48, SupportSlopeTrack)

	want := []Call{
		{Op: OpImage, Direction: DirectionEast, Image: 100, Colour: ColourBrightRed, Offset: CoordsXYZ{0, 0, 16}, BoundBox: BoundBoxXYZ{Offset: CoordsXYZ{0, 6, 16}, Length: CoordsXYZ{32, 20, 3}}},
		{Op: OpMetalA, SupportType: MetalSupportTubes, Place: SupportPlaceCentre, Special: 4, Height: 16, Colour: ColourDarkBrown},
		{Op: OpTunnelRotated, Direction: DirectionEast, Height: 16, Tunnel: TunnelSquareFlat},
		{Op: OpSegmentHeight, Segments: SegmentB4 | SegmentC4, Height: 0xFFFF},
		{Op: OpGeneralHeight, Height: 48, Slope: SupportSlopeTrack},
	}
	if diff := cmp.Diff(want, s.Calls); diff != "" {
		t.Errorf("Calls mismatch (-want +got):\n%s", diff)
	}

	if len(s.LeftTunnels) != 1 || s.LeftTunnels[0] != (TunnelEntry{Height: 16, Type: TunnelSquareFlat}) {
		t.Errorf("Expected one left tunnel, got %v", s.LeftTunnels)
	}
	if s.SegmentHeights[0].Height != 0xFFFF || s.SegmentHeights[1].Height != 0 {
		t.Errorf("Unexpected segment heights %v", s.SegmentHeights)
	}
	if s.CountOp(OpImage) != 1 || len(s.Images()) != 1 {
		t.Errorf("Expected one image call")
	}

	s.Reset()
	if len(s.Calls) != 0 || len(s.LeftTunnels) != 0 || s.GeneralSupport.Height != 0 {
		t.Errorf("Expected Reset to clear the session")
	}
	if s.TrackColours[SchemeTrack].Primary() != ColourBrightRed || s.MapPosition != (CoordsXY{X: 32, Y: 64}) {
		t.Errorf("Expected Reset to keep colours and position")
	}
}

func TestGeneralSupportOnlyRises(t *testing.T) {
	s := NewSession(CoordsXY{})
	s.SetGeneralSupportHeight(64, SupportSlopeTrack)
	s.SetGeneralSupportHeight(32, SupportSlopeNone)

	if s.GeneralSupport != (SupportHeight{Height: 64, Slope: SupportSlopeTrack}) {
		t.Errorf("Expected general support to stay at 64, got %v", s.GeneralSupport)
	}
	if s.CountOp(OpGeneralHeight) != 2 {
		t.Errorf("Expected both calls to be recorded")
	}
}

func TestTunnelSides(t *testing.T) {
	s := NewSession(CoordsXY{})
	for dir := Direction(0); dir < NumOrthogonalDirections; dir++ {
		s.PushTunnelRotated(dir, int32(dir)*8, TunnelSquareSlopeStart)
	}
	s.PushTunnelLeft(0, TunnelInvertedFlat)
	s.PushTunnelRight(0, TunnelInvertedFlat)
	s.SetVerticalTunnel(96)

	if len(s.LeftTunnels) != 3 || len(s.RightTunnels) != 3 {
		t.Errorf("Expected 3 tunnels per side, got %d and %d", len(s.LeftTunnels), len(s.RightTunnels))
	}
	if s.RightTunnels[1].Height != 24 {
		t.Errorf("Expected direction 3 tunnel on the right at 24, got %v", s.RightTunnels)
	}
	if s.VerticalTunnelHeight != 96 {
		t.Errorf("Expected vertical tunnel at 96, got %d", s.VerticalTunnelHeight)
	}
}

func TestTunnelInverted(t *testing.T) {
	for tt := TunnelType(0); tt < TunnelTypeCount; tt++ {
		if tt.Inverted().Inverted() != tt {
			t.Errorf("%s does not invert back to itself", tt)
		}
	}
	if TunnelSquareFlatTo25Deg.Inverted() != TunnelInvertedFlatTo25Deg {
		t.Errorf("Unexpected inverted profile for %s", TunnelSquareFlatTo25Deg)
	}
}

func TestResolvedSwapsOddDirections(t *testing.T) {
	c := Call{
		Op:        OpImage,
		Direction: DirectionNorth,
		Offset:    CoordsXYZ{1, 2, 3},
		BoundBox:  BoundBoxXYZ{Offset: CoordsXYZ{0, 6, 3}, Length: CoordsXYZ{32, 20, 3}},
	}
	off, bb := c.Resolved()
	if off != (CoordsXYZ{2, 1, 3}) {
		t.Errorf("Expected swapped offset, got %v", off)
	}
	if bb.Offset != (CoordsXYZ{6, 0, 3}) || bb.Length != (CoordsXYZ{20, 32, 3}) {
		t.Errorf("Expected swapped box, got %v", bb)
	}

	c.Direction = DirectionEast
	if off, _ := c.Resolved(); off != c.Offset {
		t.Errorf("Expected even directions to keep the offset")
	}
}
