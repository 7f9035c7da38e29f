package multidim

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"
)

func TestFlatRotationOne(t *testing.T) {
	s := paint.NewSession(paint.CoordsXY{})
	paintFlat(s, testRide, 0, paint.DirectionNorth, 80, track.NewElement(track.Flat))

	want := []paint.Call{
		{
			Op:        paint.OpImage,
			Direction: paint.DirectionNorth,
			Image:     15807,
			Offset:    paint.CoordsXYZ{X: 0, Y: 0, Z: 80},
			BoundBox: paint.BoundBoxXYZ{
				Offset: paint.CoordsXYZ{X: 0, Y: 6, Z: 80},
				Length: paint.CoordsXYZ{X: 32, Y: 20, Z: 3},
			},
		},
		{Op: paint.OpMetalA, SupportType: paint.MetalSupportTubes, Place: 4, Special: 0, Height: 80},
		{Op: paint.OpTunnelRotated, Direction: paint.DirectionNorth, Height: 80, Tunnel: paint.TunnelSquareFlat},
		{Op: paint.OpSegmentHeight, Segments: paint.SegmentsAll, Height: 0xFFFF, Slope: 0},
		{Op: paint.OpGeneralHeight, Height: 112, Slope: 0x20},
	}
	if diff := cmp.Diff(want, s.Calls); diff != "" {
		t.Errorf("Flat at rotation 1 mismatch (-want +got):\n%s", diff)
	}
	if len(s.RightTunnels) != 1 || len(s.LeftTunnels) != 0 {
		t.Errorf("Expected one right tunnel, got left=%v right=%v", s.LeftTunnels, s.RightTunnels)
	}
	if s.GeneralSupport.Height != 112 {
		t.Errorf("Expected general support 112, got %d", s.GeneralSupport.Height)
	}
}

func TestFlatSpriteSets(t *testing.T) {
	tests := []struct {
		name string
		c    paintCase
		want paint.ImageIndex
	}{
		{"normal even", paintCase{typ: track.Flat, dir: 2}, 15806},
		{"normal odd", paintCase{typ: track.Flat, dir: 3}, 15807},
		{"chain", paintCase{typ: track.Flat, dir: 0, chain: true}, 15808},
		{"chain odd", paintCase{typ: track.Flat, dir: 1, chain: true}, 15809},
		{"inverted", paintCase{typ: track.Flat, dir: 0, inverted: true}, 26227},
		{"inverted ignores chain", paintCase{typ: track.Flat, dir: 1, inverted: true, chain: true}, 26228},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := paintCaseWith(paintFlat, tt.c)
			ids := imageIndices(s)
			if len(ids) != 1 || ids[0] != tt.want {
				t.Errorf("Expected sprite %d, got %v", tt.want, ids)
			}
		})
	}
}

func TestPaintIsDeterministic(t *testing.T) {
	for _, c := range allCases(loadStyle(t)) {
		fn := GetTrackPaintFunction(c.typ)
		first := paintCaseWith(fn, c)
		second := paintCaseWith(fn, c)
		if diff := cmp.Diff(first.Calls, second.Calls); diff != "" {
			t.Fatalf("%s seq %d dir %d painted differently twice:\n%s", c.typ, c.seq, c.dir, diff)
		}
	}
}

var allowedTunnelDeltas = map[int32]bool{0: true, 8: true, -8: true, 24: true, 32: true, 36: true, 48: true, 56: true}

func TestCallBounds(t *testing.T) {
	for _, c := range allCases(loadStyle(t)) {
		s := paintCaseWith(GetTrackPaintFunction(c.typ), c)
		name := c.typ.String()

		if n := s.CountOp(paint.OpSegmentHeight); n != 1 {
			t.Errorf("%s seq %d dir %d: expected one segment update, got %d", name, c.seq, c.dir, n)
		}
		if n := s.CountOp(paint.OpGeneralHeight); n != 1 {
			t.Errorf("%s seq %d dir %d: expected one general support update, got %d", name, c.seq, c.dir, n)
		}

		tunnels := 0
		for _, call := range s.Calls {
			switch call.Op {
			case paint.OpSegmentHeight:
				if call.Segments&^paint.SegmentsAll != 0 {
					t.Errorf("%s seq %d dir %d: unknown segment bits %#x", name, c.seq, c.dir, call.Segments)
				}
				if call.Height != int32(paint.SupportHeightBlocked) || call.Slope != 0 {
					t.Errorf("%s seq %d dir %d: unexpected segment height %d/%d", name, c.seq, c.dir, call.Height, call.Slope)
				}
			case paint.OpGeneralHeight:
				if call.Slope != paint.SupportSlopeTrack || call.Height <= testHeight {
					t.Errorf("%s seq %d dir %d: unexpected general support %d/%#x", name, c.seq, c.dir, call.Height, call.Slope)
				}
			case paint.OpTunnelRotated, paint.OpTunnelLeft, paint.OpTunnelRight:
				tunnels++
				if !allowedTunnelDeltas[call.Height-testHeight] {
					t.Errorf("%s seq %d dir %d: tunnel at unexpected offset %d", name, c.seq, c.dir, call.Height-testHeight)
				}
			case paint.OpVerticalTunnel:
				tunnels++
			}
		}
		if tunnels > 1 {
			t.Errorf("%s seq %d dir %d: expected at most one tunnel, got %d", name, c.seq, c.dir, tunnels)
		}

		if track.IsStation(c.typ) || c.typ == track.OnRidePhoto {
			continue
		}
		if n := len(s.Images()); n > 2 {
			t.Errorf("%s seq %d dir %d: expected at most two sprites, got %d", name, c.seq, c.dir, n)
		}
		if n := s.CountOp(paint.OpMetalA) + s.CountOp(paint.OpMetalB); n > 1 {
			t.Errorf("%s seq %d dir %d: expected at most one support, got %d", name, c.seq, c.dir, n)
		}
	}
}

func TestInversionKeepsCallShape(t *testing.T) {
	reg := loadStyle(t)
	for _, c := range allCases(reg) {
		if c.inverted || c.chain || c.closed || c.photo || !reg.IsInvertible(c.typ) {
			continue
		}
		fn := GetTrackPaintFunction(c.typ)
		normal := paintCaseWith(fn, c)
		inv := c
		inv.inverted = true
		inverted := paintCaseWith(fn, inv)

		if len(normal.Calls) != len(inverted.Calls) {
			t.Errorf("%s seq %d dir %d: %d calls upright, %d inverted", c.typ, c.seq, c.dir, len(normal.Calls), len(inverted.Calls))
			continue
		}
		changed := false
		for i := range normal.Calls {
			a, b := normal.Calls[i], inverted.Calls[i]
			if a.Op != b.Op {
				t.Errorf("%s seq %d dir %d: call %d is %s upright but %s inverted", c.typ, c.seq, c.dir, i, a.Op, b.Op)
			}
			if a.Op == paint.OpImage && a.Image != b.Image {
				changed = true
			}
		}
		if len(normal.Images()) > 0 && !changed {
			t.Errorf("%s seq %d dir %d: inverted track reuses the upright sprites", c.typ, c.seq, c.dir)
		}
	}
}

func TestInvertedFlatOffsets(t *testing.T) {
	s := paintCaseWith(paintUp25, paintCase{typ: track.Up25, dir: 1, inverted: true})

	img := s.Images()[0]
	if img.Offset.Z != testHeight+24 || img.BoundBox.Offset.Z != testHeight+22 {
		t.Errorf("Expected inverted sprite at z %d with box at %d, got %d and %d",
			testHeight+24, testHeight+22, img.Offset.Z, img.BoundBox.Offset.Z)
	}
	for _, call := range s.Calls {
		switch call.Op {
		case paint.OpMetalA:
			if call.SupportType != paint.MetalSupportTubesInverted || call.Height != testHeight+36 {
				t.Errorf("Expected inverted tubes at %d, got %s at %d", testHeight+36, call.SupportType, call.Height)
			}
		case paint.OpTunnelRotated:
			if call.Tunnel != paint.TunnelInvertedSlopeEnd {
				t.Errorf("Expected inverted slope end tunnel, got %s", call.Tunnel)
			}
		}
	}
	if s.GeneralSupport.Height != testHeight+56+16 {
		t.Errorf("Expected clearance %d, got %d", testHeight+56+16, s.GeneralSupport.Height)
	}
}

func TestFillerTilesOnlyClaimSpace(t *testing.T) {
	fillers := []paintCase{
		{typ: track.LeftQuarterTurn5Tiles, seq: 1},
		{typ: track.LeftQuarterTurn5Tiles, seq: 4},
		{typ: track.LeftQuarterTurn3Tiles, seq: 1},
		{typ: track.LeftHalfBankedHelixUpLarge, seq: 11},
		{typ: track.LeftEighthToDiag, seq: 3},
		{typ: track.Up90, seq: 1},
	}
	for _, c := range fillers {
		for dir := paint.Direction(0); dir < paint.NumOrthogonalDirections; dir++ {
			c.dir = dir
			s := paintCaseWith(GetTrackPaintFunction(c.typ), c)
			if len(s.Calls) != 2 {
				t.Errorf("%s seq %d dir %d: expected only height calls, got %v", c.typ, c.seq, dir, s.Calls)
			}
		}
	}
}

func TestDiagonalDrawsOneDirectionPerTile(t *testing.T) {
	drawing := [4]paint.Direction{3, 0, 2, 1}
	for seq := uint8(0); seq < 4; seq++ {
		for dir := paint.Direction(0); dir < paint.NumOrthogonalDirections; dir++ {
			s := paintCaseWith(paintDiagFlat, paintCase{typ: track.DiagFlat, seq: seq, dir: dir})
			n := len(s.Images())
			if dir == drawing[seq] && n != 1 {
				t.Errorf("seq %d dir %d: expected one sprite, got %d", seq, dir, n)
			}
			if dir != drawing[seq] && n != 0 {
				t.Errorf("seq %d dir %d: expected no sprite, got %d", seq, dir, n)
			}
		}
	}
}

func TestSegmentsFollowRotation(t *testing.T) {
	for dir := paint.Direction(0); dir < paint.NumOrthogonalDirections; dir++ {
		s := paintCaseWith(paintDiagFlat, paintCase{typ: track.DiagFlat, seq: 1, dir: dir})
		var got uint16
		for _, call := range s.Calls {
			if call.Op == paint.OpSegmentHeight {
				got = call.Segments
			}
		}
		want := paint.RotateSegments(paint.SegmentB4|paint.SegmentC4|paint.SegmentC8|paint.SegmentCC, dir)
		if got != want {
			t.Errorf("dir %d: expected segments %#x, got %#x", dir, want, got)
		}
	}
}
