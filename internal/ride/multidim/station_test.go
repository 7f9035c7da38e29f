package multidim

import (
	"testing"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"
)

func countImage(s *paint.Session, index paint.ImageIndex) int {
	n := 0
	for _, c := range s.Images() {
		if c.Image == index {
			n++
		}
	}
	return n
}

func TestStationSpriteVariants(t *testing.T) {
	tests := []struct {
		name string
		c    paintCase
		want paint.ImageIndex
	}{
		{"begin station", paintCase{typ: track.BeginStation, dir: 0}, 15810},
		{"middle station odd", paintCase{typ: track.MiddleStation, dir: 1}, 15811},
		{"begin station ignores brake", paintCase{typ: track.BeginStation, dir: 2, closed: true}, 15810},
		{"end station open", paintCase{typ: track.EndStation, dir: 0}, 15812},
		{"end station open odd", paintCase{typ: track.EndStation, dir: 3}, 15813},
		{"end station closed", paintCase{typ: track.EndStation, dir: 2, closed: true}, 15814},
		{"end station closed odd", paintCase{typ: track.EndStation, dir: 3, closed: true}, 15815},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := paintCaseWith(paintStation, tt.c)
			images := s.Images()
			if len(images) < 2 {
				t.Fatalf("Expected base and track sprites, got %d images", len(images))
			}
			if images[1].Image != tt.want {
				t.Errorf("Expected track sprite %d, got %d", tt.want, images[1].Image)
			}
		})
	}
}

func TestStationPlatforms(t *testing.T) {
	s := paintCaseWith(paintStation, paintCase{typ: track.MiddleStation, dir: 0})

	// base, track, then a platform and a fence on each side
	if n := len(s.Images()); n != 6 {
		t.Errorf("Expected 6 images, got %d", n)
	}
	if n := s.CountOp(paint.OpStationCover); n != 2 {
		t.Errorf("Expected 2 station covers, got %d", n)
	}
	if n := countImage(s, paint.SprStationFenceSW); n != 2 {
		t.Errorf("Expected 2 fences, got %d", n)
	}
	if s.GeneralSupport.Height != testHeight+32 {
		t.Errorf("Expected clearance %d, got %d", testHeight+32, s.GeneralSupport.Height)
	}
}

func TestStationFenceChecker(t *testing.T) {
	s := newTestSession()
	s.Fences = paint.FenceCheckerFunc(func(pos paint.CoordsXY, edge paint.Direction, stationIndex uint8) bool {
		return edge != paint.DirectionNorth
	})
	paintStation(s, testRide, 0, paint.DirectionWest, testHeight, track.NewElement(track.MiddleStation))

	if n := countImage(s, paint.SprStationFenceSW); n != 1 {
		t.Errorf("Expected one fence, got %d", n)
	}
	if n := s.CountOp(paint.OpStationCover); n != 2 {
		t.Errorf("Expected covers on both sides, got %d", n)
	}
}

func TestStationSupportsCheckerboard(t *testing.T) {
	tests := []struct {
		pos  paint.CoordsXY
		want int
	}{
		{paint.CoordsXY{X: 0, Y: 0}, 2},
		{paint.CoordsXY{X: 32, Y: 0}, 0},
		{paint.CoordsXY{X: 32, Y: 32}, 2},
	}
	for _, tt := range tests {
		s := paint.NewSession(tt.pos)
		paintStation(s, testRide, 0, paint.DirectionWest, testHeight, track.NewElement(track.BeginStation))
		if n := s.CountOp(paint.OpMetalA); n != tt.want {
			t.Errorf("At %v: expected %d supports, got %d", tt.pos, tt.want, n)
		}
	}
}

func TestBrakeSprites(t *testing.T) {
	tests := []struct {
		name string
		fn   PaintFunction
		c    paintCase
		want paint.ImageIndex
	}{
		{"brakes", paintBrakes, paintCase{typ: track.Brakes, dir: 0}, 15816},
		{"brakes odd", paintBrakes, paintCase{typ: track.Brakes, dir: 3}, 15817},
		{"block brakes open", paintBlockBrakes, paintCase{typ: track.BlockBrakes, dir: 2}, 15818},
		{"block brakes open odd", paintBlockBrakes, paintCase{typ: track.BlockBrakes, dir: 1}, 15819},
		{"block brakes closed", paintBlockBrakes, paintCase{typ: track.BlockBrakes, dir: 0, closed: true}, 15820},
		{"block brakes closed odd", paintBlockBrakes, paintCase{typ: track.BlockBrakes, dir: 1, closed: true}, 15821},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := paintCaseWith(tt.fn, tt.c)
			ids := imageIndices(s)
			if len(ids) != 1 || ids[0] != tt.want {
				t.Errorf("Expected sprite %d, got %v", tt.want, ids)
			}
			if s.CountOp(paint.OpMetalA) != 1 || s.CountOp(paint.OpTunnelRotated) != 1 {
				t.Errorf("Expected flat supports and tunnel, got %v", s.Calls)
			}
		})
	}

	// the shared flat table must not pick up brake sprites
	s := paintCaseWith(paintFlat, paintCase{typ: track.Flat, dir: 0})
	if ids := imageIndices(s); ids[0] != 15806 {
		t.Errorf("Expected flat sprite 15806 after painting brakes, got %v", ids)
	}
}

func TestOnRidePhoto(t *testing.T) {
	s := paintCaseWith(paintOnRidePhoto, paintCase{typ: track.OnRidePhoto, dir: 0})
	ids := imageIndices(s)
	if len(ids) != 4 {
		t.Fatalf("Expected base, track, sign and camera, got %v", ids)
	}
	if ids[0] != paint.SprStationBaseD || ids[1] != 15806 {
		t.Errorf("Expected station base then flat track, got %v", ids)
	}
	if ids[3] != paint.SprOnRidePhotoCamera {
		t.Errorf("Expected idle camera, got %d", ids[3])
	}
	if n := s.CountOp(paint.OpOnRidePhoto); n != 1 {
		t.Errorf("Expected one photo section, got %d", n)
	}

	flash := paintCaseWith(paintOnRidePhoto, paintCase{typ: track.OnRidePhoto, dir: 0, photo: true})
	if countImage(flash, paint.SprOnRidePhotoFlashing) != 1 {
		t.Errorf("Expected flashing camera while taking a photo")
	}

	inverted := paintCaseWith(paintOnRidePhoto, paintCase{typ: track.OnRidePhoto, dir: 1, inverted: true})
	if countImage(inverted, 26228) != 1 {
		t.Errorf("Expected inverted flat sprite, got %v", imageIndices(inverted))
	}
	if len(inverted.LeftTunnels) != 0 || len(inverted.RightTunnels) != 1 || inverted.RightTunnels[0].Type != paint.TunnelInvertedFlat {
		t.Errorf("Expected one inverted flat tunnel on the right, got %v / %v", inverted.LeftTunnels, inverted.RightTunnels)
	}
}

func TestVerticalTunnels(t *testing.T) {
	tests := []struct {
		name     string
		fn       PaintFunction
		c        paintCase
		vertical int32
		rotated  int
	}{
		{"up 90", paintUp90, paintCase{typ: track.Up90, dir: 0}, testHeight + 32, 0},
		{"down 90", paintDown90, paintCase{typ: track.Down90, dir: 3}, testHeight + 32, 0},
		{"up 60 to up 90 facing away", paintUp60ToUp90, paintCase{typ: track.Up60ToUp90, dir: 1}, testHeight + 56, 0},
		{"up 60 to up 90 facing viewer", paintUp60ToUp90, paintCase{typ: track.Up60ToUp90, dir: 0}, 0, 1},
		{"quarter loop bottom", paintFlatToDown90QuarterLoop, paintCase{typ: track.MultiDimensionFlatToDown90QuarterLoop, seq: 2, dir: 2}, testHeight + 32, 0},
		{"quarter loop up", paintUp90ToInvertedFlatQuarterLoop, paintCase{typ: track.MultiDimensionUp90ToInvertedFlatQuarterLoop, seq: 0, dir: 1}, testHeight + 32, 0},
		{"quarter loop top", paintInvertedUp90ToFlatQuarterLoop, paintCase{typ: track.MultiDimensionInvertedUp90ToFlatQuarterLoop, seq: 2, dir: 2}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := paintCaseWith(tt.fn, tt.c)
			if s.VerticalTunnelHeight != tt.vertical {
				t.Errorf("Expected vertical tunnel at %d, got %d", tt.vertical, s.VerticalTunnelHeight)
			}
			if n := s.CountOp(paint.OpTunnelRotated); n != tt.rotated {
				t.Errorf("Expected %d rotated tunnels, got %d", tt.rotated, n)
			}
		})
	}

	s := paintCaseWith(paintUp60ToUp90, paintCase{typ: track.Up60ToUp90, dir: 2})
	if s.CountOp(paint.OpMetalB) != 1 {
		t.Errorf("Expected a family B support under the vertical transition")
	}
}
