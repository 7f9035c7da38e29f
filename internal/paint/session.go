// Package paint records the drawing work a track piece asks for on one tile.
//
// A Session is the accumulator handed to track paint functions: sprites with
// their sorting boxes, support posts, tunnel edges and the support heights
// that later tiles and scenery collide against. It stores every call in the
// order it was made so that callers can render, diff or snapshot the result.
package paint

// Op names a recorded session call.
type Op string

const (
	OpImage          Op = "image"
	OpMetalA         Op = "metal_a"
	OpMetalB         Op = "metal_b"
	OpTunnelRotated  Op = "tunnel_rotated"
	OpTunnelLeft     Op = "tunnel_left"
	OpTunnelRight    Op = "tunnel_right"
	OpVerticalTunnel Op = "vertical_tunnel"
	OpSegmentHeight  Op = "segment_height"
	OpGeneralHeight  Op = "general_height"
	OpStationCover   Op = "station_cover"
	OpOnRidePhoto    Op = "onride_photo"
)

// Call is one recorded session call. Only the fields meaningful for Op are
// set. Image calls keep the offset and box exactly as passed, together with
// the direction they were passed for; see Resolved.
type Call struct {
	Op          Op               `yaml:"op"`
	Direction   Direction        `yaml:"direction,omitempty"`
	Image       ImageIndex       `yaml:"image,omitempty"`
	Colour      Colour           `yaml:"colour,omitempty"`
	Offset      CoordsXYZ        `yaml:"offset,omitempty,flow"`
	BoundBox    BoundBoxXYZ      `yaml:"bound_box,omitempty"`
	SupportType MetalSupportType `yaml:"support_type,omitempty"`
	Place       int              `yaml:"place,omitempty"`
	Special     int32            `yaml:"special,omitempty"`
	Height      int32            `yaml:"height,omitempty"`
	Tunnel      TunnelType       `yaml:"tunnel,omitempty"`
	Segments    uint16           `yaml:"segments,omitempty"`
	Slope       uint8            `yaml:"slope,omitempty"`
}

// Resolved returns the sprite offset and sorting box of an image call as they
// lie on the unrotated tile.
func (c Call) Resolved() (CoordsXYZ, BoundBoxXYZ) {
	if c.Direction&1 == 0 {
		return c.Offset, c.BoundBox
	}
	return c.Offset.swapXY(), c.BoundBox.Rotate(c.Direction)
}

// SupportHeight is the height up to which something below is occupied, and
// the slope of whatever sits on top.
type SupportHeight struct {
	Height int32 `yaml:"height"`
	Slope  uint8 `yaml:"slope"`
}

// Session accumulates the paint calls for one tile. It is owned by a single
// caller for the duration of a paint pass and is not safe for concurrent use.
type Session struct {
	MapPosition  CoordsXY
	TrackColours [SchemeCount]ImageID
	Fences       FenceChecker

	Calls                []Call
	LeftTunnels          []TunnelEntry
	RightTunnels         []TunnelEntry
	VerticalTunnelHeight int32
	SegmentHeights       [NumSegments]SupportHeight
	GeneralSupport       SupportHeight
}

// NewSession creates a session for the tile at pos. Track colours default to
// unremapped images until SetTrackColours is called.
func NewSession(pos CoordsXY) *Session {
	return &Session{
		MapPosition:    pos,
		Calls:          make([]Call, 0, 8),
		GeneralSupport: SupportHeight{Height: 0, Slope: SupportSlopeNone},
	}
}

// SetTrackColours installs the colour templates track code combines with
// sprite indices via ImageID.WithIndex.
func (s *Session) SetTrackColours(track, supports, misc ImageID) {
	s.TrackColours[SchemeTrack] = track
	s.TrackColours[SchemeSupports] = supports
	s.TrackColours[SchemeMisc] = misc
}

// Reset clears everything recorded for the current tile, keeping colours,
// position and fence checker.
func (s *Session) Reset() {
	s.Calls = s.Calls[:0]
	s.LeftTunnels = s.LeftTunnels[:0]
	s.RightTunnels = s.RightTunnels[:0]
	s.VerticalTunnelHeight = 0
	s.SegmentHeights = [NumSegments]SupportHeight{}
	s.GeneralSupport = SupportHeight{}
}

// AddImageAsParent records a sprite drawn on the unrotated tile.
func (s *Session) AddImageAsParent(image ImageID, offset CoordsXYZ, bb BoundBoxXYZ) {
	s.AddImageAsParentRotated(DirectionWest, image, offset, bb)
}

// AddImageAsParentRotated records a sprite whose offset and box are given
// for direction 0; for odd directions the X and Y axes are swapped when the
// call is resolved.
func (s *Session) AddImageAsParentRotated(direction Direction, image ImageID, offset CoordsXYZ, bb BoundBoxXYZ) {
	s.Calls = append(s.Calls, Call{
		Op:        OpImage,
		Direction: direction,
		Image:     image.Index(),
		Colour:    image.Primary(),
		Offset:    offset,
		BoundBox:  bb,
	})
}

// SetSegmentSupportHeight marks every segment in the mask as occupied up to
// height.
func (s *Session) SetSegmentSupportHeight(segments uint16, height uint16, slope uint8) {
	s.Calls = append(s.Calls, Call{Op: OpSegmentHeight, Segments: segments, Height: int32(height), Slope: slope})
	for i := 0; i < NumSegments; i++ {
		if segments&(1<<uint(i)) != 0 {
			s.SegmentHeights[i] = SupportHeight{Height: int32(height), Slope: slope}
		}
	}
}

// SetGeneralSupportHeight raises the tile's clearance ceiling. Lower values
// than the one already set are recorded but do not lower it.
func (s *Session) SetGeneralSupportHeight(height int32, slope uint8) {
	s.Calls = append(s.Calls, Call{Op: OpGeneralHeight, Height: height, Slope: slope})
	if s.GeneralSupport.Height >= height {
		return
	}
	s.GeneralSupport = SupportHeight{Height: height, Slope: slope}
}

// Images returns the image calls in submission order.
func (s *Session) Images() []Call {
	var images []Call
	for _, c := range s.Calls {
		if c.Op == OpImage {
			images = append(images, c)
		}
	}
	return images
}

// CountOp returns how many calls of op were recorded.
func (s *Session) CountOp(op Op) int {
	n := 0
	for _, c := range s.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// ShouldPaintSupports reports whether a tile at pos is one of the tiles that
// carry posts under a run of track; posts alternate in a checkerboard.
func ShouldPaintSupports(pos CoordsXY) bool {
	return ((pos.X>>5)^(pos.Y>>5))&1 == 0
}
