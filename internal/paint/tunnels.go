package paint

import "fmt"

// TunnelType is the profile of the hole cut into terrain where track leaves
// a tile below ground level.
type TunnelType uint8

const (
	TunnelSquareFlat TunnelType = iota
	TunnelSquareSlopeStart
	TunnelSquareSlopeEnd
	TunnelSquareFlatTo25Deg
	TunnelInvertedFlat
	TunnelInvertedSlopeStart
	TunnelInvertedSlopeEnd
	TunnelInvertedFlatTo25Deg
	TunnelTypeCount
)

var tunnelNames = [TunnelTypeCount]string{
	"square_flat", "square_slope_start", "square_slope_end", "square_flat_to_25",
	"inverted_flat", "inverted_slope_start", "inverted_slope_end", "inverted_flat_to_25",
}

func (t TunnelType) String() string {
	if t < TunnelTypeCount {
		return tunnelNames[t]
	}
	return fmt.Sprintf("tunnel(%d)", uint8(t))
}

// Inverted returns the profile used for the same slope when the track hangs
// below the rail. Inverted profiles map back to the upright ones.
func (t TunnelType) Inverted() TunnelType {
	switch {
	case t <= TunnelSquareFlatTo25Deg:
		return t + TunnelInvertedFlat
	case t < TunnelTypeCount:
		return t - TunnelInvertedFlat
	default:
		return t
	}
}

// TunnelEntry is one tunnel edge pushed onto the session.
type TunnelEntry struct {
	Height int32      `yaml:"height"`
	Type   TunnelType `yaml:"type"`
}

// PushTunnelLeft records a tunnel on the tile's left (direction 0) edge.
func (s *Session) PushTunnelLeft(height int32, tunnelType TunnelType) {
	s.Calls = append(s.Calls, Call{Op: OpTunnelLeft, Height: height, Tunnel: tunnelType})
	s.LeftTunnels = append(s.LeftTunnels, TunnelEntry{Height: height, Type: tunnelType})
}

// PushTunnelRight records a tunnel on the tile's right (direction 1) edge.
func (s *Session) PushTunnelRight(height int32, tunnelType TunnelType) {
	s.Calls = append(s.Calls, Call{Op: OpTunnelRight, Height: height, Tunnel: tunnelType})
	s.RightTunnels = append(s.RightTunnels, TunnelEntry{Height: height, Type: tunnelType})
}

// PushTunnelRotated records a tunnel on the near edge the track enters from
// when the piece faces direction: the left edge for even directions, the
// right edge for odd ones.
func (s *Session) PushTunnelRotated(direction Direction, height int32, tunnelType TunnelType) {
	s.Calls = append(s.Calls, Call{Op: OpTunnelRotated, Direction: direction, Height: height, Tunnel: tunnelType})
	if direction&1 == 0 {
		s.LeftTunnels = append(s.LeftTunnels, TunnelEntry{Height: height, Type: tunnelType})
	} else {
		s.RightTunnels = append(s.RightTunnels, TunnelEntry{Height: height, Type: tunnelType})
	}
}

// SetVerticalTunnel records the height where vertical track leaves the tile
// through its top or bottom face.
func (s *Session) SetVerticalTunnel(height int32) {
	s.Calls = append(s.Calls, Call{Op: OpVerticalTunnel, Height: height})
	s.VerticalTunnelHeight = height
}
