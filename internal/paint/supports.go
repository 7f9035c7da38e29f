package paint

import "fmt"

// MetalSupportType selects the sprite family of a metal support post.
type MetalSupportType uint8

const (
	MetalSupportTubes MetalSupportType = iota
	MetalSupportFork
	MetalSupportForkAlt
	MetalSupportBoxed
	MetalSupportStick
	MetalSupportStickAlt
	MetalSupportThickCentred
	MetalSupportThick
	MetalSupportThickAlt
	MetalSupportThickAltCentred
	MetalSupportTruss
	MetalSupportTubesInverted
	MetalSupportBoxedCoated
	MetalSupportTypeCount
)

var metalSupportNames = [MetalSupportTypeCount]string{
	"tubes", "fork", "fork_alt", "boxed", "stick", "stick_alt", "thick_centred",
	"thick", "thick_alt", "thick_alt_centred", "truss", "tubes_inverted", "boxed_coated",
}

func (t MetalSupportType) String() string {
	if t < MetalSupportTypeCount {
		return metalSupportNames[t]
	}
	return fmt.Sprintf("metal_support(%d)", uint8(t))
}

// Support placements within a tile. The values address the 3x3 grid, with
// the four corners first and the centre at 4.
const (
	SupportPlaceTopCorner    = 0
	SupportPlaceLeftCorner   = 1
	SupportPlaceRightCorner  = 2
	SupportPlaceBottomCorner = 3
	SupportPlaceCentre       = 4
	SupportPlaceTopLeftSide  = 5
	SupportPlaceTopRightSide = 6
	SupportPlaceBottomLeft   = 7
	SupportPlaceBottomRight  = 8
	NumSupportPlaces         = 9
)

// MetalASupportsPaintSetup records a family A support post: a column of
// segments from the ground up to height, capped to meet the track. special
// is the extra cap height used where the track is sloped.
func (s *Session) MetalASupportsPaintSetup(supportType MetalSupportType, place int, special, height int32, colour ImageID) bool {
	return s.metalSupports(OpMetalA, supportType, place, special, height, colour)
}

// MetalBSupportsPaintSetup records a family B support post. Family B posts
// are used where a piece needs a bent or offset post.
func (s *Session) MetalBSupportsPaintSetup(supportType MetalSupportType, place int, special, height int32, colour ImageID) bool {
	return s.metalSupports(OpMetalB, supportType, place, special, height, colour)
}

func (s *Session) metalSupports(op Op, supportType MetalSupportType, place int, special, height int32, colour ImageID) bool {
	if place < 0 || place >= NumSupportPlaces {
		return false
	}
	s.Calls = append(s.Calls, Call{
		Op:          op,
		SupportType: supportType,
		Place:       place,
		Special:     special,
		Height:      height,
		Colour:      colour.Primary(),
	})
	return true
}
