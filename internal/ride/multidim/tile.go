package multidim

import (
	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"
)

// trackSprite is one sprite of a tile. Offsets are relative to the tile
// origin at the element's base height and are given for direction 0.
type trackSprite struct {
	image    paint.ImageIndex
	offset   paint.CoordsXYZ
	boundBox paint.BoundBoxXYZ
}

type supportKind uint8

const (
	supportNone supportKind = iota
	supportMetalA
	supportMetalB
)

// supportSpec places at most one post per tile. place is indexed by
// direction because diagonal and offset posts move with the rotation.
type supportSpec struct {
	kind        supportKind
	supportType paint.MetalSupportType
	place       [paint.NumOrthogonalDirections]int8
	special     int32
	height      int32
}

type tunnelShape uint8

const (
	tunnelNone tunnelShape = iota
	tunnelRotated
	tunnelLeft
	tunnelRight
	tunnelVertical
)

type tunnelSpec struct {
	shape  tunnelShape
	height int32
	kind   paint.TunnelType
}

// trackTile is everything one sequence of a piece paints. Tiles without
// sprites are the filler tiles of turns and helices: they only claim their
// segments and clearance.
type trackTile struct {
	sprites   [paint.NumOrthogonalDirections][]trackSprite
	support   supportSpec
	tunnels   [paint.NumOrthogonalDirections]tunnelSpec
	segments  uint16
	clearance int32
}

// trackPiece holds the tiles of a piece, indexed by sequence, for each sprite
// set the piece has. chain and inverted are nil when the piece has no such
// variant; inverted track never carries a chain.
type trackPiece struct {
	normal   []trackTile
	chain    []trackTile
	inverted []trackTile
}

func (p *trackPiece) tiles(el *track.Element) []trackTile {
	if el.IsInverted() && p.inverted != nil {
		return p.inverted
	}
	if el.HasChain() && p.chain != nil {
		return p.chain
	}
	return p.normal
}

func paintPiece(s *paint.Session, p *trackPiece, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	tiles := p.tiles(el)
	paintTrackTile(s, direction, height, &tiles[trackSequence])
}

func paintTrackTile(s *paint.Session, direction paint.Direction, height int32, tile *trackTile) {
	colour := s.TrackColours[paint.SchemeTrack]
	for _, sp := range tile.sprites[direction] {
		s.AddImageAsParentRotated(direction, colour.WithIndex(sp.image), sp.offset.WithZ(height), sp.boundBox.WithZ(height))
	}

	sup := tile.support
	switch sup.kind {
	case supportMetalA:
		s.MetalASupportsPaintSetup(sup.supportType, int(sup.place[direction]), sup.special, height+sup.height, s.TrackColours[paint.SchemeSupports])
	case supportMetalB:
		s.MetalBSupportsPaintSetup(sup.supportType, int(sup.place[direction]), sup.special, height+sup.height, s.TrackColours[paint.SchemeSupports])
	}

	tun := tile.tunnels[direction]
	switch tun.shape {
	case tunnelRotated:
		s.PushTunnelRotated(direction, height+tun.height, tun.kind)
	case tunnelLeft:
		s.PushTunnelLeft(height+tun.height, tun.kind)
	case tunnelRight:
		s.PushTunnelRight(height+tun.height, tun.kind)
	case tunnelVertical:
		s.SetVerticalTunnel(height + tun.height)
	}

	s.SetSegmentSupportHeight(paint.RotateSegments(tile.segments, direction), paint.SupportHeightBlocked, 0)
	s.SetGeneralSupportHeight(height+tile.clearance, paint.SupportSlopeTrack)
}

func xyz(x, y, z int32) paint.CoordsXYZ {
	return paint.CoordsXYZ{X: x, Y: y, Z: z}
}

func box(x, y, z, length, width, height int32) paint.BoundBoxXYZ {
	return paint.BoundBoxXYZ{Offset: xyz(x, y, z), Length: xyz(length, width, height)}
}

func metalA(supportType paint.MetalSupportType, place int8, special, height int32) supportSpec {
	return supportSpec{
		kind:        supportMetalA,
		supportType: supportType,
		place:       [4]int8{place, place, place, place},
		special:     special,
		height:      height,
	}
}

func metalAPlaced(supportType paint.MetalSupportType, place [4]int8, special, height int32) supportSpec {
	return supportSpec{kind: supportMetalA, supportType: supportType, place: place, special: special, height: height}
}

func metalB(supportType paint.MetalSupportType, place int8, special, height int32) supportSpec {
	s := metalA(supportType, place, special, height)
	s.kind = supportMetalB
	return s
}

func rotated(height int32, kind paint.TunnelType) tunnelSpec {
	return tunnelSpec{shape: tunnelRotated, height: height, kind: kind}
}

func leftTunnel(height int32, kind paint.TunnelType) tunnelSpec {
	return tunnelSpec{shape: tunnelLeft, height: height, kind: kind}
}

func rightTunnel(height int32, kind paint.TunnelType) tunnelSpec {
	return tunnelSpec{shape: tunnelRight, height: height, kind: kind}
}

func vertical(height int32) tunnelSpec {
	return tunnelSpec{shape: tunnelVertical, height: height}
}
