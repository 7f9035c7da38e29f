package multidim

import (
	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

const (
	stationPlain = iota
	stationBlockBrakeOpen
	stationBlockBrakeClosed
)

var stationSprites = [paint.NumOrthogonalDirections][3]paint.ImageIndex{
	{15810, 15812, 15814},
	{15811, 15813, 15815},
	{15810, 15812, 15814},
	{15811, 15813, 15815},
}

var brakesSprites = [paint.NumOrthogonalDirections]paint.ImageIndex{15816, 15817, 15816, 15817}

// indexed by [direction][closed]
var blockBrakesSprites = [paint.NumOrthogonalDirections][2]paint.ImageIndex{
	{15818, 15820},
	{15819, 15821},
	{15818, 15820},
	{15819, 15821},
}

const stationCoverHeight = 32

// Station posts sit under the platform edges rather than the centre.
var stationSupportPlaces = [2][2]int{
	{paint.SupportPlaceTopLeftSide, paint.SupportPlaceBottomRight},
	{paint.SupportPlaceTopRightSide, paint.SupportPlaceBottomLeft},
}

func paintStation(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	variant := stationPlain
	if el.GetTrackType() == track.EndStation {
		variant = stationBlockBrakeOpen
		if el.BlockBrakeClosed() {
			variant = stationBlockBrakeClosed
		}
	}

	base := paint.SprStationBaseA
	if direction&1 != 0 {
		base = paint.SprStationBaseB
	}
	s.AddImageAsParentRotated(direction, s.TrackColours[paint.SchemeMisc].WithIndex(base), xyz(0, 0, height), box(0, 2, height, 32, 28, 1))
	s.AddImageAsParentRotated(direction, s.TrackColours[paint.SchemeTrack].WithIndex(stationSprites[direction][variant]),
		xyz(0, 0, height), box(0, 6, height+3, 32, 20, 1))

	if paint.ShouldPaintSupports(s.MapPosition) {
		supports := s.TrackColours[paint.SchemeSupports]
		for _, place := range stationSupportPlaces[direction&1] {
			s.MetalASupportsPaintSetup(paint.MetalSupportBoxed, place, 0, height, supports)
		}
	}

	s.DrawStationPlatforms(direction, height, height+stationCoverHeight, el.StationIndex())

	s.PushTunnelRotated(direction, height, paint.TunnelSquareFlat)
	s.SetSegmentSupportHeight(paint.SegmentsAll, paint.SupportHeightBlocked, 0)
	s.SetGeneralSupportHeight(height+32, paint.SupportSlopeTrack)
}

func paintBrakes(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintFlatWithSprite(s, brakesSprites[direction], direction, height)
}

func paintBlockBrakes(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	closed := 0
	if el.BlockBrakeClosed() {
		closed = 1
	}
	paintFlatWithSprite(s, blockBrakesSprites[direction][closed], direction, height)
}

// paintFlatWithSprite draws a straight flat tile with a sprite of its own on
// the ordinary flat geometry.
func paintFlatWithSprite(s *paint.Session, image paint.ImageIndex, direction paint.Direction, height int32) {
	tile := flatPiece.normal[0]
	tile.sprites[direction] = []trackSprite{{image, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}}
	paintTrackTile(s, direction, height, &tile)
}

func paintOnRidePhoto(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	s.AddImageAsParentRotated(direction, s.TrackColours[paint.SchemeMisc].WithIndex(paint.SprStationBaseD),
		xyz(0, 0, height), box(0, 0, height, 32, 32, 1))

	tile := flatPiece.normal[0]
	if el.IsInverted() {
		tile = flatPiece.inverted[0]
	}
	sp := tile.sprites[direction][0]
	s.AddImageAsParentRotated(direction, s.TrackColours[paint.SchemeTrack].WithIndex(sp.image),
		sp.offset.WithZ(height), sp.boundBox.WithZ(height))

	sup := tile.support
	s.MetalASupportsPaintSetup(sup.supportType, int(sup.place[direction]), sup.special, height+sup.height, s.TrackColours[paint.SchemeSupports])

	s.DrawOnRidePhoto(direction, height, el.IsTakingPhoto())

	s.PushTunnelRotated(direction, height, tile.tunnels[direction].kind)
	s.SetSegmentSupportHeight(paint.SegmentsAll, paint.SupportHeightBlocked, 0)
	s.SetGeneralSupportHeight(height+tile.clearance, paint.SupportSlopeTrack)
}
