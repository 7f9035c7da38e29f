package paint

// FenceChecker answers whether a station edge borders something other than
// the same station, in which case a fence is drawn along it.
type FenceChecker interface {
	HasStationFence(pos CoordsXY, edge Direction, stationIndex uint8) bool
}

// FenceCheckerFunc adapts a function to FenceChecker.
type FenceCheckerFunc func(pos CoordsXY, edge Direction, stationIndex uint8) bool

// HasStationFence implements FenceChecker.
func (f FenceCheckerFunc) HasStationFence(pos CoordsXY, edge Direction, stationIndex uint8) bool {
	return f(pos, edge, stationIndex)
}

// HasStationFence reports whether the current tile needs a fence on edge.
// Without a checker every edge is fenced.
func (s *Session) HasStationFence(edge Direction, stationIndex uint8) bool {
	if s.Fences == nil {
		return true
	}
	return s.Fences.HasStationFence(s.MapPosition, edge, stationIndex)
}

// DrawStationCover records a roof panel above one side of a station.
func (s *Session) DrawStationCover(offset CoordsXYZ, bb BoundBoxXYZ, image ImageID) bool {
	s.Calls = append(s.Calls, Call{
		Op:       OpStationCover,
		Image:    image.Index(),
		Colour:   image.Primary(),
		Offset:   offset,
		BoundBox: bb,
	})
	return true
}

type platformSide struct {
	edge     Direction
	offset   CoordsXYZ
	platform BoundBoxXYZ
	fence    BoundBoxXYZ
}

// Platform geometry for a station running along the X axis. Stations along
// Y use the same values with X and Y swapped.
var platformSides = [2]platformSide{
	{
		edge:     DirectionNorth,
		offset:   CoordsXYZ{0, 0, 0},
		platform: BoundBoxXYZ{Offset: CoordsXYZ{0, 0, 1}, Length: CoordsXYZ{32, 8, 1}},
		fence:    BoundBoxXYZ{Offset: CoordsXYZ{0, 0, 2}, Length: CoordsXYZ{32, 1, 7}},
	},
	{
		edge:     DirectionSouth,
		offset:   CoordsXYZ{0, 24, 0},
		platform: BoundBoxXYZ{Offset: CoordsXYZ{0, 24, 1}, Length: CoordsXYZ{32, 8, 1}},
		fence:    BoundBoxXYZ{Offset: CoordsXYZ{0, 31, 2}, Length: CoordsXYZ{32, 1, 7}},
	},
}

// DrawStationPlatforms draws the platforms on both long sides of a station
// tile facing direction, a fence on each side that needs one, and the roof
// at coverHeight.
func (s *Session) DrawStationPlatforms(direction Direction, height, coverHeight int32, stationIndex uint8) {
	misc := s.TrackColours[SchemeMisc]
	platformImage, fenceImage, coverImage := SprStationPlatformSW, SprStationFenceSW, SprStationCoverSW
	if direction&1 != 0 {
		platformImage, fenceImage, coverImage = SprStationPlatformNW, SprStationFenceNW, SprStationCoverNW
	}
	for _, side := range platformSides {
		edge := side.edge
		offset, platform, fence := side.offset, side.platform, side.fence
		if direction&1 != 0 {
			edge = edge.Add(-1)
			offset = offset.swapXY()
			platform = platform.Rotate(direction)
			fence = fence.Rotate(direction)
		}
		s.AddImageAsParent(misc.WithIndex(platformImage), offset.WithZ(height), platform.WithZ(height))
		if s.HasStationFence(edge, stationIndex) {
			s.AddImageAsParent(misc.WithIndex(fenceImage), offset.WithZ(height), fence.WithZ(height))
		}
		s.DrawStationCover(offset.WithZ(coverHeight), platform.WithZ(coverHeight), misc.WithIndex(coverImage))
	}
}

// DrawOnRidePhoto draws the camera and sign of an on-ride photo section on
// the two sides of the track. flashing selects the sprite shown while a
// photo is being taken.
func (s *Session) DrawOnRidePhoto(direction Direction, height int32, flashing bool) {
	s.Calls = append(s.Calls, Call{Op: OpOnRidePhoto, Direction: direction, Height: height})
	misc := s.TrackColours[SchemeMisc]
	camera := SprOnRidePhotoCamera
	if flashing {
		camera = SprOnRidePhotoFlashing
	}
	signOffset := CoordsXYZ{26, 0, height}
	cameraOffset := CoordsXYZ{6, 0, height}
	if direction&1 != 0 {
		signOffset, cameraOffset = signOffset.swapXY(), cameraOffset.swapXY()
	}
	s.AddImageAsParent(misc.WithIndex(SprOnRidePhotoSign), signOffset,
		BoundBoxXYZ{Offset: signOffset.WithZ(3), Length: CoordsXYZ{1, 1, 19}})
	s.AddImageAsParent(misc.WithIndex(camera), cameraOffset,
		BoundBoxXYZ{Offset: cameraOffset.WithZ(3), Length: CoordsXYZ{1, 1, 19}})
}
