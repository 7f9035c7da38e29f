package multidim

import (
	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

func paintLeftHalfBankedHelixUpSmall(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &leftHalfBankedHelixUpSmallPiece, trackSequence, direction, height, el)
}

func paintRightHalfBankedHelixUpSmall(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &rightHalfBankedHelixUpSmallPiece, trackSequence, direction, height, el)
}

// A descending helix is the ascending helix of the other hand walked
// backwards. Both quarters fold onto the first quarter of the climb.

func paintLeftHalfBankedHelixDownSmall(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	if trackSequence >= 4 {
		trackSequence -= 4
		direction = direction.Add(-1)
	}
	trackSequence = track.MapLeftQuarterTurn3TilesToRightQuarterTurn3Tiles[trackSequence]
	paintRightHalfBankedHelixUpSmall(s, r, trackSequence, direction.Add(1), height, el)
}

func paintRightHalfBankedHelixDownSmall(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	if trackSequence >= 4 {
		trackSequence -= 4
		direction = direction.Add(1)
	}
	trackSequence = track.MapLeftQuarterTurn3TilesToRightQuarterTurn3Tiles[trackSequence]
	paintLeftHalfBankedHelixUpSmall(s, r, trackSequence, direction.Add(-1), height, el)
}

func paintLeftHalfBankedHelixUpLarge(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &leftHalfBankedHelixUpLargePiece, trackSequence, direction, height, el)
}

func paintRightHalfBankedHelixUpLarge(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &rightHalfBankedHelixUpLargePiece, trackSequence, direction, height, el)
}

func paintLeftHalfBankedHelixDownLarge(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	if trackSequence >= 7 {
		trackSequence -= 7
		direction = direction.Add(-1)
	}
	trackSequence = track.MapLeftQuarterTurn5TilesToRightQuarterTurn5Tiles[trackSequence]
	paintRightHalfBankedHelixUpLarge(s, r, trackSequence, direction.Add(1), height, el)
}

func paintRightHalfBankedHelixDownLarge(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	if trackSequence >= 7 {
		trackSequence -= 7
		direction = direction.Add(1)
	}
	trackSequence = track.MapLeftQuarterTurn5TilesToRightQuarterTurn5Tiles[trackSequence]
	paintLeftHalfBankedHelixUpLarge(s, r, trackSequence, direction.Add(-1), height, el)
}
