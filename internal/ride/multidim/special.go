package multidim

import (
	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

func paintUp90(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &up90Piece, trackSequence, direction, height, el)
}

func paintDown90(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintUp90(s, r, trackSequence, direction.Reverse(), height, el)
}

func paintUp60ToUp90(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &up60ToUp90Piece, trackSequence, direction, height, el)
}

func paintDown90ToDown60(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintUp60ToUp90(s, r, trackSequence, direction.Reverse(), height, el)
}

// Up90ToUp60 is a single tile but carries a second, empty tile so that the
// two-tile Down60ToDown90 can be drawn through it.
func paintUp90ToUp60(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &up90ToUp60Piece, trackSequence, direction, height, el)
}

func paintDown60ToDown90(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintUp90ToUp60(s, r, trackSequence, direction.Reverse(), height, el)
}

func paintLeftFlyerTwistUp(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &leftFlyerTwistUpPiece, trackSequence, direction, height, el)
}

func paintRightFlyerTwistUp(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &rightFlyerTwistUpPiece, trackSequence, direction, height, el)
}

func paintLeftFlyerTwistDown(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintRightFlyerTwistUp(s, r, 2-trackSequence, direction.Add(2), height, el)
}

func paintRightFlyerTwistDown(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintLeftFlyerTwistUp(s, r, 2-trackSequence, direction.Add(2), height, el)
}

func paintFlatToDown90QuarterLoop(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &flatToDown90QuarterLoopPiece, trackSequence, direction, height, el)
}

func paintInvertedFlatToDown90QuarterLoop(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &invertedFlatToDown90QuarterLoopPiece, trackSequence, direction, height, el)
}

func paintUp90ToInvertedFlatQuarterLoop(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintInvertedFlatToDown90QuarterLoop(s, r, 2-trackSequence, direction.Add(2), height, el)
}

func paintInvertedUp90ToFlatQuarterLoop(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintFlatToDown90QuarterLoop(s, r, 2-trackSequence, direction.Add(2), height, el)
}
