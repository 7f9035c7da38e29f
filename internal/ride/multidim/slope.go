package multidim

import (
	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

func paintFlat(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &flatPiece, trackSequence, direction, height, el)
}

func paintUp25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &up25Piece, trackSequence, direction, height, el)
}

func paintUp60(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &up60Piece, trackSequence, direction, height, el)
}

func paintFlatToUp25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &flatToUp25Piece, trackSequence, direction, height, el)
}

func paintUp25ToUp60(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &up25ToUp60Piece, trackSequence, direction, height, el)
}

func paintUp60ToUp25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &up60ToUp25Piece, trackSequence, direction, height, el)
}

func paintUp25ToFlat(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &up25ToFlatPiece, trackSequence, direction, height, el)
}

// Downward slopes are the upward ones seen from the other end.

func paintDown25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintUp25(s, r, trackSequence, direction.Reverse(), height, el)
}

func paintDown60(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintUp60(s, r, trackSequence, direction.Reverse(), height, el)
}

func paintFlatToDown25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintUp25ToFlat(s, r, trackSequence, direction.Reverse(), height, el)
}

func paintDown25ToDown60(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintUp60ToUp25(s, r, trackSequence, direction.Reverse(), height, el)
}

func paintDown60ToDown25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintUp25ToUp60(s, r, trackSequence, direction.Reverse(), height, el)
}

func paintDown25ToFlat(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintFlatToUp25(s, r, trackSequence, direction.Reverse(), height, el)
}
