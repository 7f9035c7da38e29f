package multidim

import (
	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

func paintFlatToLeftBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &flatToLeftBankPiece, trackSequence, direction, height, el)
}

func paintFlatToRightBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &flatToRightBankPiece, trackSequence, direction, height, el)
}

func paintLeftBankToFlat(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintFlatToRightBank(s, r, trackSequence, direction.Add(2), height, el)
}

func paintRightBankToFlat(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintFlatToLeftBank(s, r, trackSequence, direction.Add(2), height, el)
}

func paintLeftBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &leftBankPiece, trackSequence, direction, height, el)
}

func paintRightBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintLeftBank(s, r, trackSequence, direction.Add(2), height, el)
}

func paintLeftBankToUp25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &leftBankToUp25Piece, trackSequence, direction, height, el)
}

func paintRightBankToUp25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &rightBankToUp25Piece, trackSequence, direction, height, el)
}

func paintUp25ToLeftBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &up25ToLeftBankPiece, trackSequence, direction, height, el)
}

func paintUp25ToRightBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &up25ToRightBankPiece, trackSequence, direction, height, el)
}

// Banked descents swap hands as well as ends: a left bank going down is a
// right bank going up when viewed from the bottom.

func paintLeftBankToDown25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintUp25ToRightBank(s, r, trackSequence, direction.Add(2), height, el)
}

func paintRightBankToDown25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintUp25ToLeftBank(s, r, trackSequence, direction.Add(2), height, el)
}

func paintDown25ToLeftBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintRightBankToUp25(s, r, trackSequence, direction.Add(2), height, el)
}

func paintDown25ToRightBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintLeftBankToUp25(s, r, trackSequence, direction.Add(2), height, el)
}
