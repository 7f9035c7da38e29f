package multidim

import (
	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

func paintDiagFlat(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagFlatPiece, trackSequence, direction, height, el)
}

func paintDiagUp25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagUp25Piece, trackSequence, direction, height, el)
}

func paintDiagUp60(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagUp60Piece, trackSequence, direction, height, el)
}

func paintDiagFlatToUp25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagFlatToUp25Piece, trackSequence, direction, height, el)
}

func paintDiagUp25ToUp60(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagUp25ToUp60Piece, trackSequence, direction, height, el)
}

func paintDiagUp60ToUp25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagUp60ToUp25Piece, trackSequence, direction, height, el)
}

func paintDiagUp25ToFlat(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagUp25ToFlatPiece, trackSequence, direction, height, el)
}

func paintDiagDown25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagDown25Piece, trackSequence, direction, height, el)
}

func paintDiagDown60(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagDown60Piece, trackSequence, direction, height, el)
}

func paintDiagFlatToDown25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagFlatToDown25Piece, trackSequence, direction, height, el)
}

func paintDiagDown25ToDown60(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagDown25ToDown60Piece, trackSequence, direction, height, el)
}

func paintDiagDown60ToDown25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagDown60ToDown25Piece, trackSequence, direction, height, el)
}

func paintDiagDown25ToFlat(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagDown25ToFlatPiece, trackSequence, direction, height, el)
}

func paintDiagFlatToLeftBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagFlatToLeftBankPiece, trackSequence, direction, height, el)
}

func paintDiagFlatToRightBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagFlatToRightBankPiece, trackSequence, direction, height, el)
}

func paintDiagLeftBankToFlat(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagLeftBankToFlatPiece, trackSequence, direction, height, el)
}

func paintDiagRightBankToFlat(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagRightBankToFlatPiece, trackSequence, direction, height, el)
}

func paintDiagLeftBankToUp25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagLeftBankToUp25Piece, trackSequence, direction, height, el)
}

func paintDiagRightBankToUp25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagRightBankToUp25Piece, trackSequence, direction, height, el)
}

func paintDiagUp25ToLeftBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagUp25ToLeftBankPiece, trackSequence, direction, height, el)
}

func paintDiagUp25ToRightBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagUp25ToRightBankPiece, trackSequence, direction, height, el)
}

func paintDiagLeftBankToDown25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagLeftBankToDown25Piece, trackSequence, direction, height, el)
}

func paintDiagRightBankToDown25(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagRightBankToDown25Piece, trackSequence, direction, height, el)
}

func paintDiagDown25ToLeftBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagDown25ToLeftBankPiece, trackSequence, direction, height, el)
}

func paintDiagDown25ToRightBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagDown25ToRightBankPiece, trackSequence, direction, height, el)
}

func paintDiagLeftBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagLeftBankPiece, trackSequence, direction, height, el)
}

func paintDiagRightBank(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &diagRightBankPiece, trackSequence, direction, height, el)
}
