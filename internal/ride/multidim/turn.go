package multidim

import (
	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

func paintLeftQuarterTurn5(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &leftQuarterTurn5Piece, trackSequence, direction, height, el)
}

func paintRightQuarterTurn5(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	trackSequence = track.MapLeftQuarterTurn5TilesToRightQuarterTurn5Tiles[trackSequence]
	paintLeftQuarterTurn5(s, r, trackSequence, direction.Add(-1), height, el)
}

func paintBankedLeftQuarterTurn5(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &bankedLeftQuarterTurn5Piece, trackSequence, direction, height, el)
}

func paintBankedRightQuarterTurn5(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	trackSequence = track.MapLeftQuarterTurn5TilesToRightQuarterTurn5Tiles[trackSequence]
	paintBankedLeftQuarterTurn5(s, r, trackSequence, direction.Add(-1), height, el)
}

func paintSBendLeft(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &sBendLeftPiece, trackSequence, direction, height, el)
}

func paintSBendRight(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &sBendRightPiece, trackSequence, direction, height, el)
}

func paintLeftQuarterTurn3(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &leftQuarterTurn3Piece, trackSequence, direction, height, el)
}

func paintRightQuarterTurn3(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	trackSequence = track.MapLeftQuarterTurn3TilesToRightQuarterTurn3Tiles[trackSequence]
	paintLeftQuarterTurn3(s, r, trackSequence, direction.Add(-1), height, el)
}

func paintLeftBankedQuarterTurn3(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &leftBankedQuarterTurn3Piece, trackSequence, direction, height, el)
}

func paintRightBankedQuarterTurn3(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	trackSequence = track.MapLeftQuarterTurn3TilesToRightQuarterTurn3Tiles[trackSequence]
	paintLeftBankedQuarterTurn3(s, r, trackSequence, direction.Add(-1), height, el)
}

func paintLeftEighthToDiag(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &leftEighthToDiagPiece, trackSequence, direction, height, el)
}

func paintRightEighthToDiag(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &rightEighthToDiagPiece, trackSequence, direction, height, el)
}

func paintLeftEighthToOrthogonal(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	trackSequence = track.MapLeftEighthTurnToOrthogonal[trackSequence]
	paintRightEighthToDiag(s, r, trackSequence, direction.Add(2), height, el)
}

func paintRightEighthToOrthogonal(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	trackSequence = track.MapLeftEighthTurnToOrthogonal[trackSequence]
	paintLeftEighthToDiag(s, r, trackSequence, direction.Add(3), height, el)
}

func paintLeftEighthBankToDiag(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &leftEighthBankToDiagPiece, trackSequence, direction, height, el)
}

func paintRightEighthBankToDiag(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	paintPiece(s, &rightEighthBankToDiagPiece, trackSequence, direction, height, el)
}

func paintLeftEighthBankToOrthogonal(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	trackSequence = track.MapLeftEighthTurnToOrthogonal[trackSequence]
	paintRightEighthBankToDiag(s, r, trackSequence, direction.Add(2), height, el)
}

func paintRightEighthBankToOrthogonal(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element) {
	trackSequence = track.MapLeftEighthTurnToOrthogonal[trackSequence]
	paintLeftEighthBankToDiag(s, r, trackSequence, direction.Add(3), height, el)
}
