// Package multidim paints the multi-dimension coaster: a flying coaster
// whose seats rotate, with its own sprite set for every piece it can build.
//
// Each piece type has a paint function that draws one tile of the piece
// for a rotation and sequence index. Most functions look their tile up in
// a literal table; mirrored, reversed and descending pieces delegate to the
// piece they are drawn from with a remapped sequence and rotation.
package multidim

import (
	"errors"
	"fmt"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/track"
)

// PaintFunction draws tile trackSequence of a piece facing direction at
// height. It does not check its arguments: the sequence must be below the
// piece's sequence count and the direction in 0..3.
type PaintFunction func(s *paint.Session, r *ride.Ride, trackSequence uint8, direction paint.Direction, height int32, el *track.Element)

var (
	ErrUnsupportedPiece   = errors.New("piece not supported by track style")
	ErrSequenceOutOfRange = errors.New("track sequence out of range")
	ErrInvalidDirection   = errors.New("invalid direction")
)

var paintFunctions = [track.ElemTypeCount]PaintFunction{
	track.Flat:           paintFlat,
	track.EndStation:     paintStation,
	track.BeginStation:   paintStation,
	track.MiddleStation:  paintStation,
	track.Up25:           paintUp25,
	track.Up60:           paintUp60,
	track.FlatToUp25:     paintFlatToUp25,
	track.Up25ToUp60:     paintUp25ToUp60,
	track.Up60ToUp25:     paintUp60ToUp25,
	track.Up25ToFlat:     paintUp25ToFlat,
	track.Down25:         paintDown25,
	track.Down60:         paintDown60,
	track.FlatToDown25:   paintFlatToDown25,
	track.Down25ToDown60: paintDown25ToDown60,
	track.Down60ToDown25: paintDown60ToDown25,
	track.Down25ToFlat:   paintDown25ToFlat,

	track.LeftQuarterTurn5Tiles:        paintLeftQuarterTurn5,
	track.RightQuarterTurn5Tiles:       paintRightQuarterTurn5,
	track.FlatToLeftBank:               paintFlatToLeftBank,
	track.FlatToRightBank:              paintFlatToRightBank,
	track.LeftBankToFlat:               paintLeftBankToFlat,
	track.RightBankToFlat:              paintRightBankToFlat,
	track.BankedLeftQuarterTurn5Tiles:  paintBankedLeftQuarterTurn5,
	track.BankedRightQuarterTurn5Tiles: paintBankedRightQuarterTurn5,
	track.LeftBankToUp25:               paintLeftBankToUp25,
	track.RightBankToUp25:              paintRightBankToUp25,
	track.Up25ToLeftBank:               paintUp25ToLeftBank,
	track.Up25ToRightBank:              paintUp25ToRightBank,
	track.LeftBankToDown25:             paintLeftBankToDown25,
	track.RightBankToDown25:            paintRightBankToDown25,
	track.Down25ToLeftBank:             paintDown25ToLeftBank,
	track.Down25ToRightBank:            paintDown25ToRightBank,
	track.LeftBank:                     paintLeftBank,
	track.RightBank:                    paintRightBank,
	track.SBendLeft:                    paintSBendLeft,
	track.SBendRight:                   paintSBendRight,
	track.LeftQuarterTurn3Tiles:        paintLeftQuarterTurn3,
	track.RightQuarterTurn3Tiles:       paintRightQuarterTurn3,
	track.LeftBankedQuarterTurn3Tiles:  paintLeftBankedQuarterTurn3,
	track.RightBankedQuarterTurn3Tiles: paintRightBankedQuarterTurn3,

	track.LeftHalfBankedHelixUpSmall:    paintLeftHalfBankedHelixUpSmall,
	track.RightHalfBankedHelixUpSmall:   paintRightHalfBankedHelixUpSmall,
	track.LeftHalfBankedHelixDownSmall:  paintLeftHalfBankedHelixDownSmall,
	track.RightHalfBankedHelixDownSmall: paintRightHalfBankedHelixDownSmall,
	track.LeftHalfBankedHelixUpLarge:    paintLeftHalfBankedHelixUpLarge,
	track.RightHalfBankedHelixUpLarge:   paintRightHalfBankedHelixUpLarge,
	track.LeftHalfBankedHelixDownLarge:  paintLeftHalfBankedHelixDownLarge,
	track.RightHalfBankedHelixDownLarge: paintRightHalfBankedHelixDownLarge,

	track.Brakes:         paintBrakes,
	track.OnRidePhoto:    paintOnRidePhoto,
	track.Up90:           paintUp90,
	track.Down90:         paintDown90,
	track.Up60ToUp90:     paintUp60ToUp90,
	track.Down90ToDown60: paintDown90ToDown60,
	track.Up90ToUp60:     paintUp90ToUp60,
	track.Down60ToDown90: paintDown60ToDown90,

	track.LeftEighthToDiag:            paintLeftEighthToDiag,
	track.RightEighthToDiag:           paintRightEighthToDiag,
	track.LeftEighthToOrthogonal:      paintLeftEighthToOrthogonal,
	track.RightEighthToOrthogonal:     paintRightEighthToOrthogonal,
	track.LeftEighthBankToDiag:        paintLeftEighthBankToDiag,
	track.RightEighthBankToDiag:       paintRightEighthBankToDiag,
	track.LeftEighthBankToOrthogonal:  paintLeftEighthBankToOrthogonal,
	track.RightEighthBankToOrthogonal: paintRightEighthBankToOrthogonal,

	track.DiagFlat:              paintDiagFlat,
	track.DiagUp25:              paintDiagUp25,
	track.DiagUp60:              paintDiagUp60,
	track.DiagFlatToUp25:        paintDiagFlatToUp25,
	track.DiagUp25ToUp60:        paintDiagUp25ToUp60,
	track.DiagUp60ToUp25:        paintDiagUp60ToUp25,
	track.DiagUp25ToFlat:        paintDiagUp25ToFlat,
	track.DiagDown25:            paintDiagDown25,
	track.DiagDown60:            paintDiagDown60,
	track.DiagFlatToDown25:      paintDiagFlatToDown25,
	track.DiagDown25ToDown60:    paintDiagDown25ToDown60,
	track.DiagDown60ToDown25:    paintDiagDown60ToDown25,
	track.DiagDown25ToFlat:      paintDiagDown25ToFlat,
	track.DiagFlatToLeftBank:    paintDiagFlatToLeftBank,
	track.DiagFlatToRightBank:   paintDiagFlatToRightBank,
	track.DiagLeftBankToFlat:    paintDiagLeftBankToFlat,
	track.DiagRightBankToFlat:   paintDiagRightBankToFlat,
	track.DiagLeftBankToUp25:    paintDiagLeftBankToUp25,
	track.DiagRightBankToUp25:   paintDiagRightBankToUp25,
	track.DiagUp25ToLeftBank:    paintDiagUp25ToLeftBank,
	track.DiagUp25ToRightBank:   paintDiagUp25ToRightBank,
	track.DiagLeftBankToDown25:  paintDiagLeftBankToDown25,
	track.DiagRightBankToDown25: paintDiagRightBankToDown25,
	track.DiagDown25ToLeftBank:  paintDiagDown25ToLeftBank,
	track.DiagDown25ToRightBank: paintDiagDown25ToRightBank,
	track.DiagLeftBank:          paintDiagLeftBank,
	track.DiagRightBank:         paintDiagRightBank,

	track.LeftFlyerTwistUp:    paintLeftFlyerTwistUp,
	track.RightFlyerTwistUp:   paintRightFlyerTwistUp,
	track.LeftFlyerTwistDown:  paintLeftFlyerTwistDown,
	track.RightFlyerTwistDown: paintRightFlyerTwistDown,
	track.BlockBrakes:         paintBlockBrakes,

	track.MultiDimensionInvertedFlatToDown90QuarterLoop: paintInvertedFlatToDown90QuarterLoop,
	track.MultiDimensionUp90ToInvertedFlatQuarterLoop:   paintUp90ToInvertedFlatQuarterLoop,
	track.MultiDimensionFlatToDown90QuarterLoop:         paintFlatToDown90QuarterLoop,
	track.MultiDimensionInvertedUp90ToFlatQuarterLoop:   paintInvertedUp90ToFlatQuarterLoop,
}

// GetTrackPaintFunction returns the paint function for track type t, or nil
// if the multi-dimension coaster cannot draw it.
func GetTrackPaintFunction(t track.ElemType) PaintFunction {
	if t >= track.ElemTypeCount {
		return nil
	}
	return paintFunctions[t]
}

// Paint draws one tile of el after checking that the piece is supported and
// that the sequence and direction are in range. Nothing is recorded on the
// session when an error is returned.
func Paint(s *paint.Session, r *ride.Ride, el *track.Element, trackSequence uint8, direction paint.Direction, height int32) error {
	t := el.GetTrackType()
	fn := GetTrackPaintFunction(t)
	if fn == nil {
		return fmt.Errorf("%s: %w", t, ErrUnsupportedPiece)
	}
	if n := track.SequenceCount(t); trackSequence >= n {
		return fmt.Errorf("%s sequence %d of %d: %w", t, trackSequence, n, ErrSequenceOutOfRange)
	}
	if !direction.IsValid() {
		return fmt.Errorf("%s direction %d: %w", t, direction, ErrInvalidDirection)
	}
	fn(s, r, trackSequence, direction, height, el)
	return nil
}
