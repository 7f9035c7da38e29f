package multidim

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"coasterpaint/internal/paint"
	"coasterpaint/internal/track"
)

// delegation describes a piece drawn through another piece.
type delegation struct {
	name   string
	piece  track.ElemType
	target PaintFunction
	mapSeq func(seq uint8, dir paint.Direction) (uint8, paint.Direction)
}

func sameSeq(turns int) func(uint8, paint.Direction) (uint8, paint.Direction) {
	return func(seq uint8, dir paint.Direction) (uint8, paint.Direction) {
		return seq, dir.Add(turns)
	}
}

func reversed(turns int) func(uint8, paint.Direction) (uint8, paint.Direction) {
	return func(seq uint8, dir paint.Direction) (uint8, paint.Direction) {
		return 2 - seq, dir.Add(turns)
	}
}

func remapped(table []uint8, turns int) func(uint8, paint.Direction) (uint8, paint.Direction) {
	return func(seq uint8, dir paint.Direction) (uint8, paint.Direction) {
		return table[seq], dir.Add(turns)
	}
}

func TestDelegatedPiecesMatchTheirSource(t *testing.T) {
	map5 := track.MapLeftQuarterTurn5TilesToRightQuarterTurn5Tiles[:]
	map3 := track.MapLeftQuarterTurn3TilesToRightQuarterTurn3Tiles[:]
	mapEighth := track.MapLeftEighthTurnToOrthogonal[:]

	tests := []delegation{
		{name: "down 25", piece: track.Down25, target: paintUp25, mapSeq: sameSeq(2)},
		{name: "down 60", piece: track.Down60, target: paintUp60, mapSeq: sameSeq(2)},
		{name: "flat to down 25", piece: track.FlatToDown25, target: paintUp25ToFlat, mapSeq: sameSeq(2)},
		{name: "down 25 to down 60", piece: track.Down25ToDown60, target: paintUp60ToUp25, mapSeq: sameSeq(2)},
		{name: "down 60 to down 25", piece: track.Down60ToDown25, target: paintUp25ToUp60, mapSeq: sameSeq(2)},
		{name: "down 25 to flat", piece: track.Down25ToFlat, target: paintFlatToUp25, mapSeq: sameSeq(2)},
		{name: "right quarter turn 5", piece: track.RightQuarterTurn5Tiles, target: paintLeftQuarterTurn5, mapSeq: remapped(map5, -1)},
		{name: "banked right quarter turn 5", piece: track.BankedRightQuarterTurn5Tiles, target: paintBankedLeftQuarterTurn5, mapSeq: remapped(map5, -1)},
		{name: "right quarter turn 3", piece: track.RightQuarterTurn3Tiles, target: paintLeftQuarterTurn3, mapSeq: remapped(map3, -1)},
		{name: "right banked quarter turn 3", piece: track.RightBankedQuarterTurn3Tiles, target: paintLeftBankedQuarterTurn3, mapSeq: remapped(map3, -1)},
		{name: "left bank to flat", piece: track.LeftBankToFlat, target: paintFlatToRightBank, mapSeq: sameSeq(2)},
		{name: "right bank to flat", piece: track.RightBankToFlat, target: paintFlatToLeftBank, mapSeq: sameSeq(2)},
		{name: "right bank", piece: track.RightBank, target: paintLeftBank, mapSeq: sameSeq(2)},
		{name: "left bank to down 25", piece: track.LeftBankToDown25, target: paintUp25ToRightBank, mapSeq: sameSeq(2)},
		{name: "right bank to down 25", piece: track.RightBankToDown25, target: paintUp25ToLeftBank, mapSeq: sameSeq(2)},
		{name: "down 25 to left bank", piece: track.Down25ToLeftBank, target: paintRightBankToUp25, mapSeq: sameSeq(2)},
		{name: "down 25 to right bank", piece: track.Down25ToRightBank, target: paintLeftBankToUp25, mapSeq: sameSeq(2)},
		{name: "down 90", piece: track.Down90, target: paintUp90, mapSeq: sameSeq(2)},
		{name: "down 90 to down 60", piece: track.Down90ToDown60, target: paintUp60ToUp90, mapSeq: sameSeq(2)},
		{name: "down 60 to down 90", piece: track.Down60ToDown90, target: paintUp90ToUp60, mapSeq: sameSeq(2)},
		{name: "left eighth to orthogonal", piece: track.LeftEighthToOrthogonal, target: paintRightEighthToDiag, mapSeq: remapped(mapEighth, 2)},
		{name: "right eighth to orthogonal", piece: track.RightEighthToOrthogonal, target: paintLeftEighthToDiag, mapSeq: remapped(mapEighth, 3)},
		{name: "left eighth bank to orthogonal", piece: track.LeftEighthBankToOrthogonal, target: paintRightEighthBankToDiag, mapSeq: remapped(mapEighth, 2)},
		{name: "right eighth bank to orthogonal", piece: track.RightEighthBankToOrthogonal, target: paintLeftEighthBankToDiag, mapSeq: remapped(mapEighth, 3)},
		{name: "left flyer twist down", piece: track.LeftFlyerTwistDown, target: paintRightFlyerTwistUp, mapSeq: reversed(2)},
		{name: "right flyer twist down", piece: track.RightFlyerTwistDown, target: paintLeftFlyerTwistUp, mapSeq: reversed(2)},
		{name: "up 90 to inverted flat quarter loop", piece: track.MultiDimensionUp90ToInvertedFlatQuarterLoop, target: paintInvertedFlatToDown90QuarterLoop, mapSeq: reversed(2)},
		{name: "inverted up 90 to flat quarter loop", piece: track.MultiDimensionInvertedUp90ToFlatQuarterLoop, target: paintFlatToDown90QuarterLoop, mapSeq: reversed(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := GetTrackPaintFunction(tt.piece)
			if fn == nil {
				t.Fatalf("Expected a paint function for %s", tt.piece)
			}
			for seq := uint8(0); seq < track.SequenceCount(tt.piece); seq++ {
				for dir := paint.Direction(0); dir < paint.NumOrthogonalDirections; dir++ {
					for _, flags := range []paintCase{{}, {chain: true}, {inverted: true}} {
						c := flags
						c.typ, c.seq, c.dir = tt.piece, seq, dir
						got := paintCaseWith(fn, c)

						src := c
						src.seq, src.dir = tt.mapSeq(seq, dir)
						want := paintCaseWith(tt.target, src)

						if diff := cmp.Diff(want.Calls, got.Calls); diff != "" {
							t.Fatalf("seq %d dir %d %+v differs from its source (-want +got):\n%s", seq, dir, flags, diff)
						}
					}
				}
			}
		})
	}
}

func TestHelixDownFoldsOntoHelixUp(t *testing.T) {
	map3 := track.MapLeftQuarterTurn3TilesToRightQuarterTurn3Tiles
	map5 := track.MapLeftQuarterTurn5TilesToRightQuarterTurn5Tiles

	tests := []struct {
		name   string
		piece  PaintFunction
		target PaintFunction
		half   uint8
		remap  func(uint8) uint8
		turn   int
	}{
		{"left small", paintLeftHalfBankedHelixDownSmall, paintRightHalfBankedHelixUpSmall, 4, func(s uint8) uint8 { return map3[s] }, 1},
		{"right small", paintRightHalfBankedHelixDownSmall, paintLeftHalfBankedHelixUpSmall, 4, func(s uint8) uint8 { return map3[s] }, -1},
		{"left large", paintLeftHalfBankedHelixDownLarge, paintRightHalfBankedHelixUpLarge, 7, func(s uint8) uint8 { return map5[s] }, 1},
		{"right large", paintRightHalfBankedHelixDownLarge, paintLeftHalfBankedHelixUpLarge, 7, func(s uint8) uint8 { return map5[s] }, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seq := uint8(0); seq < 2*tt.half; seq++ {
				for dir := paint.Direction(0); dir < paint.NumOrthogonalDirections; dir++ {
					c := paintCase{seq: seq, dir: dir}
					got := paintCaseWith(tt.piece, c)

					folded, foldedDir := seq, dir
					if seq >= tt.half {
						folded -= tt.half
						foldedDir = dir.Add(-tt.turn)
					}
					want := paintCaseWith(tt.target, paintCase{seq: tt.remap(folded), dir: foldedDir.Add(tt.turn)})

					if diff := cmp.Diff(want.Calls, got.Calls); diff != "" {
						t.Fatalf("seq %d dir %d (-want +got):\n%s", seq, dir, diff)
					}
				}
			}
		})
	}
}

func TestRightTurnUsesLeftTurnSprites(t *testing.T) {
	// The right turn's first tile is the left turn's last tile, one
	// rotation back.
	right := paintCaseWith(paintRightQuarterTurn5, paintCase{typ: track.RightQuarterTurn5Tiles, seq: 0, dir: 1})
	left := paintCaseWith(paintLeftQuarterTurn5, paintCase{typ: track.LeftQuarterTurn5Tiles, seq: 6, dir: 0})

	if diff := cmp.Diff(imageIndices(left), imageIndices(right)); diff != "" {
		t.Errorf("Sprite mismatch (-left +right):\n%s", diff)
	}
}
