package track

// Sequence maps used when a piece is drawn as its mirror image. Index with
// the sequence of the piece being drawn to get the sequence of the piece
// whose sprites are reused.
var (
	MapLeftQuarterTurn5TilesToRightQuarterTurn5Tiles = [7]uint8{6, 4, 5, 3, 1, 2, 0}
	MapLeftQuarterTurn3TilesToRightQuarterTurn3Tiles = [4]uint8{3, 1, 2, 0}
	MapLeftEighthTurnToOrthogonal                    = [5]uint8{4, 2, 3, 1, 0}
)
