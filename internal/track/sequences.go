package track

// sequenceCounts holds the number of tiles of every multi-tile piece. Types
// not listed occupy a single tile.
var sequenceCounts = map[ElemType]uint8{
	LeftQuarterTurn5Tiles:                         7,
	RightQuarterTurn5Tiles:                        7,
	BankedLeftQuarterTurn5Tiles:                   7,
	BankedRightQuarterTurn5Tiles:                  7,
	SBendLeft:                                     4,
	SBendRight:                                    4,
	LeftVerticalLoop:                              10,
	RightVerticalLoop:                             10,
	LeftQuarterTurn3Tiles:                         4,
	RightQuarterTurn3Tiles:                        4,
	LeftBankedQuarterTurn3Tiles:                   4,
	RightBankedQuarterTurn3Tiles:                  4,
	LeftHalfBankedHelixUpSmall:                    8,
	RightHalfBankedHelixUpSmall:                   8,
	LeftHalfBankedHelixDownSmall:                  8,
	RightHalfBankedHelixDownSmall:                 8,
	LeftHalfBankedHelixUpLarge:                    14,
	RightHalfBankedHelixUpLarge:                   14,
	LeftHalfBankedHelixDownLarge:                  14,
	RightHalfBankedHelixDownLarge:                 14,
	LeftCorkscrewUp:                               3,
	RightCorkscrewUp:                              3,
	Watersplash:                                   5,
	Up90:                                          2,
	Down90:                                        2,
	Up60ToUp90:                                    2,
	Down90ToDown60:                                1,
	Up90ToUp60:                                    1,
	Down60ToDown90:                                2,
	LeftEighthToDiag:                              5,
	RightEighthToDiag:                             5,
	LeftEighthToOrthogonal:                        5,
	RightEighthToOrthogonal:                       5,
	LeftEighthBankToDiag:                          5,
	RightEighthBankToDiag:                         5,
	LeftEighthBankToOrthogonal:                    5,
	RightEighthBankToOrthogonal:                   5,
	DiagFlat:                                      4,
	DiagUp25:                                      4,
	DiagUp60:                                      4,
	DiagFlatToUp25:                                4,
	DiagUp25ToUp60:                                4,
	DiagUp60ToUp25:                                4,
	DiagUp25ToFlat:                                4,
	DiagDown25:                                    4,
	DiagDown60:                                    4,
	DiagFlatToDown25:                              4,
	DiagDown25ToDown60:                            4,
	DiagDown60ToDown25:                            4,
	DiagDown25ToFlat:                              4,
	DiagFlatToLeftBank:                            4,
	DiagFlatToRightBank:                           4,
	DiagLeftBankToFlat:                            4,
	DiagRightBankToFlat:                           4,
	DiagLeftBankToUp25:                            4,
	DiagRightBankToUp25:                           4,
	DiagUp25ToLeftBank:                            4,
	DiagUp25ToRightBank:                           4,
	DiagLeftBankToDown25:                          4,
	DiagRightBankToDown25:                         4,
	DiagDown25ToLeftBank:                          4,
	DiagDown25ToRightBank:                         4,
	DiagLeftBank:                                  4,
	DiagRightBank:                                 4,
	LeftFlyerTwistUp:                              3,
	RightFlyerTwistUp:                             3,
	LeftFlyerTwistDown:                            3,
	RightFlyerTwistDown:                           3,
	MultiDimensionInvertedFlatToDown90QuarterLoop: 3,
	MultiDimensionUp90ToInvertedFlatQuarterLoop:   3,
	MultiDimensionFlatToDown90QuarterLoop:         3,
	MultiDimensionInvertedUp90ToFlatQuarterLoop:   3,
}

// SequenceCount returns how many tiles a piece of type t spans.
func SequenceCount(t ElemType) uint8 {
	if n, ok := sequenceCounts[t]; ok {
		return n
	}
	return 1
}

// IsDiagonal reports whether t runs along a tile diagonal. Diagonal pieces
// cover four tiles and only draw on the ones the rail actually crosses.
func IsDiagonal(t ElemType) bool {
	return t >= DiagFlat && t <= DiagRightBank
}

// IsStation reports whether t is one of the station platform pieces.
func IsStation(t ElemType) bool {
	return t == BeginStation || t == MiddleStation || t == EndStation
}
