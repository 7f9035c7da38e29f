package track

import "fmt"

// ElemType identifies the shape of a piece of track.
type ElemType uint16

const (
	Flat ElemType = iota
	EndStation
	BeginStation
	MiddleStation
	Up25
	Up60
	FlatToUp25
	Up25ToUp60
	Up60ToUp25
	Up25ToFlat
	Down25
	Down60
	FlatToDown25
	Down25ToDown60
	Down60ToDown25
	Down25ToFlat
	LeftQuarterTurn5Tiles
	RightQuarterTurn5Tiles
	FlatToLeftBank
	FlatToRightBank
	LeftBankToFlat
	RightBankToFlat
	BankedLeftQuarterTurn5Tiles
	BankedRightQuarterTurn5Tiles
	LeftBankToUp25
	RightBankToUp25
	Up25ToLeftBank
	Up25ToRightBank
	LeftBankToDown25
	RightBankToDown25
	Down25ToLeftBank
	Down25ToRightBank
	LeftBank
	RightBank
	SBendLeft
	SBendRight
	LeftVerticalLoop
	RightVerticalLoop
	LeftQuarterTurn3Tiles
	RightQuarterTurn3Tiles
	LeftBankedQuarterTurn3Tiles
	RightBankedQuarterTurn3Tiles
	LeftHalfBankedHelixUpSmall
	RightHalfBankedHelixUpSmall
	LeftHalfBankedHelixDownSmall
	RightHalfBankedHelixDownSmall
	LeftHalfBankedHelixUpLarge
	RightHalfBankedHelixUpLarge
	LeftHalfBankedHelixDownLarge
	RightHalfBankedHelixDownLarge
	LeftCorkscrewUp
	RightCorkscrewUp
	Brakes
	Booster
	OnRidePhoto
	Watersplash
	Up90
	Down90
	Up60ToUp90
	Down90ToDown60
	Up90ToUp60
	Down60ToDown90
	LeftEighthToDiag
	RightEighthToDiag
	LeftEighthToOrthogonal
	RightEighthToOrthogonal
	LeftEighthBankToDiag
	RightEighthBankToDiag
	LeftEighthBankToOrthogonal
	RightEighthBankToOrthogonal
	DiagFlat
	DiagUp25
	DiagUp60
	DiagFlatToUp25
	DiagUp25ToUp60
	DiagUp60ToUp25
	DiagUp25ToFlat
	DiagDown25
	DiagDown60
	DiagFlatToDown25
	DiagDown25ToDown60
	DiagDown60ToDown25
	DiagDown25ToFlat
	DiagFlatToLeftBank
	DiagFlatToRightBank
	DiagLeftBankToFlat
	DiagRightBankToFlat
	DiagLeftBankToUp25
	DiagRightBankToUp25
	DiagUp25ToLeftBank
	DiagUp25ToRightBank
	DiagLeftBankToDown25
	DiagRightBankToDown25
	DiagDown25ToLeftBank
	DiagDown25ToRightBank
	DiagLeftBank
	DiagRightBank
	LeftFlyerTwistUp
	RightFlyerTwistUp
	LeftFlyerTwistDown
	RightFlyerTwistDown
	MultiDimensionInvertedFlatToDown90QuarterLoop
	BlockBrakes
	MultiDimensionUp90ToInvertedFlatQuarterLoop
	MultiDimensionFlatToDown90QuarterLoop
	MultiDimensionInvertedUp90ToFlatQuarterLoop
	ElemTypeCount
)

var elemTypeNames = [ElemTypeCount]string{
	Flat:                                          "flat",
	EndStation:                                    "end_station",
	BeginStation:                                  "begin_station",
	MiddleStation:                                 "middle_station",
	Up25:                                          "up_25",
	Up60:                                          "up_60",
	FlatToUp25:                                    "flat_to_up_25",
	Up25ToUp60:                                    "up_25_to_up_60",
	Up60ToUp25:                                    "up_60_to_up_25",
	Up25ToFlat:                                    "up_25_to_flat",
	Down25:                                        "down_25",
	Down60:                                        "down_60",
	FlatToDown25:                                  "flat_to_down_25",
	Down25ToDown60:                                "down_25_to_down_60",
	Down60ToDown25:                                "down_60_to_down_25",
	Down25ToFlat:                                  "down_25_to_flat",
	LeftQuarterTurn5Tiles:                         "left_quarter_turn_5_tiles",
	RightQuarterTurn5Tiles:                        "right_quarter_turn_5_tiles",
	FlatToLeftBank:                                "flat_to_left_bank",
	FlatToRightBank:                               "flat_to_right_bank",
	LeftBankToFlat:                                "left_bank_to_flat",
	RightBankToFlat:                               "right_bank_to_flat",
	BankedLeftQuarterTurn5Tiles:                   "banked_left_quarter_turn_5_tiles",
	BankedRightQuarterTurn5Tiles:                  "banked_right_quarter_turn_5_tiles",
	LeftBankToUp25:                                "left_bank_to_up_25",
	RightBankToUp25:                               "right_bank_to_up_25",
	Up25ToLeftBank:                                "up_25_to_left_bank",
	Up25ToRightBank:                               "up_25_to_right_bank",
	LeftBankToDown25:                              "left_bank_to_down_25",
	RightBankToDown25:                             "right_bank_to_down_25",
	Down25ToLeftBank:                              "down_25_to_left_bank",
	Down25ToRightBank:                             "down_25_to_right_bank",
	LeftBank:                                      "left_bank",
	RightBank:                                     "right_bank",
	SBendLeft:                                     "sbend_left",
	SBendRight:                                    "sbend_right",
	LeftVerticalLoop:                              "left_vertical_loop",
	RightVerticalLoop:                             "right_vertical_loop",
	LeftQuarterTurn3Tiles:                         "left_quarter_turn_3_tiles",
	RightQuarterTurn3Tiles:                        "right_quarter_turn_3_tiles",
	LeftBankedQuarterTurn3Tiles:                   "left_banked_quarter_turn_3_tiles",
	RightBankedQuarterTurn3Tiles:                  "right_banked_quarter_turn_3_tiles",
	LeftHalfBankedHelixUpSmall:                    "left_half_banked_helix_up_small",
	RightHalfBankedHelixUpSmall:                   "right_half_banked_helix_up_small",
	LeftHalfBankedHelixDownSmall:                  "left_half_banked_helix_down_small",
	RightHalfBankedHelixDownSmall:                 "right_half_banked_helix_down_small",
	LeftHalfBankedHelixUpLarge:                    "left_half_banked_helix_up_large",
	RightHalfBankedHelixUpLarge:                   "right_half_banked_helix_up_large",
	LeftHalfBankedHelixDownLarge:                  "left_half_banked_helix_down_large",
	RightHalfBankedHelixDownLarge:                 "right_half_banked_helix_down_large",
	LeftCorkscrewUp:                               "left_corkscrew_up",
	RightCorkscrewUp:                              "right_corkscrew_up",
	Brakes:                                        "brakes",
	Booster:                                       "booster",
	OnRidePhoto:                                   "on_ride_photo",
	Watersplash:                                   "watersplash",
	Up90:                                          "up_90",
	Down90:                                        "down_90",
	Up60ToUp90:                                    "up_60_to_up_90",
	Down90ToDown60:                                "down_90_to_down_60",
	Up90ToUp60:                                    "up_90_to_up_60",
	Down60ToDown90:                                "down_60_to_down_90",
	LeftEighthToDiag:                              "left_eighth_to_diag",
	RightEighthToDiag:                             "right_eighth_to_diag",
	LeftEighthToOrthogonal:                        "left_eighth_to_orthogonal",
	RightEighthToOrthogonal:                       "right_eighth_to_orthogonal",
	LeftEighthBankToDiag:                          "left_eighth_bank_to_diag",
	RightEighthBankToDiag:                         "right_eighth_bank_to_diag",
	LeftEighthBankToOrthogonal:                    "left_eighth_bank_to_orthogonal",
	RightEighthBankToOrthogonal:                   "right_eighth_bank_to_orthogonal",
	DiagFlat:                                      "diag_flat",
	DiagUp25:                                      "diag_up_25",
	DiagUp60:                                      "diag_up_60",
	DiagFlatToUp25:                                "diag_flat_to_up_25",
	DiagUp25ToUp60:                                "diag_up_25_to_up_60",
	DiagUp60ToUp25:                                "diag_up_60_to_up_25",
	DiagUp25ToFlat:                                "diag_up_25_to_flat",
	DiagDown25:                                    "diag_down_25",
	DiagDown60:                                    "diag_down_60",
	DiagFlatToDown25:                              "diag_flat_to_down_25",
	DiagDown25ToDown60:                            "diag_down_25_to_down_60",
	DiagDown60ToDown25:                            "diag_down_60_to_down_25",
	DiagDown25ToFlat:                              "diag_down_25_to_flat",
	DiagFlatToLeftBank:                            "diag_flat_to_left_bank",
	DiagFlatToRightBank:                           "diag_flat_to_right_bank",
	DiagLeftBankToFlat:                            "diag_left_bank_to_flat",
	DiagRightBankToFlat:                           "diag_right_bank_to_flat",
	DiagLeftBankToUp25:                            "diag_left_bank_to_up_25",
	DiagRightBankToUp25:                           "diag_right_bank_to_up_25",
	DiagUp25ToLeftBank:                            "diag_up_25_to_left_bank",
	DiagUp25ToRightBank:                           "diag_up_25_to_right_bank",
	DiagLeftBankToDown25:                          "diag_left_bank_to_down_25",
	DiagRightBankToDown25:                         "diag_right_bank_to_down_25",
	DiagDown25ToLeftBank:                          "diag_down_25_to_left_bank",
	DiagDown25ToRightBank:                         "diag_down_25_to_right_bank",
	DiagLeftBank:                                  "diag_left_bank",
	DiagRightBank:                                 "diag_right_bank",
	LeftFlyerTwistUp:                              "left_flyer_twist_up",
	RightFlyerTwistUp:                             "right_flyer_twist_up",
	LeftFlyerTwistDown:                            "left_flyer_twist_down",
	RightFlyerTwistDown:                           "right_flyer_twist_down",
	MultiDimensionInvertedFlatToDown90QuarterLoop: "multi_dimension_inverted_flat_to_down_90_quarter_loop",
	BlockBrakes:                                   "block_brakes",
	MultiDimensionUp90ToInvertedFlatQuarterLoop:   "multi_dimension_up_90_to_inverted_flat_quarter_loop",
	MultiDimensionFlatToDown90QuarterLoop:         "multi_dimension_flat_to_down_90_quarter_loop",
	MultiDimensionInvertedUp90ToFlatQuarterLoop:   "multi_dimension_inverted_up_90_to_flat_quarter_loop",
}

func (t ElemType) String() string {
	if t < ElemTypeCount {
		return elemTypeNames[t]
	}
	return fmt.Sprintf("elem_type(%d)", uint16(t))
}

// ParseElemType looks up a track type by its snake_case key.
func ParseElemType(key string) (ElemType, bool) {
	t, ok := elemTypeByName[key]
	return t, ok
}

var elemTypeByName = func() map[string]ElemType {
	m := make(map[string]ElemType, ElemTypeCount)
	for t, name := range elemTypeNames {
		m[name] = ElemType(t)
	}
	return m
}()

// AllElemTypes returns every track type in enum order.
func AllElemTypes() []ElemType {
	types := make([]ElemType, ElemTypeCount)
	for i := range types {
		types[i] = ElemType(i)
	}
	return types
}
