package track

import "testing"

func TestElemTypeNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, typ := range AllElemTypes() {
		name := typ.String()
		if name == "" {
			t.Fatalf("Track type %d has no name", typ)
		}
		if seen[name] {
			t.Errorf("Duplicate name %s", name)
		}
		seen[name] = true

		parsed, ok := ParseElemType(name)
		if !ok || parsed != typ {
			t.Errorf("ParseElemType(%q) = %v, %v", name, parsed, ok)
		}
	}
	if _, ok := ParseElemType("not_a_piece"); ok {
		t.Errorf("Expected unknown key to fail")
	}
	if ElemTypeCount.String() != "elem_type(106)" {
		t.Errorf("Unexpected name for out of range type: %s", ElemTypeCount)
	}
}

func TestSequenceCounts(t *testing.T) {
	tests := []struct {
		typ  ElemType
		want uint8
	}{
		{Flat, 1},
		{LeftQuarterTurn5Tiles, 7},
		{BankedRightQuarterTurn5Tiles, 7},
		{SBendLeft, 4},
		{RightQuarterTurn3Tiles, 4},
		{LeftHalfBankedHelixDownSmall, 8},
		{RightHalfBankedHelixUpLarge, 14},
		{LeftEighthBankToOrthogonal, 5},
		{DiagDown25ToRightBank, 4},
		{Up90, 2},
		{Down90ToDown60, 1},
		{Down60ToDown90, 2},
		{LeftFlyerTwistDown, 3},
		{MultiDimensionFlatToDown90QuarterLoop, 3},
		{OnRidePhoto, 1},
	}
	for _, tt := range tests {
		if got := SequenceCount(tt.typ); got != tt.want {
			t.Errorf("%s: expected %d tiles, got %d", tt.typ, tt.want, got)
		}
	}
}

func TestTypeClasses(t *testing.T) {
	if !IsDiagonal(DiagFlat) || !IsDiagonal(DiagRightBank) || IsDiagonal(LeftEighthToDiag) {
		t.Errorf("Unexpected diagonal classification")
	}
	if !IsStation(EndStation) || IsStation(Brakes) {
		t.Errorf("Unexpected station classification")
	}
}

func TestRemapTablesArePermutations(t *testing.T) {
	tables := map[string][]uint8{
		"quarter turn 5": MapLeftQuarterTurn5TilesToRightQuarterTurn5Tiles[:],
		"quarter turn 3": MapLeftQuarterTurn3TilesToRightQuarterTurn3Tiles[:],
		"eighth":         MapLeftEighthTurnToOrthogonal[:],
	}
	for name, table := range tables {
		seen := make([]bool, len(table))
		for _, v := range table {
			if int(v) >= len(table) || seen[v] {
				t.Errorf("%s: %v is not a permutation", name, table)
				break
			}
			seen[v] = true
		}
		if table[0] != uint8(len(table)-1) {
			t.Errorf("%s: first tile should map to the last", name)
		}
	}
}

func TestElementFlags(t *testing.T) {
	el := NewElement(EndStation)
	el.SetSequenceIndex(2)
	el.SetStationIndex(1)
	el.SetInverted(true)
	el.SetHasChain(true)
	el.SetBlockBrakeClosed(true)
	el.SetTakingPhoto(true)

	if el.GetTrackType() != EndStation || el.GetSequenceIndex() != 2 || el.StationIndex() != 1 {
		t.Errorf("Unexpected element fields")
	}
	if !el.IsInverted() || !el.HasChain() || !el.BlockBrakeClosed() || !el.IsTakingPhoto() {
		t.Errorf("Expected all flags set")
	}

	el.SetHasChain(false)
	if el.HasChain() || !el.IsInverted() || !el.BlockBrakeClosed() {
		t.Errorf("Clearing chain should leave the other flags alone")
	}
	el.SetTrackType(Flat)
	if el.GetTrackType() != Flat {
		t.Errorf("Expected track type to change")
	}
}
