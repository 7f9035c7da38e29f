package track

import (
	"os"
	"testing"
)

func writeTempStyle(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "test_style_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatalf("Failed to write test style: %v", err)
	}
	tmpFile.Close()
	return tmpFile.Name()
}

func TestStyleRegistry(t *testing.T) {
	testStyle := `style:
  name: "Test Coaster"
  key: "test_rc"
  pieces:
    - flat
    - up_25
    - end_station
    - flat
  chain_pieces:
    - up_25
  invertible_pieces:
    - flat
    - up_25
`
	sr := NewStyleRegistry()
	if err := sr.LoadStyleFile(writeTempStyle(t, testStyle)); err != nil {
		t.Fatalf("Failed to load style: %v", err)
	}

	if sr.Name() != "Test Coaster" || sr.Key() != "test_rc" {
		t.Errorf("Unexpected name/key %q/%q", sr.Name(), sr.Key())
	}
	pieces := sr.Pieces()
	if len(pieces) != 3 || pieces[0] != Flat || pieces[1] != Up25 || pieces[2] != EndStation {
		t.Errorf("Expected flat, up_25, end_station once each, got %v", pieces)
	}
	if !sr.Supports(EndStation) || sr.Supports(Up60) {
		t.Errorf("Unexpected support set")
	}
	if !sr.HasChainVariant(Up25) || sr.HasChainVariant(Flat) {
		t.Errorf("Unexpected chain set")
	}
	if !sr.IsInvertible(Flat) || sr.IsInvertible(EndStation) {
		t.Errorf("Unexpected invertible set")
	}

	// Pieces returns a copy
	pieces[0] = Up90
	if sr.Pieces()[0] != Flat {
		t.Errorf("Expected Pieces to return a copy")
	}
}

func TestStyleRegistryErrors(t *testing.T) {
	tests := []struct {
		name  string
		style string
	}{
		{"unknown piece", `style:
  key: "bad"
  pieces: [flat, loop_de_loop]
`},
		{"chain piece not built", `style:
  key: "bad"
  pieces: [flat]
  chain_pieces: [up_25]
`},
		{"invertible piece not built", `style:
  key: "bad"
  pieces: [flat]
  invertible_pieces: [up_60]
`},
		{"missing key", `style:
  name: "No Key"
  pieces: [flat]
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sr := NewStyleRegistry()
			if err := sr.LoadStyleFile(writeTempStyle(t, tt.style)); err == nil {
				t.Errorf("Expected an error")
			}
		})
	}

	if err := NewStyleRegistry().LoadStyleFile("does_not_exist.yaml"); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}

func TestShippedStyleFile(t *testing.T) {
	sr := NewStyleRegistry()
	if err := sr.LoadStyleFile("../../assets/multi_dimension.yaml"); err != nil {
		t.Fatalf("Failed to load shipped style: %v", err)
	}
	for _, typ := range []ElemType{LeftVerticalLoop, RightCorkscrewUp, Booster, Watersplash} {
		if sr.Supports(typ) {
			t.Errorf("Expected %s to be unsupported", typ)
		}
	}
	if !sr.Supports(MultiDimensionInvertedUp90ToFlatQuarterLoop) || !sr.HasChainVariant(DiagUp60) {
		t.Errorf("Expected quarter loops and diagonal chains in the shipped style")
	}
}
