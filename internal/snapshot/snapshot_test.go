package snapshot

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"coasterpaint/internal/config"
	"coasterpaint/internal/paint"
	"coasterpaint/internal/ride"
	"coasterpaint/internal/ride/multidim"
	"coasterpaint/internal/track"
)

const (
	styleFile  = "../../assets/multi_dimension.yaml"
	goldenFile = "../../testdata/multi_dimension_snapshot.yaml"
)

var update = flag.Bool("update", false, "rewrite the golden snapshot in testdata")

var testRide = ride.New(1, "Snapshot Coaster", ride.TrackColour{
	Main:       paint.ColourBrightRed,
	Additional: paint.ColourYellow,
	Supports:   paint.ColourDarkBrown,
})

var testOptions = Options{Workers: 4, Height: 80, Position: paint.CoordsXY{X: 64, Y: 64}}

func loadStyle(t *testing.T) *track.StyleRegistry {
	t.Helper()
	reg := track.NewStyleRegistry()
	if err := reg.LoadStyleFile(styleFile); err != nil {
		t.Fatalf("Failed to load style file: %v", err)
	}
	return reg
}

func generate(t *testing.T, reg *track.StyleRegistry, opts Options) *File {
	t.Helper()
	f, err := Generate(context.Background(), reg, testRide, opts)
	if err != nil {
		t.Fatalf("Failed to generate snapshot: %v", err)
	}
	return f
}

func TestCasesCoverEveryTile(t *testing.T) {
	reg := loadStyle(t)
	cases := Cases(reg)

	expected := 0
	for _, typ := range reg.Pieces() {
		expected += int(track.SequenceCount(typ)) * 4 * len(Variants(reg, typ))
	}
	if len(cases) != expected {
		t.Fatalf("Expected %d cases, got %d", expected, len(cases))
	}

	seen := make(map[string]bool, len(cases))
	for i := range cases {
		key := cases[i].Key()
		if seen[key] {
			t.Fatalf("Duplicate case %s", key)
		}
		seen[key] = true
	}

	for _, key := range []string{"flat/0/0", "flat/0/3/chain", "flat/0/1/inverted", "end_station/0/2/closed", "on_ride_photo/0/0/photo"} {
		if !seen[key] {
			t.Errorf("Expected case %s", key)
		}
	}
	if seen["end_station/0/0/inverted"] {
		t.Errorf("Stations should not have an inverted variant")
	}
}

func TestGenerateMatchesDirectPaint(t *testing.T) {
	reg := loadStyle(t)
	f := generate(t, reg, testOptions)

	if f.Style != "multi_dimension_rc" || f.Height != 80 {
		t.Errorf("Unexpected header %s height %d", f.Style, f.Height)
	}

	for _, i := range []int{0, 1, len(f.Cases) / 2, len(f.Cases) - 1} {
		c := &f.Cases[i]
		el, err := c.Element()
		if err != nil {
			t.Fatalf("Case %s: %v", c.Key(), err)
		}
		s := paint.NewSession(testOptions.Position)
		testRide.ApplyColours(s)
		if err := multidim.Paint(s, testRide, el, c.Sequence, c.Direction, testOptions.Height); err != nil {
			t.Fatalf("Case %s: %v", c.Key(), err)
		}
		if len(s.Calls) != len(c.Calls) {
			t.Errorf("Case %s: expected %d calls, got %d", c.Key(), len(s.Calls), len(c.Calls))
		}
	}
}

func TestGenerateIsIndependentOfWorkers(t *testing.T) {
	reg := loadStyle(t)
	single := testOptions
	single.Workers = 1

	if err := Diff(generate(t, reg, single), generate(t, reg, testOptions)); err != nil {
		t.Errorf("Expected identical recordings: %v", err)
	}
}

func TestEncodeDecode(t *testing.T) {
	reg := loadStyle(t)
	f := generate(t, reg, testOptions)

	var buf bytes.Buffer
	if err := Encode(&buf, f); err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "style: multi_dimension_rc\n") {
		t.Errorf("Unexpected document start %q", buf.String()[:40])
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if err := Diff(f, decoded); err != nil {
		t.Errorf("Expected decoded snapshot to match: %v", err)
	}
}

func TestDiffReportsChanges(t *testing.T) {
	reg := track.NewStyleRegistry()
	if err := reg.Load(&config.StyleData{Key: "small", Pieces: []string{"flat", "up_25"}}); err != nil {
		t.Fatalf("Failed to load style: %v", err)
	}
	want := generate(t, reg, testOptions)

	changed := generate(t, reg, testOptions)
	changed.Cases[3].Calls[0].Image++
	err := Diff(want, changed)
	if !errors.Is(err, ErrMismatch) || !strings.Contains(err.Error(), changed.Cases[3].Key()) {
		t.Errorf("Expected a mismatch naming %s, got %v", changed.Cases[3].Key(), err)
	}

	missing := generate(t, reg, testOptions)
	missing.Cases = missing.Cases[1:]
	if err := Diff(want, missing); !errors.Is(err, ErrMismatch) || !strings.Contains(err.Error(), "missing") {
		t.Errorf("Expected a missing case, got %v", err)
	}

	extra := generate(t, reg, testOptions)
	extra.Cases = append(extra.Cases, Case{Piece: "flat", Sequence: 0, Direction: 0, TakingPhoto: true})
	if err := Diff(want, extra); !errors.Is(err, ErrMismatch) || !strings.Contains(err.Error(), "unexpected") {
		t.Errorf("Expected an unexpected case, got %v", err)
	}

	moved := generate(t, reg, Options{Workers: 1, Height: 96})
	if err := Diff(want, moved); !errors.Is(err, ErrMismatch) {
		t.Errorf("Expected a header mismatch, got %v", err)
	}
}

func TestGenerateErrors(t *testing.T) {
	reg := track.NewStyleRegistry()
	if err := reg.Load(&config.StyleData{Key: "loops", Pieces: []string{"flat", "left_vertical_loop"}}); err != nil {
		t.Fatalf("Failed to load style: %v", err)
	}
	if _, err := Generate(context.Background(), reg, testRide, testOptions); !errors.Is(err, multidim.ErrUnsupportedPiece) {
		t.Errorf("Expected ErrUnsupportedPiece, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Generate(ctx, loadStyle(t), testRide, testOptions); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestWriteReadFile(t *testing.T) {
	reg := track.NewStyleRegistry()
	if err := reg.Load(&config.StyleData{Key: "stations", Pieces: []string{"end_station", "on_ride_photo"}}); err != nil {
		t.Fatalf("Failed to load style: %v", err)
	}
	f := generate(t, reg, testOptions)

	filename := filepath.Join(t.TempDir(), "nested", "snapshot.yaml")
	if err := WriteFile(filename, f); err != nil {
		t.Fatalf("Failed to write snapshot: %v", err)
	}
	read, err := ReadFile(filename)
	if err != nil {
		t.Fatalf("Failed to read snapshot: %v", err)
	}
	if err := Diff(f, read); err != nil {
		t.Errorf("Expected the written snapshot to match: %v", err)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected an error for a missing snapshot")
	}
}

// TestGoldenSnapshot paints the shipped style with the shipped configuration,
// the same way tracksnap does, and compares it with the recording in
// testdata. Run with -update after an intended change to the painter.
func TestGoldenSnapshot(t *testing.T) {
	cfg, err := config.LoadConfig("../../config.yaml")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	reg := track.NewStyleRegistry()
	if err := reg.LoadStyleFile("../../" + cfg.Paint.StyleFile); err != nil {
		t.Fatalf("Failed to load style file: %v", err)
	}
	r, err := ride.NewFromConfig(0, reg.Name(), cfg.Paint)
	if err != nil {
		t.Fatalf("Failed to build ride: %v", err)
	}

	got, err := Generate(context.Background(), reg, r, Options{
		Workers:  4,
		Height:   cfg.GetBaseHeight(),
		Position: paint.CoordsXY{X: cfg.Paint.MapX, Y: cfg.Paint.MapY},
	})
	if err != nil {
		t.Fatalf("Failed to generate snapshot: %v", err)
	}

	if *update {
		if err := WriteFile(goldenFile, got); err != nil {
			t.Fatalf("Failed to update %s: %v", goldenFile, err)
		}
		return
	}

	want, err := ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("Failed to read golden snapshot: %v", err)
	}
	if len(want.Cases) != len(got.Cases) {
		t.Errorf("Expected %d cases, got %d", len(want.Cases), len(got.Cases))
	}
	if err := Diff(want, got); err != nil {
		t.Errorf("Painter output differs from %s (rerun with -update if intended): %v", goldenFile, err)
	}
}

func TestLoadFromStdin(t *testing.T) {
	reg := track.NewStyleRegistry()
	if err := reg.Load(&config.StyleData{Key: "small", Pieces: []string{"flat", "brakes"}}); err != nil {
		t.Fatalf("Failed to load style: %v", err)
	}
	f := generate(t, reg, testOptions)

	var buf bytes.Buffer
	if err := Encode(&buf, f); err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	read, err := Load("-", &buf)
	if err != nil {
		t.Fatalf("Failed to load from stdin: %v", err)
	}
	if err := Diff(f, read); err != nil {
		t.Errorf("Expected the piped snapshot to match: %v", err)
	}

	filename := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := WriteFile(filename, f); err != nil {
		t.Fatalf("Failed to write snapshot: %v", err)
	}
	fromFile, err := Load(filename, strings.NewReader("not: [a snapshot"))
	if err != nil {
		t.Fatalf("Failed to load %s: %v", filename, err)
	}
	if err := Diff(f, fromFile); err != nil {
		t.Errorf("Expected the file snapshot to match: %v", err)
	}

	if _, err := Load("-", strings.NewReader("cases: [")); err == nil {
		t.Errorf("Expected an error for malformed input")
	}
}
