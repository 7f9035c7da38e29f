package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	testConfig := `display:
  screen_width: 800
  window_title: "Test Viewer"
paint:
  base_height: 48
  track_colour: "teal"
preview:
  scale: 2
snapshot:
  workers: 3
`
	tmpFile, err := os.CreateTemp("", "test_config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(testConfig); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	tmpFile.Close()

	cfg, err := LoadConfig(tmpFile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if GlobalConfig != cfg {
		t.Errorf("Expected LoadConfig to set GlobalConfig")
	}

	if cfg.GetScreenWidth() != 800 || cfg.Display.WindowTitle != "Test Viewer" {
		t.Errorf("Expected configured display values, got %+v", cfg.Display)
	}
	if cfg.GetScreenHeight() != 640 {
		t.Errorf("Expected default height 640, got %d", cfg.GetScreenHeight())
	}
	if cfg.GetBaseHeight() != 48 || cfg.Paint.TrackColour != "teal" {
		t.Errorf("Expected configured paint values, got %+v", cfg.Paint)
	}
	if cfg.Paint.SupportsColour != "dark_brown" || cfg.Paint.StyleFile != "assets/multi_dimension.yaml" {
		t.Errorf("Expected paint defaults, got %+v", cfg.Paint)
	}
	if cfg.Preview.Scale != 2 || cfg.Preview.CacheSize != 64 || cfg.Preview.Background != [3]int{15, 15, 22} {
		t.Errorf("Unexpected preview config %+v", cfg.Preview)
	}
	if cfg.Snapshot.Workers != 3 || cfg.Snapshot.Output == "" {
		t.Errorf("Unexpected snapshot config %+v", cfg.Snapshot)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig("does_not_exist.yaml"); err == nil {
		t.Errorf("Expected an error for a missing file")
	}

	tmpFile, err := os.CreateTemp("", "test_bad_config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())
	tmpFile.WriteString("display: [not, a, map]\n")
	tmpFile.Close()

	if _, err := LoadConfig(tmpFile.Name()); err == nil {
		t.Errorf("Expected a parse error")
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Expected MustLoadConfig to panic")
		}
	}()
	MustLoadConfig("does_not_exist.yaml")
}

func TestShippedConfig(t *testing.T) {
	cfg, err := LoadConfig("../../config.yaml")
	if err != nil {
		t.Fatalf("Failed to load shipped config: %v", err)
	}
	if cfg.GetBaseHeight() != 80 {
		t.Errorf("Expected base height 80, got %d", cfg.GetBaseHeight())
	}

	style, err := LoadStyleConfig("../../" + cfg.Paint.StyleFile)
	if err != nil {
		t.Fatalf("Failed to load style file: %v", err)
	}
	if style.Style.Key != "multi_dimension_rc" || len(style.Style.Pieces) == 0 {
		t.Errorf("Unexpected style %q with %d pieces", style.Style.Key, len(style.Style.Pieces))
	}
}
