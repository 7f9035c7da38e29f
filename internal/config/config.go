package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all viewer, paint and tooling configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Paint    PaintConfig    `yaml:"paint"`
	Preview  PreviewConfig  `yaml:"preview"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

// PaintConfig describes the tile a piece is painted on and the ride colours
type PaintConfig struct {
	BaseHeight     int32  `yaml:"base_height"`
	MapX           int32  `yaml:"map_x"`
	MapY           int32  `yaml:"map_y"`
	TrackColour    string `yaml:"track_colour"`
	SupportsColour string `yaml:"supports_colour"`
	MiscColour     string `yaml:"misc_colour"`
	StyleFile      string `yaml:"style_file"`
}

type PreviewConfig struct {
	Scale      int    `yaml:"scale"`
	CacheSize  int    `yaml:"cache_size"`
	Background [3]int `yaml:"background"`
	TrackBox   [3]int `yaml:"track_box"`
	OtherBox   [3]int `yaml:"other_box"`
}

type SnapshotConfig struct {
	Output  string `yaml:"output"`
	Workers int    `yaml:"workers"`
}

// StyleConfig is the piece list of one track style
type StyleConfig struct {
	Style StyleData `yaml:"style"`
}

type StyleData struct {
	Name             string   `yaml:"name"`
	Key              string   `yaml:"key"`
	Pieces           []string `yaml:"pieces"`
	ChainPieces      []string `yaml:"chain_pieces,omitempty"`
	InvertiblePieces []string `yaml:"invertible_pieces,omitempty"`
}

var GlobalConfig *Config

// LoadConfig loads the configuration from config.yaml
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	config.ApplyDefaults()

	// Set global config for easy access
	GlobalConfig = &config

	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// ApplyDefaults fills in zero values with usable defaults
func (c *Config) ApplyDefaults() {
	if c.Display.ScreenWidth <= 0 {
		c.Display.ScreenWidth = 960
	}
	if c.Display.ScreenHeight <= 0 {
		c.Display.ScreenHeight = 640
	}
	if c.Display.WindowTitle == "" {
		c.Display.WindowTitle = "Track Paint Viewer"
	}
	if c.Paint.TrackColour == "" {
		c.Paint.TrackColour = "bright_red"
	}
	if c.Paint.SupportsColour == "" {
		c.Paint.SupportsColour = "dark_brown"
	}
	if c.Paint.MiscColour == "" {
		c.Paint.MiscColour = "grey"
	}
	if c.Paint.StyleFile == "" {
		c.Paint.StyleFile = "assets/multi_dimension.yaml"
	}
	if c.Preview.Scale <= 0 {
		c.Preview.Scale = 4
	}
	if c.Preview.CacheSize <= 0 {
		c.Preview.CacheSize = 64
	}
	if c.Preview.Background == [3]int{} {
		c.Preview.Background = [3]int{15, 15, 22}
	}
	if c.Preview.TrackBox == [3]int{} {
		c.Preview.TrackBox = [3]int{230, 80, 80}
	}
	if c.Preview.OtherBox == [3]int{} {
		c.Preview.OtherBox = [3]int{90, 160, 230}
	}
	if c.Snapshot.Output == "" {
		c.Snapshot.Output = "testdata/multi_dimension_snapshot.yaml"
	}
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetBaseHeight() int32 {
	return c.Paint.BaseHeight
}

// LoadStyleConfig reads a track style piece list
func LoadStyleConfig(filename string) (*StyleConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read style file: %w", err)
	}

	var style StyleConfig
	if err := yaml.Unmarshal(data, &style); err != nil {
		return nil, fmt.Errorf("failed to parse style file: %w", err)
	}
	if style.Style.Key == "" {
		return nil, fmt.Errorf("style file %s has no key", filename)
	}
	return &style, nil
}
