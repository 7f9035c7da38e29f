package ride

import (
	"fmt"

	"coasterpaint/internal/config"
	"coasterpaint/internal/paint"
)

// NewFromConfig builds a ride whose colour scheme comes from the paint
// section of the configuration. The misc colour is used as the track's
// additional colour.
func NewFromConfig(id uint16, name string, pc config.PaintConfig) (*Ride, error) {
	main, err := paint.ParseColour(pc.TrackColour)
	if err != nil {
		return nil, fmt.Errorf("track colour: %w", err)
	}
	supports, err := paint.ParseColour(pc.SupportsColour)
	if err != nil {
		return nil, fmt.Errorf("supports colour: %w", err)
	}
	additional, err := paint.ParseColour(pc.MiscColour)
	if err != nil {
		return nil, fmt.Errorf("misc colour: %w", err)
	}
	return New(id, name, TrackColour{Main: main, Additional: additional, Supports: supports}), nil
}
