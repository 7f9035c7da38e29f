package track

import (
	"fmt"

	"coasterpaint/internal/config"
)

// StyleRegistry is the piece list of one track style: which track types the
// style can build, and which of them come with chain lift or upside-down
// variants.
type StyleRegistry struct {
	name       string
	key        string
	pieces     []ElemType
	supported  map[ElemType]bool
	chain      map[ElemType]bool
	invertible map[ElemType]bool
}

// NewStyleRegistry creates an empty registry
func NewStyleRegistry() *StyleRegistry {
	return &StyleRegistry{
		supported:  make(map[ElemType]bool),
		chain:      make(map[ElemType]bool),
		invertible: make(map[ElemType]bool),
	}
}

// LoadStyleFile loads a style piece list from a YAML file
func (sr *StyleRegistry) LoadStyleFile(filename string) error {
	style, err := config.LoadStyleConfig(filename)
	if err != nil {
		return err
	}
	return sr.Load(&style.Style)
}

// Load replaces the registry contents with the given style data. Piece keys
// must name known track types.
func (sr *StyleRegistry) Load(data *config.StyleData) error {
	pieces, err := parseKeys(data.Pieces)
	if err != nil {
		return fmt.Errorf("style %s pieces: %w", data.Key, err)
	}
	chain, err := parseKeys(data.ChainPieces)
	if err != nil {
		return fmt.Errorf("style %s chain pieces: %w", data.Key, err)
	}
	invertible, err := parseKeys(data.InvertiblePieces)
	if err != nil {
		return fmt.Errorf("style %s invertible pieces: %w", data.Key, err)
	}

	sr.name = data.Name
	sr.key = data.Key
	sr.pieces = sr.pieces[:0]
	sr.supported = make(map[ElemType]bool, len(pieces))
	sr.chain = make(map[ElemType]bool, len(chain))
	sr.invertible = make(map[ElemType]bool, len(invertible))

	for _, t := range pieces {
		if sr.supported[t] {
			continue
		}
		sr.supported[t] = true
		sr.pieces = append(sr.pieces, t)
	}
	for _, t := range chain {
		if !sr.supported[t] {
			return fmt.Errorf("style %s: chain piece %s is not in the piece list", data.Key, t)
		}
		sr.chain[t] = true
	}
	for _, t := range invertible {
		if !sr.supported[t] {
			return fmt.Errorf("style %s: invertible piece %s is not in the piece list", data.Key, t)
		}
		sr.invertible[t] = true
	}
	return nil
}

func parseKeys(keys []string) ([]ElemType, error) {
	types := make([]ElemType, 0, len(keys))
	for _, key := range keys {
		t, ok := ParseElemType(key)
		if !ok {
			return nil, fmt.Errorf("unknown track type: %s", key)
		}
		types = append(types, t)
	}
	return types, nil
}

// Name returns the display name of the style
func (sr *StyleRegistry) Name() string { return sr.name }

// Key returns the style key
func (sr *StyleRegistry) Key() string { return sr.key }

// Pieces returns the supported track types in file order
func (sr *StyleRegistry) Pieces() []ElemType {
	result := make([]ElemType, len(sr.pieces))
	copy(result, sr.pieces)
	return result
}

// Supports reports whether the style builds track type t
func (sr *StyleRegistry) Supports(t ElemType) bool {
	return sr.supported[t]
}

// HasChainVariant reports whether t can carry a chain lift in this style
func (sr *StyleRegistry) HasChainVariant(t ElemType) bool {
	return sr.chain[t]
}

// IsInvertible reports whether t has an upside-down variant in this style
func (sr *StyleRegistry) IsInvertible(t ElemType) bool {
	return sr.invertible[t]
}
