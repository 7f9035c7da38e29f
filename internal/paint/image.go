package paint

import "fmt"

// ImageIndex is the index of a sprite in the loaded sprite sheets.
type ImageIndex uint32

// Colour is a palette colour used to remap the recolourable parts of a sprite.
type Colour uint8

const (
	ColourBlack Colour = iota
	ColourGrey
	ColourWhite
	ColourDarkPurple
	ColourLightPurple
	ColourBrightPurple
	ColourDarkBlue
	ColourLightBlue
	ColourIcyBlue
	ColourTeal
	ColourAquamarine
	ColourSaturatedGreen
	ColourDarkGreen
	ColourMossGreen
	ColourBrightGreen
	ColourOliveGreen
	ColourDarkOliveGreen
	ColourBrightYellow
	ColourYellow
	ColourDarkYellow
	ColourLightOrange
	ColourDarkOrange
	ColourLightBrown
	ColourSaturatedBrown
	ColourDarkBrown
	ColourSalmonPink
	ColourBordeauxRed
	ColourSaturatedRed
	ColourBrightRed
	ColourDarkPink
	ColourBrightPink
	ColourLightPink
	ColourCount
)

var colourNames = [ColourCount]string{
	"black", "grey", "white", "dark_purple", "light_purple", "bright_purple",
	"dark_blue", "light_blue", "icy_blue", "teal", "aquamarine", "saturated_green",
	"dark_green", "moss_green", "bright_green", "olive_green", "dark_olive_green",
	"bright_yellow", "yellow", "dark_yellow", "light_orange", "dark_orange",
	"light_brown", "saturated_brown", "dark_brown", "salmon_pink", "bordeaux_red",
	"saturated_red", "bright_red", "dark_pink", "bright_pink", "light_pink",
}

func (c Colour) String() string {
	if c < ColourCount {
		return colourNames[c]
	}
	return fmt.Sprintf("colour(%d)", uint8(c))
}

// ParseColour looks up a colour by its snake_case name.
func ParseColour(name string) (Colour, error) {
	for i, n := range colourNames {
		if n == name {
			return Colour(i), nil
		}
	}
	return 0, fmt.Errorf("unknown colour: %s", name)
}

// ImageID is a sprite index together with the palette remap applied when it
// is drawn. The zero value draws sprite 0 without remapping.
type ImageID struct {
	index     ImageIndex
	primary   Colour
	secondary Colour
	remap     bool
}

// NewImageID returns an ImageID for index without colour remapping.
func NewImageID(index ImageIndex) ImageID {
	return ImageID{index: index}
}

// NewRemappedImageID returns an ImageID whose recolourable pixels are drawn
// in primary and secondary.
func NewRemappedImageID(index ImageIndex, primary, secondary Colour) ImageID {
	return ImageID{index: index, primary: primary, secondary: secondary, remap: true}
}

// WithIndex returns a copy of id that draws a different sprite with the same
// colours. Track code keeps one template per colour scheme and swaps the index.
func (id ImageID) WithIndex(index ImageIndex) ImageID {
	id.index = index
	return id
}

// Index returns the sprite index.
func (id ImageID) Index() ImageIndex { return id.index }

// Primary returns the primary remap colour.
func (id ImageID) Primary() Colour { return id.primary }

// Secondary returns the secondary remap colour.
func (id ImageID) Secondary() Colour { return id.secondary }

// IsRemapped reports whether the image carries a palette remap.
func (id ImageID) IsRemapped() bool { return id.remap }

func (id ImageID) String() string {
	if !id.remap {
		return fmt.Sprintf("#%d", id.index)
	}
	return fmt.Sprintf("#%d(%s/%s)", id.index, id.primary, id.secondary)
}

// ColourScheme selects which of a ride's colour templates an image uses.
type ColourScheme int

const (
	SchemeTrack ColourScheme = iota
	SchemeSupports
	SchemeMisc
	SchemeCount
)

// Sprites drawn by the station and photo helpers. They belong to the shared
// station sprite sheet, not to any track style.
const (
	SprStationBaseA        ImageIndex = 22370
	SprStationBaseB        ImageIndex = 22371
	SprStationBaseD        ImageIndex = 22432
	SprStationPlatformSW   ImageIndex = 22380
	SprStationPlatformNW   ImageIndex = 22381
	SprStationFenceSW      ImageIndex = 22382
	SprStationFenceNW      ImageIndex = 22383
	SprStationCoverSW      ImageIndex = 22384
	SprStationCoverNW      ImageIndex = 22385
	SprOnRidePhotoSign     ImageIndex = 25615
	SprOnRidePhotoCamera   ImageIndex = 25616
	SprOnRidePhotoFlashing ImageIndex = 25617
)
