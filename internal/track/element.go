package track

const (
	elementFlagInverted uint8 = 1 << iota
	elementFlagChain
	elementFlagBlockBrakeClosed
	elementFlagPhotoFlash
)

// Element is one placed piece of track as the renderer sees it: its type and
// the read-only state flags that pick between sprite sets.
type Element struct {
	trackType    ElemType
	sequence     uint8
	stationIndex uint8
	flags        uint8
}

// NewElement returns an upright, chainless element of type t.
func NewElement(t ElemType) *Element {
	return &Element{trackType: t}
}

// GetTrackType returns the piece type.
func (e *Element) GetTrackType() ElemType { return e.trackType }

// SetTrackType changes the piece type.
func (e *Element) SetTrackType(t ElemType) { e.trackType = t }

// GetSequenceIndex returns which tile of the piece this element is.
func (e *Element) GetSequenceIndex() uint8 { return e.sequence }

// SetSequenceIndex sets which tile of the piece this element is.
func (e *Element) SetSequenceIndex(seq uint8) { e.sequence = seq }

// StationIndex returns the ride station a station piece belongs to.
func (e *Element) StationIndex() uint8 { return e.stationIndex }

// SetStationIndex sets the ride station a station piece belongs to.
func (e *Element) SetStationIndex(idx uint8) { e.stationIndex = idx }

// IsInverted reports whether the track hangs upside down.
func (e *Element) IsInverted() bool { return e.flags&elementFlagInverted != 0 }

// SetInverted sets the upside-down flag.
func (e *Element) SetInverted(v bool) { e.setFlag(elementFlagInverted, v) }

// HasChain reports whether the piece is a chain lift.
func (e *Element) HasChain() bool { return e.flags&elementFlagChain != 0 }

// SetHasChain sets the chain lift flag.
func (e *Element) SetHasChain(v bool) { e.setFlag(elementFlagChain, v) }

// BlockBrakeClosed reports whether the block brake on this piece is shut.
func (e *Element) BlockBrakeClosed() bool { return e.flags&elementFlagBlockBrakeClosed != 0 }

// SetBlockBrakeClosed sets the block brake state.
func (e *Element) SetBlockBrakeClosed(v bool) { e.setFlag(elementFlagBlockBrakeClosed, v) }

// IsTakingPhoto reports whether an on-ride photo camera is flashing.
func (e *Element) IsTakingPhoto() bool { return e.flags&elementFlagPhotoFlash != 0 }

// SetTakingPhoto sets the camera flash state.
func (e *Element) SetTakingPhoto(v bool) { e.setFlag(elementFlagPhotoFlash, v) }

func (e *Element) setFlag(flag uint8, v bool) {
	if v {
		e.flags |= flag
	} else {
		e.flags &^= flag
	}
}
