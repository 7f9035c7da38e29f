package paint

// Support segments split a tile into a 3x3 grid. The eight outer segments
// form a ring in bit order so that a quarter turn is a two-bit rotation;
// SegmentC4 is the centre.
//
//	B4 CC BC
//	C8 C4 D4
//	B8 D0 C0
const (
	SegmentB4 uint16 = 1 << iota
	SegmentCC
	SegmentBC
	SegmentD4
	SegmentC0
	SegmentD0
	SegmentB8
	SegmentC8
	SegmentC4
)

const (
	NumSegments = 9
	SegmentsAll = SegmentB4 | SegmentCC | SegmentBC | SegmentD4 | SegmentC0 |
		SegmentD0 | SegmentB8 | SegmentC8 | SegmentC4
)

// SupportHeightBlocked marks a segment as occupied to any height.
const SupportHeightBlocked uint16 = 0xFFFF

// Slope values passed alongside support heights.
const (
	SupportSlopeNone    uint8 = 0
	SupportSlopeTrack   uint8 = 0x20
	SupportSlopeInverse uint8 = 0x40
)

// RotateSegments rotates a segment mask by a quarter turn per direction step.
func RotateSegments(segments uint16, direction Direction) uint16 {
	ring := uint8(segments & 0xFF)
	shift := uint(direction&3) * 2
	ring = ring<<shift | ring>>(8-shift)
	return segments&0xFF00 | uint16(ring)
}
