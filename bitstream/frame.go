// SPDX-License-Identifier: EPL-2.0

package bitstream

// Channel limits of a FLAC frame.
const (
	MaxChannels  = 8
	MaxBlockSize = 65535
)

// ChannelAssignment is the raw 4-bit channel assignment of a frame header.
// Values 0 to 7 are independent channels; 8 to 10 are stereo decorrelation
// modes.
type ChannelAssignment uint8

const (
	ChannelLeftSide  ChannelAssignment = 8
	ChannelSideRight ChannelAssignment = 9
	ChannelMidSide   ChannelAssignment = 10
)

func (c ChannelAssignment) String() string {
	switch {
	case c < ChannelLeftSide:
		return "independent"
	case c == ChannelLeftSide:
		return "left_side"
	case c == ChannelSideRight:
		return "side_right"
	case c == ChannelMidSide:
		return "mid_side"
	}
	return "reserved"
}

// FrameHeader describes one audio frame.
type FrameHeader struct {
	// BlockingStrategy is 0 for fixed and 1 for variable block sizes.
	BlockingStrategy  uint8
	BlockSize         uint32
	SampleRate        uint32
	ChannelAssignment ChannelAssignment
	Channels          uint8
	BitsPerSample     uint8
	// FrameNumber is set for fixed blocking, SampleNumber for variable.
	FrameNumber  uint32
	SampleNumber uint64
	CRC8         uint8
}

// Variable reports whether the frame uses variable blocking, in which case
// SampleNumber identifies it instead of FrameNumber.
func (h FrameHeader) Variable() bool { return h.BlockingStrategy == 1 }
