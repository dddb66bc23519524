// SPDX-License-Identifier: EPL-2.0

package bitstream

// MetadataType is the raw 7-bit block type of a metadata header.
type MetadataType uint8

const (
	MetadataStreamInfo MetadataType = iota
	MetadataPadding
	MetadataApplication
	MetadataSeekTable
	MetadataVorbisComment
	MetadataCueSheet
	MetadataPicture

	// MetadataInvalid is forbidden by the format.
	MetadataInvalid MetadataType = 127
)

var metadataLabels = [...]string{
	MetadataStreamInfo:    "streaminfo",
	MetadataPadding:       "padding",
	MetadataApplication:   "application",
	MetadataSeekTable:     "seektable",
	MetadataVorbisComment: "vorbis_comment",
	MetadataCueSheet:      "cuesheet",
	MetadataPicture:       "picture",
}

// String returns the block type label. Types 7 to 126 are "unknown".
func (t MetadataType) String() string {
	if int(t) < len(metadataLabels) {
		return metadataLabels[t]
	}
	if t == MetadataInvalid {
		return "invalid"
	}
	return "unknown"
}

// Known reports whether the type has a defined layout.
func (t MetadataType) Known() bool {
	return int(t) < len(metadataLabels)
}

// MetadataHeader is the 4-byte header preceding every metadata block.
type MetadataHeader struct {
	IsLast bool
	Type   MetadataType
	// Length of the block body in bytes.
	Length uint32
}
