// SPDX-License-Identifier: EPL-2.0

package bitstream

// Field names one decodable metadata value.
type Field int

const (
	FieldInvalid Field = iota

	StreamInfoMinBlockSize
	StreamInfoMaxBlockSize
	StreamInfoMinFrameSize
	StreamInfoMaxFrameSize
	StreamInfoSampleRate
	StreamInfoChannels
	StreamInfoBitsPerSample
	StreamInfoTotalSamples
	StreamInfoMD5Length
	StreamInfoMD5Data

	VorbisVendorLength
	VorbisVendorString
	VorbisCommentTotal
	VorbisCommentLength
	VorbisCommentString

	PictureType
	PictureMimeLength
	PictureMimeString
	PictureDescriptionLength
	PictureDescriptionString
	PictureWidth
	PictureHeight
	PictureColorDepth
	PictureTotalColors
	PictureLength
	PictureData

	CueSheetCatalogLength
	CueSheetCatalogString
	CueSheetLeadin
	CueSheetCDFlag
	CueSheetTracks
	CueSheetTrackOffset
	CueSheetTrackNumber
	CueSheetTrackISRCLength
	CueSheetTrackISRCString
	CueSheetTrackAudioFlag
	CueSheetTrackPreemphFlag
	CueSheetTrackIndexPoints
	CueSheetIndexPointOffset
	CueSheetIndexPointNumber

	SeekTableSeekPoints
	SeekTableSampleNumber
	SeekTableSampleOffset
	SeekTableSamples

	ApplicationID
	ApplicationLength
	ApplicationData

	PaddingLength
	PaddingData

	fieldCount
)

type fieldInfo struct {
	label string
	block MetadataType
	// width in bits of a scalar value; zero for byte fields.
	width int
	// repeating fields belong to a record that occurs many times per block.
	repeating bool
}

var fields = [fieldCount]fieldInfo{
	FieldInvalid: {label: "invalid"},

	StreamInfoMinBlockSize:  {"streaminfo_min_block_size", MetadataStreamInfo, 16, false},
	StreamInfoMaxBlockSize:  {"streaminfo_max_block_size", MetadataStreamInfo, 16, false},
	StreamInfoMinFrameSize:  {"streaminfo_min_frame_size", MetadataStreamInfo, 32, false},
	StreamInfoMaxFrameSize:  {"streaminfo_max_frame_size", MetadataStreamInfo, 32, false},
	StreamInfoSampleRate:    {"streaminfo_sample_rate", MetadataStreamInfo, 32, false},
	StreamInfoChannels:      {"streaminfo_channels", MetadataStreamInfo, 8, false},
	StreamInfoBitsPerSample: {"streaminfo_bps", MetadataStreamInfo, 8, false},
	StreamInfoTotalSamples:  {"streaminfo_total_samples", MetadataStreamInfo, 64, false},
	StreamInfoMD5Length:     {"streaminfo_md5_length", MetadataStreamInfo, 32, false},
	StreamInfoMD5Data:       {"streaminfo_md5_data", MetadataStreamInfo, 0, false},

	VorbisVendorLength:  {"vorbis_comment_vendor_length", MetadataVorbisComment, 32, false},
	VorbisVendorString:  {"vorbis_comment_vendor_string", MetadataVorbisComment, 0, false},
	VorbisCommentTotal:  {"vorbis_comment_total", MetadataVorbisComment, 32, false},
	VorbisCommentLength: {"vorbis_comment_length", MetadataVorbisComment, 32, true},
	VorbisCommentString: {"vorbis_comment_string", MetadataVorbisComment, 0, true},

	PictureType:              {"picture_type", MetadataPicture, 32, false},
	PictureMimeLength:        {"picture_mime_length", MetadataPicture, 32, false},
	PictureMimeString:        {"picture_mime_string", MetadataPicture, 0, false},
	PictureDescriptionLength: {"picture_description_length", MetadataPicture, 32, false},
	PictureDescriptionString: {"picture_description_string", MetadataPicture, 0, false},
	PictureWidth:             {"picture_width", MetadataPicture, 32, false},
	PictureHeight:            {"picture_height", MetadataPicture, 32, false},
	PictureColorDepth:        {"picture_colordepth", MetadataPicture, 32, false},
	PictureTotalColors:       {"picture_totalcolors", MetadataPicture, 32, false},
	PictureLength:            {"picture_length", MetadataPicture, 32, false},
	PictureData:              {"picture_data", MetadataPicture, 0, false},

	CueSheetCatalogLength:    {"cuesheet_catalog_length", MetadataCueSheet, 32, false},
	CueSheetCatalogString:    {"cuesheet_catalog_string", MetadataCueSheet, 0, false},
	CueSheetLeadin:           {"cuesheet_leadin", MetadataCueSheet, 64, false},
	CueSheetCDFlag:           {"cuesheet_cd_flag", MetadataCueSheet, 8, false},
	CueSheetTracks:           {"cuesheet_tracks", MetadataCueSheet, 8, false},
	CueSheetTrackOffset:      {"cuesheet_track_offset", MetadataCueSheet, 64, true},
	CueSheetTrackNumber:      {"cuesheet_track_number", MetadataCueSheet, 8, true},
	CueSheetTrackISRCLength:  {"cuesheet_track_isrc_length", MetadataCueSheet, 32, true},
	CueSheetTrackISRCString:  {"cuesheet_track_isrc_string", MetadataCueSheet, 0, true},
	CueSheetTrackAudioFlag:   {"cuesheet_track_audio_flag", MetadataCueSheet, 8, true},
	CueSheetTrackPreemphFlag: {"cuesheet_track_preemph_flag", MetadataCueSheet, 8, true},
	CueSheetTrackIndexPoints: {"cuesheet_track_indexpoints", MetadataCueSheet, 8, true},
	CueSheetIndexPointOffset: {"cuesheet_index_point_offset", MetadataCueSheet, 64, true},
	CueSheetIndexPointNumber: {"cuesheet_index_point_number", MetadataCueSheet, 8, true},

	SeekTableSeekPoints:   {"seektable_seekpoints", MetadataSeekTable, 32, false},
	SeekTableSampleNumber: {"seektable_sample_number", MetadataSeekTable, 64, true},
	SeekTableSampleOffset: {"seektable_sample_offset", MetadataSeekTable, 64, true},
	SeekTableSamples:      {"seektable_samples", MetadataSeekTable, 16, true},

	ApplicationID:     {"application_id", MetadataApplication, 32, false},
	ApplicationLength: {"application_length", MetadataApplication, 32, false},
	ApplicationData:   {"application_data", MetadataApplication, 0, false},

	PaddingLength: {"padding_length", MetadataPadding, 32, false},
	PaddingData:   {"padding_data", MetadataPadding, 0, false},
}

// Fields returns every decodable field in declaration order.
func Fields() []Field {
	out := make([]Field, 0, fieldCount-1)
	for f := FieldInvalid + 1; f < fieldCount; f++ {
		out = append(out, f)
	}
	return out
}

func (f Field) info() fieldInfo {
	if f <= FieldInvalid || f >= fieldCount {
		return fields[FieldInvalid]
	}
	return fields[f]
}

// Valid reports whether f names a decodable field.
func (f Field) Valid() bool { return f > FieldInvalid && f < fieldCount }

func (f Field) String() string { return f.info().label }

// Block returns the metadata block type holding f.
func (f Field) Block() MetadataType { return f.info().block }

// Width returns the bit width of a scalar field, or zero for byte fields.
func (f Field) Width() int { return f.info().width }

// Bytes reports whether f is read into a caller buffer.
func (f Field) Bytes() bool { return f.Valid() && f.info().width == 0 }

// Repeating reports whether f belongs to a record repeated inside its block.
func (f Field) Repeating() bool { return f.info().repeating }
