// SPDX-License-Identifier: EPL-2.0

package bitstream

import "testing"

func TestFields(t *testing.T) {
	t.Parallel()

	all := Fields()
	if len(all) != 49 {
		t.Fatalf("len(Fields()) = %d, want 49", len(all))
	}

	seen := make(map[string]bool)
	for _, f := range all {
		if !f.Valid() {
			t.Errorf("%d is not valid", int(f))
		}
		if f.String() == "" || f.String() == "invalid" {
			t.Errorf("field %d has no label", int(f))
		}
		if seen[f.String()] {
			t.Errorf("duplicate label %q", f.String())
		}
		seen[f.String()] = true

		switch f.Width() {
		case 0, 8, 16, 32, 64:
		default:
			t.Errorf("%s width = %d", f, f.Width())
		}
		if f.Bytes() != (f.Width() == 0) {
			t.Errorf("%s.Bytes() = %v with width %d", f, f.Bytes(), f.Width())
		}
	}

	if FieldInvalid.Valid() || Field(1000).Valid() {
		t.Error("out-of-range fields reported valid")
	}
	if Field(1000).String() != "invalid" {
		t.Errorf("Field(1000).String() = %q", Field(1000).String())
	}
}

func TestFieldBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		f     Field
		block MetadataType
		rep   bool
	}{
		{StreamInfoTotalSamples, MetadataStreamInfo, false},
		{VorbisCommentString, MetadataVorbisComment, true},
		{VorbisVendorString, MetadataVorbisComment, false},
		{PictureData, MetadataPicture, false},
		{CueSheetIndexPointNumber, MetadataCueSheet, true},
		{SeekTableSeekPoints, MetadataSeekTable, false},
		{SeekTableSamples, MetadataSeekTable, true},
		{ApplicationData, MetadataApplication, false},
		{PaddingLength, MetadataPadding, false},
	}

	for _, tt := range tests {
		if tt.f.Block() != tt.block {
			t.Errorf("%s.Block() = %s, want %s", tt.f, tt.f.Block(), tt.block)
		}
		if tt.f.Repeating() != tt.rep {
			t.Errorf("%s.Repeating() = %v, want %v", tt.f, tt.f.Repeating(), tt.rep)
		}
	}
}

func TestMetadataTypeString(t *testing.T) {
	t.Parallel()

	tests := map[MetadataType]string{
		MetadataStreamInfo:    "streaminfo",
		MetadataPadding:       "padding",
		MetadataApplication:   "application",
		MetadataSeekTable:     "seektable",
		MetadataVorbisComment: "vorbis_comment",
		MetadataCueSheet:      "cuesheet",
		MetadataPicture:       "picture",
		MetadataInvalid:       "invalid",
		7:                     "unknown",
		126:                   "unknown",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("MetadataType(%d).String() = %q, want %q", uint8(typ), got, want)
		}
	}
}

func TestChannelAssignment(t *testing.T) {
	t.Parallel()

	tests := map[ChannelAssignment]string{
		0:                "independent",
		7:                "independent",
		ChannelLeftSide:  "left_side",
		ChannelSideRight: "side_right",
		ChannelMidSide:   "mid_side",
		11:               "reserved",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("ChannelAssignment(%d).String() = %q, want %q", uint8(c), got, want)
		}
	}

	if (FrameHeader{BlockingStrategy: 1}).Variable() != true {
		t.Error("Variable() = false for variable blocking")
	}
}
