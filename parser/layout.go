// SPDX-License-Identifier: EPL-2.0

package parser

import (
	"github.com/ik5/flacpull/bitstream"
)

type slotKind uint8

const (
	slotUint slotKind = iota
	slotUintLE
	slotBytes
	slotSkipBits
)

// slot is one step of a metadata block layout.
type slot struct {
	kind  slotKind
	field bitstream.Field
	// bits is the width of scalar and skip slots.
	bits uint
	// plus is added to a decoded scalar.
	plus uint64

	// Byte slots are sized by one of: a fixed size, the value of an
	// earlier slot, or the rest of the block.
	size     int
	sizeFrom int
	rest     bool
}

// layout lists the slots of one metadata block type. next returns the slot
// after i, or -1 at the end of the block; a smaller index starts the next
// record of a repeating structure.
type layout struct {
	slots   []slot
	derived map[bitstream.Field]func(*blockState) (uint64, bitstream.Result)
	start   func(*blockState) int
	next    func(st *blockState, i int) int
}

func (l *layout) index(f bitstream.Field) int {
	for i := range l.slots {
		if l.slots[i].field == f {
			return i
		}
	}
	return -1
}

func sequential(l *layout) func(*blockState, int) int {
	return func(_ *blockState, i int) int {
		if i+1 < len(l.slots) {
			return i + 1
		}
		return -1
	}
}

func uintSlot(f bitstream.Field, bits uint) slot {
	return slot{kind: slotUint, field: f, bits: bits, sizeFrom: -1}
}

func leSlot(f bitstream.Field) slot {
	return slot{kind: slotUintLE, field: f, bits: 32, sizeFrom: -1}
}

func fixedBytes(f bitstream.Field, size int) slot {
	return slot{kind: slotBytes, field: f, size: size, sizeFrom: -1}
}

func sizedBytes(f bitstream.Field, from int) slot {
	return slot{kind: slotBytes, field: f, sizeFrom: from}
}

func restBytes(f bitstream.Field) slot {
	return slot{kind: slotBytes, field: f, sizeFrom: -1, rest: true}
}

func skipBits(n uint) slot {
	return slot{kind: slotSkipBits, bits: n, sizeFrom: -1}
}

func constant(v uint64) func(*blockState) (uint64, bitstream.Result) {
	return func(*blockState) (uint64, bitstream.Result) { return v, bitstream.OK }
}

const (
	md5Size       = 16
	catalogSize   = 128
	isrcSize      = 12
	seekPointSize = 18
)

var layouts [bitstream.MetadataPicture + 1]*layout

// Slot indexes referenced by loop logic.
const (
	siSampleRate = 4
	siChannels   = 5
	siBPS        = 6

	vcTotal         = 2
	vcCommentLength = 3
	vcCommentString = 4

	csTracks      = 5
	csTrackOffset = 6
	csIndexPoints = 13
	csIndexOffset = 14
	csIndexSkip   = 16
)

func init() {
	streamInfo := &layout{
		slots: []slot{
			uintSlot(bitstream.StreamInfoMinBlockSize, 16),
			uintSlot(bitstream.StreamInfoMaxBlockSize, 16),
			uintSlot(bitstream.StreamInfoMinFrameSize, 24),
			uintSlot(bitstream.StreamInfoMaxFrameSize, 24),
			uintSlot(bitstream.StreamInfoSampleRate, 20),
			{kind: slotUint, field: bitstream.StreamInfoChannels, bits: 3, plus: 1, sizeFrom: -1},
			{kind: slotUint, field: bitstream.StreamInfoBitsPerSample, bits: 5, plus: 1, sizeFrom: -1},
			uintSlot(bitstream.StreamInfoTotalSamples, 36),
			fixedBytes(bitstream.StreamInfoMD5Data, md5Size),
		},
		derived: map[bitstream.Field]func(*blockState) (uint64, bitstream.Result){
			bitstream.StreamInfoMD5Length: constant(md5Size),
		},
	}
	streamInfo.next = sequential(streamInfo)

	vorbis := &layout{
		slots: []slot{
			leSlot(bitstream.VorbisVendorLength),
			sizedBytes(bitstream.VorbisVendorString, 0),
			leSlot(bitstream.VorbisCommentTotal),
			leSlot(bitstream.VorbisCommentLength),
			sizedBytes(bitstream.VorbisCommentString, vcCommentLength),
		},
		next: func(st *blockState, i int) int {
			switch i {
			case vcTotal:
				if st.vals[vcTotal] == 0 {
					return -1
				}
				return vcCommentLength
			case vcCommentString:
				st.loops[0]++
				if uint64(st.loops[0]) < st.vals[vcTotal] {
					return vcCommentLength
				}
				return -1
			}
			return i + 1
		},
	}

	picture := &layout{
		slots: []slot{
			uintSlot(bitstream.PictureType, 32),
			uintSlot(bitstream.PictureMimeLength, 32),
			sizedBytes(bitstream.PictureMimeString, 1),
			uintSlot(bitstream.PictureDescriptionLength, 32),
			sizedBytes(bitstream.PictureDescriptionString, 3),
			uintSlot(bitstream.PictureWidth, 32),
			uintSlot(bitstream.PictureHeight, 32),
			uintSlot(bitstream.PictureColorDepth, 32),
			uintSlot(bitstream.PictureTotalColors, 32),
			uintSlot(bitstream.PictureLength, 32),
			sizedBytes(bitstream.PictureData, 9),
		},
	}
	picture.next = sequential(picture)

	cueSheet := &layout{
		slots: []slot{
			fixedBytes(bitstream.CueSheetCatalogString, catalogSize),
			uintSlot(bitstream.CueSheetLeadin, 64),
			uintSlot(bitstream.CueSheetCDFlag, 1),
			skipBits(7),
			fixedBytes(bitstream.FieldInvalid, 258),
			uintSlot(bitstream.CueSheetTracks, 8),

			uintSlot(bitstream.CueSheetTrackOffset, 64),
			uintSlot(bitstream.CueSheetTrackNumber, 8),
			fixedBytes(bitstream.CueSheetTrackISRCString, isrcSize),
			uintSlot(bitstream.CueSheetTrackAudioFlag, 1),
			uintSlot(bitstream.CueSheetTrackPreemphFlag, 1),
			skipBits(6),
			fixedBytes(bitstream.FieldInvalid, 13),
			uintSlot(bitstream.CueSheetTrackIndexPoints, 8),

			uintSlot(bitstream.CueSheetIndexPointOffset, 64),
			uintSlot(bitstream.CueSheetIndexPointNumber, 8),
			fixedBytes(bitstream.FieldInvalid, 3),
		},
		derived: map[bitstream.Field]func(*blockState) (uint64, bitstream.Result){
			bitstream.CueSheetCatalogLength:   constant(catalogSize),
			bitstream.CueSheetTrackISRCLength: constant(isrcSize),
		},
		next: func(st *blockState, i int) int {
			switch i {
			case csTracks:
				if st.vals[csTracks] == 0 {
					return -1
				}
				return csTrackOffset
			case csIndexPoints:
				if st.vals[csIndexPoints] == 0 {
					return nextTrack(st)
				}
				return csIndexOffset
			case csIndexSkip:
				st.loops[1]++
				if uint64(st.loops[1]) < st.vals[csIndexPoints] {
					return csIndexOffset
				}
				return nextTrack(st)
			}
			return i + 1
		},
	}

	seekTable := &layout{
		slots: []slot{
			uintSlot(bitstream.SeekTableSampleNumber, 64),
			uintSlot(bitstream.SeekTableSampleOffset, 64),
			uintSlot(bitstream.SeekTableSamples, 16),
		},
		derived: map[bitstream.Field]func(*blockState) (uint64, bitstream.Result){
			bitstream.SeekTableSeekPoints: func(st *blockState) (uint64, bitstream.Result) {
				return uint64(st.length / seekPointSize), bitstream.OK
			},
		},
		start: func(st *blockState) int {
			if st.length < seekPointSize {
				return -1
			}
			return 0
		},
		next: func(st *blockState, i int) int {
			if i < 2 {
				return i + 1
			}
			st.loops[0]++
			if st.loops[0] < st.length/seekPointSize {
				return 0
			}
			return -1
		},
	}

	application := &layout{
		slots: []slot{
			uintSlot(bitstream.ApplicationID, 32),
			restBytes(bitstream.ApplicationData),
		},
		derived: map[bitstream.Field]func(*blockState) (uint64, bitstream.Result){
			bitstream.ApplicationLength: func(st *blockState) (uint64, bitstream.Result) {
				if st.length < 4 {
					return 0, bitstream.Failure
				}
				return uint64(st.length - 4), bitstream.OK
			},
		},
	}
	application.next = sequential(application)

	padding := &layout{
		slots: []slot{
			restBytes(bitstream.PaddingData),
		},
		derived: map[bitstream.Field]func(*blockState) (uint64, bitstream.Result){
			bitstream.PaddingLength: func(st *blockState) (uint64, bitstream.Result) {
				return uint64(st.length), bitstream.OK
			},
		},
	}
	padding.next = sequential(padding)

	layouts[bitstream.MetadataStreamInfo] = streamInfo
	layouts[bitstream.MetadataPadding] = padding
	layouts[bitstream.MetadataApplication] = application
	layouts[bitstream.MetadataSeekTable] = seekTable
	layouts[bitstream.MetadataVorbisComment] = vorbis
	layouts[bitstream.MetadataCueSheet] = cueSheet
	layouts[bitstream.MetadataPicture] = picture
}

func nextTrack(st *blockState) int {
	st.loops[1] = 0
	st.loops[0]++
	if uint64(st.loops[0]) < st.vals[csTracks] {
		return csTrackOffset
	}
	return -1
}

// emptyLayout is used for block types without a known structure.
var emptyLayout = &layout{
	next: func(*blockState, int) int { return -1 },
}

func layoutFor(t bitstream.MetadataType) *layout {
	if t.Known() {
		return layouts[t]
	}
	return emptyLayout
}
