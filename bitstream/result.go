// SPDX-License-Identifier: EPL-2.0

package bitstream

import (
	"fmt"
	"strconv"
)

// Result is the outcome of one parser call. Negative values are failures.
type Result int

const (
	SubframeReservedType Result = iota - 18
	SubframeReservedBit
	StreamMarkerInvalid
	ReservedCodingMethod
	MetadataTypeReserved
	MetadataTypeInvalid
	FrameReservedSampleSize
	FrameReservedChannelAssignment
	FrameInvalidSampleSize
	FrameInvalidSampleRate
	FrameReservedBlocksize
	FrameReservedBit2
	FrameReservedBit1
	FrameSyncCodeInvalid
	FrameCRC16Invalid
	FrameCRC8Invalid
	Failure
	Continue
	OK
	End
)

var resultLabels = map[Result]string{
	SubframeReservedType:           "subframe reserved type",
	SubframeReservedBit:            "subframe reserved bit",
	StreamMarkerInvalid:            "stream marker invalid",
	ReservedCodingMethod:           "reserved residual coding method",
	MetadataTypeReserved:           "metadata type reserved",
	MetadataTypeInvalid:            "metadata type invalid",
	FrameReservedSampleSize:        "frame reserved sample size",
	FrameReservedChannelAssignment: "frame reserved channel assignment",
	FrameInvalidSampleSize:         "frame invalid sample size",
	FrameInvalidSampleRate:         "frame invalid sample rate",
	FrameReservedBlocksize:         "frame reserved blocksize",
	FrameReservedBit2:              "frame reserved bit 2",
	FrameReservedBit1:              "frame reserved bit 1",
	FrameSyncCodeInvalid:           "frame sync code invalid",
	FrameCRC16Invalid:              "frame crc16 invalid",
	FrameCRC8Invalid:               "frame crc8 invalid",
	Failure:                        "error",
	Continue:                       "continue",
	OK:                             "ok",
	End:                            "end",
}

func (r Result) String() string {
	if s, ok := resultLabels[r]; ok {
		return s
	}
	return "result(" + strconv.Itoa(int(r)) + ")"
}

// Failed reports whether r is a bitstream violation.
func (r Result) Failed() bool { return r < Continue }

// Err returns r as an error, or nil when r is not a failure.
func (r Result) Err() error {
	if !r.Failed() {
		return nil
	}
	return &Error{Code: r}
}

// Error is a bitstream violation surfaced by a parser.
type Error struct {
	Code Result
}

func (e *Error) Error() string {
	return fmt.Sprintf("flac: %s (%d)", e.Code, int(e.Code))
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}
