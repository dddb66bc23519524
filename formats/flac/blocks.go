// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/flacpull/session"
	"github.com/ik5/flacpull/wideint"
)

// blockReader pulls fields in order and keeps the first error.
type blockReader struct {
	s   *Source
	err error
}

func get[T any](br *blockReader, op func([]byte) session.Outcome[T]) T {
	var v T
	if br.err == nil {
		v, br.err = pull(br.s, op)
	}
	return v
}

func getWide(br *blockReader, op func([]byte) session.Outcome[wideint.Uint64]) uint64 {
	return get(br, op).Uint64()
}

func getText(br *blockReader, op func([]byte, int) session.Outcome[[]byte]) []byte {
	if br.err != nil {
		return nil
	}
	var v []byte
	v, br.err = pullText(br.s, op)
	return v
}

// padded strips the NUL padding of fixed-width text fields.
func padded(b []byte) string {
	return string(bytes.TrimRight(b, "\x00"))
}

func (s *Source) readStreamInfo() error {
	br := &blockReader{s: s}
	x := s.sess

	info := &StreamInfo{
		MinBlockSize:  get(br, x.StreamInfoMinBlockSize),
		MaxBlockSize:  get(br, x.StreamInfoMaxBlockSize),
		MinFrameSize:  get(br, x.StreamInfoMinFrameSize),
		MaxFrameSize:  get(br, x.StreamInfoMaxFrameSize),
		SampleRate:    get(br, x.StreamInfoSampleRate),
		Channels:      get(br, x.StreamInfoChannels),
		BitsPerSample: get(br, x.StreamInfoBitsPerSample),
		TotalSamples:  getWide(br, x.StreamInfoTotalSamples),
	}
	copy(info.MD5[:], getText(br, x.StreamInfoMD5Data))
	if br.err != nil {
		return br.err
	}

	s.meta.StreamInfo = info
	s.format = &goaudio.Format{NumChannels: int(info.Channels), SampleRate: int(info.SampleRate)}
	s.bitDepth = int(info.BitsPerSample)

	return nil
}

func (s *Source) readComments() error {
	br := &blockReader{s: s}
	x := s.sess

	s.meta.Vendor = string(getText(br, x.VorbisVendorString))
	total := get(br, x.VorbisCommentTotal)
	for i := uint32(0); i < total && br.err == nil; i++ {
		if c := getText(br, x.VorbisCommentString); br.err == nil {
			s.meta.Comments = append(s.meta.Comments, string(c))
		}
	}

	return br.err
}

func (s *Source) readPicture() error {
	br := &blockReader{s: s}
	x := s.sess

	p := Picture{
		Type:        get(br, x.PictureType),
		MIME:        string(getText(br, x.PictureMimeString)),
		Description: string(getText(br, x.PictureDescriptionString)),
		Width:       get(br, x.PictureWidth),
		Height:      get(br, x.PictureHeight),
		ColorDepth:  get(br, x.PictureColorDepth),
		TotalColors: get(br, x.PictureTotalColors),
		Data:        getText(br, x.PictureData),
	}
	if br.err != nil {
		return br.err
	}

	s.meta.Pictures = append(s.meta.Pictures, p)

	return nil
}

func (s *Source) readCueSheet() error {
	br := &blockReader{s: s}
	x := s.sess

	cue := &CueSheet{
		Catalog: padded(getText(br, x.CueSheetCatalogString)),
		LeadIn:  getWide(br, x.CueSheetLeadin),
		CD:      get(br, x.CueSheetCDFlag) == 1,
	}

	tracks := get(br, x.CueSheetTracks)
	for range tracks {
		t := CueTrack{
			Offset:      getWide(br, x.CueSheetTrackOffset),
			Number:      get(br, x.CueSheetTrackNumber),
			ISRC:        padded(getText(br, x.CueSheetTrackISRCString)),
			NonAudio:    get(br, x.CueSheetTrackAudioFlag) == 1,
			PreEmphasis: get(br, x.CueSheetTrackPreemphFlag) == 1,
		}
		points := get(br, x.CueSheetTrackIndexPoints)
		for range points {
			t.Indexes = append(t.Indexes, CueIndex{
				Offset: getWide(br, x.CueSheetIndexPointOffset),
				Number: get(br, x.CueSheetIndexPointNumber),
			})
		}
		if br.err != nil {
			return br.err
		}
		cue.Tracks = append(cue.Tracks, t)
	}
	if br.err != nil {
		return br.err
	}

	s.meta.CueSheet = cue

	return nil
}

func (s *Source) readSeekTable() error {
	br := &blockReader{s: s}
	x := s.sess

	n := get(br, x.SeekTableSeekPoints)
	for i := uint32(0); i < n && br.err == nil; i++ {
		p := SeekPoint{
			SampleNumber: getWide(br, x.SeekTableSampleNumber),
			Offset:       getWide(br, x.SeekTableSampleOffset),
			Samples:      get(br, x.SeekTableSamples),
		}
		if br.err == nil {
			s.meta.SeekTable = append(s.meta.SeekTable, p)
		}
	}

	return br.err
}

func (s *Source) readApplication() error {
	br := &blockReader{s: s}
	x := s.sess

	app := Application{
		ID:   get(br, x.ApplicationID),
		Data: getText(br, x.ApplicationData),
	}
	if br.err != nil {
		return br.err
	}

	s.meta.Applications = append(s.meta.Applications, app)

	return nil
}
