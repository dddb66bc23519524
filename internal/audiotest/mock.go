// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"

	goaudio "github.com/go-audio/audio"
)

// MockSource is a test helper that generates integer PCM.
// It implements the audio.Source interface (without importing it to avoid cycles).
type MockSource struct {
	format       *goaudio.Format
	bitDepth     int
	totalSamples int // Total samples to generate (per channel)
	generated    int // Samples generated so far (per channel)
	waveform     func(sample int, channel int) int
	closed       bool
}

// NewMockSource creates a new mock audio source.
// totalSamples is the total number of samples per channel to generate.
func NewMockSource(sampleRate, channels, bitDepth, totalSamples int, waveform func(sample int, channel int) int) *MockSource {
	return &MockSource{
		format:       &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		bitDepth:     bitDepth,
		totalSamples: totalSamples,
		waveform:     waveform,
	}
}

// NewSilentSource creates a mock source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, bitDepth, totalSamples int) *MockSource {
	return NewMockSource(sampleRate, channels, bitDepth, totalSamples, func(int, int) int {
		return 0
	})
}

// NewRampSource creates a mock source whose samples count up, offset per
// channel, and wrap to stay inside bitDepth.
func NewRampSource(sampleRate, channels, bitDepth, totalSamples int) *MockSource {
	half := 1 << (bitDepth - 1)
	return NewMockSource(sampleRate, channels, bitDepth, totalSamples, func(sample, channel int) int {
		return (sample*channels+channel)%(2*half) - half
	})
}

func (m *MockSource) Format() *goaudio.Format { return m.format }
func (m *MockSource) BitDepth() int           { return m.bitDepth }
func (m *MockSource) Closed() bool            { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

func (m *MockSource) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.generated >= m.totalSamples {
		return 0, io.EOF
	}

	channels := m.format.NumChannels
	framesToWrite := min(len(buf.Data)/channels, m.totalSamples-m.generated)

	for frame := range framesToWrite {
		sampleIndex := m.generated + frame
		for ch := range channels {
			buf.Data[frame*channels+ch] = m.waveform(sampleIndex, ch)
		}
	}

	m.generated += framesToWrite
	buf.Format = m.format
	buf.SourceBitDepth = m.bitDepth

	return framesToWrite * channels, nil
}
