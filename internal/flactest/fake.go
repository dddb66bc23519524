// SPDX-License-Identifier: EPL-2.0

package flactest

import (
	"github.com/ik5/flacpull/bitstream"
)

// Step is one scripted parser response.
type Step struct {
	// N is the byte count reported as consumed, capped at the input
	// length. A negative N consumes all input.
	N      int
	Result bitstream.Result

	Value   uint64
	Data    []byte
	Samples [][]int32

	// State, Meta and Frame replace the parser's reported headers when set.
	State bitstream.State
	Meta  *bitstream.MetadataHeader
	Frame *bitstream.FrameHeader
}

// FakeParser replays scripted steps. A call with no step left reports End
// without consuming anything.
type FakeParser struct {
	Fields  map[bitstream.Field][]Step
	Syncs   []Step
	Decodes []Step

	// Calls records every field queried, in order.
	Calls []bitstream.Field
	// Inits records every container passed to Init.
	Inits []bitstream.Container

	state bitstream.State
	meta  bitstream.MetadataHeader
	frame bitstream.FrameHeader
}

var _ bitstream.Parser = (*FakeParser)(nil)

func (p *FakeParser) Init(c bitstream.Container) {
	p.Inits = append(p.Inits, c)
	p.state = 0
	p.meta = bitstream.MetadataHeader{}
	p.frame = bitstream.FrameHeader{}
}

func (p *FakeParser) State() bitstream.State                   { return p.state }
func (p *FakeParser) MetadataHeader() bitstream.MetadataHeader { return p.meta }
func (p *FakeParser) FrameHeader() bitstream.FrameHeader       { return p.frame }

func (p *FakeParser) Sync(data []byte) (int, bitstream.Result) {
	st, ok := pop(&p.Syncs)
	if !ok {
		return 0, bitstream.End
	}
	p.apply(st)
	return st.consumed(data), st.Result
}

func (p *FakeParser) Decode(data []byte, samples [][]int32) (int, bitstream.Result) {
	st, ok := pop(&p.Decodes)
	if !ok {
		return 0, bitstream.End
	}
	p.apply(st)
	for c, s := range st.Samples {
		copy(samples[c], s)
	}
	return st.consumed(data), st.Result
}

func (p *FakeParser) Uint(f bitstream.Field, data []byte) (int, uint64, bitstream.Result) {
	p.Calls = append(p.Calls, f)
	st, ok := p.next(f)
	if !ok {
		return 0, 0, bitstream.End
	}
	return st.consumed(data), st.Value, st.Result
}

func (p *FakeParser) Bytes(f bitstream.Field, data, out []byte) (int, int, bitstream.Result) {
	p.Calls = append(p.Calls, f)
	st, ok := p.next(f)
	if !ok {
		return 0, 0, bitstream.End
	}
	w := copy(out, st.Data)
	return st.consumed(data), w, st.Result
}

func (p *FakeParser) next(f bitstream.Field) (Step, bool) {
	q, ok := p.Fields[f]
	if !ok {
		return Step{}, false
	}
	st, ok := pop(&q)
	p.Fields[f] = q
	if ok {
		p.apply(st)
	}
	return st, ok
}

func (p *FakeParser) apply(st Step) {
	if st.State != 0 {
		p.state = st.State
	}
	if st.Meta != nil {
		p.meta = *st.Meta
	}
	if st.Frame != nil {
		p.frame = *st.Frame
	}
}

func (st Step) consumed(data []byte) int {
	if st.N < 0 || st.N > len(data) {
		return len(data)
	}
	return st.N
}

func pop(q *[]Step) (Step, bool) {
	if len(*q) == 0 {
		return Step{}, false
	}
	st := (*q)[0]
	*q = (*q)[1:]
	return st, true
}
