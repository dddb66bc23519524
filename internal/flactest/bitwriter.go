// SPDX-License-Identifier: EPL-2.0

package flactest

// BitWriter packs values most significant bit first.
type BitWriter struct {
	buf  []byte
	cur  byte
	nbit uint
}

func (w *BitWriter) WriteBits(v uint64, n uint) {
	for n > 0 {
		n--
		w.cur = w.cur<<1 | byte(v>>n&1)
		w.nbit++
		if w.nbit == 8 {
			w.buf = append(w.buf, w.cur)
			w.cur, w.nbit = 0, 0
		}
	}
}

func (w *BitWriter) WriteSigned(v int64, n uint) {
	w.WriteBits(uint64(v)&(1<<n-1), n)
}

// WriteUnary writes q zero bits followed by a one bit.
func (w *BitWriter) WriteUnary(q uint64) {
	for range q {
		w.WriteBits(0, 1)
	}
	w.WriteBits(1, 1)
}

func (w *BitWriter) WriteBytes(p []byte) {
	for _, b := range p {
		w.WriteBits(uint64(b), 8)
	}
}

// Align pads with zero bits to a byte boundary.
func (w *BitWriter) Align() {
	for w.nbit != 0 {
		w.WriteBits(0, 1)
	}
}

// Bytes returns the aligned output.
func (w *BitWriter) Bytes() []byte {
	w.Align()
	return w.buf
}
