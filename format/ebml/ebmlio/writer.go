package ebmlio

import (
	"io"
	"math"
	"time"

	"github.com/deepch/ebml/utils/bits/pio"
)

// Writer encodes EBML elements to a sequential byte sink.
type Writer struct {
	w io.Writer
	n int64
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Written returns the number of bytes written so far.
func (w *Writer) Written() int64 {
	return w.n
}

func (w *Writer) write(b []byte) error {
	n, err := w.w.Write(b)
	w.n += int64(n)
	return err
}

// WriteVInt writes v as a minimal VINT.
func (w *Writer) WriteVInt(v uint64) error {
	b, err := EncodeVInt(v)
	if err != nil {
		return err
	}
	return w.write(b)
}

// WriteHeader writes an element ID followed by the shortest size VINT that
// is not the unknown size marker.
func (w *Writer) WriteHeader(id uint64, size uint64) error {
	b, err := EncodeHeader(id, size)
	if err != nil {
		return err
	}
	return w.write(b)
}

// WriteHeaderLen writes a header whose size VINT takes exactly n octets.
func (w *Writer) WriteHeaderLen(id uint64, size uint64, n int) error {
	idn, err := IDLen(id)
	if err != nil {
		return err
	}
	b := make([]byte, idn+n)
	pio.PutUBE(b[:idn], id)
	if err = PutVInt(b[idn:], size); err != nil {
		return err
	}
	return w.write(b)
}

// WriteElement writes a leaf element.
func (w *Writer) WriteElement(id uint64, data []byte) error {
	if err := w.WriteHeader(id, uint64(len(data))); err != nil {
		return err
	}
	return w.write(data)
}

func (w *Writer) WriteBinary(id uint64, b []byte) error {
	return w.WriteElement(id, b)
}

func (w *Writer) WriteUint(id uint64, v uint64) error {
	return w.WriteElement(id, EncodeUint(v))
}

func (w *Writer) WriteInt(id uint64, v int64) error {
	return w.WriteElement(id, EncodeInt(v))
}

func (w *Writer) WriteFloat(id uint64, v float64) error {
	return w.WriteElement(id, EncodeFloat(v))
}

func (w *Writer) WriteString(id uint64, s string) error {
	return w.WriteElement(id, []byte(s))
}

func (w *Writer) WriteDate(id uint64, t time.Time) error {
	return w.WriteElement(id, EncodeDate(t))
}

// WriteTree writes el and its descendants. Master sizes are computed from
// the children, so Size need not be set on elements built in memory.
func (w *Writer) WriteTree(el *Element) error {
	size, err := el.DataLen()
	if err != nil {
		return err
	}
	if err = w.WriteHeader(el.ID, size); err != nil {
		return err
	}
	if !el.Master {
		return w.write(el.Data.Peek())
	}
	for _, child := range el.Children {
		if err = w.WriteTree(child); err != nil {
			return err
		}
	}
	return nil
}

// EncodeHeader returns the wire form of an element header. A size that
// would be all ones on its minimal length is written one octet longer.
func EncodeHeader(id uint64, size uint64) ([]byte, error) {
	n, err := IDLen(id)
	if err != nil {
		return nil, err
	}
	m, err := SizeVIntLen(size)
	if err != nil {
		return nil, err
	}
	sb, err := EncodeVIntLen(size, m)
	if err != nil {
		return nil, err
	}
	b := make([]byte, n, n+len(sb))
	pio.PutUBE(b, id)
	return append(b, sb...), nil
}

// EncodeUint returns v on the fewest bytes, one byte for zero.
func EncodeUint(v uint64) []byte {
	n := 1
	for n < 8 && v >= 1<<uint(8*n) {
		n++
	}
	b := make([]byte, n)
	pio.PutUBE(b, v)
	return b
}

// EncodeInt returns v as two's complement on the fewest bytes that keep its
// sign.
func EncodeInt(v int64) []byte {
	n := 1
	for n < 8 {
		shift := uint(64 - 8*n)
		if v<<shift>>shift == v {
			break
		}
		n++
	}
	b := make([]byte, n)
	pio.PutUBE(b, uint64(v))
	return b
}

// EncodeFloat returns v as binary32 when that is lossless, binary64 otherwise.
func EncodeFloat(v float64) []byte {
	if f := float32(v); float64(f) == v {
		b := make([]byte, 4)
		pio.PutU32BE(b, math.Float32bits(f))
		return b
	}
	b := make([]byte, 8)
	pio.PutU64BE(b, math.Float64bits(v))
	return b
}

// EncodeDate returns t as nanoseconds since Epoch.
func EncodeDate(t time.Time) []byte {
	b := make([]byte, 8)
	pio.PutU64BE(b, uint64(t.Sub(Epoch)))
	return b
}
