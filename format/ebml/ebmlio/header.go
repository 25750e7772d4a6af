package ebmlio

import (
	"io"
	"math/bits"
)

// ElementHeader is the (ID, size) pair that starts every element. The ID
// keeps its length marker, the size does not.
type ElementHeader struct {
	ID      uint64
	Size    uint64
	SizeLen int // octets of the size VINT as read, 0 for built headers
}

// HeaderLen returns the encoded length of the header.
func (h ElementHeader) HeaderLen() (int, error) {
	n, err := IDLen(h.ID)
	if err != nil {
		return 0, err
	}
	m, err := SizeVIntLen(h.Size)
	if err != nil {
		return 0, err
	}
	return n + m, nil
}

// ReadHeader reads one element header from r and returns it with the number
// of bytes consumed. io.EOF means r ended cleanly before the header.
func ReadHeader(r io.Reader) (ElementHeader, int, error) {
	var b [MaxVIntLen]byte
	return readHeader(r, b[:])
}

func readHeader(r io.Reader, b []byte) (h ElementHeader, n int, err error) {
	id, err := readVInt(r, b, false)
	if err != nil {
		return
	}
	size, err := readVInt(r, b, true)
	if err != nil {
		return h, 0, eofErr(err)
	}
	h.ID = id.Value
	h.Size = size.Value
	h.SizeLen = size.Len
	n = id.Len + size.Len
	return
}

// IDLen returns the number of octets of an element ID and checks that its
// length marker agrees with it.
func IDLen(id uint64) (int, error) {
	if id == 0 {
		return 0, ErrInvalidID
	}
	n := (bits.Len64(id) + 7) / 8
	if vintLen(byte(id>>uint(8*(n-1)))) != n {
		return 0, ErrInvalidID
	}
	return n, nil
}
