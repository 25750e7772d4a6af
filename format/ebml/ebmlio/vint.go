package ebmlio

import (
	"io"
	"math/bits"

	"github.com/deepch/ebml/utils/bits/pio"
)

// MaxVIntLen is the longest VINT this package reads or writes.
const MaxVIntLen = 8

// VInt is a decoded variable length integer and the number of octets it
// occupied on the wire.
type VInt struct {
	Value uint64
	Len   int
}

// vintLen returns the total length selected by the first octet, or 0 when
// no marker bit is set.
func vintLen(first byte) int {
	if first == 0 {
		return 0
	}
	return bits.LeadingZeros8(first) + 1
}

func vintValue(b []byte, mask bool) uint64 {
	v := pio.UBE(b)
	if mask {
		v &^= 1 << uint(7*len(b))
	}
	return v
}

// ReadVInt reads one VINT from r. With mask set the length marker is removed
// from the value, as for element sizes; element IDs keep it.
//
// io.EOF is returned only when r is exhausted before the first octet.
func ReadVInt(r io.Reader, mask bool) (VInt, error) {
	var b [MaxVIntLen]byte
	return readVInt(r, b[:], mask)
}

func readVInt(r io.Reader, b []byte, mask bool) (v VInt, err error) {
	if _, err = io.ReadFull(r, b[:1]); err != nil {
		return
	}
	n := vintLen(b[0])
	if n == 0 {
		return v, ErrInvalidVInt
	}
	if n > 1 {
		if _, err = io.ReadFull(r, b[1:n]); err != nil {
			return v, eofErr(err)
		}
	}
	v.Value = vintValue(b[:n], mask)
	v.Len = n
	return
}

// DecodeVInt decodes a VINT from the start of b.
func DecodeVInt(b []byte, mask bool) (v VInt, err error) {
	if len(b) == 0 {
		return v, ErrUnexpectedEOF
	}
	n := vintLen(b[0])
	if n == 0 {
		return v, ErrInvalidVInt
	}
	if len(b) < n {
		return v, ErrUnexpectedEOF
	}
	v.Value = vintValue(b[:n], mask)
	v.Len = n
	return
}

// VIntLen returns the minimal number of octets needed to encode v.
func VIntLen(v uint64) (int, error) {
	for n := 1; n <= MaxVIntLen; n++ {
		if v < 1<<uint(7*n) {
			return n, nil
		}
	}
	return 0, ErrIntegerTooBig
}

// SizeVIntLen returns the number of octets needed to write v as an element
// size. Unlike VIntLen it never picks a length at which v would be all ones,
// since that value marks an unknown size.
func SizeVIntLen(v uint64) (int, error) {
	for n := 1; n <= MaxVIntLen; n++ {
		if v < 1<<uint(7*n)-1 {
			return n, nil
		}
	}
	return 0, ErrIntegerTooBig
}

// IsUnknownSize reports whether size, read from an n octet VINT, is the
// reserved all-ones value.
func IsUnknownSize(size uint64, n int) bool {
	return n >= 1 && n <= MaxVIntLen && size == 1<<uint(7*n)-1
}

// PutVInt writes v into b using exactly len(b) octets.
func PutVInt(b []byte, v uint64) error {
	n := len(b)
	if n < 1 || n > MaxVIntLen || v >= 1<<uint(7*n) {
		return ErrIntegerTooBig
	}
	pio.PutUBE(b, v|1<<uint(7*n))
	return nil
}

// EncodeVInt returns the minimal VINT encoding of v.
func EncodeVInt(v uint64) ([]byte, error) {
	n, err := VIntLen(v)
	if err != nil {
		return nil, err
	}
	return EncodeVIntLen(v, n)
}

// EncodeVIntLen encodes v on exactly n octets, for size fields that are
// reserved before their value is known.
func EncodeVIntLen(v uint64, n int) ([]byte, error) {
	b := make([]byte, n)
	if err := PutVInt(b, v); err != nil {
		return nil, err
	}
	return b, nil
}

func eofErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrUnexpectedEOF
	}
	return err
}
