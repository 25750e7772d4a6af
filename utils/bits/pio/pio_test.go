package pio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUBE(t *testing.T) {
	values := []struct {
		B []byte
		V uint64
	}{
		{nil, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x06, 0x79, 0x32}, 424242},
		{[]byte{0x1a, 0x45, 0xdf, 0xa3}, 0x1a45dfa3},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 1<<64 - 1},
	}
	for _, ex := range values {
		assert.Equal(t, ex.V, UBE(ex.B), "%x", ex.B)
	}
}

func TestIBE(t *testing.T) {
	values := []struct {
		B []byte
		V int64
	}{
		{nil, 0},
		{[]byte{0x7f}, 127},
		{[]byte{0xff}, -1},
		{[]byte{0x80, 0x00}, -32768},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x29, 0xa6}, -54874},
		{[]byte{0xff, 0x29, 0xa6}, -54874},
	}
	for _, ex := range values {
		assert.Equal(t, ex.V, IBE(ex.B), "%x", ex.B)
	}
}

func TestPutUBE(t *testing.T) {
	b := make([]byte, 3)
	PutUBE(b, 0x331f2a)
	assert.Equal(t, []byte{0x33, 0x1f, 0x2a}, b)

	b = make([]byte, 8)
	PutU64BE(b, 0x0102030405060708)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, b)
	assert.Equal(t, uint64(0x0102030405060708), U64BE(b))
	assert.Equal(t, uint32(0x01020304), U32BE(b))
	assert.Equal(t, uint32(0x010203), U24BE(b))
	assert.Equal(t, uint16(0x0102), U16BE(b))
}
