package ebmlio

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteElement(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteElement(0xaa, []byte{10}))
	assert.Equal(t, []byte{0xaa, 0x81, 10}, buf.Bytes())
	assert.Equal(t, int64(3), w.Written())

	assert.ErrorIs(t, w.WriteElement(0x2a, []byte{10}), ErrInvalidID)
}

func TestWriteHeaderLen(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeaderLen(0x18538067, 1<<56-1, 8))
	assert.Equal(t, []byte{0x18, 0x53, 0x80, 0x67, 0x01, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, buf.Bytes())

	buf.Reset()
	require.NoError(t, w.WriteHeaderLen(0xa3, 5, 4))
	assert.Equal(t, []byte{0xa3, 0x10, 0x00, 0x00, 0x05}, buf.Bytes())

	assert.ErrorIs(t, w.WriteHeaderLen(0xa3, 200, 1), ErrIntegerTooBig)
}

func TestWriteHeaderAvoidsUnknownSize(t *testing.T) {
	values := []struct {
		Size uint64
		B    []byte
	}{
		{126, []byte{0xa3, 0xfe}},
		{127, []byte{0xa3, 0x40, 0x7f}},
		{16382, []byte{0xa3, 0x7f, 0xfe}},
		{16383, []byte{0xa3, 0x20, 0x3f, 0xff}},
	}
	for _, ex := range values {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(&buf).WriteHeader(0xa3, ex.Size))
		assert.Equal(t, ex.B, buf.Bytes(), "%d", ex.Size)

		n, err := ElementHeader{ID: 0xa3, Size: ex.Size}.HeaderLen()
		require.NoError(t, err)
		assert.Equal(t, len(ex.B), n, "%d", ex.Size)

		h, _, err := ReadHeader(&buf)
		require.NoError(t, err)
		assert.Equal(t, ex.Size, h.Size)
		assert.False(t, IsUnknownSize(h.Size, h.SizeLen), "%d", ex.Size)
	}

	el := NewLeaf(0xa3, make([]byte, 127))
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteTree(el))
	assert.Equal(t, []byte{0xa3, 0x40, 0x7f}, buf.Bytes()[:3])
	n, err := el.Len()
	require.NoError(t, err)
	assert.Equal(t, uint64(buf.Len()), n)

	_, err = EncodeHeader(0xa3, 1<<56-1)
	assert.ErrorIs(t, err, ErrIntegerTooBig)
}

func TestWriteTreeHeader(t *testing.T) {
	root := NewMaster(0x1a45dfa3,
		NewLeaf(0x4282, []byte("matroska")),
		NewLeaf(0x4287, EncodeUint(1)),
		NewLeaf(0x4285, EncodeUint(1)),
	)
	n, err := root.Len()
	require.NoError(t, err)
	assert.Equal(t, uint64(len(ebmlHeader)), n)

	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteTree(root))
	assert.Equal(t, ebmlHeader, buf.Bytes())
}

func TestWriteTyped(t *testing.T) {
	when := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteUint(0x81, 424242))
	require.NoError(t, w.WriteInt(0x82, -54874))
	require.NoError(t, w.WriteFloat(0x83, 42.5))
	require.NoError(t, w.WriteFloat(0x84, 55724.415732327))
	require.NoError(t, w.WriteString(0x85, "matroska"))
	require.NoError(t, w.WriteDate(0x86, when))
	require.NoError(t, w.WriteBinary(0x87, []byte{1, 2}))

	r := NewReader(bytes.NewReader(buf.Bytes()), ReaderOptions{})
	next := func(id uint64) *Element {
		el, _, err := r.ReadElement()
		require.NoError(t, err)
		require.Equal(t, id, el.ID)
		return el
	}

	u, err := next(0x81).Data.Uint()
	require.NoError(t, err)
	assert.Equal(t, uint64(424242), u)

	el := next(0x82)
	assert.Equal(t, uint64(3), el.Size)
	i, err := el.Data.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(-54874), i)

	el = next(0x83)
	assert.Equal(t, uint64(4), el.Size)
	f, err := el.Data.Float()
	require.NoError(t, err)
	assert.Equal(t, 42.5, f)

	el = next(0x84)
	assert.Equal(t, uint64(8), el.Size)
	f, err = el.Data.Float()
	require.NoError(t, err)
	assert.Equal(t, 55724.415732327, f)

	s, err := next(0x85).Data.UTF8()
	require.NoError(t, err)
	assert.Equal(t, "matroska", s)

	d, err := next(0x86).Data.Date()
	require.NoError(t, err)
	assert.True(t, when.Equal(d))

	b, err := next(0x87).Data.Binary()
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
}

func TestEncodeUint(t *testing.T) {
	values := []struct {
		V uint64
		B []byte
	}{
		{0, []byte{0}},
		{1, []byte{1}},
		{255, []byte{0xff}},
		{256, []byte{1, 0}},
		{424242, []byte{0x06, 0x79, 0x32}},
		{math.MaxUint64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, ex := range values {
		assert.Equal(t, ex.B, EncodeUint(ex.V), "%d", ex.V)
	}
}

func TestEncodeInt(t *testing.T) {
	values := []struct {
		V int64
		B []byte
	}{
		{0, []byte{0}},
		{-1, []byte{0xff}},
		{127, []byte{0x7f}},
		{128, []byte{0x00, 0x80}},
		{-128, []byte{0x80}},
		{-54874, []byte{0xff, 0x29, 0xa6}},
		{math.MinInt64, []byte{0x80, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, ex := range values {
		b := EncodeInt(ex.V)
		assert.Equal(t, ex.B, b, "%d", ex.V)
		v, err := Int(b)
		require.NoError(t, err)
		assert.Equal(t, ex.V, v)
	}
}

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write(b []byte) (int, error) {
	return 0, errWrite
}

func TestWriterError(t *testing.T) {
	w := NewWriter(failWriter{})
	assert.ErrorIs(t, w.WriteUint(0x81, 1), errWrite)
	assert.ErrorIs(t, w.WriteTree(NewMaster(0xa0, NewLeaf(0xa1, nil))), errWrite)
	assert.ErrorIs(t, w.WriteVInt(1<<56), ErrIntegerTooBig)
	assert.Zero(t, w.Written())
}
