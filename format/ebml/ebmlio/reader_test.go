package ebmlio

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ebmlHeader = []byte{
	0x1a, 0x45, 0xdf, 0xa3, 0x93, 0x42, 0x82, 0x88, 0x6d, 0x61, 0x74, 0x72, 0x6f, 0x73, 0x6b,
	0x61, 0x42, 0x87, 0x81, 0x01, 0x42, 0x85, 0x81, 0x01,
}

func headerRegistry() *Registry {
	reg := NewRegistry()
	reg.RegisterName(0x1a45dfa3, true, "EBML")
	reg.RegisterName(0x4282, false, "DocType")
	reg.RegisterName(0x4287, false, "DocTypeVersion")
	reg.RegisterName(0x4285, false, "DocTypeReadVersion")
	return reg
}

func corrupt(b []byte, i int, v byte) []byte {
	c := append([]byte(nil), b...)
	c[i] = v
	return c
}

func TestReadElementHeader(t *testing.T) {
	r := NewReader(bytes.NewReader(ebmlHeader), ReaderOptions{Registry: headerRegistry()})
	root, n, err := r.ReadElement()
	require.NoError(t, err)
	assert.Equal(t, len(ebmlHeader), n)
	assert.Equal(t, int64(len(ebmlHeader)), r.Offset())

	assert.Equal(t, uint64(0x1a45dfa3), root.ID)
	assert.Equal(t, uint64(0x13), root.Size)
	assert.True(t, root.Master)
	assert.False(t, root.Data.Present())
	require.Len(t, root.Children, 3)

	docType := root.Children[0]
	assert.Equal(t, uint64(0x4282), docType.ID)
	assert.Equal(t, int64(5), docType.Offset)
	s, err := docType.Data.UTF8()
	require.NoError(t, err)
	assert.Equal(t, "matroska", s)

	version := root.Children[1]
	assert.Equal(t, uint64(0x4287), version.ID)
	v, err := version.Data.Uint()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)

	readVersion := root.Children[2]
	assert.Equal(t, uint64(0x4285), readVersion.ID)
	v, err = readVersion.Data.Uint()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)

	_, _, err = r.ReadElement()
	assert.Equal(t, io.EOF, err)
}

func TestShallowBookkeeping(t *testing.T) {
	r := NewReader(bytes.NewReader(ebmlHeader), ReaderOptions{})
	root, n, err := r.ReadHeader()
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	var count uint64
	var ids []uint64
	for count < root.Size {
		h, c, err := r.ReadHeader()
		require.NoError(t, err)
		count += uint64(c)

		_, err = r.ReadData(h.Size)
		require.NoError(t, err)
		count += h.Size
		ids = append(ids, h.ID)
	}
	assert.Equal(t, root.Size, count)
	assert.Equal(t, []uint64{0x4282, 0x4287, 0x4285}, ids)
}

func TestShallowBookkeepingCorruptSize(t *testing.T) {
	// root size 0x13 -> 0x12: the children no longer add up to it
	r := NewReader(bytes.NewReader(corrupt(ebmlHeader, 4, 0x92)), ReaderOptions{})
	root, _, err := r.ReadHeader()
	require.NoError(t, err)

	var count uint64
	for count < root.Size {
		h, c, err := r.ReadHeader()
		require.NoError(t, err)
		count += uint64(c)
		require.NoError(t, r.Skip(h.Size))
		count += h.Size
	}
	assert.NotEqual(t, root.Size, count)
}

func TestShallowSkip(t *testing.T) {
	r := NewReader(bytes.NewReader(ebmlHeader), ReaderOptions{})
	_, _, err := r.ReadHeader()
	require.NoError(t, err)

	h, _, err := r.ReadHeader()
	require.NoError(t, err)
	require.NoError(t, r.Skip(h.Size))

	h, _, err = r.ReadHeader()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x4287), h.ID)
	assert.Equal(t, int64(19), r.Offset())

	require.NoError(t, r.Skip(h.Size))
	h, _, err = r.ReadHeader()
	require.NoError(t, err)
	err = r.Skip(h.Size + 1)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestNext(t *testing.T) {
	r := NewReader(bytes.NewReader(ebmlHeader), ReaderOptions{Registry: headerRegistry()})

	var sizes []int
	var masters []bool
	for {
		el, n, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		sizes = append(sizes, n)
		masters = append(masters, el.Master)
	}
	assert.Equal(t, []int{5, 11, 4, 4}, sizes)
	assert.Equal(t, []bool{true, false, false, false}, masters)
}

func TestReadElementTruncated(t *testing.T) {
	for i := 1; i < len(ebmlHeader); i++ {
		r := NewReader(bytes.NewReader(ebmlHeader[:i]), ReaderOptions{Registry: headerRegistry()})
		el, n, err := r.ReadElement()
		assert.ErrorIs(t, err, ErrUnexpectedEOF, "%d bytes", i)
		assert.Nil(t, el)
		assert.Zero(t, n)
	}

	r := NewReader(bytes.NewReader(nil), ReaderOptions{})
	_, _, err := r.ReadElement()
	assert.Equal(t, io.EOF, err)
}

func TestReadElementOverflow(t *testing.T) {
	// DocType claims 32 bytes inside a 19 byte parent
	r := NewReader(bytes.NewReader(corrupt(ebmlHeader, 7, 0xa0)), ReaderOptions{Registry: headerRegistry()})
	_, _, err := r.ReadElement()
	assert.ErrorIs(t, err, ErrElementOverflow)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, uint64(0x1a45dfa3), perr.ID)
	assert.Contains(t, err.Error(), "EBML[0x1A45DFA3]:0")
	assert.Contains(t, err.Error(), "DocType[0x4282]:5")
}

func TestReadElementCorruptChild(t *testing.T) {
	// DocType claims 10 bytes: the reader loses sync and runs off the end
	r := NewReader(bytes.NewReader(corrupt(ebmlHeader, 7, 0x8a)), ReaderOptions{Registry: headerRegistry()})
	_, _, err := r.ReadElement()
	assert.Error(t, err)
}

func TestUnknownIDs(t *testing.T) {
	r := NewReader(bytes.NewReader(ebmlHeader), ReaderOptions{})
	root, n, err := r.ReadElement()
	require.NoError(t, err)
	assert.Equal(t, 24, n)
	assert.False(t, root.Master)
	assert.Equal(t, 19, root.Data.Len())

	r = NewReader(bytes.NewReader(ebmlHeader), ReaderOptions{UnknownIDs: UnknownIsError})
	_, _, err = r.ReadElement()
	assert.ErrorIs(t, err, ErrUnknownElement)

	reg := headerRegistry()
	r = NewReader(bytes.NewReader(append(append([]byte(nil), ebmlHeader...), 0xec, 0x80)), ReaderOptions{Registry: reg, UnknownIDs: UnknownIsError})
	_, _, err = r.ReadElement()
	require.NoError(t, err)
	_, _, err = r.ReadElement()
	assert.ErrorIs(t, err, ErrUnknownElement)
}

func nested(depth int) []byte {
	el := NewLeaf(0xa1, []byte{0x2a})
	for i := 0; i < depth; i++ {
		el = NewMaster(0xa0, el)
	}
	var buf bytes.Buffer
	if err := NewWriter(&buf).WriteTree(el); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func TestMaxDepth(t *testing.T) {
	reg := NewRegistry()
	reg.Register(0xa0, true)
	doc := nested(10)

	r := NewReader(bytes.NewReader(doc), ReaderOptions{Registry: reg, MaxDepth: 10})
	root, n, err := r.ReadElement()
	require.NoError(t, err)
	assert.Equal(t, len(doc), n)

	depth := 0
	Walk(root, func(el *Element, d int) bool {
		if d > depth {
			depth = d
		}
		return true
	})
	assert.Equal(t, 10, depth)

	r = NewReader(bytes.NewReader(doc), ReaderOptions{Registry: reg, MaxDepth: 9})
	_, _, err = r.ReadElement()
	assert.ErrorIs(t, err, ErrTooDeep)

	r = NewReader(bytes.NewReader(nested(DefaultMaxDepth+1)), ReaderOptions{Registry: reg})
	_, _, err = r.ReadElement()
	assert.ErrorIs(t, err, ErrTooDeep)
}

func TestExpectElement(t *testing.T) {
	r := NewReader(bytes.NewReader(ebmlHeader), ReaderOptions{Registry: headerRegistry()})
	_, _, err := r.ExpectElement(0x18538067)
	assert.ErrorIs(t, err, ErrUnexpectedElementID)
	assert.Equal(t, int64(5), r.Offset())

	r = NewReader(bytes.NewReader(ebmlHeader), ReaderOptions{Registry: headerRegistry()})
	root, _, err := r.ExpectElement(0x1a45dfa3)
	require.NoError(t, err)
	assert.Len(t, root.Children, 3)
}

func TestSiblingsConsumed(t *testing.T) {
	reg := NewRegistry()
	reg.Register(0xa0, true)

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteTree(NewMaster(0xa0, NewLeaf(0xa1, []byte{1, 2, 3}), NewMaster(0xa0))))
	require.NoError(t, w.WriteUint(0xa2, 300))

	r := NewReader(bytes.NewReader(buf.Bytes()), ReaderOptions{Registry: reg})
	var total int
	var ids []uint64
	for {
		el, n, err := r.ReadElement()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		total += n
		ids = append(ids, el.ID)
		if el.Master {
			var sum uint64
			for _, child := range el.Children {
				cn, err := child.Len()
				require.NoError(t, err)
				sum += cn
			}
			assert.Equal(t, el.Size, sum)
		}
	}
	assert.Equal(t, buf.Len(), total)
	assert.Equal(t, []uint64{0xa0, 0xa2}, ids)
}

func TestMaxDataSize(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteElement(0xa1, make([]byte, 100)))

	r := NewReader(bytes.NewReader(buf.Bytes()), ReaderOptions{MaxDataSize: 10})
	_, _, err := r.ReadElement()
	assert.ErrorIs(t, err, ErrDataTooLarge)
}

func TestBogusSizeShortSource(t *testing.T) {
	size, err := EncodeVIntLen(1<<40, 8)
	require.NoError(t, err)
	doc := append([]byte{0xa1}, size...)
	doc = append(doc, 1, 2, 3)

	r := NewReader(bytes.NewReader(doc), ReaderOptions{})
	_, _, err = r.ReadElement()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestLargePayload(t *testing.T) {
	data := bytes.Repeat([]byte{42}, 0x100000)
	var buf bytes.Buffer
	require.NoError(t, NewWriter(&buf).WriteElement(0xaa, data))
	assert.Equal(t, []byte{0xaa, 0x30, 0x00, 0x00}, buf.Bytes()[:4])

	r := NewReader(bytes.NewReader(buf.Bytes()), ReaderOptions{})
	el, n, err := r.ReadElement()
	require.NoError(t, err)
	assert.Equal(t, uint64(0xaa), el.ID)
	assert.Equal(t, 4+len(data), n)
	assert.Equal(t, data, el.Data.Peek())
}

func TestReadElementBody(t *testing.T) {
	r := NewReader(bytes.NewReader(ebmlHeader), ReaderOptions{Registry: headerRegistry()})
	h, hn, err := r.ReadHeader()
	require.NoError(t, err)

	root, n, err := r.ReadElementBody(h, 0)
	require.NoError(t, err)
	assert.Equal(t, int(h.Size), n)
	assert.Equal(t, len(ebmlHeader), hn+n)
	assert.Len(t, root.Children, 3)
	assert.Equal(t, int64(0), root.Offset)
}
