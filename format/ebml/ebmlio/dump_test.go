package ebmlio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFprintElement(t *testing.T) {
	reg := headerRegistry()
	r := NewReader(bytes.NewReader(ebmlHeader), ReaderOptions{Registry: reg})
	root, _, err := r.ReadElement()
	require.NoError(t, err)

	var out strings.Builder
	FprintElement(&out, reg, root)
	assert.Equal(t, strings.Join([]string{
		"EBML offset=0 size=19",
		`  DocType offset=5 size=8 "matroska"`,
		"  DocTypeVersion offset=16 size=1 01",
		"  DocTypeReadVersion offset=20 size=1 01",
		"",
	}, "\n"), out.String())
}

func TestFind(t *testing.T) {
	leaf := NewLeaf(0xa2, []byte{1})
	root := NewMaster(0xa0, NewLeaf(0xa1, nil), NewMaster(0xa0, leaf), NewLeaf(0xa1, []byte{2}))

	assert.Same(t, leaf, Find(root, 0xa2))
	assert.Nil(t, Find(root, 0xa3))
	assert.Nil(t, FindChild(root, 0xa2))
	assert.Same(t, root.Children[0], FindChild(root, 0xa1))
	assert.Len(t, FindChildren(root, 0xa1), 2)
}

func TestFormatData(t *testing.T) {
	assert.Equal(t, "<empty>", FormatData(nil))
	assert.Equal(t, `"webm"`, FormatData([]byte("webm")))
	assert.Equal(t, "00 ff", FormatData([]byte{0, 0xff}))
	assert.Equal(t, "00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 ...", FormatData(make([]byte, 20)))
}
