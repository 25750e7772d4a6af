package mkvio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/deepch/ebml/format/ebml/ebmlio"
)

// Text decodes a Matroska string, dropping the trailing NUL padding
// writers may leave after the text.
func Text(content []byte) (string, error) {
	return ebmlio.UTF8(bytes.TrimRight(content, "\x00"))
}

// Decode interprets content according to the element type: uint64, int64,
// float64, string, time.Time or []byte. Masters decode to nil.
func Decode(typ uint8, content []byte) (interface{}, error) {
	switch typ {
	case ElementTypeMaster:
		return nil, nil
	case ElementTypeUint:
		return ebmlio.Uint(content)
	case ElementTypeInt:
		return ebmlio.Int(content)
	case ElementTypeFloat:
		return ebmlio.Float(content)
	case ElementTypeString, ElementTypeUnicode:
		return Text(content)
	case ElementTypeDate:
		return ebmlio.Date(content)
	}
	return content, nil
}

// Value decodes the element content according to its registered type.
func (el Element) Value() (interface{}, error) {
	return Decode(el.Type, el.Content)
}

func formatValue(typ uint8, content []byte) string {
	v, err := Decode(typ, content)
	if err != nil {
		return fmt.Sprintf("%s (%v)", ebmlio.FormatData(content), err)
	}
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return fmt.Sprintf("%q", v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case []byte:
		return ebmlio.FormatData(v)
	}
	return fmt.Sprint(v)
}

func displayName(id uint64, name string) string {
	if name == ElementUnknown.Name {
		return fmt.Sprintf("Unknown[0x%X]", id)
	}
	return name
}

func (el Element) String() string {
	s := fmt.Sprintf("%s%s offset=%d size=%d", strings.Repeat(" ", el.Level*2), displayName(el.ID, el.Name), el.Offset, el.Size)
	if el.IsMaster() || el.Content == nil {
		return s
	}
	return s + " " + formatValue(el.Type, el.Content)
}

func printelement(out io.Writer, el *ebmlio.Element, depth int) {
	reg := GetElementRegister(el.ID)
	typ := reg.Type
	if el.Master {
		typ = ElementTypeMaster
	}

	fmt.Fprintf(out, "%s%s offset=%d size=%d", strings.Repeat(" ", depth*2), displayName(el.ID, reg.Name), el.Offset, el.Size)
	if !el.Master && el.Data.Present() {
		fmt.Fprint(out, " ", formatValue(typ, el.Data.Peek()))
	}
	fmt.Fprintln(out)

	for _, child := range el.Children {
		printelement(out, child, depth+1)
	}
}

// FprintElement writes an indented dump of an element tree with values
// decoded by their Matroska types.
func FprintElement(out io.Writer, el *ebmlio.Element) {
	printelement(out, el, 0)
}

func PrintElement(el *ebmlio.Element) {
	FprintElement(os.Stdout, el)
}
