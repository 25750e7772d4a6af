package ebmlio

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// FindChild returns the first direct child of el with the given ID.
func FindChild(el *Element, id uint64) *Element {
	for _, child := range el.Children {
		if child.ID == id {
			return child
		}
	}
	return nil
}

// FindChildren returns every direct child of el with the given ID.
func FindChildren(el *Element, id uint64) (found []*Element) {
	for _, child := range el.Children {
		if child.ID == id {
			found = append(found, child)
		}
	}
	return
}

// Find searches el and its descendants depth first.
func Find(el *Element, id uint64) *Element {
	if el.ID == id {
		return el
	}
	for _, child := range el.Children {
		if r := Find(child, id); r != nil {
			return r
		}
	}
	return nil
}

// Walk calls fn for el and each descendant in document order. Returning
// false from fn skips that element's children.
func Walk(el *Element, fn func(el *Element, depth int) bool) {
	walk(el, 0, fn)
}

func walk(el *Element, depth int, fn func(*Element, int) bool) {
	if !fn(el, depth) {
		return
	}
	for _, child := range el.Children {
		walk(child, depth+1, fn)
	}
}

// FormatData renders a raw payload for display: printable text is quoted,
// anything else is shown as hex, truncated after 16 bytes.
func FormatData(b []byte) string {
	if len(b) == 0 {
		return "<empty>"
	}
	if printable(b) {
		return fmt.Sprintf("%q", b)
	}
	if len(b) > 16 {
		return fmt.Sprintf("% x ...", b[:16])
	}
	return fmt.Sprintf("% x", b)
}

func printable(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 || !unicode.IsPrint(rune(c)) {
			return false
		}
	}
	return true
}

func printelement(out io.Writer, reg *Registry, el *Element, depth int) {
	fmt.Fprintf(out,
		"%s%s offset=%d size=%d",
		strings.Repeat(" ", depth*2), reg.Name(el.ID), el.Offset, el.Size,
	)
	if !el.Master && el.Data.Present() {
		fmt.Fprint(out, " ", FormatData(el.Data.Peek()))
	}
	fmt.Fprintln(out)

	for _, child := range el.Children {
		printelement(out, reg, child, depth+1)
	}
}

// FprintElement writes an indented dump of el, naming IDs through reg.
func FprintElement(out io.Writer, reg *Registry, el *Element) {
	printelement(out, reg, el, 0)
}

func PrintElement(reg *Registry, el *Element) {
	FprintElement(os.Stdout, reg, el)
}
