package mkvio

import (
	"errors"
	"fmt"
	"io"

	"github.com/deepch/ebml/format/ebml"
	"github.com/deepch/ebml/format/ebml/ebmlio"
)

// UnknownSize is the 8 octet all-ones size live muxers write for a Segment or
// Cluster whose length is not known yet. An all-ones master size of any
// length is reported as UnknownSize.
const UnknownSize uint64 = 1<<56 - 1

var (
	ErrNotFound      = errors.New("mkvio: element not found")
	ErrNotOpen       = errors.New("mkvio: element is not the innermost open master")
	ErrUnknownLength = errors.New("mkvio: element has unknown size")
)

// elements that may close an open unknown-size Cluster
var segmentChildren = map[uint64]bool{
	SeekHead:    true,
	Info:        true,
	Tracks:      true,
	Cluster:     true,
	Cues:        true,
	Attachments: true,
	Chapters:    true,
	Tags:        true,
}

// InitDocument creates a MKV/WebM document containing the file data
// It does not do any parsing
func InitDocument(r io.Reader) *Document {
	return NewDocument(r, ebmlio.ReaderOptions{})
}

// NewDocument is InitDocument with reader options. A nil Registry is
// replaced by the Matroska registry.
func NewDocument(r io.Reader, options ebmlio.ReaderOptions) *Document {
	if options.Registry == nil {
		options.Registry = Registry()
	}
	return &Document{
		r:      ebmlio.NewReader(r, options),
		strict: options.UnknownIDs == ebmlio.UnknownIsError,
	}
}

// Reader returns the underlying EBML reader.
func (doc *Document) Reader() *ebmlio.Reader {
	return doc.r
}

// Offset returns the number of bytes consumed so far.
func (doc *Document) Offset() int64 {
	return doc.r.Offset()
}

// ParseAll parses the entire MKV/WebM document
// When an EBML/WebM element is encountered, it calls the provided function
// and passes the newly parsed element
func (doc *Document) ParseAll(c func(Element) error) error {
	for {
		el, err := doc.ParseElement()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err = c(el); err != nil {
			return err
		}
	}
}

// FindElement parses forward until an element with the given ID.
func (doc *Document) FindElement(id uint64) (Element, error) {
	for {
		el, err := doc.ParseElement()
		if err == io.EOF {
			return el, ErrNotFound
		}
		if err != nil {
			return el, err
		}
		if el.ID == id {
			return el, nil
		}
	}
}

// ParseElement parses an EBML element starting at the document's current
// cursor position, with the content of leaf elements.
func (doc *Document) ParseElement() (Element, error) {
	el, err := doc.ParseHeader()
	if err != nil {
		return el, err
	}
	if !el.IsMaster() {
		err = doc.ReadContent(&el)
	}
	return el, err
}

// ParseHeader parses the next element header and sets its level. The content
// of a leaf is not read: call ReadContent or SkipElement, otherwise the next
// ParseHeader skips it.
func (doc *Document) ParseHeader() (el Element, err error) {
	if doc.pending {
		doc.pending = false
		if err = doc.r.Skip(doc.pendingSize); err != nil {
			return
		}
	}

	off := doc.r.Offset()
	doc.close(off)
	h, n, err := doc.r.ReadHeader()
	if err != nil {
		if f, ok := doc.truncated(off); ok && err == io.EOF {
			err = fmt.Errorf("mkvio: %s ends at %d: %w", GetElementRegister(f.id).Name, f.end, ebmlio.ErrUnexpectedEOF)
		}
		return
	}
	if doc.strict && !doc.r.Registry().Known(h.ID) {
		return el, fmt.Errorf("mkvio: element 0x%X at %d: %w", h.ID, off, ebmlio.ErrUnknownElement)
	}
	doc.closeUnknown(h.ID)

	el.ElementRegister = GetElementRegister(h.ID)
	el.ID = h.ID
	if doc.r.Registry().IsMaster(h.ID) {
		el.Type = ElementTypeMaster
	} else if el.Type == ElementTypeMaster {
		el.Type = ElementTypeBinary
	}
	el.Offset = off
	el.Size = h.Size
	el.Level = len(doc.open)

	unknown := el.IsMaster() && ebmlio.IsUnknownSize(h.Size, h.SizeLen)
	if unknown {
		el.Size = UnknownSize
	}
	end := off + int64(n) + int64(h.Size)
	if len(doc.open) > 0 && !unknown {
		parent := doc.open[len(doc.open)-1]
		if !parent.unknown && end > parent.end {
			return el, fmt.Errorf("mkvio: %s at %d ends at %d past its parent end %d: %w",
				el.Name, off, end, parent.end, ebmlio.ErrElementOverflow)
		}
	}

	if el.IsMaster() {
		doc.open = append(doc.open, frame{id: h.ID, end: end, unknown: unknown})
	} else {
		doc.pending = true
		doc.pendingSize = h.Size
	}
	return
}

// ReadContent reads the content of the leaf element just returned by
// ParseHeader.
func (doc *Document) ReadContent(el *Element) error {
	if el.IsMaster() || !doc.pending {
		return ErrNotOpen
	}
	doc.pending = false
	d, err := doc.r.ReadData(el.Size)
	if err != nil {
		return err
	}
	el.Content = d.Peek()
	return nil
}

// SkipElement skips the content of the element just returned by ParseHeader,
// or every child of the master just returned by ParseHeader or ParseElement.
func (doc *Document) SkipElement(el Element) error {
	if !el.IsMaster() {
		if !doc.pending {
			return nil
		}
		doc.pending = false
		return doc.r.Skip(el.Size)
	}
	if err := doc.popOpen(el); err != nil {
		return err
	}
	return doc.r.Skip(el.Size)
}

// ReadTree loads every child of the master just returned by ParseHeader or
// ParseElement into memory.
func (doc *Document) ReadTree(el Element) (*ebmlio.Element, error) {
	if !el.IsMaster() {
		leaf := &ebmlio.Element{Offset: el.Offset, Data: ebmlio.NewData(el.Content)}
		leaf.ID, leaf.Size = el.ID, el.Size
		return leaf, nil
	}
	if err := doc.popOpen(el); err != nil {
		return nil, err
	}
	tree, _, err := doc.r.ReadElementBody(ebmlio.ElementHeader{ID: el.ID, Size: el.Size}, el.Offset)
	return tree, err
}

func (doc *Document) popOpen(el Element) error {
	if len(doc.open) == 0 || doc.open[len(doc.open)-1].id != el.ID || doc.pending {
		return ErrNotOpen
	}
	if doc.open[len(doc.open)-1].unknown {
		return ErrUnknownLength
	}
	doc.open = doc.open[:len(doc.open)-1]
	return nil
}

// close pops the masters that end at or before off.
func (doc *Document) close(off int64) {
	for len(doc.open) > 0 {
		top := doc.open[len(doc.open)-1]
		if top.unknown || off < top.end {
			return
		}
		doc.open = doc.open[:len(doc.open)-1]
	}
}

// closeUnknown pops unknown-size masters that the element id cannot be a
// child of.
func (doc *Document) closeUnknown(id uint64) {
	top := id == Segment || id == ebml.EBML
	if !top && !segmentChildren[id] {
		return
	}
	for len(doc.open) > 0 {
		f := doc.open[len(doc.open)-1]
		if !f.unknown || (!top && f.id == Segment) {
			return
		}
		doc.open = doc.open[:len(doc.open)-1]
	}
}

// truncated returns an open known-size master that ends past off.
func (doc *Document) truncated(off int64) (frame, bool) {
	for _, f := range doc.open {
		if !f.unknown && f.end > off {
			return f, true
		}
	}
	return frame{}, false
}
