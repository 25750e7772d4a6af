package mkvio

import (
	"github.com/deepch/ebml/format/ebml/ebmlio"
)

// Document represents a Matroska/WebM file read front to back.
type Document struct {
	r    *ebmlio.Reader
	open []frame // masters entered and not yet ended, outermost first

	pending     bool // a leaf's content is still unread
	pendingSize uint64

	strict bool // unknown IDs are errors
}

type frame struct {
	id      uint64
	end     int64
	unknown bool
}

// Element is a Matroska/WebM/EBML element met during a flat scan.
type Element struct {
	ElementRegister

	Level   int
	Offset  int64  // Offset of the element header
	Size    uint64 // Declared payload size
	Content []byte // Data contained in the element, nil if it is a master element
}

func (el Element) IsMaster() bool {
	return el.Type == ElementTypeMaster
}
