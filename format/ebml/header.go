// Package ebml holds the EBML header schema shared by every EBML dialect.
package ebml

import (
	"fmt"
	"io"
	"strings"

	"github.com/deepch/ebml/format/ebml/ebmlio"
)

const (
	EBML               uint64 = 0x1a45dfa3
	EBMLVersion        uint64 = 0x4286
	EBMLReadVersion    uint64 = 0x42f7
	EBMLMaxIDLength    uint64 = 0x42f2
	EBMLMaxSizeLength  uint64 = 0x42f3
	DocType            uint64 = 0x4282
	DocTypeVersion     uint64 = 0x4287
	DocTypeReadVersion uint64 = 0x4285
	Void               uint64 = 0xec
	CRC32              uint64 = 0xbf
)

// Registry returns the master table for the EBML header and the global
// elements.
func Registry() *ebmlio.Registry {
	reg := ebmlio.NewRegistry()
	reg.RegisterName(EBML, true, "EBML")
	reg.RegisterName(EBMLVersion, false, "EBMLVersion")
	reg.RegisterName(EBMLReadVersion, false, "EBMLReadVersion")
	reg.RegisterName(EBMLMaxIDLength, false, "EBMLMaxIDLength")
	reg.RegisterName(EBMLMaxSizeLength, false, "EBMLMaxSizeLength")
	reg.RegisterName(DocType, false, "DocType")
	reg.RegisterName(DocTypeVersion, false, "DocTypeVersion")
	reg.RegisterName(DocTypeReadVersion, false, "DocTypeReadVersion")
	reg.RegisterName(Void, false, "Void")
	reg.RegisterName(CRC32, false, "CRC-32")
	return reg
}

// Header is the EBML header found at the start of every EBML document.
// Fields missing from the document keep their default values.
type Header struct {
	Version            uint64
	ReadVersion        uint64
	MaxIDLength        uint64
	MaxSizeLength      uint64
	DocType            string
	DocTypeVersion     uint64
	DocTypeReadVersion uint64
}

func DefaultHeader() Header {
	return Header{
		Version:            1,
		ReadVersion:        1,
		MaxIDLength:        4,
		MaxSizeLength:      8,
		DocTypeVersion:     1,
		DocTypeReadVersion: 1,
	}
}

func (h Header) String() string {
	return fmt.Sprintf("EBML v%d (read v%d) %s v%d (read v%d) maxid=%d maxsize=%d",
		h.Version, h.ReadVersion, h.DocType, h.DocTypeVersion, h.DocTypeReadVersion,
		h.MaxIDLength, h.MaxSizeLength)
}

// ReadHeader reads the EBML header element, which must come next in r.
func ReadHeader(r *ebmlio.Reader) (h Header, n int, err error) {
	root, n, err := r.ExpectElement(EBML)
	if err != nil {
		return
	}
	h, err = ParseHeader(root)
	return
}

// ParseHeader fills a Header from an already read EBML element.
func ParseHeader(root *ebmlio.Element) (h Header, err error) {
	h = DefaultHeader()
	if root.ID != EBML {
		return h, ebmlio.ErrUnexpectedElementID
	}
	for _, child := range root.Children {
		switch child.ID {
		case EBMLVersion:
			h.Version, err = child.Data.Uint()
		case EBMLReadVersion:
			h.ReadVersion, err = child.Data.Uint()
		case EBMLMaxIDLength:
			h.MaxIDLength, err = child.Data.Uint()
		case EBMLMaxSizeLength:
			h.MaxSizeLength, err = child.Data.Uint()
		case DocType:
			if h.DocType, err = child.Data.UTF8(); err == nil {
				h.DocType = strings.TrimRight(h.DocType, "\x00")
			}
		case DocTypeVersion:
			h.DocTypeVersion, err = child.Data.Uint()
		case DocTypeReadVersion:
			h.DocTypeReadVersion, err = child.Data.Uint()
		}
		if err != nil {
			return h, fmt.Errorf("ebml: header field 0x%X: %w", child.ID, err)
		}
	}
	return
}

// Element returns the header as an element tree ready for writing.
func (h Header) Element() *ebmlio.Element {
	return ebmlio.NewMaster(EBML,
		ebmlio.NewLeaf(EBMLVersion, ebmlio.EncodeUint(h.Version)),
		ebmlio.NewLeaf(EBMLReadVersion, ebmlio.EncodeUint(h.ReadVersion)),
		ebmlio.NewLeaf(EBMLMaxIDLength, ebmlio.EncodeUint(h.MaxIDLength)),
		ebmlio.NewLeaf(EBMLMaxSizeLength, ebmlio.EncodeUint(h.MaxSizeLength)),
		ebmlio.NewLeaf(DocType, []byte(h.DocType)),
		ebmlio.NewLeaf(DocTypeVersion, ebmlio.EncodeUint(h.DocTypeVersion)),
		ebmlio.NewLeaf(DocTypeReadVersion, ebmlio.EncodeUint(h.DocTypeReadVersion)),
	)
}

func (h Header) WriteTo(w io.Writer) (int64, error) {
	ew := ebmlio.NewWriter(w)
	err := ew.WriteTree(h.Element())
	return ew.Written(), err
}
