package mkv

import (
	"bytes"

	"github.com/deepch/ebml/format/ebml"
	"github.com/deepch/ebml/format/ebml/ebmlio"
	"github.com/deepch/ebml/utils/bits/pio"
)

var Exts = []string{".mkv", ".mka", ".mks", ".webm"}

// Probe reports whether b starts with the EBML header of a Matroska or WebM
// document.
func Probe(b []byte) bool {
	if len(b) < 4 || uint64(pio.U32BE(b)) != ebml.EBML {
		return false
	}
	r := ebmlio.NewReader(bytes.NewReader(b), ebmlio.ReaderOptions{Registry: ebml.Registry()})
	h, _, err := ebml.ReadHeader(r)
	if err != nil {
		return false
	}
	return h.DocType == "matroska" || h.DocType == "webm"
}
