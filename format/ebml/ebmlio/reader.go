package ebmlio

import (
	"bytes"
	"io"
	"log"
	"math"
)

// UnknownIDPolicy selects how the Reader treats IDs missing from its Registry.
type UnknownIDPolicy int

const (
	// UnknownAsBinary reads unregistered elements as opaque leaf data.
	UnknownAsBinary UnknownIDPolicy = iota
	// UnknownIsError fails with ErrUnknownElement.
	UnknownIsError
)

const DefaultMaxDepth = 64

// payloads up to this size are read into a single allocation
const readChunk = 64 * 1024

type ReaderOptions struct {
	Registry    *Registry
	MaxDepth    int // 0 means DefaultMaxDepth
	UnknownIDs  UnknownIDPolicy
	MaxDataSize uint64 // 0 means unlimited
	Debug       bool
}

// Reader decodes EBML elements from a sequential byte source. It never
// closes the source and must not be shared between goroutines.
//
// Shallow use: ReadHeader, then ReadData or Skip for leaves, and keep
// reading headers inside masters while the consumed count is below the
// master's size. Deep use: ReadElement returns a whole subtree.
type Reader struct {
	r    io.Reader
	opts ReaderOptions
	off  int64
	b    [MaxVIntLen]byte
}

func NewReader(r io.Reader, options ReaderOptions) *Reader {
	if options.MaxDepth <= 0 {
		options.MaxDepth = DefaultMaxDepth
	}
	return &Reader{r: r, opts: options}
}

// Offset returns the number of bytes consumed from the source so far.
func (r *Reader) Offset() int64 {
	return r.off
}

func (r *Reader) Registry() *Registry {
	return r.opts.Registry
}

// ReadHeader reads the next element header. It returns io.EOF, unwrapped,
// when the source ends exactly at an element boundary.
func (r *Reader) ReadHeader() (h ElementHeader, n int, err error) {
	off := r.off
	if h, n, err = readHeader(r.r, r.b[:]); err != nil {
		if err == io.EOF {
			return h, 0, io.EOF
		}
		return ElementHeader{}, 0, parseErr("header", off, 0, err)
	}
	r.off += int64(n)
	if r.opts.Debug {
		log.Printf("ebmlio: %s size=%d offset=%d", r.opts.Registry.Name(h.ID), h.Size, off)
	}
	return
}

// ReadData reads a leaf payload of size bytes.
func (r *Reader) ReadData(size uint64) (Data, error) {
	off := r.off
	b, err := r.readPayload(size)
	if err != nil {
		return Data{}, parseErr("data", off, 0, err)
	}
	return NewData(b), nil
}

// Skip discards size bytes, for payloads the caller does not need.
func (r *Reader) Skip(size uint64) error {
	off := r.off
	if size > math.MaxInt64 {
		return parseErr("skip", off, 0, ErrUnexpectedEOF)
	}
	n, err := io.CopyN(io.Discard, r.r, int64(size))
	r.off += n
	if err != nil {
		return parseErr("skip", off, 0, eofErr(err))
	}
	return nil
}

func (r *Reader) readPayload(size uint64) ([]byte, error) {
	if (r.opts.MaxDataSize > 0 && size > r.opts.MaxDataSize) || size > math.MaxInt64 {
		return nil, ErrDataTooLarge
	}
	if size <= readChunk {
		b := make([]byte, size)
		n, err := io.ReadFull(r.r, b)
		r.off += int64(n)
		if err != nil {
			return nil, eofErr(err)
		}
		return b, nil
	}
	// grow with the data actually read so a corrupt size cannot force a
	// huge allocation
	var buf bytes.Buffer
	n, err := io.CopyN(&buf, r.r, int64(size))
	r.off += n
	if err != nil {
		return nil, eofErr(err)
	}
	return buf.Bytes(), nil
}

// classify reports whether h starts a master element, applying the
// unknown ID policy.
func (r *Reader) classify(h ElementHeader) (bool, error) {
	reg := r.opts.Registry
	if r.opts.UnknownIDs == UnknownIsError && !reg.Known(h.ID) {
		return false, ErrUnknownElement
	}
	return reg.IsMaster(h.ID), nil
}

// Next reads one element without descending into it. Leaves come back with
// their data; masters come back empty and their children follow on the
// next calls. n counts the header, plus the payload for leaves.
func (r *Reader) Next() (el *Element, n int, err error) {
	off := r.off
	h, n, err := r.ReadHeader()
	if err != nil {
		return nil, 0, err
	}
	el, err = r.open(h, off)
	if err != nil {
		return nil, 0, err
	}
	if !el.Master {
		n += int(h.Size)
	}
	return el, n, nil
}

// open builds the element for a header that was just read, reading the
// payload of leaves.
func (r *Reader) open(h ElementHeader, off int64) (*Element, error) {
	master, err := r.classify(h)
	if err != nil {
		return nil, parseErr(r.opts.Registry.Name(h.ID), off, h.ID, err)
	}
	el := &Element{ElementHeader: h, Master: master, Offset: off}
	if master {
		return el, nil
	}
	b, err := r.readPayload(h.Size)
	if err != nil {
		return nil, parseErr(r.opts.Registry.Name(h.ID), off, h.ID, err)
	}
	el.Data = NewData(b)
	return el, nil
}
