package mkv

import (
	"errors"

	"github.com/deepch/ebml/format/ebml/ebmlio"
	"github.com/deepch/ebml/utils/bits/pio"
)

// block header flags
const (
	flagKeyFrame    = 0x80
	flagInvisible   = 0x08
	flagLacing      = 0x06
	flagDiscardable = 0x01
)

const (
	lacingNone  = 0x00
	lacingXiph  = 0x02
	lacingFixed = 0x04
	lacingEBML  = 0x06
)

var (
	ErrShortBlock = errors.New("mkv: block too short")
	ErrLacing     = errors.New("mkv: invalid block lacing")
)

type block struct {
	track    uint64
	timecode int16 // relative to the cluster Timecode
	flags    uint8
	frames   [][]byte
}

// parseBlock splits the payload of a Block or SimpleBlock into its frames.
func parseBlock(b []byte) (blk block, err error) {
	v, err := ebmlio.DecodeVInt(b, true)
	if err != nil {
		return
	}
	b = b[v.Len:]
	if len(b) < 3 {
		return blk, ErrShortBlock
	}
	blk.track = v.Value
	blk.timecode = pio.I16BE(b)
	blk.flags = b[2]
	b = b[3:]

	lacing := blk.flags & flagLacing
	if lacing == lacingNone {
		blk.frames = [][]byte{b}
		return
	}
	if len(b) < 1 {
		return blk, ErrShortBlock
	}
	count := int(b[0]) + 1
	b = b[1:]

	sizes := make([]int, count)
	switch lacing {
	case lacingFixed:
		if len(b)%count != 0 {
			return blk, ErrLacing
		}
		for i := range sizes {
			sizes[i] = len(b) / count
		}
	case lacingXiph:
		for i := 0; i < count-1; i++ {
			for {
				if len(b) == 0 {
					return blk, ErrLacing
				}
				c := b[0]
				b = b[1:]
				sizes[i] += int(c)
				if c != 0xff {
					break
				}
			}
		}
	case lacingEBML:
		if sizes, b, err = ebmlLaceSizes(b, count); err != nil {
			return
		}
	}

	if lacing != lacingFixed {
		total := 0
		for _, n := range sizes[:count-1] {
			if n < 0 || n > len(b)-total {
				return blk, ErrLacing
			}
			total += n
		}
		sizes[count-1] = len(b) - total
	}

	blk.frames = make([][]byte, count)
	for i, n := range sizes {
		blk.frames[i] = b[:n:n]
		b = b[n:]
	}
	return
}

// ebmlLaceSizes reads the first frame size as a VINT and each following one
// as a signed VINT difference from the previous size.
func ebmlLaceSizes(b []byte, count int) (sizes []int, rest []byte, err error) {
	sizes = make([]int, count)
	for i := 0; i < count-1; i++ {
		v, err := ebmlio.DecodeVInt(b, true)
		if err != nil {
			return nil, nil, ErrLacing
		}
		b = b[v.Len:]
		if i == 0 {
			if v.Value > uint64(len(b)) {
				return nil, nil, ErrLacing
			}
			sizes[0] = int(v.Value)
			continue
		}
		bias := int64(1)<<uint(7*v.Len-1) - 1
		sizes[i] = sizes[i-1] + int(int64(v.Value)-bias)
	}
	return sizes, b, nil
}

// encodeBlock returns an unlaced block payload.
func encodeBlock(track uint64, timecode int16, flags uint8, data []byte) ([]byte, error) {
	num, err := ebmlio.EncodeVInt(track)
	if err != nil {
		return nil, err
	}
	b := make([]byte, len(num)+3, len(num)+3+len(data))
	copy(b, num)
	pio.PutU16BE(b[len(num):], uint16(timecode))
	b[len(num)+2] = flags
	return append(b, data...), nil
}
