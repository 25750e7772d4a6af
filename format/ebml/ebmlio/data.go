package ebmlio

import (
	"fmt"
	"math"
	"time"

	"github.com/deepch/ebml/utils/bits/pio"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Epoch is the origin of EBML dates.
var Epoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// Data is the payload of a leaf element. The zero value is absent data, as
// carried by master elements and by elements whose payload was skipped.
//
// The typed accessors consume the payload: a second call returns ErrNoData.
// Use Peek to look at the bytes without consuming them.
type Data struct {
	b   []byte
	set bool
}

func NewData(b []byte) Data {
	return Data{b: b, set: true}
}

func (d Data) Present() bool {
	return d.set
}

func (d Data) Len() int {
	return len(d.b)
}

func (d Data) Peek() []byte {
	return d.b
}

func (d *Data) take() ([]byte, error) {
	if !d.set {
		return nil, ErrNoData
	}
	b := d.b
	d.b, d.set = nil, false
	return b, nil
}

func (d *Data) Binary() ([]byte, error) {
	return d.take()
}

func (d *Data) Uint() (uint64, error) {
	b, err := d.take()
	if err != nil {
		return 0, err
	}
	return Uint(b)
}

func (d *Data) Int() (int64, error) {
	b, err := d.take()
	if err != nil {
		return 0, err
	}
	return Int(b)
}

func (d *Data) Float() (float64, error) {
	b, err := d.take()
	if err != nil {
		return 0, err
	}
	return Float(b)
}

func (d *Data) UTF8() (string, error) {
	b, err := d.take()
	if err != nil {
		return "", err
	}
	return UTF8(b)
}

func (d *Data) Date() (time.Time, error) {
	b, err := d.take()
	if err != nil {
		return time.Time{}, err
	}
	return Date(b)
}

// Uint interprets b as a big-endian unsigned integer of 0 to 8 bytes.
func Uint(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, ErrInvalidIntSize
	}
	return pio.UBE(b), nil
}

// Int interprets b as a big-endian two's complement integer of 0 to 8
// bytes. Shorter buffers are sign-extended from their own top bit, so
// 0xff is -1 rather than the 255 a plain shift into an int64 would give.
func Int(b []byte) (int64, error) {
	if len(b) > 8 {
		return 0, ErrInvalidIntSize
	}
	return pio.IBE(b), nil
}

// Float interprets b as an IEEE-754 binary32 or binary64 value. Any other
// length, empty included, is ErrInvalidFloatSize.
func Float(b []byte) (float64, error) {
	switch len(b) {
	case 4:
		return float64(math.Float32frombits(pio.U32BE(b))), nil
	case 8:
		return math.Float64frombits(pio.U64BE(b)), nil
	}
	return 0, ErrInvalidFloatSize
}

// UTF8 validates b as UTF-8 text and returns it unchanged.
func UTF8(b []byte) (string, error) {
	if _, _, err := transform.Bytes(encoding.UTF8Validator, b); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidUTF8, err)
	}
	return string(b), nil
}

// Date interprets b as signed nanoseconds since Epoch. An empty buffer is
// Epoch itself.
func Date(b []byte) (time.Time, error) {
	switch len(b) {
	case 0:
		return Epoch, nil
	case 8:
		return Epoch.Add(time.Duration(pio.I64BE(b))), nil
	}
	return time.Time{}, ErrInvalidDateSize
}
