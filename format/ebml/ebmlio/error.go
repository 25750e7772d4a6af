package ebmlio

import (
	"errors"
	"fmt"
	"strings"
)

// Decode errors
var (
	// ErrUnexpectedEOF is returned when the source ends inside a VINT or a payload.
	ErrUnexpectedEOF = errors.New("ebmlio: unexpected end of input")

	// ErrInvalidVInt is returned for a VINT whose first octet is zero.
	ErrInvalidVInt = errors.New("ebmlio: invalid vint marker")

	// ErrInvalidID is returned for an element ID whose marker does not match its length.
	ErrInvalidID = errors.New("ebmlio: invalid element id")

	// ErrUnexpectedElementID is returned when a caller expected a different element.
	ErrUnexpectedElementID = errors.New("ebmlio: unexpected element id")

	// ErrUnknownElement is returned for unregistered IDs under UnknownIsError.
	ErrUnknownElement = errors.New("ebmlio: unknown element id")

	// ErrElementOverflow is returned when a child runs past the end of its parent.
	ErrElementOverflow = errors.New("ebmlio: element overflows its parent")

	// ErrTooDeep is returned when master elements nest deeper than MaxDepth.
	ErrTooDeep = errors.New("ebmlio: maximum nesting depth exceeded")

	// ErrDataTooLarge is returned when a payload is larger than MaxDataSize.
	ErrDataTooLarge = errors.New("ebmlio: element data too large")
)

// Coercion errors
var (
	ErrNoData           = errors.New("ebmlio: no data")
	ErrInvalidIntSize   = errors.New("ebmlio: integer data longer than 8 bytes")
	ErrInvalidFloatSize = errors.New("ebmlio: float data is neither 4 nor 8 bytes")
	ErrInvalidUTF8      = errors.New("ebmlio: invalid utf-8 data")
	ErrInvalidDateSize  = errors.New("ebmlio: date data is not 8 bytes")
)

// Encode errors
var (
	ErrIntegerTooBig = errors.New("ebmlio: integer too big for a vint")
)

// ParseError records where in the stream decoding failed. Nested element
// failures chain through prev, outermost first.
type ParseError struct {
	Debug  string
	Offset int64
	ID     uint64
	prev   *ParseError
	orig   error
}

func (a *ParseError) Error() string {
	s := []string{}
	for p := a; p != nil; p = p.prev {
		if p.ID != 0 {
			s = append(s, fmt.Sprintf("%s[0x%X]:%d", p.Debug, p.ID, p.Offset))
		} else {
			s = append(s, fmt.Sprintf("%s:%d", p.Debug, p.Offset))
		}
		if p.prev == nil && p.orig != nil {
			s = append(s, p.orig.Error())
		}
	}
	return "ebmlio: parse error: " + strings.Join(s, ",")
}

func (a *ParseError) Unwrap() error {
	if a.prev != nil {
		return a.prev
	}
	return a.orig
}

func parseErr(debug string, offset int64, id uint64, prev error) error {
	_prev, _ := prev.(*ParseError)
	if _prev != nil {
		prev = nil
	}
	return &ParseError{
		Debug:  debug,
		Offset: offset,
		ID:     id,
		prev:   _prev,
		orig:   prev,
	}
}
