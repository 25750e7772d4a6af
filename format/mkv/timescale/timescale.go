package timescale

import (
	"math"
	"time"
)

// DefaultScale is the Matroska default TimecodeScale: one tick per millisecond.
const DefaultScale uint64 = 1000000

// ToDuration converts a tick count at scale nanoseconds per tick to a
// time.Duration
func ToDuration(ticks int64, scale uint64) time.Duration {
	return time.Duration(ticks) * time.Duration(scale)
}

// FloatToDuration converts a fractional tick count, as found in the segment
// Duration, to a time.Duration
func FloatToDuration(ticks float64, scale uint64) time.Duration {
	return time.Duration(math.Round(ticks * float64(scale)))
}

// ToTicks converts t (which may be negative) to ticks of scale nanoseconds,
// rounding to the nearest tick
func ToTicks(t time.Duration, scale uint64) int64 {
	s := int64(scale)
	q, r := int64(t)/s, int64(t)%s
	if r*2 >= s {
		// round up
		q++
	} else if -r*2 >= s {
		// round down
		q--
	}
	return q
}

// Relative converts the offset of t from base to a block timecode, which
// must fit in 16 bits
func Relative(t, base time.Duration, scale uint64) (int16, bool) {
	rel := ToTicks(t, scale) - ToTicks(base, scale)
	if rel < math.MinInt16 || rel > math.MaxInt16 {
		return 0, false
	}
	return int16(rel), true
}
