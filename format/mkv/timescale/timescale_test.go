package timescale

import (
	"testing"
	"time"
)

func TestToTicks(t *testing.T) {
	values := []struct {
		T time.Duration
		V int64
	}{
		{0, 0},
		{time.Millisecond - 1, 1},
		{time.Millisecond + 0, 1},
		{time.Millisecond + 1, 1},
		{time.Millisecond / 2, 1},
		{time.Millisecond/2 - 1, 0},
		{time.Second, 1000},
		{-time.Millisecond - 1, -1},
		{-time.Millisecond + 1, -1},
		{-time.Millisecond / 2, -1},
		{time.Hour * 1000, 3600 * 1000 * 1000},
	}
	for _, ex := range values {
		n := ToTicks(ex.T, DefaultScale)
		if n != ex.V {
			t.Errorf("%d (%s): expected %d, got %d", ex.T, ex.T, ex.V, n)
		}
	}
}

func TestToDuration(t *testing.T) {
	values := []struct {
		Ticks int64
		Scale uint64
		T     time.Duration
	}{
		{0, DefaultScale, 0},
		{1, DefaultScale, time.Millisecond},
		{-40, DefaultScale, -40 * time.Millisecond},
		{90000, 1000000000 / 90000, 90000 * (1000000000 / 90000)},
		{3, 1, 3},
	}
	for _, ex := range values {
		d := ToDuration(ex.Ticks, ex.Scale)
		if d != ex.T {
			t.Errorf("%d@%d: expected %s, got %s", ex.Ticks, ex.Scale, ex.T, d)
		}
	}

	if d := FloatToDuration(1234.5, DefaultScale); d != 1234500*time.Microsecond {
		t.Errorf("expected 1.2345s, got %s", d)
	}
}

func TestRelative(t *testing.T) {
	values := []struct {
		T, Base time.Duration
		V       int16
		Ok      bool
	}{
		{time.Second, time.Second, 0, true},
		{time.Second + 40*time.Millisecond, time.Second, 40, true},
		{time.Second - 40*time.Millisecond, time.Second, -40, true},
		{32767 * time.Millisecond, 0, 32767, true},
		{32768 * time.Millisecond, 0, 0, false},
		{0, 32769 * time.Millisecond, 0, false},
	}
	for _, ex := range values {
		v, ok := Relative(ex.T, ex.Base, DefaultScale)
		if v != ex.V || ok != ex.Ok {
			t.Errorf("%s-%s: expected %d %v, got %d %v", ex.T, ex.Base, ex.V, ex.Ok, v, ok)
		}
	}
}
