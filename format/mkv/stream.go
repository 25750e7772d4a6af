package mkv

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Track types
const (
	TrackVideo    = 0x01
	TrackAudio    = 0x02
	TrackComplex  = 0x03
	TrackLogo     = 0x10
	TrackSubtitle = 0x11
	TrackButtons  = 0x12
	TrackControl  = 0x20
	TrackMetadata = 0x21
)

// Info is the content of the segment Info element.
type Info struct {
	SegmentUID    uuid.UUID
	TimecodeScale uint64 // nanoseconds per tick
	Duration      time.Duration
	DateUTC       time.Time
	Title         string
	MuxingApp     string
	WritingApp    string
}

// Video holds the settings of a video track.
type Video struct {
	PixelWidth    uint64
	PixelHeight   uint64
	DisplayWidth  uint64
	DisplayHeight uint64
	Interlaced    bool
}

// Audio holds the settings of an audio track.
type Audio struct {
	SamplingFrequency float64
	Channels          uint64
	BitDepth          uint64
}

// Track is one TrackEntry.
type Track struct {
	Number          uint64
	UID             uint64
	Type            uint64
	CodecID         string
	CodecPrivate    []byte
	Name            string
	Language        string
	Default         bool
	DefaultDuration time.Duration

	Video *Video
	Audio *Audio
}

func (t *Track) String() string {
	switch {
	case t.Video != nil:
		return fmt.Sprintf("#%d %s %dx%d", t.Number, t.CodecID, t.Video.PixelWidth, t.Video.PixelHeight)
	case t.Audio != nil:
		return fmt.Sprintf("#%d %s %gHz ch=%d", t.Number, t.CodecID, t.Audio.SamplingFrequency, t.Audio.Channels)
	}
	return fmt.Sprintf("#%d %s", t.Number, t.CodecID)
}

// Packet is one frame of a Block or SimpleBlock.
type Packet struct {
	Track       uint64
	IsKeyFrame  bool
	Invisible   bool
	Discardable bool
	Time        time.Duration // presentation time from the segment start
	Duration    time.Duration // zero when neither the block nor the track gives one
	Data        []byte
}
