package mkv

import (
	"errors"
	"io"
	"time"

	"github.com/deepch/ebml/format/ebml"
	"github.com/deepch/ebml/format/ebml/ebmlio"
	"github.com/deepch/ebml/format/mkv/mkvio"
	"github.com/deepch/ebml/format/mkv/timescale"
	"github.com/deepch/ebml/utils/bits/pio"
	"github.com/google/uuid"
)

const MuxingApp = "deepch/ebml"

var (
	ErrNegativeTime = errors.New("mkv: packet time before segment start")
	ErrUnknownTrack = errors.New("mkv: packet for undeclared track")
)

// Muxer writes a live Matroska stream: the Segment has unknown size and
// each Cluster is buffered until the next one starts.
type Muxer struct {
	w      *ebmlio.Writer
	info   Info
	tracks map[uint64]*Track
	last   map[uint64]time.Duration

	cluster *ebmlio.Element
	base    time.Duration
}

func NewMuxer(w io.Writer) *Muxer {
	return &Muxer{
		w:      ebmlio.NewWriter(w),
		tracks: map[uint64]*Track{},
		last:   map[uint64]time.Duration{},
	}
}

// WriteHeader writes the EBML header, opens the Segment and writes Info
// and Tracks. Missing UIDs are generated.
func (self *Muxer) WriteHeader(info Info, tracks []*Track) (err error) {
	if len(tracks) == 0 {
		return ErrNoTracks
	}
	if info.TimecodeScale == 0 {
		info.TimecodeScale = timescale.DefaultScale
	}
	if info.SegmentUID == uuid.Nil {
		info.SegmentUID = uuid.New()
	}
	if info.MuxingApp == "" {
		info.MuxingApp = MuxingApp
	}
	self.info = info

	h := ebml.DefaultHeader()
	h.DocType = "matroska"
	h.DocTypeVersion = 4
	h.DocTypeReadVersion = 2
	if err = self.w.WriteTree(h.Element()); err != nil {
		return
	}
	if err = self.w.WriteHeaderLen(mkvio.Segment, mkvio.UnknownSize, 8); err != nil {
		return
	}
	if err = self.w.WriteTree(infoElement(info)); err != nil {
		return
	}

	entries := ebmlio.NewMaster(mkvio.Tracks)
	for _, t := range tracks {
		if t.UID == 0 {
			u := uuid.New()
			t.UID = pio.U64BE(u[:])
		}
		self.tracks[t.Number] = t
		entries.Append(trackElement(t))
	}
	return self.w.WriteTree(entries)
}

func infoElement(info Info) *ebmlio.Element {
	el := ebmlio.NewMaster(mkvio.Info,
		ebmlio.NewLeaf(mkvio.SegmentUID, info.SegmentUID[:]),
		ebmlio.NewLeaf(mkvio.TimecodeScale, ebmlio.EncodeUint(info.TimecodeScale)),
		ebmlio.NewLeaf(mkvio.MuxingApp, []byte(info.MuxingApp)),
	)
	if info.WritingApp != "" {
		el.Append(ebmlio.NewLeaf(mkvio.WritingApp, []byte(info.WritingApp)))
	}
	if info.Title != "" {
		el.Append(ebmlio.NewLeaf(mkvio.Title, []byte(info.Title)))
	}
	if !info.DateUTC.IsZero() {
		el.Append(ebmlio.NewLeaf(mkvio.DateUTC, ebmlio.EncodeDate(info.DateUTC)))
	}
	if info.Duration > 0 {
		ticks := float64(info.Duration) / float64(info.TimecodeScale)
		el.Append(ebmlio.NewLeaf(mkvio.Duration, ebmlio.EncodeFloat(ticks)))
	}
	return el
}

func boolUint(b bool) []byte {
	if b {
		return ebmlio.EncodeUint(1)
	}
	return ebmlio.EncodeUint(0)
}

func trackElement(t *Track) *ebmlio.Element {
	el := ebmlio.NewMaster(mkvio.TrackEntry,
		ebmlio.NewLeaf(mkvio.TrackNumber, ebmlio.EncodeUint(t.Number)),
		ebmlio.NewLeaf(mkvio.TrackUID, ebmlio.EncodeUint(t.UID)),
		ebmlio.NewLeaf(mkvio.TrackType, ebmlio.EncodeUint(t.Type)),
		ebmlio.NewLeaf(mkvio.FlagDefault, boolUint(t.Default)),
		ebmlio.NewLeaf(mkvio.CodecID, []byte(t.CodecID)),
	)
	if len(t.CodecPrivate) > 0 {
		el.Append(ebmlio.NewLeaf(mkvio.CodecPrivate, t.CodecPrivate))
	}
	if t.Name != "" {
		el.Append(ebmlio.NewLeaf(mkvio.Name, []byte(t.Name)))
	}
	if t.Language != "" {
		el.Append(ebmlio.NewLeaf(mkvio.Language, []byte(t.Language)))
	}
	if t.DefaultDuration > 0 {
		el.Append(ebmlio.NewLeaf(mkvio.DefaultDuration, ebmlio.EncodeUint(uint64(t.DefaultDuration))))
	}
	if v := t.Video; v != nil {
		video := ebmlio.NewMaster(mkvio.Video,
			ebmlio.NewLeaf(mkvio.PixelWidth, ebmlio.EncodeUint(v.PixelWidth)),
			ebmlio.NewLeaf(mkvio.PixelHeight, ebmlio.EncodeUint(v.PixelHeight)),
		)
		if v.DisplayWidth != 0 && v.DisplayHeight != 0 {
			video.Append(
				ebmlio.NewLeaf(mkvio.DisplayWidth, ebmlio.EncodeUint(v.DisplayWidth)),
				ebmlio.NewLeaf(mkvio.DisplayHeight, ebmlio.EncodeUint(v.DisplayHeight)),
			)
		}
		if v.Interlaced {
			video.Append(ebmlio.NewLeaf(mkvio.FlagInterlaced, ebmlio.EncodeUint(1)))
		}
		el.Append(video)
	}
	if a := t.Audio; a != nil {
		audio := ebmlio.NewMaster(mkvio.Audio,
			ebmlio.NewLeaf(mkvio.SamplingFrequency, ebmlio.EncodeFloat(a.SamplingFrequency)),
			ebmlio.NewLeaf(mkvio.Channels, ebmlio.EncodeUint(a.Channels)),
		)
		if a.BitDepth > 0 {
			audio.Append(ebmlio.NewLeaf(mkvio.BitDepth, ebmlio.EncodeUint(a.BitDepth)))
		}
		el.Append(audio)
	}
	return el
}

// WritePacket adds pkt to the current Cluster. A new Cluster starts on a
// video keyframe or when the block timecode would not fit in 16 bits.
// Packets whose Duration differs from the track default are written as a
// BlockGroup, all others as a SimpleBlock.
func (self *Muxer) WritePacket(pkt Packet) (err error) {
	if pkt.Time < 0 {
		return ErrNegativeTime
	}
	track := self.tracks[pkt.Track]
	if track == nil {
		return ErrUnknownTrack
	}
	scale := self.info.TimecodeScale

	rel, ok := timescale.Relative(pkt.Time, self.base, scale)
	if self.cluster == nil || !ok || pkt.IsKeyFrame && track.Type == TrackVideo && len(self.cluster.Children) > 1 {
		if err = self.flush(); err != nil {
			return
		}
		self.base, rel = pkt.Time, 0
		ticks := uint64(timescale.ToTicks(pkt.Time, scale))
		self.cluster = ebmlio.NewMaster(mkvio.Cluster, ebmlio.NewLeaf(mkvio.Timecode, ebmlio.EncodeUint(ticks)))
	}

	simple := pkt.Duration == 0 || pkt.Duration == track.DefaultDuration
	var flags uint8
	if pkt.Invisible {
		flags |= flagInvisible
	}
	if simple && pkt.IsKeyFrame {
		flags |= flagKeyFrame
	}
	if simple && pkt.Discardable {
		flags |= flagDiscardable
	}
	b, err := encodeBlock(pkt.Track, rel, flags, pkt.Data)
	if err != nil {
		return
	}

	if simple {
		self.cluster.Append(ebmlio.NewLeaf(mkvio.SimpleBlock, b))
	} else {
		dur := timescale.ToTicks(pkt.Duration, scale)
		group := ebmlio.NewMaster(mkvio.BlockGroup,
			ebmlio.NewLeaf(mkvio.Block, b),
			ebmlio.NewLeaf(mkvio.BlockDuration, ebmlio.EncodeUint(uint64(dur))),
		)
		if last, seen := self.last[pkt.Track]; !pkt.IsKeyFrame && seen {
			ref := timescale.ToTicks(last, scale) - timescale.ToTicks(pkt.Time, scale)
			group.Append(ebmlio.NewLeaf(mkvio.ReferenceBlock, ebmlio.EncodeInt(ref)))
		}
		self.cluster.Append(group)
	}
	self.last[pkt.Track] = pkt.Time
	return
}

func (self *Muxer) flush() error {
	if self.cluster == nil {
		return nil
	}
	cluster := self.cluster
	self.cluster = nil
	return self.w.WriteTree(cluster)
}

// WriteTrailer writes the buffered Cluster.
func (self *Muxer) WriteTrailer() error {
	return self.flush()
}
