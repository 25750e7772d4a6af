package mkv

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/deepch/ebml/format/ebml"
	"github.com/deepch/ebml/format/ebml/ebmlio"
	"github.com/deepch/ebml/format/mkv/mkvio"
	"github.com/deepch/ebml/format/mkv/timescale"
	"github.com/google/uuid"
)

var (
	ErrDocType  = errors.New("mkv: not a matroska or webm document")
	ErrNoTracks = errors.New("mkv: tracks not found")
	ErrNoBlock  = errors.New("mkv: BlockGroup without Block")
)

type DemuxerOptions struct {
	Debug       bool
	MaxDataSize uint64 // largest leaf payload accepted, 0 for no limit
}

type Demuxer struct {
	r      *mkvio.Document
	opts   DemuxerOptions
	header ebml.Header
	info   Info
	tracks []*Track
	pkts   []Packet
	stage  int
	err    error // result of probe

	cluster uint64 // Timecode of the current Cluster
}

func NewDemuxer(r io.Reader) *Demuxer {
	return NewDemuxerOptions(r, DemuxerOptions{})
}

func NewDemuxerOptions(r io.Reader, opts DemuxerOptions) *Demuxer {
	return &Demuxer{
		r:    mkvio.NewDocument(r, ebmlio.ReaderOptions{MaxDataSize: opts.MaxDataSize}),
		opts: opts,
		info: Info{TimecodeScale: timescale.DefaultScale},
	}
}

// Header returns the EBML header of the document.
func (self *Demuxer) Header() (ebml.Header, error) {
	err := self.probe()
	return self.header, err
}

func (self *Demuxer) Info() (Info, error) {
	err := self.probe()
	return self.info, err
}

func (self *Demuxer) Tracks() (tracks []*Track, err error) {
	if err = self.probe(); err != nil {
		return
	}
	if len(self.tracks) == 0 {
		return nil, ErrNoTracks
	}
	return self.tracks, nil
}

// Track returns the track with the given number, or nil.
func (self *Demuxer) Track(number uint64) *Track {
	for _, t := range self.tracks {
		if t.Number == number {
			return t
		}
	}
	return nil
}

// probe reads everything up to the first Cluster. Its result is kept: a
// document that failed to probe fails every later call.
func (self *Demuxer) probe() error {
	if self.stage == 0 {
		self.stage++
		self.err = self.readHeaders()
	}
	return self.err
}

func (self *Demuxer) readHeaders() (err error) {
	el, err := self.r.ParseHeader()
	if err != nil {
		if err == io.EOF {
			err = ebmlio.ErrUnexpectedEOF
		}
		return
	}
	if el.ID != ebml.EBML {
		return fmt.Errorf("mkv: first element is %s: %w", el.Name, ebmlio.ErrUnexpectedElementID)
	}
	tree, err := self.r.ReadTree(el)
	if err != nil {
		return
	}
	if self.header, err = ebml.ParseHeader(tree); err != nil {
		return
	}
	if self.header.DocType != "matroska" && self.header.DocType != "webm" {
		return fmt.Errorf("%w: %q", ErrDocType, self.header.DocType)
	}

	for {
		if el, err = self.r.ParseHeader(); err != nil {
			if err == io.EOF {
				err = nil
			}
			return
		}
		switch el.ID {
		case mkvio.Segment:
		case mkvio.Info:
			if tree, err = self.r.ReadTree(el); err != nil {
				return
			}
			if err = self.parseInfo(tree); err != nil {
				return
			}
		case mkvio.Tracks:
			if tree, err = self.r.ReadTree(el); err != nil {
				return
			}
			if err = self.parseTracks(tree); err != nil {
				return
			}
		case mkvio.Cluster:
			self.cluster = 0
			return
		default:
			if err = self.skip(el); err != nil {
				return
			}
		}
	}
}

func (self *Demuxer) skip(el mkvio.Element) error {
	if el.IsMaster() && el.Size == mkvio.UnknownSize {
		return nil
	}
	if self.opts.Debug {
		log.Println("mkv: skip", el.Name, "offset", el.Offset, "size", el.Size)
	}
	return self.r.SkipElement(el)
}

func (self *Demuxer) parseInfo(tree *ebmlio.Element) (err error) {
	var duration float64
	for _, child := range tree.Children {
		var b []byte
		switch child.ID {
		case mkvio.SegmentUID:
			if b, err = child.Data.Binary(); err == nil {
				self.info.SegmentUID, err = uuid.FromBytes(b)
			}
		case mkvio.TimecodeScale:
			self.info.TimecodeScale, err = child.Data.Uint()
			if err == nil && self.info.TimecodeScale == 0 {
				self.info.TimecodeScale = timescale.DefaultScale
			}
		case mkvio.Duration:
			duration, err = child.Data.Float()
		case mkvio.DateUTC:
			self.info.DateUTC, err = child.Data.Date()
		case mkvio.Title:
			self.info.Title, err = text(&child.Data)
		case mkvio.MuxingApp:
			self.info.MuxingApp, err = text(&child.Data)
		case mkvio.WritingApp:
			self.info.WritingApp, err = text(&child.Data)
		}
		if err != nil {
			return fmt.Errorf("mkv: Info %s: %w", mkvio.GetElementRegister(child.ID).Name, err)
		}
	}
	self.info.Duration = timescale.FloatToDuration(duration, self.info.TimecodeScale)
	return
}

func text(d *ebmlio.Data) (string, error) {
	b, err := d.Binary()
	if err != nil {
		return "", err
	}
	return mkvio.Text(b)
}

func (self *Demuxer) parseTracks(tree *ebmlio.Element) error {
	for _, entry := range ebmlio.FindChildren(tree, mkvio.TrackEntry) {
		track, err := parseTrack(entry)
		if err != nil {
			return fmt.Errorf("mkv: TrackEntry at %d: %w", entry.Offset, err)
		}
		if self.opts.Debug {
			log.Println("mkv: track", track)
		}
		self.tracks = append(self.tracks, track)
	}
	return nil
}

func parseTrack(entry *ebmlio.Element) (t *Track, err error) {
	t = &Track{Default: true, Language: "eng"}
	for _, child := range entry.Children {
		var v uint64
		switch child.ID {
		case mkvio.TrackNumber:
			t.Number, err = child.Data.Uint()
		case mkvio.TrackUID:
			t.UID, err = child.Data.Uint()
		case mkvio.TrackType:
			t.Type, err = child.Data.Uint()
		case mkvio.CodecID:
			t.CodecID, err = text(&child.Data)
		case mkvio.CodecPrivate:
			t.CodecPrivate, err = child.Data.Binary()
		case mkvio.Name:
			t.Name, err = text(&child.Data)
		case mkvio.Language:
			t.Language, err = text(&child.Data)
		case mkvio.FlagDefault:
			v, err = child.Data.Uint()
			t.Default = v != 0
		case mkvio.DefaultDuration:
			v, err = child.Data.Uint()
			t.DefaultDuration = time.Duration(v)
		case mkvio.Video:
			t.Video, err = parseVideo(child)
		case mkvio.Audio:
			t.Audio, err = parseAudio(child)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", mkvio.GetElementRegister(child.ID).Name, err)
		}
	}
	if t.Number == 0 {
		return nil, errors.New("TrackNumber missing")
	}
	return
}

func parseVideo(el *ebmlio.Element) (v *Video, err error) {
	v = &Video{}
	for _, child := range el.Children {
		var n uint64
		switch child.ID {
		case mkvio.PixelWidth:
			v.PixelWidth, err = child.Data.Uint()
		case mkvio.PixelHeight:
			v.PixelHeight, err = child.Data.Uint()
		case mkvio.DisplayWidth:
			v.DisplayWidth, err = child.Data.Uint()
		case mkvio.DisplayHeight:
			v.DisplayHeight, err = child.Data.Uint()
		case mkvio.FlagInterlaced:
			n, err = child.Data.Uint()
			v.Interlaced = n == 1
		}
		if err != nil {
			return
		}
	}
	if v.DisplayWidth == 0 {
		v.DisplayWidth = v.PixelWidth
	}
	if v.DisplayHeight == 0 {
		v.DisplayHeight = v.PixelHeight
	}
	return
}

func parseAudio(el *ebmlio.Element) (a *Audio, err error) {
	a = &Audio{SamplingFrequency: 8000, Channels: 1}
	for _, child := range el.Children {
		switch child.ID {
		case mkvio.SamplingFrequency:
			a.SamplingFrequency, err = child.Data.Float()
		case mkvio.Channels:
			a.Channels, err = child.Data.Uint()
		case mkvio.BitDepth:
			a.BitDepth, err = child.Data.Uint()
		}
		if err != nil {
			return
		}
	}
	return
}

// ReadPacket returns the next frame in file order. Laced blocks yield one
// packet per frame. io.EOF is returned at the end of the document.
func (self *Demuxer) ReadPacket() (pkt Packet, err error) {
	if err = self.probe(); err != nil {
		return
	}
	for len(self.pkts) == 0 {
		if err = self.next(); err != nil {
			return
		}
	}
	pkt = self.pkts[0]
	self.pkts = self.pkts[1:]
	return
}

func (self *Demuxer) next() error {
	el, err := self.r.ParseHeader()
	if err != nil {
		return err
	}
	switch el.ID {
	case mkvio.Segment:
		return nil
	case mkvio.Cluster:
		self.cluster = 0
		return nil
	case mkvio.Timecode:
		if err = self.r.ReadContent(&el); err != nil {
			return err
		}
		self.cluster, err = ebmlio.Uint(el.Content)
		return err
	case mkvio.SimpleBlock:
		if err = self.r.ReadContent(&el); err != nil {
			return err
		}
		blk, err := parseBlock(el.Content)
		if err != nil {
			return fmt.Errorf("mkv: SimpleBlock at %d: %w", el.Offset, err)
		}
		self.queue(blk, blk.flags&flagKeyFrame != 0, 0)
		return nil
	case mkvio.BlockGroup:
		tree, err := self.r.ReadTree(el)
		if err != nil {
			return err
		}
		return self.blockGroup(tree)
	}
	return self.skip(el)
}

func (self *Demuxer) blockGroup(tree *ebmlio.Element) error {
	b := ebmlio.FindChild(tree, mkvio.Block)
	if b == nil {
		return fmt.Errorf("%w at %d", ErrNoBlock, tree.Offset)
	}
	blk, err := parseBlock(b.Data.Peek())
	if err != nil {
		return fmt.Errorf("mkv: Block at %d: %w", b.Offset, err)
	}
	var dur time.Duration
	if d := ebmlio.FindChild(tree, mkvio.BlockDuration); d != nil {
		ticks, err := d.Data.Uint()
		if err != nil {
			return fmt.Errorf("mkv: BlockDuration at %d: %w", d.Offset, err)
		}
		dur = timescale.ToDuration(int64(ticks), self.info.TimecodeScale)
	}
	key := ebmlio.FindChild(tree, mkvio.ReferenceBlock) == nil
	self.queue(blk, key, dur)
	return nil
}

// queue turns the frames of blk into packets. dur is the duration of the
// whole block, zero when not given.
func (self *Demuxer) queue(blk block, key bool, dur time.Duration) {
	t := timescale.ToDuration(int64(self.cluster)+int64(blk.timecode), self.info.TimecodeScale)

	var frame time.Duration
	if track := self.Track(blk.track); track != nil {
		frame = track.DefaultDuration
	}
	if dur != 0 {
		frame = dur / time.Duration(len(blk.frames))
	}

	for i, data := range blk.frames {
		self.pkts = append(self.pkts, Packet{
			Track:       blk.track,
			IsKeyFrame:  key,
			Invisible:   blk.flags&flagInvisible != 0,
			Discardable: blk.flags&flagDiscardable != 0,
			Time:        t + time.Duration(i)*frame,
			Duration:    frame,
			Data:        data,
		})
	}
}
