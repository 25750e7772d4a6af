package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/deepch/ebml/format/ebml"
	"github.com/deepch/ebml/format/ebml/ebmlio"
	"github.com/deepch/ebml/format/mkv"
	"github.com/deepch/ebml/format/mkv/mkvio"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/spf13/afero"
)

type options struct {
	deep     bool
	matroska bool
	packets  bool
	stats    bool
	strict   bool
	debug    bool
	maxDepth int
	maxData  uint64
}

func main() {
	var opts options
	flag.BoolVar(&opts.deep, "deep", false, "read each top level element with all of its descendants")
	flag.BoolVar(&opts.matroska, "matroska", true, "name and decode elements with the Matroska table")
	flag.BoolVar(&opts.packets, "packets", false, "list the tracks and packets of a Matroska or WebM file")
	flag.BoolVar(&opts.stats, "stats", false, "print element count, elapsed time and resident memory")
	flag.BoolVar(&opts.strict, "strict", false, "fail on element IDs missing from the table")
	flag.BoolVar(&opts.debug, "debug", false, "log every element header")
	flag.IntVar(&opts.maxDepth, "max-depth", ebmlio.DefaultMaxDepth, "deepest master nesting accepted by -deep")
	flag.Uint64Var(&opts.maxData, "max-data", 0, "largest leaf payload accepted, 0 for no limit")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ebmldump [flags] file")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err := run(afero.NewOsFs(), flag.Arg(0), os.Stdout, opts); err != nil {
		log.Fatalln(err)
	}
}

func run(fs afero.Fs, path string, out io.Writer, opts options) error {
	f, err := fs.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	var n int
	switch {
	case opts.packets:
		n, err = dumpPackets(f, out, opts)
	case opts.deep:
		n, err = dumpDeep(f, out, opts)
	default:
		n, err = dumpShallow(f, out, opts)
	}
	if err != nil {
		return err
	}
	if opts.stats {
		return printStats(out, n, time.Since(start))
	}
	return nil
}

func readerOptions(opts options) ebmlio.ReaderOptions {
	ro := ebmlio.ReaderOptions{
		Registry:    ebml.Registry(),
		MaxDepth:    opts.maxDepth,
		MaxDataSize: opts.maxData,
		Debug:       opts.debug,
	}
	if opts.matroska {
		ro.Registry = mkvio.Registry()
	}
	if opts.strict {
		ro.UnknownIDs = ebmlio.UnknownIsError
	}
	return ro
}

// dumpShallow prints one line per element without loading masters.
func dumpShallow(in io.Reader, out io.Writer, opts options) (n int, err error) {
	if opts.matroska {
		doc := mkvio.NewDocument(in, readerOptions(opts))
		err = doc.ParseAll(func(el mkvio.Element) error {
			n++
			_, err := fmt.Fprintln(out, el)
			return err
		})
		return
	}

	r := ebmlio.NewReader(in, readerOptions(opts))
	for {
		el, _, err := r.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
		ebmlio.FprintElement(out, r.Registry(), el)
	}
}

// dumpDeep loads and prints every top level element as a tree.
func dumpDeep(in io.Reader, out io.Writer, opts options) (n int, err error) {
	r := ebmlio.NewReader(in, readerOptions(opts))
	for {
		el, _, err := r.ReadElement()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		ebmlio.Walk(el, func(*ebmlio.Element, int) bool {
			n++
			return true
		})
		if opts.matroska {
			mkvio.FprintElement(out, el)
		} else {
			ebmlio.FprintElement(out, r.Registry(), el)
		}
	}
}

func dumpPackets(in io.Reader, out io.Writer, opts options) (n int, err error) {
	d := mkv.NewDemuxerOptions(in, mkv.DemuxerOptions{Debug: opts.debug, MaxDataSize: opts.maxData})
	h, err := d.Header()
	if err != nil {
		return
	}
	info, err := d.Info()
	if err != nil {
		return
	}
	tracks, err := d.Tracks()
	if err != nil {
		return
	}
	fmt.Fprintln(out, h)
	fmt.Fprintf(out, "segment %s scale=%d duration=%s title=%q\n", info.SegmentUID, info.TimecodeScale, info.Duration, info.Title)
	for _, t := range tracks {
		fmt.Fprintln(out, "track", t)
	}
	for {
		pkt, err := d.ReadPacket()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
		fmt.Fprintf(out, "packet track=%d time=%s key=%v size=%d\n", pkt.Track, pkt.Time, pkt.IsKeyFrame, len(pkt.Data))
	}
}

func printStats(out io.Writer, n int, elapsed time.Duration) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "elements=%d elapsed=%s rss=%d\n", n, elapsed, mem.RSS)
	return err
}
