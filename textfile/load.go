package textfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rope"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// ErrInvalidUTF8 is flagged for files which are not valid UTF-8 text.
const ErrInvalidUTF8 = rope.RopeError("text file is not valid UTF-8")

// fileFragment is the message published for every fragment read from a file.
type fileFragment struct {
	text string
	pos  int64 // start position of this fragment within the file
	err  error
}

// textFile represents an OS file which will be loaded as a rope.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for loaded fragments
}

// Load reads a file, which must be a UTF-8 text file, and loads it as a rope.
// Clients may indicate a recommended fragment length in bytes. A fragSize of 0
// lets Load choose a sensible default, depending on the size of the file.
//
// Fragments are read in the background and collected into the rope as they
// arrive. Load returns when the file has been read completely, or with the
// first error encountered.
func Load(name string, fragSize int64) (rope.Rope, error) {
	tf, err := openFile(name)
	if err != nil {
		return rope.Rope{}, err
	}
	fragSize = fragmentSize(tf.info.Size(), fragSize)
	tracer().Debugf("loading %s (%d bytes) in fragments of %d bytes", name, tf.info.Size(), fragSize)
	//
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tf.cast = caster.New(ctx)
	sub, ok := tf.cast.Sub(ctx, 16)
	if !ok {
		tf.file.Close()
		return rope.Rope{}, fmt.Errorf("cannot subscribe to fragments of %s", name)
	}
	go loadAllFragments(tf, fragSize)
	//
	b := rope.NewBuilder()
	for msg := range sub {
		frag := msg.(*fileFragment)
		if frag.err != nil {
			err = frag.err
			break
		}
		if e := b.AppendString(frag.text); e != nil {
			err = e
			break
		}
	}
	if err != nil {
		tracer().Errorf("loading %s: %v", name, err)
		return rope.Rope{}, err
	}
	return b.Rope(), nil
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
	}
	return tf, nil
}

// fragmentSize selects a fragment size for a file of a given size.
func fragmentSize(size int64, fragSize int64) int64 {
	if fragSize <= 0 || fragSize > tenKb {
		if size < 64 {
			fragSize = size
		} else if size < 1024 {
			fragSize = 64
		} else if size < tenKb {
			fragSize = 256
		} else if size < hundredKb {
			fragSize = 512
		} else if size < oneMb {
			fragSize = twoKb
		} else {
			fragSize = sixKb
		}
	}
	return max(fragSize, utf8.UTFMax)
}

// --- File loading goroutine ------------------------------------------------

// loadAllFragments iterates over the file and publishes fragments of text.
// Fragment borders are moved to the start of a rune. The caster is closed
// when done, which terminates the subscriber loop.
func loadAllFragments(tf *textFile, fragSize int64) {
	defer tf.file.Close()
	defer tf.cast.Close()
	size := tf.info.Size()
	buf := make([]byte, fragSize+utf8.UTFMax-1)
	for pos := int64(0); pos < size; {
		n, err := tf.file.ReadAt(buf, pos)
		if err != nil && err != io.EOF {
			tf.cast.Pub(&fileFragment{pos: pos, err: fmt.Errorf("error loading text fragment: %w", err)})
			return
		}
		cut := runeBorder(buf[:n], int(fragSize))
		frag := buf[:cut]
		if !utf8.Valid(frag) {
			tf.cast.Pub(&fileFragment{pos: pos, err: fmt.Errorf("fragment at %d: %w", pos, ErrInvalidUTF8)})
			return
		}
		if !tf.cast.Pub(&fileFragment{text: string(frag), pos: pos}) {
			return // caster has been cancelled
		}
		pos += int64(cut)
	}
}

// runeBorder returns the largest position k <= fragSize within b, so that
// b[k] starts a rune. If no such position exists, it returns len(b).
func runeBorder(b []byte, fragSize int) int {
	if len(b) <= fragSize {
		return len(b)
	}
	for k := fragSize; k > 0; k-- {
		if utf8.RuneStart(b[k]) {
			return k
		}
	}
	return len(b)
}
