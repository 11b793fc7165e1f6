package batch

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-imsto/picbatch/image"
	"github.com/go-imsto/picbatch/log"
	"github.com/go-imsto/picbatch/utils"
)

// Params configures one compress pass over a folder.
type Params struct {
	MaxWidth, MaxHeight uint
	image.WriteOption

	// Checkpoint prints a running progress line every N files. 0 disables.
	Checkpoint int

	// Out receives the per-file report lines. nil means discard.
	Out io.Writer
}

func (p Params) scaleOption() image.ScaleOption {
	return image.ScaleOption{MaxWidth: p.MaxWidth, MaxHeight: p.MaxHeight}
}

// FileResult carries one file's probe and before/after accounting.
// On a failed file CompressedSize equals OriginalSize.
type FileResult struct {
	Attr           *image.Attr
	OriginalSize   int64
	CompressedSize int64
}

// CompressFile re-encodes the image at src into dst. An empty dst
// overwrites src.
func CompressFile(src, dst string, p Params) (r FileResult, err error) {
	if dst == "" {
		dst = src
	}

	if r.OriginalSize = utils.FileSize(src); r.OriginalSize < 0 {
		r.OriginalSize = 0
		return r, os.ErrNotExist
	}
	r.CompressedSize = r.OriginalSize

	m, ia, err := image.DecodeFile(src)
	if err != nil {
		return r, err
	}
	r.Attr = ia
	log.Debugw("probed", "file", src, "attr", ia)

	m = image.ScaleImage(m, p.scaleOption())

	var buf bytes.Buffer
	if err = image.EncodeJPEG(&buf, m, p.WriteOption); err != nil {
		return r, err
	}
	if err = utils.SaveFile(dst, buf.Bytes()); err != nil {
		return r, err
	}

	r.CompressedSize = int64(buf.Len())
	return r, nil
}

// CompressFolder applies p to every JPEG candidate directly under dir,
// in sorted-name order, overwriting each file in place. A missing dir
// or an empty match set is reported and yields zero Totals, not an
// error. A failed file is counted with original == compressed and the
// batch continues.
func CompressFolder(dir string, p Params) (t Totals) {
	out := p.Out
	if out == nil {
		out = io.Discard
	}

	names, err := Scan(dir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(out, "folder not found: %s\n", dir)
			log.Warnw("folder not found", "dir", dir)
		} else {
			fmt.Fprintf(out, "scan %s failed: %s\n", dir, err)
			log.Warnw("scan failed", "dir", dir, "error", err)
		}
		return
	}
	if len(names) == 0 {
		fmt.Fprintf(out, "no jpeg files in %s\n", dir)
		return
	}

	fmt.Fprintf(out, "\nprocessing %s: %d files\n", dir, len(names))

	for i, name := range names {
		src := filepath.Join(dir, name)
		r, err := CompressFile(src, "", p)
		if err != nil {
			log.Warnw("compress failed", "file", src, "error", err)
			fmt.Fprintf(out, "(%d/%d) %s failed: %s\n", i+1, len(names), name, err)
		} else {
			fmt.Fprintf(out, "(%d/%d) %s [%dx%d q%d]: %s -> %s (%.1f%%)\n",
				i+1, len(names), name,
				r.Attr.Width, r.Attr.Height, r.Attr.Quality,
				FormatSize(r.OriginalSize), FormatSize(r.CompressedSize),
				Reduction(r.OriginalSize, r.CompressedSize))
		}

		t.OriginalSize += r.OriginalSize
		t.CompressedSize += r.CompressedSize
		t.Files++

		if p.Checkpoint > 0 && (i+1)%p.Checkpoint == 0 {
			fmt.Fprintf(out, "progress: %d/%d files, saved %s (%.1f%%)\n",
				i+1, len(names), FormatSize(t.Saved()),
				Reduction(t.OriginalSize, t.CompressedSize))
		}
	}

	return
}
