package image

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/h2non/filetype"
	"github.com/liut/jpegquality"

	"github.com/go-imsto/picbatch/log"
)

// filetype wants up to 261 bytes of header
const sniffLen = 261

// ProbeFile sniffs and stats path without a full pixel decode.
// Non-JPEG content gives ErrorFormat regardless of the file name.
func ProbeFile(path string) (*Attr, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	kind, err := filetype.Match(head[:n])
	if err != nil {
		return nil, err
	}
	if kind.Extension != "jpg" {
		log.Debugw("probe: not a jpeg", "path", path, "matched", kind.Extension)
		return nil, ErrorFormat
	}

	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, err
	}

	ia := NewAttr(uint(cfg.Width), uint(cfg.Height), 0)
	ia.Size = Size(fi.Size())
	ia.Ext = ".jpg"
	ia.Mime = kind.MIME.Value
	ia.Name = fi.Name()

	if _, err = f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	if jr, err := jpegquality.New(f); err == nil {
		ia.Quality = Quality(jr.Quality())
	}

	return ia, nil
}

// DecodeFile reads the image at path. The attributes carry the byte
// size and the estimated source quality next to the pixel dimensions.
func DecodeFile(path string) (image.Image, *Attr, error) {
	ia, err := ProbeFile(path)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, nil, err
	}
	return m, ia, nil
}
