package image

import (
	"image"
	"image/jpeg"
	"io"
)

const (
	MinJPEGQuality = Quality(1)
	MaxJPEGQuality = Quality(100)
)

// SubsamplingMode selects chroma subsampling for encoders that expose it.
type SubsamplingMode uint8

const (
	Subsampling444 SubsamplingMode = iota
	Subsampling422
	Subsampling420
)

// QuantTables names a quantization table preset.
type QuantTables uint8

const (
	QuantDefault QuantTables = iota
	QuantWebLow
)

// WriteOption ...
//
// Progressive, Subsampling and Quant take effect only with encoders
// that expose them; the pure-Go encoder emits baseline 4:2:0 with its
// default tables and honors Quality alone.
type WriteOption struct {
	Quality     Quality
	Optimize    bool
	Progressive bool
	Subsampling SubsamplingMode
	Quant       QuantTables
}

// ClampQuality converts an int quality into [1, 100] before the
// narrowing conversion, so out-of-range flag values cannot wrap.
func ClampQuality(q int) Quality {
	if q < int(MinJPEGQuality) {
		return MinJPEGQuality
	}
	if q > int(MaxJPEGQuality) {
		return MaxJPEGQuality
	}
	return Quality(q)
}

func (wopt WriteOption) quality() int {
	q := wopt.Quality
	if q < MinJPEGQuality {
		q = MinJPEGQuality
	} else if q > MaxJPEGQuality {
		q = MaxJPEGQuality
	}
	return int(q)
}

// EncodeJPEG writes m to w as JPEG, flattening alpha first.
func EncodeJPEG(w io.Writer, m image.Image, wopt WriteOption) error {
	return jpeg.Encode(w, ToOpaque(m), &jpeg.Options{Quality: wopt.quality()})
}
