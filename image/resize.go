package image

import (
	"image"
	"image/draw"

	"github.com/nfnt/resize"
)

// ScaleOption carries the bounding box for a batch resize.
type ScaleOption struct {
	MaxWidth, MaxHeight uint
}

// calc returns the output dimensions for an ow x oh source. Images
// already inside the bounds keep their native size, never upscaled.
func (sopt ScaleOption) calc(ow, oh uint) (uint, uint, bool) {
	if sopt.MaxWidth == 0 || sopt.MaxHeight == 0 {
		return ow, oh, false
	}
	if ow <= sopt.MaxWidth && oh <= sopt.MaxHeight {
		return ow, oh, false
	}

	ratioX := float64(sopt.MaxWidth) / float64(ow)
	ratioY := float64(sopt.MaxHeight) / float64(oh)
	ratio := ratioX
	if ratioY < ratio {
		ratio = ratioY
	}

	nw := uint(float64(ow) * ratio)
	nh := uint(float64(oh) * ratio)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh, true
}

// ScaleImage shrinks img to fit sopt, keeping aspect ratio. The source
// is returned untouched when it already fits.
func ScaleImage(img image.Image, sopt ScaleOption) image.Image {
	ob := img.Bounds()
	nw, nh, ok := sopt.calc(uint(ob.Dx()), uint(ob.Dy()))
	if !ok {
		return img
	}
	return resize.Resize(nw, nh, img, resize.Lanczos3)
}

// ToOpaque flattens alpha-carrying or paletted sources onto a plain
// RGB surface. JPEG has no alpha channel.
func ToOpaque(img image.Image) image.Image {
	switch img.(type) {
	case *image.YCbCr, *image.Gray, *image.CMYK:
		return img
	}
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Over)
	return dst
}
