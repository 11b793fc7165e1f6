package image

import (
	"image"
	"image/color"
	"testing"
)

func TestScaleCalc(t *testing.T) {
	cases := []struct {
		ow, oh   uint
		sopt     ScaleOption
		nw, nh   uint
		resized  bool
	}{
		{1200, 800, ScaleOption{600, 600}, 600, 400, true},
		{800, 600, ScaleOption{600, 600}, 600, 450, true},
		{300, 300, ScaleOption{600, 600}, 300, 300, false},
		{600, 600, ScaleOption{600, 600}, 600, 600, false},
		{1600, 900, ScaleOption{400, 400}, 400, 225, true},
		{150, 2400, ScaleOption{600, 600}, 37, 600, true},
		{1200, 800, ScaleOption{}, 1200, 800, false},
	}

	for i, c := range cases {
		nw, nh, resized := c.sopt.calc(c.ow, c.oh)
		if nw != c.nw || nh != c.nh || resized != c.resized {
			t.Fatalf("%d: calc(%dx%d, max %dx%d) = %dx%d %v, want %dx%d %v",
				i, c.ow, c.oh, c.sopt.MaxWidth, c.sopt.MaxHeight, nw, nh, resized, c.nw, c.nh, c.resized)
		}
	}
}

func TestScaleKeepsAspectRatio(t *testing.T) {
	sopt := ScaleOption{MaxWidth: 500, MaxHeight: 500}
	dims := [][2]uint{{1023, 767}, {2048, 1365}, {777, 1234}, {3000, 2000}}

	for _, d := range dims {
		nw, nh, resized := sopt.calc(d[0], d[1])
		if !resized {
			t.Fatalf("%dx%d should resize", d[0], d[1])
		}
		// one pixel of rounding slack per dimension
		orig := float64(d[0]) / float64(d[1])
		lo := float64(nw) / float64(nh+1)
		hi := float64(nw+1) / float64(nh)
		if orig < lo || orig > hi {
			t.Fatalf("aspect drift: %dx%d -> %dx%d", d[0], d[1], nw, nh)
		}
	}
}

func TestScaleImageNoop(t *testing.T) {
	m := image.NewYCbCr(image.Rect(0, 0, 320, 240), image.YCbCrSubsampleRatio420)
	out := ScaleImage(m, ScaleOption{MaxWidth: 600, MaxHeight: 600})
	if out != image.Image(m) {
		t.Fatal("within-bounds image must pass through untouched")
	}
}

func TestScaleImageShrink(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 1200, 800))
	out := ScaleImage(m, ScaleOption{MaxWidth: 600, MaxHeight: 600})
	b := out.Bounds()
	if b.Dx() != 600 || b.Dy() != 400 {
		t.Fatalf("got %dx%d, want 600x400", b.Dx(), b.Dy())
	}
}

func TestToOpaque(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: 255, A: 0})
		}
	}
	out := ToOpaque(src)
	if _, ok := out.(*image.RGBA); !ok {
		t.Fatalf("expected RGBA surface, got %T", out)
	}
	_, _, _, a := out.At(4, 4).RGBA()
	if a != 0xffff {
		t.Fatalf("flattened pixel still translucent: alpha %d", a)
	}

	ycc := image.NewYCbCr(image.Rect(0, 0, 8, 8), image.YCbCrSubsampleRatio420)
	if out := ToOpaque(ycc); out != image.Image(ycc) {
		t.Fatal("ycbcr source must pass through")
	}
}
