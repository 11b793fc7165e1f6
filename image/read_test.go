package image

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func noisyImage(w, h int) *image.RGBA {
	rnd := rand.New(rand.NewSource(42))
	m := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetRGBA(x, y, color.RGBA{
				R: uint8(rnd.Intn(256)),
				G: uint8(rnd.Intn(256)),
				B: uint8(rnd.Intn(256)),
				A: 255,
			})
		}
	}
	return m
}

func writeJPEG(t *testing.T, path string, w, h int, q Quality) {
	t.Helper()
	var buf bytes.Buffer
	if err := EncodeJPEG(&buf, noisyImage(w, h), WriteOption{Quality: q}); err != nil {
		t.Fatalf("encode: %s", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write: %s", err)
	}
}

func TestProbeFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "sample.jpg")
	writeJPEG(t, p, 320, 240, 80)

	ia, err := ProbeFile(p)
	if err != nil {
		t.Fatalf("probe: %s", err)
	}
	if ia.Width != 320 || ia.Height != 240 {
		t.Fatalf("got %dx%d, want 320x240", ia.Width, ia.Height)
	}
	if ia.Size == 0 {
		t.Fatal("size not set")
	}
	if ia.Mime != "image/jpeg" {
		t.Fatalf("unexpected mime %q", ia.Mime)
	}
	t.Logf("probed: %s", ia)
}

func TestProbeFileRejectsNonJPEG(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "fake.jpg")
	if err := os.WriteFile(p, []byte("plain text wearing a jpg name"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ProbeFile(p); err != ErrorFormat {
		t.Fatalf("want ErrorFormat, got %v", err)
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "sample.jpg")
	writeJPEG(t, p, 100, 60, 75)

	m, ia, err := DecodeFile(p)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}
	b := m.Bounds()
	if b.Dx() != 100 || b.Dy() != 60 {
		t.Fatalf("pixel bounds %dx%d", b.Dx(), b.Dy())
	}
	if ia.Width != 100 || ia.Height != 60 {
		t.Fatalf("attr %dx%d", ia.Width, ia.Height)
	}
}

func TestEncodeQualityOrdering(t *testing.T) {
	m := noisyImage(64, 64)
	var hi, lo bytes.Buffer
	if err := EncodeJPEG(&hi, m, WriteOption{Quality: 90}); err != nil {
		t.Fatal(err)
	}
	if err := EncodeJPEG(&lo, m, WriteOption{Quality: 30}); err != nil {
		t.Fatal(err)
	}
	if lo.Len() >= hi.Len() {
		t.Fatalf("q30 (%d bytes) should be smaller than q90 (%d bytes)", lo.Len(), hi.Len())
	}
}
