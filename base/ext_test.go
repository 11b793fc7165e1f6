package base

import (
	"testing"
)

func TestParseExt(t *testing.T) {
	cases := map[string]ImagExt{
		"a.jpg":   EtJPEG,
		"a.JPEG":  EtJPEG,
		"b.Jpg":   EtJPEG,
		"c.png":   EtPNG,
		"d.gif":   EtGIF,
		"e.txt":   EtNone,
		"no-dot":  EtNone,
		"x.jpeg":  EtJPEG,
		"y.PnG":   EtPNG,
		"z.tiff":  EtNone,
		".hidden": EtNone,
	}
	for name, want := range cases {
		if got := ParseExt(name); got != want {
			t.Fatalf("ParseExt(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestLowerExt(t *testing.T) {
	if got := LowerExt("photo.JPEG"); got != ".jpeg" {
		t.Fatalf("unexpected ext %q", got)
	}
	if got := LowerExt("photo.Jpg"); got != ".jpg" {
		t.Fatalf("unexpected ext %q", got)
	}
	if got := LowerExt("photo"); got != "" {
		t.Fatalf("unexpected ext %q", got)
	}
	if !IsJPEGName("DSC0001.JPG") {
		t.Fatal("DSC0001.JPG should match")
	}
	if IsJPEGName("notes.txt") {
		t.Fatal("notes.txt should not match")
	}
}
