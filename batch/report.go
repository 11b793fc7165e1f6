package batch

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// Totals accumulates byte sizes over one folder or a whole run.
type Totals struct {
	OriginalSize   int64
	CompressedSize int64
	Files          int
}

// Add folds o into t.
func (t *Totals) Add(o Totals) {
	t.OriginalSize += o.OriginalSize
	t.CompressedSize += o.CompressedSize
	t.Files += o.Files
}

// Saved ...
func (t Totals) Saved() int64 {
	return t.OriginalSize - t.CompressedSize
}

// Reduction returns the percent saved going from orig to comp.
func Reduction(orig, comp int64) float64 {
	if orig <= 0 {
		return 0
	}
	return (1 - float64(comp)/float64(orig)) * 100
}

// FormatSize ...
func FormatSize(n int64) string {
	if n < 0 {
		return fmt.Sprintf("%d B", n)
	}
	return humanize.Bytes(uint64(n))
}

// Summary writes a folder or run level report.
func (t Totals) Summary(w io.Writer, label string) {
	fmt.Fprintf(w, "\n%s summary:\n", label)
	fmt.Fprintf(w, "  files:      %d\n", t.Files)
	fmt.Fprintf(w, "  original:   %s\n", FormatSize(t.OriginalSize))
	fmt.Fprintf(w, "  compressed: %s\n", FormatSize(t.CompressedSize))
	fmt.Fprintf(w, "  saved:      %s (%.1f%%)\n",
		FormatSize(t.Saved()), Reduction(t.OriginalSize, t.CompressedSize))
}
