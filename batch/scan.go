// Package batch drives folder-level JPEG compression and sequential
// renaming. All work is synchronous; one file is open at a time.
package batch

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/go-imsto/picbatch/base"
)

// Scan returns the names of JPEG candidates directly under dir, sorted
// ascending. Matching is by extension, case-insensitive, not recursive.
// Symlinks are followed; one pointing at a regular file counts.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, ent := range entries {
		if !ent.Type().IsRegular() {
			if ent.Type()&os.ModeSymlink == 0 {
				continue
			}
			fi, err := os.Stat(filepath.Join(dir, ent.Name()))
			if err != nil || !fi.Mode().IsRegular() {
				continue
			}
		}
		if base.IsJPEGName(ent.Name()) {
			names = append(names, ent.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
