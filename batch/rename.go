package batch

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-imsto/picbatch/base"
	"github.com/go-imsto/picbatch/log"
)

// RenameOp is one planned rename inside a folder.
type RenameOp struct {
	Source, Target string
}

// RenamePlan maps a folder's JPEG candidates, in sorted-name order, to
// prefix + zero-padded sequence + lowercased extension. Padding width
// is the decimal digit count of the candidate total.
type RenamePlan struct {
	Dir    string
	Prefix string
	Ops    []RenameOp
}

// BuildRenamePlan scans dir and computes the target names. A missing
// dir surfaces as the scan error.
func BuildRenamePlan(dir, prefix string) (*RenamePlan, error) {
	names, err := Scan(dir)
	if err != nil {
		return nil, err
	}

	plan := &RenamePlan{Dir: dir, Prefix: prefix}
	width := len(strconv.Itoa(len(names)))
	for i, name := range names {
		plan.Ops = append(plan.Ops, RenameOp{
			Source: name,
			Target: fmt.Sprintf("%s%0*d%s", prefix, width, i+1, base.LowerExt(name)),
		})
	}
	return plan, nil
}

// Apply executes the plan, best effort. A source already carrying its
// target name is skipped silently; an occupied target is skipped with
// a warning and both files stay put. Returns the number of files
// actually renamed; a filesystem failure aborts the batch.
func (p *RenamePlan) Apply(out io.Writer) (int, error) {
	if out == nil {
		out = io.Discard
	}

	var done int
	for _, op := range p.Ops {
		if op.Source == op.Target {
			continue
		}
		src := filepath.Join(p.Dir, op.Source)
		dst := filepath.Join(p.Dir, op.Target)

		if _, err := os.Lstat(dst); err == nil {
			fmt.Fprintf(out, "skip: target exists %s\n", op.Target)
			log.Warnw("rename target exists", "dir", p.Dir, "target", op.Target)
			continue
		}

		if err := os.Rename(src, dst); err != nil {
			return done, err
		}
		fmt.Fprintf(out, "renamed: %s -> %s\n", op.Source, op.Target)
		done++
	}
	return done, nil
}
