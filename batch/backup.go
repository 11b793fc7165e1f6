package batch

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-imsto/picbatch/log"
)

// BackupFolder copies dir's JPEG candidates into a sibling
// "<dir>_backup" folder before a destructive pass. An existing backup
// folder is left untouched and counts as done.
func BackupFolder(dir string) (int, error) {
	backup := dir + "_backup"
	if _, err := os.Stat(backup); err == nil {
		log.Infow("backup folder already present", "dir", backup)
		return 0, nil
	}

	names, err := Scan(dir)
	if err != nil {
		return 0, err
	}
	if err = os.MkdirAll(backup, 0755); err != nil {
		return 0, err
	}

	var copied int
	for _, name := range names {
		if err = copyFile(filepath.Join(dir, name), filepath.Join(backup, name)); err != nil {
			return copied, err
		}
		copied++
	}
	log.Infow("backup done", "dir", backup, "files", copied)
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
