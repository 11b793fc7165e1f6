package utils

import (
	"os"
)

// SaveFile ...
func SaveFile(filename string, data []byte) error {
	return os.WriteFile(filename, data, os.FileMode(0644))
}

// IsDir ...
func IsDir(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsDir()
}

// FileSize return file size, return -1 if error
func FileSize(fpath string) int64 {
	if fi, err := os.Stat(fpath); err == nil {
		return fi.Size()
	}
	return -1
}
