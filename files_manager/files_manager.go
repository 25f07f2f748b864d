package files_manager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	heifExts  = []string{".heif", ".heic"}
	imageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}
)

// HasExtension reports whether path ends with any one of exts
// (case-insensitive).
func HasExtension(path string, exts ...string) bool {
	lower := strings.ToLower(path)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func IsPDF(path string) bool {
	return HasExtension(path, ".pdf")
}

func IsHEIF(path string) bool {
	return HasExtension(path, heifExts...)
}

func IsImage(path string) bool {
	return IsHEIF(path) || HasExtension(path, imageExts...)
}

// CheckInputs verifies that at least one input was given and that every
// input path points at a regular file. An empty list is a usage error,
// not a zero-page success.
func CheckInputs(paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("empty image file list")
	}
	for _, p := range paths {
		stat, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("input file %s: %v", p, err)
		}
		if stat.IsDir() {
			return fmt.Errorf("input %s is a directory, expected a file", p)
		}
	}
	return nil
}

// CheckOutputDir verifies that the directory the output file would land in
// exists. The file itself is created later by the writer.
func CheckOutputDir(path string) error {
	dir := filepath.Dir(path)
	stat, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("output directory %s: %v", dir, err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("output parent %s is not a directory", dir)
	}
	return nil
}
