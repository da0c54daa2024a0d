package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// imageExtensions lists the extensions picked up by a directory scan.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// IsImageFile reports whether name has a jpg, jpeg or png extension,
// ignoring case.
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// Extensions returns the extensions recognised by IsImageFile.
func Extensions() []string {
	return []string{".jpg", ".jpeg", ".png"}
}

// ScanDir lists dir (non-recursively) and returns a path source for every
// regular image file, in the order os.ReadDir yields them (by filename).
// Returns an empty slice, not an error, when nothing matches.
func ScanDir(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	sources := make([]Source, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !IsImageFile(e.Name()) {
			continue
		}
		sources = append(sources, FromPath(filepath.Join(dir, e.Name())))
	}
	return sources, nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
