// Package tags reads track metadata for display in the player bar.
package tags

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Info is the displayable metadata of one track.
type Info struct {
	Title  string
	Artist string
	Album  string
}

// Read extracts metadata from the file at path. Files without usable tags
// fall back to the file name as the title; only unreadable files error.
func Read(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return Info{Title: FallbackTitle(path)}, nil
	}

	info := Info{
		Title:  strings.TrimSpace(m.Title()),
		Artist: strings.TrimSpace(m.Artist()),
		Album:  strings.TrimSpace(m.Album()),
	}
	if info.Title == "" {
		info.Title = FallbackTitle(path)
	}
	return info, nil
}

// FallbackTitle derives a title from the file name, without the extension.
func FallbackTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
