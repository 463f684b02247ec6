package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFallbackTitle(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/music/01 - Intro.mp3", "01 - Intro"},
		{"track.flac", "track"},
		{"/music/noext", "noext"},
		{"/music/.hidden.ogg", ".hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, FallbackTitle(tt.path))
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.mp3"))

	require.Error(t, err)
}

func TestRead_UntaggedFileFallsBackToFilename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Morning Song.mp3")
	require.NoError(t, os.WriteFile(path, []byte("no tags here"), 0o644))

	info, err := Read(path)

	require.NoError(t, err)
	require.Equal(t, "Morning Song", info.Title)
	require.Empty(t, info.Artist)
}
