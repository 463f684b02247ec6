package navigator

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/llehouerou/pitrio/internal/player"
)

// FileNode represents a file or directory on disk.
type FileNode struct {
	path  string
	name  string
	isDir bool
	size  int64
}

func (n FileNode) ID() string { return n.path }

func (n FileNode) DisplayName() string { return n.name }

func (n FileNode) IsContainer() bool { return n.isDir }

func (n FileNode) IsPlayable() bool { return !n.isDir && player.IsMusicFile(n.path) }

// Size returns the file size in bytes, 0 for directories.
func (n FileNode) Size() int64 { return n.size }

// FileSource navigates the filesystem, listing directories and music files.
type FileSource struct {
	root       string
	showHidden bool
}

func NewFileSource(startPath string, showHidden bool) (*FileSource, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return nil, err
	}
	return &FileSource{root: absPath, showHidden: showHidden}, nil
}

func (s *FileSource) Root() FileNode {
	info, err := os.Stat(s.root)
	if err != nil {
		return FileNode{path: s.root, name: filepath.Base(s.root), isDir: true}
	}
	return FileNode{path: s.root, name: info.Name(), isDir: info.IsDir()}
}

func (s *FileSource) Children(parent FileNode) ([]FileNode, error) {
	if !parent.isDir {
		return nil, nil
	}

	entries, err := os.ReadDir(parent.path)
	if err != nil {
		return nil, err
	}

	nodes := make([]FileNode, 0, len(entries))
	for _, e := range entries {
		name := e.Name()

		if !s.showHidden && strings.HasPrefix(name, ".") {
			continue
		}

		// Only directories and music files show up in the list.
		path := filepath.Join(parent.path, name)
		if !e.IsDir() && !player.IsMusicFile(path) {
			continue
		}

		var size int64
		if !e.IsDir() {
			if info, err := e.Info(); err == nil {
				size = info.Size()
			}
		}

		nodes = append(nodes, FileNode{
			path:  path,
			name:  name,
			isDir: e.IsDir(),
			size:  size,
		})
	}

	// Folders first, then files, both case-insensitively.
	sort.Slice(nodes, func(i, j int) bool {
		if nodes[i].isDir != nodes[j].isDir {
			return nodes[i].isDir
		}
		return strings.ToLower(nodes[i].name) < strings.ToLower(nodes[j].name)
	})

	return nodes, nil
}

func (s *FileSource) Parent(node FileNode) *FileNode {
	parentPath := filepath.Dir(node.path)
	if parentPath == node.path {
		return nil // at filesystem root
	}

	return &FileNode{
		path:  parentPath,
		name:  filepath.Base(parentPath),
		isDir: true,
	}
}

func (s *FileSource) DisplayPath(node FileNode) string {
	return node.path
}

// Verify FileSource implements Source at compile time.
var _ Source[FileNode] = (*FileSource)(nil)
