// Package navigator provides a bubbletea component for browsing a hierarchy
// of nodes, generic over the node type so tests can use an in-memory source.
package navigator

// Node is one browsable item.
type Node interface {
	// ID uniquely identifies the node (the absolute path for files).
	ID() string
	// DisplayName is the name shown in the list.
	DisplayName() string
	// IsContainer reports whether the node can be entered.
	IsContainer() bool
	// IsPlayable reports whether the node is an audio leaf.
	IsPlayable() bool
}

// Source supplies nodes to the navigator.
type Source[T Node] interface {
	Root() T
	Children(parent T) ([]T, error)
	Parent(node T) *T
	DisplayPath(node T) string
}
