// Package model defines the data structures shared by the goozejs adapters,
// the sandbox orchestrator and the CLI.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Dir returns the parent directory of the path.
func (p Path) Dir() Path {
	return Path(filepath.Dir(string(p)))
}

// File is an in-memory source file: a filesystem-style path plus its content.
// Content is never modified after construction.
type File struct {
	Path    Path
	content []byte
}

// NewFile constructs a File, copying content so later writes to the caller's
// slice are not observed.
func NewFile(path Path, content []byte) File {
	c := make([]byte, len(content))
	copy(c, content)

	return File{Path: path, content: c}
}

// Name returns the file path as a string.
func (f File) Name() string {
	return string(f.Path)
}

// Content returns a copy of the file bytes.
func (f File) Content() []byte {
	c := make([]byte, len(f.content))
	copy(c, f.content)

	return c
}

// TextContent returns the file content decoded as text.
func (f File) TextContent() string {
	return string(f.content)
}

// Len returns the content size in bytes.
func (f File) Len() int {
	return len(f.content)
}
