package files

import (
	"os"
	"path/filepath"
)

// Kind tells a file from a directory.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Entry is a filesystem node identified by its absolute path.
// Link marks a symbolic link; Kind then describes the link target.
type Entry struct {
	Name string
	Path string
	Kind Kind
	Size int64
	Link bool
}

func (e Entry) IsDir() bool {
	return e.Kind == KindDir
}

// ParentPath returns the directory holding the entry, or false at a filesystem root.
func (e Entry) ParentPath() (string, bool) {
	return ParentOf(e.Path)
}

func (e Entry) String() string {
	return e.Path
}

// ParentOf returns the parent of p. It reports false for an empty path and for roots
// such as "/" or `C:\`, where filepath.Dir returns its input unchanged.
func ParentOf(p string) (string, bool) {
	if p == "" {
		return "", false
	}
	p = filepath.Clean(p)
	parent := filepath.Dir(p)
	if parent == p {
		return "", false
	}
	return parent, true
}

// NewEntry builds an Entry for a child of dir. Symbolic links are not followed here:
// they come back as files with Link set, and the caller resolves their kind.
func NewEntry(dir string, child os.DirEntry) Entry {
	name := child.Name()
	entry := Entry{
		Name: name,
		Path: filepath.Join(dir, name),
		Link: child.Type()&os.ModeSymlink != 0,
	}
	if child.IsDir() {
		entry.Kind = KindDir
		return entry
	}
	if info, err := child.Info(); err == nil && info != nil {
		entry.Size = info.Size()
	}
	return entry
}
