// Package filestest provides in-memory directory entries for Store fakes and mocks.
package filestest

import (
	"os"
	"time"
)

var _ os.DirEntry = Entry{}
var _ os.FileInfo = Entry{}

// Entry serves as both the os.DirEntry and the os.FileInfo of a child that exists
// only in memory.
type Entry struct {
	name string
	mode os.FileMode
	size int64
}

func File(name string, size int64) Entry {
	return Entry{name: name, size: size}
}

func Dir(name string) Entry {
	return Entry{name: name, mode: os.ModeDir | 0755}
}

// Symlink is a link whose target is unknown to the entry itself.
func Symlink(name string) Entry {
	return Entry{name: name, mode: os.ModeSymlink | 0777}
}

func (e Entry) Name() string               { return e.name }
func (e Entry) IsDir() bool                { return e.mode.IsDir() }
func (e Entry) Type() os.FileMode          { return e.mode.Type() }
func (e Entry) Info() (os.FileInfo, error) { return e, nil }
func (e Entry) Size() int64                { return e.size }
func (e Entry) Mode() os.FileMode          { return e.mode }
func (e Entry) ModTime() time.Time         { return time.Time{} }
func (e Entry) Sys() any                   { return nil }
