package osfile

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/datatug/twinpane/pkg/files"
	cp "github.com/otiai10/copy"
)

var osOpen = os.Open
var osStat = os.Stat
var osLstat = os.Lstat
var osHostname = os.Hostname
var osMkdirAll = os.MkdirAll
var osRemove = os.Remove
var copyCopy = cp.Copy

var _ files.Store = (*Store)(nil)

// Store reads and writes the local filesystem.
type Store struct {
	title string
	root  string
}

func (s Store) RootTitle() string {
	return strings.TrimSuffix(s.title, ".local")
}

// ReadDir lists name without sorting, unlike os.ReadDir.
func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := osOpen(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return f.ReadDir(-1)
}

func (s Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osStat(name)
}

func (s Store) Lstat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osLstat(name)
}

func (s Store) CreateDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return osMkdirAll(path, 0755)
}

func (s Store) CopyFile(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := osStat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return syscall.EISDIR
	}
	return copyCopy(src, dst, cp.Options{
		OnSymlink: func(string) cp.SymlinkAction { return cp.Deep },
	})
}

func (s Store) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return osRemove(path)
}

func NewStore(root string) *Store {
	if root == "" {
		_, _ = fmt.Fprintf(os.Stderr, "osfile store root is empty, defaulting to /\n")
		root = "/"
	}
	store := Store{root: root}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	return &store
}
