package files

import (
	"context"
	"os"
)

//go:generate mockgen -destination=store_mock.go -package=files . Store

// Store is a filesystem backend. Paths are absolute and use the host separator.
type Store interface {
	RootTitle() string
	// ReadDir returns the direct children of name in enumeration order.
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	// Stat follows symbolic links, Lstat does not.
	Stat(ctx context.Context, name string) (os.FileInfo, error)
	Lstat(ctx context.Context, name string) (os.FileInfo, error)
	CreateDir(ctx context.Context, path string) error
	// CopyFile copies src to dst, truncating dst when it already exists.
	CopyFile(ctx context.Context, src, dst string) error
	// Delete removes a file or an empty directory.
	Delete(ctx context.Context, path string) error
}
