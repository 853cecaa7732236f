// Package dirops implements recursive filesystem operations on top of a files.Store.
//
// Copy and delete are not transactional: the first failure aborts the remaining work
// and whatever was already copied or deleted stays that way.
package dirops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/datatug/twinpane/pkg/files"
	"github.com/rs/zerolog"
)

type Ops struct {
	store    files.Store
	launcher Launcher
	log      zerolog.Logger
}

type Option func(o *Ops)

func WithLogger(log zerolog.Logger) Option {
	return func(o *Ops) {
		o.log = log
	}
}

func WithLauncher(l Launcher) Option {
	return func(o *Ops) {
		o.launcher = l
	}
}

func New(store files.Store, options ...Option) *Ops {
	o := &Ops{
		store:    store,
		launcher: ShellLauncher{},
		log:      zerolog.Nop(),
	}
	for _, option := range options {
		option(o)
	}
	return o
}

// ListEntries returns the direct children of dirPath, directories first, then files.
// Within each group the store's enumeration order is kept. A symbolic link is grouped
// by what it points to.
func (o *Ops) ListEntries(ctx context.Context, dirPath string) ([]files.Entry, error) {
	children, err := o.store.ReadDir(ctx, dirPath)
	if err != nil {
		return nil, newOpError("list", dirPath, err)
	}
	dirs := make([]files.Entry, 0, len(children))
	var regular []files.Entry
	for _, child := range children {
		entry := files.NewEntry(dirPath, child)
		if entry.Link {
			o.resolveLink(ctx, &entry)
		}
		if entry.IsDir() {
			dirs = append(dirs, entry)
		} else {
			regular = append(regular, entry)
		}
	}
	return append(dirs, regular...), nil
}

// resolveLink describes a symbolic link by its target. Dangling links stay files.
func (o *Ops) resolveLink(ctx context.Context, entry *files.Entry) {
	info, err := o.store.Stat(ctx, entry.Path)
	if err != nil {
		return
	}
	if info.IsDir() {
		entry.Kind = files.KindDir
		entry.Size = 0
		return
	}
	entry.Size = info.Size()
}

func (o *Ops) ParentOf(p string) (string, bool) {
	return files.ParentOf(p)
}

// Lookup stats p and describes it as an Entry, following symbolic links.
func (o *Ops) Lookup(ctx context.Context, p string) (files.Entry, error) {
	p = filepath.Clean(p)
	info, err := o.store.Stat(ctx, p)
	if err != nil {
		return files.Entry{}, newOpError("stat", p, err)
	}
	entry := files.Entry{
		Name: filepath.Base(p),
		Path: p,
		Size: info.Size(),
	}
	if info.IsDir() {
		entry.Kind = files.KindDir
		entry.Size = 0
	}
	return entry, nil
}

// CopyFile copies sourceDir/name over destDir/name.
func (o *Ops) CopyFile(ctx context.Context, name, sourceDir, destDir string) error {
	src := filepath.Join(sourceDir, name)
	dst := filepath.Join(destDir, name)
	if samePath(src, dst) {
		return &OpError{Op: "copy", Path: src, Kind: ErrIO, Err: fmt.Errorf("source and destination are the same file")}
	}
	o.log.Debug().Str("src", src).Str("dst", dst).Msg("copy file")
	if err := o.store.CopyFile(ctx, src, dst); err != nil {
		return newOpError("copy", src, err)
	}
	return nil
}

// CopyDirectoryTree copies sourcePath into destParentPath/<base of sourcePath>.
// Each directory is created before its contents are copied.
func (o *Ops) CopyDirectoryTree(ctx context.Context, sourcePath, destParentPath string) error {
	sourcePath = filepath.Clean(sourcePath)
	resultPath := filepath.Join(destParentPath, filepath.Base(sourcePath))
	realResult := filepath.Join(realPath(destParentPath), filepath.Base(sourcePath))
	if isWithin(resultPath, sourcePath) || isWithin(realResult, realPath(sourcePath)) {
		return &OpError{Op: "copy", Path: sourcePath, Kind: ErrIO,
			Err: fmt.Errorf("destination %s is inside the source directory", resultPath)}
	}
	return o.copyTree(ctx, sourcePath, resultPath)
}

func (o *Ops) copyTree(ctx context.Context, sourcePath, resultPath string) error {
	entries, err := o.ListEntries(ctx, sourcePath)
	if err != nil {
		return err
	}
	o.log.Debug().Str("src", sourcePath).Str("dst", resultPath).Msg("copy dir")
	if err = o.store.CreateDir(ctx, resultPath); err != nil {
		return newOpError("mkdir", resultPath, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err = o.CopyFile(ctx, entry.Name, sourcePath, resultPath); err != nil {
			return err
		}
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if entry.Link {
			if err = checkLinkTarget(entry.Path, sourcePath, resultPath); err != nil {
				return err
			}
		}
		if err = o.copyTree(ctx, entry.Path, filepath.Join(resultPath, entry.Name)); err != nil {
			return err
		}
	}
	return nil
}

// DeleteTree removes files first, then subdirectories, then dirPath itself.
// Symbolic links are removed without touching what they point to.
func (o *Ops) DeleteTree(ctx context.Context, dirPath string) error {
	info, err := o.store.Lstat(ctx, dirPath)
	if err != nil {
		return newOpError("delete", dirPath, err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return o.deleteOne(ctx, dirPath)
	}
	return o.deleteTree(ctx, dirPath)
}

func (o *Ops) deleteTree(ctx context.Context, dirPath string) error {
	entries, err := o.ListEntries(ctx, dirPath)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err = o.deleteOne(ctx, entry.Path); err != nil {
			return err
		}
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if entry.Link {
			err = o.deleteOne(ctx, entry.Path)
		} else {
			err = o.deleteTree(ctx, entry.Path)
		}
		if err != nil {
			return err
		}
	}
	return o.deleteOne(ctx, dirPath)
}

// Delete removes a single file or link, or a whole tree for a directory entry.
func (o *Ops) Delete(ctx context.Context, entry files.Entry) error {
	if entry.IsDir() && !entry.Link {
		return o.DeleteTree(ctx, entry.Path)
	}
	return o.deleteOne(ctx, entry.Path)
}

func (o *Ops) deleteOne(ctx context.Context, p string) error {
	o.log.Debug().Str("path", p).Msg("delete")
	if err := o.store.Delete(ctx, p); err != nil {
		return newOpError("delete", p, err)
	}
	return nil
}

// OpenWithDefaultHandler starts the OS handler for p and returns without waiting.
func (o *Ops) OpenWithDefaultHandler(ctx context.Context, p string) error {
	if _, err := o.store.Stat(ctx, p); err != nil {
		return newOpError("open", p, err)
	}
	o.log.Debug().Str("path", p).Msg("open")
	if err := o.launcher.Launch(p); err != nil {
		return &OpError{Op: "open", Path: p, Kind: ErrLaunch, Err: err}
	}
	return nil
}

// checkLinkTarget rejects following a directory link whose target contains the
// directory being copied or the copy being built.
func checkLinkTarget(link, sourcePath, resultPath string) error {
	target := realPath(link)
	if isWithin(realPath(sourcePath), target) || isWithin(realPath(resultPath), target) {
		return &OpError{Op: "copy", Path: link, Kind: ErrIO,
			Err: fmt.Errorf("symbolic link to %s would copy the tree into itself", target)}
	}
	return nil
}

var evalSymlinks = filepath.EvalSymlinks

// realPath resolves symbolic links in p. Paths that cannot be resolved, such as
// ones that do not exist yet, are returned cleaned.
func realPath(p string) string {
	if resolved, err := evalSymlinks(p); err == nil {
		return resolved
	}
	return filepath.Clean(p)
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

// isWithin reports whether p equals dir or lies below it.
func isWithin(p, dir string) bool {
	p, dir = filepath.Clean(p), filepath.Clean(dir)
	if p == dir {
		return true
	}
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
