// Package session holds the state of a two-pane browsing session and turns
// user requests into directory operations. It knows nothing about widgets.
//
// A Session is used from a single goroutine and does no locking.
package session

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/datatug/twinpane/pkg/files"
	"github.com/rs/zerolog"
)

// DirOps is the subset of dirops.Ops a session drives.
type DirOps interface {
	ListEntries(ctx context.Context, dirPath string) ([]files.Entry, error)
	ParentOf(p string) (string, bool)
	Lookup(ctx context.Context, p string) (files.Entry, error)
	CopyFile(ctx context.Context, name, sourceDir, destDir string) error
	CopyDirectoryTree(ctx context.Context, sourcePath, destParentPath string) error
	Delete(ctx context.Context, entry files.Entry) error
	OpenWithDefaultHandler(ctx context.Context, p string) error
}

type Session struct {
	ops      DirOps
	notifier Notifier
	log      zerolog.Logger

	panes  [2]*Pane
	active Side

	// clipboard is empty when hasClip is false.
	clipboard string
	hasClip   bool
}

type Option func(s *Session)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

// New lists startDir into both panes.
func New(ctx context.Context, ops DirOps, startDir string, notifier Notifier, options ...Option) (*Session, error) {
	s := &Session{
		ops:      ops,
		notifier: notifier,
		log:      zerolog.Nop(),
		panes:    [2]*Pane{{}, {}},
	}
	for _, option := range options {
		option(s)
	}
	startDir = filepath.Clean(startDir)
	entries, err := ops.ListEntries(ctx, startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list start directory: %w", err)
	}
	for _, pane := range s.panes {
		pane.show(startDir, append([]files.Entry(nil), entries...))
	}
	return s, nil
}

func (s *Session) Pane(side Side) *Pane {
	return s.panes[side]
}

func (s *Session) Active() Side {
	return s.active
}

func (s *Session) ActivePane() *Pane {
	return s.panes[s.active]
}

// Focus makes side the pane that subsequent requests act on.
func (s *Session) Focus(side Side) {
	s.active = side
}

func (s *Session) Clipboard() (string, bool) {
	return s.clipboard, s.hasClip
}

func (s *Session) ClearClipboard() {
	s.clipboard, s.hasClip = "", false
}

func (s *Session) SelectEntry(entry files.Entry) {
	selected := entry
	s.ActivePane().selected = &selected
}

func (s *Session) CanActOnSelection() bool {
	_, ok := s.ActivePane().Selected()
	return ok
}

func (s *Session) CanPaste() bool {
	selected, ok := s.ActivePane().Selected()
	return ok && s.hasClip && selected.IsDir()
}

func (s *Session) CanNavigateUp() bool {
	_, ok := s.ops.ParentOf(s.ActivePane().Location())
	return ok
}

// ActivateEntry navigates into a directory or opens a file.
func (s *Session) ActivateEntry(ctx context.Context, entry files.Entry) {
	if entry.IsDir() {
		s.navigate(ctx, s.ActivePane(), entry.Path)
		return
	}
	if err := s.ops.OpenWithDefaultHandler(ctx, entry.Path); err != nil {
		s.fail("open", err)
	}
}

func (s *Session) RequestNavigateUp(ctx context.Context) {
	pane := s.ActivePane()
	parent, ok := s.ops.ParentOf(pane.Location())
	if !ok {
		return
	}
	s.navigate(ctx, pane, parent)
}

func (s *Session) RequestCopy(entry files.Entry) {
	s.clipboard, s.hasClip = entry.Path, true
}

// RequestPaste copies the clipboard source into target. The clipboard is consumed
// by any paste into a directory, successful or not.
func (s *Session) RequestPaste(ctx context.Context, target files.Entry) {
	if !s.hasClip || !target.IsDir() {
		return
	}
	source := s.clipboard
	s.ClearClipboard()

	if err := s.paste(ctx, source, target.Path); err != nil {
		s.fail("paste", err)
		return
	}
	s.refresh(ctx, target.Path)
}

func (s *Session) paste(ctx context.Context, source, targetDir string) error {
	entry, err := s.ops.Lookup(ctx, source)
	if err != nil {
		return err
	}
	if entry.IsDir() {
		return s.ops.CopyDirectoryTree(ctx, entry.Path, targetDir)
	}
	return s.ops.CopyFile(ctx, entry.Name, filepath.Dir(entry.Path), targetDir)
}

// RequestDelete deletes entry and drops it from both panes.
func (s *Session) RequestDelete(ctx context.Context, entry files.Entry) {
	if err := s.ops.Delete(ctx, entry); err != nil {
		s.fail("delete", err)
		return
	}
	for _, pane := range s.panes {
		pane.remove(entry.Path)
	}
	if s.hasClip && s.clipboard == entry.Path {
		s.ClearClipboard()
	}
}

func (s *Session) navigate(ctx context.Context, pane *Pane, dir string) {
	entries, err := s.ops.ListEntries(ctx, dir)
	if err != nil {
		s.log.Error().Err(err).Str("dir", dir).Msg("navigation failed")
		s.notifier.Notify(MsgAccessDenied)
		return
	}
	pane.show(dir, entries)
}

// refresh re-lists every pane showing dir.
func (s *Session) refresh(ctx context.Context, dir string) {
	for _, pane := range s.panes {
		if pane.Location() != filepath.Clean(dir) {
			continue
		}
		entries, err := s.ops.ListEntries(ctx, dir)
		if err != nil {
			s.log.Error().Err(err).Str("dir", dir).Msg("refresh failed")
			continue
		}
		pane.show(dir, entries)
	}
}

func (s *Session) fail(action string, err error) {
	s.log.Error().Err(err).Str("action", action).Msg("action failed")
	s.notifier.Notify(err.Error())
}
