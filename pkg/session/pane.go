package session

import (
	"github.com/datatug/twinpane/pkg/files"
)

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) Other() Side {
	if s == Left {
		return Right
	}
	return Left
}

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Pane is one side of the browser: a current location and its listing.
type Pane struct {
	location string
	entries  []files.Entry
	selected *files.Entry
}

func (p *Pane) Location() string {
	return p.location
}

// Entries returns a copy of the current listing.
func (p *Pane) Entries() []files.Entry {
	entries := make([]files.Entry, len(p.entries))
	copy(entries, p.entries)
	return entries
}

// Selected returns the selected entry, if any.
func (p *Pane) Selected() (files.Entry, bool) {
	if p.selected == nil {
		return files.Entry{}, false
	}
	return *p.selected, true
}

func (p *Pane) show(location string, entries []files.Entry) {
	p.location = location
	p.entries = entries
	p.selected = nil
}

func (p *Pane) remove(path string) bool {
	for i, entry := range p.entries {
		if entry.Path == path {
			p.entries = append(p.entries[:i:i], p.entries[i+1:]...)
			if p.selected != nil && p.selected.Path == path {
				p.selected = nil
			}
			return true
		}
	}
	return false
}
