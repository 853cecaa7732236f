package twinpane

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/datatug/twinpane/pkg/files"
	"github.com/datatug/twinpane/pkg/fsutils"
	"github.com/datatug/twinpane/pkg/session"
	"github.com/rivo/tview"
)

func (ui *UI) updateStatus() {
	if ui.sess == nil {
		return
	}
	ui.status.SetText(statusText(ui.sess))
}

func statusText(sess *session.Session) string {
	var parts []string
	if entry, ok := sess.ActivePane().Selected(); ok {
		parts = append(parts, describeEntry(entry))
	}
	if clip, ok := sess.Clipboard(); ok {
		parts = append(parts, "[yellow]clipboard:[-] "+tview.Escape(clip))
	}
	return strings.Join(parts, "  ")
}

func describeEntry(entry files.Entry) string {
	name := tview.Escape(entry.Name)
	if entry.IsDir() {
		return fmt.Sprintf("[::b]%s[::-] dir", name)
	}
	text := fmt.Sprintf("[::b]%s[::-] %s", name, fsutils.FormatSize(entry.Size))
	if lang := languageOf(entry.Name); lang != "" {
		text += " " + lang
	}
	return text
}

// languageOf names the syntax chroma associates with the file name, if any.
func languageOf(name string) string {
	lexer := lexers.Match(name)
	if lexer == nil {
		return ""
	}
	return lexer.Config().Name
}
