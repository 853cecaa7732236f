package twinpane

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/datatug/twinpane/pkg/dirops"
	"github.com/datatug/twinpane/pkg/files"
	"github.com/datatug/twinpane/pkg/files/osfile"
	"github.com/datatug/twinpane/pkg/session"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testUI struct {
	*UI
	root     string
	launched []string
}

func newTestUI(t *testing.T) *testUI {
	t.Helper()
	tu := &testUI{root: t.TempDir()}
	writeFile(t, filepath.Join(tu.root, "docs", "guide.md"), "# guide")
	writeFile(t, filepath.Join(tu.root, "main.go"), "package main")
	writeFile(t, filepath.Join(tu.root, "target", "keep.txt"), "keep")

	ops := dirops.New(osfile.NewStore(tu.root), dirops.WithLauncher(dirops.LauncherFunc(func(p string) error {
		tu.launched = append(tu.launched, p)
		return nil
	})))
	tu.UI = New(tview.NewApplication())
	sess, err := session.New(context.Background(), ops, tu.root, tu.UI)
	require.NoError(t, err)
	tu.Attach(sess)
	return tu
}

func writeFile(t *testing.T, p, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func (tu *testUI) moveTo(t *testing.T, side session.Side, name string) *tview.TreeNode {
	t.Helper()
	p := tu.panes[side]
	for _, node := range p.root.GetChildren() {
		if entry, ok := nodeEntry(node); ok && entry.Name == name {
			p.SetCurrentNode(node)
			p.changed(node)
			return node
		}
	}
	t.Fatalf("node %q not found in %s pane", name, side)
	return nil
}

func nodeNames(p *paneView) []string {
	var names []string
	for _, node := range p.root.GetChildren() {
		entry, _ := nodeEntry(node)
		names = append(names, entry.Name)
	}
	return names
}

func TestSetupApp_RendersBothPanes(t *testing.T) {
	tu := newTestUI(t)
	for _, side := range []session.Side{session.Left, session.Right} {
		p := tu.panes[side]
		assert.Equal(t, tu.root, p.root.GetText())
		assert.Equal(t, []string{"docs", "target", "main.go"}, sortDirsFirst(nodeNames(p)))
	}
	assert.Equal(t, session.Left, tu.sess.Active())
}

// sortDirsFirst keeps the directory group ahead of files but ignores OS order inside groups.
func sortDirsFirst(names []string) []string {
	var dirs, others []string
	for _, name := range names {
		if filepath.Ext(name) == "" {
			dirs = append(dirs, name)
		} else {
			others = append(others, name)
		}
	}
	if len(dirs) == 2 && dirs[0] > dirs[1] {
		dirs[0], dirs[1] = dirs[1], dirs[0]
	}
	return append(dirs, others...)
}

func TestPane_EnterNavigatesAndRootGoesUp(t *testing.T) {
	tu := newTestUI(t)
	p := tu.panes[session.Left]

	node := tu.moveTo(t, session.Left, "docs")
	p.activated(node)
	assert.Equal(t, filepath.Join(tu.root, "docs"), tu.sess.Pane(session.Left).Location())
	assert.Equal(t, []string{"guide.md"}, nodeNames(p))
	assert.Equal(t, tu.root, tu.sess.Pane(session.Right).Location(), "other pane stays put")

	p.activated(p.root)
	assert.Equal(t, tu.root, tu.sess.Pane(session.Left).Location())
}

func TestPane_EnterOnFileOpens(t *testing.T) {
	tu := newTestUI(t)
	node := tu.moveTo(t, session.Left, "main.go")
	tu.panes[session.Left].activated(node)
	assert.Equal(t, []string{filepath.Join(tu.root, "main.go")}, tu.launched)
}

func TestPane_CopyPasteDelete(t *testing.T) {
	tu := newTestUI(t)
	left, right := tu.panes[session.Left], tu.panes[session.Right]

	tu.moveTo(t, session.Left, "main.go")
	assert.Nil(t, left.inputCapture(runeKey('c')))
	clip, ok := tu.sess.Clipboard()
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(tu.root, "main.go"), clip)
	assert.Contains(t, tu.status.GetText(false), "clipboard:")

	assert.Nil(t, left.inputCapture(key(tcell.KeyTab)))
	assert.Equal(t, session.Right, tu.sess.Active())
	right.activated(tu.moveTo(t, session.Right, "target"))
	right.SetCurrentNode(right.root)
	assert.Nil(t, right.inputCapture(runeKey('v')))

	data, err := os.ReadFile(filepath.Join(tu.root, "target", "main.go"))
	require.NoError(t, err)
	assert.Equal(t, "package main", string(data))
	assert.Contains(t, nodeNames(right), "main.go")
	_, ok = tu.sess.Clipboard()
	assert.False(t, ok)

	tu.moveTo(t, session.Left, "docs")
	assert.Nil(t, left.inputCapture(runeKey('d')))
	assert.NotContains(t, nodeNames(left), "docs")
	_, err = os.Stat(filepath.Join(tu.root, "docs"))
	assert.True(t, os.IsNotExist(err))
}

func TestPane_DeleteIgnoresRoot(t *testing.T) {
	tu := newTestUI(t)
	p := tu.panes[session.Left]
	p.SetCurrentNode(p.root)
	assert.Nil(t, p.inputCapture(key(tcell.KeyDelete)))
	_, err := os.Stat(tu.root)
	assert.NoError(t, err)
}

func TestPane_EscapeClearsClipboard(t *testing.T) {
	tu := newTestUI(t)
	p := tu.panes[session.Left]
	tu.moveTo(t, session.Left, "main.go")
	p.inputCapture(runeKey('c'))
	p.inputCapture(key(tcell.KeyEscape))
	_, ok := tu.sess.Clipboard()
	assert.False(t, ok)
}

func TestPane_BackspaceGoesUp(t *testing.T) {
	tu := newTestUI(t)
	p := tu.panes[session.Left]
	p.activated(tu.moveTo(t, session.Left, "docs"))

	assert.Nil(t, p.inputCapture(key(tcell.KeyBackspace2)))
	assert.Equal(t, tu.root, tu.sess.Pane(session.Left).Location())
}

func TestPane_UnhandledKeysPassThrough(t *testing.T) {
	tu := newTestUI(t)
	event := runeKey('j')
	assert.Equal(t, event, tu.panes[session.Left].inputCapture(event))
	down := key(tcell.KeyDown)
	assert.Equal(t, down, tu.panes[session.Left].inputCapture(down))
}

func TestUI_NotifyShowsModal(t *testing.T) {
	tu := newTestUI(t)
	p := tu.panes[session.Left]
	node := tu.moveTo(t, session.Left, "docs")
	require.NoError(t, os.RemoveAll(filepath.Join(tu.root, "docs")))

	p.activated(node)

	assert.True(t, tu.hasModal())
	assert.Equal(t, tu.root, tu.sess.Pane(session.Left).Location())
	tu.dismissModal()
	assert.False(t, tu.hasModal())
}

func TestPane_FailedNavigationKeepsCursor(t *testing.T) {
	tu := newTestUI(t)
	p := tu.panes[session.Left]
	node := tu.moveTo(t, session.Left, "docs")
	require.NoError(t, os.RemoveAll(filepath.Join(tu.root, "docs")))

	p.activated(node)

	require.True(t, tu.hasModal())
	current, ok := nodeEntry(p.GetCurrentNode())
	require.True(t, ok)
	assert.Equal(t, "docs", current.Name)
	assert.NotSame(t, p.root, p.GetCurrentNode())
}

func TestStatusText(t *testing.T) {
	tu := newTestUI(t)
	tu.moveTo(t, session.Left, "main.go")
	text := statusText(tu.sess)
	assert.Contains(t, text, "main.go")
	assert.Contains(t, text, "12 B")
	assert.Contains(t, text, "Go")

	assert.Contains(t, describeEntry(files.Entry{Name: "docs", Kind: files.KindDir}), "dir")
	assert.Equal(t, "", languageOf("no-extension-here"))
}

func TestEntryColor(t *testing.T) {
	assert.Equal(t, dirColor, entryColor(files.Entry{Name: "src.go", Kind: files.KindDir}))
	assert.Equal(t, tcell.ColorAqua, entryColor(files.Entry{Name: "main.GO"}))
	assert.Equal(t, tcell.ColorWhiteSmoke, entryColor(files.Entry{Name: "Makefile"}))
}
