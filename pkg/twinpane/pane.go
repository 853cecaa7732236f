package twinpane

import (
	"github.com/datatug/twinpane/pkg/files"
	"github.com/datatug/twinpane/pkg/session"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type paneView struct {
	*tview.TreeView
	ui   *UI
	side session.Side
	root *tview.TreeNode
}

func newPaneView(ui *UI, side session.Side) *paneView {
	p := &paneView{
		TreeView: tview.NewTreeView(),
		ui:       ui,
		side:     side,
		root:     tview.NewTreeNode(""),
	}
	p.SetRoot(p.root)
	p.SetCurrentNode(p.root)
	p.SetBorder(true)
	p.SetChangedFunc(p.changed)
	p.SetSelectedFunc(p.activated)
	p.SetInputCapture(p.inputCapture)
	p.SetFocusFunc(p.focus)
	p.SetBlurFunc(p.blur)
	return p
}

// render rebuilds the nodes from the session pane, keeping the cursor on the
// same path when it is still listed.
func (p *paneView) render() {
	pane := p.ui.sess.Pane(p.side)
	location := pane.Location()
	p.SetTitle(" " + location + " ")

	var keepPath string
	if entry, ok := nodeEntry(p.GetCurrentNode()); ok && p.GetCurrentNode() != p.root {
		keepPath = entry.Path
	}

	p.root.ClearChildren()
	p.root.SetText(location).
		SetColor(dirColor).
		SetReference(files.Entry{Name: location, Path: location, Kind: files.KindDir})

	current := p.root
	for _, entry := range pane.Entries() {
		text := entry.Name
		if entry.IsDir() {
			text = "📁" + text
		}
		node := tview.NewTreeNode(text).
			SetReference(entry).
			SetColor(entryColor(entry))
		p.root.AddChild(node)
		if entry.Path == keepPath {
			current = node
		}
	}
	p.SetCurrentNode(current)
}

func nodeEntry(node *tview.TreeNode) (files.Entry, bool) {
	if node == nil {
		return files.Entry{}, false
	}
	entry, ok := node.GetReference().(files.Entry)
	return entry, ok
}

func (p *paneView) isRoot(node *tview.TreeNode) bool {
	return node == p.root
}

func (p *paneView) changed(node *tview.TreeNode) {
	if entry, ok := nodeEntry(node); ok {
		p.ui.sess.Focus(p.side)
		p.ui.sess.SelectEntry(entry)
	}
	p.ui.updateStatus()
}

// activated handles Enter: the root node goes up, others open or navigate.
func (p *paneView) activated(node *tview.TreeNode) {
	p.ui.sess.Focus(p.side)
	if p.isRoot(node) {
		p.ui.navigateUp()
		return
	}
	entry, ok := nodeEntry(node)
	if !ok {
		return
	}
	location := p.ui.sess.Pane(p.side).Location()
	p.ui.sess.ActivateEntry(p.ui.ctx, entry)
	p.render()
	if p.ui.sess.Pane(p.side).Location() != location {
		p.SetCurrentNode(p.root)
		p.changed(p.root)
	}
}

func (p *paneView) focus() {
	p.ui.sess.Focus(p.side)
	p.SetBorderColor(tcell.ColorWhite)
	p.changed(p.GetCurrentNode())
}

func (p *paneView) blur() {
	p.SetBorderColor(tcell.ColorGray)
}
