package twinpane

import (
	"github.com/gdamore/tcell/v2"
)

const helpLine = "[yellow]Enter[-] open  [yellow]Bksp[-] up  [yellow]c[-] copy  [yellow]v[-] paste  " +
	"[yellow]d[-] delete  [yellow]Esc[-] clear clipboard  [yellow]Tab[-] other pane  [yellow]q[-] quit"

func (p *paneView) inputCapture(event *tcell.EventKey) *tcell.EventKey {
	ui := p.ui
	switch event.Key() {
	case tcell.KeyTab, tcell.KeyBacktab:
		ui.focusPane(p.side.Other())
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyLeft:
		ui.sess.Focus(p.side)
		ui.navigateUp()
		return nil
	case tcell.KeyDelete:
		p.deleteCurrent()
		return nil
	case tcell.KeyEscape:
		ui.sess.ClearClipboard()
		ui.updateStatus()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'u':
			ui.sess.Focus(p.side)
			ui.navigateUp()
		case 'c':
			p.copyCurrent()
		case 'v':
			p.pasteCurrent()
		case 'd':
			p.deleteCurrent()
		case 'q':
			ui.app.Stop()
		default:
			return event
		}
		return nil
	default:
		return event
	}
}

// selectCurrent makes the node under the cursor the session selection.
func (p *paneView) selectCurrent() bool {
	p.ui.sess.Focus(p.side)
	entry, ok := nodeEntry(p.GetCurrentNode())
	if !ok {
		return false
	}
	p.ui.sess.SelectEntry(entry)
	return true
}

func (p *paneView) copyCurrent() {
	if !p.selectCurrent() || !p.ui.sess.CanActOnSelection() {
		return
	}
	entry, _ := p.ui.sess.ActivePane().Selected()
	p.ui.sess.RequestCopy(entry)
	p.ui.updateStatus()
}

func (p *paneView) pasteCurrent() {
	if !p.selectCurrent() || !p.ui.sess.CanPaste() {
		return
	}
	target, _ := p.ui.sess.ActivePane().Selected()
	p.ui.sess.RequestPaste(p.ui.ctx, target)
	p.ui.renderAll()
}

// deleteCurrent ignores the root node, which stands for the pane's own location.
func (p *paneView) deleteCurrent() {
	if p.isRoot(p.GetCurrentNode()) || !p.selectCurrent() {
		return
	}
	entry, _ := p.ui.sess.ActivePane().Selected()
	p.ui.sess.RequestDelete(p.ui.ctx, entry)
	p.ui.renderAll()
}

func (ui *UI) navigateUp() {
	if !ui.sess.CanNavigateUp() {
		return
	}
	p := ui.activePane()
	ui.sess.RequestNavigateUp(ui.ctx)
	p.render()
	p.changed(p.GetCurrentNode())
}
