// Package twinpane is the terminal front end: two tree views over a session.Session.
package twinpane

import (
	"context"

	"github.com/datatug/twinpane/pkg/session"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
)

const modalPage = "modal"

// UI renders a session and forwards key presses to it. It also serves as the
// session's Notifier.
type UI struct {
	app  *tview.Application
	sess *session.Session
	ctx  context.Context
	log  zerolog.Logger

	pages  *tview.Pages
	panes  [2]*paneView
	status *tview.TextView
	help   *tview.TextView
}

var _ session.Notifier = (*UI)(nil)

type Option func(ui *UI)

func WithLogger(log zerolog.Logger) Option {
	return func(ui *UI) {
		ui.log = log
	}
}

// New creates the widgets. Attach must be called before the app runs.
func New(app *tview.Application, options ...Option) *UI {
	ui := &UI{
		app: app,
		ctx: context.Background(),
		log: zerolog.Nop(),
	}
	for _, option := range options {
		option(ui)
	}
	ui.panes[session.Left] = newPaneView(ui, session.Left)
	ui.panes[session.Right] = newPaneView(ui, session.Right)
	ui.status = tview.NewTextView().SetDynamicColors(true)
	ui.help = tview.NewTextView().SetDynamicColors(true).SetText(helpLine)

	columns := tview.NewFlex().
		AddItem(ui.panes[session.Left], 0, 1, true).
		AddItem(ui.panes[session.Right], 0, 1, false)
	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(columns, 0, 1, true).
		AddItem(ui.status, 1, 0, false).
		AddItem(ui.help, 1, 0, false)
	ui.pages = tview.NewPages().AddPage("main", layout, true, true)
	return ui
}

// Attach binds the session, renders both panes and installs the root primitive.
func (ui *UI) Attach(sess *session.Session) {
	ui.sess = sess
	for _, p := range ui.panes {
		p.render()
	}
	ui.app.SetRoot(ui.pages, true)
	ui.focusPane(sess.Active())
}

// SetupApp wires a ready session into app.
func SetupApp(app *tview.Application, sess *session.Session, options ...Option) *UI {
	ui := New(app, options...)
	ui.Attach(sess)
	return ui
}

func (ui *UI) focusPane(side session.Side) {
	ui.sess.Focus(side)
	ui.app.SetFocus(ui.panes[side])
}

func (ui *UI) activePane() *paneView {
	return ui.panes[ui.sess.Active()]
}

// Notify shows message in a modal and returns focus to the active pane when dismissed.
func (ui *UI) Notify(message string) {
	ui.log.Debug().Str("message", message).Msg("notify")
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			ui.dismissModal()
		})
	ui.pages.AddPage(modalPage, modal, true, true)
	ui.app.SetFocus(modal)
}

func (ui *UI) dismissModal() {
	ui.pages.RemovePage(modalPage)
	if ui.sess != nil {
		ui.app.SetFocus(ui.activePane())
	}
}

func (ui *UI) hasModal() bool {
	return ui.pages.HasPage(modalPage)
}

func (ui *UI) renderAll() {
	for _, p := range ui.panes {
		p.render()
	}
	ui.updateStatus()
}
