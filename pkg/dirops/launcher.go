package dirops

import (
	"github.com/skratchdot/open-golang/open"
)

//go:generate mockgen -destination=launcher_mock_test.go -package=dirops . Launcher

// Launcher hands a path to the OS default application.
type Launcher interface {
	Launch(path string) error
}

var openStart = open.Start

// ShellLauncher starts the platform opener (xdg-open, open or the Windows file
// protocol handler) and does not wait for it.
type ShellLauncher struct{}

func (ShellLauncher) Launch(path string) error {
	return openStart(path)
}

// LauncherFunc adapts a function to Launcher.
type LauncherFunc func(path string) error

func (f LauncherFunc) Launch(path string) error {
	return f(path)
}
