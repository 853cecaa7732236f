package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/datatug/twinpane/pkg/config"
	"github.com/datatug/twinpane/pkg/dirops"
	"github.com/datatug/twinpane/pkg/files/osfile"
	"github.com/datatug/twinpane/pkg/logging"
	"github.com/datatug/twinpane/pkg/profiling"
	"github.com/datatug/twinpane/pkg/session"
	"github.com/datatug/twinpane/pkg/twinpane"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var osExit = os.Exit
var httpListenAndServe = http.ListenAndServe

func main() {
	if err := newRootCmd().Execute(); err != nil {
		osExit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		startDir   string
		logFile    string
		logLevel   string
		cpuProfile string
		memProfile string
		pprofAddr  string
		noMouse    bool
	)
	cmd := &cobra.Command{
		Use:          "twinpane",
		Short:        "Two-pane terminal file browser",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("dir") {
				cfg.StartDir = startDir
			}
			if flags.Changed("log-file") {
				cfg.LogFile = logFile
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("cpuprofile") {
				cfg.CPUProfile = cpuProfile
			}
			if flags.Changed("memprofile") {
				cfg.MemProfile = memProfile
			}
			if flags.Changed("pprof") {
				cfg.PprofAddr = pprofAddr
			}
			if noMouse {
				cfg.Mouse = false
			}
			return runApp(cmd.Context(), cfg)
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&startDir, "dir", "d", "~", "directory both panes start in")
	flags.StringVar(&logFile, "log-file", "", "write logs to `file`")
	flags.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&memProfile, "memprofile", "", "write memory profile to `file`")
	flags.StringVar(&pprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
	flags.BoolVar(&noMouse, "no-mouse", false, "disable mouse support")
	return cmd
}

func runApp(ctx context.Context, cfg *config.Config) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := cfg.Normalize(); err != nil {
		return err
	}
	log, closeLog, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = closeLog()
	}()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("recovered from panic")
			err = fmt.Errorf("recovered from panic: %v", r)
		}
	}()

	if cfg.PprofAddr != "" {
		startPprofServer(cfg.PprofAddr, log)
	}

	if cfg.CPUProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(cfg.CPUProfile, log)
		defer stopCPUProfiling()
	}
	if cfg.MemProfile != "" {
		writeMemProfile := profiling.DoMemProfiling(cfg.MemProfile, log)
		defer writeMemProfile()
	}

	store := osfile.NewStore(cfg.StartDir)
	ops := dirops.New(store, dirops.WithLogger(log))

	app := newApp()
	app.EnableMouse(cfg.Mouse)
	ui := twinpane.New(app, twinpane.WithLogger(log))
	sess, err := session.New(ctx, ops, cfg.StartDir, ui, session.WithLogger(log))
	if err != nil {
		return err
	}
	ui.Attach(sess)
	log.Info().Str("dir", cfg.StartDir).Str("host", store.RootTitle()).Msg("started")
	return run(app)
}

func startPprofServer(addr string, log zerolog.Logger) {
	go func() {
		if err := httpListenAndServe(addr, nil); err != nil {
			log.Error().Err(err).Str("addr", addr).Msg("pprof server stopped")
		}
	}()
}

var newApp = tview.NewApplication

type application interface{ Run() error }

var run = func(app application) error {
	if err := app.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
