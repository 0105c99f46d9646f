// Package main is the entry point for the ked line editor.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ogier/pflag"

	"github.com/dshills/ked/internal/app"
	"github.com/dshills/ked/internal/config"
	"github.com/dshills/ked/internal/config/watcher"
	"github.com/dshills/ked/internal/input"
	"github.com/dshills/ked/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	configPath  string
	prompt      string
	verbose     bool
	logLevel    string
	logFile     string
	noHistory   bool
	watchConfig bool
	showVersion bool
	showHelp    bool

	flags *pflag.FlagSet
	// set records which flags were given explicitly.
	set map[string]bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "ked: %v\n", err)
		return exitUsage
	}

	if opts.showHelp {
		opts.flags.Usage()
		return exitOK
	}
	if opts.showVersion {
		fmt.Fprintf(stdout, "ked %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return exitOK
	}

	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	load := func() (*config.Config, error) {
		cfg, err := config.LoadDefault(configPath)
		if err != nil {
			return nil, err
		}
		opts.apply(cfg)
		return cfg, cfg.Validate()
	}

	cfg, err := load()
	if err != nil {
		fmt.Fprintf(stderr, "ked: %v\n", err)
		return exitError
	}

	logger := logging.Null
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			fmt.Fprintf(stderr, "ked: %v\n", err)
			return exitError
		}
		defer f.Close()
		logger = logging.New(logging.Config{Level: cfg.LogLevel(), Output: f, Prefix: "ked"})
	}

	appOpts := app.Options{
		Config: cfg,
		Source: input.Open(input.Options{
			In:          stdin,
			Out:         stdout,
			History:     cfg.History.Enabled,
			HistoryFile: cfg.History.File,
		}),
		Out:    stdout,
		Err:    stderr,
		Logger: logger,
	}

	if opts.watchConfig && configPath != "" {
		w, err := watcher.New(configPath, load, watcher.WithLogger(logger))
		if err != nil {
			logger.Warn("config watcher disabled: %v", err)
		} else {
			defer w.Close()
			appOpts.Reloads = w.Updates()
			appOpts.ReloadErrors = w.Errors()
		}
	}

	application, err := app.New(appOpts)
	if err != nil {
		_ = appOpts.Source.Close()
		fmt.Fprintf(stderr, "ked: failed to initialize: %v\n", err)
		return exitError
	}
	defer application.Shutdown()

	// Restore the terminal if the process is told to stop mid-read.
	stopSignals := handleSignals(func() {
		_ = application.Shutdown()
		os.Exit(exitError)
	})
	defer stopSignals()

	if err := application.Run(); err != nil && !errors.Is(err, app.ErrQuit) {
		fmt.Fprintf(stderr, "ked: %v\n", err)
		return exitError
	}
	return exitOK
}

// handleSignals runs onSignal when the process receives SIGTERM or SIGHUP.
// The returned function unregisters the handler and waits for its
// goroutine to exit.
func handleSignals(onSignal func()) (stop func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGHUP)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-signals:
			onSignal()
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(signals)
			close(done)
			wg.Wait()
		})
	}
}
