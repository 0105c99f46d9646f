package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ogier/pflag"

	"github.com/dshills/ked/internal/config"
	"github.com/dshills/ked/internal/config/loader"
)

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{set: make(map[string]bool)}

	fs := pflag.NewFlagSet("ked", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.configPath, "config", "c", "", "Path to configuration file (.toml, .yaml)")
	fs.StringVarP(&opts.prompt, "prompt", "p", "", "Prompt shown before each command")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Print error messages instead of '?'")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Write diagnostics to this file")
	fs.BoolVar(&opts.noHistory, "no-history", false, "Do not load or save command history")
	fs.BoolVar(&opts.watchConfig, "watch-config", false, "Reload prompt and verbose when the config file changes")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVarP(&opts.showHelp, "help", "h", false, "Show help message")
	fs.Usage = func() { usage(stderr, fs) }
	opts.flags = fs

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	fs.Visit(func(f *pflag.Flag) {
		opts.set[f.Name] = true
	})
	return opts, nil
}

// apply overrides cfg with the flags given on the command line.
func (o *options) apply(cfg *config.Config) {
	if o.set["prompt"] {
		cfg.Prompt = o.prompt
	}
	if o.set["verbose"] {
		cfg.Verbose = o.verbose
	}
	if o.set["log-level"] {
		cfg.Log.Level = o.logLevel
	}
	if o.set["log-file"] {
		cfg.Log.File = o.logFile
	}
	if o.noHistory {
		cfg.History.Enabled = false
	}
}

func usage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "ked - a minimal line editor\n\n")
	fmt.Fprintf(w, "Usage: ked [options]\n\n")
	fmt.Fprintf(w, "Commands are read from standard input, one per line:\n")
	fmt.Fprintf(w, "  [line]a            append text after line; end with a lone '.'\n")
	fmt.Fprintf(w, "  [range]p           print lines\n")
	fmt.Fprintf(w, "  [range]w[file]     write lines to file\n")
	fmt.Fprintf(w, "  q                  quit\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEnvironment:\n")
	env := loader.NewEnvLoader(config.EnvPrefix, config.EnvMapping())
	fmt.Fprintf(w, "  %s\n", strings.Join(env.Vars(), ", "))
}
