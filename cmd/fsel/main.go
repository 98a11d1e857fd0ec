// Command fsel is the interactive fuzzy-selection filter: it reads
// candidate lines from a source command (or stdin), lets the user narrow
// them down interactively, and prints the chosen line(s) to stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/mattn-fsel/fsel/internal/appconfig"
	"github.com/mattn-fsel/fsel/internal/model"
	"github.com/mattn-fsel/fsel/internal/term"
	"github.com/mattn-fsel/fsel/sig"
)

// cliOptions holds the command-line flags parsed by go-flags, in the
// same OptXxx-field convention as the teacher's options.go.
type cliOptions struct {
	OptQuery          string `long:"query" description:"initial value for the filter query"`
	OptCmdQuery       string `long:"cmd-query" description:"initial value for the reader command query"`
	OptMulti          bool   `short:"m" long:"multi" description:"enable multi-select"`
	OptReverse        bool   `long:"reverse" description:"reverse the layout (bottom-up)"`
	OptInlineInfo     bool   `long:"inline-info" description:"display match counters on the query line instead of a separate status line"`
	OptPreview        string `long:"preview" description:"command to run for the preview pane, with {}/{N}/{-N} placeholders"`
	OptPreviewWindow  string `long:"preview-window" description:"preview pane layout, e.g. 'right:50%', 'up:10:hidden'"`
	OptDelimiter      string `long:"delimiter" description:"field delimiter regex, used by preview field interpolation"`
	OptEnableNullSep  bool   `long:"read0" description:"expect NUL (\\0) as the separator between target and output for each item"`
	OptDisableANSI    bool   `long:"no-ansi" description:"disable ANSI color code parsing in item display"`
	OptHeader         string `long:"header" description:"string to display between the selection list and the status line"`
	OptVersion        bool   `long:"version" description:"print the version and exit"`
	Args              struct {
		Command []string `positional-arg-name:"COMMAND" description:"source command; defaults to FSEL_DEFAULT_COMMAND or 'find .'"`
	} `positional-args:"yes"`
}

const version = "v0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	opts := &cliOptions{}
	parser := flags.NewParser(opts, flags.PrintErrors)
	args, err := parser.Parse()
	if err != nil {
		return 1
	}

	if opts.OptVersion {
		fmt.Fprintf(os.Stderr, "fsel: %s\n", version)
		return 0
	}

	cfg := appconfig.New()
	if dir, err := os.UserConfigDir(); err == nil {
		if rcPath, err := appconfig.LocateRCFile(filepath.Join(dir, "fsel")); err == nil {
			if rc, err := appconfig.LoadRCFile(rcPath); err == nil {
				rc.Apply(cfg)
			}
		}
	}

	cfg.MultiSelect = opts.OptMulti
	cfg.Reverse = opts.OptReverse
	cfg.InlineInfo = opts.OptInlineInfo
	if opts.OptPreview != "" {
		cfg.PreviewCommand = opts.OptPreview
	}
	cfg.EnableNullSep = opts.OptEnableNullSep
	cfg.EnableANSI = !opts.OptDisableANSI

	if opts.OptDelimiter != "" {
		cfg.SetDelimiter(opts.OptDelimiter)
	}
	if opts.OptHeader != "" {
		cfg.HeaderLines = []string{opts.OptHeader}
	}
	if opts.OptPreviewWindow != "" {
		w, err := appconfig.ParsePreviewWindow(opts.OptPreviewWindow)
		if err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrap(err, "fsel: invalid --preview-window"))
			return 1
		}
		cfg.PreviewWindow = w
	}

	if len(opts.Args.Command) > 0 {
		cfg.SourceCommand = joinArgs(opts.Args.Command)
	} else if len(args) > 0 {
		cfg.SourceCommand = joinArgs(args)
	}

	m := model.New(cfg, term.NewTcellTerminal())
	if opts.OptQuery != "" {
		m.SetInitialFilterQuery(opts.OptQuery)
	}
	if opts.OptCmdQuery != "" {
		m.SetInitialCommandQuery(opts.OptCmdQuery)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigH := sig.New(sig.ReceivedHandlerFunc(func(os.Signal) {
		cancel()
	}))
	go sigH.Loop(ctx, func() {})

	result, err := m.Run(ctx)
	if err != nil {
		if err == model.ErrAborted || err == context.Canceled {
			return 130
		}
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "fsel"))
		return 1
	}

	for _, it := range result.Items {
		fmt.Println(it.Output())
	}
	return 0
}

func joinArgs(args []string) string {
	out := args[0]
	for _, a := range args[1:] {
		out += " " + a
	}
	return out
}
