// Command contour-cli parses the contour terminal's command line and prints
// the resolved options as YAML.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/napalu/treeopt"
	"github.com/napalu/treeopt/internal/logger"
	"github.com/napalu/treeopt/util"
)

type report struct {
	Flags   *treeopt.FlagStore `yaml:"flags"`
	Capture *CaptureSettings   `yaml:"capture,omitempty"`
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	root := newGrammar()

	store, err := treeopt.ParseArgv(root, argv)
	if err != nil {
		printUsageError(stderr, root, err)
		return 2
	}

	tags := enabledTags(store.String(pathDebug))
	level := logger.ParseLevel(store.String(pathLogLevel))
	if len(tags) > 0 {
		level = log.DebugLevel
	}
	appLog := logger.New(stderr, "contour", level)
	if len(tags) > 0 {
		appLog.Debug("debug logging enabled", "tags", strings.Join(tags, ","))
	}

	if slices.Contains(tags, "parser") {
		// the first parse already succeeded; this one only produces the trace
		trace := logger.New(stderr, "parser", log.DebugLevel)
		if store, err = treeopt.ParseArgv(root, argv, treeopt.WithLogger(trace)); err != nil {
			printUsageError(stderr, root, err)
			return 2
		}
	}

	if store.Boolean(pathListDebugTags) {
		listDebugTags(stdout)
		return 0
	}

	out := report{Flags: store}
	if store.Has(pathCapture + ".timeout") {
		var settings CaptureSettings
		if err := store.Bind(pathCapture, &settings); err != nil {
			appLog.Error("binding capture settings", "error", err)
			return 1
		}
		appLog.Debug("capture", "timeout", settings.TimeoutDuration(), "output", settings.OutputFile)
		out.Capture = &settings
	}

	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		appLog.Error("writing report", "error", err)
		return 1
	}
	if err := enc.Close(); err != nil {
		appLog.Error("writing report", "error", err)
		return 1
	}

	return 0
}

// printUsageError writes err and the usage of the innermost command the parser reached
func printUsageError(w io.Writer, root *treeopt.Command, err error) {
	cmd := root
	var pe *treeopt.ParseError
	if errors.As(err, &pe) && pe.Command != nil {
		cmd = pe.Command
	}

	colorize, width := false, util.DefaultColumnWidth
	if f, ok := w.(*os.File); ok {
		term := &util.DefaultTerminal{}
		colorize = util.ColorEnabled(term, int(f.Fd()))
		width = util.ColumnWidth(term, int(f.Fd()))
	}

	fmt.Fprintf(w, "error: %v\n\nusage:\n", err)
	for _, line := range strings.Split(strings.TrimSuffix(treeopt.UsageText(cmd, colorize, width), "\n"), "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
