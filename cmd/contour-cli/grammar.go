package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/napalu/treeopt"
)

const (
	pathDebug         = "contour.debug"
	pathListDebugTags = "contour.list-debug-tags"
	pathLogLevel      = "contour.log-level"
	pathCapture       = "contour.capture"
)

func newGrammar() *treeopt.Command {
	return treeopt.NewCommand("contour",
		treeopt.WithHelp("Contour terminal emulator."),
		treeopt.WithOptions(
			treeopt.NewOption("config", treeopt.Str("~/.config/contour/contour.yml"),
				treeopt.WithHelpText("Path to configuration file to load at startup."),
				treeopt.WithPlaceholder("FILE")),
			treeopt.NewOption("profile", treeopt.Str(""),
				treeopt.WithHelpText("Terminal profile to load."),
				treeopt.WithPlaceholder("NAME")),
			treeopt.NewOption("debug", treeopt.Str(""),
				treeopt.WithHelpText("Enables debug logging, using a comma separated list of tags."),
				treeopt.WithPlaceholder("TAGS")),
			treeopt.NewOption("list-debug-tags", treeopt.Bool(false),
				treeopt.WithHelpText("Lists all available debug tags and exits.")),
			treeopt.NewOption("log-level", treeopt.Str("info"),
				treeopt.WithHelpText("Minimum level of log messages: debug, info, warn, error or fatal."),
				treeopt.WithPlaceholder("LEVEL")),
		),
		treeopt.WithChildren(
			treeopt.NewCommand("capture",
				treeopt.WithHelp("Captures the screen buffer of the currently running terminal."),
				treeopt.WithOptions(
					treeopt.NewOption("logical", treeopt.Bool(false),
						treeopt.WithHelpText("Capture logical lines instead of wrapped screen lines.")),
					treeopt.NewOption("timeout", treeopt.Float(1.0),
						treeopt.WithHelpText("Seconds to wait for the terminal to respond."),
						treeopt.WithPlaceholder("SECONDS")),
					treeopt.NewOption("output", treeopt.Str(""),
						treeopt.WithHelpText("File to write the capture to."),
						treeopt.WithPlaceholder("FILE")),
					treeopt.NewOption("lines", treeopt.Uint(0),
						treeopt.WithHelpText("Number of lines to capture, 0 for the terminal default."),
						treeopt.WithPlaceholder("COUNT")),
				),
			),
		),
	)
}

type debugTag struct {
	Name        string
	Description string
}

var debugTags = []debugTag{
	{"parser", "Logs command line parser decisions."},
	{"config", "Logs configuration file loading."},
	{"keyboard", "Logs OS keyboard related debug information."},
	{"terminal.input", "Logs terminal input events."},
	{"terminal.output", "Logs raw writes to the terminal screen."},
	{"terminal.view", "Logs render target independent terminal view events."},
	{"terminal.widget", "Logs system widget related debug information."},
}

// listDebugTags writes the known tags sorted by name, descriptions aligned in a second column
func listDebugTags(w io.Writer) {
	tags := make([]debugTag, len(debugTags))
	copy(tags, debugTags)
	sort.Slice(tags, func(i, j int) bool { return tags[i].Name < tags[j].Name })

	width := 0
	for _, tag := range tags {
		if len(tag.Name) > width {
			width = len(tag.Name)
		}
	}

	for _, tag := range tags {
		fmt.Fprintf(w, "%-*s; %s\n", width+2, tag.Name, tag.Description)
	}
}

// enabledTags returns the tags selected by a comma separated filter. A pattern
// ending in '*' selects every tag starting with the text before it.
func enabledTags(filter string) []string {
	var patterns []string
	for _, p := range strings.Split(filter, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}

	var enabled []string
	for _, tag := range debugTags {
		for _, p := range patterns {
			if matchTag(p, tag.Name) {
				enabled = append(enabled, tag.Name)
				break
			}
		}
	}

	return enabled
}

func matchTag(pattern, name string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(name, prefix)
	}

	return pattern == name
}
