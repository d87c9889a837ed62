package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"contour"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Capture(t *testing.T) {
	code, stdout, stderr := runArgs(t, "capture", "logical", "output", "out.vt", "lines", "50")
	require.Equal(t, 0, code, stderr)

	var got struct {
		Flags   map[string]interface{} `yaml:"flags"`
		Capture CaptureSettings        `yaml:"capture"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))

	assert.Equal(t, "out.vt", got.Flags["contour.capture.output"])
	assert.Equal(t, true, got.Flags["contour.capture.logical"])
	assert.Equal(t, 1.0, got.Flags["contour.capture.timeout"])
	assert.Equal(t, "~/.config/contour/contour.yml", got.Flags["contour.config"])
	assert.Equal(t, CaptureSettings{LogicalLines: true, Timeout: 1.0, OutputFile: "out.vt", LineCount: 50}, got.Capture)
}

func TestRun_NoCapture(t *testing.T) {
	code, stdout, _ := runArgs(t, "profile", "main")
	require.Equal(t, 0, code)

	assert.Contains(t, stdout, "contour.profile: main")
	assert.NotContains(t, stdout, "capture")
}

func TestRun_TrailingArgument(t *testing.T) {
	code, stdout, stderr := runArgs(t, "capture", "logical", "output", "out.vt", "extra")
	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "unexpected trailing argument 'extra' after command 'contour.capture'")
	assert.Contains(t, stderr, "  capture [logical] timeout SECONDS output FILE lines COUNT\n")
}

func TestRun_UnmatchedSubcommandShowsRootUsage(t *testing.T) {
	code, _, stderr := runArgs(t, "screenshot")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unexpected trailing argument 'screenshot' after command 'contour'")
	assert.Contains(t, stderr, "  contour config FILE profile NAME debug TAGS [list-debug-tags] log-level LEVEL capture [logical]")
}

func TestRun_MissingValue(t *testing.T) {
	code, _, stderr := runArgs(t, "capture", "timeout")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "option 'contour.capture.timeout' expects a value")
}

func TestRun_ListDebugTags(t *testing.T) {
	code, stdout, _ := runArgs(t, "list-debug-tags")
	require.Equal(t, 0, code)

	lines := bytes.Split(bytes.TrimSpace([]byte(stdout)), []byte("\n"))
	require.Len(t, lines, len(debugTags))
	assert.Equal(t, "config           ; Logs configuration file loading.", string(lines[0]))
	assert.Contains(t, stdout, "parser           ; Logs command line parser decisions.\n")
}

func TestRun_ParserTrace(t *testing.T) {
	code, _, stderr := runArgs(t, "debug", "pars*", "capture")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "descend")
	assert.Contains(t, stderr, "contour.capture")
	assert.Contains(t, stderr, "debug logging enabled")
}

func TestRun_DebugWithoutParserTag(t *testing.T) {
	code, _, stderr := runArgs(t, "debug", "terminal.*")
	require.Equal(t, 0, code)
	assert.NotContains(t, stderr, "descend")
	assert.Contains(t, stderr, "terminal.input,terminal.output,terminal.view,terminal.widget")
}

func TestRun_LogLevel(t *testing.T) {
	code, _, stderr := runArgs(t, "capture", "lines", "-1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "binding capture settings")

	code, _, stderr = runArgs(t, "log-level", "fatal", "capture", "lines", "-1")
	assert.Equal(t, 1, code)
	assert.Empty(t, stderr)

	code, stdout, _ := runArgs(t, "log-level", "WARN")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "contour.log-level: WARN")
}

func TestEnabledTags(t *testing.T) {
	tests := []struct {
		filter string
		want   []string
	}{
		{"", nil},
		{"parser", []string{"parser"}},
		{"pars", nil},
		{"terminal.in*, config", []string{"config", "terminal.input"}},
		{"*", []string{"parser", "config", "keyboard", "terminal.input", "terminal.output", "terminal.view", "terminal.widget"}},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			assert.Equal(t, tt.want, enabledTags(tt.filter))
		})
	}
}

func TestCaptureSettings_TimeoutDuration(t *testing.T) {
	assert.Equal(t, "1.5s", CaptureSettings{Timeout: 1.5}.TimeoutDuration().String())
}
