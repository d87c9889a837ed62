package main

import "time"

// CaptureSettings is the record the screen capture client runs with
type CaptureSettings struct {
	LogicalLines bool    `flag:"logical" yaml:"logical_lines"`
	Timeout      float64 `flag:"timeout" yaml:"timeout"`
	OutputFile   string  `flag:"output" yaml:"output_file"`
	LineCount    uint    `flag:"lines" yaml:"line_count"`
}

func (s CaptureSettings) TimeoutDuration() time.Duration {
	return time.Duration(s.Timeout * float64(time.Second))
}
