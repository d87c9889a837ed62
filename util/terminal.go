// Package util holds helpers shared by treeopt and the programs built on it.
package util

import (
	"golang.org/x/term"
)

// DefaultColumnWidth is used when the output is not a terminal or its size is unknown
const DefaultColumnWidth = 80

// TerminalInfo reports what kind of terminal a file descriptor is attached to
type TerminalInfo interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal implements real terminal operations
type DefaultTerminal struct{}

// IsTerminal checks if fd is attached to a real terminal
func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (t *DefaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// ColumnWidth returns the width of the terminal behind fd, or DefaultColumnWidth
func ColumnWidth(t TerminalInfo, fd int) int {
	if t == nil {
		t = &DefaultTerminal{}
	}
	if !t.IsTerminal(fd) {
		return DefaultColumnWidth
	}
	width, _, err := t.GetSize(fd)
	if err != nil || width <= 0 {
		return DefaultColumnWidth
	}

	return width
}

// ColorEnabled reports whether styled output should be written to fd
func ColorEnabled(t TerminalInfo, fd int) bool {
	if t == nil {
		t = &DefaultTerminal{}
	}

	return t.IsTerminal(fd)
}
