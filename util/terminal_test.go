package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockTerminal for testing
type MockTerminal struct {
	IsTerminalResult bool
	Width            int
	Height           int
	Err              error
}

func (m *MockTerminal) IsTerminal(fd int) bool {
	return m.IsTerminalResult
}

func (m *MockTerminal) GetSize(fd int) (int, int, error) {
	return m.Width, m.Height, m.Err
}

func TestColumnWidth(t *testing.T) {
	tests := []struct {
		name     string
		terminal *MockTerminal
		want     int
	}{
		{
			name:     "terminal reports size",
			terminal: &MockTerminal{IsTerminalResult: true, Width: 132, Height: 40},
			want:     132,
		},
		{
			name:     "not a terminal",
			terminal: &MockTerminal{IsTerminalResult: false, Width: 132},
			want:     DefaultColumnWidth,
		},
		{
			name:     "size lookup fails",
			terminal: &MockTerminal{IsTerminalResult: true, Err: errors.New("ioctl failed")},
			want:     DefaultColumnWidth,
		},
		{
			name:     "zero width",
			terminal: &MockTerminal{IsTerminalResult: true},
			want:     DefaultColumnWidth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColumnWidth(tt.terminal, 1))
		})
	}
}

func TestColorEnabled(t *testing.T) {
	assert.True(t, ColorEnabled(&MockTerminal{IsTerminalResult: true}, 1))
	assert.False(t, ColorEnabled(&MockTerminal{IsTerminalResult: false}, 1))
}
