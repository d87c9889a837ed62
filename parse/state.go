package parse

import "errors"

// State is a forward-only cursor over a token list
type State interface {
	Pos() int                // Index of the next unconsumed token
	Current() (string, bool) // The next unconsumed token
	Consume() (string, bool) // Return Current and advance past it
	Exhausted() bool         // True once every token has been consumed
}

// ErrInvalidPosition is an error that occurs when an invalid position is accessed
var ErrInvalidPosition = errors.New("invalid position")

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State positioned before the first token of args
func NewState(args []string) State {
	return &DefaultState{
		args: args,
	}
}

func (s *DefaultState) Pos() int {
	return s.pos
}

func (s *DefaultState) Current() (string, bool) {
	arg, err := s.argAt(s.pos)
	if err != nil {
		return "", false
	}

	return arg, true
}

func (s *DefaultState) Consume() (string, bool) {
	arg, ok := s.Current()
	if ok {
		s.pos++
	}

	return arg, ok
}

func (s *DefaultState) Exhausted() bool {
	return s.pos >= len(s.args)
}

func (s *DefaultState) argAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}

	return s.args[pos], nil
}
