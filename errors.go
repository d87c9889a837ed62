package treeopt

// ParseError describes a rejected token sequence. Err is one of the errs
// sentinels (compare with errors.Is). Command is the innermost command the
// parser had entered, which is what usage output should describe.
type ParseError struct {
	Err     error
	Pos     int
	Token   string
	Command *Command
	Path    string
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
