package treeopt

// NewCommand creates and returns a new Command object. This function takes variadic `ConfigureCommandFunc` functions to customize the created command.
func NewCommand(name string, configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{
		Name: name,
	}

	for _, config := range configs {
		config(cmd)
	}

	return cmd
}

// Set is a helper config function that allows setting multiple configuration functions on a command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// WithHelp sets the help text of the command
func WithHelp(help string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Help = help
	}
}

// WithOptions appends options to the command in the given order. Nil entries are skipped.
func WithOptions(options ...*Option) ConfigureCommandFunc {
	return func(command *Command) {
		for _, option := range options {
			if option == nil {
				continue
			}
			command.Options = append(command.Options, *option)
		}
	}
}

// WithChildren appends sub-commands to the command in the given order. Nil entries are skipped.
func WithChildren(children ...*Command) ConfigureCommandFunc {
	return func(command *Command) {
		for _, child := range children {
			if child == nil {
				continue
			}
			command.Children = append(command.Children, *child)
		}
	}
}

// WithOverwriteChildren replaces a Command's sub-commands
func WithOverwriteChildren(children ...*Command) ConfigureCommandFunc {
	return func(command *Command) {
		command.Children = nil
		WithChildren(children...)(command)
	}
}

// Option returns the first option declared directly on c with the given name, or nil
func (c *Command) Option(name string) *Option {
	for i := range c.Options {
		if c.Options[i].Name == name {
			return &c.Options[i]
		}
	}

	return nil
}

// Child returns the first direct sub-command of c with the given name, or nil
func (c *Command) Child(name string) *Command {
	for i := range c.Children {
		if c.Children[i].Name == name {
			return &c.Children[i]
		}
	}

	return nil
}

// IsLeaf reports whether c has no sub-commands
func (c *Command) IsLeaf() bool {
	return len(c.Children) == 0
}

// Visit walks c and its descendants depth-first in declaration order. fn receives
// each command with its dotted path; returning false skips that command's children.
func (c *Command) Visit(fn func(cmd *Command, path string) bool) {
	c.visit("", fn)
}

func (c *Command) visit(parent string, fn func(cmd *Command, path string) bool) {
	path := joinPath(parent, c.Name)
	if !fn(c, path) {
		return
	}
	for i := range c.Children {
		c.Children[i].visit(path, fn)
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + PathSeparator + name
}
