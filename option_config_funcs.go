package treeopt

// NewOption creates an Option whose accepted kind is fixed by def
func NewOption(name string, def Value, configs ...ConfigureOptionFunc) *Option {
	option := &Option{
		Name:    name,
		Default: def,
	}

	for _, config := range configs {
		config(option)
	}

	return option
}

// Set applies configuration functions to an existing option
func (o *Option) Set(configs ...ConfigureOptionFunc) {
	for _, config := range configs {
		config(o)
	}
}

// Kind returns the kind of value the option accepts
func (o *Option) Kind() Kind {
	return o.Default.Kind()
}

// IsRequired reports whether the option must be given explicitly
func (o *Option) IsRequired() bool {
	return o.Presence == Required
}

// WithHelpText sets the text shown for the option in help output
func WithHelpText(help string) ConfigureOptionFunc {
	return func(option *Option) {
		option.Help = help
	}
}

// WithPlaceholder replaces the type name (INT, FLOAT, ...) shown after the option in usage text
func WithPlaceholder(placeholder string) ConfigureOptionFunc {
	return func(option *Option) {
		option.Placeholder = placeholder
	}
}

// SetRequired marks the option as Required when required is true
func SetRequired(required bool) ConfigureOptionFunc {
	return func(option *Option) {
		if required {
			option.Presence = Required
		} else {
			option.Presence = Optional
		}
	}
}
