package treeopt

import (
	"github.com/charmbracelet/log"
	"github.com/iancoleman/strcase"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	KindInt Kind = iota
	KindUint
	KindStr
	KindFloat
	KindBool
)

// Presence states whether an option must be given explicitly
type Presence int

const (
	// Optional options fall back to their default when absent
	Optional Presence = iota
	// Required options must appear on the command line at least once
	Required
)

// Option is a named, typed slot on a Command. The kind of Default fixes the
// kind of value the option accepts.
type Option struct {
	Name        string
	Default     Value
	Help        string
	Placeholder string
	Presence    Presence
}

// Command is a node of the grammar tree. The root command is named after the program.
type Command struct {
	Name     string
	Help     string
	Options  []Option
	Children []Command
}

// ParseConfig holds per-call parser settings, see the With* parse options
type ParseConfig struct {
	logger        *log.Logger
	strictTypes   bool
	checkRootName bool
}

// ConfigureCommandFunc is used when defining Command options
type ConfigureCommandFunc func(command *Command)

// ConfigureOptionFunc is used when defining Option attributes
type ConfigureOptionFunc func(option *Option)

// ConfigureParseFunc is used to configure a single Parse call
type ConfigureParseFunc func(config *ParseConfig)

// NameConversionFunc converts a struct field name to an option name
type NameConversionFunc func(string) string

// DefaultNameConverter derives option names for untagged fields in FlagStore.Bind
var DefaultNameConverter NameConversionFunc = strcase.ToKebab

// PathSeparator joins command and option names in FlagStore paths
const PathSeparator = "."

// OptionPrefix may not start a command or option name
const OptionPrefix = "-"
