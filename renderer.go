package treeopt

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// usageStyles colours the parts of a usage line
type usageStyles struct {
	command     lipgloss.Style
	option      lipgloss.Style
	placeholder lipgloss.Style
}

func newUsageStyles() *usageStyles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)

	return &usageStyles{
		command:     r.NewStyle().Bold(true),
		option:      r.NewStyle().Foreground(lipgloss.Color("39")),
		placeholder: r.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
	}
}

// usageRenderer renders usage lines. A nil styles field means plain text.
type usageRenderer struct {
	styles *usageStyles
}

func newUsageRenderer(colorize bool) *usageRenderer {
	r := &usageRenderer{}
	if colorize {
		r.styles = newUsageStyles()
	}

	return r
}

func (r *usageRenderer) commandName(c *Command) string {
	if r.styles == nil {
		return c.Name
	}

	return r.styles.command.Render(c.Name)
}

func (r *usageRenderer) optionName(o *Option) string {
	if r.styles == nil {
		return o.Name
	}

	return r.styles.option.Render(o.Name)
}

func (r *usageRenderer) placeholder(o *Option) string {
	text := o.Placeholder
	if text == "" {
		text = o.Kind().TypeName()
	}
	if r.styles == nil {
		return text
	}

	return r.styles.placeholder.Render(text)
}

// optionSyntax returns "[name]" for boolean options and "name TYPE" otherwise
func (r *usageRenderer) optionSyntax(o *Option) string {
	if o.Kind() == KindBool {
		return "[" + r.optionName(o) + "]"
	}

	return r.optionName(o) + " " + r.placeholder(o)
}

// usage writes one line per leaf reachable from c. Each line starts with the
// names and option syntax of every command on the way down.
func (r *usageRenderer) usage(sb *strings.Builder, c *Command, prefix string) {
	if c.IsLeaf() {
		sb.WriteString(prefix)
		sb.WriteString(r.commandName(c))
		for i := range c.Options {
			sb.WriteByte(' ')
			sb.WriteString(r.optionSyntax(&c.Options[i]))
		}
		sb.WriteByte('\n')
		return
	}

	var p strings.Builder
	p.WriteString(prefix)
	p.WriteString(r.commandName(c))
	p.WriteByte(' ')
	for i := range c.Options {
		p.WriteString(r.optionSyntax(&c.Options[i]))
		p.WriteByte(' ')
	}

	childPrefix := p.String()
	for i := range c.Children {
		r.usage(sb, &c.Children[i], childPrefix)
	}
}

// UsageText renders the usage syntax of cmd, one line per leaf command.
// With colorize the names and placeholders carry ANSI styling. columnWidth is
// accepted for callers that probe the terminal but lines are not wrapped.
func UsageText(cmd *Command, colorize bool, columnWidth int) string {
	if cmd == nil {
		return ""
	}

	var sb strings.Builder
	newUsageRenderer(colorize).usage(&sb, cmd, "")

	return sb.String()
}

// HelpText is reserved for a per-option help listing and currently returns
// an empty string.
func HelpText(cmd *Command, colorize bool, columnWidth int) string {
	return ""
}
