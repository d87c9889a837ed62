package treeopt

import (
	"strings"
	"unicode"

	"github.com/napalu/treeopt/errs"
)

// Validate checks the structural rules of a grammar tree: every name is
// non-empty, does not start with OptionPrefix and holds no PathSeparator, '='
// or whitespace, every option has a default, and names are unique among the
// options and among the children of each command. An option and a child of
// the same command may share a name.
//
// Violations are reported as errs.ErrMalformedGrammar wrapping the specific cause.
func Validate(root *Command) error {
	if root == nil {
		return errs.ErrNilCommand
	}
	if err := checkName(root.Name, "command"); err != nil {
		return errs.ErrMalformedGrammar.WithArgs(root.Name).Wrap(err)
	}

	return validateCommand(root, root.Name)
}

func validateCommand(cmd *Command, path string) error {
	seen := make(map[string]struct{}, len(cmd.Options))
	for i := range cmd.Options {
		opt := &cmd.Options[i]
		if err := checkName(opt.Name, "option"); err != nil {
			return errs.ErrMalformedGrammar.WithArgs(path).Wrap(err)
		}
		if opt.Default == nil {
			return errs.ErrMalformedGrammar.WithArgs(path).Wrap(errs.ErrNilDefault.WithArgs(opt.Name))
		}
		if _, dup := seen[opt.Name]; dup {
			return errs.ErrMalformedGrammar.WithArgs(path).Wrap(errs.ErrDuplicateName.WithArgs("option", opt.Name))
		}
		seen[opt.Name] = struct{}{}
	}

	seen = make(map[string]struct{}, len(cmd.Children))
	for i := range cmd.Children {
		child := &cmd.Children[i]
		if err := checkName(child.Name, "command"); err != nil {
			return errs.ErrMalformedGrammar.WithArgs(path).Wrap(err)
		}
		if _, dup := seen[child.Name]; dup {
			return errs.ErrMalformedGrammar.WithArgs(path).Wrap(errs.ErrDuplicateName.WithArgs("command", child.Name))
		}
		seen[child.Name] = struct{}{}

		if err := validateCommand(child, joinPath(path, child.Name)); err != nil {
			return err
		}
	}

	return nil
}

func checkName(name, what string) error {
	if name == "" {
		return errs.ErrEmptyName.WithArgs(what)
	}
	if strings.HasPrefix(name, OptionPrefix) {
		return errs.ErrReservedPrefix.WithArgs(name, OptionPrefix)
	}
	for _, r := range name {
		if string(r) == PathSeparator || r == '=' || unicode.IsSpace(r) {
			return errs.ErrReservedCharacter.WithArgs(name, string(r))
		}
	}

	return nil
}
