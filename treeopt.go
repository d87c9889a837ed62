// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package treeopt parses command lines against a declared tree of commands and typed options.
//
// A grammar is a Command tree. Each Command has ordered Options and ordered child
// Commands. Each Option carries a default Value whose kind (Int, Uint, Str, Float
// or Bool) fixes the kind of value the option accepts:
//
//	root := treeopt.NewCommand("contour",
//		treeopt.WithOptions(
//			treeopt.NewOption("config", treeopt.Str("~/.config/contour/contour.yml"))),
//		treeopt.WithChildren(
//			treeopt.NewCommand("capture",
//				treeopt.WithOptions(
//					treeopt.NewOption("logical", treeopt.Bool(false)),
//					treeopt.NewOption("timeout", treeopt.Float(1.0)),
//					treeopt.NewOption("output", treeopt.Str(""))))))
//
//	store, err := treeopt.Parse(root, []string{"contour", "capture", "logical", "output", "out.vt"})
//
// Tokens are whitespace separated: an option name is followed by its value,
// boolean options may omit theirs, and at most one child command is entered per
// level. The resulting FlagStore holds every declared option of every entered
// command under its dotted path, e.g. "contour.capture.timeout", holding the
// default unless the option was given.
package treeopt

import (
	"path/filepath"

	"github.com/napalu/treeopt/errs"
	"github.com/napalu/treeopt/parse"
)

// Parse walks tokens against the grammar rooted at root. The first token stands
// for the root command itself. On success every token has been consumed; on
// failure no store is returned and the error is a *ParseError, or a grammar
// error wrapping errs.ErrMalformedGrammar when root is not well formed.
func Parse(root *Command, tokens []string, configs ...ConfigureParseFunc) (*FlagStore, error) {
	if err := Validate(root); err != nil {
		return nil, err
	}

	config := newParseConfig(configs...)
	ctx := newParseContext(tokens, config)

	if config.checkRootName && len(tokens) > 0 && filepath.Base(tokens[0]) != root.Name {
		ctx.deepest = frame{cmd: root, prefix: root.Name}
		return nil, ctx.fail(errs.ErrUnknownToken.WithArgs(tokens[0], root.Name), 0, tokens[0])
	}

	if err := ctx.parseCommand(root); err != nil {
		return nil, err
	}

	if !ctx.state.Exhausted() {
		token, _ := ctx.state.Current()
		return nil, ctx.fail(errs.ErrTrailingArguments.WithArgs(token, ctx.deepest.prefix), ctx.state.Pos(), token)
	}

	return ctx.store, nil
}

// ParseArgv parses a process argument vector such as os.Args. argv is copied;
// argv[0] is matched against the root command like any other token.
func ParseArgv(root *Command, argv []string, configs ...ConfigureParseFunc) (*FlagStore, error) {
	tokens := make([]string, len(argv))
	copy(tokens, argv)

	return Parse(root, tokens, configs...)
}

// ParseString splits line with shell quoting rules and parses the result
func ParseString(root *Command, line string, configs ...ConfigureParseFunc) (*FlagStore, error) {
	tokens, err := parse.Split(line)
	if err != nil {
		return nil, errs.ErrSplitFailed.Wrap(err)
	}

	return Parse(root, tokens, configs...)
}
