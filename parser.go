package treeopt

import (
	"github.com/charmbracelet/log"
	"github.com/ef-ds/deque"
	"github.com/napalu/treeopt/errs"
	"github.com/napalu/treeopt/parse"
)

// frame is one active command on the ancestor stack
type frame struct {
	cmd    *Command
	prefix string
}

type parseContext struct {
	state    parse.State
	stack    *deque.Deque
	store    *FlagStore
	explicit map[string]struct{}
	deepest  frame
	strict   bool
	log      *log.Logger
}

func newParseContext(tokens []string, config *ParseConfig) *parseContext {
	return &parseContext{
		state:    parse.NewState(tokens),
		stack:    deque.New(),
		store:    newFlagStore(),
		explicit: make(map[string]struct{}),
		strict:   config.strictTypes,
		log:      config.logger,
	}
}

// prefix returns the dotted path of the innermost active command
func (ctx *parseContext) prefix() string {
	if top, ok := ctx.stack.Back(); ok {
		return top.(frame).prefix
	}

	return ""
}

func (ctx *parseContext) fail(err error, pos int, token string) *ParseError {
	ctx.log.Debug("reject", "command", ctx.deepest.prefix, "pos", pos, "token", token, "error", err)

	return &ParseError{
		Err:     err,
		Pos:     pos,
		Token:   token,
		Command: ctx.deepest.cmd,
		Path:    ctx.deepest.prefix,
	}
}

// parseCommand consumes the name token of cmd, its options and at most one sub-command
func (ctx *parseContext) parseCommand(cmd *Command) error {
	pos := ctx.state.Pos()
	ctx.state.Consume()

	f := frame{cmd: cmd, prefix: joinPath(ctx.prefix(), cmd.Name)}
	ctx.stack.PushBack(f)
	defer ctx.stack.PopBack()
	ctx.deepest = f
	ctx.log.Debug("command", "command", f.prefix, "pos", pos)

	if err := ctx.parseOptions(cmd, f.prefix); err != nil {
		return err
	}

	if err := ctx.checkRequired(cmd, f.prefix); err != nil {
		return err
	}

	token, ok := ctx.state.Current()
	if !ok {
		return nil
	}

	if child := cmd.Child(token); child != nil {
		ctx.log.Debug("descend", "command", joinPath(f.prefix, child.Name), "pos", ctx.state.Pos())
		return ctx.parseCommand(child)
	}

	return ctx.fail(errs.ErrTrailingArguments.WithArgs(token, f.prefix), ctx.state.Pos(), token)
}

// parseOptions writes every default of cmd, then consumes option occurrences
// until the next token is not an option name of cmd
func (ctx *parseContext) parseOptions(cmd *Command, prefix string) error {
	for i := range cmd.Options {
		ctx.store.set(joinPath(prefix, cmd.Options[i].Name), cmd.Options[i].Default)
	}

	for {
		token, ok := ctx.state.Current()
		if !ok {
			return nil
		}
		opt := cmd.Option(token)
		if opt == nil {
			return nil
		}

		pos := ctx.state.Pos()
		ctx.state.Consume()
		path := joinPath(prefix, opt.Name)

		value, err := ctx.optionValue(opt, path, pos)
		if err != nil {
			return err
		}

		ctx.store.set(path, value)
		ctx.explicit[path] = struct{}{}
		ctx.log.Debug("option", "path", path, "value", value, "pos", pos)
	}
}

func (ctx *parseContext) optionValue(opt *Option, path string, pos int) (Value, error) {
	kind := opt.Kind()

	if kind == KindBool {
		next, ok := ctx.state.Current()
		if ok && IsBoolLiteral(next) {
			ctx.state.Consume()
			return Coerce(next, KindBool), nil
		}

		return Bool(true), nil
	}

	token, ok := ctx.state.Consume()
	if !ok {
		return nil, ctx.fail(errs.ErrMissingValue.WithArgs(path), pos, opt.Name)
	}

	value := Coerce(token, kind)
	if value.Kind() == kind {
		return value, nil
	}

	switch {
	case kind == KindStr:
		return Str(token), nil
	case ctx.strict:
		return nil, ctx.fail(errs.ErrTypeMismatch.WithArgs(path, value.Kind(), kind), pos+1, token)
	}

	return value, nil
}

func (ctx *parseContext) checkRequired(cmd *Command, prefix string) error {
	for i := range cmd.Options {
		if !cmd.Options[i].IsRequired() {
			continue
		}
		path := joinPath(prefix, cmd.Options[i].Name)
		if _, ok := ctx.explicit[path]; !ok {
			token, _ := ctx.state.Current()
			return ctx.fail(errs.ErrRequiredOptionMissing.WithArgs(path), ctx.state.Pos(), token)
		}
	}

	return nil
}
