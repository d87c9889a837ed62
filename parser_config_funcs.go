package treeopt

import (
	"github.com/charmbracelet/log"
	"github.com/napalu/treeopt/internal/logger"
)

func newParseConfig(configs ...ConfigureParseFunc) *ParseConfig {
	config := &ParseConfig{
		logger: logger.Discard(),
	}

	for _, configure := range configs {
		configure(config)
	}

	return config
}

// WithLogger traces parser decisions at debug level to l
func WithLogger(l *log.Logger) ConfigureParseFunc {
	return func(config *ParseConfig) {
		if l != nil {
			config.logger = l
		}
	}
}

// WithStrictTypes rejects a value token that does not coerce to the option's kind
// with errs.ErrTypeMismatch instead of storing it as a string.
func WithStrictTypes(strict bool) ConfigureParseFunc {
	return func(config *ParseConfig) {
		config.strictTypes = strict
	}
}

// WithRootNameCheck requires the first token, after stripping any directory,
// to equal the root command's name.
func WithRootNameCheck(check bool) ConfigureParseFunc {
	return func(config *ParseConfig) {
		config.checkRootName = check
	}
}
