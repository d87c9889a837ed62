// Package errs holds the translatable errors returned by treeopt.
// This file contains the translation keys behind them.
package errs

const (
	prefixKey = "treeopt"
)

const (
	ErrorPrefixKey   = prefixKey + ".error"
	GrammarPrefixKey = ErrorPrefixKey + ".grammar"
)

// Parse errors
const (
	ErrMissingValueKey          = ErrorPrefixKey + ".missing_value"
	ErrUnknownTokenKey          = ErrorPrefixKey + ".unknown_token"
	ErrTrailingArgumentsKey     = ErrorPrefixKey + ".trailing_arguments"
	ErrRequiredOptionMissingKey = ErrorPrefixKey + ".required_option_missing"
	ErrMalformedGrammarKey      = ErrorPrefixKey + ".malformed_grammar"
	ErrNilCommandKey            = ErrorPrefixKey + ".nil_command"
	ErrSplitFailedKey           = ErrorPrefixKey + ".split_failed"
)

// Store errors
const (
	ErrTypeMismatchKey = ErrorPrefixKey + ".type_mismatch"
	ErrPathNotFoundKey = ErrorPrefixKey + ".path_not_found"
	ErrBindTargetKey   = ErrorPrefixKey + ".bind_target"
)

// Grammar errors
const (
	ErrEmptyNameKey         = GrammarPrefixKey + ".empty_name"
	ErrReservedPrefixKey    = GrammarPrefixKey + ".reserved_prefix"
	ErrReservedCharacterKey = GrammarPrefixKey + ".reserved_character"
	ErrDuplicateNameKey     = GrammarPrefixKey + ".duplicate_name"
	ErrNilDefaultKey        = GrammarPrefixKey + ".nil_default"
)
