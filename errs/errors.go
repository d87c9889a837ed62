package errs

import (
	"sync"

	"github.com/napalu/treeopt/i18n"
)

// Parse errors
var (
	ErrMissingValue          = i18n.NewError(ErrMissingValueKey)
	ErrUnknownToken          = i18n.NewError(ErrUnknownTokenKey)
	ErrTrailingArguments     = i18n.NewError(ErrTrailingArgumentsKey)
	ErrRequiredOptionMissing = i18n.NewError(ErrRequiredOptionMissingKey)
	ErrMalformedGrammar      = i18n.NewError(ErrMalformedGrammarKey)
	ErrNilCommand            = i18n.NewError(ErrNilCommandKey)
	ErrSplitFailed           = i18n.NewError(ErrSplitFailedKey)
)

// Store errors
var (
	ErrTypeMismatch = i18n.NewError(ErrTypeMismatchKey)
	ErrPathNotFound = i18n.NewError(ErrPathNotFoundKey)
	ErrBindTarget   = i18n.NewError(ErrBindTargetKey)
)

// Grammar errors, always wrapped in ErrMalformedGrammar
var (
	ErrEmptyName         = i18n.NewError(ErrEmptyNameKey)
	ErrReservedPrefix    = i18n.NewError(ErrReservedPrefixKey)
	ErrReservedCharacter = i18n.NewError(ErrReservedCharacterKey)
	ErrDuplicateName     = i18n.NewError(ErrDuplicateNameKey)
	ErrNilDefault        = i18n.NewError(ErrNilDefaultKey)
)

type builtInErrors struct {
	mu  sync.Mutex
	All []i18n.TranslatableError
}

var sysErrors = &builtInErrors{
	All: []i18n.TranslatableError{
		ErrMissingValue,
		ErrUnknownToken,
		ErrTrailingArguments,
		ErrRequiredOptionMissing,
		ErrMalformedGrammar,
		ErrNilCommand,
		ErrSplitFailed,
		ErrTypeMismatch,
		ErrPathNotFound,
		ErrBindTarget,
		ErrEmptyName,
		ErrReservedPrefix,
		ErrReservedCharacter,
		ErrDuplicateName,
		ErrNilDefault,
	},
}

// UpdateMessageProvider points every built-in error at provider.
//
// Example:
//
//	provider := i18n.NewBundleMessageProvider(bundle)
//	errs.UpdateMessageProvider(provider)
func UpdateMessageProvider(provider i18n.MessageProvider) {
	i18n.SetDefaultMessageProvider(provider)
	sysErrors.mu.Lock()
	for _, e := range sysErrors.All {
		e.SetProvider(provider)
	}
	sysErrors.mu.Unlock()
}
