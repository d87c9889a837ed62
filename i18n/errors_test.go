package i18n

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTrErrorFormatting(t *testing.T) {
	b := createTestBundle(t)
	p := NewBundleMessageProvider(b)

	err := NewErrorWithProvider("error.required", p)
	assert.Equal(t, "required option missing: %s", err.Error())
	assert.Equal(t, "required option missing: timeout", err.WithArgs("timeout").Error())

	wrapped := err.WithArgs("timeout").Wrap(errors.New("boom"))
	assert.Equal(t, "required option missing: timeout: boom", wrapped.Error())
	assert.Equal(t, "error.required", wrapped.Key())
	assert.Equal(t, []interface{}{"timeout"}, wrapped.Args())
}

func TestTrErrorIs(t *testing.T) {
	first := NewError("first")
	second := NewError("second")

	copied := first.WithArgs(1).Wrap(second)
	assert.True(t, errors.Is(copied, first))
	assert.True(t, errors.Is(copied, second))
	assert.False(t, errors.Is(first, second))
	assert.True(t, errors.Is(fmt.Errorf("ctx: %w", copied), first))
}

func TestBundleMessageProviderFallback(t *testing.T) {
	b := createTestBundle(t)
	require.NoError(t, b.AddLanguage(language.German, map[string]string{"only.de": "nur deutsch"}))
	b.SetDefaultLanguage(language.German)

	p := NewBundleMessageProvider(b)
	assert.Equal(t, "nur deutsch", p.GetMessage("only.de"))
	assert.Equal(t, "test value", p.GetMessage("test"))
	assert.Equal(t, "missing", p.GetMessage("missing"))

	assert.Equal(t, "key", NewBundleMessageProvider(nil).GetMessage("key"))
}
