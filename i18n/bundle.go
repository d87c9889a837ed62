// Package i18n provides the message bundle behind treeopt's error messages.
//
// There are two ways to manage translations:
//
//  1. System-wide through i18n.Default() and i18n.SetDefault().
//  2. Per error set through errs.UpdateMessageProvider(), which points every
//     built-in error at a provider backed by a bundle of your choice.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var systemLocales embed.FS

var (
	ErrInvalidLanguage     = errors.New("invalid language in filename")
	ErrInvalidTranslations = errors.New("invalid translations")
	ErrEmptyTranslations   = errors.New("empty translations")
	ErrFailedToSetString   = errors.New("failed to set string")
	ErrBundleImmutable     = errors.New("bundle is immutable and cannot be modified")
)

// Bundle holds translations per language. Languages are kept in the order they were added.
type Bundle struct {
	mu          sync.RWMutex
	defaultLang language.Tag
	// key is language.Tag.String(), value is map[string]string
	translations *orderedmap.OrderedMap
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	supported    []language.Tag
	matcher      language.Matcher
	isImmutable  bool
}

var (
	defaultBundleOnce sync.Once
	defaultBundle     *Bundle
	defaultBundleMu   sync.RWMutex
)

// DefaultSystemBundle creates a new bundle with the built-in translations (en, de)
func DefaultSystemBundle() (*Bundle, error) {
	bundle := NewEmptyBundle()
	if err := bundle.LoadFromFS(systemLocales, "locales"); err != nil {
		return nil, err
	}
	bundle.SetDefaultLanguage(language.English)

	return bundle, nil
}

// Default returns the shared system bundle. It is immutable.
func Default() *Bundle {
	defaultBundleMu.RLock()
	bundle := defaultBundle
	defaultBundleMu.RUnlock()

	if bundle != nil {
		return bundle
	}

	defaultBundleOnce.Do(func() {
		b, err := DefaultSystemBundle()
		if err != nil {
			panic("failed to load default locales: " + err.Error())
		}
		b.isImmutable = true

		defaultBundleMu.Lock()
		if defaultBundle == nil {
			defaultBundle = b
		}
		defaultBundleMu.Unlock()
	})

	defaultBundleMu.RLock()
	defer defaultBundleMu.RUnlock()

	return defaultBundle
}

// SetDefault replaces the shared bundle returned by Default
func SetDefault(bundle *Bundle) {
	defaultBundleMu.Lock()
	defaultBundle = bundle
	defaultBundleMu.Unlock()
}

func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: orderedmap.New(),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
		matcher:      language.NewMatcher([]language.Tag{}),
	}
}

// LoadFromFS loads every <lang>.json file found in dir
func (b *Bundle) LoadFromFS(fs embed.FS, dir string) error {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		lang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		data, err := fs.ReadFile(path.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		if err := b.LoadFromString(lang, string(data)); err != nil {
			return err
		}
	}

	return nil
}

// LoadFromString adds the JSON object in jsonData (key -> message) to lang
func (b *Bundle) LoadFromString(lang language.Tag, jsonData string) error {
	var translations map[string]string
	if err := json.Unmarshal([]byte(jsonData), &translations); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, err)
	}

	return b.AddLanguage(lang, translations)
}

// AddLanguage adds a new language to the bundle or merges translations into an existing one
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	if b.isImmutable {
		return ErrBundleImmutable
	}
	if len(translations) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyTranslations, lang)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	merged := make(map[string]string, len(translations))
	if existing, ok := b.translations.Get(lang.String()); ok {
		for k, v := range existing.(map[string]string) {
			merged[k] = v
		}
	} else {
		b.supported = append(b.supported, lang)
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToSetString, key, err)
		}
		merged[key] = value
	}

	b.translations.Set(lang.String(), merged)
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	b.matcher = language.NewMatcher(b.supported)

	return nil
}

// T returns the translation for the given key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.GetDefaultLanguage(), key, args...)
}

// TL returns the translation for the given language and key
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p, ok := b.printers[b.match(lang)]; ok {
		return p.Sprintf(key, args...)
	}

	if len(args) > 0 {
		return fmt.Sprintf(key, args...)
	}

	return key
}

// Lookup returns the raw message stored for key in lang
func (b *Bundle) Lookup(lang language.Tag, key string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	translations, ok := b.translations.Get(lang.String())
	if !ok {
		return "", false
	}
	msg, ok := translations.(map[string]string)[key]

	return msg, ok
}

// SetDefaultLanguage sets the default language, using language matching to find
// the best available match if the exact language is not available
func (b *Bundle) SetDefaultLanguage(lang language.Tag) {
	if b.isImmutable {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.supported) == 0 {
		b.defaultLang = lang
		return
	}

	if _, idx, confidence := b.matcher.Match(lang); confidence != language.No {
		b.defaultLang = b.supported[idx]
	}
}

func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.defaultLang
}

// Languages returns the supported languages in insertion order
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]language.Tag, len(b.supported))
	copy(langs, b.supported)

	return langs
}

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	_, ok := b.Lookup(lang, key)
	return ok
}

// match must be called with at least a read lock held
func (b *Bundle) match(lang language.Tag) language.Tag {
	if _, ok := b.printers[lang]; ok || len(b.supported) == 0 {
		return lang
	}
	if _, idx, confidence := b.matcher.Match(lang); confidence != language.No {
		return b.supported[idx]
	}

	return b.defaultLang
}
