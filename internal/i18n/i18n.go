// Package i18n localizes step descriptions.
//
// English text comes from trace.EnglishMessages. Other locales live in
// embedded YAML catalogs under locales/. Both are registered with
// golang.org/x/text/message at init. English is the fallback locale.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/san-kum/combviz/internal/trace"
)

var messageKeys = keys()

func keyFor(k trace.Kind) string {
	return "step." + string(k)
}

func keys() []string {
	out := make([]string, len(trace.Kinds))
	for i, k := range trace.Kinds {
		out[i] = keyFor(k)
	}
	return out
}

var (
	catalog   = mustLoad()
	supported = catalog.Tags()
	matcher   = language.NewMatcher(supported)
)

func mustLoad() Catalog {
	cat, err := loadCatalog(localesFS)
	if err != nil {
		panic(err)
	}
	if err := cat.register(); err != nil {
		panic(err)
	}
	return cat
}

// Supported returns the locales with a message catalog.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supported))
	copy(tags, supported)
	return tags
}

// Default returns the fallback locale.
func Default() language.Tag {
	return language.English
}

// Parse resolves a locale string such as "ja", "ja-JP" or "en_US" to the
// closest supported tag. Unknown or empty input yields English.
func Parse(locale string) language.Tag {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		return Default()
	}
	// Strip POSIX suffixes like ".UTF-8" from LANG values.
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return Default()
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default()
	}
	return supported[idx]
}

type annotator struct {
	printer *message.Printer
}

// NewAnnotator returns a trace.Annotator producing descriptions in the given
// locale. Source lines follow trace.LineFor.
func NewAnnotator(tag language.Tag) trace.Annotator {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return &annotator{printer: message.NewPrinter(supported[idx])}
}

func (a *annotator) Annotate(s trace.Step) (string, int) {
	line := trace.LineFor(s.Kind)
	if !s.Kind.Valid() {
		return "", line
	}
	return a.printer.Sprintf(keyFor(s.Kind), trace.MessageArgs(s)...), line
}
