package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/combviz/internal/trace"
)

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

//go:embed locales/*.yaml
var localesFS embed.FS

// Catalog maps a locale tag to its step messages.
type Catalog map[language.Tag]map[string]string

func loadCatalog(fsys fs.FS) (Catalog, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	sort.Strings(paths)

	cat := Catalog{language.English: englishMessages()}
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		locale := strings.TrimSpace(file.Locale)
		if locale == "" {
			return nil, fmt.Errorf("catalog %s: locale is required", path)
		}
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: parse locale %q: %w", path, locale, err)
		}
		if _, exists := cat[tag]; exists {
			return nil, fmt.Errorf("catalog %s: locale %q already defined", path, locale)
		}
		for _, key := range messageKeys {
			if strings.TrimSpace(file.Messages[key]) == "" {
				return nil, fmt.Errorf("catalog %s: missing message %q", path, key)
			}
		}
		cat[tag] = file.Messages
	}
	return cat, nil
}

func englishMessages() map[string]string {
	out := make(map[string]string, len(trace.EnglishMessages))
	for kind, msg := range trace.EnglishMessages {
		out[keyFor(kind)] = msg
	}
	return out
}

// register makes every message available to message.NewPrinter.
func (c Catalog) register() error {
	for tag, messages := range c {
		for key, msg := range messages {
			if err := message.SetString(tag, key, msg); err != nil {
				return fmt.Errorf("register %s %s: %w", tag, key, err)
			}
		}
	}
	return nil
}

// Tags returns the catalog locales, English first.
func (c Catalog) Tags() []language.Tag {
	tags := []language.Tag{language.English}
	rest := make([]string, 0, len(c))
	for tag := range c {
		if tag != language.English {
			rest = append(rest, tag.String())
		}
	}
	sort.Strings(rest)
	for _, s := range rest {
		tags = append(tags, language.MustParse(s))
	}
	return tags
}
