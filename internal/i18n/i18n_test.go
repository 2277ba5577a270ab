package i18n

import (
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"

	"github.com/san-kum/combviz/internal/trace"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.English},
		{"en", language.English},
		{"en-US", language.English},
		{"ja", language.Japanese},
		{"ja-JP", language.Japanese},
		{"ja_JP.UTF-8", language.Japanese},
		{"de", language.English},
		{"not a tag", language.English},
	}

	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAnnotatorLocales(t *testing.T) {
	input := []float64{5, 3, 8, 1}

	en, err := trace.GenerateWith(input, trace.WithAnnotator(NewAnnotator(language.English)))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	ja, err := trace.GenerateWith(input, trace.WithAnnotator(NewAnnotator(language.Japanese)))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if en[1].Description != "Gap set to 3; compare and swap elements this far apart." {
		t.Errorf("unexpected english gap text: %q", en[1].Description)
	}
	if en[2].Description != "Compare index 0 and 3 (gap 3)." {
		t.Errorf("unexpected english compare text: %q", en[2].Description)
	}
	if ja[2].Description != "インデックス 0 と 3 を比較します（間隔: 3）。" {
		t.Errorf("unexpected japanese compare text: %q", ja[2].Description)
	}
	if !strings.HasPrefix(ja[0].Description, "コムソート") {
		t.Errorf("unexpected japanese init text: %q", ja[0].Description)
	}

	for i := range en {
		if en[i].Description == "" || ja[i].Description == "" {
			t.Errorf("step %d missing description", i)
		}
		if strings.Contains(en[i].Description, "%!") || strings.Contains(ja[i].Description, "%!") {
			t.Errorf("step %d has a formatting error: %q / %q", i, en[i].Description, ja[i].Description)
		}
		if en[i].SourceLine != ja[i].SourceLine {
			t.Errorf("step %d: source line differs between locales", i)
		}
		if !en[i].Array.Equal(ja[i].Array) || en[i].Kind != ja[i].Kind {
			t.Errorf("step %d: locale changed algorithmic fields", i)
		}
	}
}

func TestAnnotatorUnsupportedFallsBack(t *testing.T) {
	a := NewAnnotator(language.German)
	desc, _ := a.Annotate(trace.Step{Kind: trace.KindComplete, Gap: 1})
	if desc != "Gap reached 1 with no swaps; every element is in order." {
		t.Errorf("expected english fallback, got %q", desc)
	}
}

func TestSupported(t *testing.T) {
	tags := Supported()
	if len(tags) < 2 || tags[0] != language.English {
		t.Fatalf("unexpected tags: %v", tags)
	}
	tags[0] = language.German
	if Supported()[0] != language.English {
		t.Error("Supported must return a copy")
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{"missing locale", fstest.MapFS{
			"locales/fr.yaml": {Data: []byte("messages: {}\n")},
		}},
		{"missing message", fstest.MapFS{
			"locales/fr.yaml": {Data: []byte("locale: fr\nmessages:\n  step.init: hi\n")},
		}},
		{"english redefined", fstest.MapFS{
			"locales/en.yaml": {Data: completeCatalog("en")},
		}},
		{"bad yaml", fstest.MapFS{
			"locales/fr.yaml": {Data: []byte("locale: [\n")},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadCatalog(tt.fs); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	cat, err := loadCatalog(fstest.MapFS{
		"locales/fr.yaml": {Data: completeCatalog("fr")},
	})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	tags := cat.Tags()
	if len(tags) != 2 || tags[0] != language.English || tags[1] != language.French {
		t.Errorf("tags = %v", tags)
	}

	empty, err := loadCatalog(fstest.MapFS{})
	if err != nil {
		t.Fatalf("load empty failed: %v", err)
	}
	if len(empty[language.English]) != len(trace.Kinds) {
		t.Errorf("english messages = %v", empty[language.English])
	}
}

func TestEnglishMatchesDefaultAnnotator(t *testing.T) {
	input := []float64{9, 4, 7, 1, 8, 2, 6, 3, 5, 0}
	localized, err := trace.GenerateWith(input, trace.WithAnnotator(NewAnnotator(language.English)))
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	plain, err := trace.Generate(input)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	seen := map[trace.Kind]bool{}
	for i := range plain {
		seen[plain[i].Kind] = true
		if localized[i].Description != plain[i].Description {
			t.Errorf("step %d: %q != %q", i, localized[i].Description, plain[i].Description)
		}
	}
	for _, k := range trace.Kinds {
		if !seen[k] {
			t.Errorf("trace never produced %s", k)
		}
	}
}

func completeCatalog(locale string) []byte {
	var b strings.Builder
	b.WriteString("locale: " + locale + "\nmessages:\n")
	for _, key := range messageKeys {
		b.WriteString("  " + key + ": text\n")
	}
	return []byte(b.String())
}
