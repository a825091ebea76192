package catalog

import (
	"context"

	"github.com/punchkit/punchkit/pkg/locale"
)

// Registry holds one immutable catalog per supported language, loaded
// eagerly at startup. It is the process-wide message store the request
// handlers resolve against.
type Registry struct {
	catalogs map[locale.Language]*Catalog
	fallback locale.Language
}

// NewRegistry loads a catalog for every language in langs. Any construction
// failure is returned as-is: a language that cannot load its required
// namespaces must keep the process from starting.
//
// The fallback is the default language when it was loaded, otherwise the
// first configured language, so For always has a catalog to hand out.
func NewRegistry(ctx context.Context, source Source, langs []locale.Language, opts ...Option) (*Registry, error) {
	if len(langs) == 0 {
		langs = locale.Supported()
	}

	catalogs := make(map[locale.Language]*Catalog, len(langs))
	for _, lang := range langs {
		c, err := Load(ctx, source, lang, opts...)
		if err != nil {
			return nil, err
		}
		catalogs[lang] = c
	}

	fallback := locale.DefaultLanguage
	if _, ok := catalogs[fallback]; !ok {
		fallback = langs[0]
	}

	return &Registry{catalogs: catalogs, fallback: fallback}, nil
}

// For returns the catalog for lang, falling back to the default language
// when lang was not loaded.
func (r *Registry) For(lang locale.Language) *Catalog {
	if c, ok := r.catalogs[lang]; ok {
		return c
	}
	return r.catalogs[r.fallback]
}

// Languages returns the languages with loaded catalogs.
func (r *Registry) Languages() []locale.Language {
	langs := make([]locale.Language, 0, len(r.catalogs))
	for lang := range r.catalogs {
		langs = append(langs, lang)
	}
	return langs
}
