package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/punchkit/punchkit/pkg/locale"
)

// MessageLookup is the capability the validation rules depend on: resolve a
// namespace and dotted key path to displayable text, never failing. Both the
// file-backed and the network-backed catalogs satisfy it.
type MessageLookup interface {
	GetMessage(ns Namespace, path string) string
}

// Catalog holds all loaded message trees for one language. It is immutable
// after Load returns and safe for concurrent reads without locking.
type Catalog struct {
	lang       locale.Language
	namespaces map[Namespace]map[string]any
	logger     *slog.Logger
}

// Option configures catalog loading.
type Option func(*loadConfig)

type loadConfig struct {
	namespaces []Namespace
	required   []Namespace
	logger     *slog.Logger
}

// WithNamespaces overrides the set of namespaces to load. By default all
// known namespaces are loaded.
func WithNamespaces(ns ...Namespace) Option {
	return func(c *loadConfig) {
		if len(ns) > 0 {
			c.namespaces = ns
		}
	}
}

// WithRequiredNamespaces marks which namespaces must load successfully.
// By default every configured namespace is required; a missing required
// namespace fails construction, which callers treat as a deployment error.
func WithRequiredNamespaces(ns ...Namespace) Option {
	return func(c *loadConfig) {
		c.required = ns
	}
}

// WithLogger sets the logger used for per-lookup miss warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *loadConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Load eagerly reads every configured namespace for one language from the
// source. A required namespace that is missing, unreadable, or not a
// key-value object fails construction: a broken base catalog must not
// silently serve blank UI text. Optional namespaces that fail to load are
// logged and skipped.
func Load(ctx context.Context, source Source, lang locale.Language, opts ...Option) (*Catalog, error) {
	if source == nil {
		return nil, errors.New("catalog: source is nil")
	}

	cfg := &loadConfig{
		namespaces: KnownNamespaces(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.required == nil {
		cfg.required = cfg.namespaces
	}

	namespaces := make(map[Namespace]map[string]any, len(cfg.namespaces))
	for _, ns := range cfg.namespaces {
		required := slices.Contains(cfg.required, ns)

		tree, err := source.LoadNamespace(ctx, lang, ns)
		if err == nil && tree == nil {
			err = fmt.Errorf("namespace '%s' is not a key-value object", ns)
		}
		if err != nil {
			if required {
				return nil, fmt.Errorf("catalog: missing or invalid '%s' messages for language '%s': %w", ns, lang, err)
			}
			cfg.logger.WarnContext(ctx, "Skipping optional namespace",
				"lang", lang.String(), "namespace", ns.String(), "error", err)
			continue
		}
		namespaces[ns] = tree
	}

	return &Catalog{lang: lang, namespaces: namespaces, logger: cfg.logger}, nil
}

// Language returns the language this catalog was loaded for.
func (c *Catalog) Language() locale.Language { return c.lang }

// Namespaces returns the namespaces that were actually loaded.
func (c *Catalog) Namespaces() []Namespace {
	ns := make([]Namespace, 0, len(c.namespaces))
	for n := range c.namespaces {
		ns = append(ns, n)
	}
	slices.Sort(ns)
	return ns
}

// Lookup navigates the dotted key path segment by segment through the
// namespace tree. It fails with MissingNamespaceError, MissingKeyError, or
// InvalidTypeError when any segment or the terminal value is absent or
// wrong-typed.
func (c *Catalog) Lookup(ns Namespace, path string) (string, error) {
	tree, ok := c.namespaces[ns]
	if !ok {
		return "", &MissingNamespaceError{Namespace: ns}
	}

	var current any = tree
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return "", &MissingKeyError{Namespace: ns, Path: path}
		}
		current, ok = node[segment]
		if !ok {
			return "", &MissingKeyError{Namespace: ns, Path: path}
		}
	}

	msg, ok := current.(string)
	if !ok {
		return "", &InvalidTypeError{Namespace: ns, Path: path}
	}
	return msg, nil
}

// GetMessage is the non-failing wrapper around Lookup. On any lookup failure
// it logs a warning and returns a fixed diagnostic placeholder, so callers
// always get displayable text.
func (c *Catalog) GetMessage(ns Namespace, path string) string {
	msg, err := c.Lookup(ns, path)
	if err != nil {
		c.logger.Warn("Failed to get message",
			"lang", c.lang.String(), "namespace", ns.String(), "key", path, "error", err)
		return fmt.Sprintf("Error: missing message for namespace '%s' and key '%s'", ns, path)
	}
	return msg
}

// ExportJSON returns one namespace as a JSON document, the same shape the
// locales network endpoint serves to the front-end.
func (c *Catalog) ExportJSON(ns Namespace) ([]byte, error) {
	tree, ok := c.namespaces[ns]
	if !ok {
		return nil, &MissingNamespaceError{Namespace: ns}
	}
	content, err := json.Marshal(tree)
	if err != nil {
		return nil, errors.Join(ErrMarshalJSON, err)
	}
	return content, nil
}
