package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrLoadCancelled   = errors.New("catalog: loading messages cancelled")
	ErrSourceFailed    = errors.New("catalog: message source failed")
	ErrJSONParse       = errors.New("catalog: failed to parse JSON content")
	ErrYAMLParse       = errors.New("catalog: failed to parse YAML content")
	ErrFetchFailed     = errors.New("catalog: failed to fetch namespace over HTTP")
	ErrReadFailed      = errors.New("catalog: failed to read namespace file")
	ErrMarshalJSON     = errors.New("catalog: failed to marshal namespace to JSON")
	ErrUnknownLanguage = errors.New("catalog: no messages loaded for language")
)

// MissingNamespaceError reports a lookup against a namespace that was never
// loaded into the catalog.
type MissingNamespaceError struct {
	Namespace Namespace
}

func (e *MissingNamespaceError) Error() string {
	return fmt.Sprintf("messages for namespace '%s' not loaded or found", e.Namespace)
}

// MissingKeyError reports a dotted key path that does not resolve within a
// loaded namespace.
type MissingKeyError struct {
	Namespace Namespace
	Path      string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing message in '%s' at path '%s'", e.Namespace, e.Path)
}

// InvalidTypeError reports a key path that resolves to something other than
// a string leaf.
type InvalidTypeError struct {
	Namespace Namespace
	Path      string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("expected string in '%s' at path '%s', but found different type", e.Namespace, e.Path)
}
