package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/punchkit/punchkit/pkg/locale"
)

// Source loads one namespace document for one language. Implementations
// cover the backend file layout, embedded filesystems, the front-end network
// endpoint, and in-memory maps for tests.
type Source interface {
	LoadNamespace(ctx context.Context, lang locale.Language, ns Namespace) (map[string]any, error)
}

// MapSource serves namespaces from an in-memory map.
type MapSource struct {
	Data map[locale.Language]map[Namespace]map[string]any
}

func (s *MapSource) LoadNamespace(_ context.Context, lang locale.Language, ns Namespace) (map[string]any, error) {
	langData, ok := s.Data[lang]
	if !ok {
		return nil, &MissingNamespaceError{Namespace: ns}
	}
	tree, ok := langData[ns]
	if !ok {
		return nil, &MissingNamespaceError{Namespace: ns}
	}
	return tree, nil
}

// candidate extensions tried when locating a namespace document, in order.
var sourceExtensions = []string{"json", "yaml", "yml"}

// FSSource reads namespace documents laid out as <lang>/<namespace>.<ext>
// inside an fs.FS, typically an embedded filesystem.
type FSSource struct {
	fsys   fs.FS
	parser Parser
}

// NewFSSource creates a source over fsys. Returns nil if either argument
// is missing.
func NewFSSource(fsys fs.FS, parser Parser) *FSSource {
	if fsys == nil || parser == nil {
		return nil
	}
	return &FSSource{fsys: fsys, parser: parser}
}

func (s *FSSource) LoadNamespace(ctx context.Context, lang locale.Language, ns Namespace) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	for _, ext := range sourceExtensions {
		if !s.parser.SupportsFileExtension(ext) {
			continue
		}
		name := path.Join(lang.String(), fmt.Sprintf("%s.%s", ns, ext))
		content, err := fs.ReadFile(s.fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, errors.Join(ErrReadFailed, err)
		}
		if len(content) == 0 {
			return nil, fmt.Errorf("%w: file '%s' is empty", ErrReadFailed, name)
		}
		return s.parser.Parse(ctx, content)
	}

	return nil, &MissingNamespaceError{Namespace: ns}
}

// NewDirSource creates a source over a locale root directory on disk, using
// the backend layout <root>/<lang>/<namespace>.json.
func NewDirSource(root string, parser Parser) *FSSource {
	if root == "" || parser == nil {
		return nil
	}
	return NewFSSource(os.DirFS(root), parser)
}

// maxNamespaceBody caps the size of a fetched namespace document. Message
// catalogs are small; anything larger indicates a broken endpoint.
const maxNamespaceBody = 1 << 20

// HTTPSource fetches namespace documents from a locales endpoint:
// GET <base>/locales/<lang>/<namespace>.json.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates a source backed by the locales network endpoint.
// Returns nil if baseURL is empty. A nil client falls back to
// http.DefaultClient.
func NewHTTPSource(baseURL string, client *http.Client) *HTTPSource {
	if baseURL == "" {
		return nil
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSource{baseURL: strings.TrimSuffix(baseURL, "/"), client: client}
}

func (s *HTTPSource) LoadNamespace(ctx context.Context, lang locale.Language, ns Namespace) (map[string]any, error) {
	url := fmt.Sprintf("%s/locales/%s/%s.json", s.baseURL, lang, ns)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNotFound {
		return nil, &MissingNamespaceError{Namespace: ns}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d for '%s'", ErrFetchFailed, resp.StatusCode, url)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxNamespaceBody))
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}

	return NewJSONParser().Parse(ctx, content)
}
