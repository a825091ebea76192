package validator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/punchkit/punchkit/locales"
	"github.com/punchkit/punchkit/pkg/catalog"
	"github.com/punchkit/punchkit/pkg/locale"
)

// testMessages loads the bundled English validation messages, so the tests
// exercise the same catalog the server ships with.
func testMessages(t *testing.T) catalog.MessageLookup {
	t.Helper()

	c, err := catalog.Load(
		context.Background(),
		catalog.NewFSSource(locales.FS(), catalog.NewJSONParser()),
		locale.English,
		catalog.WithNamespaces(catalog.NamespaceValidation),
	)
	require.NoError(t, err)
	return c
}

func ptr(s string) *string { return &s }
