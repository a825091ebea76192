package validator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/punchkit/punchkit/pkg/validator"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	messages := testMessages(t)

	t.Run("valid addresses", func(t *testing.T) {
		t.Parallel()
		valid := []string{
			"a@b.co",
			"user@example.com",
			"first.last@sub.example.org",
		}
		for _, email := range valid {
			assert.Nil(t, validator.ValidateEmail(messages, email), "email should be valid: %s", email)
		}
	})

	t.Run("too short", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateEmail(messages, "a@b")
		require.NotNil(t, err)
		assert.Equal(t, "email", err.Field)
		assert.Contains(t, err.Message, "Email is too short")
	})

	t.Run("too long", func(t *testing.T) {
		t.Parallel()
		email := strings.Repeat("a", 250) + "@b.co"
		err := validator.ValidateEmail(messages, email)
		require.NotNil(t, err)
		assert.Contains(t, err.Message, "Email is too long")
	})

	t.Run("consecutive at signs fail the domain structure rule", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateEmail(messages, "a@@b.co")
		require.NotNil(t, err)
		assert.Equal(t, "Email domain is invalid", err.Message)
	})

	t.Run("consecutive dots", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateEmail(messages, "user..name@b.co")
		require.NotNil(t, err)
		assert.Equal(t, "Email must not contain consecutive dots", err.Message)
	})

	t.Run("leading dot", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateEmail(messages, ".user@b.co")
		require.NotNil(t, err)
		assert.Equal(t, "Email must not start or end with a dot", err.Message)
	})

	t.Run("no domain dot", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateEmail(messages, "user@b")
		require.NotNil(t, err)
		assert.Equal(t, "Email must contain a dot, domain is invalid", err.Message)
	})

	t.Run("at after final dot", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateEmail(messages, "user.name@b")
		require.NotNil(t, err)
		assert.Contains(t, err.Message, "must have the '@' before the domain dot")
	})

	t.Run("whitespace rejected", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateEmail(messages, "us er@b.co")
		require.NotNil(t, err)
		assert.Contains(t, err.Message, "contains invalid characters")
	})

	t.Run("non-ascii rejected", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateEmail(messages, "usér@b.co")
		require.NotNil(t, err)
		assert.Contains(t, err.Message, "contains invalid characters")
	})

	t.Run("domain starting with dot", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateEmail(messages, "user@.b.co")
		require.NotNil(t, err)
		assert.Contains(t, err.Message, "domain must not start with a dot")
	})

	t.Run("short first subdomain segment", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateEmail(messages, "user@a.b.com")
		require.NotNil(t, err)
		assert.Equal(t, "Email domain name is too short", err.Message)
	})

	t.Run("numeric tld", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateEmail(messages, "user@example.c1")
		require.NotNil(t, err)
		assert.Equal(t, "Email top-level domain is invalid", err.Message)
	})

	t.Run("single letter tld", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidateEmail(messages, "user@example.c")
		require.NotNil(t, err)
		assert.Equal(t, "Email top-level domain is invalid", err.Message)
	})
}
