package gqlapi_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/gqlapi"
)

func TestLoadError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := gqlapi.NewLoadError("schema.graphql", errors.New("unexpected }"))
		assert.Equal(t, "gqlapi: loading schema schema.graphql: unexpected }", err.Error())

		err = gqlapi.NewLoadError("", errors.New("no sources"))
		assert.Equal(t, "gqlapi: loading schema: no sources", err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := gqlapi.NewLoadError("a.graphql", errors.New("boom"))
		assert.True(t, errors.Is(err, gqlapi.ErrSchemaLoad))
		assert.False(t, errors.Is(err, gqlapi.ErrRender))
	})

	t.Run("IsLoadError", func(t *testing.T) {
		err := gqlapi.NewLoadError("a.graphql", errors.New("boom"))
		assert.True(t, gqlapi.IsLoadError(err))

		// Wrapped error
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, gqlapi.IsLoadError(wrapped))

		// Sentinel error
		assert.True(t, gqlapi.IsLoadError(gqlapi.ErrSchemaLoad))

		// Non-matching error
		assert.False(t, gqlapi.IsLoadError(errors.New("other error")))
		assert.False(t, gqlapi.IsLoadError(nil))
	})
}

func TestIntrospectionError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := gqlapi.NewIntrospectionError("http://api", 502, errors.New("bad gateway"))
		assert.Equal(t, "gqlapi: introspecting http://api (status 502): bad gateway", err.Error())

		err = gqlapi.NewIntrospectionError("http://api", 0, errors.New("refused"))
		assert.Equal(t, "gqlapi: introspecting http://api: refused", err.Error())
	})

	t.Run("Unwrap", func(t *testing.T) {
		cause := errors.New("refused")
		err := gqlapi.NewIntrospectionError("http://api", 0, cause)
		assert.True(t, errors.Is(err, cause))
		assert.True(t, errors.Is(err, gqlapi.ErrIntrospection))
		assert.True(t, gqlapi.IsIntrospectionError(fmt.Errorf("cli: %w", err)))
		assert.False(t, gqlapi.IsIntrospectionError(nil))
	})
}

func TestRenderError(t *testing.T) {
	err := gqlapi.NewRenderError("html", "out/API.html", errors.New("disk full"))
	assert.Equal(t, "gqlapi: rendering html to out/API.html: disk full", err.Error())
	assert.True(t, errors.Is(err, gqlapi.ErrRender))
	assert.True(t, gqlapi.IsRenderError(err))

	err = gqlapi.NewRenderError("json", "", errors.New("unsupported value"))
	assert.Equal(t, "gqlapi: rendering json: unsupported value", err.Error())
}

func TestAggregateError(t *testing.T) {
	t.Run("nil when no errors", func(t *testing.T) {
		assert.NoError(t, gqlapi.NewAggregateError())
		assert.NoError(t, gqlapi.NewAggregateError(nil, nil))
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		single := errors.New("only")
		assert.Same(t, single, gqlapi.NewAggregateError(nil, single))
	})

	t.Run("multiple errors", func(t *testing.T) {
		html := gqlapi.NewRenderError("html", "", errors.New("a"))
		md := gqlapi.NewRenderError("markdown", "", errors.New("b"))
		err := gqlapi.NewAggregateError(html, md)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "gqlapi: multiple errors:")
		assert.Contains(t, err.Error(), "[1] gqlapi: rendering html: a")
		assert.Contains(t, err.Error(), "[2] gqlapi: rendering markdown: b")
		assert.True(t, errors.Is(err, gqlapi.ErrRender))
	})
}
