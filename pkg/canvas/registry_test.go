// pkg/canvas/registry_test.go
package canvas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	s := NewSurface("main", 640, 480, 1)
	reg.Add(s)

	got, err := reg.Lookup("main")
	require.NoError(t, err)
	assert.Same(t, s, got)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistryLookupMissing(t *testing.T) {
	reg := NewRegistry()
	reg.Add(NewSurface("main", 640, 480, 1))

	got, err := reg.Lookup("missing-id")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "missing-id")
}

func TestRegistryAddReplacesSameID(t *testing.T) {
	reg := NewRegistry()
	first := NewSurface("main", 10, 10, 1)
	second := NewSurface("main", 20, 20, 1)
	reg.Add(first)
	reg.Add(second)

	got, err := reg.Lookup("main")
	require.NoError(t, err)
	assert.Same(t, second, got)
	assert.Equal(t, 1, reg.Len())
}
