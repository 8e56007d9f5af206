package cds

import (
	"testing"

	"github.com/go-cds/cds/errors"
	"github.com/stretchr/testify/require"
)

func TestResolveTypeClass(t *testing.T) {
	class, err := ResolveTypeClass("I3", "Index")
	require.Nil(t, err)
	require.Equal(t, Integer, class)

	class, err = ResolveTypeClass("F5.2", "RAs")
	require.Nil(t, err)
	require.Equal(t, Float, class)

	class, err = ResolveTypeClass("E10.3", "Flux")
	require.Nil(t, err)
	require.Equal(t, Float, class)

	class, err = ResolveTypeClass("A10", "Name")
	require.Nil(t, err)
	require.Equal(t, String, class)

	// a leading repeat count is skipped
	class, err = ResolveTypeClass("2F8.2", "Coords")
	require.Nil(t, err)
	require.Equal(t, Float, class)
}

func TestResolveTypeClassUnrecognized(t *testing.T) {
	_, err := ResolveTypeClass("X4", "Weird")
	require.NotNil(t, err)
	require.IsType(t, errors.UnrecognizedTypeError{}, err)
}

func TestColumnFillValue(t *testing.T) {
	require.Equal(t, "nan", (&Column{Class: Float}).FillValue())
	require.Equal(t, "0", (&Column{Class: Integer}).FillValue())
	require.Equal(t, "0", (&Column{Class: String}).FillValue())
}
