package unit

import (
	"testing"

	"github.com/go-cds/cds/errors"
	"github.com/stretchr/testify/require"
)

func TestParseValidUnits(t *testing.T) {
	parser := CreateParser()
	for _, token := range []string{"mag", "km/s", "arcsec", "deg2", "10-7W/m2", "solMass", "mas/yr", "kpc"} {
		parsed, err := parser.Parse(token)
		require.Nil(t, err, "expected %q to parse", token)
		require.Equal(t, token, parsed.Raw)
	}
}

func TestParseUnknownSymbol(t *testing.T) {
	parser := CreateParser()
	_, err := parser.Parse("furlongs")
	require.NotNil(t, err)
	require.IsType(t, errors.UnitError{}, err)
}

func TestParseMalformedToken(t *testing.T) {
	parser := CreateParser()

	// trailing quotient with no divisor
	_, err := parser.Parse("km/")
	require.NotNil(t, err)
	require.IsType(t, errors.UnitError{}, err)

	_, err = parser.Parse("")
	require.NotNil(t, err)
}
