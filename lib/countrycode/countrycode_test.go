package countrycode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveKnownNames(t *testing.T) {
	resolver := NewResolver()

	testCases := []struct {
		name string
		code string
	}{
		{name: "Canada", code: "CAN"},
		{name: "Netherlands", code: "NLD"},
		{name: "United Kingdom", code: "GBR"},
		{name: "Taiwan, Province of China", code: "TWN"},
	}

	for _, test := range testCases {
		code, ok, err := resolver.Resolve(test.name)
		require.NoError(t, err, "name: %q", test.name)
		require.True(t, ok, "name: %q", test.name)
		require.Equal(t, test.code, code, "name: %q", test.name)
	}
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	resolver := NewResolver()

	code, ok, err := resolver.Resolve("canada")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "CAN", code)
}

func TestResolveMissIsNotAnError(t *testing.T) {
	resolver := NewResolver()

	code, ok, err := resolver.Resolve("Atlantis")
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, code)
}

func TestRegionName(t *testing.T) {
	resolver := NewResolver()

	region, err := resolver.RegionName("NLD")
	require.NoError(t, err)
	require.Equal(t, "Netherlands", region)

	_, err = resolver.RegionName("XXX")
	require.Error(t, err)
}

func TestSuggest(t *testing.T) {
	resolver := NewResolver()

	require.Equal(t, "Netherlands", resolver.Suggest("Netherland"))
	require.Equal(t, "Canada", resolver.Suggest("canada"))
}
