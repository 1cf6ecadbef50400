package snowflake

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTaggedIDsAreUniqueAndPrefixed(t *testing.T) {
	require.NoError(t, Init(3, 2))

	a, err := Tagged("delta")
	require.NoError(t, err)
	b, err := Tagged("delta")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(a, "delta_"))
	require.NotEqual(t, a, b)
}
