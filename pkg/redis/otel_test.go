package redis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFirstKey(t *testing.T) {
	require.Equal(t, "wte:msg:m1", firstKey([]interface{}{"setnx", "wte:msg:m1", "1"}))
	require.Equal(t, "wte:lock:sweep", firstKey([]interface{}{"eval", "return 1", 1, "wte:lock:sweep", "owner"}))
	require.Equal(t, "", firstKey([]interface{}{"ping"}))
	require.Equal(t, "", firstKey([]interface{}{"eval", "return 1", 0}))
}
