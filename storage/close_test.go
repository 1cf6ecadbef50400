package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloseAllContinuesAfterFailure(t *testing.T) {
	var order []string
	boom := errors.New("boom")

	err := closeAll(context.Background(), []closer{
		{name: "mq", close: func(context.Context) error { order = append(order, "mq"); return boom }},
		{name: "redis", close: func(context.Context) error { order = append(order, "redis"); return nil }},
		{name: "database", close: func(context.Context) error { order = append(order, "database"); return nil }},
	})

	require.ErrorIs(t, err, boom)
	require.Equal(t, []string{"mq", "redis", "database"}, order)
}
