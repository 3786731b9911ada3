package app

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osa-filters/internal/filters"
)

func TestEval(t *testing.T) {
	ctx := context.Background()
	service, err := NewService(ctx)
	require.NoError(t, err)

	result, err := service.Eval(ctx, EvalRequest{
		Filter: "netloc_no_port",
		Args:   filters.Args{"https://example.com:8443/path"},
	})
	require.NoError(t, err)
	assert.Equal(t, "example.com", result.Value)
}

func TestEvalUnknownFilter(t *testing.T) {
	ctx := context.Background()
	service, err := NewService(ctx)
	require.NoError(t, err)

	_, err = service.Eval(ctx, EvalRequest{Filter: "nope"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
