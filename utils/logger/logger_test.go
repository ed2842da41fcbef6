package logger

import (
	"context"
	"testing"

	"github.com/muhammadheryan/e-commerce-orders/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestCtx_AddsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := Get()
	Replace(zap.New(core))
	t.Cleanup(func() { Replace(prev) })

	ctx := context.WithValue(context.Background(), constant.RequestIDKey, "req-1")
	Ctx(ctx).Info("with id")
	Ctx(context.Background()).Info("without id")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestInit(t *testing.T) {
	prev := Get()
	t.Cleanup(func() { Replace(prev) })

	require.NoError(t, Init("production"))
	assert.NotNil(t, Get())
	require.NoError(t, Init("development"))
	assert.NotNil(t, Get())
}
