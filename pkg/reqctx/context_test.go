package reqctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestMeta(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))

	_, ok := RequestMetaFromContext(WithRequestMeta(ctx, nil))
	assert.False(t, ok)

	ctx = WithRequestMeta(ctx, &RequestMeta{RequestID: "req-1", ClientIP: "10.0.0.1"})
	meta, ok := RequestMetaFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "10.0.0.1", meta.ClientIP)
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
}
