package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	for _, prod := range []bool{true, false} {
		l, err := New(prod)
		require.NoError(t, err)
		assert.NotNil(t, l)
	}
}

func TestFromContext(t *testing.T) {
	base := zap.NewExample()
	reqLog := base.With(zap.String("request_id", "abc"))

	ctx := WithContext(context.Background(), reqLog)
	assert.Same(t, reqLog, FromContext(ctx, base))
	assert.Same(t, base, FromContext(context.Background(), base))
	assert.NotNil(t, FromContext(context.Background(), nil))
}
