package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessors_ZeroValues(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, RequestID(ctx))
	assert.Empty(t, ClientIP(ctx))
	assert.Empty(t, UserAgent(ctx))
	assert.Empty(t, DeviceLabel(ctx))
	assert.WithinDuration(t, time.Now(), Now(ctx), time.Second)
}

func TestAccessors_RoundTrip(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithClientMetadata(ctx, "10.0.0.1", "curl/8.0", "curl on unknown")
	ctx = WithTime(ctx, fixed)

	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "10.0.0.1", ClientIP(ctx))
	assert.Equal(t, "curl/8.0", UserAgent(ctx))
	assert.Equal(t, "curl on unknown", DeviceLabel(ctx))
	assert.Equal(t, fixed, Now(ctx))
}
