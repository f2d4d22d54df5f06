package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryBackoff_WithinJitterBounds(t *testing.T) {
	for attempt := 0; attempt < connectAttempts; attempt++ {
		base := retryBaseWait << attempt
		lo := time.Duration(float64(base) * (1 - retryJitterFraction))
		hi := time.Duration(float64(base) * (1 + retryJitterFraction))

		for i := 0; i < 20; i++ {
			d := retryBackoff(attempt)
			assert.GreaterOrEqual(t, d, lo)
			assert.LessOrEqual(t, d, hi)
		}
	}
}

func TestRetryBackoff_NegativeAttemptUsesBase(t *testing.T) {
	d := retryBackoff(-3)
	assert.GreaterOrEqual(t, d, time.Duration(float64(retryBaseWait)*(1-retryJitterFraction)))
	assert.LessOrEqual(t, d, time.Duration(float64(retryBaseWait)*(1+retryJitterFraction)))
}

func TestWaitRetry_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := waitRetry(ctx, 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := PostgresConfig{
		Host: "db", Port: 5433, User: "store", Password: "pw", DBName: "storefront", SSLMode: "disable",
	}
	assert.Equal(t, "postgres://store:pw@db:5433/storefront?sslmode=disable", cfg.DSN())
}
