package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"bluerobins/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
)

func quotaErr() error {
	return &googleapi.Error{
		Code: 403,
		Errors: []googleapi.ErrorItem{
			{Reason: "rateLimitExceeded"},
		},
	}
}

func newTestClient(delays *[]time.Duration) *GoogleEventClient {
	return &GoogleEventClient{
		baseDelay: defaultRetryDelay,
		sleep: func(d time.Duration) {
			*delays = append(*delays, d)
		},
		logger: zap.NewNop(),
	}
}

func TestRetryOnQuotaSucceedsAfterTwoFailures(t *testing.T) {
	var delays []time.Duration
	client := newTestClient(&delays)

	calls := 0
	err := client.retryOnQuota(func() error {
		calls++
		if calls <= 2 {
			return quotaErr()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls, "exactly three calls expected")
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, delays)
}

func TestRetryOnQuotaGivesUpAfterCeiling(t *testing.T) {
	var delays []time.Duration
	client := newTestClient(&delays)

	calls := 0
	err := client.retryOnQuota(func() error {
		calls++
		return quotaErr()
	})

	require.Error(t, err)
	assert.Equal(t, 1+maxQuotaRetries, calls)
	assert.Equal(t, []time.Duration{
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
		32 * time.Second,
	}, delays)
}

func TestRetryOnQuotaDoesNotRetryOtherErrors(t *testing.T) {
	var delays []time.Duration
	client := newTestClient(&delays)

	boom := errors.New("network down")
	calls := 0
	err := client.retryOnQuota(func() error {
		calls++
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
	assert.Empty(t, delays)
}

func TestIsQuotaError(t *testing.T) {
	assert.True(t, isQuotaError(quotaErr()))
	assert.True(t, isQuotaError(&googleapi.Error{Code: 429}))
	assert.False(t, isQuotaError(&googleapi.Error{Code: 403, Errors: []googleapi.ErrorItem{{Reason: "forbidden"}}}))
	assert.False(t, isQuotaError(&googleapi.Error{Code: 500}))
	assert.False(t, isQuotaError(errors.New("plain error")))
}

func TestDegradedModeReturnsSuccessWithoutEvent(t *testing.T) {
	var delays []time.Duration
	client := newTestClient(&delays)

	res := client.CreateEvent(context.Background(), models.EventRequest{
		Summary: "Intro session",
		Start:   time.Now(),
		End:     time.Now().Add(time.Hour),
	})

	assert.True(t, res.Success)
	assert.Empty(t, res.EventID)
	assert.Empty(t, res.MeetLink)

	upd := client.UpdateEventTime(context.Background(), "evt", time.Now(), time.Now().Add(time.Hour))
	assert.True(t, upd.Success)
}
