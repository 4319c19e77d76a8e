package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDatetimeAvailability(t *testing.T) {
	uc := NewCheckDatetimeAvailability(testBooking())
	ctx := context.Background()

	res, err := uc.Execute(ctx, CheckAvailabilityInput{Date: "2026-03-17", Time: "10:00"})
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Reason)

	res, err = uc.Execute(ctx, CheckAvailabilityInput{Date: "2026-03-07", Time: "10:00"})
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Contains(t, res.Reason, "weekends")
	assert.Equal(t, testNow, res.Now)
}

func TestCheckDatetimeAvailability_BrokenRules(t *testing.T) {
	b := testBooking()
	b.Rules.CloseTime = "late"

	_, err := NewCheckDatetimeAvailability(b).Execute(context.Background(), CheckAvailabilityInput{
		Date: "2026-03-17", Time: "10:00",
	})
	assert.Error(t, err)
}
