package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	for _, raw := range OrderStatusValues() {
		status, err := ParseOrderStatus(raw)
		require.NoError(t, err)
		assert.True(t, status.IsValid())
		assert.Equal(t, raw, status.String())
	}

	_, err := ParseOrderStatus("refunded")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pending")

	assert.False(t, OrderStatus("Delivered").IsValid())
}

func TestOrderStatusValuesOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"pending", "processing", "shipped", "delivered", "completed", "cancelled"},
		OrderStatusValues(),
	)
}

func TestParseIntegrationAndSyncStatus(t *testing.T) {
	status, err := ParseIntegrationStatus("connecting")
	require.NoError(t, err)
	assert.Equal(t, IntegrationStatusConnecting, status)

	_, err = ParseIntegrationStatus("paused")
	require.Error(t, err)

	sync, err := ParseSyncStatus("success")
	require.NoError(t, err)
	assert.True(t, sync.IsValid())

	_, err = ParseSyncStatus("done")
	require.Error(t, err)
}
