package device

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritime/attend-backend-go/internal/domain/master/device"
	"github.com/veritime/attend-backend-go/internal/domain/punch"
)

type fakeDeviceRepo struct {
	device.DeviceRepository
	devices []device.Device
}

func (f *fakeDeviceRepo) GetActive(ctx context.Context) ([]device.Device, error) {
	return f.devices, nil
}

type fakePunchRepo struct {
	punch.PunchRepository
	lastSeen map[int64]time.Time
}

func (f *fakePunchRepo) LastSeenByDevice(ctx context.Context) (map[int64]time.Time, error) {
	return f.lastSeen, nil
}

func TestHealthClassifiesByLastSeen(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	branchName := "Headquarters"
	svc := NewHealthService(
		&fakeDeviceRepo{devices: []device.Device{
			{ID: 1, DeviceName: "Lobby", BranchName: &branchName},
			{ID: 2, DeviceName: "Warehouse", BranchName: &branchName},
			{ID: 3, DeviceName: "New Terminal", BranchName: &branchName},
		}},
		&fakePunchRepo{lastSeen: map[int64]time.Time{
			1: now.Add(-5 * time.Minute),
			2: now.Add(-2 * time.Hour),
		}},
		15*time.Minute,
	)
	svc.now = func() time.Time { return now }

	health, err := svc.Health(context.Background())
	require.NoError(t, err)
	require.Len(t, health, 3)

	assert.True(t, health[0].Online)
	require.NotNil(t, health[0].LastSeenAt)
	assert.Equal(t, now.Add(-5*time.Minute), *health[0].LastSeenAt)

	assert.False(t, health[1].Online)

	// Never produced a punch: offline with no last-seen timestamp.
	assert.False(t, health[2].Online)
	assert.Nil(t, health[2].LastSeenAt)
}

func TestHealthThresholdBoundary(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewHealthService(
		&fakeDeviceRepo{devices: []device.Device{{ID: 1, DeviceName: "Lobby"}}},
		&fakePunchRepo{lastSeen: map[int64]time.Time{1: now.Add(-15 * time.Minute)}},
		15*time.Minute,
	)
	svc.now = func() time.Time { return now }

	health, err := svc.Health(context.Background())
	require.NoError(t, err)

	// Exactly at the threshold still counts as online.
	assert.True(t, health[0].Online)
}
