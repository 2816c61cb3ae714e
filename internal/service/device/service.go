package device

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/veritime/attend-backend-go/internal/domain/master/device"
	"github.com/veritime/attend-backend-go/internal/domain/punch"
	"github.com/veritime/attend-backend-go/internal/pkg/metrics"
)

type Service struct {
	deviceRepo      device.DeviceRepository
	punchRepo       punch.PunchRepository
	onlineThreshold time.Duration
	now             func() time.Time
}

func NewHealthService(deviceRepo device.DeviceRepository, punchRepo punch.PunchRepository, onlineThreshold time.Duration) *Service {
	return &Service{
		deviceRepo:      deviceRepo,
		punchRepo:       punchRepo,
		onlineThreshold: onlineThreshold,
		now:             time.Now,
	}
}

// Health implements device.HealthService.
func (s *Service) Health(ctx context.Context) ([]device.Health, error) {
	devices, err := s.deviceRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get devices: %w", err)
	}

	lastSeen, err := s.punchRepo.LastSeenByDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get device activity: %w", err)
	}

	now := s.now()
	health := make([]device.Health, 0, len(devices))
	for _, dev := range devices {
		h := device.Health{
			DeviceID:   dev.ID,
			DeviceName: dev.DeviceName,
		}
		if dev.BranchName != nil {
			h.BranchName = *dev.BranchName
		}
		if seenAt, ok := lastSeen[dev.ID]; ok {
			seen := seenAt
			h.LastSeenAt = &seen
			h.Online = now.Sub(seenAt) <= s.onlineThreshold
		}

		metrics.SetDeviceOnline(dev.DeviceName, h.Online)
		health = append(health, h)
	}

	return health, nil
}

// Sweep refreshes the online gauges and logs terminals that went quiet. Run
// periodically by the scheduler.
func (s *Service) Sweep(ctx context.Context) {
	health, err := s.Health(ctx)
	if err != nil {
		slog.Error("device health sweep failed", "error", err)
		return
	}

	for _, h := range health {
		if !h.Online {
			slog.Warn("device has gone quiet",
				"device_id", h.DeviceID,
				"device_name", h.DeviceName,
				"last_seen_at", h.LastSeenAt,
			)
		}
	}
}
