package device

import "context"

// HealthService derives terminal liveness from the punch stream. No network
// probing: a device is online when it produced an event recently.
type HealthService interface {
	Health(ctx context.Context) ([]Health, error)
}
