package device

import "context"

type DeviceRepository interface {
	// GetActive retrieves active devices ordered by name, with the branch
	// name DTO field populated.
	GetActive(ctx context.Context) ([]Device, error)
	GetByID(ctx context.Context, id int64) (Device, error)
}
