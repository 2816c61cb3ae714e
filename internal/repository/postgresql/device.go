package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/veritime/attend-backend-go/internal/domain/master/device"
	"github.com/veritime/attend-backend-go/internal/pkg/database"
)

type deviceRepositoryImpl struct {
	db *database.DB
}

func NewDeviceRepository(db *database.DB) device.DeviceRepository {
	return &deviceRepositoryImpl{db: db}
}

const deviceSelectColumns = `
	d.id, d.branch_id, d.device_name, d.ip_address, d.serial_number,
	d.is_active, d.created_at, b.branch_name
`

// GetActive implements device.DeviceRepository.
func (r *deviceRepositoryImpl) GetActive(ctx context.Context) ([]device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + deviceSelectColumns + `
		FROM devices d
		LEFT JOIN branches b ON b.id = d.branch_id
		WHERE d.is_active = TRUE
		ORDER BY d.device_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active devices: %w", err)
	}
	defer rows.Close()

	var devices []device.Device
	for rows.Next() {
		var dev device.Device
		err := rows.Scan(
			&dev.ID, &dev.BranchID, &dev.DeviceName, &dev.IPAddress, &dev.SerialNumber,
			&dev.IsActive, &dev.CreatedAt, &dev.BranchName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, dev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate devices: %w", err)
	}

	return devices, nil
}

// GetByID implements device.DeviceRepository.
func (r *deviceRepositoryImpl) GetByID(ctx context.Context, id int64) (device.Device, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + deviceSelectColumns + `
		FROM devices d
		LEFT JOIN branches b ON b.id = d.branch_id
		WHERE d.id = $1
	`

	var dev device.Device
	err := q.QueryRow(ctx, query, id).Scan(
		&dev.ID, &dev.BranchID, &dev.DeviceName, &dev.IPAddress, &dev.SerialNumber,
		&dev.IsActive, &dev.CreatedAt, &dev.BranchName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return device.Device{}, device.ErrDeviceNotFound
		}
		return device.Device{}, fmt.Errorf("failed to get device by id: %w", err)
	}

	return dev, nil
}
