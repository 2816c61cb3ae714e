package device

import "time"

type Device struct {
	ID           int64
	BranchID     int64
	DeviceName   string
	IPAddress    *string
	SerialNumber *string
	IsActive     bool
	CreatedAt    time.Time

	// DTO
	BranchName *string
}

// Health is a device's data-derived liveness: when the terminal last
// produced a punch, and whether that is recent enough to count as online.
type Health struct {
	DeviceID   int64      `json:"device_id"`
	DeviceName string     `json:"device_name"`
	BranchName string     `json:"branch_name"`
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
	Online     bool       `json:"online"`
}
