package punch

import "time"

// Punch is a single raw event captured by a biometric terminal. Rows are
// append-only; after ingestion only the sync/processed bookkeeping flags
// change.
type Punch struct {
	ID           int64
	BiometricID  string
	EmployeeID   *int64
	DeviceID     int64
	BranchID     int64
	PunchedAt    time.Time
	Type         *Type
	VerifyMethod *string
	WorkCode     *int
	IsManual     bool
	IsSynced     bool
	SyncedAt     *time.Time
	IsProcessed  bool
	ProcessedAt  *time.Time
	CreatedAt    time.Time

	// DTO
	EmployeeName *string
	BranchName   *string
	DeviceName   *string
}

// Type is the direction tag some terminals attach to an event. Older firmware
// leaves it empty, in which case position (first/last of the day) decides.
type Type string

const (
	TypeCheckIn  Type = "CheckIn"
	TypeCheckOut Type = "CheckOut"
)
