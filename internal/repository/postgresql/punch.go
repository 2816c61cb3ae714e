package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/veritime/attend-backend-go/internal/domain/punch"
	"github.com/veritime/attend-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

const punchSelectColumns = `
	al.id, al.biometric_id, al.employee_id, al.device_id, al.branch_id,
	al.punched_at, al.punch_type, al.verify_method, al.work_code,
	al.is_manual, al.is_synced, al.synced_at, al.is_processed, al.processed_at,
	al.created_at,
	e.full_name, b.branch_name, d.device_name
`

const punchFromClause = `
	FROM attendance_logs al
	LEFT JOIN employees e ON e.biometric_id = al.biometric_id
	LEFT JOIN branches b ON b.id = al.branch_id
	LEFT JOIN devices d ON d.id = al.device_id
`

func scanPunchRows(rows pgx.Rows) ([]punch.Punch, error) {
	var punches []punch.Punch
	for rows.Next() {
		var p punch.Punch
		err := rows.Scan(
			&p.ID, &p.BiometricID, &p.EmployeeID, &p.DeviceID, &p.BranchID,
			&p.PunchedAt, &p.Type, &p.VerifyMethod, &p.WorkCode,
			&p.IsManual, &p.IsSynced, &p.SyncedAt, &p.IsProcessed, &p.ProcessedAt,
			&p.CreatedAt,
			&p.EmployeeName, &p.BranchName, &p.DeviceName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}
	return punches, nil
}

// GetByDateRange implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByDateRange(ctx context.Context, from, to time.Time, filter punch.RangeFilter) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"al.punched_at >= $1", "al.punched_at < $2"}
	args := []any{from, to}

	if filter.BranchID != nil {
		args = append(args, *filter.BranchID)
		conditions = append(conditions, fmt.Sprintf("al.branch_id = $%d", len(args)))
	}
	if filter.DeviceID != nil {
		args = append(args, *filter.DeviceID)
		conditions = append(conditions, fmt.Sprintf("al.device_id = $%d", len(args)))
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(al.biometric_id ILIKE $%d OR e.full_name ILIKE $%d)", len(args), len(args)))
	}

	query := "SELECT " + punchSelectColumns + punchFromClause +
		" WHERE " + strings.Join(conditions, " AND ") +
		" ORDER BY al.punched_at ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get punches by date range: %w", err)
	}
	defer rows.Close()

	return scanPunchRows(rows)
}

// GetByEmployeeAndDate implements punch.PunchRepository.
func (r *punchRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, biometricID string, date time.Time) ([]punch.Punch, error) {
	q := GetQuerier(ctx, r.db)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := "SELECT " + punchSelectColumns + punchFromClause + `
		WHERE al.biometric_id = $1
		  AND al.punched_at >= $2
		  AND al.punched_at < $3
		ORDER BY al.punched_at ASC
	`

	rows, err := q.Query(ctx, query, biometricID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get punches by employee and date: %w", err)
	}
	defer rows.Close()

	return scanPunchRows(rows)
}

// List implements punch.PunchRepository.
func (r *punchRepositoryImpl) List(ctx context.Context, filter punch.ListFilter) ([]punch.Punch, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	var args []any

	if filter.FromDate != nil && *filter.FromDate != "" {
		args = append(args, *filter.FromDate)
		conditions = append(conditions, fmt.Sprintf("al.punched_at >= $%d::date", len(args)))
	}
	if filter.ToDate != nil && *filter.ToDate != "" {
		args = append(args, *filter.ToDate)
		conditions = append(conditions, fmt.Sprintf("al.punched_at < $%d::date + INTERVAL '1 day'", len(args)))
	}
	if filter.BranchID != nil {
		args = append(args, *filter.BranchID)
		conditions = append(conditions, fmt.Sprintf("al.branch_id = $%d", len(args)))
	}
	if filter.DeviceID != nil {
		args = append(args, *filter.DeviceID)
		conditions = append(conditions, fmt.Sprintf("al.device_id = $%d", len(args)))
	}
	if filter.Search != nil && *filter.Search != "" {
		args = append(args, "%"+*filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(al.biometric_id ILIKE $%d OR e.full_name ILIKE $%d)", len(args), len(args)))
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	var totalCount int64
	countQuery := "SELECT COUNT(*)" + punchFromClause + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count punches: %w", err)
	}

	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	query := "SELECT " + punchSelectColumns + punchFromClause + whereClause +
		fmt.Sprintf(" ORDER BY al.punched_at %s LIMIT $%d OFFSET $%d", sortOrder, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	punches, err := scanPunchRows(rows)
	if err != nil {
		return nil, 0, err
	}

	return punches, totalCount, nil
}

// Exists implements punch.PunchRepository.
func (r *punchRepositoryImpl) Exists(ctx context.Context, biometricID string, punchedAt time.Time, deviceID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_logs
			WHERE biometric_id = $1 AND punched_at = $2 AND device_id = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, biometricID, punchedAt, deviceID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check punch existence: %w", err)
	}

	return exists, nil
}

// MarkSynced implements punch.PunchRepository.
func (r *punchRepositoryImpl) MarkSynced(ctx context.Context, ids []int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_logs
		SET is_synced = TRUE, synced_at = NOW()
		WHERE id = ANY($1) AND is_synced = FALSE
	`

	if _, err := q.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("failed to mark punches synced: %w", err)
	}

	return nil
}

// MarkProcessed implements punch.PunchRepository.
func (r *punchRepositoryImpl) MarkProcessed(ctx context.Context, ids []int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_logs
		SET is_processed = TRUE, processed_at = NOW()
		WHERE id = ANY($1) AND is_processed = FALSE
	`

	if _, err := q.Exec(ctx, query, ids); err != nil {
		return fmt.Errorf("failed to mark punches processed: %w", err)
	}

	return nil
}

// LastSeenByDevice implements punch.PunchRepository.
func (r *punchRepositoryImpl) LastSeenByDevice(ctx context.Context) (map[int64]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT device_id, MAX(punched_at)
		FROM attendance_logs
		GROUP BY device_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get last seen by device: %w", err)
	}
	defer rows.Close()

	lastSeen := make(map[int64]time.Time)
	for rows.Next() {
		var deviceID int64
		var seenAt time.Time
		if err := rows.Scan(&deviceID, &seenAt); err != nil {
			return nil, fmt.Errorf("failed to scan last seen row: %w", err)
		}
		lastSeen[deviceID] = seenAt
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate last seen rows: %w", err)
	}

	return lastSeen, nil
}
