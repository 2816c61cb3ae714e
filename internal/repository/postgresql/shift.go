package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/veritime/attend-backend-go/internal/domain/shift"
	"github.com/veritime/attend-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftSelectColumns = `
	id, shift_name, start_time, end_time, late_minutes, early_minutes,
	work_minutes, break_minutes, min_hours_for_full_day, max_regular_hours,
	is_overnight, is_active, created_at, updated_at
`

func scanShift(row pgx.Row) (shift.WorkShift, error) {
	var ws shift.WorkShift
	err := row.Scan(
		&ws.ID, &ws.Name, &ws.StartTime, &ws.EndTime, &ws.LateMinutes, &ws.EarlyMinutes,
		&ws.WorkMinutes, &ws.BreakMinutes, &ws.MinHoursForFullDay, &ws.MaxRegularHours,
		&ws.IsOvernight, &ws.IsActive, &ws.CreatedAt, &ws.UpdatedAt,
	)
	return ws, err
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id int64) (shift.WorkShift, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + shiftSelectColumns + " FROM work_shifts WHERE id = $1"

	ws, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.WorkShift{}, shift.ErrShiftNotFound
		}
		return shift.WorkShift{}, fmt.Errorf("failed to get shift by id: %w", err)
	}

	return ws, nil
}

// GetActive implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetActive(ctx context.Context) ([]shift.WorkShift, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + shiftSelectColumns + " FROM work_shifts WHERE is_active = TRUE ORDER BY start_time ASC"

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.WorkShift
	for rows.Next() {
		ws, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shifts: %w", err)
	}

	return shifts, nil
}

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

// GetActiveByEmployee implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetActiveByEmployee(ctx context.Context, employeeID int64) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			sa.id, sa.employee_id, sa.shift_id, sa.effective_from, sa.effective_to,
			sa.notes, sa.is_active, sa.created_at,
			ws.id, ws.shift_name, ws.start_time, ws.end_time, ws.late_minutes, ws.early_minutes,
			ws.work_minutes, ws.break_minutes, ws.min_hours_for_full_day, ws.max_regular_hours,
			ws.is_overnight, ws.is_active, ws.created_at, ws.updated_at
		FROM shift_assignments sa
		JOIN work_shifts ws ON ws.id = sa.shift_id
		WHERE sa.employee_id = $1 AND sa.is_active = TRUE
		ORDER BY sa.effective_from DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments by employee: %w", err)
	}
	defer rows.Close()

	var assignments []shift.Assignment
	for rows.Next() {
		var a shift.Assignment
		var ws shift.WorkShift
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.ShiftID, &a.EffectiveFrom, &a.EffectiveTo,
			&a.Notes, &a.IsActive, &a.CreatedAt,
			&ws.ID, &ws.Name, &ws.StartTime, &ws.EndTime, &ws.LateMinutes, &ws.EarlyMinutes,
			&ws.WorkMinutes, &ws.BreakMinutes, &ws.MinHoursForFullDay, &ws.MaxRegularHours,
			&ws.IsOvernight, &ws.IsActive, &ws.CreatedAt, &ws.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.Shift = &ws
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assignments: %w", err)
	}

	return assignments, nil
}

// Create implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, assignment shift.Assignment) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (
			employee_id, shift_id, effective_from, effective_to, notes, is_active
		) VALUES (
			$1, $2, $3, $4, $5, TRUE
		) RETURNING id, is_active, created_at
	`

	err := q.QueryRow(ctx, query,
		assignment.EmployeeID,
		assignment.ShiftID,
		assignment.EffectiveFrom,
		assignment.EffectiveTo,
		assignment.Notes,
	).Scan(&assignment.ID, &assignment.IsActive, &assignment.CreatedAt)

	if err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return assignment, nil
}
