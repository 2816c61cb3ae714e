package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/veritime/attend-backend-go/internal/domain/master/branch"
	"github.com/veritime/attend-backend-go/internal/pkg/database"
)

type branchRepositoryImpl struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepositoryImpl{db: db}
}

// GetActive implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetActive(ctx context.Context) ([]branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, branch_code, branch_name, address, is_active, created_at
		FROM branches
		WHERE is_active = TRUE
		ORDER BY branch_code ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active branches: %w", err)
	}
	defer rows.Close()

	var branches []branch.Branch
	for rows.Next() {
		var b branch.Branch
		if err := rows.Scan(&b.ID, &b.BranchCode, &b.BranchName, &b.Address, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	return branches, nil
}

// GetByID implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetByID(ctx context.Context, id int64) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, branch_code, branch_name, address, is_active, created_at
		FROM branches
		WHERE id = $1
	`

	var b branch.Branch
	err := q.QueryRow(ctx, query, id).Scan(&b.ID, &b.BranchCode, &b.BranchName, &b.Address, &b.IsActive, &b.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch by id: %w", err)
	}

	return b, nil
}
