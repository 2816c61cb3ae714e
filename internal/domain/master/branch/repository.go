package branch

import "context"

type BranchRepository interface {
	// GetActive retrieves active branches ordered by branch code.
	GetActive(ctx context.Context) ([]Branch, error)
	GetByID(ctx context.Context, id int64) (Branch, error)
}
