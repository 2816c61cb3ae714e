package branch

import "time"

type Branch struct {
	ID         int64
	BranchCode string
	BranchName string
	Address    *string
	IsActive   bool
	CreatedAt  time.Time
}
