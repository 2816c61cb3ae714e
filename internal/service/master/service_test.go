package master

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritime/attend-backend-go/internal/domain/employee"
	"github.com/veritime/attend-backend-go/internal/domain/master/branch"
	"github.com/veritime/attend-backend-go/internal/pkg/cache"
)

type countingEmployeeRepo struct {
	employee.EmployeeRepository
	active []employee.Employee
	calls  int
}

func (f *countingEmployeeRepo) GetActive(ctx context.Context, departmentID *int64) ([]employee.Employee, error) {
	f.calls++
	if departmentID == nil {
		return f.active, nil
	}
	var out []employee.Employee
	for _, emp := range f.active {
		if emp.DepartmentID != nil && *emp.DepartmentID == *departmentID {
			out = append(out, emp)
		}
	}
	return out, nil
}

type countingBranchRepo struct {
	branch.BranchRepository
	branches []branch.Branch
	calls    int
}

func (f *countingBranchRepo) GetActive(ctx context.Context) ([]branch.Branch, error) {
	f.calls++
	return f.branches, nil
}

func newTestLookup(t *testing.T, empRepo *countingEmployeeRepo, branchRepo *countingBranchRepo) *LookupService {
	t.Helper()
	mr := miniredis.RunT(t)
	c := cache.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return NewLookupService(c, empRepo, branchRepo, nil, nil, nil)
}

func TestActiveEmployeesCachesPerDepartment(t *testing.T) {
	ctx := context.Background()
	deptA, deptB := int64(1), int64(2)
	repo := &countingEmployeeRepo{active: []employee.Employee{
		{ID: 1, BiometricID: "1001", FullName: "Ana", DepartmentID: &deptA},
		{ID: 2, BiometricID: "1002", FullName: "Bruno", DepartmentID: &deptB},
	}}
	svc := newTestLookup(t, repo, &countingBranchRepo{})

	first, err := svc.ActiveEmployees(ctx, &deptA)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Second read for the same department is served from cache.
	second, err := svc.ActiveEmployees(ctx, &deptA)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls)

	// A different department is a different cache entry.
	_, err = svc.ActiveEmployees(ctx, &deptB)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestInvalidateEmployeesDropsAllVariants(t *testing.T) {
	ctx := context.Background()
	deptA := int64(1)
	repo := &countingEmployeeRepo{active: []employee.Employee{
		{ID: 1, BiometricID: "1001", FullName: "Ana", DepartmentID: &deptA},
	}}
	svc := newTestLookup(t, repo, &countingBranchRepo{})

	_, err := svc.ActiveEmployees(ctx, nil)
	require.NoError(t, err)
	_, err = svc.ActiveEmployees(ctx, &deptA)
	require.NoError(t, err)
	require.Equal(t, 2, repo.calls)

	svc.InvalidateEmployees(ctx)

	_, err = svc.ActiveEmployees(ctx, nil)
	require.NoError(t, err)
	_, err = svc.ActiveEmployees(ctx, &deptA)
	require.NoError(t, err)
	assert.Equal(t, 4, repo.calls)
}

func TestActiveBranchesCaches(t *testing.T) {
	ctx := context.Background()
	repo := &countingBranchRepo{branches: []branch.Branch{
		{ID: 1, BranchCode: "HQ", BranchName: "Headquarters", IsActive: true},
	}}
	svc := newTestLookup(t, &countingEmployeeRepo{}, repo)

	first, err := svc.ActiveBranches(ctx)
	require.NoError(t, err)
	second, err := svc.ActiveBranches(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls)

	svc.InvalidateMasters(ctx)
	_, err = svc.ActiveBranches(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}
