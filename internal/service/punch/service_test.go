package punch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veritime/attend-backend-go/internal/domain/punch"
	"github.com/veritime/attend-backend-go/internal/pkg/validator"
)

type fakePunchRepo struct {
	punch.PunchRepository
	punches    []punch.Punch
	syncedIDs  map[int64]bool
	processed  map[int64]bool
	lastFilter punch.ListFilter
}

func newFakePunchRepo(punches ...punch.Punch) *fakePunchRepo {
	return &fakePunchRepo{
		punches:   punches,
		syncedIDs: make(map[int64]bool),
		processed: make(map[int64]bool),
	}
}

func (f *fakePunchRepo) List(ctx context.Context, filter punch.ListFilter) ([]punch.Punch, int64, error) {
	f.lastFilter = filter
	return f.punches, int64(len(f.punches)), nil
}

func (f *fakePunchRepo) MarkSynced(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		f.syncedIDs[id] = true
	}
	return nil
}

func (f *fakePunchRepo) MarkProcessed(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		f.processed[id] = true
	}
	return nil
}

func TestListAppliesPaginationDefaults(t *testing.T) {
	repo := newFakePunchRepo(punch.Punch{ID: 1, BiometricID: "1001", PunchedAt: time.Now()})
	svc := NewPunchService(repo)

	result, err := svc.List(context.Background(), punch.ListFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.lastFilter.Page)
	assert.Equal(t, 50, repo.lastFilter.Limit)
	assert.Equal(t, int64(1), result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
	require.Len(t, result.Punches, 1)
	assert.Equal(t, "1001", result.Punches[0].BiometricID)
}

func TestListCapsLimit(t *testing.T) {
	repo := newFakePunchRepo()
	svc := NewPunchService(repo)

	_, err := svc.List(context.Background(), punch.ListFilter{Page: 2, Limit: 10_000})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.lastFilter.Page)
	assert.Equal(t, 200, repo.lastFilter.Limit)
}

func TestListRejectsBadDates(t *testing.T) {
	svc := NewPunchService(newFakePunchRepo())

	from := "not-a-date"
	_, err := svc.List(context.Background(), punch.ListFilter{FromDate: &from})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestMarkSyncedRequiresIDs(t *testing.T) {
	svc := NewPunchService(newFakePunchRepo())

	err := svc.MarkSynced(context.Background(), punch.MarkRequest{})

	assert.ErrorIs(t, err, punch.ErrNoPunchIDs)
}

func TestMarkSyncedIsIdempotent(t *testing.T) {
	repo := newFakePunchRepo()
	svc := NewPunchService(repo)
	req := punch.MarkRequest{IDs: []int64{1, 2}}

	require.NoError(t, svc.MarkSynced(context.Background(), req))
	require.NoError(t, svc.MarkSynced(context.Background(), req))

	assert.True(t, repo.syncedIDs[1])
	assert.True(t, repo.syncedIDs[2])
}

func TestMarkProcessed(t *testing.T) {
	repo := newFakePunchRepo()
	svc := NewPunchService(repo)

	err := svc.MarkProcessed(context.Background(), punch.MarkRequest{IDs: []int64{7}})

	require.NoError(t, err)
	assert.True(t, repo.processed[7])
}
