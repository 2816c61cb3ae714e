package punch

import (
	"context"
	"fmt"

	"github.com/veritime/attend-backend-go/internal/domain/punch"
	"github.com/veritime/attend-backend-go/internal/pkg/metrics"
)

const (
	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 200
)

type serviceImpl struct {
	punchRepo punch.PunchRepository
}

func NewPunchService(punchRepo punch.PunchRepository) punch.PunchService {
	return &serviceImpl{punchRepo: punchRepo}
}

// List implements punch.PunchService.
func (s *serviceImpl) List(ctx context.Context, filter punch.ListFilter) (punch.ListPunchesResponse, error) {
	if err := filter.Validate(); err != nil {
		return punch.ListPunchesResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	punches, totalCount, err := s.punchRepo.List(ctx, filter)
	if err != nil {
		return punch.ListPunchesResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, mapPunchToResponse(p))
	}

	totalPages := int(totalCount) / filter.Limit
	if int(totalCount)%filter.Limit > 0 {
		totalPages++
	}

	return punch.ListPunchesResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Punches:    responses,
	}, nil
}

// MarkSynced implements punch.PunchService.
func (s *serviceImpl) MarkSynced(ctx context.Context, req punch.MarkRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.punchRepo.MarkSynced(ctx, req.IDs); err != nil {
		return fmt.Errorf("failed to mark punches synced: %w", err)
	}

	metrics.AddPunchesMarked("synced", len(req.IDs))
	return nil
}

// MarkProcessed implements punch.PunchService.
func (s *serviceImpl) MarkProcessed(ctx context.Context, req punch.MarkRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.punchRepo.MarkProcessed(ctx, req.IDs); err != nil {
		return fmt.Errorf("failed to mark punches processed: %w", err)
	}

	metrics.AddPunchesMarked("processed", len(req.IDs))
	return nil
}

func mapPunchToResponse(p punch.Punch) punch.PunchResponse {
	return punch.PunchResponse{
		ID:           p.ID,
		BiometricID:  p.BiometricID,
		EmployeeName: p.EmployeeName,
		BranchName:   p.BranchName,
		DeviceName:   p.DeviceName,
		PunchedAt:    p.PunchedAt.Format("2006-01-02 15:04:05"),
		Type:         p.Type,
		VerifyMethod: p.VerifyMethod,
		IsManual:     p.IsManual,
		IsSynced:     p.IsSynced,
		IsProcessed:  p.IsProcessed,
	}
}
