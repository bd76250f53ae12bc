package services

import (
	"context"

	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driven"
	"github.com/custodia-labs/linkscope/internal/core/ports/driving"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService reads archived analysis runs.
type ReportService struct {
	store driven.SnapshotStore
}

// NewReportService creates a new report service.
func NewReportService(store driven.SnapshotStore) *ReportService {
	return &ReportService{store: store}
}

// List returns all archived runs, newest first.
func (s *ReportService) List(ctx context.Context) ([]domain.SnapshotInfo, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.store.List(ctx)
}

// Get retrieves a run by ID, or the latest run when id is empty.
func (s *ReportService) Get(ctx context.Context, id string) (*domain.Snapshot, error) {
	if s.store == nil {
		return nil, domain.ErrNotImplemented
	}
	if id == "" {
		return s.store.Latest(ctx)
	}
	return s.store.Get(ctx, id)
}

// Contacts returns the filtered contacts of a run in source order.
func (s *ReportService) Contacts(
	ctx context.Context,
	id string,
	filter domain.ContactFilter,
) ([]domain.ContactProfile, error) {
	snapshot, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ContactProfile, 0)
	for i := range snapshot.Contacts {
		if filter.Limit > 0 && len(result) >= filter.Limit {
			break
		}
		if filter.Matches(&snapshot.Contacts[i]) {
			result = append(result, snapshot.Contacts[i])
		}
	}
	return result, nil
}

// Delete removes an archived run.
func (s *ReportService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}
	return s.store.Delete(ctx, id)
}
