package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/custodia-labs/linkscope/internal/core/analytics"
	"github.com/custodia-labs/linkscope/internal/core/domain"
	"github.com/custodia-labs/linkscope/internal/core/ports/driven"
	"github.com/custodia-labs/linkscope/internal/core/ports/driving"
	"github.com/custodia-labs/linkscope/internal/logger"
)

// Ensure AnalysisService implements the interface.
var _ driving.AnalysisService = (*AnalysisService)(nil)

// AnalysisService runs the analytics engine and archives each run.
type AnalysisService struct {
	reader     driven.ExportReader
	store      driven.SnapshotStore
	categories driving.CategoryService
	clock      driven.Clock
}

// NewAnalysisService creates a new analysis service.
// A nil clock reads the system time; a nil store disables archiving.
func NewAnalysisService(
	reader driven.ExportReader,
	store driven.SnapshotStore,
	categories driving.CategoryService,
	clock driven.Clock,
) *AnalysisService {
	if clock == nil {
		clock = driven.ClockFunc(time.Now)
	}
	return &AnalysisService{
		reader:     reader,
		store:      store,
		categories: categories,
		clock:      clock,
	}
}

// Analyze reads the export at path and analyses it.
func (s *AnalysisService) Analyze(ctx context.Context, path string, opts driving.AnalyzeOptions) (*domain.Snapshot, error) {
	if s.reader == nil {
		return nil, domain.ErrNotImplemented
	}

	logger.Section("Read export")
	logger.Debug("path: %s", path)

	export, err := s.reader.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	if export.Source == "" {
		export.Source = path
	}
	return s.AnalyzeExport(ctx, export, opts)
}

// AnalyzeExport runs the engine over an export already in memory.
func (s *AnalysisService) AnalyzeExport(
	ctx context.Context,
	export *domain.Export,
	opts driving.AnalyzeOptions,
) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if export == nil {
		return nil, domain.ErrNoConnections
	}

	// One clock reading for the whole run.
	now := opts.Now
	if now.IsZero() {
		now = s.clock.Now()
	}

	rules, themes, err := s.loadRules()
	if err != nil {
		return nil, err
	}

	logger.Section("Analyse")
	logger.Debug("connections=%d messages=%d endorsements=%d shares=%d",
		len(export.Connections), len(export.Messages), len(export.Endorsements), len(export.Shares))
	logger.Debug("now=%s rules=%d themes=%d", now.Format(time.RFC3339), len(rules), len(themes))

	res, err := analytics.Run(analytics.Input{
		Export: export,
		Rules:  rules,
		Themes: themes,
		Now:    now,
	})
	if err != nil {
		return nil, err
	}

	snapshot := &domain.Snapshot{
		ID:        uuid.New().String(),
		Source:    export.Source,
		CreatedAt: now,
		Contacts:  res.Contacts,
		Analytics: res.Analytics,
	}

	logger.L().Info("analysis complete",
		zap.String("snapshot", snapshot.ID),
		zap.Int("contacts", len(snapshot.Contacts)),
		zap.String("engagement", snapshot.Analytics.EngagementRate),
	)

	if opts.DryRun || s.store == nil {
		logger.Debug("snapshot not archived")
		return snapshot, nil
	}
	if err := s.store.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}
	return snapshot, nil
}

func (s *AnalysisService) loadRules() ([]domain.CategoryRule, []domain.Theme, error) {
	if s.categories == nil {
		return nil, nil, nil
	}
	rules, err := s.categories.List()
	if err != nil {
		return nil, nil, fmt.Errorf("load categories: %w", err)
	}
	themes, err := s.categories.Themes()
	if err != nil {
		return nil, nil, fmt.Errorf("load themes: %w", err)
	}
	return rules, themes, nil
}
