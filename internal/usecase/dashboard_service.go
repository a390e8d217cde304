package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/eclipsedgg/raidboard/internal/domain/snapshot"
	"github.com/eclipsedgg/raidboard/internal/platform/logging"
)

// DashboardService serves the read-mostly dashboard documents and runs their
// provider syncs.
type DashboardService struct {
	snapshots  snapshot.Repository
	applicants ApplicantSource
	guilds     GuildDirectory
	region     string
	logger     *logging.Logger
	now        func() time.Time
}

func NewDashboardService(
	snapshots snapshot.Repository,
	applicants ApplicantSource,
	guilds GuildDirectory,
	region string,
	logger *logging.Logger,
) *DashboardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DashboardService{
		snapshots:  snapshots,
		applicants: applicants,
		guilds:     guilds,
		region:     region,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *DashboardService) SyncApplicants(ctx context.Context) (snapshot.Applicants, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.SyncApplicants")
	defer span.End()

	if s.applicants == nil {
		return snapshot.Applicants{}, fmt.Errorf("%w: applicant source is not configured", ErrDependencyUnavailable)
	}

	rows, err := s.applicants.FetchApplicants(ctx)
	if err != nil {
		return snapshot.Applicants{}, fmt.Errorf("fetch applicants: %w", err)
	}

	now := s.now()
	doc := snapshot.Applicants{Applicants: rows, LastUpdated: &now}
	if err := s.snapshots.PutApplicants(ctx, doc); err != nil {
		return snapshot.Applicants{}, fmt.Errorf("save applicants snapshot: %w", err)
	}
	s.logger.InfoContext(ctx, "applicants synced", "count", len(rows))
	return doc, nil
}

func (s *DashboardService) GetApplicants(ctx context.Context) (snapshot.Applicants, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.GetApplicants")
	defer span.End()

	doc, ok, err := s.snapshots.GetApplicants(ctx)
	if err != nil {
		return snapshot.Applicants{}, fmt.Errorf("get applicants snapshot: %w", err)
	}
	if !ok {
		return snapshot.Applicants{}, fmt.Errorf("%w: applicants have not been synced yet", ErrNotFound)
	}
	return doc, nil
}

func (s *DashboardService) SyncGuilds(ctx context.Context) (snapshot.Guilds, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.SyncGuilds")
	defer span.End()

	if s.guilds == nil {
		return snapshot.Guilds{}, fmt.Errorf("%w: guild directory is not configured", ErrDependencyUnavailable)
	}

	rows, err := s.guilds.SearchRecruitingGuilds(ctx, s.region)
	if err != nil {
		return snapshot.Guilds{}, fmt.Errorf("fetch recruiting guilds: %w", err)
	}

	now := s.now()
	doc := snapshot.Guilds{Guilds: rows, LastUpdated: &now}
	if err := s.snapshots.PutGuilds(ctx, doc); err != nil {
		return snapshot.Guilds{}, fmt.Errorf("save guilds snapshot: %w", err)
	}
	s.logger.InfoContext(ctx, "guild directory synced", "count", len(rows))
	return doc, nil
}

func (s *DashboardService) GetGuilds(ctx context.Context) (snapshot.Guilds, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.GetGuilds")
	defer span.End()

	doc, ok, err := s.snapshots.GetGuilds(ctx)
	if err != nil {
		return snapshot.Guilds{}, fmt.Errorf("get guilds snapshot: %w", err)
	}
	if !ok {
		return snapshot.Guilds{}, fmt.Errorf("%w: guilds have not been synced yet", ErrNotFound)
	}
	return doc, nil
}

func (s *DashboardService) Status(ctx context.Context) (snapshot.Status, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Status")
	defer span.End()

	status, err := s.snapshots.Status(ctx)
	if err != nil {
		return snapshot.Status{}, fmt.Errorf("get snapshot status: %w", err)
	}
	return status, nil
}
