package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"dario.cat/mergo"
	"github.com/panjf2000/ants/v2"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
	"github.com/eclipsedgg/raidboard/internal/domain/team"
	"github.com/eclipsedgg/raidboard/internal/platform/logging"
)

const (
	defaultSyncBatchSize = 5
	defaultSyncDelay     = 2 * time.Second
)

type RosterSyncConfig struct {
	// BatchSize caps concurrent character lookups; the scraped site throttles
	// aggressively above 5.
	BatchSize  int
	BatchDelay time.Duration
}

// SyncReport summarizes one sync run across teams.
type SyncReport struct {
	TeamsSynced int      `json:"teamsSynced"`
	TeamsFailed int      `json:"teamsFailed"`
	Failures    []string `json:"failures,omitempty"`
}

// RosterSyncService refreshes team rosters from the providers. Provider
// outages degrade a sync, they never corrupt a team: merging preserves every
// manual edit and a failed fetch leaves the stored team untouched.
type RosterSyncService struct {
	teams      team.Repository
	logs       LogsProvider
	profile    ProfileProvider
	logger     *logging.Logger
	batchSize  int
	batchDelay time.Duration
	now        func() time.Time
}

func NewRosterSyncService(
	teams team.Repository,
	logs LogsProvider,
	profile ProfileProvider,
	cfg RosterSyncConfig,
	logger *logging.Logger,
) *RosterSyncService {
	if logger == nil {
		logger = logging.Default()
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultSyncBatchSize
	}
	batchDelay := cfg.BatchDelay
	if batchDelay < 0 {
		batchDelay = defaultSyncDelay
	}
	return &RosterSyncService{
		teams:      teams,
		logs:       logs,
		profile:    profile,
		logger:     logger,
		batchSize:  batchSize,
		batchDelay: batchDelay,
		now:        time.Now,
	}
}

// SyncTeamRoster fetches the guild roster, enriches it and merges it into
// one team.
func (s *RosterSyncService) SyncTeamRoster(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterSyncService.SyncTeamRoster")
	defer span.End()

	if s.logs == nil {
		return team.Team{}, fmt.Errorf("%w: combat log provider is not configured", ErrDependencyUnavailable)
	}

	existing, ok, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !ok {
		return team.Team{}, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}

	fresh, err := s.logs.FetchGuildRoster(ctx)
	if err != nil {
		return team.Team{}, fmt.Errorf("fetch guild roster: %w", err)
	}

	enriched := s.enrichPlayers(ctx, fresh)
	merged := team.MergeRoster(existing, enriched)

	if progress, ok, err := s.logs.FetchGuildProgress(ctx); err != nil {
		s.logger.WarnContext(ctx, "guild progress fetch failed, keeping stored progress", "team_id", teamID, "error", err)
	} else if ok {
		merged.Progress = team.MergeProgress(merged.Progress, progress)
	}

	now := s.now()
	merged.LastUpdated = &now
	saved, err := s.teams.Update(ctx, merged)
	if err != nil {
		return team.Team{}, fmt.Errorf("save synced team: %w", err)
	}
	if !saved {
		return team.Team{}, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}

	s.logger.InfoContext(ctx, "team roster synced",
		"team_id", teamID,
		"fresh_players", len(fresh),
		"roster_size", len(merged.Roster),
	)
	return merged, nil
}

// SyncAllTeams syncs every stored team. Individual failures are collected,
// not fatal.
func (s *RosterSyncService) SyncAllTeams(ctx context.Context) (SyncReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterSyncService.SyncAllTeams")
	defer span.End()

	c, err := s.teams.List(ctx)
	if err != nil {
		return SyncReport{}, fmt.Errorf("list teams: %w", err)
	}

	report := SyncReport{}
	for _, t := range c.Teams {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		if _, err := s.SyncTeamRoster(ctx, t.TeamID); err != nil {
			report.TeamsFailed++
			report.Failures = append(report.Failures, fmt.Sprintf("%s: %v", t.TeamID, err))
			s.logger.WarnContext(ctx, "team sync failed, continuing", "team_id", t.TeamID, "error", err)
			continue
		}
		report.TeamsSynced++
	}
	return report, nil
}

// enrichPlayers fills profile and ranking fields for each fresh player.
// Lookups run in fixed-size batches with a pause between them. Enrichment
// failures only mean thinner data for that player.
func (s *RosterSyncService) enrichPlayers(ctx context.Context, players []roster.Player) []roster.Player {
	if len(players) == 0 {
		return players
	}

	pool, err := ants.NewPool(s.batchSize)
	if err != nil {
		s.logger.WarnContext(ctx, "create enrichment pool failed, skipping enrichment", "error", err)
		return players
	}
	defer pool.Release()

	out := make([]roster.Player, len(players))
	copy(out, players)

	for start := 0; start < len(out); start += s.batchSize {
		end := start + s.batchSize
		if end > len(out) {
			end = len(out)
		}

		var batch sync.WaitGroup
		for i := start; i < end; i++ {
			i := i
			batch.Add(1)
			if err := pool.Submit(func() {
				defer batch.Done()
				out[i] = s.enrichPlayer(ctx, out[i])
			}); err != nil {
				batch.Done()
				s.logger.WarnContext(ctx, "submit enrichment task failed", "error", err)
			}
		}
		batch.Wait()

		if end < len(out) && s.batchDelay > 0 {
			timer := time.NewTimer(s.batchDelay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return out
			case <-timer.C:
			}
		}
	}
	return out
}

func (s *RosterSyncService) enrichPlayer(ctx context.Context, p roster.Player) roster.Player {
	name := p.DisplayName()

	if s.profile != nil {
		fetched, ok, err := s.profile.FetchCharacter(ctx, name, p.Realm, p.Region)
		if err != nil {
			s.logger.DebugContext(ctx, "profile enrichment failed", "character", name, "error", err)
		} else if ok {
			if mergeErr := mergo.Merge(&p, fetched); mergeErr != nil {
				s.logger.WarnContext(ctx, "merge profile fields failed", "character", name, "error", mergeErr)
			}
		}
	}

	ranked, ok, err := s.logs.FetchCharacterRanking(ctx, name, p.Realm, p.Region)
	if err != nil {
		s.logger.DebugContext(ctx, "ranking enrichment failed", "character", name, "error", err)
		return p
	}
	if ok {
		if mergeErr := mergo.Merge(&p, ranked); mergeErr != nil {
			s.logger.WarnContext(ctx, "merge ranking fields failed", "character", name, "error", mergeErr)
		}
	}
	return p
}
