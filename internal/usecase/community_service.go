package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/eclipsedgg/raidboard/internal/domain/community"
	"github.com/eclipsedgg/raidboard/internal/domain/roster"
	"github.com/eclipsedgg/raidboard/internal/domain/snapshot"
	"github.com/eclipsedgg/raidboard/internal/platform/logging"
)

// Guild ranks: 0 and 1 are guild master and officers (the council), rank 2
// holds the community team leads.
const (
	councilMaxRank  = 1
	teamLeadRank    = 2
	enrichParallel  = 4
	communitySource = "blizzard"
)

type CommunityConfig struct {
	GuildRealm string
	GuildName  string
	Region     string
}

// CommunityService syncs and serves the council roster and the community
// team-lead list.
type CommunityService struct {
	snapshots snapshot.Repository
	profile   ProfileProvider
	logs      LogsProvider
	cfg       CommunityConfig
	logger    *logging.Logger
	now       func() time.Time
}

func NewCommunityService(
	snapshots snapshot.Repository,
	profile ProfileProvider,
	logs LogsProvider,
	cfg CommunityConfig,
	logger *logging.Logger,
) *CommunityService {
	if logger == nil {
		logger = logging.Default()
	}
	return &CommunityService{
		snapshots: snapshots,
		profile:   profile,
		logs:      logs,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// SyncCouncil refreshes the council document from the guild roster.
func (s *CommunityService) SyncCouncil(ctx context.Context) (snapshot.Council, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CommunityService.SyncCouncil")
	defer span.End()

	members, err := s.fetchRanked(ctx, func(rank int) bool { return rank <= councilMaxRank })
	if err != nil {
		return snapshot.Council{}, err
	}

	now := s.now()
	doc := snapshot.Council{
		Council:     members,
		LastUpdated: &now,
		Source:      communitySource,
	}
	if err := s.snapshots.PutCouncil(ctx, doc); err != nil {
		return snapshot.Council{}, fmt.Errorf("save council snapshot: %w", err)
	}
	s.logger.InfoContext(ctx, "council synced", "members", len(members))
	return doc, nil
}

// SyncTeamLeads refreshes the community team-lead document.
func (s *CommunityService) SyncTeamLeads(ctx context.Context) (snapshot.Community, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CommunityService.SyncTeamLeads")
	defer span.End()

	members, err := s.fetchRanked(ctx, func(rank int) bool { return rank == teamLeadRank })
	if err != nil {
		return snapshot.Community{}, err
	}

	now := s.now()
	doc := snapshot.Community{
		TeamLeads:   members,
		LastUpdated: &now,
		Source:      communitySource,
	}
	if err := s.snapshots.PutCommunity(ctx, doc); err != nil {
		return snapshot.Community{}, fmt.Errorf("save community snapshot: %w", err)
	}
	s.logger.InfoContext(ctx, "community team leads synced", "members", len(members))
	return doc, nil
}

func (s *CommunityService) GetCouncil(ctx context.Context) (snapshot.Council, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CommunityService.GetCouncil")
	defer span.End()

	doc, ok, err := s.snapshots.GetCouncil(ctx)
	if err != nil {
		return snapshot.Council{}, fmt.Errorf("get council snapshot: %w", err)
	}
	if !ok {
		return snapshot.Council{}, fmt.Errorf("%w: council has not been synced yet", ErrNotFound)
	}
	return doc, nil
}

// GetTeamLeads returns the team-lead document, optionally narrowed by a
// performance filter.
func (s *CommunityService) GetTeamLeads(ctx context.Context, rawFilter string) (snapshot.Community, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CommunityService.GetTeamLeads")
	defer span.End()

	filter, err := community.ParseFilter(rawFilter)
	if err != nil {
		return snapshot.Community{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	doc, ok, err := s.snapshots.GetCommunity(ctx)
	if err != nil {
		return snapshot.Community{}, fmt.Errorf("get community snapshot: %w", err)
	}
	if !ok {
		return snapshot.Community{}, fmt.Errorf("%w: community has not been synced yet", ErrNotFound)
	}

	doc.TeamLeads = community.Apply(doc.TeamLeads, filter)
	return doc, nil
}

// fetchRanked pulls the guild roster, keeps members matching the rank
// predicate and enriches them concurrently with ranking data.
func (s *CommunityService) fetchRanked(ctx context.Context, keep func(rank int) bool) ([]roster.Player, error) {
	if s.profile == nil {
		return nil, fmt.Errorf("%w: profile provider is not configured", ErrDependencyUnavailable)
	}
	if strings.TrimSpace(s.cfg.GuildRealm) == "" || strings.TrimSpace(s.cfg.GuildName) == "" {
		return nil, fmt.Errorf("%w: guild realm and name are not configured", ErrInvalidInput)
	}

	members, err := s.profile.FetchGuildMembers(ctx, s.cfg.GuildRealm, s.cfg.GuildName, teamLeadRank)
	if err != nil {
		return nil, fmt.Errorf("fetch guild members: %w", err)
	}

	selected := make([]roster.Player, 0, len(members))
	for _, m := range members {
		if keep(m.Rank) {
			selected = append(selected, m.Player)
		}
	}

	if s.logs != nil {
		p := pool.New().WithMaxGoroutines(enrichParallel)
		for i := range selected {
			i := i
			p.Go(func() {
				member := selected[i]
				ranked, ok, err := s.logs.FetchCharacterRanking(ctx, member.DisplayName(), member.Realm, member.Region)
				if err != nil {
					s.logger.DebugContext(ctx, "ranking enrichment failed", "character", member.DisplayName(), "error", err)
					return
				}
				if !ok {
					return
				}
				member.MergeProviderFields(ranked)
				selected[i] = member
			})
		}
		p.Wait()
	}

	roster.SortPlayers(selected)
	return selected, nil
}
