package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
	"github.com/eclipsedgg/raidboard/internal/domain/snapshot"
	"github.com/eclipsedgg/raidboard/internal/infrastructure/repository/memory"
)

func newCommunityService(profile *fakeProfile, logs *fakeLogs) (*CommunityService, *memory.SnapshotRepository) {
	snapshots := memory.NewSnapshotRepository()
	svc := NewCommunityService(snapshots, profile, logs, CommunityConfig{
		GuildRealm: "Stormrage",
		GuildName:  "Eclipsed",
		Region:     "us",
	}, nil)
	return svc, snapshots
}

func TestCommunityService_SyncCouncilFiltersRanks(t *testing.T) {
	profile := &fakeProfile{members: []ExternalGuildMember{
		{Player: roster.Player{CharacterName: "Gm"}, Rank: 0},
		{Player: roster.Player{CharacterName: "Officer"}, Rank: 1},
		{Player: roster.Player{CharacterName: "Lead"}, Rank: 2},
	}}
	svc, _ := newCommunityService(profile, &fakeLogs{})

	council, err := svc.SyncCouncil(t.Context())
	if err != nil {
		t.Fatalf("sync council: %v", err)
	}
	if len(council.Council) != 2 {
		t.Fatalf("council is ranks 0 and 1 only, got %+v", council.Council)
	}

	community, err := svc.SyncTeamLeads(t.Context())
	if err != nil {
		t.Fatalf("sync team leads: %v", err)
	}
	if len(community.TeamLeads) != 1 || community.TeamLeads[0].CharacterName != "Lead" {
		t.Fatalf("team leads are rank 2 only, got %+v", community.TeamLeads)
	}
}

func TestCommunityService_SyncEnrichesRankings(t *testing.T) {
	ranking := 96.4
	profile := &fakeProfile{members: []ExternalGuildMember{
		{Player: roster.Player{CharacterName: "Lead"}, Rank: 2},
	}}
	logs := &fakeLogs{rankings: map[string]roster.Player{
		"lead": {OverallRanking: &ranking, WarcraftLogsAvailable: true},
	}}
	svc, _ := newCommunityService(profile, logs)

	doc, err := svc.SyncTeamLeads(t.Context())
	if err != nil {
		t.Fatalf("sync team leads: %v", err)
	}
	lead := doc.TeamLeads[0]
	if lead.OverallRanking == nil || *lead.OverallRanking != 96.4 || !lead.WarcraftLogsAvailable {
		t.Fatalf("ranking enrichment missing: %+v", lead)
	}
}

func TestCommunityService_GetTeamLeadsAppliesFilter(t *testing.T) {
	svc, snapshots := newCommunityService(&fakeProfile{}, &fakeLogs{})

	high, low := 96.0, 60.0
	err := snapshots.PutCommunity(context.Background(), snapshot.Community{TeamLeads: []roster.Player{
		{Name: "High", OverallRanking: &high},
		{Name: "Low", OverallRanking: &low},
	}})
	if err != nil {
		t.Fatalf("seed community: %v", err)
	}

	doc, err := svc.GetTeamLeads(t.Context(), "95+")
	if err != nil {
		t.Fatalf("get team leads: %v", err)
	}
	if len(doc.TeamLeads) != 1 || doc.TeamLeads[0].Name != "High" {
		t.Fatalf("filter not applied: %+v", doc.TeamLeads)
	}

	if _, err := svc.GetTeamLeads(t.Context(), "platinum"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown filters must be invalid input, got %v", err)
	}
}

func TestCommunityService_GetBeforeSyncIsNotFound(t *testing.T) {
	svc, _ := newCommunityService(&fakeProfile{}, &fakeLogs{})

	if _, err := svc.GetCouncil(t.Context()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found before first sync, got %v", err)
	}
	if _, err := svc.GetTeamLeads(t.Context(), ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found before first sync, got %v", err)
	}
}
