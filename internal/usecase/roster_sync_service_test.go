package usecase

import (
	"errors"
	"testing"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
	"github.com/eclipsedgg/raidboard/internal/domain/team"
	"github.com/eclipsedgg/raidboard/internal/infrastructure/repository/memory"
)

func newSyncService(repo *memory.TeamRepository, logs *fakeLogs, profile *fakeProfile) *RosterSyncService {
	return NewRosterSyncService(repo, logs, profile, RosterSyncConfig{BatchSize: 2, BatchDelay: 0}, nil)
}

func TestRosterSync_MergesAndEnriches(t *testing.T) {
	repo := memory.NewTeamRepository([]team.Team{{
		TeamID:   "t1",
		TeamName: "Alpha",
		Roster:   []roster.Player{{Name: "Veteran", Role: roster.RoleTank}},
	}})

	ranking := 91.2
	logs := &fakeLogs{
		roster: []roster.Player{
			{CharacterName: "Veteran"},
			{CharacterName: "Newguy"},
		},
		rankings: map[string]roster.Player{
			"newguy": {OverallRanking: &ranking, OverallRankingMetric: "dps", WarcraftLogsAvailable: true},
		},
		progress:    team.Progress{TotalBosses: 8, HighestDifficulty: "Mythic"},
		hasProgress: true,
	}
	profile := &fakeProfile{characters: map[string]roster.Player{
		"newguy": {CharacterName: "Newguy", Class: "Mage", Level: "80"},
	}}

	synced, err := newSyncService(repo, logs, profile).SyncTeamRoster(t.Context(), "t1")
	if err != nil {
		t.Fatalf("sync team roster: %v", err)
	}

	if len(synced.Roster) != 2 {
		t.Fatalf("expected veteran plus newguy, got %+v", synced.Roster)
	}
	byName := map[string]roster.Player{}
	for _, p := range synced.Roster {
		byName[roster.IdentityOf(p)] = p
	}
	if byName["veteran"].Role != roster.RoleTank {
		t.Fatalf("manual role must survive sync: %+v", byName["veteran"])
	}
	newguy := byName["newguy"]
	if newguy.Class != "Mage" || newguy.OverallRanking == nil || *newguy.OverallRanking != 91.2 {
		t.Fatalf("enrichment missing: %+v", newguy)
	}
	if synced.Progress.TotalBosses != 8 || synced.Progress.HighestDifficulty != "Mythic" {
		t.Fatalf("progress not merged: %+v", synced.Progress)
	}
}

func TestRosterSync_ProviderFailureLeavesTeamUntouched(t *testing.T) {
	repo := memory.NewTeamRepository([]team.Team{{
		TeamID:   "t1",
		TeamName: "Alpha",
		Roster:   []roster.Player{{Name: "Veteran"}},
	}})
	logs := &fakeLogs{rosterErr: errors.New("scrape blocked")}

	if _, err := newSyncService(repo, logs, nil).SyncTeamRoster(t.Context(), "t1"); err == nil {
		t.Fatal("provider failure must surface")
	}

	stored, _, err := repo.GetByID(t.Context(), "t1")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if len(stored.Roster) != 1 || stored.Roster[0].Name != "Veteran" {
		t.Fatalf("failed sync must not modify the team: %+v", stored.Roster)
	}
}

func TestRosterSync_SyncAllContinuesPastFailures(t *testing.T) {
	repo := memory.NewTeamRepository([]team.Team{
		{TeamID: "a", TeamName: "A"},
		{TeamID: "b", TeamName: "B"},
	})
	logs := &fakeLogs{roster: []roster.Player{{CharacterName: "Someone"}}}
	svc := newSyncService(repo, logs, nil)

	report, err := svc.SyncAllTeams(t.Context())
	if err != nil {
		t.Fatalf("sync all: %v", err)
	}
	if report.TeamsSynced != 2 || report.TeamsFailed != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	logs.rosterErr = errors.New("scrape blocked")
	report, err = svc.SyncAllTeams(t.Context())
	if err != nil {
		t.Fatalf("sync all with failures: %v", err)
	}
	if report.TeamsFailed != 2 || len(report.Failures) != 2 {
		t.Fatalf("failures must be reported, got %+v", report)
	}
}

func TestRosterSync_NotFoundTeam(t *testing.T) {
	svc := newSyncService(memory.NewTeamRepository(nil), &fakeLogs{}, nil)
	if _, err := svc.SyncTeamRoster(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
