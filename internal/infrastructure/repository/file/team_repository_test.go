package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
	"github.com/eclipsedgg/raidboard/internal/domain/team"
)

func newTestRepo(t *testing.T) *TeamRepository {
	t.Helper()
	repo, err := NewTeamRepository(t.TempDir())
	if err != nil {
		t.Fatalf("new team repository: %v", err)
	}
	repo.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return repo
}

func TestTeamRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	created := team.Team{
		TeamID:   "team-1",
		TeamName: "Dark Matter",
		Roster:   []roster.Player{{Name: "Ratayu", Role: roster.RoleTank}},
	}
	if err := repo.Create(ctx, created); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, ok, err := repo.GetByID(ctx, "team-1")
	if err != nil || !ok {
		t.Fatalf("get by id: ok=%v err=%v", ok, err)
	}
	if got.TeamName != "Dark Matter" || len(got.Roster) != 1 || got.Roster[0].Role != roster.RoleTank {
		t.Fatalf("stored team does not round-trip: %+v", got)
	}

	c, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(c.Teams) != 1 || c.LastUpdated == nil {
		t.Fatalf("list should return one team with a timestamp, got %+v", c)
	}
}

func TestTeamRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := NewTeamRepository(dir)
	if err != nil {
		t.Fatalf("new team repository: %v", err)
	}
	if err := repo.Create(ctx, team.Team{TeamID: "team-1", TeamName: "Alpha"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	reopened, err := NewTeamRepository(dir)
	if err != nil {
		t.Fatalf("reopen team repository: %v", err)
	}
	_, ok, err := reopened.GetByID(ctx, "team-1")
	if err != nil || !ok {
		t.Fatalf("team should survive a reopen: ok=%v err=%v", ok, err)
	}
}

func TestTeamRepository_UpdateDeleteReorder(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Create(ctx, team.Team{TeamID: id, TeamName: id}); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	ok, err := repo.Update(ctx, team.Team{TeamID: "b", TeamName: "renamed"})
	if err != nil || !ok {
		t.Fatalf("update: ok=%v err=%v", ok, err)
	}
	ok, err = repo.Update(ctx, team.Team{TeamID: "missing"})
	if err != nil || ok {
		t.Fatalf("updating an unknown team must report not found, ok=%v err=%v", ok, err)
	}

	c, ok, err := repo.Reorder(ctx, "c", team.DirectionUp)
	if err != nil || !ok {
		t.Fatalf("reorder: ok=%v err=%v", ok, err)
	}
	if c.Teams[1].TeamID != "c" || c.Teams[2].TeamID != "b" {
		t.Fatalf("expected order [a c b], got %+v", idsOf(c))
	}

	ok, err = repo.Delete(ctx, "a")
	if err != nil || !ok {
		t.Fatalf("delete: ok=%v err=%v", ok, err)
	}
	c, err = repo.List(ctx)
	if err != nil || len(c.Teams) != 2 {
		t.Fatalf("expected two teams after delete, got %+v err=%v", idsOf(c), err)
	}
}

func TestStore_WritesAreAtomic(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewTeamRepository(dir)
	if err != nil {
		t.Fatalf("new team repository: %v", err)
	}
	if err := repo.Create(context.Background(), team.Team{TeamID: "a"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, teamsFile+".tmp")); !os.IsNotExist(err) {
		t.Fatalf("temp file must not linger after a save: %v", err)
	}
}

func idsOf(c team.Collection) []string {
	out := make([]string, 0, len(c.Teams))
	for _, t := range c.Teams {
		out = append(out, t.TeamID)
	}
	return out
}
