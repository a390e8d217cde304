package team

import (
	"testing"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
)

func identities(players []roster.Player) map[string]struct{} {
	out := make(map[string]struct{}, len(players))
	for _, p := range players {
		out[roster.IdentityOf(p)] = struct{}{}
	}
	return out
}

// assertPartition checks the bucket invariant: leader, assists and roster
// are pairwise disjoint by identity key.
func assertPartition(t *testing.T, tm Team) {
	t.Helper()

	rosterIDs := identities(tm.Roster)
	if tm.RaidLeader != nil {
		leaderID := roster.IdentityOf(tm.RaidLeader.Player)
		if _, ok := rosterIDs[leaderID]; ok {
			t.Fatalf("leader %q also present in roster", leaderID)
		}
		for _, a := range tm.RaidAssists {
			if !a.IsZero() && roster.Same(a.Player, tm.RaidLeader.Player) {
				t.Fatalf("leader %q also present in assists", leaderID)
			}
		}
	}
	for _, a := range tm.RaidAssists {
		if a.IsZero() {
			continue
		}
		if _, ok := rosterIDs[roster.IdentityOf(a.Player)]; ok {
			t.Fatalf("assist %q also present in roster", roster.IdentityOf(a.Player))
		}
	}
}

func TestNormalize_EnforcesLeaderAndAssistExclusion(t *testing.T) {
	tm := Team{
		TeamName:   "Dark Matter",
		RaidLeader: &Leader{Player: roster.Player{Name: "Ratayu"}},
		RaidAssists: []Assist{
			{Player: roster.Player{Name: "Helper"}},
			{}, // placeholder slot
		},
		Roster: []roster.Player{
			{Name: "Ratayu", Role: roster.RoleDPS},
			{Name: "Helper", Role: roster.RoleHealer},
			{Name: "Bob", Role: roster.RoleTank},
		},
	}
	tm.Normalize()

	assertPartition(t, tm)
	if len(tm.Roster) != 1 || tm.Roster[0].Name != "Bob" {
		t.Fatalf("expected roster [Bob], got %+v", tm.Roster)
	}
	if len(tm.RaidAssists) != 2 {
		t.Fatalf("placeholder slot must survive normalize, got %d assists", len(tm.RaidAssists))
	}
}

func TestNormalize_PromotesTeamAssistMarker(t *testing.T) {
	tm := Team{
		TeamName: "Dark Matter",
		Roster: []roster.Player{
			{Name: "Bob", Role: roster.RoleTank},
			{Name: "Carol", Role: roster.RoleTeamAssist},
		},
	}
	tm.Normalize()

	assertPartition(t, tm)
	if len(tm.RaidAssists) != 1 || tm.RaidAssists[0].Name != "Carol" {
		t.Fatalf("expected Carol promoted to assists, got %+v", tm.RaidAssists)
	}
	if len(tm.Roster) != 1 || tm.Roster[0].Name != "Bob" {
		t.Fatalf("expected roster [Bob], got %+v", tm.Roster)
	}
}

func TestNormalize_DropsDuplicateRosterIdentities(t *testing.T) {
	tm := Team{
		TeamName: "Dark Matter",
		Roster: []roster.Player{
			{Name: "Bob", Role: roster.RoleTank},
			{CharacterName: "bob", Role: roster.RoleDPS},
		},
	}
	tm.Normalize()

	if len(tm.Roster) != 1 {
		t.Fatalf("expected duplicates collapsed, got %+v", tm.Roster)
	}
	if tm.Roster[0].Role != roster.RoleTank {
		t.Fatalf("first occurrence must win, got role %q", tm.Roster[0].Role)
	}
}

func TestClassify_Precedence(t *testing.T) {
	tm := Team{
		RaidLeader:  &Leader{Player: roster.Player{Name: "Lead"}},
		RaidAssists: []Assist{{Player: roster.Player{Name: "Assist"}}},
	}

	cases := []struct {
		player roster.Player
		want   roster.Role
	}{
		{roster.Player{Name: "lead"}, roster.RoleTeamLead},
		{roster.Player{CharacterName: "ASSIST"}, roster.RoleRaidAssist},
		{roster.Player{Name: "x", Role: "team assist"}, roster.RoleTeamAssist},
		{roster.Player{Name: "x", Role: "Main Tank"}, roster.RoleTank},
		{roster.Player{Name: "x", Role: "healer"}, roster.RoleHealer},
		{roster.Player{Name: "x", Role: "ranged"}, roster.RoleDPS},
		{roster.Player{Name: "x"}, roster.RoleDPS},
	}
	for _, tc := range cases {
		if got := tm.Classify(tc.player); got != tc.want {
			t.Fatalf("Classify(%+v) = %q, want %q", tc.player, got, tc.want)
		}
	}
}

func TestCollectionReorder(t *testing.T) {
	c := Collection{Teams: []Team{
		{TeamID: "a", TeamName: "A"},
		{TeamID: "b", TeamName: "B"},
		{TeamID: "c", TeamName: "C"},
	}}

	if ok := c.Reorder("b", DirectionUp); !ok {
		t.Fatal("expected reorder to find team b")
	}
	if c.Teams[0].TeamID != "b" || c.Teams[1].TeamID != "a" {
		t.Fatalf("expected order [b a c], got %+v", c.Teams)
	}

	// Boundary moves are a no-op, not an error.
	if ok := c.Reorder("b", DirectionUp); !ok {
		t.Fatal("expected boundary reorder to still find team b")
	}
	if c.Teams[0].TeamID != "b" {
		t.Fatalf("expected b to stay first, got %+v", c.Teams)
	}

	if ok := c.Reorder("c", DirectionDown); !ok {
		t.Fatal("expected reorder to find team c")
	}
	if c.Teams[2].TeamID != "c" {
		t.Fatalf("expected c to stay last, got %+v", c.Teams)
	}

	if ok := c.Reorder("missing", DirectionUp); ok {
		t.Fatal("unknown team must report not found")
	}
}

func TestParseDirection(t *testing.T) {
	if _, err := ParseDirection("sideways"); err == nil {
		t.Fatal("expected error for unknown direction")
	}
	if dir, err := ParseDirection("up"); err != nil || dir != DirectionUp {
		t.Fatalf("expected up, got %q err=%v", dir, err)
	}
}
