package team

import (
	"reflect"
	"testing"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
)

func ranking(v float64) *float64 { return &v }

func TestMergeRoster_RefreshesProviderFieldsKeepsManualRole(t *testing.T) {
	existing := Team{
		TeamName: "Dark Matter",
		Roster: []roster.Player{
			{Name: "Bob", Role: roster.RoleTank, Class: "Warrior"},
		},
	}
	fresh := []roster.Player{
		{Name: "Bob", Class: "Paladin", Level: "80", Avatar: "http://img", OverallRanking: ranking(97)},
	}

	merged := MergeRoster(existing, fresh)

	if len(merged.Roster) != 1 {
		t.Fatalf("expected single roster member, got %+v", merged.Roster)
	}
	got := merged.Roster[0]
	if got.Role != roster.RoleTank {
		t.Fatalf("manual role must survive resync, got %q", got.Role)
	}
	if got.Class != "Paladin" || got.Level != "80" || got.Avatar != "http://img" {
		t.Fatalf("provider fields must refresh, got %+v", got)
	}
	if got.OverallRanking == nil || *got.OverallRanking != 97 {
		t.Fatalf("ranking must refresh, got %+v", got.OverallRanking)
	}
}

func TestMergeRoster_NonDestructiveResync(t *testing.T) {
	existing := Team{
		TeamName: "Dark Matter",
		Roster: []roster.Player{
			{Name: "Manual", Role: roster.RoleHealer},
		},
	}
	fresh := []roster.Player{{Name: "Scraped"}}

	merged := MergeRoster(existing, fresh)

	if !merged.HasMember("manual") {
		t.Fatal("member absent from fresh fetch must be retained")
	}
	if !merged.HasMember("scraped") {
		t.Fatal("new fresh member must be added")
	}
	for _, p := range merged.Roster {
		if p.Name == "Scraped" && p.Role != roster.RoleDPS {
			t.Fatalf("new members default to DPS, got %q", p.Role)
		}
	}
}

func TestMergeRoster_Idempotent(t *testing.T) {
	existing := Team{
		TeamName:   "Dark Matter",
		RaidLeader: &Leader{Player: roster.Player{Name: "Ratayu"}, LeaderRole: roster.RoleTank},
		Roster: []roster.Player{
			{Name: "Bob", Role: roster.RoleTank},
			{Name: "Carol", Role: roster.RoleHealer},
		},
	}
	fresh := []roster.Player{
		{Name: "Ratayu", Class: "Monk"},
		{Name: "Bob"},
		{Name: "Dave", Role: "healer"},
	}

	once := MergeRoster(existing, fresh)
	twice := MergeRoster(once, fresh)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("merge is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
	assertPartition(t, once)
}

func TestMergeRoster_UpdatesLeaderAndAssistInPlace(t *testing.T) {
	existing := Team{
		TeamName:    "Dark Matter",
		RaidLeader:  &Leader{Player: roster.Player{Name: "Ratayu"}, LeaderRole: roster.RoleDPS},
		RaidAssists: []Assist{{Player: roster.Player{Name: "Helper"}, AssistRole: roster.RoleHealer}},
	}
	fresh := []roster.Player{
		{Name: "Ratayu", Class: "Monk"},
		{Name: "Helper", Class: "Priest"},
	}

	merged := MergeRoster(existing, fresh)

	if len(merged.Roster) != 0 {
		t.Fatalf("leader and assist must not leak into roster, got %+v", merged.Roster)
	}
	if merged.RaidLeader.Class != "Monk" || merged.RaidLeader.LeaderRole != roster.RoleDPS {
		t.Fatalf("leader must refresh provider fields and keep leaderRole, got %+v", merged.RaidLeader)
	}
	if merged.RaidAssists[0].Class != "Priest" || merged.RaidAssists[0].AssistRole != roster.RoleHealer {
		t.Fatalf("assist must refresh provider fields and keep assistRole, got %+v", merged.RaidAssists[0])
	}
}

func TestMergeRoster_TeamAssistMarkerPromotes(t *testing.T) {
	existing := Team{TeamName: "Dark Matter"}
	fresh := []roster.Player{
		{Name: "Carol", Role: "Team Assist"},
		{Name: "Bob", Role: "tank"},
	}

	merged := MergeRoster(existing, fresh)

	assertPartition(t, merged)
	if len(merged.RaidAssists) != 1 || merged.RaidAssists[0].Name != "Carol" {
		t.Fatalf("team-assist marker must promote into assists, got %+v", merged.RaidAssists)
	}
	if len(merged.Roster) != 1 || merged.Roster[0].Role != roster.RoleTank {
		t.Fatalf("expected roster [Bob Tank], got %+v", merged.Roster)
	}
}

func TestMergeProgress(t *testing.T) {
	five := 5
	existing := Progress{BossesKilled: &five, TotalBosses: 8, HighestDifficulty: "Heroic"}

	unchanged := MergeProgress(existing, Progress{})
	if unchanged.BossesKilled == nil || *unchanged.BossesKilled != 5 || unchanged.HighestDifficulty != "Heroic" {
		t.Fatalf("empty fresh progress must not clobber existing, got %+v", unchanged)
	}

	seven := 7
	updated := MergeProgress(existing, Progress{BossesKilled: &seven, HighestDifficulty: "Mythic"})
	if *updated.BossesKilled != 7 || updated.HighestDifficulty != "Mythic" || updated.TotalBosses != 8 {
		t.Fatalf("fresh progress must overwrite, got %+v", updated)
	}
}
