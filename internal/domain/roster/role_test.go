package roster

import "testing"

func TestParseRole(t *testing.T) {
	cases := []struct {
		raw  string
		want Role
	}{
		{"Team Assist", RoleTeamAssist},
		{"  team assist ", RoleTeamAssist},
		{"Tank", RoleTank},
		{"Main Tank", RoleTank},
		{"Healer", RoleHealer},
		{"healing", RoleHealer},
		{"DPS", RoleDPS},
		{"Melee DPS", RoleDPS},
		{"", RoleDPS},
		{"something else", RoleDPS},
	}
	for _, tc := range cases {
		if got := ParseRole(tc.raw); got != tc.want {
			t.Fatalf("ParseRole(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestRoleFromSpecType(t *testing.T) {
	cases := []struct {
		raw  string
		want Role
	}{
		{"TANK", RoleTank},
		{"tank", RoleTank},
		{"HEALER", RoleHealer},
		{"HEALING", RoleHealer},
		{"DPS", RoleDPS},
		{"DAMAGE", RoleDPS},
		{"", RoleDPS},
	}
	for _, tc := range cases {
		if got := RoleFromSpecType(tc.raw); got != tc.want {
			t.Fatalf("RoleFromSpecType(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestSortPlayers_BucketsThenName(t *testing.T) {
	players := []Player{
		{Name: "zeta", Role: RoleDPS},
		{Name: "Alpha", Role: RoleDPS},
		{Name: "Mend", Role: RoleHealer},
		{Name: "Wall", Role: RoleTank},
		{Name: "beta", Role: RoleDPS},
	}
	SortPlayers(players)

	want := []string{"Wall", "Mend", "Alpha", "beta", "zeta"}
	for i, name := range want {
		if players[i].Name != name {
			t.Fatalf("position %d: expected %s, got %s", i, name, players[i].Name)
		}
	}
}
