package roster

import "testing"

func TestIdentityOf_PrefersCharacterName(t *testing.T) {
	p := Player{Name: "Displayed", CharacterName: "  Canonical "}
	if got := IdentityOf(p); got != "canonical" {
		t.Fatalf("expected identity canonical, got %q", got)
	}

	p = Player{Name: " OnlyName "}
	if got := IdentityOf(p); got != "onlyname" {
		t.Fatalf("expected identity onlyname, got %q", got)
	}

	if got := IdentityOf(Player{}); got != "" {
		t.Fatalf("expected empty identity, got %q", got)
	}
}

func TestSame_SymmetricAcrossFields(t *testing.T) {
	cases := []struct {
		name string
		a, b Player
		want bool
	}{
		{
			name: "character name vs display name",
			a:    Player{CharacterName: "Ratayu"},
			b:    Player{Name: "ratayu"},
			want: true,
		},
		{
			name: "display name vs character name",
			a:    Player{Name: "Ratayu", CharacterName: "Ratayu-Alt"},
			b:    Player{CharacterName: "RATAYU"},
			want: true,
		},
		{
			name: "whitespace and case insensitive",
			a:    Player{Name: " Bob "},
			b:    Player{CharacterName: "bob"},
			want: true,
		},
		{
			name: "different people",
			a:    Player{Name: "Alice"},
			b:    Player{Name: "Bob"},
			want: false,
		},
		{
			name: "empty names never match",
			a:    Player{},
			b:    Player{},
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Same(tc.a, tc.b); got != tc.want {
				t.Fatalf("Same(%+v, %+v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := Same(tc.b, tc.a); got != tc.want {
				t.Fatalf("Same is not symmetric for %s", tc.name)
			}
		})
	}
}

func TestMatchesIdentity(t *testing.T) {
	p := Player{Name: "Display", CharacterName: "Canon"}
	if !MatchesIdentity(p, "canon") || !MatchesIdentity(p, "DISPLAY") {
		t.Fatal("expected both name fields to match their identities")
	}
	if MatchesIdentity(p, "") {
		t.Fatal("empty identity must never match")
	}
}

func TestStrictIdentityOf_IncludesRealmAndRegion(t *testing.T) {
	a := Player{Name: "Twin", Realm: "Stormrage", Region: "US"}
	b := Player{Name: "Twin", Realm: "Area-52", Region: "US"}
	if StrictIdentityOf(a) == StrictIdentityOf(b) {
		t.Fatal("same-named characters on different realms must not collide under the strict key")
	}
	if IdentityOf(a) != IdentityOf(b) {
		t.Fatal("legacy identity intentionally ignores realm and region")
	}
}
