package roster

import "strings"

// IdentityOf computes the stable cross-source join key for a player: the
// normalized character name, falling back to the display name. Realm and
// region are deliberately not part of the key; see StrictIdentityOf.
func IdentityOf(p Player) string {
	name := p.CharacterName
	if name == "" {
		name = p.Name
	}
	return NormalizeIdentity(name)
}

// NormalizeIdentity lowercases and trims a raw name into identity-key form.
func NormalizeIdentity(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// StrictIdentityOf keys a player by (name, realm, region). The dashboard
// matches by name alone for compatibility with sources that omit realm data,
// so this stronger key is only used where all three fields are known.
func StrictIdentityOf(p Player) string {
	return NormalizeIdentity(IdentityOf(p) + "\x00" + p.Realm + "\x00" + p.Region)
}

// Same reports whether a and b refer to the same person. Upstream sources
// swap which of name/characterName is canonical, so the comparison is
// symmetric over both fields of both players. Empty names never match.
func Same(a, b Player) bool {
	for _, an := range [...]string{a.CharacterName, a.Name} {
		key := NormalizeIdentity(an)
		if key == "" {
			continue
		}
		for _, bn := range [...]string{b.CharacterName, b.Name} {
			if key == NormalizeIdentity(bn) {
				return true
			}
		}
	}
	return false
}

// MatchesIdentity reports whether either name field of p normalizes to key.
func MatchesIdentity(p Player, key string) bool {
	key = NormalizeIdentity(key)
	if key == "" {
		return false
	}
	return NormalizeIdentity(p.CharacterName) == key || NormalizeIdentity(p.Name) == key
}
