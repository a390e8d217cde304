package roster

import (
	"sort"
	"strings"
)

// ParseRole translates provider free-text into the closed Role set. The
// match order mirrors the dashboard's precedence: the exact "team assist"
// marker wins, then tank, then healer, and anything else falls back to DPS.
func ParseRole(raw string) Role {
	text := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case text == "team assist":
		return RoleTeamAssist
	case strings.Contains(text, "tank"):
		return RoleTank
	case strings.Contains(text, "heal"):
		return RoleHealer
	default:
		return RoleDPS
	}
}

// RoleFromSpecType maps a Blizzard active-specialization role type onto a
// raid role. Unknown and damage types both collapse to DPS.
func RoleFromSpecType(specType string) Role {
	switch strings.ToUpper(strings.TrimSpace(specType)) {
	case "TANK":
		return RoleTank
	case "HEALER", "HEALING":
		return RoleHealer
	default:
		return RoleDPS
	}
}

// bucketOrder fixes the Tank < Healer < DPS rendering order.
func bucketOrder(r Role) int {
	switch r {
	case RoleTank:
		return 0
	case RoleHealer:
		return 1
	default:
		return 2
	}
}

// SortPlayers orders players by role bucket, then ascending case-insensitive
// display name, giving the UI a deterministic stable rendering.
func SortPlayers(players []Player) {
	sort.SliceStable(players, func(i, j int) bool {
		bi, bj := bucketOrder(players[i].Role), bucketOrder(players[j].Role)
		if bi != bj {
			return bi < bj
		}
		return strings.ToLower(players[i].DisplayName()) < strings.ToLower(players[j].DisplayName())
	})
}
