package roster

// Role is the closed set of raid roles a player can hold. Provider free-text
// roles are translated into this set at the boundary via ParseRole.
type Role string

const (
	RoleTank       Role = "Tank"
	RoleHealer     Role = "Healer"
	RoleDPS        Role = "DPS"
	RoleTeamAssist Role = "Team Assist"

	// Classification-only roles. Never stored on a Player; produced by
	// team.Classify for members matching the leader or an assist slot.
	RoleTeamLead   Role = "Team Lead"
	RoleRaidAssist Role = "Raid Assist"
)

// ConcreteRoles are the roles a roster member may carry directly.
var ConcreteRoles = map[Role]struct{}{
	RoleTank:       {},
	RoleHealer:     {},
	RoleDPS:        {},
	RoleTeamAssist: {},
}

// Player is a guild member or applicant embedded in exactly one team bucket.
// Field names round-trip through the persisted JSON documents, so they follow
// the dashboard wire shape rather than Go casing conventions.
type Player struct {
	Name          string `json:"name"`
	CharacterName string `json:"characterName,omitempty"`
	Class         string `json:"class,omitempty"`
	Race          string `json:"race,omitempty"`
	Level         string `json:"level,omitempty"`
	Realm         string `json:"realm,omitempty"`
	Region        string `json:"region,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
	Role          Role   `json:"role,omitempty"`

	OverallRanking            *float64 `json:"overallRanking,omitempty"`
	OverallRankingMetric      string   `json:"overallRankingMetric,omitempty"`
	HighestBossKill           string   `json:"highestBossKill,omitempty"`
	HighestBossKillDifficulty string   `json:"highestBossKillDifficulty,omitempty"`
	WarcraftLogsURL           string   `json:"warcraftLogsUrl,omitempty"`
	WarcraftLogsAvailable     bool     `json:"warcraftLogsAvailable,omitempty"`
}

// DisplayName prefers the display field and falls back to the canonical one.
func (p Player) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.CharacterName
}

// IsZero reports whether the player carries no identity at all. Placeholder
// assist slots are zero players until a member is selected for them.
func (p Player) IsZero() bool {
	return p.Name == "" && p.CharacterName == ""
}

// MergeProviderFields overwrites the provider-sourced attributes of p with
// those from fresh, leaving manually curated fields (role) untouched. Empty
// fresh values do not clobber known data.
func (p *Player) MergeProviderFields(fresh Player) {
	if fresh.Class != "" {
		p.Class = fresh.Class
	}
	if fresh.Race != "" {
		p.Race = fresh.Race
	}
	if fresh.Level != "" {
		p.Level = fresh.Level
	}
	if fresh.Realm != "" {
		p.Realm = fresh.Realm
	}
	if fresh.Region != "" {
		p.Region = fresh.Region
	}
	if fresh.Avatar != "" {
		p.Avatar = fresh.Avatar
	}
	if fresh.OverallRanking != nil {
		v := *fresh.OverallRanking
		p.OverallRanking = &v
	}
	if fresh.OverallRankingMetric != "" {
		p.OverallRankingMetric = fresh.OverallRankingMetric
	}
	if fresh.HighestBossKill != "" {
		p.HighestBossKill = fresh.HighestBossKill
	}
	if fresh.HighestBossKillDifficulty != "" {
		p.HighestBossKillDifficulty = fresh.HighestBossKillDifficulty
	}
	if fresh.WarcraftLogsURL != "" {
		p.WarcraftLogsURL = fresh.WarcraftLogsURL
	}
	if fresh.WarcraftLogsAvailable {
		p.WarcraftLogsAvailable = true
	}
}

// Clone returns a deep copy of the player.
func (p Player) Clone() Player {
	out := p
	if p.OverallRanking != nil {
		v := *p.OverallRanking
		out.OverallRanking = &v
	}
	return out
}
