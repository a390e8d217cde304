package team

import (
	"errors"
	"fmt"
	"time"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
)

var (
	ErrEmptyTeamName    = errors.New("team name is required")
	ErrDuplicatePlayer  = errors.New("player already present in team")
	ErrUnknownMember    = errors.New("no team member with that identity")
	ErrAssistSlotRange  = errors.New("assist slot index out of range")
	ErrInvalidDirection = errors.New("direction must be up or down")
)

const DefaultBorderColor = "#6B7280"

// Progress tracks raid-tier completion scraped alongside the roster.
type Progress struct {
	BossesKilled      *int   `json:"bossesKilled"`
	TotalBosses       int    `json:"totalBosses"`
	HighestDifficulty string `json:"highestDifficulty,omitempty"`
}

// Leader is the raid leader reference with its optional role annotation.
type Leader struct {
	roster.Player
	LeaderRole roster.Role `json:"leaderRole,omitempty"`
}

// Assist is one ordered raid-assist slot. A slot with a zero player is a
// placeholder awaiting selection and takes no part in identity matching.
type Assist struct {
	roster.Player
	AssistRole roster.Role `json:"assistRole,omitempty"`
}

// Team is a named raid roster, the unit of persistence. The invariant held
// at every mutation: leader, assists and roster are disjoint by identity
// key, and together they carry every known member of the team.
type Team struct {
	TeamID              string          `json:"teamId"`
	TeamName            string          `json:"teamName"`
	WarcraftLogsTeamURL string          `json:"warcraftLogsTeamUrl,omitempty"`
	RaidLeader          *Leader         `json:"raidLeader"`
	RaidAssists         []Assist        `json:"raidAssists"`
	Roster              []roster.Player `json:"roster"`
	Progress            Progress        `json:"progress"`
	BorderColor         string          `json:"borderColor,omitempty"`
	TeamLogo            string          `json:"teamLogo,omitempty"`
	LastUpdated         *time.Time      `json:"lastUpdated"`
}

func (t Team) Validate() error {
	if t.TeamName == "" {
		return ErrEmptyTeamName
	}
	return nil
}

// Clone returns a deep copy of the team.
func (t Team) Clone() Team {
	out := t
	if t.RaidLeader != nil {
		leader := *t.RaidLeader
		leader.Player = t.RaidLeader.Player.Clone()
		out.RaidLeader = &leader
	}
	out.RaidAssists = make([]Assist, len(t.RaidAssists))
	for i, a := range t.RaidAssists {
		out.RaidAssists[i] = Assist{Player: a.Player.Clone(), AssistRole: a.AssistRole}
	}
	out.Roster = make([]roster.Player, len(t.Roster))
	for i, p := range t.Roster {
		out.Roster[i] = p.Clone()
	}
	if t.Progress.BossesKilled != nil {
		v := *t.Progress.BossesKilled
		out.Progress.BossesKilled = &v
	}
	if t.LastUpdated != nil {
		v := *t.LastUpdated
		out.LastUpdated = &v
	}
	return out
}

// Classify assigns the player's effective role with the dashboard's
// precedence: leader match, assist match, explicit team-assist marker, then
// the player's own role text, defaulting to DPS.
func (t Team) Classify(p roster.Player) roster.Role {
	if t.RaidLeader != nil && !t.RaidLeader.IsZero() && roster.Same(t.RaidLeader.Player, p) {
		return roster.RoleTeamLead
	}
	for _, a := range t.RaidAssists {
		if !a.IsZero() && roster.Same(a.Player, p) {
			return roster.RoleRaidAssist
		}
	}
	return roster.ParseRole(string(p.Role))
}

// HasMember reports whether an identity is already present in any bucket.
func (t Team) HasMember(identity string) bool {
	_, _, ok := t.findMember(identity)
	return ok
}

type memberBucket int

const (
	bucketLeader memberBucket = iota
	bucketAssist
	bucketRoster
)

// findMember locates an identity across leader, assists and roster. The
// returned index is only meaningful for the assist and roster buckets.
func (t Team) findMember(identity string) (memberBucket, int, bool) {
	key := roster.NormalizeIdentity(identity)
	if key == "" {
		return 0, 0, false
	}
	if t.RaidLeader != nil && roster.MatchesIdentity(t.RaidLeader.Player, key) {
		return bucketLeader, 0, true
	}
	for i, a := range t.RaidAssists {
		if roster.MatchesIdentity(a.Player, key) {
			return bucketAssist, i, true
		}
	}
	for i, p := range t.Roster {
		if roster.MatchesIdentity(p, key) {
			return bucketRoster, i, true
		}
	}
	return 0, 0, false
}

// memberPlayer returns the player record currently held for an identity.
func (t Team) memberPlayer(identity string) (roster.Player, bool) {
	bucket, idx, ok := t.findMember(identity)
	if !ok {
		return roster.Player{}, false
	}
	switch bucket {
	case bucketLeader:
		return t.RaidLeader.Player, true
	case bucketAssist:
		return t.RaidAssists[idx].Player, true
	default:
		return t.Roster[idx], true
	}
}

// Normalize re-derives the leader/assist exclusion and enforces the bucket
// partition. It runs as the final step of every merge and manual edit:
//   - roster members matching the leader or a filled assist slot are dropped
//     from the roster,
//   - roster members explicitly marked Team Assist are promoted into the
//     assist list,
//   - duplicate roster identities collapse to their first occurrence,
//   - concrete roles are re-parsed so free text never leaks through,
//   - the roster is re-sorted into the deterministic bucket order.
func (t *Team) Normalize() {
	if t.RaidLeader != nil && t.RaidLeader.IsZero() {
		t.RaidLeader = nil
	}
	if t.RaidAssists == nil {
		t.RaidAssists = []Assist{}
	}

	// Leader can never double as an assist.
	if t.RaidLeader != nil {
		kept := t.RaidAssists[:0]
		for _, a := range t.RaidAssists {
			if !a.IsZero() && roster.Same(a.Player, t.RaidLeader.Player) {
				continue
			}
			kept = append(kept, a)
		}
		t.RaidAssists = kept
	}

	out := make([]roster.Player, 0, len(t.Roster))
	for _, p := range t.Roster {
		if p.IsZero() {
			continue
		}
		switch t.Classify(p) {
		case roster.RoleTeamLead, roster.RoleRaidAssist:
			continue
		case roster.RoleTeamAssist:
			promoted := p.Clone()
			promoted.Role = ""
			t.RaidAssists = append(t.RaidAssists, Assist{Player: promoted})
			continue
		default:
			dup := false
			for _, seen := range out {
				if roster.Same(seen, p) {
					dup = true
					break
				}
			}
			if dup {
				continue
			}
			p.Role = roster.ParseRole(string(p.Role))
			out = append(out, p)
		}
	}
	roster.SortPlayers(out)
	t.Roster = out
}

// Collection is the ordered list of saved teams; array order drives sidebar
// display order and is the only ordering the store knows about.
type Collection struct {
	Teams       []Team     `json:"teams"`
	LastUpdated *time.Time `json:"lastUpdated"`
}

// Direction is a reorder direction for a team within the collection.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

func ParseDirection(raw string) (Direction, error) {
	switch Direction(raw) {
	case DirectionUp:
		return DirectionUp, nil
	case DirectionDown:
		return DirectionDown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, raw)
	}
}

// Reorder swaps the team with its immediate neighbor in the given direction.
// Moving past either boundary is a no-op, not an error. Returns false when
// the id is unknown.
func (c *Collection) Reorder(teamID string, dir Direction) bool {
	idx := -1
	for i, t := range c.Teams {
		if t.TeamID == teamID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	switch dir {
	case DirectionUp:
		if idx > 0 {
			c.Teams[idx-1], c.Teams[idx] = c.Teams[idx], c.Teams[idx-1]
		}
	case DirectionDown:
		if idx < len(c.Teams)-1 {
			c.Teams[idx], c.Teams[idx+1] = c.Teams[idx+1], c.Teams[idx]
		}
	}
	return true
}
