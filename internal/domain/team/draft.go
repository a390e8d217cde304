package team

import (
	"fmt"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
)

// Draft is an explicit in-progress edit session over a team. The dashboard
// previously kept one ambient draft mutated by UI handlers; modeling it as a
// value passed into each operation keeps edit sequences testable and allows
// concurrent sessions. Every operation re-derives the bucket partition
// before returning.
type Draft struct {
	Team Team
}

// NewDraft starts an edit session over a deep copy of the team.
func NewDraft(t Team) *Draft {
	d := &Draft{Team: t.Clone()}
	d.Team.Normalize()
	return d
}

// SetLeader promotes the member with the given identity to raid leader; an
// empty identity clears the leader. The member is removed from the assist
// list first (a player cannot hold both positions), and the previous leader
// returns to the roster rather than disappearing. The recorded leaderRole
// survives only when the leader identity is unchanged.
func (d *Draft) SetLeader(identity string) error {
	t := &d.Team
	key := roster.NormalizeIdentity(identity)

	if key == "" {
		d.demoteLeader()
		t.Normalize()
		return nil
	}

	if t.RaidLeader != nil && roster.MatchesIdentity(t.RaidLeader.Player, key) {
		return nil
	}

	player, ok := t.memberPlayer(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMember, identity)
	}

	d.removeEverywhere(key)
	d.demoteLeader()

	promoted := player.Clone()
	promoted.Role = ""
	t.RaidLeader = &Leader{Player: promoted}
	t.Normalize()
	return nil
}

// SetLeaderRole annotates the current leader with a raid role; empty clears.
// The annotation is a concrete raid role, so the team-assist marker is
// ignored rather than recorded.
func (d *Draft) SetLeaderRole(role string) error {
	if d.Team.RaidLeader == nil {
		return fmt.Errorf("%w: no raid leader set", ErrUnknownMember)
	}
	if role == "" {
		d.Team.RaidLeader.LeaderRole = ""
		return nil
	}
	parsed := roster.ParseRole(role)
	if parsed == roster.RoleTeamAssist {
		return nil
	}
	d.Team.RaidLeader.LeaderRole = parsed
	return nil
}

// AddAssistSlot appends an empty placeholder assist slot. Placeholders hold
// no identity and are ignored by the exclusion computation until filled.
func (d *Draft) AddAssistSlot() {
	d.Team.RaidAssists = append(d.Team.RaidAssists, Assist{})
}

// SetAssistAt selects a member for the assist slot at index i. An empty
// identity removes the slot entirely, shifting later slots down. Selecting a
// member clones their current descriptive fields into the slot and releases
// whoever previously held it back to the roster.
func (d *Draft) SetAssistAt(i int, identity string) error {
	t := &d.Team
	if i < 0 || i >= len(t.RaidAssists) {
		return fmt.Errorf("%w: %d", ErrAssistSlotRange, i)
	}

	key := roster.NormalizeIdentity(identity)
	if key == "" {
		d.releaseAssist(t.RaidAssists[i])
		t.RaidAssists = append(t.RaidAssists[:i], t.RaidAssists[i+1:]...)
		t.Normalize()
		return nil
	}

	bucket, _, ok := t.findMember(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMember, identity)
	}
	player, _ := t.memberPlayer(key)
	if bucket == bucketLeader {
		d.demoteLeader()
	}

	previous := t.RaidAssists[i]

	// Drop the identity from the roster and from any other assist slot,
	// keeping i pointing at the slot being filled.
	for j := len(t.RaidAssists) - 1; j >= 0; j-- {
		if j == i {
			continue
		}
		if !t.RaidAssists[j].IsZero() && roster.MatchesIdentity(t.RaidAssists[j].Player, key) {
			t.RaidAssists = append(t.RaidAssists[:j], t.RaidAssists[j+1:]...)
			if j < i {
				i--
			}
		}
	}
	members := t.Roster[:0]
	for _, p := range t.Roster {
		if roster.MatchesIdentity(p, key) {
			continue
		}
		members = append(members, p)
	}
	t.Roster = members

	if !previous.IsZero() && !roster.MatchesIdentity(previous.Player, key) {
		d.releaseAssist(previous)
	}

	selected := player.Clone()
	selected.Role = ""
	t.RaidAssists[i] = Assist{Player: selected}
	t.Normalize()
	return nil
}

// SetAssistRoleAt annotates the assist slot at index i; empty clears.
func (d *Draft) SetAssistRoleAt(i int, role string) error {
	if i < 0 || i >= len(d.Team.RaidAssists) {
		return fmt.Errorf("%w: %d", ErrAssistSlotRange, i)
	}
	if role == "" {
		d.Team.RaidAssists[i].AssistRole = ""
		return nil
	}
	d.Team.RaidAssists[i].AssistRole = roster.ParseRole(role)
	return nil
}

// SetPlayerRole changes a member's role. "Team Assist" promotes the member
// into the assist list; any other role demotes an assist back to the roster
// with that role, or simply updates a roster member in place.
func (d *Draft) SetPlayerRole(identity string, role string) error {
	t := &d.Team
	key := roster.NormalizeIdentity(identity)

	bucket, idx, ok := t.findMember(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMember, identity)
	}
	if bucket == bucketLeader {
		return d.SetLeaderRole(role)
	}

	parsed := roster.ParseRole(role)

	if parsed == roster.RoleTeamAssist {
		if bucket == bucketAssist {
			return nil
		}
		player := t.Roster[idx].Clone()
		player.Role = ""
		t.Roster = append(t.Roster[:idx], t.Roster[idx+1:]...)
		t.RaidAssists = append(t.RaidAssists, Assist{Player: player})
		t.Normalize()
		return nil
	}

	if bucket == bucketAssist {
		player := t.RaidAssists[idx].Player.Clone()
		player.Role = parsed
		t.RaidAssists = append(t.RaidAssists[:idx], t.RaidAssists[idx+1:]...)
		t.Roster = append(t.Roster, player)
		t.Normalize()
		return nil
	}

	t.Roster[idx].Role = parsed
	t.Normalize()
	return nil
}

// RemovePlayer deletes the member from whichever bucket holds it. Removing
// the leader leaves the team in a leader-unset state for the UI to surface.
func (d *Draft) RemovePlayer(identity string) error {
	t := &d.Team
	bucket, idx, ok := t.findMember(identity)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMember, identity)
	}
	switch bucket {
	case bucketLeader:
		t.RaidLeader = nil
	case bucketAssist:
		t.RaidAssists = append(t.RaidAssists[:idx], t.RaidAssists[idx+1:]...)
	default:
		t.Roster = append(t.Roster[:idx], t.Roster[idx+1:]...)
	}
	t.Normalize()
	return nil
}

// AddPlayer adds a new member. An identity already present anywhere in the
// team is rejected with ErrDuplicatePlayer and the team is left untouched.
func (d *Draft) AddPlayer(p roster.Player) error {
	t := &d.Team
	if p.IsZero() {
		return fmt.Errorf("%w: player has no name", ErrUnknownMember)
	}
	if t.HasMember(roster.IdentityOf(p)) {
		return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.DisplayName())
	}
	added := p.Clone()
	added.Role = roster.ParseRole(string(added.Role))
	t.Roster = append(t.Roster, added)
	t.Normalize()
	return nil
}

// removeEverywhere drops an identity from the assist list and roster so it
// can be re-inserted into a single bucket without duplication.
func (d *Draft) removeEverywhere(key string) {
	t := &d.Team
	assists := t.RaidAssists[:0]
	for _, a := range t.RaidAssists {
		if !a.IsZero() && roster.MatchesIdentity(a.Player, key) {
			continue
		}
		assists = append(assists, a)
	}
	t.RaidAssists = assists

	members := t.Roster[:0]
	for _, p := range t.Roster {
		if roster.MatchesIdentity(p, key) {
			continue
		}
		members = append(members, p)
	}
	t.Roster = members
}

// demoteLeader moves the current leader (if any) back into the roster.
func (d *Draft) demoteLeader() {
	t := &d.Team
	if t.RaidLeader == nil {
		return
	}
	player := t.RaidLeader.Player.Clone()
	if player.Role == "" {
		player.Role = roster.RoleDPS
	}
	t.RaidLeader = nil
	if !player.IsZero() {
		t.Roster = append(t.Roster, player)
	}
}

// releaseAssist returns a filled assist slot's player to the roster.
func (d *Draft) releaseAssist(a Assist) {
	if a.IsZero() {
		return
	}
	player := a.Player.Clone()
	if player.Role == "" {
		player.Role = roster.RoleDPS
	}
	d.Team.Roster = append(d.Team.Roster, player)
}
