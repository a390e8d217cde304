package team

import "github.com/eclipsedgg/raidboard/internal/domain/roster"

// MergeRoster reconciles a freshly fetched roster into an existing team
// without losing manual edits. For every fresh player already known to the
// team (in any bucket) only the provider-sourced attributes are refreshed;
// manually set roles and cosmetics survive. Unknown fresh players join the
// roster with their provider role, defaulting to DPS. Members missing from
// the fresh fetch are retained; removal is always an explicit edit. The
// leader/assist exclusion is re-derived as the final step, so the result
// honors the bucket partition no matter what the inputs looked like.
//
// The merge is pure and idempotent: re-merging identical fresh data changes
// nothing further.
func MergeRoster(existing Team, fresh []roster.Player) Team {
	out := existing.Clone()

	for _, fp := range fresh {
		if fp.IsZero() {
			continue
		}
		if !mergeIntoExisting(&out, fp) {
			added := fp.Clone()
			added.Role = roster.ParseRole(string(added.Role))
			out.Roster = append(out.Roster, added)
		}
	}

	out.Normalize()
	return out
}

// mergeIntoExisting refreshes the first member matching fp and reports
// whether a match was found.
func mergeIntoExisting(t *Team, fp roster.Player) bool {
	if t.RaidLeader != nil && roster.Same(t.RaidLeader.Player, fp) {
		t.RaidLeader.MergeProviderFields(fp)
		return true
	}
	for i := range t.RaidAssists {
		if !t.RaidAssists[i].IsZero() && roster.Same(t.RaidAssists[i].Player, fp) {
			t.RaidAssists[i].MergeProviderFields(fp)
			return true
		}
	}
	for i := range t.Roster {
		if roster.Same(t.Roster[i], fp) {
			t.Roster[i].MergeProviderFields(fp)
			return true
		}
	}
	return false
}

// MergeProgress keeps the existing progress unless the fresh scrape actually
// produced one.
func MergeProgress(existing, fresh Progress) Progress {
	out := existing
	if fresh.BossesKilled != nil {
		v := *fresh.BossesKilled
		out.BossesKilled = &v
	}
	if fresh.TotalBosses > 0 {
		out.TotalBosses = fresh.TotalBosses
	}
	if fresh.HighestDifficulty != "" {
		out.HighestDifficulty = fresh.HighestDifficulty
	}
	return out
}
