// Package community classifies and filters flat member lists by performance
// and activity criteria for the community tab.
package community

import (
	"fmt"
	"strings"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
)

// Filter is a named, mutually exclusive bucket evaluated over a member's
// overall ranking percentile and highest boss-kill difficulty.
type Filter string

const (
	FilterAll      Filter = "all"
	Filter95Plus   Filter = "95+"
	Filter90To94   Filter = "90-94"
	Filter75To89   Filter = "75-89"
	Filter50To74   Filter = "50-74"
	FilterMythic   Filter = "mythic"
	FilterHeroic   Filter = "heroic"
	FilterActive   Filter = "active"
)

var allFilters = map[Filter]struct{}{
	FilterAll:    {},
	Filter95Plus: {},
	Filter90To94: {},
	Filter75To89: {},
	Filter50To74: {},
	FilterMythic: {},
	FilterHeroic: {},
	FilterActive: {},
}

// ParseFilter validates a raw filter name; empty input means "all".
func ParseFilter(raw string) (Filter, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return FilterAll, nil
	}
	f := Filter(raw)
	if _, ok := allFilters[f]; !ok {
		return "", fmt.Errorf("unknown member filter: %q", raw)
	}
	return f, nil
}

// Apply returns the members matching the filter. Members without a parseable
// ranking never match a numeric-range bucket.
func Apply(members []roster.Player, f Filter) []roster.Player {
	if f == FilterAll {
		out := make([]roster.Player, len(members))
		copy(out, members)
		return out
	}

	out := make([]roster.Player, 0, len(members))
	for _, m := range members {
		if matches(m, f) {
			out = append(out, m)
		}
	}
	return out
}

func matches(m roster.Player, f Filter) bool {
	switch f {
	case Filter95Plus:
		return m.OverallRanking != nil && *m.OverallRanking >= 95
	case Filter90To94:
		return inRankingRange(m, 90, 95)
	case Filter75To89:
		return inRankingRange(m, 75, 90)
	case Filter50To74:
		return inRankingRange(m, 50, 75)
	case FilterMythic:
		return strings.Contains(strings.ToLower(m.HighestBossKillDifficulty), "mythic")
	case FilterHeroic:
		return strings.Contains(strings.ToLower(m.HighestBossKillDifficulty), "heroic")
	case FilterActive:
		return m.WarcraftLogsAvailable
	default:
		return true
	}
}

func inRankingRange(m roster.Player, lo, hi float64) bool {
	if m.OverallRanking == nil {
		return false
	}
	r := *m.OverallRanking
	return r >= lo && r < hi
}
