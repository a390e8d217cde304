package warcraftlogs

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
	"github.com/eclipsedgg/raidboard/internal/domain/team"
)

var (
	progressRegex = regexp.MustCompile(`(\d+)\s*/\s*(\d+)\s*([MHN])\b`)
	bossKillRegex = regexp.MustCompile(`(\d+)\s*/\s*(\d+)`)
)

// specRoles maps the tank and healer specializations the roster page shows.
// Everything else is damage and stays unclassified here so a manual role is
// never clobbered downstream.
var specRoles = map[string]roster.Role{
	"blood":         roster.RoleTank,
	"vengeance":     roster.RoleTank,
	"guardian":      roster.RoleTank,
	"brewmaster":    roster.RoleTank,
	"protection":    roster.RoleTank,
	"restoration":   roster.RoleHealer,
	"holy":          roster.RoleHealer,
	"discipline":    roster.RoleHealer,
	"mistweaver":    roster.RoleHealer,
	"preservation":  roster.RoleHealer,
}

// parseGuildRoster reads the characters table. Each row carries the character
// name link, the class as a CSS class on the name cell, and the spec column
// the role is derived from.
func parseGuildRoster(r io.Reader, region, realm string) ([]roster.Player, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("read roster document: %w", err)
	}

	players := make([]roster.Player, 0, 32)
	doc.Find("table#guild-roster tbody tr, table.characters tbody tr").Each(func(_ int, row *goquery.Selection) {
		link := row.Find("td a[href*='/character/']").First()
		name := strings.TrimSpace(link.Text())
		if name == "" {
			return
		}

		p := roster.Player{
			CharacterName: name,
			Name:          name,
			Region:        region,
			Realm:         realm,
			Class:         classFromAttr(link.AttrOr("class", "")),
		}
		if href, ok := link.Attr("href"); ok {
			if r, rl, ok := splitCharacterHref(href); ok {
				p.Region, p.Realm = r, rl
			}
		}

		spec := strings.TrimSpace(row.Find("td.spec, td[data-spec]").First().Text())
		if role, ok := specRoles[strings.ToLower(spec)]; ok {
			p.Role = role
		}

		players = append(players, p)
	})

	return players, nil
}

// parseCharacterPage extracts the all-star summary from a character page.
// Returns false when the page has no parse data at all.
func parseCharacterPage(r io.Reader) (roster.Player, bool, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return roster.Player{}, false, fmt.Errorf("read character document: %w", err)
	}

	var p roster.Player
	found := false

	if raw := strings.TrimSpace(doc.Find(".best-perf-avg b, #best-perf-avg").First().Text()); raw != "" {
		if value, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64); err == nil {
			p.OverallRanking = &value
			found = true
		}
	}
	if metric := strings.TrimSpace(doc.Find(".best-perf-avg .metric, [data-metric]").First().Text()); metric != "" {
		p.OverallRankingMetric = strings.ToLower(metric)
	} else if p.OverallRanking != nil {
		p.OverallRankingMetric = "dps"
	}

	doc.Find(".zone-progress, .character-progress").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		loc := bossKillRegex.FindStringIndex(text)
		if loc == nil {
			return true
		}
		// The boss or zone label sits in front of the "6/8" fragment.
		p.HighestBossKill = strings.TrimRight(strings.TrimSpace(text[:loc[0]]), " -:")
		p.HighestBossKillDifficulty = difficultyFromText(text)
		found = true
		return false
	})

	return p, found, nil
}

// parseGuildProgress reads the "N/M D" banner from the guild landing page.
func parseGuildProgress(r io.Reader) (team.Progress, bool, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return team.Progress{}, false, fmt.Errorf("read guild document: %w", err)
	}

	text := strings.TrimSpace(doc.Find(".guild-progress, #guild-progress").First().Text())
	if text == "" {
		text = strings.TrimSpace(doc.Find("title").Text())
	}
	m := progressRegex.FindStringSubmatch(text)
	if m == nil {
		return team.Progress{}, false, nil
	}

	killed, _ := strconv.Atoi(m[1])
	total, _ := strconv.Atoi(m[2])
	return team.Progress{
		BossesKilled:      &killed,
		TotalBosses:       total,
		HighestDifficulty: difficultyFromLetter(m[3]),
	}, true, nil
}

// classFromAttr picks the class name out of a link's CSS classes, which look
// like "Druid color-class" on roster rows.
func classFromAttr(attr string) string {
	for _, field := range strings.Fields(attr) {
		switch field {
		case "DeathKnight":
			return "Death Knight"
		case "DemonHunter":
			return "Demon Hunter"
		case "Druid", "Evoker", "Hunter", "Mage", "Monk", "Paladin",
			"Priest", "Rogue", "Shaman", "Warlock", "Warrior":
			return field
		}
	}
	return ""
}

// splitCharacterHref parses region and realm out of
// "/character/us/some-realm/name" style links.
func splitCharacterHref(href string) (region, realm string, ok bool) {
	idx := strings.Index(href, "/character/")
	if idx < 0 {
		return "", "", false
	}
	parts := strings.Split(strings.Trim(href[idx+len("/character/"):], "/"), "/")
	if len(parts) < 3 {
		return "", "", false
	}
	return strings.ToLower(parts[0]), unslugRealm(parts[1]), true
}

func unslugRealm(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func difficultyFromText(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "mythic"):
		return "Mythic"
	case strings.Contains(lower, "heroic"):
		return "Heroic"
	case strings.Contains(lower, "normal"):
		return "Normal"
	}
	if m := progressRegex.FindStringSubmatch(text); m != nil {
		return difficultyFromLetter(m[3])
	}
	return ""
}

func difficultyFromLetter(letter string) string {
	switch strings.ToUpper(letter) {
	case "M":
		return "Mythic"
	case "H":
		return "Heroic"
	case "N":
		return "Normal"
	default:
		return ""
	}
}
