package warcraftlogs

import (
	"strings"
	"testing"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
)

const rosterHTML = `
<html><body>
<table id="guild-roster"><tbody>
<tr>
  <td><a class="Druid" href="/character/us/emerald-dream/ratayu">Ratayu</a></td>
  <td class="spec">Guardian</td>
</tr>
<tr>
  <td><a class="Priest" href="/character/us/emerald-dream/lumi">Lumi</a></td>
  <td class="spec">Holy</td>
</tr>
<tr>
  <td><a class="Mage" href="/character/us/emerald-dream/zap">Zap</a></td>
  <td class="spec">Frost</td>
</tr>
<tr><td>no link here</td></tr>
</tbody></table>
</body></html>`

func TestParseGuildRoster(t *testing.T) {
	players, err := parseGuildRoster(strings.NewReader(rosterHTML), "us", "Stormrage")
	if err != nil {
		t.Fatalf("parse guild roster: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}

	tank := players[0]
	if tank.CharacterName != "Ratayu" || tank.Class != "Druid" || tank.Role != roster.RoleTank {
		t.Fatalf("tank row parsed wrong: %+v", tank)
	}
	if tank.Realm != "Emerald Dream" || tank.Region != "us" {
		t.Fatalf("realm and region come from the character link: %+v", tank)
	}

	if players[1].Role != roster.RoleHealer {
		t.Fatalf("holy priest should classify as healer: %+v", players[1])
	}
	if players[2].Role != "" {
		t.Fatalf("damage specs stay unclassified: %+v", players[2])
	}
}

const characterHTML = `
<html><body>
<div class="best-perf-avg"><b>94.7</b><span class="metric">HPS</span></div>
<div class="zone-progress">Manaforge Omega 6/8 Mythic</div>
</body></html>`

func TestParseCharacterPage(t *testing.T) {
	p, ok, err := parseCharacterPage(strings.NewReader(characterHTML))
	if err != nil || !ok {
		t.Fatalf("parse character page: ok=%v err=%v", ok, err)
	}
	if p.OverallRanking == nil || *p.OverallRanking != 94.7 {
		t.Fatalf("expected ranking 94.7, got %+v", p.OverallRanking)
	}
	if p.OverallRankingMetric != "hps" {
		t.Fatalf("expected hps metric, got %q", p.OverallRankingMetric)
	}
	if p.HighestBossKill != "Manaforge Omega" || p.HighestBossKillDifficulty != "Mythic" {
		t.Fatalf("progress parsed wrong: %+v", p)
	}
}

func TestParseCharacterPage_BossKillKeepsName(t *testing.T) {
	html := `<html><body>
<div class="character-progress">Dimensius, the All-Devouring - 8/8 Heroic</div>
</body></html>`
	p, ok, err := parseCharacterPage(strings.NewReader(html))
	if err != nil || !ok {
		t.Fatalf("parse character page: ok=%v err=%v", ok, err)
	}
	if p.HighestBossKill != "Dimensius, the All-Devouring" {
		t.Fatalf("expected the boss label, got %q", p.HighestBossKill)
	}
	if p.HighestBossKillDifficulty != "Heroic" {
		t.Fatalf("expected Heroic, got %q", p.HighestBossKillDifficulty)
	}
}

func TestParseCharacterPage_NoParses(t *testing.T) {
	_, ok, err := parseCharacterPage(strings.NewReader("<html><body>No rankings found.</body></html>"))
	if err != nil {
		t.Fatalf("parse character page: %v", err)
	}
	if ok {
		t.Fatal("a page without parse data must report not found")
	}
}

func TestParseGuildProgress(t *testing.T) {
	html := `<html><head><title>Dark Matter - 7/8 M Manaforge Omega</title></head><body></body></html>`
	progress, ok, err := parseGuildProgress(strings.NewReader(html))
	if err != nil || !ok {
		t.Fatalf("parse guild progress: ok=%v err=%v", ok, err)
	}
	if progress.BossesKilled == nil || *progress.BossesKilled != 7 || progress.TotalBosses != 8 {
		t.Fatalf("expected 7/8, got %+v", progress)
	}
	if progress.HighestDifficulty != "Mythic" {
		t.Fatalf("expected Mythic, got %q", progress.HighestDifficulty)
	}
}
