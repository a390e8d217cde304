package usecase

import (
	"context"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
	"github.com/eclipsedgg/raidboard/internal/domain/snapshot"
	"github.com/eclipsedgg/raidboard/internal/domain/team"
)

// ExternalGuildMember is one row from the game guild roster, rank included so
// callers can select officer tiers.
type ExternalGuildMember struct {
	Player roster.Player
	Rank   int
}

// LogsProvider reads public combat-log data: the guild roster page and
// per-character performance rankings.
type LogsProvider interface {
	FetchGuildRoster(ctx context.Context) ([]roster.Player, error)
	FetchCharacterRanking(ctx context.Context, name, realm, region string) (roster.Player, bool, error)
	FetchGuildProgress(ctx context.Context) (team.Progress, bool, error)
}

// ProfileProvider reads character profiles and guild membership from the
// game's official API.
type ProfileProvider interface {
	FetchCharacter(ctx context.Context, name, realm, region string) (roster.Player, bool, error)
	FetchGuildMembers(ctx context.Context, realm, guild string, maxRank int) ([]ExternalGuildMember, error)
}

// GuildDirectory lists recruiting guilds from the public directory.
type GuildDirectory interface {
	SearchRecruitingGuilds(ctx context.Context, region string) ([]snapshot.GuildListing, error)
}

// ApplicantSource reads recruitment applications from the published sheet.
type ApplicantSource interface {
	FetchApplicants(ctx context.Context) ([]snapshot.Applicant, error)
}
