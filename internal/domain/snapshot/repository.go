package snapshot

import "context"

// Repository persists snapshot documents with whole-document semantics: a
// sync replaces the entire document or leaves it untouched.
type Repository interface {
	GetApplicants(ctx context.Context) (Applicants, bool, error)
	PutApplicants(ctx context.Context, doc Applicants) error
	GetGuilds(ctx context.Context) (Guilds, bool, error)
	PutGuilds(ctx context.Context, doc Guilds) error
	GetCouncil(ctx context.Context) (Council, bool, error)
	PutCouncil(ctx context.Context, doc Council) error
	GetCommunity(ctx context.Context) (Community, bool, error)
	PutCommunity(ctx context.Context, doc Community) error
	Status(ctx context.Context) (Status, error)
}
