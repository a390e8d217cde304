package memory

import (
	"context"
	"sync"

	"github.com/eclipsedgg/raidboard/internal/domain/snapshot"
)

// SnapshotRepository holds the dashboard snapshot documents in memory.
type SnapshotRepository struct {
	mu sync.RWMutex

	applicants    snapshot.Applicants
	hasApplicants bool
	guilds        snapshot.Guilds
	hasGuilds     bool
	council       snapshot.Council
	hasCouncil    bool
	community     snapshot.Community
	hasCommunity  bool
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{}
}

func (r *SnapshotRepository) GetApplicants(_ context.Context) (snapshot.Applicants, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.applicants, r.hasApplicants, nil
}

func (r *SnapshotRepository) PutApplicants(_ context.Context, doc snapshot.Applicants) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applicants = doc
	r.hasApplicants = true
	return nil
}

func (r *SnapshotRepository) GetGuilds(_ context.Context) (snapshot.Guilds, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.guilds, r.hasGuilds, nil
}

func (r *SnapshotRepository) PutGuilds(_ context.Context, doc snapshot.Guilds) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guilds = doc
	r.hasGuilds = true
	return nil
}

func (r *SnapshotRepository) GetCouncil(_ context.Context) (snapshot.Council, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.council, r.hasCouncil, nil
}

func (r *SnapshotRepository) PutCouncil(_ context.Context, doc snapshot.Council) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.council = doc
	r.hasCouncil = true
	return nil
}

func (r *SnapshotRepository) GetCommunity(_ context.Context) (snapshot.Community, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.community, r.hasCommunity, nil
}

func (r *SnapshotRepository) PutCommunity(_ context.Context, doc snapshot.Community) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.community = doc
	r.hasCommunity = true
	return nil
}

func (r *SnapshotRepository) Status(_ context.Context) (snapshot.Status, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return snapshot.Status{
		Applicants: r.hasApplicants,
		Guilds:     r.hasGuilds,
		Council:    r.hasCouncil,
		Community:  r.hasCommunity,
	}, nil
}
