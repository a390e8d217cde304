package file

import (
	"context"

	"github.com/eclipsedgg/raidboard/internal/domain/snapshot"
)

const (
	applicantsFile = "applicants.json"
	guildsFile     = "guilds.json"
	councilFile    = "council.json"
	communityFile  = "community-teams.json"
)

// SnapshotRepository keeps each dashboard document in its own JSON file so a
// sync for one document never touches the others.
type SnapshotRepository struct {
	applicants *store
	guilds     *store
	council    *store
	community  *store
}

func NewSnapshotRepository(dataDir string) (*SnapshotRepository, error) {
	r := &SnapshotRepository{}
	for _, doc := range []struct {
		name string
		dst  **store
	}{
		{applicantsFile, &r.applicants},
		{guildsFile, &r.guilds},
		{councilFile, &r.council},
		{communityFile, &r.community},
	} {
		s, err := newStore(dataDir, doc.name)
		if err != nil {
			return nil, err
		}
		*doc.dst = s
	}
	return r, nil
}

func (r *SnapshotRepository) GetApplicants(_ context.Context) (snapshot.Applicants, bool, error) {
	r.applicants.mu.Lock()
	defer r.applicants.mu.Unlock()
	var doc snapshot.Applicants
	ok, err := r.applicants.load(&doc)
	return doc, ok, err
}

func (r *SnapshotRepository) PutApplicants(_ context.Context, doc snapshot.Applicants) error {
	r.applicants.mu.Lock()
	defer r.applicants.mu.Unlock()
	return r.applicants.save(doc)
}

func (r *SnapshotRepository) GetGuilds(_ context.Context) (snapshot.Guilds, bool, error) {
	r.guilds.mu.Lock()
	defer r.guilds.mu.Unlock()
	var doc snapshot.Guilds
	ok, err := r.guilds.load(&doc)
	return doc, ok, err
}

func (r *SnapshotRepository) PutGuilds(_ context.Context, doc snapshot.Guilds) error {
	r.guilds.mu.Lock()
	defer r.guilds.mu.Unlock()
	return r.guilds.save(doc)
}

func (r *SnapshotRepository) GetCouncil(_ context.Context) (snapshot.Council, bool, error) {
	r.council.mu.Lock()
	defer r.council.mu.Unlock()
	var doc snapshot.Council
	ok, err := r.council.load(&doc)
	return doc, ok, err
}

func (r *SnapshotRepository) PutCouncil(_ context.Context, doc snapshot.Council) error {
	r.council.mu.Lock()
	defer r.council.mu.Unlock()
	return r.council.save(doc)
}

func (r *SnapshotRepository) GetCommunity(_ context.Context) (snapshot.Community, bool, error) {
	r.community.mu.Lock()
	defer r.community.mu.Unlock()
	var doc snapshot.Community
	ok, err := r.community.load(&doc)
	return doc, ok, err
}

func (r *SnapshotRepository) PutCommunity(_ context.Context, doc snapshot.Community) error {
	r.community.mu.Lock()
	defer r.community.mu.Unlock()
	return r.community.save(doc)
}

func (r *SnapshotRepository) Status(_ context.Context) (snapshot.Status, error) {
	return snapshot.Status{
		Applicants: r.applicants.exists(),
		Guilds:     r.guilds.exists(),
		Council:    r.council.exists(),
		Community:  r.community.exists(),
	}, nil
}
