package file

import (
	"context"
	"time"

	"github.com/eclipsedgg/raidboard/internal/domain/team"
)

const teamsFile = "teams-editor.json"

// TeamRepository stores the ordered team collection as a single JSON document.
// Every mutation rewrites the whole file, which keeps the on-disk shape
// identical to what the list endpoint serves.
type TeamRepository struct {
	store *store
	now   func() time.Time
}

func NewTeamRepository(dataDir string) (*TeamRepository, error) {
	s, err := newStore(dataDir, teamsFile)
	if err != nil {
		return nil, err
	}
	return &TeamRepository{store: s, now: time.Now}, nil
}

func (r *TeamRepository) List(_ context.Context) (team.Collection, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.load()
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, err := r.load()
	if err != nil {
		return team.Team{}, false, err
	}
	for _, t := range c.Teams {
		if t.TeamID == teamID {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, err := r.load()
	if err != nil {
		return err
	}
	c.Teams = append(c.Teams, item.Clone())
	return r.save(c)
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, err := r.load()
	if err != nil {
		return false, err
	}
	for i := range c.Teams {
		if c.Teams[i].TeamID == item.TeamID {
			c.Teams[i] = item.Clone()
			return true, r.save(c)
		}
	}
	return false, nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, err := r.load()
	if err != nil {
		return false, err
	}
	for i := range c.Teams {
		if c.Teams[i].TeamID == teamID {
			c.Teams = append(c.Teams[:i], c.Teams[i+1:]...)
			return true, r.save(c)
		}
	}
	return false, nil
}

func (r *TeamRepository) Reorder(_ context.Context, teamID string, dir team.Direction) (team.Collection, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, err := r.load()
	if err != nil {
		return team.Collection{}, false, err
	}
	if !c.Reorder(teamID, dir) {
		return team.Collection{}, false, nil
	}
	if err := r.save(c); err != nil {
		return team.Collection{}, false, err
	}
	return c, true, nil
}

// load reads the document under the store lock. Callers must hold store.mu.
func (r *TeamRepository) load() (team.Collection, error) {
	var c team.Collection
	if _, err := r.store.load(&c); err != nil {
		return team.Collection{}, err
	}
	if c.Teams == nil {
		c.Teams = []team.Team{}
	}
	return c, nil
}

func (r *TeamRepository) save(c team.Collection) error {
	now := r.now()
	c.LastUpdated = &now
	return r.store.save(c)
}
