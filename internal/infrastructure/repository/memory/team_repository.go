package memory

import (
	"context"
	"sync"
	"time"

	"github.com/eclipsedgg/raidboard/internal/domain/team"
)

// TeamRepository keeps the ordered team collection in memory. It backs tests
// and local development; the file and postgres stores are the durable ones.
type TeamRepository struct {
	mu    sync.RWMutex
	items []team.Team
	now   func() time.Time
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	items := make([]team.Team, 0, len(teams))
	for _, t := range teams {
		items = append(items, t.Clone())
	}
	return &TeamRepository{items: items, now: time.Now}
}

func (r *TeamRepository) List(_ context.Context) (team.Collection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot(), nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.items {
		if t.TeamID == teamID {
			return t.Clone(), true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item.Clone())
	return nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].TeamID == item.TeamID {
			r.items[i] = item.Clone()
			return true, nil
		}
	}
	return false, nil
}

func (r *TeamRepository) Delete(_ context.Context, teamID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].TeamID == teamID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *TeamRepository) Reorder(_ context.Context, teamID string, dir team.Direction) (team.Collection, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := team.Collection{Teams: r.items}
	if !c.Reorder(teamID, dir) {
		return team.Collection{}, false, nil
	}
	r.items = c.Teams
	return r.snapshot(), true, nil
}

func (r *TeamRepository) snapshot() team.Collection {
	out := make([]team.Team, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, t.Clone())
	}
	now := r.now()
	return team.Collection{Teams: out, LastUpdated: &now}
}
