package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/eclipsedgg/raidboard/internal/domain/team"
	qb "github.com/eclipsedgg/raidboard/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) (team.Collection, error) {
	query, args, err := qb.Select("*").From("teams").OrderBy("position ASC", "id ASC").ToSQL()
	if err != nil {
		return team.Collection{}, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return team.Collection{}, fmt.Errorf("list teams: %w", err)
	}

	c := team.Collection{Teams: make([]team.Team, 0, len(rows))}
	var latest time.Time
	for _, row := range rows {
		t, err := teamFromRow(row)
		if err != nil {
			return team.Collection{}, err
		}
		c.Teams = append(c.Teams, t)
		if row.UpdatedAt.After(latest) {
			latest = row.UpdatedAt
		}
	}
	if !latest.IsZero() {
		c.LastUpdated = &latest
	}
	return c, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}

	t, err := teamFromRow(row)
	if err != nil {
		return team.Team{}, false, err
	}
	return t, true, nil
}

func (r *TeamRepository) Create(ctx context.Context, item team.Team) error {
	doc, err := teamDocument(item)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx create team: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var position int
	if err := tx.GetContext(ctx, &position, "SELECT COALESCE(MAX(position), 0) + 1 FROM teams"); err != nil {
		return fmt.Errorf("next team position: %w", err)
	}

	insertModel := teamInsertModel{
		TeamID:   item.TeamID,
		Position: position,
		Document: doc,
	}
	query, args, err := qb.InsertModel("teams", insertModel, "")
	if err != nil {
		return fmt.Errorf("build create team query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create team: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create team tx: %w", err)
	}
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (bool, error) {
	doc, err := teamDocument(item)
	if err != nil {
		return false, err
	}

	query, args, err := qb.Update("teams").
		Set("document", doc).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("team_id", item.TeamID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update team query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update team: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected update team: %w", err)
	}
	return affected > 0, nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM teams WHERE team_id = $1", teamID)
	if err != nil {
		return false, fmt.Errorf("delete team: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete team: %w", err)
	}
	return affected > 0, nil
}

// Reorder swaps the row's position with its neighbor in the requested
// direction. A team already at the edge is not an error, the collection
// simply comes back unchanged.
func (r *TeamRepository) Reorder(ctx context.Context, teamID string, dir team.Direction) (team.Collection, bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return team.Collection{}, false, fmt.Errorf("begin tx reorder teams: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var current teamTableModel
	if err := tx.GetContext(ctx, &current, "SELECT * FROM teams WHERE team_id = $1 FOR UPDATE", teamID); err != nil {
		if isNotFound(err) {
			return team.Collection{}, false, nil
		}
		return team.Collection{}, false, fmt.Errorf("get team for reorder: %w", err)
	}

	neighborQuery := "SELECT * FROM teams WHERE position > $1 ORDER BY position ASC LIMIT 1 FOR UPDATE"
	if dir == team.DirectionUp {
		neighborQuery = "SELECT * FROM teams WHERE position < $1 ORDER BY position DESC LIMIT 1 FOR UPDATE"
	}
	var neighbor teamTableModel
	if err := tx.GetContext(ctx, &neighbor, neighborQuery, current.Position); err != nil {
		if isNotFound(err) {
			// Already at the boundary.
			c, listErr := r.List(ctx)
			return c, true, listErr
		}
		return team.Collection{}, false, fmt.Errorf("get reorder neighbor: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "UPDATE teams SET position = $1, updated_at = NOW() WHERE id = $2", neighbor.Position, current.ID); err != nil {
		return team.Collection{}, false, fmt.Errorf("move team: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "UPDATE teams SET position = $1, updated_at = NOW() WHERE id = $2", current.Position, neighbor.ID); err != nil {
		return team.Collection{}, false, fmt.Errorf("move neighbor team: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return team.Collection{}, false, fmt.Errorf("commit reorder teams tx: %w", err)
	}

	c, err := r.List(ctx)
	if err != nil {
		return team.Collection{}, false, err
	}
	return c, true, nil
}
