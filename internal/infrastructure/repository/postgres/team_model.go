package postgres

import (
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/eclipsedgg/raidboard/internal/domain/team"
)

// Teams are stored as whole documents. The relational part is only identity
// and ordering; everything the editor touches lives in the jsonb column so
// the schema never chases the roster shape.
type teamTableModel struct {
	ID        int64     `db:"id"`
	TeamID    string    `db:"team_id"`
	Position  int       `db:"position"`
	Document  []byte    `db:"document"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type teamInsertModel struct {
	TeamID   string `db:"team_id"`
	Position int    `db:"position"`
	Document []byte `db:"document"`
}

func teamFromRow(row teamTableModel) (team.Team, error) {
	var t team.Team
	if err := sonic.Unmarshal(row.Document, &t); err != nil {
		return team.Team{}, fmt.Errorf("decode team document %s: %w", row.TeamID, err)
	}
	t.TeamID = row.TeamID
	return t, nil
}

func teamDocument(t team.Team) ([]byte, error) {
	data, err := sonic.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode team document %s: %w", t.TeamID, err)
	}
	return data, nil
}
