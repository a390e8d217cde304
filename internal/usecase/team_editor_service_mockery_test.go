package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/eclipsedgg/raidboard/internal/domain/team"
	teammock "github.com/eclipsedgg/raidboard/internal/mocks/domain/team"
	"github.com/eclipsedgg/raidboard/internal/platform/logging"
)

func TestTeamEditorService_GetTeam_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	teams := teammock.NewRepository(t)
	service := NewTeamEditorService(teams, nil, nil, nil, logging.NewNop())

	want := team.Team{TeamID: "team-1", TeamName: "Weekday Raid"}
	teams.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "team-1").
		Return(want, true, nil).
		Once()

	got, err := service.GetTeam(ctx, "team-1")
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if got.TeamID != want.TeamID || got.TeamName != want.TeamName {
		t.Fatalf("unexpected team: %+v", got)
	}
}

func TestTeamEditorService_DeleteTeam_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	teams := teammock.NewRepository(t)
	service := NewTeamEditorService(teams, nil, nil, nil, logging.NewNop())

	teams.
		On("Delete", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "missing-team").
		Return(false, nil).
		Once()

	if err := service.DeleteTeam(context.Background(), "missing-team"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTeamEditorService_GetTeam_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	teams := teammock.NewRepository(t)
	service := NewTeamEditorService(teams, nil, nil, nil, logging.NewNop())

	repoErr := errors.New("store corrupted")
	teams.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v != nil }), "team-1").
		Return(team.Team{}, false, repoErr).
		Once()

	if _, err := service.GetTeam(context.Background(), "team-1"); !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}
