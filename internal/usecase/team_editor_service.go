package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
	"github.com/eclipsedgg/raidboard/internal/domain/team"
	"github.com/eclipsedgg/raidboard/internal/platform/id"
	"github.com/eclipsedgg/raidboard/internal/platform/logging"
)

var validate = validator.New()

type CreateTeamInput struct {
	TeamName            string `validate:"required,min=1,max=64"`
	WarcraftLogsTeamURL string `validate:"omitempty,url"`
	BorderColor         string `validate:"omitempty,hexcolor"`
	TeamLogo            string
}

// TeamEditorService owns the editor operations: team CRUD, ordering, roster
// edits through drafts and single-character lookups for the add-player flow.
type TeamEditorService struct {
	teams   team.Repository
	logs    LogsProvider
	profile ProfileProvider
	ids     id.Generator
	logger  *logging.Logger
	now     func() time.Time
}

func NewTeamEditorService(
	teams team.Repository,
	logs LogsProvider,
	profile ProfileProvider,
	ids id.Generator,
	logger *logging.Logger,
) *TeamEditorService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	return &TeamEditorService{
		teams:   teams,
		logs:    logs,
		profile: profile,
		ids:     ids,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *TeamEditorService) ListTeams(ctx context.Context) (team.Collection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamEditorService.ListTeams")
	defer span.End()

	c, err := s.teams.List(ctx)
	if err != nil {
		return team.Collection{}, fmt.Errorf("list teams: %w", err)
	}
	return c, nil
}

func (s *TeamEditorService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamEditorService.GetTeam")
	defer span.End()

	return s.getTeam(ctx, teamID)
}

func (s *TeamEditorService) CreateTeam(ctx context.Context, input CreateTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamEditorService.CreateTeam")
	defer span.End()

	input.TeamName = strings.TrimSpace(input.TeamName)
	if err := validate.Struct(input); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	logo, err := team.NormalizeLogo(input.TeamLogo)
	if err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	teamID, err := s.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	borderColor := strings.TrimSpace(input.BorderColor)
	if borderColor == "" {
		borderColor = team.DefaultBorderColor
	}

	now := s.now()
	created := team.Team{
		TeamID:              teamID,
		TeamName:            input.TeamName,
		WarcraftLogsTeamURL: strings.TrimSpace(input.WarcraftLogsTeamURL),
		BorderColor:         borderColor,
		TeamLogo:            logo,
		Roster:              []roster.Player{},
		LastUpdated:         &now,
	}
	if err := created.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teams.Create(ctx, created); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}
	s.logger.InfoContext(ctx, "team created", "team_id", teamID, "team_name", created.TeamName)
	return created, nil
}

// UpdateTeam replaces the stored team with the edited document. The edit is
// normalized first so the leader/assist partition always holds on disk.
func (s *TeamEditorService) UpdateTeam(ctx context.Context, teamID string, updated team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamEditorService.UpdateTeam")
	defer span.End()

	existing, err := s.getTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	updated.TeamID = existing.TeamID
	updated.TeamName = strings.TrimSpace(updated.TeamName)
	if updated.TeamName == "" {
		updated.TeamName = existing.TeamName
	}
	if strings.TrimSpace(updated.BorderColor) == "" {
		updated.BorderColor = existing.BorderColor
	}
	if updated.TeamLogo != existing.TeamLogo {
		logo, err := team.NormalizeLogo(updated.TeamLogo)
		if err != nil {
			return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		updated.TeamLogo = logo
	}

	updated.Normalize()
	if err := updated.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := s.now()
	updated.LastUpdated = &now
	if err := s.saveTeam(ctx, updated); err != nil {
		return team.Team{}, err
	}
	return updated, nil
}

// EditRoster applies a sequence of draft operations to one team and persists
// the result. Any failing operation aborts the whole edit.
func (s *TeamEditorService) EditRoster(ctx context.Context, teamID string, apply func(*team.Draft) error) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamEditorService.EditRoster")
	defer span.End()

	existing, err := s.getTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	draft := team.NewDraft(existing)
	if err := apply(draft); err != nil {
		if errors.Is(err, team.ErrDuplicatePlayer) || errors.Is(err, team.ErrUnknownMember) ||
			errors.Is(err, team.ErrAssistSlotRange) {
			return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return team.Team{}, err
	}

	edited := draft.Team
	now := s.now()
	edited.LastUpdated = &now
	if err := s.saveTeam(ctx, edited); err != nil {
		return team.Team{}, err
	}
	return edited, nil
}

func (s *TeamEditorService) DeleteTeam(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamEditorService.DeleteTeam")
	defer span.End()

	ok, err := s.teams.Delete(ctx, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}
	s.logger.InfoContext(ctx, "team deleted", "team_id", teamID)
	return nil
}

func (s *TeamEditorService) ReorderTeam(ctx context.Context, teamID, rawDirection string) (team.Collection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamEditorService.ReorderTeam")
	defer span.End()

	dir, err := team.ParseDirection(rawDirection)
	if err != nil {
		return team.Collection{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	c, ok, err := s.teams.Reorder(ctx, teamID, dir)
	if err != nil {
		return team.Collection{}, fmt.Errorf("reorder teams: %w", err)
	}
	if !ok {
		return team.Collection{}, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}
	return c, nil
}

// PreviewRoster merges the live guild roster into the team without saving,
// so the editor can show what a sync would do.
func (s *TeamEditorService) PreviewRoster(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamEditorService.PreviewRoster")
	defer span.End()

	if s.logs == nil {
		return team.Team{}, fmt.Errorf("%w: combat log provider is not configured", ErrDependencyUnavailable)
	}

	existing, err := s.getTeam(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}

	fresh, err := s.logs.FetchGuildRoster(ctx)
	if err != nil {
		return team.Team{}, fmt.Errorf("preview roster: %w", err)
	}
	return team.MergeRoster(existing, fresh), nil
}

// FetchCharacter looks one character up across providers for the add-player
// flow. Profile data wins; ranking data fills what the profile lacks.
func (s *TeamEditorService) FetchCharacter(ctx context.Context, name, realm, region string) (roster.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamEditorService.FetchCharacter")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return roster.Player{}, fmt.Errorf("%w: character name is required", ErrInvalidInput)
	}

	var p roster.Player
	found := false
	if s.profile != nil {
		fetched, ok, err := s.profile.FetchCharacter(ctx, name, realm, region)
		if err != nil {
			s.logger.WarnContext(ctx, "profile lookup failed", "character", name, "error", err)
		} else if ok {
			p = fetched
			found = true
		}
	}

	if s.logs != nil {
		ranked, ok, err := s.logs.FetchCharacterRanking(ctx, name, realm, region)
		if err != nil {
			s.logger.WarnContext(ctx, "ranking lookup failed", "character", name, "error", err)
		} else if ok {
			if err := mergo.Merge(&p, ranked); err != nil {
				return roster.Player{}, fmt.Errorf("merge character sources: %w", err)
			}
			found = true
		}
	}

	if !found {
		return roster.Player{}, fmt.Errorf("%w: character %s", ErrNotFound, name)
	}
	if p.CharacterName == "" {
		p.CharacterName = name
	}
	if p.Name == "" {
		p.Name = name
	}
	return p, nil
}

func (s *TeamEditorService) getTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, ok, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !ok {
		return team.Team{}, fmt.Errorf("%w: team %s", ErrNotFound, teamID)
	}
	return item, nil
}

func (s *TeamEditorService) saveTeam(ctx context.Context, item team.Team) error {
	ok, err := s.teams.Update(ctx, item)
	if err != nil {
		return fmt.Errorf("update team: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: team %s", ErrNotFound, item.TeamID)
	}
	return nil
}
