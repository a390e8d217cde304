package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/eclipsedgg/raidboard/internal/domain/roster"
	"github.com/eclipsedgg/raidboard/internal/domain/team"
	"github.com/eclipsedgg/raidboard/internal/usecase"
)

type createTeamRequest struct {
	TeamName            string `json:"teamName" validate:"required,max=64"`
	WarcraftLogsTeamURL string `json:"warcraftLogsTeamUrl" validate:"omitempty,url"`
	BorderColor         string `json:"borderColor" validate:"omitempty,hexcolor"`
	TeamLogo            string `json:"teamLogo"`
}

type reorderTeamRequest struct {
	Direction string `json:"direction" validate:"required,oneof=up down"`
}

// rosterOpRequest is one edit step in a roster edit batch. Which fields
// matter depends on op.
type rosterOpRequest struct {
	Op       string         `json:"op" validate:"required"`
	Identity string         `json:"identity"`
	Role     string         `json:"role"`
	Slot     *int           `json:"slot"`
	Player   *roster.Player `json:"player"`
}

type editRosterRequest struct {
	Operations []rosterOpRequest `json:"operations" validate:"required,min=1,dive"`
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	c, err := h.teamEditor.ListTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, c)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	item, err := h.teamEditor.GetTeam(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTeam")
	defer span.End()

	var req createTeamRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.teamEditor.CreateTeam(ctx, usecase.CreateTeamInput{
		TeamName:            req.TeamName,
		WarcraftLogsTeamURL: req.WarcraftLogsTeamURL,
		BorderColor:         req.BorderColor,
		TeamLogo:            req.TeamLogo,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, created)
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTeam")
	defer span.End()

	var req team.Team
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.teamEditor.UpdateTeam(ctx, r.PathValue("teamID"), req)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, updated)
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteTeam")
	defer span.End()

	if err := h.teamEditor.DeleteTeam(ctx, r.PathValue("teamID")); err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) ReorderTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ReorderTeam")
	defer span.End()

	var req reorderTeamRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	c, err := h.teamEditor.ReorderTeam(ctx, r.PathValue("teamID"), req.Direction)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, c)
}

// EditRoster applies a batch of draft operations to the team. The batch is
// atomic: one invalid operation rejects the whole edit.
func (h *Handler) EditRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EditRoster")
	defer span.End()

	var req editRosterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	edited, err := h.teamEditor.EditRoster(ctx, r.PathValue("teamID"), func(d *team.Draft) error {
		for _, op := range req.Operations {
			if err := applyRosterOp(d, op); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, edited)
}

func applyRosterOp(d *team.Draft, op rosterOpRequest) error {
	switch strings.TrimSpace(op.Op) {
	case "addPlayer":
		if op.Player == nil {
			return fmt.Errorf("%w: addPlayer requires a player", usecase.ErrInvalidInput)
		}
		return d.AddPlayer(*op.Player)
	case "removePlayer":
		return d.RemovePlayer(op.Identity)
	case "setLeader":
		return d.SetLeader(op.Identity)
	case "setLeaderRole":
		return d.SetLeaderRole(op.Role)
	case "addAssistSlot":
		d.AddAssistSlot()
		return nil
	case "setAssist":
		if op.Slot == nil {
			return fmt.Errorf("%w: setAssist requires a slot", usecase.ErrInvalidInput)
		}
		return d.SetAssistAt(*op.Slot, op.Identity)
	case "setAssistRole":
		if op.Slot == nil {
			return fmt.Errorf("%w: setAssistRole requires a slot", usecase.ErrInvalidInput)
		}
		return d.SetAssistRoleAt(*op.Slot, op.Role)
	case "setRole":
		return d.SetPlayerRole(op.Identity, op.Role)
	default:
		return fmt.Errorf("%w: unknown roster operation %q", usecase.ErrInvalidInput, op.Op)
	}
}

// PreviewRoster shows what a provider sync would do to the team without
// persisting anything.
func (h *Handler) PreviewRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewRoster")
	defer span.End()

	preview, err := h.teamEditor.PreviewRoster(ctx, r.PathValue("teamID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, preview)
}

func (h *Handler) FetchCharacter(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FetchCharacter")
	defer span.End()

	query := r.URL.Query()
	p, err := h.teamEditor.FetchCharacter(ctx, r.PathValue("name"), query.Get("realm"), query.Get("region"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, p)
}

func (h *Handler) SyncTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncTeam")
	defer span.End()

	synced, err := h.rosterSync.SyncTeamRoster(ctx, r.PathValue("teamID"))
	if err != nil {
		h.logger.ErrorContext(ctx, "team sync failed", "team_id", r.PathValue("teamID"), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, synced)
}

func (h *Handler) SyncAllTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncAllTeams")
	defer span.End()

	report, err := h.rosterSync.SyncAllTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "sync all teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}
