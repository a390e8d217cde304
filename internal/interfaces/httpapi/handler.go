package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/eclipsedgg/raidboard/internal/platform/logging"
	"github.com/eclipsedgg/raidboard/internal/usecase"
)

type Handler struct {
	teamEditor *usecase.TeamEditorService
	rosterSync *usecase.RosterSyncService
	community  *usecase.CommunityService
	dashboard  *usecase.DashboardService
	logger     *logging.Logger
	validator  *validator.Validate
}

func NewHandler(
	teamEditor *usecase.TeamEditorService,
	rosterSync *usecase.RosterSyncService,
	community *usecase.CommunityService,
	dashboard *usecase.DashboardService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamEditor: teamEditor,
		rosterSync: rosterSync,
		community:  community,
		dashboard:  dashboard,
		logger:     logger,
		validator:  validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeBody(r *http.Request, out any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
