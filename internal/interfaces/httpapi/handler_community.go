package httpapi

import "net/http"

func (h *Handler) GetCouncil(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCouncil")
	defer span.End()

	doc, err := h.community.GetCouncil(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, doc)
}

func (h *Handler) GetTeamLeads(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamLeads")
	defer span.End()

	doc, err := h.community.GetTeamLeads(ctx, r.URL.Query().Get("filter"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, doc)
}

func (h *Handler) SyncCouncil(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncCouncil")
	defer span.End()

	doc, err := h.community.SyncCouncil(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "council sync failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, doc)
}

func (h *Handler) SyncTeamLeads(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncTeamLeads")
	defer span.End()

	doc, err := h.community.SyncTeamLeads(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "team leads sync failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, doc)
}
