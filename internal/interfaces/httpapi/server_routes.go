package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/status", handler.GetStatus)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/teams", handler.CreateTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("PUT /v1/teams/{teamID}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /v1/teams/{teamID}", handler.DeleteTeam)
	mux.HandleFunc("POST /v1/teams/{teamID}/reorder", handler.ReorderTeam)
	mux.HandleFunc("POST /v1/teams/{teamID}/roster", handler.EditRoster)
	mux.HandleFunc("GET /v1/teams/{teamID}/preview", handler.PreviewRoster)
	mux.HandleFunc("GET /v1/characters/{name}", handler.FetchCharacter)
}

func registerCommunityRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/council", handler.GetCouncil)
	mux.HandleFunc("GET /v1/community/team-leads", handler.GetTeamLeads)
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/applicants", handler.GetApplicants)
	mux.HandleFunc("GET /v1/guilds", handler.GetGuilds)
}

func registerSyncRoutes(mux *http.ServeMux, handler *Handler, syncToken string) {
	mux.Handle("POST /v1/teams/{teamID}/sync", RequireSyncToken(syncToken, http.HandlerFunc(handler.SyncTeam)))
	mux.Handle("POST /v1/sync/teams", RequireSyncToken(syncToken, http.HandlerFunc(handler.SyncAllTeams)))
	mux.Handle("POST /v1/sync/council", RequireSyncToken(syncToken, http.HandlerFunc(handler.SyncCouncil)))
	mux.Handle("POST /v1/sync/community", RequireSyncToken(syncToken, http.HandlerFunc(handler.SyncTeamLeads)))
	mux.Handle("POST /v1/sync/applicants", RequireSyncToken(syncToken, http.HandlerFunc(handler.SyncApplicants)))
	mux.Handle("POST /v1/sync/guilds", RequireSyncToken(syncToken, http.HandlerFunc(handler.SyncGuilds)))
}
