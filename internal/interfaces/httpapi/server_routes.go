package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/sports", handler.ListSports)
}

func registerScoreRoutes(mux *http.ServeMux, handler *Handler, limits RouteLimits) {
	mux.Handle("GET /v1/sports/{sport}/teams", RateLimit(NewRateLimiter(limits.Teams), http.HandlerFunc(handler.ListTeams)))
	mux.Handle("GET /v1/scores", RateLimit(NewRateLimiter(limits.Scores), http.HandlerFunc(handler.GetScores)))
	mux.Handle("GET /v1/game-details", RateLimit(NewRateLimiter(limits.Details), http.HandlerFunc(handler.GetGameDetails)))
	mux.Handle("POST /v1/widget-config", RateLimit(NewRateLimiter(limits.SaveConfig), http.HandlerFunc(handler.SaveWidgetConfig)))
	mux.Handle("GET /v1/widget-config", RateLimit(NewRateLimiter(limits.LoadConfig), http.HandlerFunc(handler.LoadWidgetConfig)))
}
