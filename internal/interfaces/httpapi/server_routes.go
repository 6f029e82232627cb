package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, docsEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !docsEnabled {
		return
	}
	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerResultRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("POST /v1/players", handler.RegisterPlayer)
	mux.HandleFunc("GET /v1/players/{name}/matches", handler.ListPlayerMatches)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("POST /v1/matches", handler.RecordMatch)
	mux.HandleFunc("GET /v1/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/standings/export.csv", handler.ExportStandingsCSV)
	mux.HandleFunc("GET /v1/head-to-head", handler.GetHeadToHead)
	mux.HandleFunc("GET /v1/stats", handler.GetStats)
	mux.HandleFunc("GET /v1/seasons", handler.GetSeasonOverview)
}

func registerCompetitionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/competitions", handler.ListCompetitions)
	mux.HandleFunc("POST /v1/competitions", handler.CreateCompetition)
	mux.HandleFunc("GET /v1/competitions/{competitionID}", handler.GetCompetition)
	mux.HandleFunc("POST /v1/competitions/{competitionID}/players", handler.AddCompetitionPlayer)
	mux.HandleFunc("POST /v1/competitions/{competitionID}/matches", handler.AddCompetitionMatch)
}

func registerTournamentRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("POST /v1/tournaments", handler.CreateTournament)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}", handler.GetTournament)
	mux.HandleFunc("POST /v1/tournaments/{tournamentID}/matches", handler.ScheduleTournamentMatch)
	mux.HandleFunc("PUT /v1/tournaments/{tournamentID}/matches/{matchID}/result", handler.RecordTournamentResult)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/teams", handler.CreateTeam)
	mux.HandleFunc("DELETE /v1/teams/{teamID}", handler.DeleteTeam)
}

func registerImportRoutes(mux *http.ServeMux, handler *Handler, importToken string) {
	mux.Handle("POST /v1/imports", RequireImportToken(importToken, http.HandlerFunc(handler.RunImport)))
}
