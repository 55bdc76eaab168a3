package handlers

import "net/http"

// RegisterRoutes mounts the API on mux
func RegisterRoutes(mux *http.ServeMux, m *Middleware, startup *StartupStatus, dictionaries *DictionaryHandler, play *PlayHandler) {
	mux.HandleFunc("GET /healthz", Health)
	mux.HandleFunc("GET /readyz", startup.ShowStartupStatus)

	api := func(h http.HandlerFunc) http.HandlerFunc {
		return m.RateLimit(m.RequireToken(h))
	}

	mux.HandleFunc("GET /api/dictionaries", api(dictionaries.ListDictionaries))
	mux.HandleFunc("GET /api/dictionaries/{name}/words/{word}", api(play.CheckWord))
	mux.HandleFunc("GET /api/dictionaries/{name}/anagrams/{word}", api(play.Anagrams))
	mux.HandleFunc("POST /api/dictionaries/{name}/candidates", api(play.Candidates))
	mux.HandleFunc("POST /api/dictionaries/{name}/candidates/batch", api(play.CandidatesBatch))
}
