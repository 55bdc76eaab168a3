package handlers

import (
	"encoding/json"
	"net/http"

	"wordtiles/internal/logging"
	"wordtiles/internal/service"
)

// PlayHandler answers word questions for game clients
type PlayHandler struct {
	play *service.PlayService
}

// NewPlayHandler creates a new play handler
func NewPlayHandler(play *service.PlayService) *PlayHandler {
	return &PlayHandler{play: play}
}

type checkResponse struct {
	Dictionary string `json:"dictionary"`
	Word       string `json:"word"`
	Valid      bool   `json:"valid"`
}

type anagramsResponse struct {
	Dictionary string   `json:"dictionary"`
	Word       string   `json:"word"`
	Anagrams   []string `json:"anagrams"`
}

type candidatesRequest struct {
	Word string `json:"word"`
	Tray string `json:"tray"`
}

type candidatesResponse struct {
	Dictionary string   `json:"dictionary"`
	Word       string   `json:"word"`
	Tray       string   `json:"tray"`
	Candidates []string `json:"candidates"`
}

type batchCandidatesRequest struct {
	Words []string `json:"words"`
	Tray  string   `json:"tray"`
}

type batchCandidatesResponse struct {
	Dictionary string                    `json:"dictionary"`
	Tray       string                    `json:"tray"`
	Results    []service.CandidateResult `json:"results"`
}

// CheckWord reports whether a word is in the dictionary
func (h *PlayHandler) CheckWord(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	word := r.PathValue("word")

	valid, err := h.play.Check(name, word)
	if err != nil {
		respondWithServiceError(w, "Error checking word", err)
		return
	}

	respondWithJSON(w, http.StatusOK, checkResponse{Dictionary: name, Word: word, Valid: valid})
}

// Anagrams lists the dictionary words using exactly the letters of a word
func (h *PlayHandler) Anagrams(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	word := r.PathValue("word")

	anagrams, err := h.play.Anagrams(name, word)
	if err != nil {
		respondWithServiceError(w, "Error finding anagrams", err)
		return
	}

	respondWithJSON(w, http.StatusOK, anagramsResponse{Dictionary: name, Word: word, Anagrams: anagrams})
}

// Candidates lists the plays that extend a board word with tray tiles
func (h *PlayHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var req candidatesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	candidates, err := h.play.Candidates(name, req.Word, req.Tray)
	if err != nil {
		respondWithServiceError(w, "Error finding candidates", err)
		return
	}

	respondWithJSON(w, http.StatusOK, candidatesResponse{
		Dictionary: name,
		Word:       req.Word,
		Tray:       req.Tray,
		Candidates: candidates,
	})
}

// CandidatesBatch lists the plays for several board words with one tray
func (h *PlayHandler) CandidatesBatch(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var req batchCandidatesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidJSON, "", nil)
		return
	}

	logging.Debug().
		Str("request_id", RequestIDFromContext(r.Context())).
		Str("subject", SubjectFromContext(r.Context())).
		Int("words", len(req.Words)).
		Int("tray", len(req.Tray)).
		Msg("batch candidates")

	results, err := h.play.CandidatesMany(r.Context(), name, req.Words, req.Tray)
	if err != nil {
		respondWithServiceError(w, "Error finding candidates", err)
		return
	}

	respondWithJSON(w, http.StatusOK, batchCandidatesResponse{
		Dictionary: name,
		Tray:       req.Tray,
		Results:    results,
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
