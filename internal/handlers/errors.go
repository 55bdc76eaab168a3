package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"wordtiles/internal/logging"
	"wordtiles/internal/service"
	"wordtiles/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func respondWithError(w http.ResponseWriter, status int, userMsg, logMsg string, err error) {
	if err != nil {
		if logMsg == "" {
			logMsg = userMsg
		}
		logging.Error().Err(err).Int("status", status).Msg(logMsg)
	}

	respondWithJSON(w, status, errorResponse{Error: userMsg})
}

func respondWithJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Warn().Err(err).Msg("failed to write response")
	}
}

// respondWithServiceError maps service and validation errors to responses.
// Only unexpected errors are logged.
func respondWithServiceError(w http.ResponseWriter, logMsg string, err error) {
	var verr validation.ValidationError
	switch {
	case errors.As(err, &verr):
		respondWithJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, service.ErrDictionaryNotFound):
		respondWithError(w, http.StatusNotFound, ErrDictionaryNotFound, "", nil)
	case errors.Is(err, service.ErrDictionaryExists):
		respondWithError(w, http.StatusConflict, ErrDictionaryConflict, "", nil)
	default:
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, logMsg, err)
	}
}
