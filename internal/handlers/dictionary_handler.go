package handlers

import (
	"net/http"

	"wordtiles/internal/service"
)

// DictionaryHandler describes the dictionaries being served
type DictionaryHandler struct {
	registry *service.Registry
}

// NewDictionaryHandler creates a new dictionary handler
func NewDictionaryHandler(registry *service.Registry) *DictionaryHandler {
	return &DictionaryHandler{registry: registry}
}

type dictionaryInfo struct {
	Name    string `json:"name"`
	Words   int    `json:"words"`
	Keys    int    `json:"keys"`
	Default bool   `json:"default"`
}

// ListDictionaries lists the served dictionaries
func (h *DictionaryHandler) ListDictionaries(w http.ResponseWriter, r *http.Request) {
	defaultName := h.registry.Default()

	dicts := []dictionaryInfo{}
	for _, name := range h.registry.Names() {
		idx, err := h.registry.Get(name)
		if err != nil {
			respondWithServiceError(w, "Error listing dictionaries", err)
			return
		}
		dicts = append(dicts, dictionaryInfo{
			Name:    name,
			Words:   idx.WordCount(),
			Keys:    idx.Len(),
			Default: name == defaultName,
		})
	}

	respondWithJSON(w, http.StatusOK, map[string]any{"dictionaries": dicts})
}
