package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"ecometer/internal/service"
)

// SuggestionsHandler serves random active suggestions.
type SuggestionsHandler struct {
	service *service.SuggestionService
	logger  *zap.Logger
}

// NewSuggestionsHandler returns handler.
func NewSuggestionsHandler(service *service.SuggestionService, logger *zap.Logger) *SuggestionsHandler {
	return &SuggestionsHandler{
		service: service,
		logger:  logger,
	}
}

// ServeHTTP handles GET /api/suggestions.
func (h *SuggestionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	suggestions, err := h.service.Active(r.Context(), service.DefaultSuggestionLimit)
	if err != nil {
		h.logger.Error("failed to fetch suggestions", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch suggestions")
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}
