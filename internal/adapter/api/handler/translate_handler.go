package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fbasas/bball-playback/internal/usecase"
)

// TranslateHandler handles HTTP requests for ad-hoc event translation.
type TranslateHandler struct {
	useCase        *usecase.NarratePlayUseCase
	logger         *slog.Logger
	maxRequestSize int64
}

// NewTranslateHandler creates a new TranslateHandler.
func NewTranslateHandler(uc *usecase.NarratePlayUseCase, logger *slog.Logger, maxRequestSize int64) *TranslateHandler {
	return &TranslateHandler{
		useCase:        uc,
		logger:         logger,
		maxRequestSize: maxRequestSize,
	}
}

type translateRequest struct {
	Event  string   `json:"event,omitempty"`
	Events []string `json:"events,omitempty"`
}

type translateResponse struct {
	Event       string `json:"event"`
	Description string `json:"description"`
}

// ServeHTTP translates one event code, or a batch, into prose.
func (h *TranslateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)

	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "Payload too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	switch {
	case req.Event != "":
		resp := translateResponse{
			Event:       req.Event,
			Description: h.useCase.Narrate(r.Context(), req.Event),
		}
		respondWithJSON(w, h.logger, http.StatusOK, resp)
	case len(req.Events) > 0:
		results := make([]translateResponse, len(req.Events))
		for i, code := range req.Events {
			results[i] = translateResponse{
				Event:       code,
				Description: h.useCase.Narrate(r.Context(), code),
			}
		}
		respondWithJSON(w, h.logger, http.StatusOK, results)
	default:
		http.Error(w, "event or events is required", http.StatusBadRequest)
	}
}

func respondWithJSON(w http.ResponseWriter, logger *slog.Logger, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
