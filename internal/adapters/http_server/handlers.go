// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"stay_resolver/internal/app"
	"stay_resolver/internal/domain"
)

type Handlers struct {
	R      *app.Resolver
	APIKey string // when empty, any non-empty X-API-Key is accepted
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/properties/resolve", h.resolve)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

type resolveRequest struct {
	Input struct {
		Query string `json:"query"`
	} `json:"input"`
	Limit int `json:"limit,omitempty"`
}

type resolveResponse struct {
	Result []domain.RankedProperty `json:"result"`
}

func (h *Handlers) authorized(r *http.Request) bool {
	key := r.Header.Get("X-API-Key")
	if key == "" {
		return false
	}
	return h.APIKey == "" || key == h.APIKey
}

func (h *Handlers) resolve(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "API key is required")
		return
	}

	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be JSON with input.query")
		return
	}
	if req.Input.Query == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid Query", "input.query is required")
		return
	}
	if req.Limit < 0 || req.Limit > 50 {
		writeProblem(w, http.StatusBadRequest, "Invalid Limit", "limit must be between 0 and 50")
		return
	}

	results, err := h.R.Resolve(r.Context(), req.Input.Query, req.Limit)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogUnavailable) {
			writeProblem(w, http.StatusServiceUnavailable, "Catalog Unavailable", "property catalog could not be read")
			return
		}
		log.Error().Err(err).Msg("resolve failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "unexpected resolver failure")
		return
	}

	if len(results) == 0 {
		writeProblem(w, http.StatusNotFound, "No Matching Properties", "no properties found matching the query")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resolveResponse{Result: results}); err != nil {
		log.Error().Err(err).Msg("failed to write resolve body")
	}
}
