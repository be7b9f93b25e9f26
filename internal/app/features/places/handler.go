package places

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/erikahq/erika-backend/internal/app/photon"
	"github.com/erikahq/erika-backend/internal/app/system/normalize"
	"github.com/erikahq/erika-backend/internal/app/system/timeouts"
)

// searchLimit is how many candidates the proxy requests per query.
const searchLimit = 5

// Searcher is the slice of the photon client the proxy needs.
type Searcher interface {
	Search(ctx context.Context, query string, limit int) ([]photon.PlaceCandidate, error)
}

// Handler proxies place searches so the frontend never talks to the lookup
// service directly.
type Handler struct {
	Places Searcher
	Log    *zap.Logger
}

// NewHandler constructs a places Handler.
func NewHandler(places Searcher, logger *zap.Logger) *Handler {
	return &Handler{Places: places, Log: logger}
}

// searchResponse is the JSON structure for the search proxy response.
type searchResponse struct {
	Results []photon.PlaceCandidate `json:"results"`
}

// Search handles GET /photon/search?q=.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := normalize.QueryParam(r.URL.Query().Get("q"))
	if q == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "query parameter q is required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Lookup())
	defer cancel()

	results, err := h.Places.Search(ctx, q, searchLimit)
	if err != nil {
		if errors.Is(err, photon.ErrLookupFailed) {
			h.Log.Warn("place search failed", zap.String("query", q), zap.Error(err))
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "place lookup service unavailable"})
			return
		}
		h.Log.Error("place search error", zap.String("query", q), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal error"})
		return
	}

	_ = json.NewEncoder(w).Encode(searchResponse{Results: results})
}
