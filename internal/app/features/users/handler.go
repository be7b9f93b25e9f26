package users

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/erikahq/erika-backend/internal/app/store/users"
	"github.com/erikahq/erika-backend/internal/app/system/normalize"
	"github.com/erikahq/erika-backend/internal/app/system/timeouts"
	"github.com/erikahq/erika-backend/internal/domain/models"
)

// Handler serves role-filtered user listings.
type Handler struct {
	Users *userstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a users Handler over the given database.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{Users: userstore.New(db), Log: logger}
}

// listResponse is the JSON structure for the listing response.
type listResponse struct {
	Users []models.PlatformUser `json:"users"`
}

// ByRole handles GET /users/by-role?role=&school_id=.
//
// role is required and must be one of the platform roles; school_id is an
// optional exact filter. Results are capped at the store's listing limit.
func (h *Handler) ByRole(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	role := normalize.Role(r.URL.Query().Get("role"))
	if role == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "query parameter role is required"})
		return
	}
	if !models.IsValidRole(role) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unknown role: " + role})
		return
	}

	var schoolID *primitive.ObjectID
	if raw := strings.TrimSpace(r.URL.Query().Get("school_id")); raw != "" {
		oid, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "school_id is not a valid identifier"})
			return
		}
		schoolID = &oid
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	found, err := h.Users.ListByRole(ctx, role, schoolID)
	if err != nil {
		h.Log.Error("user listing failed", zap.String("role", role), zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal error"})
		return
	}

	_ = json.NewEncoder(w).Encode(listResponse{Users: found})
}
