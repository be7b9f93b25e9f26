package health

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/erikahq/erika-backend/internal/app/system/timeouts"
)

// Handler holds dependencies needed for liveness and diagnostics.
type Handler struct {
	Client       *mongo.Client
	DB           *mongo.Database
	DatabaseURL  bool   // whether a store connection string was configured
	DatabaseName string // configured store database name
	Log          *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(client *mongo.Client, db *mongo.Database, databaseURLSet bool, databaseName string, logger *zap.Logger) *Handler {
	return &Handler{
		Client:       client,
		DB:           db,
		DatabaseURL:  databaseURLSet,
		DatabaseName: databaseName,
		Log:          logger,
	}
}

// Live handles GET /. Always 200 while the process serves requests.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "ERIKA backend is running",
	})
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected" }
//
// On DB failure: 503 and
//
//	{ "status":"error", "message":"Database unavailable", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "connected",
	}

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}

// diagResponse is the JSON structure for the diagnostic endpoint.
type diagResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Diagnostics handles GET /test. It reports whether the store connection
// settings are present and, when the store is reachable, the first 20
// collection names. Intended for deploy-time smoke checks, not monitoring.
func (h *Handler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := diagResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		DatabaseName:     "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if h.DatabaseURL {
		resp.DatabaseURL = "set"
	}
	if h.DatabaseName != "" {
		resp.DatabaseName = h.DatabaseName
	}

	names, err := h.DB.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		h.Log.Warn("diagnostics: list collections failed", zap.Error(err))
		resp.Database = "available but erroring"
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	if len(names) > 20 {
		names = names[:20]
	}
	resp.Database = "connected"
	resp.ConnectionStatus = "connected"
	resp.Collections = names
	_ = json.NewEncoder(w).Encode(resp)
}
