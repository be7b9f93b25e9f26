package health_test

import (
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/erikahq/erika-backend/internal/app/features/health"
	"github.com/erikahq/erika-backend/internal/testutil"
)

func TestLive(t *testing.T) {
	handler := &health.Handler{Log: zap.NewNop()}

	req := testutil.NewRequest("GET", "/")
	rec := testutil.NewRecorder()

	handler.Live(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	var body struct {
		Message string `json:"message"`
	}
	rec.DecodeJSON(t, &body)
	if body.Message != "ERIKA backend is running" {
		t.Errorf("message: got %q", body.Message)
	}
}

func TestServe_DatabaseConnected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := health.NewHandler(db.Client(), db, true, db.Name(), zap.NewNop())

	req := testutil.NewRequest("GET", "/health")
	rec := testutil.NewRecorder()

	handler.Serve(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", contentType, "application/json")
	}

	var response struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	rec.DecodeJSON(t, &response)

	if response.Status != "ok" {
		t.Errorf("status: got %q, want %q", response.Status, "ok")
	}
	if response.Database != "connected" {
		t.Errorf("database: got %q, want %q", response.Database, "connected")
	}
}

func TestDiagnostics_ReportsCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix := testutil.NewFixtures(t, db)
	school := fix.CreateSchool(ctx, "Diag School", "admin@diag.edu", nil)
	fix.CreateAdmin(ctx, "admin@diag.edu", school.ID)

	handler := health.NewHandler(db.Client(), db, true, db.Name(), zap.NewNop())

	req := testutil.NewRequest("GET", "/test")
	rec := testutil.NewRecorder()

	handler.Diagnostics(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusOK)

	var response struct {
		Backend          string   `json:"backend"`
		Database         string   `json:"database"`
		DatabaseURL      string   `json:"database_url"`
		DatabaseName     string   `json:"database_name"`
		ConnectionStatus string   `json:"connection_status"`
		Collections      []string `json:"collections"`
	}
	rec.DecodeJSON(t, &response)

	if response.Backend != "running" {
		t.Errorf("backend: got %q", response.Backend)
	}
	if response.ConnectionStatus != "connected" {
		t.Errorf("connection_status: got %q", response.ConnectionStatus)
	}
	if response.DatabaseURL != "set" {
		t.Errorf("database_url: got %q, want %q", response.DatabaseURL, "set")
	}
	if response.DatabaseName != db.Name() {
		t.Errorf("database_name: got %q, want %q", response.DatabaseName, db.Name())
	}

	found := map[string]bool{}
	for _, c := range response.Collections {
		found[c] = true
	}
	if !found["schools"] || !found["users"] {
		t.Errorf("collections: got %v, want schools and users present", response.Collections)
	}
}
