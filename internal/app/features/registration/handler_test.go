package registration_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/erikahq/erika-backend/internal/app/features/registration"
	"github.com/erikahq/erika-backend/internal/app/photon"
	"github.com/erikahq/erika-backend/internal/testutil"
)

// fakeRegistrar records calls and returns a canned result.
type fakeRegistrar struct {
	result registration.Result
	err    error

	calls     int
	lastName  string
	lastEmail string
}

func (f *fakeRegistrar) Register(ctx context.Context, schoolName, adminEmail string) (registration.Result, error) {
	f.calls++
	f.lastName = schoolName
	f.lastEmail = adminEmail
	return f.result, f.err
}

func postNewAdmin(t *testing.T, h *registration.Handler, body any) *testutil.ResponseRecorder {
	t.Helper()
	req := testutil.NewJSONRequest(t, "POST", "/admin/new", body)
	rec := testutil.NewRecorder()
	h.NewAdmin(rec.ResponseRecorder, req)
	return rec
}

func TestNewAdmin_Success(t *testing.T) {
	fake := &fakeRegistrar{result: registration.Result{
		OK:       true,
		SchoolID: "66f0c0ffee0000000000aaaa",
		Message:  "School verified and admin created",
	}}
	h := registration.NewHandler(fake, zap.NewNop())

	rec := postNewAdmin(t, h, map[string]string{
		"school_name": "Lincoln High",
		"admin_email": "admin@lincoln.edu",
	})

	rec.AssertStatus(t, http.StatusOK)
	if fake.calls != 1 {
		t.Fatalf("registrar calls: got %d, want 1", fake.calls)
	}
	if fake.lastName != "Lincoln High" || fake.lastEmail != "admin@lincoln.edu" {
		t.Errorf("registrar args: got %q %q", fake.lastName, fake.lastEmail)
	}

	var result registration.Result
	rec.DecodeJSON(t, &result)
	if !result.OK || result.SchoolID == "" {
		t.Errorf("result: %+v", result)
	}
}

func TestNewAdmin_InvalidEmailRejectedBeforeWorkflow(t *testing.T) {
	fake := &fakeRegistrar{}
	h := registration.NewHandler(fake, zap.NewNop())

	rec := postNewAdmin(t, h, map[string]string{
		"school_name": "Lincoln High",
		"admin_email": "not-an-email",
	})

	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	if fake.calls != 0 {
		t.Errorf("registrar invoked %d times for invalid email, want 0", fake.calls)
	}

	var body struct {
		Error string `json:"error"`
	}
	rec.DecodeJSON(t, &body)
	if !strings.Contains(body.Error, "admin_email") {
		t.Errorf("error message: got %q, want it to name admin_email", body.Error)
	}
}

func TestNewAdmin_MissingSchoolNameRejected(t *testing.T) {
	fake := &fakeRegistrar{}
	h := registration.NewHandler(fake, zap.NewNop())

	rec := postNewAdmin(t, h, map[string]string{
		"admin_email": "admin@lincoln.edu",
	})

	rec.AssertStatus(t, http.StatusUnprocessableEntity)
	if fake.calls != 0 {
		t.Errorf("registrar invoked %d times for missing school_name, want 0", fake.calls)
	}
}

func TestNewAdmin_MalformedJSONRejected(t *testing.T) {
	fake := &fakeRegistrar{}
	h := registration.NewHandler(fake, zap.NewNop())

	req := testutil.NewRequest("POST", "/admin/new")
	rec := testutil.NewRecorder()
	h.NewAdmin(rec.ResponseRecorder, req)

	rec.AssertStatus(t, http.StatusBadRequest)
	if fake.calls != 0 {
		t.Errorf("registrar invoked %d times for bad JSON, want 0", fake.calls)
	}
}

func TestNewAdmin_NegativeResultsPassThrough(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"no match", "No school match found"},
		{"duplicate", "School already registered"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRegistrar{result: registration.Result{OK: false, Message: tt.message}}
			h := registration.NewHandler(fake, zap.NewNop())

			rec := postNewAdmin(t, h, map[string]string{
				"school_name": "Lincoln High",
				"admin_email": "admin@lincoln.edu",
			})

			// Business negatives are clean 200 responses with ok=false.
			rec.AssertStatus(t, http.StatusOK)

			var result registration.Result
			rec.DecodeJSON(t, &result)
			if result.OK {
				t.Errorf("result.OK = true, want false")
			}
			if result.Message != tt.message {
				t.Errorf("message: got %q, want %q", result.Message, tt.message)
			}
		})
	}
}

func TestNewAdmin_LookupFailureIsBadGateway(t *testing.T) {
	fake := &fakeRegistrar{err: photon.ErrLookupFailed}
	h := registration.NewHandler(fake, zap.NewNop())

	rec := postNewAdmin(t, h, map[string]string{
		"school_name": "Lincoln High",
		"admin_email": "admin@lincoln.edu",
	})

	rec.AssertStatus(t, http.StatusBadGateway)
}

func TestNewAdmin_PartialWriteIsDistinctServerError(t *testing.T) {
	fake := &fakeRegistrar{err: registration.ErrPartialWrite}
	h := registration.NewHandler(fake, zap.NewNop())

	rec := postNewAdmin(t, h, map[string]string{
		"school_name": "Lincoln High",
		"admin_email": "admin@lincoln.edu",
	})

	rec.AssertStatus(t, http.StatusInternalServerError)

	var body struct {
		Error string `json:"error"`
	}
	rec.DecodeJSON(t, &body)
	if !strings.Contains(body.Error, "admin provisioning failed") {
		t.Errorf("error message: got %q, want partial-write wording", body.Error)
	}
}

func TestNewAdmin_UnknownErrorIsInternal(t *testing.T) {
	fake := &fakeRegistrar{err: errors.New("store connection lost")}
	h := registration.NewHandler(fake, zap.NewNop())

	rec := postNewAdmin(t, h, map[string]string{
		"school_name": "Lincoln High",
		"admin_email": "admin@lincoln.edu",
	})

	rec.AssertStatus(t, http.StatusInternalServerError)
}
