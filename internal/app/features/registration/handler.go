package registration

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/erikahq/erika-backend/internal/app/photon"
	"github.com/erikahq/erika-backend/internal/app/system/limits"
)

// validate is shared across requests; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New()

// newAdminRequest is the POST /admin/new payload.
type newAdminRequest struct {
	SchoolName string `json:"school_name" validate:"required"`
	AdminEmail string `json:"admin_email" validate:"required,email"`
}

// Registrar runs the registration workflow. Satisfied by *Service.
type Registrar interface {
	Register(ctx context.Context, schoolName, adminEmail string) (Result, error)
}

// Handler exposes the registration workflow over HTTP.
type Handler struct {
	Service Registrar
	Log     *zap.Logger
}

// NewHandler constructs a registration Handler.
func NewHandler(service Registrar, logger *zap.Logger) *Handler {
	return &Handler{Service: service, Log: logger}
}

// NewAdmin handles POST /admin/new.
//
// The payload is validated before anything else: a malformed admin email
// must be rejected without touching the lookup service or the store.
func (h *Handler) NewAdmin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var payload newAdminRequest
	body := http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid JSON body"})
		return
	}
	if err := validate.Struct(payload); err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": validationMessage(err)})
		return
	}

	result, err := h.Service.Register(r.Context(), payload.SchoolName, payload.AdminEmail)
	if err != nil {
		switch {
		case errors.Is(err, photon.ErrLookupFailed):
			h.Log.Warn("registration lookup failed", zap.String("school_name", payload.SchoolName), zap.Error(err))
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "place lookup service unavailable"})
		case errors.Is(err, ErrPartialWrite):
			h.Log.Error("registration left partial state", zap.String("school_name", payload.SchoolName), zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "school created but admin provisioning failed"})
		default:
			h.Log.Error("registration failed", zap.String("school_name", payload.SchoolName), zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal error"})
		}
		return
	}

	_ = json.NewEncoder(w).Encode(result)
}

// validationMessage turns the first validator error into a client-readable
// message without leaking struct internals.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "SchoolName":
			return "school_name is required"
		case "AdminEmail":
			if verrs[0].Tag() == "email" {
				return "admin_email must be a valid email address"
			}
			return "admin_email is required"
		}
	}
	return "invalid request payload"
}
