// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	healthfeature "github.com/erikahq/erika-backend/internal/app/features/health"
	placesfeature "github.com/erikahq/erika-backend/internal/app/features/places"
	registrationfeature "github.com/erikahq/erika-backend/internal/app/features/registration"
	usersfeature "github.com/erikahq/erika-backend/internal/app/features/users"
	"github.com/erikahq/erika-backend/internal/app/photon"
)

// requestIDHeader is set on every response so clients and logs can
// correlate a request across the proxy chain.
const requestIDHeader = "X-Request-ID"

// requestID assigns a fresh UUID to each request unless the client
// already supplied one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(requestIDHeader, id)
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The ERIKA backend is a JSON API: a liveness message at the root, a
// place-lookup proxy under /photon, school/admin registration under /admin,
// and user listings under /users.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	placesClient := photon.NewClient(appCfg.PhotonBaseURL, appCfg.PhotonTimeout, logger)

	r := chi.NewRouter()
	r.Use(requestID)

	// Liveness and diagnostics
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.MongoDatabase, appCfg.MongoURI != "", appCfg.MongoDatabase, logger)
	r.Get("/", healthHandler.Live)
	r.Get("/test", healthHandler.Diagnostics)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Place lookup proxy
	placesHandler := placesfeature.NewHandler(placesClient, logger)
	r.Mount("/photon", placesfeature.Routes(placesHandler))

	// School and admin registration
	regService := registrationfeature.NewService(deps.MongoClient, deps.MongoDatabase, placesClient, logger)
	regHandler := registrationfeature.NewHandler(regService, logger)
	r.Mount("/admin", registrationfeature.Routes(regHandler))

	// User listings
	usersHandler := usersfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/users", usersfeature.Routes(usersHandler))

	return r, nil
}
