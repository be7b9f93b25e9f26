package registration

import (
	"context"
	"errors"
	"fmt"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/erikahq/erika-backend/internal/app/photon"
	schoolstore "github.com/erikahq/erika-backend/internal/app/store/schools"
	userstore "github.com/erikahq/erika-backend/internal/app/store/users"
	"github.com/erikahq/erika-backend/internal/app/system/normalize"
	"github.com/erikahq/erika-backend/internal/app/system/timeouts"
	"github.com/erikahq/erika-backend/internal/app/system/txn"
	"github.com/erikahq/erika-backend/internal/domain/models"
)

// Result messages. Fixed strings: the frontend matches on them.
const (
	msgNoMatch   = "No school match found"
	msgDuplicate = "School already registered"
	msgCreated   = "School verified and admin created"
)

// ErrPartialWrite marks the one inconsistency this workflow can leave
// behind: the school insert committed, the admin insert failed, and the
// compensating school delete also failed. It only occurs on deployments
// without transaction support.
var ErrPartialWrite = errors.New("school created but admin user creation failed")

// PlaceSearcher is the slice of the photon client the workflow needs.
type PlaceSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]photon.PlaceCandidate, error)
}

// Result is the business outcome of one registration attempt. OK=false with
// a message is a clean negative (no match, duplicate), not a failure;
// failures come back as errors instead.
type Result struct {
	OK       bool   `json:"ok"`
	SchoolID string `json:"school_id,omitempty"`
	Message  string `json:"message"`
}

// Service runs the school registration workflow: resolve the school name
// against the place-lookup service, deduplicate, then provision the School
// record and its Administrator user.
type Service struct {
	client  *mongo.Client
	schools *schoolstore.Store
	users   *userstore.Store
	places  PlaceSearcher
	log     *zap.Logger
}

// NewService constructs the registration Service. The mongo client is
// needed alongside the stores so both provisioning writes can share one
// transaction.
func NewService(client *mongo.Client, db *mongo.Database, places PlaceSearcher, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		schools: schoolstore.New(db),
		users:   userstore.New(db),
		places:  places,
		log:     logger,
	}
}

// Register verifies schoolName against the place-lookup service and, when a
// match exists and no school collides on a dedupe key, creates the School
// plus its Administrator user.
//
// adminEmail must already be validated by the caller; validation is a
// request-schema precondition and happens before any network call.
func (s *Service) Register(ctx context.Context, schoolName, adminEmail string) (Result, error) {
	schoolName = normalize.Name(schoolName)
	adminEmail = normalize.Email(adminEmail)

	// Resolve against the lookup service. A hard failure here propagates:
	// the caller reports a service error, not a clean negative.
	lookupCtx, cancel := context.WithTimeout(ctx, timeouts.Lookup())
	candidates, err := s.places.Search(lookupCtx, schoolName, 1)
	cancel()
	if err != nil {
		return Result{}, err
	}
	if len(candidates) == 0 {
		return Result{OK: false, Message: msgNoMatch}, nil
	}

	draft := draftSchool(candidates[0], schoolName, adminEmail)

	// Pre-check for an existing school. The unique indexes are the real
	// guard; this just gives the common case a clean answer without
	// burning an ObjectID.
	checkCtx, cancel := context.WithTimeout(ctx, timeouts.Short())
	existing, err := s.schools.FindDuplicate(checkCtx, draft.OSMID, draft.Name, draft.AdminEmail)
	cancel()
	if err != nil {
		return Result{}, err
	}
	if existing != nil {
		return Result{OK: false, Message: msgDuplicate}, nil
	}

	writeCtx, cancel := context.WithTimeout(ctx, timeouts.Long())
	defer cancel()

	schoolID, err := s.provision(writeCtx, draft)
	if wafflemongo.IsDup(err) {
		// Lost a race with a concurrent registration; same outcome as the
		// pre-check finding the school.
		return Result{OK: false, Message: msgDuplicate}, nil
	}
	if err != nil {
		return Result{}, err
	}

	s.log.Info("school registered",
		zap.String("school_id", schoolID),
		zap.String("name", draft.Name))
	return Result{OK: true, SchoolID: schoolID, Message: msgCreated}, nil
}

// provision inserts the school and its administrator, transactionally when
// the deployment supports it.
func (s *Service) provision(ctx context.Context, draft *models.School) (string, error) {
	var schoolID string

	err := txn.WithTransaction(ctx, s.client, func(sc mongo.SessionContext) error {
		id, err := s.schools.Insert(sc, draft)
		if err != nil {
			return err
		}
		if _, err := s.users.Insert(sc, adminUser(draft)); err != nil {
			return err
		}
		schoolID = id.Hex()
		return nil
	})
	if err == nil {
		return schoolID, nil
	}
	if !txn.IsNotSupported(err) {
		return "", err
	}

	// Standalone server: sequential writes with a compensating delete.
	s.log.Debug("transactions unsupported, provisioning sequentially")
	id, err := s.schools.Insert(ctx, draft)
	if err != nil {
		return "", err
	}
	if _, err := s.users.Insert(ctx, adminUser(draft)); err != nil {
		if delErr := s.schools.Delete(ctx, id); delErr != nil {
			s.log.Error("compensating school delete failed",
				zap.String("school_id", id.Hex()),
				zap.Error(delErr))
			return "", fmt.Errorf("%w: %v", ErrPartialWrite, err)
		}
		return "", err
	}
	return id.Hex(), nil
}

// draftSchool builds the school record from the best lookup candidate,
// falling back to the operator-supplied name where the candidate is sparse.
func draftSchool(c photon.PlaceCandidate, schoolName, adminEmail string) *models.School {
	name := c.Name
	if name == "" || name == "Unknown" {
		name = schoolName
	}

	address := c.Address
	if address == "" {
		address = name
	}

	return &models.School{
		Name:       name,
		Address:    address,
		Latitude:   c.Lat,
		Longitude:  c.Lon,
		AdminEmail: adminEmail,
		OSMID:      c.OSMID,
	}
}

// adminUser builds the administrator account for a freshly created school.
func adminUser(school *models.School) *models.PlatformUser {
	return &models.PlatformUser{
		Email:       school.AdminEmail,
		DisplayName: "Administrator",
		Role:        "admin",
		SchoolID:    school.ID,
		Disabled:    false,
	}
}
