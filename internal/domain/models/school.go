// internal/domain/models/school.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// School is a verified school record.
//
// A school is created exactly once by the admin registration workflow after
// its name has been resolved against the place-lookup service. It is never
// mutated or deleted by this service.
//
// Identity: a school is uniquely identified by OSMID when the lookup service
// supplied one, and by the (Name, AdminEmail) pair otherwise. Both keys are
// backed by unique indexes (see internal/app/system/indexes).
type School struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Address    string             `bson:"address" json:"address"`
	Latitude   *float64           `bson:"latitude" json:"latitude"`
	Longitude  *float64           `bson:"longitude" json:"longitude"`
	AdminEmail string             `bson:"admin_email" json:"admin_email"`

	// OSMID is the place-service identifier used as the primary dedupe key.
	// It is absent (nil) when the lookup returned no identifier; the literal
	// stringified-nil from the lookup response is never stored.
	OSMID *string `bson:"osm_id,omitempty" json:"osm_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
