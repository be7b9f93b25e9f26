// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlatformUser represents any person on the platform: admins, teachers,
// students, and parents.
//
// NOTE:
//   - SchoolID is required for every role; users always belong to exactly
//     one school.
//   - An "admin" user is created in the same logical operation as its
//     school; other roles are provisioned elsewhere.
type PlatformUser struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"display_name" json:"display_name"`
	Role        string             `bson:"role" json:"role"` // admin | student | teacher | parent
	SchoolID    primitive.ObjectID `bson:"school_id" json:"school_id"`
	Disabled    bool               `bson:"disabled" json:"disabled"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
