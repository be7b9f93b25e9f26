// internal/domain/models/assignment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assignment is work a teacher sets for a class.
type Assignment struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title       string              `bson:"title" json:"title"`
	Description string              `bson:"description,omitempty" json:"description,omitempty"`
	DueDate     *time.Time          `bson:"due_date,omitempty" json:"due_date,omitempty"`
	Subject     string              `bson:"subject,omitempty" json:"subject,omitempty"`
	SchoolID    primitive.ObjectID  `bson:"school_id" json:"school_id"`
	TeacherID   primitive.ObjectID  `bson:"teacher_id" json:"teacher_id"`
	ClassID     *primitive.ObjectID `bson:"class_id,omitempty" json:"class_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
