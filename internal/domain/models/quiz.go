// internal/domain/models/quiz.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Quiz source values.
const (
	QuizSourceMaterial = "material"
	QuizSourceAI       = "ai"
	QuizSourceManual   = "manual"
)

// QuizQuestion is one question in a quiz. Questions are structured records,
// not free-form maps, so malformed question payloads are rejected at the
// boundary rather than discovered at render time.
type QuizQuestion struct {
	Prompt  string   `bson:"prompt" json:"prompt"`
	Kind    string   `bson:"kind" json:"kind"` // multiple_choice | true_false | short_answer
	Choices []string `bson:"choices,omitempty" json:"choices,omitempty"`
	Answer  string   `bson:"answer" json:"answer"`
}

// Quiz is a set of questions attached to a school.
type Quiz struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SchoolID  primitive.ObjectID `bson:"school_id" json:"school_id"`
	Title     string             `bson:"title" json:"title"`
	Questions []QuizQuestion     `bson:"questions" json:"questions"`
	Source    string             `bson:"source,omitempty" json:"source,omitempty"` // material | ai | manual

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
