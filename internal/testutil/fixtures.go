// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/erikahq/erika-backend/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateSchool creates a test school with the given name and admin email.
// Returns the created school with its generated ID.
func (f *Fixtures) CreateSchool(ctx context.Context, name, adminEmail string, osmID *string) models.School {
	f.t.Helper()

	now := time.Now().UTC()
	lat, lon := 40.7, -73.9
	school := models.School{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Address:    name,
		Latitude:   &lat,
		Longitude:  &lon,
		AdminEmail: adminEmail,
		OSMID:      osmID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("schools").InsertOne(ctx, school); err != nil {
		f.t.Fatalf("failed to create test school: %v", err)
	}
	return school
}

// CreateUser creates a test platform user with the given parameters.
func (f *Fixtures) CreateUser(ctx context.Context, email, displayName, role string, schoolID primitive.ObjectID) models.PlatformUser {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.PlatformUser{
		ID:          primitive.NewObjectID(),
		Email:       email,
		DisplayName: displayName,
		Role:        role,
		SchoolID:    schoolID,
		Disabled:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateAdmin creates a test administrator for the given school.
func (f *Fixtures) CreateAdmin(ctx context.Context, email string, schoolID primitive.ObjectID) models.PlatformUser {
	f.t.Helper()
	return f.CreateUser(ctx, email, "Administrator", "admin", schoolID)
}

// CreateStudent creates a test student for the given school.
func (f *Fixtures) CreateStudent(ctx context.Context, email string, schoolID primitive.ObjectID) models.PlatformUser {
	f.t.Helper()
	return f.CreateUser(ctx, email, "Test Student", "student", schoolID)
}

// CreateTeacher creates a test teacher for the given school.
func (f *Fixtures) CreateTeacher(ctx context.Context, email string, schoolID primitive.ObjectID) models.PlatformUser {
	f.t.Helper()
	return f.CreateUser(ctx, email, "Test Teacher", "teacher", schoolID)
}

// CreateQuiz creates a test quiz with one question for the given school.
func (f *Fixtures) CreateQuiz(ctx context.Context, title string, schoolID primitive.ObjectID) models.Quiz {
	f.t.Helper()

	now := time.Now().UTC()
	quiz := models.Quiz{
		ID:       primitive.NewObjectID(),
		SchoolID: schoolID,
		Title:    title,
		Questions: []models.QuizQuestion{
			{
				Prompt:  "What is 2 + 2?",
				Kind:    "multiple_choice",
				Choices: []string{"3", "4", "5"},
				Answer:  "4",
			},
		},
		Source:    models.QuizSourceManual,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("quizzes").InsertOne(ctx, quiz); err != nil {
		f.t.Fatalf("failed to create test quiz: %v", err)
	}
	return quiz
}

// CreateAssignment creates a test assignment for the given school/teacher.
func (f *Fixtures) CreateAssignment(ctx context.Context, title string, schoolID, teacherID primitive.ObjectID) models.Assignment {
	f.t.Helper()

	now := time.Now().UTC()
	assignment := models.Assignment{
		ID:        primitive.NewObjectID(),
		Title:     title,
		SchoolID:  schoolID,
		TeacherID: teacherID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("assignments").InsertOne(ctx, assignment); err != nil {
		f.t.Fatalf("failed to create test assignment: %v", err)
	}
	return assignment
}
