// internal/app/store/users/store.go

// Package userstore wraps the users collection.
package userstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/erikahq/erika-backend/internal/domain/models"
)

// MaxListResults caps role-filtered listings.
const MaxListResults = 200

// Store provides access to platform user records.
type Store struct {
	c *mongo.Collection
}

// New creates a Store over the given database's users collection.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Insert writes a new platform user and returns its generated ID.
func (s *Store) Insert(ctx context.Context, user *models.PlatformUser) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, user); err != nil {
		return primitive.NilObjectID, err
	}
	return user.ID, nil
}

// ListByRole returns users with the given role, optionally restricted to one
// school, capped at MaxListResults. Order is whatever the store returns;
// callers must not rely on it.
func (s *Store) ListByRole(ctx context.Context, role string, schoolID *primitive.ObjectID) ([]models.PlatformUser, error) {
	filter := bson.M{"role": role}
	if schoolID != nil {
		filter["school_id"] = *schoolID
	}

	opts := options.Find().SetLimit(MaxListResults)
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []models.PlatformUser{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CountBySchool returns how many users belong to the given school.
// Test support.
func (s *Store) CountBySchool(ctx context.Context, schoolID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"school_id": schoolID})
}
