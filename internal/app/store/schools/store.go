// internal/app/store/schools/store.go

// Package schoolstore wraps the schools collection.
package schoolstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/erikahq/erika-backend/internal/domain/models"
)

// Store provides access to school records.
type Store struct {
	c *mongo.Collection
}

// New creates a Store over the given database's schools collection.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("schools")}
}

// Insert writes a new school and returns its generated ID. Timestamps are
// set here so every caller gets consistent created_at/updated_at values.
//
// The collection carries unique indexes on osm_id (sparse) and on
// (name, admin_email); callers treat a duplicate-key error from Insert as
// the school-already-registered case.
func (s *Store) Insert(ctx context.Context, school *models.School) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	school.ID = primitive.NewObjectID()
	school.CreatedAt = now
	school.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, school); err != nil {
		return primitive.NilObjectID, err
	}
	return school.ID, nil
}

// FindDuplicate looks for an existing school that collides with the given
// dedupe keys: same osm_id, or same (name, admin_email) pair. Returns
// (nil, nil) when no collision exists.
//
// The osm_id clause is only added when an identifier is present; matching
// on a missing osm_id would treat every identifier-less school as a
// duplicate of every other.
func (s *Store) FindDuplicate(ctx context.Context, osmID *string, name, adminEmail string) (*models.School, error) {
	or := bson.A{
		bson.M{"name": name, "admin_email": adminEmail},
	}
	if osmID != nil {
		or = append(or, bson.M{"osm_id": *osmID})
	}

	var existing models.School
	err := s.c.FindOne(ctx, bson.M{"$or": or}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &existing, nil
}

// GetByID fetches one school by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.School, error) {
	var school models.School
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&school); err != nil {
		return nil, err
	}
	return &school, nil
}

// Delete removes one school by ID. Used only as the compensation step when
// the admin-user insert fails outside a transaction.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count returns the number of school records. Test support.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
