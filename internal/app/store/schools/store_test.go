package schoolstore_test

import (
	"testing"

	schoolstore "github.com/erikahq/erika-backend/internal/app/store/schools"
	"github.com/erikahq/erika-backend/internal/domain/models"
	"github.com/erikahq/erika-backend/internal/testutil"
)

func strPtr(s string) *string { return &s }

func TestInsertAndGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := schoolstore.New(db)
	lat, lon := 40.7, -73.9
	id, err := store.Insert(ctx, &models.School{
		Name:       "Lincoln High School",
		Address:    "Lincoln High School",
		Latitude:   &lat,
		Longitude:  &lon,
		AdminEmail: "admin@lincoln.edu",
		OSMID:      strPtr("12345"),
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Lincoln High School" {
		t.Errorf("name: got %q", got.Name)
	}
	if got.OSMID == nil || *got.OSMID != "12345" {
		t.Errorf("osm_id: got %v, want 12345", got.OSMID)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Error("timestamps not set on insert")
	}
}

func TestFindDuplicate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix := testutil.NewFixtures(t, db)
	fix.CreateSchool(ctx, "Lincoln High School", "admin@lincoln.edu", strPtr("12345"))

	store := schoolstore.New(db)

	tests := []struct {
		name       string
		osmID      *string
		schoolName string
		adminEmail string
		wantHit    bool
	}{
		{"same osm_id different name", strPtr("12345"), "Other School", "other@other.edu", true},
		{"same name and email no osm_id", nil, "Lincoln High School", "admin@lincoln.edu", true},
		{"same name different email", nil, "Lincoln High School", "someone@else.edu", false},
		{"different everything", strPtr("99999"), "Roosevelt Middle", "admin@roosevelt.edu", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.FindDuplicate(ctx, tt.osmID, tt.schoolName, tt.adminEmail)
			if err != nil {
				t.Fatalf("FindDuplicate failed: %v", err)
			}
			if (got != nil) != tt.wantHit {
				t.Errorf("FindDuplicate hit = %v, want %v", got != nil, tt.wantHit)
			}
		})
	}
}

func TestFindDuplicate_MissingOSMIDDoesNotMatchOtherMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fix := testutil.NewFixtures(t, db)
	fix.CreateSchool(ctx, "No Identifier School", "admin@noid.edu", nil)

	store := schoolstore.New(db)
	got, err := store.FindDuplicate(ctx, nil, "Different School", "admin@different.edu")
	if err != nil {
		t.Fatalf("FindDuplicate failed: %v", err)
	}
	if got != nil {
		t.Errorf("school with absent osm_id matched unrelated draft: %+v", got)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := schoolstore.New(db)
	id, err := store.Insert(ctx, &models.School{
		Name:       "Ephemeral Academy",
		Address:    "Nowhere",
		AdminEmail: "admin@ephemeral.edu",
	})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("count after delete: got %d, want 0", n)
	}
}
