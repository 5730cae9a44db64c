package testutil

import (
	"context"
	"testing"

	"github.com/igor-siergiej/jewellery-catalogue/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
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

// CreateCatalogue inserts a catalogue with empty designs and materials
// arrays and returns it.
func (f *Fixtures) CreateCatalogue(ctx context.Context) models.Catalogue {
	f.t.Helper()

	catalogue := models.Catalogue{
		ID:        primitive.NewObjectID(),
		Designs:   []models.Design{},
		Materials: []models.Material{},
	}
	if _, err := f.db.Collection("catalogues").InsertOne(ctx, catalogue); err != nil {
		f.t.Fatalf("failed to create test catalogue: %v", err)
	}
	return catalogue
}

// CreateCatalogueWith inserts a catalogue carrying the given embedded
// designs and materials (either may be nil to exercise the missing-array
// read paths).
func (f *Fixtures) CreateCatalogueWith(ctx context.Context, designs []models.Design, materials []models.Material) models.Catalogue {
	f.t.Helper()

	catalogue := models.Catalogue{
		ID:        primitive.NewObjectID(),
		Designs:   designs,
		Materials: materials,
	}
	if _, err := f.db.Collection("catalogues").InsertOne(ctx, catalogue); err != nil {
		f.t.Fatalf("failed to create test catalogue: %v", err)
	}
	return catalogue
}

// CreateMaterial inserts a standalone wire material with the given id.
func (f *Fixtures) CreateMaterial(ctx context.Context, id string) models.Material {
	f.t.Helper()

	material := models.Material{
		ID:            id,
		Name:          "Test Wire",
		Brand:         "TestBrand",
		PurchaseURL:   "https://example.com/wire",
		Type:          models.MaterialTypeWire,
		WireType:      "FULL",
		MetalType:     "COPPER",
		Diameter:      0.4,
		Length:        15,
		PricePerMeter: 0.8,
	}
	if _, err := f.db.Collection("materials").InsertOne(ctx, material); err != nil {
		f.t.Fatalf("failed to create test material: %v", err)
	}
	return material
}

// CreateDesign inserts a standalone design with the given id.
func (f *Fixtures) CreateDesign(ctx context.Context, id string) models.Design {
	f.t.Helper()

	design := models.Design{
		ID:                 id,
		Name:               "Test Design",
		Description:        "A design used in tests",
		TimeRequired:       "01:30",
		TotalMaterialCosts: 12.5,
		Price:              40,
		ImageID:            "test-image",
		Materials:          []models.RequiredMaterial{},
	}
	if _, err := f.db.Collection("designs").InsertOne(ctx, design); err != nil {
		f.t.Fatalf("failed to create test design: %v", err)
	}
	return design
}
