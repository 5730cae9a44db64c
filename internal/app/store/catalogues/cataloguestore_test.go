package cataloguestore_test

import (
	"testing"

	cataloguestore "github.com/igor-siergiej/jewellery-catalogue/internal/app/store/catalogues"
	"github.com/igor-siergiej/jewellery-catalogue/internal/domain/models"
	"github.com/igor-siergiej/jewellery-catalogue/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_InsertAndGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := cataloguestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id := primitive.NewObjectID()
	c := models.Catalogue{
		ID:        id,
		Designs:   []models.Design{},
		Materials: []models.Material{},
	}
	if err := store.Insert(ctx, c); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.GetByID(ctx, id.Hex())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected catalogue, got nil")
	}
	if got.ID != id {
		t.Errorf("ID: got %s, want %s", got.ID.Hex(), id.Hex())
	}
	if got.Designs == nil || got.Materials == nil {
		t.Errorf("expected empty arrays to round trip, got %+v", got)
	}
}

func TestStore_GetByID_Miss(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := cataloguestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	got, err := store.GetByID(ctx, primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil on miss, got %+v", got)
	}
}

func TestStore_Update_ReplacesEmbeddedArrays(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := cataloguestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	catalogue := fixtures.CreateCatalogue(ctx)
	catalogue.Materials = append(catalogue.Materials, models.Material{
		ID:   "mat-1",
		Name: "Wire",
		Type: models.MaterialTypeWire,
	})

	if err := store.Update(ctx, catalogue.ID.Hex(), catalogue); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, catalogue.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(got.Materials) != 1 || got.Materials[0].ID != "mat-1" {
		t.Errorf("embedded materials not persisted: %+v", got.Materials)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := cataloguestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	catalogue := fixtures.CreateCatalogue(ctx)

	if err := store.Delete(ctx, catalogue.ID.Hex()); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	got, err := store.GetByID(ctx, catalogue.ID.Hex())
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected catalogue gone, got %+v", got)
	}
}
