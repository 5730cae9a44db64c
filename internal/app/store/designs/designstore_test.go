package designstore_test

import (
	"testing"

	designstore "github.com/igor-siergiej/jewellery-catalogue/internal/app/store/designs"
	"github.com/igor-siergiej/jewellery-catalogue/internal/domain/models"
	"github.com/igor-siergiej/jewellery-catalogue/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_InsertAndGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := designstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	d := models.Design{
		ID:      "design-1",
		Name:    "Hoop Earrings",
		ImageID: "img-1",
		Materials: []models.RequiredMaterial{
			{ID: "mat-1", RequiredLength: 0.5},
		},
	}
	if err := store.Insert(ctx, d); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.GetByID(ctx, "design-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected design, got nil")
	}
	if got.Name != "Hoop Earrings" || len(got.Materials) != 1 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestStore_GetAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := designstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateDesign(ctx, "design-1")
	fixtures.CreateDesign(ctx, "design-2")

	got, err := store.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 designs, got %d", len(got))
	}
}

func TestStore_GetByCatalogueID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := designstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	embedded := []models.Design{
		{ID: "design-1", Name: "First"},
		{ID: "design-2", Name: "Second"},
	}
	catalogue := fixtures.CreateCatalogueWith(ctx, embedded, nil)

	got, err := store.GetByCatalogueID(ctx, catalogue.ID.Hex())
	if err != nil {
		t.Fatalf("GetByCatalogueID failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 designs, got %d", len(got))
	}
	if got[0].ID != "design-1" || got[1].ID != "design-2" {
		t.Errorf("embedded order not preserved: %+v", got)
	}
}

func TestStore_GetByCatalogueID_EmptyCases(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := designstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	withNilArray := fixtures.CreateCatalogueWith(ctx, nil, nil)
	withEmptyArray := fixtures.CreateCatalogue(ctx)

	cases := map[string]string{
		"absent catalogue": primitive.NewObjectID().Hex(),
		"nil array":        withNilArray.ID.Hex(),
		"empty array":      withEmptyArray.ID.Hex(),
	}
	for name, id := range cases {
		got, err := store.GetByCatalogueID(ctx, id)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if got == nil || len(got) != 0 {
			t.Errorf("%s: expected empty slice, got %+v", name, got)
		}
	}
}
