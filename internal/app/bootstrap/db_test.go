package bootstrap

import (
	"testing"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/store/repository"
	"github.com/igor-siergiej/jewellery-catalogue/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func TestEnsureSchema_UniqueNaturalIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db}
	if err := EnsureSchema(ctx, nil, AppConfig{}, deps, zap.NewNop()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	for _, collection := range []string{repository.DesignsCollection, repository.MaterialsCollection} {
		c := db.Collection(collection)
		if _, err := c.InsertOne(ctx, bson.M{"id": "dup", "name": "first"}); err != nil {
			t.Fatalf("%s: first insert failed: %v", collection, err)
		}
		_, err := c.InsertOne(ctx, bson.M{"id": "dup", "name": "second"})
		if err == nil {
			t.Fatalf("%s: duplicate natural id was accepted", collection)
		}
		if !wafflemongo.IsDup(err) {
			t.Errorf("%s: expected duplicate-key error, got %v", collection, err)
		}
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db}
	for i := 0; i < 2; i++ {
		if err := EnsureSchema(ctx, nil, AppConfig{}, deps, zap.NewNop()); err != nil {
			t.Fatalf("EnsureSchema run %d failed: %v", i, err)
		}
	}
}
