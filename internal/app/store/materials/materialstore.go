// internal/app/store/materials/materialstore.go
package materialstore

import (
	"context"

	"github.com/igor-siergiej/jewellery-catalogue/internal/app/store/repository"
	"github.com/igor-siergiej/jewellery-catalogue/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store persists materials standalone (natural string ids) and reads the
// catalogue-scoped view from the parent aggregate's embedded array.
type Store struct {
	*repository.Repository[models.Material]
	catalogues *repository.Repository[models.Catalogue]
}

func New(db *mongo.Database) *Store {
	return &Store{
		Repository: repository.New[models.Material](db, repository.MaterialsCollection),
		catalogues: repository.New[models.Catalogue](db, repository.CataloguesCollection),
	}
}

// GetByCatalogueID returns the materials embedded in the given catalogue.
// A missing catalogue or an empty/nil embedded array yields an empty
// slice, never an error.
func (s *Store) GetByCatalogueID(ctx context.Context, catalogueID string) ([]models.Material, error) {
	catalogue, err := s.catalogues.GetByID(ctx, catalogueID)
	if err != nil {
		return nil, err
	}
	if catalogue == nil || catalogue.Materials == nil {
		return []models.Material{}, nil
	}
	return catalogue.Materials, nil
}
