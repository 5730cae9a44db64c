// internal/app/store/designs/designstore.go
package designstore

import (
	"context"

	"github.com/igor-siergiej/jewellery-catalogue/internal/app/store/repository"
	"github.com/igor-siergiej/jewellery-catalogue/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store persists designs standalone (natural string ids) and reads the
// catalogue-scoped view from the parent aggregate's embedded array.
type Store struct {
	*repository.Repository[models.Design]
	catalogues *repository.Repository[models.Catalogue]
}

func New(db *mongo.Database) *Store {
	return &Store{
		Repository: repository.New[models.Design](db, repository.DesignsCollection),
		catalogues: repository.New[models.Catalogue](db, repository.CataloguesCollection),
	}
}

// GetByCatalogueID returns the designs embedded in the given catalogue.
// A missing catalogue or an empty/nil embedded array yields an empty
// slice, never an error.
func (s *Store) GetByCatalogueID(ctx context.Context, catalogueID string) ([]models.Design, error) {
	catalogue, err := s.catalogues.GetByID(ctx, catalogueID)
	if err != nil {
		return nil, err
	}
	if catalogue == nil || catalogue.Designs == nil {
		return []models.Design{}, nil
	}
	return catalogue.Designs, nil
}
