// internal/app/store/catalogues/cataloguestore.go
package cataloguestore

import (
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/store/repository"
	"github.com/igor-siergiej/jewellery-catalogue/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store persists Catalogue aggregates. Catalogues are addressed by their
// surrogate ObjectID, so the generic repository is constructed with the
// surrogate scheme via the collection policy.
type Store struct {
	*repository.Repository[models.Catalogue]
}

func New(db *mongo.Database) *Store {
	return &Store{repository.New[models.Catalogue](db, repository.CataloguesCollection)}
}
