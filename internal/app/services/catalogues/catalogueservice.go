// internal/app/services/catalogues/catalogueservice.go
package catalogueservice

import (
	"context"

	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/apperr"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/idgen"
	"github.com/igor-siergiej/jewellery-catalogue/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CatalogueRepository is the persistence surface the service needs.
type CatalogueRepository interface {
	GetByID(ctx context.Context, id string) (*models.Catalogue, error)
	GetAll(ctx context.Context) ([]models.Catalogue, error)
	Insert(ctx context.Context, catalogue models.Catalogue) error
	Delete(ctx context.Context, id string) error
}

// Service orchestrates catalogue CRUD over the repository.
type Service struct {
	repo CatalogueRepository
	ids  idgen.Generator
	log  *zap.Logger
}

// New constructs a catalogue service. The id generator must produce
// ObjectID-hex strings, since catalogues are addressed by surrogate id.
func New(repo CatalogueRepository, ids idgen.Generator, logger *zap.Logger) *Service {
	return &Service{repo: repo, ids: ids, log: logger}
}

// Get returns the catalogue with the given id.
func (s *Service) Get(ctx context.Context, id string) (models.Catalogue, error) {
	if id == "" {
		return models.Catalogue{}, apperr.InvalidArgument("Catalogue ID is required")
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.Catalogue{}, apperr.InvalidArgument("Catalogue ID must be a valid object id")
	}

	catalogue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Catalogue{}, err
	}
	if catalogue == nil {
		return models.Catalogue{}, apperr.NotFound("Catalogue not found")
	}
	return *catalogue, nil
}

// GetAll returns every catalogue, in store order.
func (s *Service) GetAll(ctx context.Context) ([]models.Catalogue, error) {
	return s.repo.GetAll(ctx)
}

// Create persists a new, empty catalogue. When id is empty a surrogate id
// is generated; a caller-supplied id that is already taken is a conflict.
func (s *Service) Create(ctx context.Context, id string) (models.Catalogue, error) {
	if id == "" {
		id = s.ids.Generate()
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Catalogue{}, apperr.InvalidArgument("Catalogue ID must be a valid object id")
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.Catalogue{}, err
	}
	if existing != nil {
		return models.Catalogue{}, apperr.Conflict("Catalogue with this ID already exists")
	}

	catalogue := models.Catalogue{
		ID:        oid,
		Designs:   []models.Design{},
		Materials: []models.Material{},
	}
	if err := s.repo.Insert(ctx, catalogue); err != nil {
		return models.Catalogue{}, err
	}

	s.log.Info("catalogue created", zap.String("id", id))
	return catalogue, nil
}

// Delete removes the catalogue with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("Catalogue ID is required")
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return apperr.InvalidArgument("Catalogue ID must be a valid object id")
	}

	catalogue, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if catalogue == nil {
		return apperr.NotFound("Catalogue not found")
	}
	return s.repo.Delete(ctx, id)
}
