// internal/app/services/designs/designservice.go
package designservice

import (
	"context"
	"encoding/json"

	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/apperr"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/idgen"
	"github.com/igor-siergiej/jewellery-catalogue/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DesignRepository is the persistence surface for standalone designs plus
// the catalogue-scoped embedded view.
type DesignRepository interface {
	GetByID(ctx context.Context, id string) (*models.Design, error)
	GetByCatalogueID(ctx context.Context, catalogueID string) ([]models.Design, error)
	Insert(ctx context.Context, design models.Design) error
	Update(ctx context.Context, id string, design models.Design) error
	Delete(ctx context.Context, id string) error
}

// CatalogueRepository is the slice of catalogue persistence the design
// service needs to validate the parent and maintain its embedded array.
type CatalogueRepository interface {
	GetByID(ctx context.Context, id string) (*models.Catalogue, error)
	Update(ctx context.Context, id string, catalogue models.Catalogue) error
}

// ImageUploader stores the design image before the design is persisted.
type ImageUploader interface {
	Upload(ctx context.Context, name string, data []byte, contentType string) error
}

// Service orchestrates design creation (image upload, id generation, the
// dual write into the standalone collection and the parent catalogue) and
// the remaining CRUD.
type Service struct {
	designs    DesignRepository
	catalogues CatalogueRepository
	images     ImageUploader
	ids        idgen.Generator
	log        *zap.Logger
}

func New(designs DesignRepository, catalogues CatalogueRepository, images ImageUploader, ids idgen.Generator, logger *zap.Logger) *Service {
	return &Service{designs: designs, catalogues: catalogues, images: images, ids: ids, log: logger}
}

// GetByCatalogue returns the designs embedded in a catalogue.
func (s *Service) GetByCatalogue(ctx context.Context, catalogueID string) ([]models.Design, error) {
	if err := validCatalogueID(catalogueID); err != nil {
		return nil, err
	}
	return s.designs.GetByCatalogueID(ctx, catalogueID)
}

// Get returns the design with the given id.
func (s *Service) Get(ctx context.Context, id string) (models.Design, error) {
	if id == "" {
		return models.Design{}, apperr.InvalidArgument("Design ID is required")
	}

	design, err := s.designs.GetByID(ctx, id)
	if err != nil {
		return models.Design{}, err
	}
	if design == nil {
		return models.Design{}, apperr.NotFound("Design not found")
	}
	return *design, nil
}

// Add uploads the design image under a generated image id, parses the
// required-materials payload, and writes both the standalone design and
// the parent catalogue's embedded copy.
func (s *Service) Add(ctx context.Context, catalogueID string, upload models.UploadDesign, image []byte, contentType string) (models.Design, error) {
	if err := validCatalogueID(catalogueID); err != nil {
		return models.Design{}, err
	}

	catalogue, err := s.catalogues.GetByID(ctx, catalogueID)
	if err != nil {
		return models.Design{}, err
	}
	if catalogue == nil {
		return models.Design{}, apperr.NotFound("Catalogue not found")
	}

	designID := s.ids.Generate()
	imageID := s.ids.Generate()

	if err := s.images.Upload(ctx, imageID, image, contentType); err != nil {
		return models.Design{}, err
	}

	materials, err := parseMaterials(upload.Materials)
	if err != nil {
		return models.Design{}, err
	}

	design := models.Design{
		ID:                 designID,
		Name:               upload.Name,
		Description:        upload.Description,
		TimeRequired:       upload.TimeRequired,
		TotalMaterialCosts: upload.TotalMaterialCosts,
		Price:              upload.Price,
		ImageID:            imageID,
		Materials:          materials,
	}

	if err := s.designs.Insert(ctx, design); err != nil {
		return models.Design{}, err
	}

	// Second leg of the denormalized dual write. No transaction wraps the
	// pair; a failure here leaves the copies diverged.
	catalogue.Designs = append(catalogue.Designs, design)
	if err := s.catalogues.Update(ctx, catalogueID, *catalogue); err != nil {
		return models.Design{}, err
	}

	s.log.Info("design added",
		zap.String("id", designID),
		zap.String("imageId", imageID),
		zap.String("catalogueId", catalogueID))
	return design, nil
}

// Update shallow-merges the JSON patch over the stored design and persists
// the result as a full replace. The stored id stays authoritative, and the
// embedded copy inside the parent catalogue is not re-synced.
func (s *Service) Update(ctx context.Context, id string, patch json.RawMessage) (models.Design, error) {
	if id == "" {
		return models.Design{}, apperr.InvalidArgument("Design ID is required")
	}

	existing, err := s.designs.GetByID(ctx, id)
	if err != nil {
		return models.Design{}, err
	}
	if existing == nil {
		return models.Design{}, apperr.NotFound("Design not found")
	}

	updated := *existing
	if err := json.Unmarshal(patch, &updated); err != nil {
		return models.Design{}, apperr.InvalidArgument("Invalid update payload")
	}
	updated.ID = existing.ID

	if err := s.designs.Update(ctx, id, updated); err != nil {
		return models.Design{}, err
	}
	return updated, nil
}

// Delete removes the standalone design. The embedded copy in the parent
// catalogue is left in place.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("Design ID is required")
	}

	design, err := s.designs.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if design == nil {
		return apperr.NotFound("Design not found")
	}
	return s.designs.Delete(ctx, id)
}

// validCatalogueID checks that a catalogue reference is present and parses
// as a surrogate ObjectID before any store access happens.
func validCatalogueID(id string) error {
	if id == "" {
		return apperr.InvalidArgument("Catalogue ID is required")
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return apperr.InvalidArgument("Catalogue ID must be a valid object id")
	}
	return nil
}

// parseMaterials accepts the required-materials payload either as a
// structured list or as a JSON-encoded string of one (multipart forms send
// the string form).
func parseMaterials(raw json.RawMessage) ([]models.RequiredMaterial, error) {
	if len(raw) == 0 {
		return []models.RequiredMaterial{}, nil
	}

	var materials []models.RequiredMaterial
	if err := json.Unmarshal(raw, &materials); err == nil {
		return materials, nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err == nil {
		if err := json.Unmarshal([]byte(encoded), &materials); err == nil {
			return materials, nil
		}
	}

	return nil, apperr.InvalidArgument("Invalid materials format")
}
