// internal/app/services/materials/materialservice.go
package materialservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/apperr"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/idgen"
	"github.com/igor-siergiej/jewellery-catalogue/internal/domain/models"
	"github.com/igor-siergiej/jewellery-catalogue/internal/domain/pricing"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// MaterialRepository is the persistence surface for standalone materials
// plus the catalogue-scoped embedded view.
type MaterialRepository interface {
	GetByID(ctx context.Context, id string) (*models.Material, error)
	GetByCatalogueID(ctx context.Context, catalogueID string) ([]models.Material, error)
	Insert(ctx context.Context, material models.Material) error
	Update(ctx context.Context, id string, material models.Material) error
	Delete(ctx context.Context, id string) error
}

// CatalogueRepository is the slice of catalogue persistence the material
// service needs to validate the parent and maintain its embedded array.
type CatalogueRepository interface {
	GetByID(ctx context.Context, id string) (*models.Catalogue, error)
	Update(ctx context.Context, id string, catalogue models.Catalogue) error
}

// Service orchestrates material creation (validation, cost conversion, id
// assignment, the dual write into the standalone collection and the parent
// catalogue) and the remaining CRUD.
type Service struct {
	materials  MaterialRepository
	catalogues CatalogueRepository
	ids        idgen.Generator
	log        *zap.Logger
}

func New(materials MaterialRepository, catalogues CatalogueRepository, ids idgen.Generator, logger *zap.Logger) *Service {
	return &Service{materials: materials, catalogues: catalogues, ids: ids, log: logger}
}

// GetByCatalogue returns the materials embedded in a catalogue.
func (s *Service) GetByCatalogue(ctx context.Context, catalogueID string) ([]models.Material, error) {
	if err := validCatalogueID(catalogueID); err != nil {
		return nil, err
	}
	return s.materials.GetByCatalogueID(ctx, catalogueID)
}

// Get returns the material with the given id.
func (s *Service) Get(ctx context.Context, id string) (models.Material, error) {
	if id == "" {
		return models.Material{}, apperr.InvalidArgument("Material ID is required")
	}

	material, err := s.materials.GetByID(ctx, id)
	if err != nil {
		return models.Material{}, err
	}
	if material == nil {
		return models.Material{}, apperr.NotFound("Material not found")
	}
	return *material, nil
}

// Add validates the purchase-form payload against the declared type's
// required key set, strips unknown keys, derives per-unit pricing, assigns
// a generated id, and writes both the standalone document and the parent
// catalogue's embedded copy.
func (s *Service) Add(ctx context.Context, catalogueID string, payload json.RawMessage) (models.Material, error) {
	if err := validCatalogueID(catalogueID); err != nil {
		return models.Material{}, err
	}

	catalogue, err := s.catalogues.GetByID(ctx, catalogueID)
	if err != nil {
		return models.Material{}, err
	}
	if catalogue == nil {
		return models.Material{}, apperr.NotFound("Catalogue not found")
	}

	form, err := validateForm(payload)
	if err != nil {
		return models.Material{}, err
	}

	material, err := pricing.Convert(form)
	if err != nil {
		return models.Material{}, &apperr.Error{Status: http.StatusBadRequest, Message: err.Error(), Err: err}
	}
	material.ID = s.ids.Generate()

	if err := s.materials.Insert(ctx, material); err != nil {
		return models.Material{}, err
	}

	// Second leg of the denormalized dual write. No transaction wraps the
	// pair; a failure here leaves the copies diverged.
	catalogue.Materials = append(catalogue.Materials, material)
	if err := s.catalogues.Update(ctx, catalogueID, *catalogue); err != nil {
		return models.Material{}, err
	}

	s.log.Info("material added",
		zap.String("id", material.ID),
		zap.String("type", material.Type),
		zap.String("catalogueId", catalogueID))
	return material, nil
}

// Update shallow-merges the JSON patch over the stored material and
// persists the result as a full replace. The stored id stays authoritative,
// and the embedded copy inside the parent catalogue is not re-synced.
func (s *Service) Update(ctx context.Context, id string, patch json.RawMessage) (models.Material, error) {
	if id == "" {
		return models.Material{}, apperr.InvalidArgument("Material ID is required")
	}

	existing, err := s.materials.GetByID(ctx, id)
	if err != nil {
		return models.Material{}, err
	}
	if existing == nil {
		return models.Material{}, apperr.NotFound("Material not found")
	}

	updated := *existing
	if err := json.Unmarshal(patch, &updated); err != nil {
		return models.Material{}, apperr.InvalidArgument("Invalid update payload")
	}
	updated.ID = existing.ID

	if err := s.materials.Update(ctx, id, updated); err != nil {
		return models.Material{}, err
	}
	return updated, nil
}

// Delete removes the standalone material. The embedded copy in the parent
// catalogue is left in place.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("Material ID is required")
	}

	material, err := s.materials.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if material == nil {
		return apperr.NotFound("Material not found")
	}
	return s.materials.Delete(ctx, id)
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

// validateForm narrows the raw payload to the declared type's key set:
// unknown type tags and missing required keys fail, unexpected keys are
// dropped before decoding into the typed form.
func validateForm(payload json.RawMessage) (models.FormMaterial, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return models.FormMaterial{}, apperr.InvalidArgument("Invalid material payload")
	}

	var materialType string
	if rawType, ok := raw["type"]; ok {
		if err := json.Unmarshal(rawType, &materialType); err != nil {
			return models.FormMaterial{}, apperr.InvalidArgument("Invalid material payload")
		}
	}
	if !models.IsMaterialType(materialType) {
		return models.FormMaterial{}, apperr.InvalidArgument(fmt.Sprintf("Unknown material type: %s", materialType))
	}

	expected := models.FormMaterialKeys[materialType]

	var missing []string
	for _, key := range expected {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return models.FormMaterial{}, apperr.InvalidArgument(fmt.Sprintf(
			"Material of type '%s' is missing the following keys: %s",
			materialType, strings.Join(missing, ", ")))
	}

	filtered := make(map[string]json.RawMessage, len(expected))
	for _, key := range expected {
		filtered[key] = raw[key]
	}

	encoded, err := json.Marshal(filtered)
	if err != nil {
		return models.FormMaterial{}, apperr.InvalidArgument("Invalid material payload")
	}
	var form models.FormMaterial
	if err := json.Unmarshal(encoded, &form); err != nil {
		return models.FormMaterial{}, apperr.InvalidArgument("Invalid material payload")
	}
	return form, nil
}
