package testutil

import (
	"context"

	"github.com/igor-siergiej/jewellery-catalogue/internal/domain/models"
)

// FakeCatalogueRepo is an in-memory catalogue repository keyed by the
// surrogate id's hex form. Error fields, when set, are returned by the
// corresponding operation to exercise failure paths.
type FakeCatalogueRepo struct {
	Catalogues map[string]models.Catalogue

	GetErr    error
	InsertErr error
	UpdateErr error
	DeleteErr error
}

func NewFakeCatalogueRepo() *FakeCatalogueRepo {
	return &FakeCatalogueRepo{Catalogues: map[string]models.Catalogue{}}
}

func (f *FakeCatalogueRepo) GetByID(_ context.Context, id string) (*models.Catalogue, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	catalogue, ok := f.Catalogues[id]
	if !ok {
		return nil, nil
	}
	return &catalogue, nil
}

func (f *FakeCatalogueRepo) GetAll(_ context.Context) ([]models.Catalogue, error) {
	out := make([]models.Catalogue, 0, len(f.Catalogues))
	for _, catalogue := range f.Catalogues {
		out = append(out, catalogue)
	}
	return out, nil
}

func (f *FakeCatalogueRepo) Insert(_ context.Context, catalogue models.Catalogue) error {
	if f.InsertErr != nil {
		return f.InsertErr
	}
	f.Catalogues[catalogue.ID.Hex()] = catalogue
	return nil
}

func (f *FakeCatalogueRepo) Update(_ context.Context, id string, catalogue models.Catalogue) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.Catalogues[id] = catalogue
	return nil
}

func (f *FakeCatalogueRepo) Delete(_ context.Context, id string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	delete(f.Catalogues, id)
	return nil
}

// FakeMaterialRepo is an in-memory material repository. The catalogue-
// scoped view reads the embedded array of the linked FakeCatalogueRepo,
// mirroring the production store.
type FakeMaterialRepo struct {
	Materials  map[string]models.Material
	Catalogues *FakeCatalogueRepo

	InsertErr error
	UpdateErr error
	DeleteErr error
}

func NewFakeMaterialRepo(catalogues *FakeCatalogueRepo) *FakeMaterialRepo {
	return &FakeMaterialRepo{Materials: map[string]models.Material{}, Catalogues: catalogues}
}

func (f *FakeMaterialRepo) GetByID(_ context.Context, id string) (*models.Material, error) {
	material, ok := f.Materials[id]
	if !ok {
		return nil, nil
	}
	return &material, nil
}

func (f *FakeMaterialRepo) GetByCatalogueID(ctx context.Context, catalogueID string) ([]models.Material, error) {
	catalogue, err := f.Catalogues.GetByID(ctx, catalogueID)
	if err != nil {
		return nil, err
	}
	if catalogue == nil || catalogue.Materials == nil {
		return []models.Material{}, nil
	}
	return catalogue.Materials, nil
}

func (f *FakeMaterialRepo) Insert(_ context.Context, material models.Material) error {
	if f.InsertErr != nil {
		return f.InsertErr
	}
	f.Materials[material.ID] = material
	return nil
}

func (f *FakeMaterialRepo) Update(_ context.Context, id string, material models.Material) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.Materials[id] = material
	return nil
}

func (f *FakeMaterialRepo) Delete(_ context.Context, id string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	delete(f.Materials, id)
	return nil
}

// FakeDesignRepo is the design counterpart of FakeMaterialRepo.
type FakeDesignRepo struct {
	Designs    map[string]models.Design
	Catalogues *FakeCatalogueRepo

	InsertErr error
	UpdateErr error
	DeleteErr error
}

func NewFakeDesignRepo(catalogues *FakeCatalogueRepo) *FakeDesignRepo {
	return &FakeDesignRepo{Designs: map[string]models.Design{}, Catalogues: catalogues}
}

func (f *FakeDesignRepo) GetByID(_ context.Context, id string) (*models.Design, error) {
	design, ok := f.Designs[id]
	if !ok {
		return nil, nil
	}
	return &design, nil
}

func (f *FakeDesignRepo) GetByCatalogueID(ctx context.Context, catalogueID string) ([]models.Design, error) {
	catalogue, err := f.Catalogues.GetByID(ctx, catalogueID)
	if err != nil {
		return nil, err
	}
	if catalogue == nil || catalogue.Designs == nil {
		return []models.Design{}, nil
	}
	return catalogue.Designs, nil
}

func (f *FakeDesignRepo) Insert(_ context.Context, design models.Design) error {
	if f.InsertErr != nil {
		return f.InsertErr
	}
	f.Designs[design.ID] = design
	return nil
}

func (f *FakeDesignRepo) Update(_ context.Context, id string, design models.Design) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.Designs[id] = design
	return nil
}

func (f *FakeDesignRepo) Delete(_ context.Context, id string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	delete(f.Designs, id)
	return nil
}

// SequenceGenerator hands out predetermined ids in order, then falls back
// to a fixed suffix pattern. Useful when a test needs to know which id a
// service assigned.
type SequenceGenerator struct {
	IDs  []string
	next int
}

func (g *SequenceGenerator) Generate() string {
	if g.next < len(g.IDs) {
		id := g.IDs[g.next]
		g.next++
		return id
	}
	g.next++
	return "generated-id"
}
