package catalogueservice

import (
	"context"
	"net/http"
	"testing"

	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/apperr"
	"github.com/igor-siergiej/jewellery-catalogue/internal/testutil"
	"go.uber.org/zap"
)

func newService(repo *testutil.FakeCatalogueRepo, ids ...string) *Service {
	return New(repo, &testutil.SequenceGenerator{IDs: ids}, zap.NewNop())
}

func TestCreateGeneratesIDWhenEmpty(t *testing.T) {
	repo := testutil.NewFakeCatalogueRepo()
	svc := newService(repo, "64b0c8f2a1b2c3d4e5f60718")

	catalogue, err := svc.Create(context.Background(), "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got := catalogue.ID.Hex(); got != "64b0c8f2a1b2c3d4e5f60718" {
		t.Fatalf("id = %q, want generated id", got)
	}
	if catalogue.Designs == nil || len(catalogue.Designs) != 0 {
		t.Fatalf("designs = %v, want empty slice", catalogue.Designs)
	}
	if catalogue.Materials == nil || len(catalogue.Materials) != 0 {
		t.Fatalf("materials = %v, want empty slice", catalogue.Materials)
	}
}

func TestCreateThenGetRoundtrip(t *testing.T) {
	repo := testutil.NewFakeCatalogueRepo()
	svc := newService(repo)

	const id = "64b0c8f2a1b2c3d4e5f60719"
	if _, err := svc.Create(context.Background(), id); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID.Hex() != id {
		t.Fatalf("id = %q, want %q", got.ID.Hex(), id)
	}
}

func TestCreateRejectsInvalidHex(t *testing.T) {
	svc := newService(testutil.NewFakeCatalogueRepo())

	_, err := svc.Create(context.Background(), "not-a-hex-id")
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", apperr.StatusOf(err))
	}
}

func TestCreateDuplicateConflicts(t *testing.T) {
	repo := testutil.NewFakeCatalogueRepo()
	svc := newService(repo)

	const id = "64b0c8f2a1b2c3d4e5f6071a"
	if _, err := svc.Create(context.Background(), id); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := svc.Create(context.Background(), id)
	if apperr.StatusOf(err) != http.StatusConflict {
		t.Fatalf("status = %d, want 409", apperr.StatusOf(err))
	}
	if apperr.MessageOf(err) != "Catalogue with this ID already exists" {
		t.Fatalf("message = %q", apperr.MessageOf(err))
	}
}

func TestGetMissingIsNotFound(t *testing.T) {
	svc := newService(testutil.NewFakeCatalogueRepo())

	_, err := svc.Get(context.Background(), "64b0c8f2a1b2c3d4e5f6071b")
	if apperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", apperr.StatusOf(err))
	}
}

func TestGetInvalidHexIsInvalid(t *testing.T) {
	svc := newService(testutil.NewFakeCatalogueRepo())

	_, err := svc.Get(context.Background(), "not-a-hex-id")
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", apperr.StatusOf(err))
	}
}

func TestGetEmptyIDIsInvalid(t *testing.T) {
	svc := newService(testutil.NewFakeCatalogueRepo())

	_, err := svc.Get(context.Background(), "")
	if apperr.StatusOf(err) != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", apperr.StatusOf(err))
	}
}

func TestDelete(t *testing.T) {
	repo := testutil.NewFakeCatalogueRepo()
	svc := newService(repo)

	const id = "64b0c8f2a1b2c3d4e5f6071c"
	if _, err := svc.Create(context.Background(), id); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), id); apperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("status after delete = %d, want 404", apperr.StatusOf(err))
	}

	if err := svc.Delete(context.Background(), id); apperr.StatusOf(err) != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", apperr.StatusOf(err))
	}
}
