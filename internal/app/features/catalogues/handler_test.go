package catalogues_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/features/catalogues"
	catalogueservice "github.com/igor-siergiej/jewellery-catalogue/internal/app/services/catalogues"
	"github.com/igor-siergiej/jewellery-catalogue/internal/testutil"
	"go.uber.org/zap"
)

func newRouter(ids ...string) (http.Handler, *testutil.FakeCatalogueRepo) {
	repo := testutil.NewFakeCatalogueRepo()
	svc := catalogueservice.New(repo, &testutil.SequenceGenerator{IDs: ids}, zap.NewNop())
	handler := catalogues.NewHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Mount("/api/catalogue", catalogues.Routes(handler))
	return r, repo
}

func TestCreateReturnsCatalogue(t *testing.T) {
	router, _ := newRouter("64b0c8f2a1b2c3d4e5f60718")

	req := httptest.NewRequest("POST", "/api/catalogue", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body)
	}

	var body struct {
		ID        string            `json:"id"`
		Designs   []json.RawMessage `json:"designs"`
		Materials []json.RawMessage `json:"materials"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if body.ID != "64b0c8f2a1b2c3d4e5f60718" {
		t.Fatalf("id = %q", body.ID)
	}
	if body.Designs == nil || body.Materials == nil {
		t.Fatalf("arrays must be present and empty: %s", rec.Body)
	}
}

func TestCreateWithEmptyBody(t *testing.T) {
	router, _ := newRouter("64b0c8f2a1b2c3d4e5f60719")

	req := httptest.NewRequest("POST", "/api/catalogue", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body)
	}
}

func TestCreateDuplicateConflicts(t *testing.T) {
	router, _ := newRouter()

	body := `{"id":"64b0c8f2a1b2c3d4e5f6071a"}`
	for i, want := range []int{http.StatusCreated, http.StatusConflict} {
		req := httptest.NewRequest("POST", "/api/catalogue", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Fatalf("request %d: status = %d, want %d", i, rec.Code, want)
		}
	}
}

func TestGetMissingReturnsErrorShape(t *testing.T) {
	router, _ := newRouter()

	req := httptest.NewRequest("GET", "/api/catalogue/64b0c8f2a1b2c3d4e5f6071b", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if body["error"] != "Catalogue not found" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestListAndDelete(t *testing.T) {
	router, _ := newRouter()

	const id = "64b0c8f2a1b2c3d4e5f6071c"
	req := httptest.NewRequest("POST", "/api/catalogue", strings.NewReader(`{"id":"`+id+`"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/catalogue", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var list []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("parse list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list len = %d, want 1", len(list))
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("DELETE", "/api/catalogue/"+id, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d", rec.Code)
	}
	var msg map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &msg); err != nil {
		t.Fatalf("parse delete response: %v", err)
	}
	if msg["message"] != "Catalogue deleted successfully" {
		t.Fatalf("message = %q", msg["message"])
	}
}
