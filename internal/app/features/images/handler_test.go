package images_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/features/images"
	imageservice "github.com/igor-siergiej/jewellery-catalogue/internal/app/services/images"
	"go.uber.org/zap"
)

type storedObject struct {
	data        []byte
	contentType string
}

type fakeStore struct {
	objects map[string]storedObject
}

func (f *fakeStore) Stat(_ context.Context, name string) (imageservice.ObjectInfo, error) {
	obj, ok := f.objects[name]
	if !ok {
		return imageservice.ObjectInfo{}, errors.New("no such object")
	}
	return imageservice.ObjectInfo{ContentType: obj.contentType}, nil
}

func (f *fakeStore) Get(_ context.Context, name string) (io.ReadCloser, error) {
	obj, ok := f.objects[name]
	if !ok {
		return nil, errors.New("no such object")
	}
	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

func (f *fakeStore) Put(_ context.Context, name string, data []byte, contentType string) error {
	f.objects[name] = storedObject{data: data, contentType: contentType}
	return nil
}

func newRouter(store *fakeStore) http.Handler {
	svc := imageservice.New(store, zap.NewNop())
	handler := images.NewHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Mount("/api/image", images.Routes(handler))
	return r
}

func TestGetStreamsWithHeaders(t *testing.T) {
	store := &fakeStore{objects: map[string]storedObject{
		"pic": {data: []byte("png-bytes"), contentType: "image/png"},
	}}
	router := newRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/image/pic", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); cc != imageservice.CacheControl {
		t.Errorf("Cache-Control = %q", cc)
	}
	if rec.Body.String() != "png-bytes" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	router := newRouter(&fakeStore{objects: map[string]storedObject{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/image/absent", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("parse response: %v", err)
	}
	if body["error"] != "Image not found" {
		t.Fatalf("error = %q", body["error"])
	}
}
