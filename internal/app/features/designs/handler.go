// Package designs exposes the design endpoints: the catalogue-scoped
// listing and multipart creation surface plus per-design CRUD.
package designs

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/features/shared"
	designservice "github.com/igor-siergiej/jewellery-catalogue/internal/app/services/designs"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/apperr"
	"github.com/igor-siergiej/jewellery-catalogue/internal/app/system/timeouts"
	"github.com/igor-siergiej/jewellery-catalogue/internal/domain/models"
	"go.uber.org/zap"
)

// maxUploadBytes bounds the in-memory portion of a multipart design upload.
const maxUploadBytes = 32 << 20

// Handler holds dependencies for the design endpoints.
type Handler struct {
	Service *designservice.Service
	Log     *zap.Logger
}

func NewHandler(service *designservice.Service, logger *zap.Logger) *Handler {
	return &Handler{Service: service, Log: logger}
}

// ListByCatalogue handles GET /api/designs/{catalogueID}.
func (h *Handler) ListByCatalogue(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	designs, err := h.Service.GetByCatalogue(ctx, chi.URLParam(r, "catalogueID"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, designs)
}

// Add handles POST /api/designs/{catalogueID}. The body is a multipart
// form carrying the design fields plus the image under the "file" field.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		shared.WriteError(w, apperr.InvalidArgument("Invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		shared.WriteError(w, apperr.InvalidArgument("File is required"))
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		shared.WriteError(w, apperr.InvalidArgument("File is required"))
		return
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	upload, err := uploadFromForm(r)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	design, err := h.Service.Add(ctx, chi.URLParam(r, "catalogueID"), upload, image, contentType)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, design)
}

// Get handles GET /api/design/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	design, err := h.Service.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, design)
}

// Update handles PATCH /api/design/{id}. The body is a JSON patch that is
// shallow-merged over the stored design.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	patch, err := io.ReadAll(r.Body)
	if err != nil {
		shared.WriteError(w, apperr.InvalidArgument("Invalid request body"))
		return
	}

	design, err := h.Service.Update(ctx, chi.URLParam(r, "id"), patch)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, design)
}

// Delete handles DELETE /api/design/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Service.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteMessage(w, "Design deleted successfully")
}

// uploadFromForm maps the multipart text fields onto the upload payload.
// The materials field arrives as the JSON text the client serialized.
func uploadFromForm(r *http.Request) (models.UploadDesign, error) {
	upload := models.UploadDesign{
		Name:         r.FormValue("name"),
		Description:  r.FormValue("description"),
		TimeRequired: r.FormValue("timeRequired"),
	}

	if v := r.FormValue("totalMaterialCosts"); v != "" {
		costs, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return models.UploadDesign{}, apperr.InvalidArgument("Invalid totalMaterialCosts value")
		}
		upload.TotalMaterialCosts = costs
	}
	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return models.UploadDesign{}, apperr.InvalidArgument("Invalid price value")
		}
		upload.Price = price
	}
	if v := r.FormValue("materials"); v != "" {
		upload.Materials = json.RawMessage(v)
	}

	return upload, nil
}
