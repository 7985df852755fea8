package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"

	"github.com/fantasysyndicate/league-data/internal/api/respond"
	"github.com/fantasysyndicate/league-data/internal/cache"
	"github.com/fantasysyndicate/league-data/internal/images"
)

// imagePayload wraps an inlined image so the dashboard can drop the data
// URI straight into an img tag.
type imagePayload struct {
	Name    string `json:"name"`
	DataURI string `json:"data_uri"`
}

// GetImage returns a bucket image as a base64 data URI.
// @Summary Get image
// @Description Fetches a PNG from object storage and returns it as a base64 data URI.
// @Tags images
// @Produce json
// @Param name path string true "Image file name"
// @Success 200 {object} handler.imagePayload
// @Failure 404 {object} respond.ErrorResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /images/{name} [get]
func (h *Handler) GetImage(w http.ResponseWriter, r *http.Request) {
	// path.Base strips any traversal attempt from the name.
	name := path.Base(chi.URLParam(r, "name"))
	if name == "." || name == "/" || name == "" {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_NAME", "Image name is required")
		return
	}
	if h.images == nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "IMAGES_DISABLED", "Object storage is not configured")
		return
	}

	h.serveCached(w, r, cache.Key("image", name), cache.TTLImage, func() (interface{}, error) {
		uri, err := h.images.DataURI(r.Context(), name)
		if errors.Is(err, images.ErrNotFound) {
			return nil, errNotFound(fmt.Sprintf("Image %s not found", name))
		}
		if err != nil {
			return nil, fmt.Errorf("fetch image %s: %w", name, err)
		}
		return imagePayload{Name: name, DataURI: uri}, nil
	})
}
