package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fantasysyndicate/league-data/internal/api/respond"
	"github.com/fantasysyndicate/league-data/internal/cache"
)

// apiError carries an HTTP status through a build function so serveCached
// can map data problems to the right response.
type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) Error() string { return e.message }

func errNotFound(message string) *apiError {
	return &apiError{status: http.StatusNotFound, code: "NOT_FOUND", message: message}
}

func errBadData(message string) *apiError {
	return &apiError{status: http.StatusUnprocessableEntity, code: "BAD_DATA", message: message}
}

// serveCached handles the cache/ETag dance for query-backed endpoints:
// serve from cache (maybe 304) on hit; on miss run build, marshal, store,
// serve.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, build func() (interface{}, error)) {
	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	v, err := build()
	if err != nil {
		var apiErr *apiError
		if errors.As(err, &apiErr) {
			respond.WriteError(w, apiErr.status, apiErr.code, apiErr.message)
			return
		}
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "QUERY_FAILED", "Query failed", err.Error())
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		respond.WriteError(w, http.StatusInternalServerError, "ENCODING_FAILED", "Could not encode response")
		return
	}

	etag := h.cache.Set(key, data, ttl)
	respond.WriteJSON(w, data, etag, ttl, false)
}
