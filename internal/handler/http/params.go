package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/overtime-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// pageParams reads page and limit from the query string. Missing or
// non-numeric values come back as zero so the filter applies its defaults.
func pageParams(r *http.Request) (page, limit int) {
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			limit = limitNum
		}
	}
	return page, limit
}

// idParam reads the {id} path parameter. An empty id is a bad request and an id
// that is not a UUID cannot name any row, so it is answered as not found.
func idParam(w http.ResponseWriter, r *http.Request, requiredMsg, notFoundMsg string) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, requiredMsg, nil)
		return "", false
	}
	if !validator.IsValidUUID(id) {
		response.NotFound(w, notFoundMsg)
		return "", false
	}
	return id, true
}
