package handler

import (
	"net/http"

	"github.com/eduforum-dev/eduforum/internal/api"
)

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.forum.Categories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, api.CategoriesResponse{Categories: categories})
}
