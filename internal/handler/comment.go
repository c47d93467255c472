package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eduforum-dev/eduforum/internal/api"
	"github.com/eduforum-dev/eduforum/internal/domain"
	mw "github.com/eduforum-dev/eduforum/internal/middleware"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	principal := mw.GetPrincipalFromContext(r)
	if principal == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	postId := mux.Vars(r)["post"]

	var body api.CreateCommentRequest
	if err := LoadAndValidateRequestBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	creation := domain.CommentCreationData{
		Author:   *principal,
		PostId:   postId,
		Content:  body.Content,
		ParentId: body.ParentId,
	}
	comment, err := h.forum.CreateComment(r.Context(), creation)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.CommentResponse{Comment: comment})
}
