package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eduforum-dev/eduforum/internal/api"
	"github.com/eduforum-dev/eduforum/internal/domain"
	mw "github.com/eduforum-dev/eduforum/internal/middleware"
)

func (h *Handler) VotePost(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, mux.Vars(r)["post"], domain.TargetPost)
}

func (h *Handler) VoteComment(w http.ResponseWriter, r *http.Request) {
	h.vote(w, r, mux.Vars(r)["comment"], domain.TargetComment)
}

func (h *Handler) vote(w http.ResponseWriter, r *http.Request, targetId string, target domain.VoteTarget) {
	principal := mw.GetPrincipalFromContext(r)
	if principal == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body api.VoteRequest
	if err := LoadAndValidateRequestBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	counters, userVote, err := h.forum.Vote(r.Context(), principal.Id, targetId, target, domain.Vote(body.Vote))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, api.VoteResponse{VoteCounters: counters, UserVote: userVote})
}
