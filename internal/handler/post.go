package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eduforum-dev/eduforum/internal/api"
	"github.com/eduforum-dev/eduforum/internal/domain"
	"github.com/eduforum-dev/eduforum/internal/logger"
	mw "github.com/eduforum-dev/eduforum/internal/middleware"
	"github.com/eduforum-dev/eduforum/internal/service"
)

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	principal := mw.GetPrincipalFromContext(r)
	if principal == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body api.CreatePostRequest
	if err := LoadAndValidateRequestBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	creation := domain.PostCreationData{
		Author:   *principal,
		Category: body.Category,
		Title:    body.Title,
		Content:  body.Content,
		Tags:     body.Tags,
	}
	post, err := h.forum.CreatePost(r.Context(), creation)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, api.PostResponse{Post: post, TrendingScore: service.TrendingScore(&post)})
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := service.ListFilters{
		Query:      q.Get("q"),
		Category:   q.Get("category"),
		PinnedOnly: q.Get("pinned") == "true",
	}
	mode := service.ParseSortMode(q.Get("sort"))

	posts, err := h.forum.ListPosts(r.Context(), filters, mode)
	if err != nil {
		writeError(w, err)
		return
	}

	response := api.ListPostsResponse{Posts: make([]api.PostResponse, 0, len(posts))}
	for i := range posts {
		response.Posts = append(response.Posts, api.PostResponse{
			Post:          posts[i],
			TrendingScore: service.TrendingScore(&posts[i]),
		})
	}
	writeJSON(w, response)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postId := mux.Vars(r)["post"]

	post, threads, err := h.forum.GetPostWithComments(r.Context(), postId)
	if err != nil {
		writeError(w, err)
		return
	}

	response := api.PostWithCommentsResponse{
		Post:        post,
		ContentHtml: h.renderHtml(post.Content),
		Comments:    make([]api.CommentThreadResponse, 0, len(threads)),
	}
	for _, t := range threads {
		thread := api.CommentThreadResponse{
			CommentResponse: api.CommentResponse{Comment: t.Comment, ContentHtml: h.renderHtml(t.Content)},
			Replies:         make([]api.CommentResponse, 0, len(t.Replies)),
		}
		for _, reply := range t.Replies {
			thread.Replies = append(thread.Replies, api.CommentResponse{Comment: *reply, ContentHtml: h.renderHtml(reply.Content)})
		}
		response.Comments = append(response.Comments, thread)
	}
	writeJSON(w, response)
}

func (h *Handler) TogglePinnedPost(w http.ResponseWriter, r *http.Request) {
	postId := mux.Vars(r)["post"]

	newStatus, err := h.forum.TogglePinned(r.Context(), postId)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, map[string]bool{"is_pinned": newStatus})
}

// renderHtml falls back to an empty string on renderer errors; the raw
// markdown is still in the response.
func (h *Handler) renderHtml(src string) string {
	html, err := h.renderer.Render(src)
	if err != nil {
		logger.Log.Error("failed to render markdown", "error", err)
		return ""
	}
	return html
}
