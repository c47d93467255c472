package api

import (
	"github.com/eduforum-dev/eduforum/internal/domain"
)

// Request DTOs

type CreatePostRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Tags     []string `json:"tags,omitempty"`
}

// Response DTOs

// PostResponse wraps a post for list views
type PostResponse struct {
	domain.Post
	TrendingScore float64 `json:"trending_score"`
}

// PostWithCommentsResponse is the single-post view: the post plus its
// two-level comment tree, with bodies rendered to sanitized HTML.
type PostWithCommentsResponse struct {
	domain.Post
	ContentHtml string                  `json:"content_html"`
	Comments    []CommentThreadResponse `json:"comments"`
}

type ListPostsResponse struct {
	Posts []PostResponse `json:"posts"`
}
