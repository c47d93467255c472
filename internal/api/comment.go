package api

import (
	"github.com/eduforum-dev/eduforum/internal/domain"
)

// Request DTOs

type CreateCommentRequest struct {
	Content  string  `json:"content" validate:"required"`
	ParentId *string `json:"parent_id,omitempty"`
}

// Response DTOs

type CommentResponse struct {
	domain.Comment
	ContentHtml string `json:"content_html,omitempty"`
}

// CommentThreadResponse is one top-level comment with its replies.
type CommentThreadResponse struct {
	CommentResponse
	Replies []CommentResponse `json:"replies"`
}
