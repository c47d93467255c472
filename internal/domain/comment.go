package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type CommentCreationData struct {
	Author   Principal
	PostId   PostId
	Content  string
	ParentId *CommentId // nil => top-level
}

type Comment struct {
	Id         CommentId  `json:"id"`
	PostId     PostId     `json:"post_id"`
	ParentId   *CommentId `json:"parent_id,omitempty"`
	Content    string     `json:"content"`
	AuthorId   UserId     `json:"author_id"`
	AuthorName string     `json:"author_name"`
	AuthorRole Role       `json:"author_role"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	IsEdited   bool       `json:"is_edited"`
	Upvotes    int        `json:"upvotes"`
	Downvotes  int        `json:"downvotes"`
}

// CommentThread is one rendered node of the two-level tree: a top-level
// comment with its replies. Replies never nest further.
type CommentThread struct {
	Comment
	Replies []*Comment `json:"replies"`
}
