package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type PostCreationData struct {
	Author   Principal
	Category CategoryId
	Title    string
	Content  string
	Tags     []string
}

type Post struct {
	Id           PostId     `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	AuthorId     UserId     `json:"author_id"`
	AuthorName   string     `json:"author_name"`
	AuthorRole   Role       `json:"author_role"`
	Category     CategoryId `json:"category"`
	Tags         Tags       `json:"tags"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Upvotes      int        `json:"upvotes"`
	Downvotes    int        `json:"downvotes"`
	CommentCount int        `json:"comment_count"`
	IsPinned     bool       `json:"is_pinned"`
}
