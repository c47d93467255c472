package domain

import (
	"fmt"
	"time"
)

// for debug
func (p *Post) String() string {
	return fmt.Sprintf("[id:%s, category:%s, title:%s, author:%s(%s), created:%s, up:%d, down:%d, comments:%d, pinned:%t]",
		p.Id, p.Category, p.Title, p.AuthorName, p.AuthorRole, p.CreatedAt.Format(time.StampMilli), p.Upvotes, p.Downvotes, p.CommentCount, p.IsPinned)
}

func (c *Comment) String() string {
	parent := "-"
	if c.ParentId != nil {
		parent = *c.ParentId
	}
	return fmt.Sprintf("[id:%s, post:%s, parent:%s, author:%s(%s), created:%s, up:%d, down:%d]",
		c.Id, c.PostId, parent, c.AuthorName, c.AuthorRole, c.CreatedAt.Format(time.StampMilli), c.Upvotes, c.Downvotes)
}
