package service

import (
	"sort"

	"github.com/eduforum-dev/eduforum/internal/domain"
)

// BuildCommentTree assembles the flat comment set of one post into the
// two-level thread structure: top-level comments in ascending CreatedAt
// order, each with its replies in ascending CreatedAt order.
//
// Replies whose parent id does not resolve to a top-level comment in the set
// are dropped from the tree and returned as orphans so the caller can log
// the inconsistency. Pure function of its input.
func BuildCommentTree(comments []domain.Comment) ([]domain.CommentThread, []domain.CommentId) {
	var topLevel []domain.Comment
	var replies []domain.Comment
	for _, c := range comments {
		if c.ParentId == nil {
			topLevel = append(topLevel, c)
		} else {
			replies = append(replies, c)
		}
	}

	sort.SliceStable(topLevel, func(i, j int) bool {
		return topLevel[i].CreatedAt.Before(topLevel[j].CreatedAt)
	})
	sort.SliceStable(replies, func(i, j int) bool {
		return replies[i].CreatedAt.Before(replies[j].CreatedAt)
	})

	threads := make([]domain.CommentThread, len(topLevel))
	threadIdx := make(map[domain.CommentId]int, len(topLevel))
	for i, c := range topLevel {
		threads[i] = domain.CommentThread{Comment: c}
		threadIdx[c.Id] = i
	}

	var orphans []domain.CommentId
	for i := range replies {
		r := replies[i]
		idx, ok := threadIdx[*r.ParentId]
		if !ok {
			orphans = append(orphans, r.Id)
			continue
		}
		threads[idx].Replies = append(threads[idx].Replies, &r)
	}

	return threads, orphans
}
