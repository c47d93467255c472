package service

import (
	"sort"
	"strings"

	"github.com/eduforum-dev/eduforum/internal/domain"
)

type SortMode string

const (
	SortTrending      SortMode = "trending"
	SortNewest        SortMode = "newest"
	SortOldest        SortMode = "oldest"
	SortMostCommented SortMode = "most-commented"
)

// ParseSortMode maps a query parameter to a SortMode, defaulting to trending.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortNewest, SortOldest, SortMostCommented, SortTrending:
		return SortMode(s)
	}
	return SortTrending
}

// ListFilters are AND-combined. Zero values mean "no filter".
type ListFilters struct {
	Query      string            // case-insensitive substring on title or content
	Category   domain.CategoryId // exact match
	PinnedOnly bool
}

// TrendingScore ranks a post by net votes plus half a point per comment.
func TrendingScore(p *domain.Post) float64 {
	return float64(p.Upvotes-p.Downvotes) + float64(p.CommentCount)*0.5
}

// SortPosts filters the candidate set, then orders it under mode with pinned
// posts always first. Pinned status dominates the sort mode: a low-scoring
// pinned post outranks any unpinned one. Does not mutate its input.
func SortPosts(posts []domain.Post, mode SortMode, filters ListFilters) []domain.Post {
	var pinned, unpinned []domain.Post
	for _, p := range posts {
		if !matches(&p, filters) {
			continue
		}
		if p.IsPinned {
			pinned = append(pinned, p)
		} else {
			unpinned = append(unpinned, p)
		}
	}

	orderBy(pinned, mode)
	orderBy(unpinned, mode)

	return append(pinned, unpinned...)
}

func matches(p *domain.Post, f ListFilters) bool {
	if f.PinnedOnly && !p.IsPinned {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Content), q) {
			return false
		}
	}
	return true
}

func orderBy(posts []domain.Post, mode SortMode) {
	switch mode {
	case SortNewest:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(posts, func(i, j int) bool {
			return posts[i].CreatedAt.Before(posts[j].CreatedAt)
		})
	case SortMostCommented:
		sort.SliceStable(posts, func(i, j int) bool {
			if posts[i].CommentCount != posts[j].CommentCount {
				return posts[i].CommentCount > posts[j].CommentCount
			}
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		})
	default: // trending
		sort.SliceStable(posts, func(i, j int) bool {
			si, sj := TrendingScore(&posts[i]), TrendingScore(&posts[j])
			if si != sj {
				return si > sj
			}
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		})
	}
}
