package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduforum-dev/eduforum/internal/domain"
)

func makePost(id string, upvotes, downvotes, comments int, createdAt time.Time, pinned bool) domain.Post {
	return domain.Post{
		Id:           id,
		Title:        "title " + id,
		Content:      "content " + id,
		Upvotes:      upvotes,
		Downvotes:    downvotes,
		CommentCount: comments,
		CreatedAt:    createdAt,
		IsPinned:     pinned,
	}
}

func ids(posts []domain.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Id
	}
	return out
}

func TestTrendingScore(t *testing.T) {
	p := makePost("a", 10, 2, 3, time.Now(), false)
	assert.Equal(t, 9.5, TrendingScore(&p))
}

func TestSortPosts(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	posts := []domain.Post{
		makePost("old-low", 1, 0, 0, base, false),               // score 1
		makePost("new-high", 8, 1, 4, base.Add(3*time.Hour), false), // score 9
		makePost("mid", 5, 0, 2, base.Add(1*time.Hour), false),  // score 6
		makePost("pinned-low", 0, 5, 0, base.Add(2*time.Hour), true), // score -5 but pinned
	}

	t.Run("trending with pinned first", func(t *testing.T) {
		got := SortPosts(posts, SortTrending, ListFilters{})
		assert.Equal(t, []string{"pinned-low", "new-high", "mid", "old-low"}, ids(got))
	})

	t.Run("pinned precede unpinned in every mode", func(t *testing.T) {
		for _, mode := range []SortMode{SortTrending, SortNewest, SortOldest, SortMostCommented} {
			got := SortPosts(posts, mode, ListFilters{})
			require.NotEmpty(t, got)
			assert.Equal(t, "pinned-low", got[0].Id, "mode %s", mode)
		}
	})

	t.Run("newest and oldest", func(t *testing.T) {
		got := SortPosts(posts, SortNewest, ListFilters{})
		assert.Equal(t, []string{"pinned-low", "new-high", "mid", "old-low"}, ids(got))

		got = SortPosts(posts, SortOldest, ListFilters{})
		assert.Equal(t, []string{"pinned-low", "old-low", "mid", "new-high"}, ids(got))
	})

	t.Run("most commented with created tie break", func(t *testing.T) {
		tied := []domain.Post{
			makePost("older-tied", 0, 0, 2, base, false),
			makePost("newer-tied", 0, 0, 2, base.Add(time.Hour), false),
			makePost("few", 0, 0, 1, base, false),
		}
		got := SortPosts(tied, SortMostCommented, ListFilters{})
		assert.Equal(t, []string{"newer-tied", "older-tied", "few"}, ids(got))
	})

	t.Run("trending tie broken by recency", func(t *testing.T) {
		tied := []domain.Post{
			makePost("older", 4, 0, 0, base, false),
			makePost("newer", 4, 0, 0, base.Add(time.Hour), false),
		}
		got := SortPosts(tied, SortTrending, ListFilters{})
		assert.Equal(t, []string{"newer", "older"}, ids(got))
	})

	t.Run("sort is idempotent", func(t *testing.T) {
		once := SortPosts(posts, SortTrending, ListFilters{})
		twice := SortPosts(once, SortTrending, ListFilters{})
		assert.Equal(t, ids(once), ids(twice))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := ids(posts)
		_ = SortPosts(posts, SortNewest, ListFilters{})
		assert.Equal(t, before, ids(posts))
	})
}

func TestSortPostsFilters(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := makePost("a", 0, 0, 0, base, false)
	a.Category = "homework"
	a.Title = "Fractions worksheet"
	b := makePost("b", 0, 0, 0, base.Add(time.Hour), true)
	b.Category = "events"
	b.Content = "Sports day is on Friday"
	posts := []domain.Post{a, b}

	t.Run("free text is case-insensitive on title or content", func(t *testing.T) {
		got := SortPosts(posts, SortTrending, ListFilters{Query: "FRACTIONS"})
		assert.Equal(t, []string{"a"}, ids(got))

		got = SortPosts(posts, SortTrending, ListFilters{Query: "friday"})
		assert.Equal(t, []string{"b"}, ids(got))
	})

	t.Run("category is an exact match", func(t *testing.T) {
		got := SortPosts(posts, SortTrending, ListFilters{Category: "events"})
		assert.Equal(t, []string{"b"}, ids(got))

		got = SortPosts(posts, SortTrending, ListFilters{Category: "event"})
		assert.Empty(t, got)
	})

	t.Run("pinned only", func(t *testing.T) {
		got := SortPosts(posts, SortTrending, ListFilters{PinnedOnly: true})
		assert.Equal(t, []string{"b"}, ids(got))
	})

	t.Run("filters AND-combine", func(t *testing.T) {
		got := SortPosts(posts, SortTrending, ListFilters{Query: "friday", Category: "homework"})
		assert.Empty(t, got)
	})
}
