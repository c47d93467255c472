// Package memory is a mutex-guarded in-memory implementation of the forum
// storage boundary. It backs tests and the -store=memory dev mode so the
// service can run without postgres.
package memory

import (
	"context"
	"sync"

	"github.com/eduforum-dev/eduforum/internal/domain"
	internal_errors "github.com/eduforum-dev/eduforum/internal/errors"
)

type Storage struct {
	mu         sync.RWMutex
	posts      map[domain.PostId]domain.Post
	comments   map[domain.CommentId]domain.Comment
	categories map[domain.CategoryId]domain.Category
	votes      map[string]domain.Vote // userId + "\x00" + targetId
}

func New() *Storage {
	return &Storage{
		posts:      make(map[domain.PostId]domain.Post),
		comments:   make(map[domain.CommentId]domain.Comment),
		categories: make(map[domain.CategoryId]domain.Category),
		votes:      make(map[string]domain.Vote),
	}
}

func voteKey(userId domain.UserId, targetId string) string {
	return userId + "\x00" + targetId
}

func (s *Storage) LoadPosts(ctx context.Context) ([]domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, p)
	}
	return out, nil
}

func (s *Storage) GetPost(ctx context.Context, id domain.PostId) (domain.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	if !ok {
		return domain.Post{}, &internal_errors.NotFoundError{Message: "Post not found"}
	}
	return p, nil
}

func (s *Storage) SavePost(ctx context.Context, post *domain.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[post.Id] = *post
	return nil
}

func (s *Storage) LoadComments(ctx context.Context, postId domain.PostId) ([]domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Comment
	for _, c := range s.comments {
		if c.PostId == postId {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Storage) GetComment(ctx context.Context, id domain.CommentId) (domain.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comments[id]
	if !ok {
		return domain.Comment{}, &internal_errors.NotFoundError{Message: "Comment not found"}
	}
	return c, nil
}

func (s *Storage) SaveComment(ctx context.Context, comment *domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments[comment.Id] = *comment
	return nil
}

func (s *Storage) LoadCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	return out, nil
}

func (s *Storage) SaveCategory(ctx context.Context, category *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[category.Id] = *category
	return nil
}

func (s *Storage) GetVote(ctx context.Context, userId domain.UserId, targetId string) (domain.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.votes[voteKey(userId, targetId)]
	if !ok {
		return domain.VoteNone, nil
	}
	return v, nil
}

func (s *Storage) SaveVote(ctx context.Context, userId domain.UserId, targetId string, vote domain.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if vote == domain.VoteNone {
		delete(s.votes, voteKey(userId, targetId))
		return nil
	}
	s.votes[voteKey(userId, targetId)] = vote
	return nil
}

func (s *Storage) Ping(ctx context.Context) error { return nil }

func (s *Storage) Cleanup() error { return nil }
