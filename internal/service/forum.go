package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eduforum-dev/eduforum/internal/domain"
	internal_errors "github.com/eduforum-dev/eduforum/internal/errors"
	"github.com/eduforum-dev/eduforum/internal/logger"
)

// to mock service in tests
type ForumService interface {
	CreatePost(ctx context.Context, creation domain.PostCreationData) (domain.Post, error)
	CreateComment(ctx context.Context, creation domain.CommentCreationData) (domain.Comment, error)
	Vote(ctx context.Context, userId domain.UserId, targetId string, target domain.VoteTarget, requested domain.Vote) (domain.VoteCounters, domain.Vote, error)
	ListPosts(ctx context.Context, filters ListFilters, mode SortMode) ([]domain.Post, error)
	GetPostWithComments(ctx context.Context, id domain.PostId) (domain.Post, []domain.CommentThread, error)
	TogglePinned(ctx context.Context, id domain.PostId) (bool, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

type ForumStorage interface {
	LoadPosts(ctx context.Context) ([]domain.Post, error)
	GetPost(ctx context.Context, id domain.PostId) (domain.Post, error)
	SavePost(ctx context.Context, post *domain.Post) error
	LoadComments(ctx context.Context, postId domain.PostId) ([]domain.Comment, error)
	GetComment(ctx context.Context, id domain.CommentId) (domain.Comment, error)
	SaveComment(ctx context.Context, comment *domain.Comment) error
	SaveCategory(ctx context.Context, category *domain.Category) error
	// GetVote returns VoteNone when the user never voted on the target.
	GetVote(ctx context.Context, userId domain.UserId, targetId string) (domain.Vote, error)
	SaveVote(ctx context.Context, userId domain.UserId, targetId string, vote domain.Vote) error
}

type PostValidator interface {
	Title(title string) error
	Content(content string) error
	Tags(tags []string) error
}

type CommentValidator interface {
	Content(content string) error
}

type Forum struct {
	storage          ForumStorage
	registry         *CategoryRegistry
	postValidator    PostValidator
	commentValidator CommentValidator
	locks            targetLocks
}

func NewForum(storage ForumStorage, registry *CategoryRegistry, postValidator PostValidator, commentValidator CommentValidator) *Forum {
	return &Forum{
		storage:          storage,
		registry:         registry,
		postValidator:    postValidator,
		commentValidator: commentValidator,
	}
}

func (f *Forum) CreatePost(ctx context.Context, creation domain.PostCreationData) (domain.Post, error) {
	if !creation.Author.Role.Valid() {
		return domain.Post{}, &internal_errors.ValidationError{Message: "unknown author role"}
	}
	if err := f.postValidator.Title(creation.Title); err != nil {
		return domain.Post{}, err
	}
	if err := f.postValidator.Content(creation.Content); err != nil {
		return domain.Post{}, err
	}
	tags := NormalizeTags(creation.Tags)
	if err := f.postValidator.Tags(tags); err != nil {
		return domain.Post{}, err
	}

	// Restriction is enforced once, here. Later allow-list changes do not
	// invalidate existing posts.
	allowed, err := f.registry.CanPostIn(creation.Category, creation.Author.Role)
	if err != nil {
		return domain.Post{}, err
	}
	if !allowed {
		return domain.Post{}, &internal_errors.PermissionError{Message: "role cannot post in this category"}
	}

	now := time.Now().UTC()
	post := domain.Post{
		Id:         uuid.NewString(),
		Title:      creation.Title,
		Content:    creation.Content,
		AuthorId:   creation.Author.Id,
		AuthorName: creation.Author.Name,
		AuthorRole: creation.Author.Role,
		Category:   creation.Category,
		Tags:       tags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := f.storage.SavePost(ctx, &post); err != nil {
		return domain.Post{}, err
	}

	// Serialized per category so two concurrent creates cannot persist their
	// SaveCategory writes out of order and leave a stale post count on disk.
	unlock := f.locks.lock(creation.Category)
	defer unlock()

	category, err := f.registry.AddPost(creation.Category)
	if err != nil {
		return domain.Post{}, err
	}
	if err := f.storage.SaveCategory(ctx, &category); err != nil {
		f.registry.RemovePost(creation.Category)
		return domain.Post{}, err
	}

	return post, nil
}

func (f *Forum) CreateComment(ctx context.Context, creation domain.CommentCreationData) (domain.Comment, error) {
	if err := f.commentValidator.Content(creation.Content); err != nil {
		return domain.Comment{}, err
	}

	// The comment count read-modify-write below shares the post's lock with
	// Vote and TogglePinned, so concurrent comments (or a concurrent vote on
	// the same post) cannot overwrite each other's SavePost.
	unlock := f.locks.lock(creation.PostId)
	defer unlock()

	post, err := f.storage.GetPost(ctx, creation.PostId)
	if err != nil {
		return domain.Comment{}, err
	}

	if creation.ParentId != nil {
		parent, err := f.storage.GetComment(ctx, *creation.ParentId)
		if err != nil {
			return domain.Comment{}, err
		}
		if parent.PostId != creation.PostId {
			return domain.Comment{}, &internal_errors.ValidationError{Message: "parent comment belongs to a different post"}
		}
		// The thread is two levels deep: replying to a reply is rejected
		// at creation time instead of being flattened by rendering code.
		if parent.ParentId != nil {
			return domain.Comment{}, &internal_errors.ValidationError{Message: "cannot reply to a reply"}
		}
	}

	now := time.Now().UTC()
	comment := domain.Comment{
		Id:         uuid.NewString(),
		PostId:     creation.PostId,
		ParentId:   creation.ParentId,
		Content:    creation.Content,
		AuthorId:   creation.Author.Id,
		AuthorName: creation.Author.Name,
		AuthorRole: creation.Author.Role,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := f.storage.SaveComment(ctx, &comment); err != nil {
		return domain.Comment{}, err
	}

	post.CommentCount++
	if err := f.storage.SavePost(ctx, &post); err != nil {
		return domain.Comment{}, err
	}

	return comment, nil
}

// Vote applies the toggle rule under a per-target lock so that the
// read-modify-write of one target's counters is serialized. The per-user
// vote mapping itself is last-write-wins.
func (f *Forum) Vote(ctx context.Context, userId domain.UserId, targetId string, target domain.VoteTarget, requested domain.Vote) (domain.VoteCounters, domain.Vote, error) {
	if !target.Valid() {
		return domain.VoteCounters{}, domain.VoteNone, &internal_errors.ValidationError{Message: "target must be post or comment"}
	}

	unlock := f.locks.lock(targetId)
	defer unlock()

	current, err := f.storage.GetVote(ctx, userId, targetId)
	if err != nil {
		return domain.VoteCounters{}, domain.VoteNone, err
	}

	switch target {
	case domain.TargetPost:
		post, err := f.storage.GetPost(ctx, targetId)
		if err != nil {
			return domain.VoteCounters{}, domain.VoteNone, err
		}
		newVote, counters, err := ApplyVote(current, requested, domain.VoteCounters{Upvotes: post.Upvotes, Downvotes: post.Downvotes})
		if err != nil {
			return domain.VoteCounters{}, domain.VoteNone, err
		}
		post.Upvotes, post.Downvotes = counters.Upvotes, counters.Downvotes
		if err := f.storage.SavePost(ctx, &post); err != nil {
			return domain.VoteCounters{}, domain.VoteNone, err
		}
		if err := f.storage.SaveVote(ctx, userId, targetId, newVote); err != nil {
			return domain.VoteCounters{}, domain.VoteNone, err
		}
		return counters, newVote, nil
	default:
		comment, err := f.storage.GetComment(ctx, targetId)
		if err != nil {
			return domain.VoteCounters{}, domain.VoteNone, err
		}
		newVote, counters, err := ApplyVote(current, requested, domain.VoteCounters{Upvotes: comment.Upvotes, Downvotes: comment.Downvotes})
		if err != nil {
			return domain.VoteCounters{}, domain.VoteNone, err
		}
		comment.Upvotes, comment.Downvotes = counters.Upvotes, counters.Downvotes
		if err := f.storage.SaveComment(ctx, &comment); err != nil {
			return domain.VoteCounters{}, domain.VoteNone, err
		}
		if err := f.storage.SaveVote(ctx, userId, targetId, newVote); err != nil {
			return domain.VoteCounters{}, domain.VoteNone, err
		}
		return counters, newVote, nil
	}
}

func (f *Forum) ListPosts(ctx context.Context, filters ListFilters, mode SortMode) ([]domain.Post, error) {
	posts, err := f.storage.LoadPosts(ctx)
	if err != nil {
		return nil, err
	}
	return SortPosts(posts, mode, filters), nil
}

func (f *Forum) GetPostWithComments(ctx context.Context, id domain.PostId) (domain.Post, []domain.CommentThread, error) {
	post, err := f.storage.GetPost(ctx, id)
	if err != nil {
		return domain.Post{}, nil, err
	}
	comments, err := f.storage.LoadComments(ctx, id)
	if err != nil {
		return domain.Post{}, nil, err
	}
	threads, orphans := BuildCommentTree(comments)
	if len(orphans) > 0 {
		logger.Log.Warn("dropping orphaned replies", "postId", id, "commentIds", orphans)
	}
	return post, threads, nil
}

func (f *Forum) TogglePinned(ctx context.Context, id domain.PostId) (bool, error) {
	unlock := f.locks.lock(id)
	defer unlock()

	post, err := f.storage.GetPost(ctx, id)
	if err != nil {
		return false, err
	}
	post.IsPinned = !post.IsPinned
	if err := f.storage.SavePost(ctx, &post); err != nil {
		return false, err
	}
	return post.IsPinned, nil
}

func (f *Forum) Categories(ctx context.Context) ([]domain.Category, error) {
	return f.registry.All(), nil
}

// NormalizeTags lower-cases and trims tags, dropping empty ones. Duplicate
// detection happens after normalization so "Math" and "math" collide.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// targetLocks hands out one mutex per id so read-modify-writes against the
// same post, comment or category cannot lose an increment.
type targetLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *targetLocks) lock(id string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
