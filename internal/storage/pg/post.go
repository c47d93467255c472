package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eduforum-dev/eduforum/internal/domain"
	internal_errors "github.com/eduforum-dev/eduforum/internal/errors"
)

const postColumns = `
    id, title, content, author_id, author_name, author_role, category,
    tags, created_at, updated_at, upvotes, downvotes, comment_count, is_pinned
`

func scanPost(row interface{ Scan(...any) error }) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.Id, &p.Title, &p.Content, &p.AuthorId, &p.AuthorName, &p.AuthorRole,
		&p.Category, &p.Tags, &p.CreatedAt, &p.UpdatedAt,
		&p.Upvotes, &p.Downvotes, &p.CommentCount, &p.IsPinned,
	)
	return p, err
}

func (s *Storage) LoadPosts(ctx context.Context) ([]domain.Post, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return posts, nil
}

func (s *Storage) GetPost(ctx context.Context, id domain.PostId) (domain.Post, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	p, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Post{}, &internal_errors.NotFoundError{Message: "Post not found"}
		}
		return domain.Post{}, fmt.Errorf("failed to fetch post: %w", err)
	}
	return p, nil
}

func (s *Storage) SavePost(ctx context.Context, post *domain.Post) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO posts (`+postColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        ON CONFLICT (id) DO UPDATE SET
            title = EXCLUDED.title,
            content = EXCLUDED.content,
            tags = EXCLUDED.tags,
            updated_at = EXCLUDED.updated_at,
            upvotes = EXCLUDED.upvotes,
            downvotes = EXCLUDED.downvotes,
            comment_count = EXCLUDED.comment_count,
            is_pinned = EXCLUDED.is_pinned
    `,
		post.Id, post.Title, post.Content, post.AuthorId, post.AuthorName,
		post.AuthorRole, post.Category, post.Tags, post.CreatedAt, post.UpdatedAt,
		post.Upvotes, post.Downvotes, post.CommentCount, post.IsPinned,
	)
	if err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}
	return nil
}
