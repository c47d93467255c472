package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eduforum-dev/eduforum/internal/domain"
	internal_errors "github.com/eduforum-dev/eduforum/internal/errors"
)

const commentColumns = `
    id, post_id, parent_id, content, author_id, author_name, author_role,
    created_at, updated_at, is_edited, upvotes, downvotes
`

func scanComment(row interface{ Scan(...any) error }) (domain.Comment, error) {
	var c domain.Comment
	var parent sql.NullString
	err := row.Scan(
		&c.Id, &c.PostId, &parent, &c.Content, &c.AuthorId, &c.AuthorName,
		&c.AuthorRole, &c.CreatedAt, &c.UpdatedAt, &c.IsEdited,
		&c.Upvotes, &c.Downvotes,
	)
	if parent.Valid {
		c.ParentId = &parent.String
	}
	return c, err
}

func (s *Storage) LoadComments(ctx context.Context, postId domain.PostId) ([]domain.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT `+commentColumns+`
        FROM comments
        WHERE post_id = $1
        ORDER BY created_at
    `, postId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return comments, nil
}

func (s *Storage) GetComment(ctx context.Context, id domain.CommentId) (domain.Comment, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id)
	c, err := scanComment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, &internal_errors.NotFoundError{Message: "Comment not found"}
		}
		return domain.Comment{}, fmt.Errorf("failed to fetch comment: %w", err)
	}
	return c, nil
}

func (s *Storage) SaveComment(ctx context.Context, comment *domain.Comment) error {
	var parent sql.NullString
	if comment.ParentId != nil {
		parent = sql.NullString{String: *comment.ParentId, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO comments (`+commentColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        ON CONFLICT (id) DO UPDATE SET
            content = EXCLUDED.content,
            updated_at = EXCLUDED.updated_at,
            is_edited = EXCLUDED.is_edited,
            upvotes = EXCLUDED.upvotes,
            downvotes = EXCLUDED.downvotes
    `,
		comment.Id, comment.PostId, parent, comment.Content, comment.AuthorId,
		comment.AuthorName, comment.AuthorRole, comment.CreatedAt,
		comment.UpdatedAt, comment.IsEdited, comment.Upvotes, comment.Downvotes,
	)
	if err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}
