package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/eduforum-dev/eduforum/internal/domain"
)

func (s *Storage) GetVote(ctx context.Context, userId domain.UserId, targetId string) (domain.Vote, error) {
	var vote domain.Vote
	err := s.db.QueryRowContext(ctx, `
        SELECT vote FROM votes WHERE user_id = $1 AND target_id = $2
    `, userId, targetId).Scan(&vote)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.VoteNone, nil
		}
		return domain.VoteNone, fmt.Errorf("failed to fetch vote: %w", err)
	}
	return vote, nil
}

func (s *Storage) SaveVote(ctx context.Context, userId domain.UserId, targetId string, vote domain.Vote) error {
	if vote == domain.VoteNone {
		_, err := s.db.ExecContext(ctx, `
            DELETE FROM votes WHERE user_id = $1 AND target_id = $2
        `, userId, targetId)
		if err != nil {
			return fmt.Errorf("failed to delete vote: %w", err)
		}
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO votes (user_id, target_id, vote)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, target_id) DO UPDATE SET vote = EXCLUDED.vote
    `, userId, targetId, vote)
	if err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}
