package service

import (
	"github.com/eduforum-dev/eduforum/internal/domain"
	internal_errors "github.com/eduforum-dev/eduforum/internal/errors"
)

// ApplyVote implements the tri-state toggle shared by posts and comments.
// Casting the same vote again retracts it; casting the opposite vote moves
// the counter from one side to the other. Pure function; the caller persists
// the returned vote and counters.
func ApplyVote(current, requested domain.Vote, counters domain.VoteCounters) (domain.Vote, domain.VoteCounters, error) {
	if requested != domain.VoteUp && requested != domain.VoteDown {
		return current, counters, &internal_errors.ValidationError{Message: "vote must be upvote or downvote"}
	}

	if requested == current {
		// retract
		counters = decrement(counters, current)
		return domain.VoteNone, counters, nil
	}

	// switching from an existing vote releases the old counter first
	if current == domain.VoteUp || current == domain.VoteDown {
		counters = decrement(counters, current)
	}
	counters = increment(counters, requested)
	return requested, counters, nil
}

// Counters never go below zero. A decrement on a zero counter is dropped;
// that state indicates lost or duplicate client state, not a real path.
func decrement(c domain.VoteCounters, v domain.Vote) domain.VoteCounters {
	switch v {
	case domain.VoteUp:
		if c.Upvotes > 0 {
			c.Upvotes--
		}
	case domain.VoteDown:
		if c.Downvotes > 0 {
			c.Downvotes--
		}
	}
	return c
}

func increment(c domain.VoteCounters, v domain.Vote) domain.VoteCounters {
	switch v {
	case domain.VoteUp:
		c.Upvotes++
	case domain.VoteDown:
		c.Downvotes++
	}
	return c
}
