package api

import (
	"github.com/eduforum-dev/eduforum/internal/domain"
)

// Request DTOs

type VoteRequest struct {
	Vote string `json:"vote" validate:"required,oneof=upvote downvote"`
}

// Response DTOs

// VoteResponse returns the authoritative counters and the caller's new vote
// state; the client reconciles any optimistic update against this.
type VoteResponse struct {
	domain.VoteCounters
	UserVote domain.Vote `json:"user_vote"`
}
