package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduforum-dev/eduforum/internal/domain"
	internal_errors "github.com/eduforum-dev/eduforum/internal/errors"
)

func TestApplyVote(t *testing.T) {
	t.Run("first upvote increments", func(t *testing.T) {
		vote, counters, err := ApplyVote(domain.VoteNone, domain.VoteUp, domain.VoteCounters{Upvotes: 10, Downvotes: 2})
		require.NoError(t, err)
		assert.Equal(t, domain.VoteUp, vote)
		assert.Equal(t, domain.VoteCounters{Upvotes: 11, Downvotes: 2}, counters)
	})

	t.Run("repeating the same vote retracts it", func(t *testing.T) {
		vote, counters, err := ApplyVote(domain.VoteUp, domain.VoteUp, domain.VoteCounters{Upvotes: 11, Downvotes: 2})
		require.NoError(t, err)
		assert.Equal(t, domain.VoteNone, vote)
		assert.Equal(t, domain.VoteCounters{Upvotes: 10, Downvotes: 2}, counters)
	})

	t.Run("switching moves the counter", func(t *testing.T) {
		vote, counters, err := ApplyVote(domain.VoteUp, domain.VoteDown, domain.VoteCounters{Upvotes: 11, Downvotes: 2})
		require.NoError(t, err)
		assert.Equal(t, domain.VoteDown, vote)
		assert.Equal(t, domain.VoteCounters{Upvotes: 10, Downvotes: 3}, counters)
	})

	t.Run("full toggle sequence returns to the pre-vote state", func(t *testing.T) {
		// upvote, retract, downvote on a 10/2 post
		counters := domain.VoteCounters{Upvotes: 10, Downvotes: 2}
		vote, counters, err := ApplyVote(domain.VoteNone, domain.VoteUp, counters)
		require.NoError(t, err)
		assert.Equal(t, 11, counters.Upvotes)

		vote, counters, err = ApplyVote(vote, domain.VoteUp, counters)
		require.NoError(t, err)
		assert.Equal(t, domain.VoteNone, vote)
		assert.Equal(t, domain.VoteCounters{Upvotes: 10, Downvotes: 2}, counters)

		vote, counters, err = ApplyVote(vote, domain.VoteDown, counters)
		require.NoError(t, err)
		assert.Equal(t, domain.VoteDown, vote)
		assert.Equal(t, domain.VoteCounters{Upvotes: 10, Downvotes: 3}, counters)
	})

	t.Run("counters never go negative", func(t *testing.T) {
		// retract with a counter already at zero: stale client state
		vote, counters, err := ApplyVote(domain.VoteUp, domain.VoteUp, domain.VoteCounters{})
		require.NoError(t, err)
		assert.Equal(t, domain.VoteNone, vote)
		assert.Equal(t, domain.VoteCounters{}, counters)

		vote, counters, err = ApplyVote(domain.VoteDown, domain.VoteUp, domain.VoteCounters{})
		require.NoError(t, err)
		assert.Equal(t, domain.VoteUp, vote)
		assert.Equal(t, domain.VoteCounters{Upvotes: 1, Downvotes: 0}, counters)
	})

	t.Run("rejects none as a direct input", func(t *testing.T) {
		_, _, err := ApplyVote(domain.VoteUp, domain.VoteNone, domain.VoteCounters{Upvotes: 1})
		require.Error(t, err)
		assert.True(t, internal_errors.Is[*internal_errors.ValidationError](err))
	})
}
