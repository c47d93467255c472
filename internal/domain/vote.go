package domain

// Vote is the tri-state per-user vote on a post or comment.
type Vote string

const (
	VoteNone Vote = "none"
	VoteUp   Vote = "upvote"
	VoteDown Vote = "downvote"
)

// VoteTarget tells the facade which entity the target id refers to.
type VoteTarget string

const (
	TargetPost    VoteTarget = "post"
	TargetComment VoteTarget = "comment"
)

func (t VoteTarget) Valid() bool {
	return t == TargetPost || t == TargetComment
}

// VoteCounters is the aggregate pair stored on each post/comment.
type VoteCounters struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}
