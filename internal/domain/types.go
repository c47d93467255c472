package domain

import "github.com/lib/pq"

type (
	UserId     = string
	PostId     = string
	CommentId  = string
	CategoryId = string

	Tags = pq.StringArray // to save into postgres. lower-cased, unique
)

// Role is the closed set of principal roles supplied by the external
// authentication system.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleTeacher       Role = "teacher"
	RoleStudent       Role = "student"
	RoleParent        Role = "parent"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleTeacher, RoleStudent, RoleParent:
		return true
	}
	return false
}
