package domain

// Principal is the authenticated caller of every mutating operation.
// Authentication itself happens outside this service; we only carry the
// identity the token asserts.
type Principal struct {
	Id   UserId `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}
