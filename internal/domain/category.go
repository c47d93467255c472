package domain

type Category struct {
	Id           CategoryId `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	PostCount    int        `json:"post_count"`
	IsRestricted bool       `json:"is_restricted"`
	AllowedRoles []Role     `json:"allowed_roles,omitempty"` // meaningful only if IsRestricted
}

// AllowsRole reports whether role may create posts in this category.
// Restriction is checked once, at post creation time.
func (c *Category) AllowsRole(role Role) bool {
	if !c.IsRestricted {
		return true
	}
	for _, r := range c.AllowedRoles {
		if r == role {
			return true
		}
	}
	return false
}
