package service

import (
	"sort"
	"sync"

	"github.com/eduforum-dev/eduforum/internal/domain"
	internal_errors "github.com/eduforum-dev/eduforum/internal/errors"
)

// CategoryRegistry holds the fixed category set and answers whether a role
// may post into a category. Post counts are tracked here and persisted by
// the facade.
type CategoryRegistry struct {
	mu         sync.RWMutex
	categories map[domain.CategoryId]domain.Category
}

func NewCategoryRegistry(categories []domain.Category) *CategoryRegistry {
	m := make(map[domain.CategoryId]domain.Category, len(categories))
	for _, c := range categories {
		m[c.Id] = c
	}
	return &CategoryRegistry{categories: m}
}

func (r *CategoryRegistry) Get(id domain.CategoryId) (domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.categories[id]
	if !ok {
		return domain.Category{}, &internal_errors.NotFoundError{Message: "Category not found"}
	}
	return c, nil
}

// CanPostIn returns true for unrestricted categories, otherwise true iff the
// role is on the category's allow-list.
func (r *CategoryRegistry) CanPostIn(id domain.CategoryId, role domain.Role) (bool, error) {
	c, err := r.Get(id)
	if err != nil {
		return false, err
	}
	return c.AllowsRole(role), nil
}

// All returns the categories ordered by name for stable listings.
func (r *CategoryRegistry) All() []domain.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AddPost bumps the category's derived post count and returns the updated
// category for persistence.
func (r *CategoryRegistry) AddPost(id domain.CategoryId) (domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return domain.Category{}, &internal_errors.NotFoundError{Message: "Category not found"}
	}
	c.PostCount++
	r.categories[id] = c
	return c, nil
}

// RemovePost undoes an AddPost when the persist that followed it failed,
// so the in-memory count does not drift ahead of storage.
func (r *CategoryRegistry) RemovePost(id domain.CategoryId) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok || c.PostCount == 0 {
		return
	}
	c.PostCount--
	r.categories[id] = c
}
