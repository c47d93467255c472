package pg

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/eduforum-dev/eduforum/internal/domain"
)

func (s *Storage) LoadCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, name, description, post_count, is_restricted, allowed_roles
        FROM categories
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		var roles pq.StringArray
		if err := rows.Scan(&c.Id, &c.Name, &c.Description, &c.PostCount, &c.IsRestricted, &roles); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		for _, r := range roles {
			c.AllowedRoles = append(c.AllowedRoles, domain.Role(r))
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return categories, nil
}

func (s *Storage) SaveCategory(ctx context.Context, category *domain.Category) error {
	roles := make(pq.StringArray, 0, len(category.AllowedRoles))
	for _, r := range category.AllowedRoles {
		roles = append(roles, string(r))
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO categories (id, name, description, post_count, is_restricted, allowed_roles)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            description = EXCLUDED.description,
            post_count = EXCLUDED.post_count,
            is_restricted = EXCLUDED.is_restricted,
            allowed_roles = EXCLUDED.allowed_roles
    `, category.Id, category.Name, category.Description, category.PostCount, category.IsRestricted, roles)
	if err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	return nil
}
