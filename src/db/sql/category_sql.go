package db

import (
	"context"

	"finance-api/src/models"
)

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	if cached, ok := s.categories.Get(); ok {
		return cached, nil
	}

	query := `SELECT id, name, type, COALESCE(icon, '') FROM categories ORDER BY type, name`
	rows, err := s.q.Query(ctx, query)
	if err != nil {
		return nil, wrap("get_categories", err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Icon); err != nil {
			return nil, wrap("get_categories", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("get_categories", err)
	}

	s.categories.Set(categories)
	return categories, nil
}
