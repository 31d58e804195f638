package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/trivia-api/internal/domain/entities"
	"github.com/aliskhannn/trivia-api/internal/infra/postgres"
	"github.com/aliskhannn/trivia-api/internal/repository"
)

// CategoryRepository provides access to categories in the database.
type CategoryRepository struct {
	db postgres.DBTX
}

// NewCategoryRepository creates a new CategoryRepository with the provided database handle.
func NewCategoryRepository(db postgres.DBTX) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns all categories ordered by ID.
func (r *CategoryRepository) List(ctx context.Context) ([]entities.Category, error) {
	query := `SELECT id, type FROM categories ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []entities.Category
	for rows.Next() {
		var c entities.Category
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}

// GetByID retrieves a category by ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*entities.Category, error) {
	query := `SELECT id, type FROM categories WHERE id = $1`

	var c entities.Category
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Type)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	return &c, nil
}

// Exists checks if a category with the given ID exists.
func (r *CategoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)"

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check category existence: %w", err)
	}

	return exists, nil
}
