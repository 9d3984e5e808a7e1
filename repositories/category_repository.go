package repositories

import (
	"context"
	"time"

	"dinkys-shop/config"
	"dinkys-shop/models"

	"github.com/google/uuid"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT id, name, slug, COALESCE(description, ''), created_at FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.Description, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Create(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	cat := models.Category{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	_, err := config.DB.Exec(ctx,
		`INSERT INTO categories (id, name, slug, description, created_at) VALUES ($1, $2, $3, $4, $5)`,
		cat.ID, cat.Name, cat.Slug, cat.Description, cat.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}
