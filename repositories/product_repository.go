package repositories

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"dinkys-shop/config"
	"dinkys-shop/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const productColumns = `p.id, p.name, p.slug, p.description, p.price_cents, p.sizes, p.category_id, p.in_stock, p.created_at, p.updated_at,
	c.id, c.name, c.slug, COALESCE(c.description, ''), c.created_at`

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// BuildProductQuery compiles a FilterSpec into one SQL statement plus its
// positional arguments. Filters combine with AND; the search clause is an
// internal OR over name and description. A max_price value that does not
// parse as a decimal number is dropped while the remaining filters still
// apply. Exactly one ORDER BY key is emitted; ties fall back to storage
// order, which Postgres does not guarantee stable.
func BuildProductQuery(f models.FilterSpec) (string, []any) {
	query := `SELECT ` + productColumns + `
	FROM products p
	JOIN categories c ON c.id = p.category_id`

	args := []any{}
	paramIndex := 1
	where := ""

	addClause := func(clause string) {
		if where == "" {
			where = " WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}

	if f.Category != "" {
		addClause(fmt.Sprintf("c.slug = $%d", paramIndex))
		args = append(args, f.Category)
		paramIndex++
	}

	if f.Size != "" {
		addClause(fmt.Sprintf("$%d = ANY(p.sizes)", paramIndex))
		args = append(args, f.Size)
		paramIndex++
	}

	if f.Search != "" {
		addClause(fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", paramIndex, paramIndex))
		args = append(args, "%"+f.Search+"%")
		paramIndex++
	}

	if f.MaxPrice != "" {
		if cents, ok := parseMaxPriceCents(f.MaxPrice); ok {
			addClause(fmt.Sprintf("p.price_cents <= $%d", paramIndex))
			args = append(args, cents)
			paramIndex++
		}
	}

	orderBy := " ORDER BY p.created_at DESC"
	switch f.Sort {
	case models.SortPriceAsc:
		orderBy = " ORDER BY p.price_cents ASC"
	case models.SortPriceDesc:
		orderBy = " ORDER BY p.price_cents DESC"
	}

	return query + where + orderBy, args
}

// parseMaxPriceCents parses a decimal major-unit string into cents. The
// second return is false when the value is not numeric, in which case the
// price filter is skipped entirely.
func parseMaxPriceCents(raw string) (int64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return int64(math.Round(v * 100)), true
}

func (r *ProductRepository) List(ctx context.Context, f models.FilterSpec) ([]models.Product, error) {
	query, args := BuildProductQuery(f)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	ids := []string{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachImages(ctx, products, ids); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	query := `SELECT ` + productColumns + `
	FROM products p
	JOIN categories c ON c.id = p.category_id
	WHERE p.slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + `
	FROM products p
	JOIN categories c ON c.id = p.category_id
	WHERE p.id = $1`
	return r.getOne(ctx, query, id)
}

func (r *ProductRepository) getOne(ctx context.Context, query string, arg any) (*models.Product, error) {
	row := config.DB.QueryRow(ctx, query, arg)
	p, err := scanProduct(row)
	if err != nil {
		return nil, err
	}

	products := []models.Product{p}
	if err := r.attachImages(ctx, products, []string{p.ID}); err != nil {
		return nil, err
	}
	return &products[0], nil
}

func (r *ProductRepository) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	id := uuid.NewString()
	now := time.Now()
	_, err = tx.Exec(ctx,
		`INSERT INTO products (id, name, slug, description, price_cents, sizes, category_id, in_stock, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, req.Name, req.Slug, req.Description, req.PriceCents, req.Sizes, req.CategoryID, inStock, now, now)
	if err != nil {
		return nil, err
	}

	if err := insertImages(ctx, tx, id, req.Images); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *ProductRepository) Update(ctx context.Context, id string, req models.ProductRequest) (*models.Product, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	tag, err := tx.Exec(ctx,
		`UPDATE products SET name = $1, slug = $2, description = $3, price_cents = $4, sizes = $5,
		 category_id = $6, in_stock = $7, updated_at = $8 WHERE id = $9`,
		req.Name, req.Slug, req.Description, req.PriceCents, req.Sizes, req.CategoryID, inStock, time.Now(), id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, pgx.ErrNoRows
	}

	if _, err := tx.Exec(ctx, `DELETE FROM product_images WHERE product_id = $1`, id); err != nil {
		return nil, err
	}
	if err := insertImages(ctx, tx, id, req.Images); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := config.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func insertImages(ctx context.Context, tx pgx.Tx, productID string, images []models.ProductImageRequest) error {
	for _, img := range images {
		_, err := tx.Exec(ctx,
			`INSERT INTO product_images (id, product_id, url, blob_id, "index") VALUES ($1, $2, $3, $4, $5)`,
			uuid.NewString(), productID, img.URL, img.BlobID, img.Index)
		if err != nil {
			return err
		}
	}
	return nil
}

// attachImages loads the images for the given product IDs ordered by their
// index field ascending and attaches them to the matching products.
func (r *ProductRepository) attachImages(ctx context.Context, products []models.Product, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	rows, err := config.DB.Query(ctx,
		`SELECT id, product_id, url, COALESCE(blob_id, ''), "index"
		 FROM product_images WHERE product_id = ANY($1) ORDER BY "index" ASC`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byProduct := map[string][]models.ProductImage{}
	for rows.Next() {
		var img models.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.BlobID, &img.Index); err != nil {
			return err
		}
		byProduct[img.ProductID] = append(byProduct[img.ProductID], img)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range products {
		products[i].Images = byProduct[products[i].ID]
	}
	return nil
}

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	var c models.Category
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.PriceCents, &p.Sizes,
		&p.CategoryID, &p.InStock, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt,
	)
	if err != nil {
		return models.Product{}, err
	}
	p.Category = &c
	return p, nil
}
