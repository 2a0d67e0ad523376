package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kynarochlani2006/storefront-api/internal/models"
	"github.com/kynarochlani2006/storefront-api/internal/store"
)

const productColumns = "id, slug, name, price, old_price, image_url, rating, reviews, tag, category, created_at"

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows.Scan, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *Store) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	row := s.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products WHERE id = ?`, id)
	if err := scanProduct(row.Scan, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO products (id, slug, name, price, old_price, image_url, rating, reviews, tag, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Slug, p.Name, p.Price, p.OldPrice, p.ImageURL, p.Rating, p.Reviews, p.Tag, p.Category, p.CreatedAt)
	return err
}

func (s *Store) CountProducts(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&n)
	return n, err
}

// scanProduct scans the productColumns set into p using any row's Scan.
func scanProduct(scan func(...any) error, p *models.Product) error {
	return scan(&p.ID, &p.Slug, &p.Name, &p.Price, &p.OldPrice, &p.ImageURL,
		&p.Rating, &p.Reviews, &p.Tag, &p.Category, &p.CreatedAt)
}
