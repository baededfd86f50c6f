package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/styleloom/outfitter/internal/core/domain"
	"github.com/styleloom/outfitter/internal/core/port"
)

var _ port.CatalogStorage = (*CatalogRepository)(nil)

// searchLimit caps how many catalog rows a single search may return.
const searchLimit = 20

type CatalogRepository struct {
	sqldb sqldb
}

func NewCatalogRepository(sqldb sqldb) CatalogRepository {
	return CatalogRepository{sqldb}
}

// StoreProducts upserts the given products keyed on (product_id, source),
// so re-scraped items refresh in place instead of piling up. Invalid
// products are skipped silently.
func (r CatalogRepository) StoreProducts(
	ctx context.Context, ps []domain.Product,
) (storeErr error) {
	const op = "CatalogRepository.StoreProducts"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	tx, err := r.sqldb.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}

	defer func() {
		if storeErr == nil {
			if err := tx.Commit(); err != nil {
				storeErr = fmt.Errorf("%s: failed to commit: %w", op, err)
			}
			return
		}

		err := tx.Rollback()
		if err != nil {
			log.Error("failed to rollback tx", "err", err)
		}
	}()

	query := `
		INSERT INTO catalog_products (
			product_id, name, price, original_price, rating, reviews,
			image, category, seller, description,
			features, colors, sizes, in_stock, source, url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (product_id, source) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			original_price = EXCLUDED.original_price,
			rating = EXCLUDED.rating,
			reviews = EXCLUDED.reviews,
			image = EXCLUDED.image,
			category = EXCLUDED.category,
			seller = EXCLUDED.seller,
			description = EXCLUDED.description,
			features = EXCLUDED.features,
			colors = EXCLUDED.colors,
			sizes = EXCLUDED.sizes,
			in_stock = EXCLUDED.in_stock,
			url = EXCLUDED.url,
			updated_at = now();
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("%s: failed to prepare stmt: %w", op, err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			log.Error("failed to close prepared stmt", "err", err)
		}
	}()

	for _, p := range ps {
		if !p.Valid() {
			continue
		}
		featB, _ := json.Marshal(p.Features)
		colB, _ := json.Marshal(p.Colors)
		sizB, _ := json.Marshal(p.Sizes)
		_, err := stmt.ExecContext(ctx,
			p.ID, p.Name, p.Price, p.OriginalPrice, p.Rating, p.Reviews,
			p.Image, p.Category, p.Seller, p.Description,
			string(featB), string(colB), string(sizB), p.InStock, p.Source, p.URL,
		)
		if err != nil {
			return fmt.Errorf("%s: failed to exec: %w", op, err)
		}
	}

	return nil
}

// SearchProducts matches the query against product names and descriptions,
// newest rows first.
func (r CatalogRepository) SearchProducts(
	ctx context.Context, query string,
) ([]domain.Product, error) {
	const op = "CatalogRepository.SearchProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	q := `
		SELECT
			product_id, name, price, original_price, rating, reviews,
			image, category, seller, description,
			features, colors, sizes, in_stock, source, url
		FROM catalog_products
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY updated_at DESC
		LIMIT $2;`

	rows, err := r.sqldb.QueryContext(ctx, q, "%"+query+"%", searchLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ps []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ps = append(ps, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	var featS, colS, sizS string
	err := row.Scan(
		&p.ID, &p.Name, &p.Price, &p.OriginalPrice, &p.Rating, &p.Reviews,
		&p.Image, &p.Category, &p.Seller, &p.Description,
		&featS, &colS, &sizS, &p.InStock, &p.Source, &p.URL,
	)
	if err != nil {
		return domain.Product{}, err
	}

	if err := json.Unmarshal([]byte(featS), &p.Features); err != nil {
		return domain.Product{}, err
	}
	if err := json.Unmarshal([]byte(colS), &p.Colors); err != nil {
		return domain.Product{}, err
	}
	if err := json.Unmarshal([]byte(sizS), &p.Sizes); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}
