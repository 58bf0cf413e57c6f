package menu

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `
	id,
	name,
	description,
	price::text,
	image,
	category,
	rating,
	COALESCE(ingredients, '{}'),
	COALESCE(allergens, '{}'),
	is_spicy,
	is_vegetarian
`

func scanProduct(row pgx.Row) (*Product, error) {
	var (
		p        Product
		price    string
		category string
	)

	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&price,
		&p.Image,
		&category,
		&p.Rating,
		&p.Ingredients,
		&p.Allergens,
		&p.Spicy,
		&p.Vegetarian,
	); err != nil {
		return nil, err
	}

	parsed, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	p.Price = parsed
	p.Category = Category(category)

	return &p, nil
}

// --------------------------------------------------
// LIST (CATALOG ORDER)
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}

	return products, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id int) (*Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// --------------------------------------------------
// CREATE (ID = MAX + 1)
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, p *Product) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO products (
			id,
			name,
			description,
			price,
			image,
			category,
			rating,
			ingredients,
			allergens,
			is_spicy,
			is_vegetarian
		)
		VALUES (
			(SELECT COALESCE(MAX(id), 0) + 1 FROM products),
			$1, $2, $3::numeric, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING id
	`,
		p.Name,
		p.Description,
		p.Price.String(),
		p.Image,
		string(p.Category),
		p.Rating,
		p.Ingredients,
		p.Allergens,
		p.Spicy,
		p.Vegetarian,
	).Scan(&p.ID)
}

func (r *PostgresRepository) Update(ctx context.Context, p *Product) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $2,
		    description = $3,
		    price = $4::numeric,
		    image = $5,
		    category = $6,
		    rating = $7,
		    ingredients = $8,
		    allergens = $9,
		    is_spicy = $10,
		    is_vegetarian = $11,
		    updated_at = now()
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Description,
		p.Price.String(),
		p.Image,
		string(p.Category),
		p.Rating,
		p.Ingredients,
		p.Allergens,
		p.Spicy,
		p.Vegetarian,
	)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// --------------------------------------------------
// SEED (ONLY INTO AN EMPTY TABLE)
// --------------------------------------------------

// Seed writes products with their own ids when the table is empty and
// returns how many rows were inserted.
func (r *PostgresRepository) Seed(ctx context.Context, products []Product) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var existing int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&existing); err != nil {
		return 0, err
	}
	if existing > 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(`
			INSERT INTO products (
				id, name, description, price, image, category,
				rating, ingredients, allergens, is_spicy, is_vegetarian
			)
			VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8, $9, $10, $11)
		`,
			p.ID,
			p.Name,
			p.Description,
			p.Price.String(),
			p.Image,
			string(p.Category),
			p.Rating,
			p.Ingredients,
			p.Allergens,
			p.Spicy,
			p.Vegetarian,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(products), nil
}
