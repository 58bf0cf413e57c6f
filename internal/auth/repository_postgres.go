package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStaffRepository struct {
	db *pgxpool.Pool
}

func NewPostgresStaffRepository(db *pgxpool.Pool) *PostgresStaffRepository {
	return &PostgresStaffRepository{db: db}
}

func (r *PostgresStaffRepository) Save(ctx context.Context, s *Staff) error {
	// Generate UUID if not already set
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query := `
		INSERT INTO staff_users (id, name, email, password_hash, role)
		VALUES ($1, $2, lower($3), $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Email, s.PasswordHash, s.Role,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrEmailTaken
	}
	return err
}

func (r *PostgresStaffRepository) FindByEmail(ctx context.Context, email string) (*Staff, error) {
	query := `
		SELECT id, name, email, password_hash, role
		FROM staff_users WHERE email = lower($1)
	`
	s := &Staff{}
	err := r.db.QueryRow(ctx, query, email).
		Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.Role)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
