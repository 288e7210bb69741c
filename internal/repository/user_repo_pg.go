package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/galaxium-booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByNameAndEmail(ctx context.Context, name, email string) (*domain.User, error)
}

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

func (r *PGUserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.QueryRow(ctx, `INSERT INTO users (name, email) VALUES ($1, $2) RETURNING user_id`, user.Name, user.Email).Scan(&user.ID)
}

func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.scanOne(r.db.QueryRow(ctx, `SELECT user_id, name, email FROM users WHERE user_id=$1`, id))
}

func (r *PGUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanOne(r.db.QueryRow(ctx, `SELECT user_id, name, email FROM users WHERE email=$1`, email))
}

func (r *PGUserRepository) GetByNameAndEmail(ctx context.Context, name, email string) (*domain.User, error) {
	return r.scanOne(r.db.QueryRow(ctx, `SELECT user_id, name, email FROM users WHERE name=$1 AND email=$2`, name, email))
}

func (r *PGUserRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

var _ UserRepository = (*PGUserRepository)(nil)
