package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pos-saas-api/internal/domain"
	"github.com/jhoicas/pos-saas-api/internal/domain/entity"
)

// UserRepository implementa la persistencia de usuarios.
type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) (int64, error) {
	query := `
		INSERT INTO usuarios (empresa_id, email, password_hash, nombre, rol, estatus)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		user.CompanyID, user.Email, user.PasswordHash, user.Name, user.Role, user.Status,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("insertando usuario: %w", err)
	}
	return id, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRow(ctx, `
		SELECT id, empresa_id, email, password_hash, nombre, rol, estatus, created_at
		FROM usuarios
		WHERE email = $1`, email,
	).Scan(&u.ID, &u.CompanyID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.Status, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultando usuario por email: %w", err)
	}
	return &u, nil
}
