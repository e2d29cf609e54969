package repository

import (
	"context"

	"github.com/alqaim/estates-api/internal/domain/entity"
	"github.com/google/uuid"
)

// UserRepository defines the interface for admin user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
