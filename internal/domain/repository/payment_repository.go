package repository

import (
	"context"

	"github.com/alqaim/estates-api/internal/domain/entity"
	"github.com/alqaim/estates-api/pkg/pagination"
	"github.com/google/uuid"
)

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	// GetByID returns the payment with its customer preloaded, or nil if no
	// payment matches.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns payments date-descending with their customers preloaded.
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Payment, int64, error)
}
