package repository

import (
	"context"

	"github.com/alqaim/estates-api/internal/domain/entity"
	"github.com/alqaim/estates-api/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	GetByCNIC(ctx context.Context, cnic string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns customers newest-first with page-based pagination,
	// optionally filtered by a name/CNIC/phone/plot search term.
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
}
