package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/alqaim/estates-api/internal/domain/entity"
	"github.com/alqaim/estates-api/internal/domain/repository"
	"github.com/alqaim/estates-api/pkg/apperror"
	"github.com/alqaim/estates-api/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the customer creation input
type CreateCustomerInput struct {
	Name        string
	CNIC        string
	Phone       string
	Address     string
	Plot        string
	PlotSize    string
	PlotType    string
	Phase       string
	BookingDate time.Time
	TotalPrice  string
}

// CreateCustomer registers a new customer. CNIC numbers are unique across
// all customers.
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	existing, err := s.customerRepo.GetByCNIC(ctx, input.CNIC)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Customer with this CNIC already exists")
	}

	totalPrice, err := parseAmount(input.TotalPrice, "total_price")
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		Name:        input.Name,
		CNIC:        input.CNIC,
		Phone:       input.Phone,
		Address:     input.Address,
		Plot:        input.Plot,
		PlotSize:    input.PlotSize,
		PlotType:    input.PlotType,
		Phase:       input.Phase,
		BookingDate: input.BookingDate,
		TotalPrice:  totalPrice,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer returns a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// UpdateCustomerInput represents the customer update input. Nil fields are
// left unchanged.
type UpdateCustomerInput struct {
	Name        *string
	CNIC        *string
	Phone       *string
	Address     *string
	Plot        *string
	PlotSize    *string
	PlotType    *string
	Phase       *string
	BookingDate *time.Time
	TotalPrice  *string
}

// UpdateCustomer applies a partial update to a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	// Check if the new CNIC is taken by another customer
	if input.CNIC != nil && *input.CNIC != customer.CNIC {
		existing, err := s.customerRepo.GetByCNIC(ctx, *input.CNIC)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != customer.ID {
			return nil, apperror.NewConflictError("Customer with this CNIC already exists")
		}
		customer.CNIC = *input.CNIC
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.Plot != nil {
		customer.Plot = *input.Plot
	}
	if input.PlotSize != nil {
		customer.PlotSize = *input.PlotSize
	}
	if input.PlotType != nil {
		customer.PlotType = *input.PlotType
	}
	if input.Phase != nil {
		customer.Phase = *input.Phase
	}
	if input.BookingDate != nil {
		customer.BookingDate = *input.BookingDate
	}
	if input.TotalPrice != nil {
		totalPrice, err := parseAmount(*input.TotalPrice, "total_price")
		if err != nil {
			return nil, err
		}
		customer.TotalPrice = totalPrice
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer removes a customer by ID
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	return s.customerRepo.Delete(ctx, id)
}

// ListCustomers returns a paginated customer list, optionally filtered by a
// search term
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	params.Validate()

	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(customers, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// parseAmount parses a non-negative money amount from its decimal string
// form.
func parseAmount(value, field string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, apperror.NewValidationError([]apperror.FieldError{
			{Field: field, Message: "Must be a valid decimal number"},
		})
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, apperror.NewValidationError([]apperror.FieldError{
			{Field: field, Message: "Must not be negative"},
		})
	}
	return amount, nil
}
