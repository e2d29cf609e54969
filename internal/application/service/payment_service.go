package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alqaim/estates-api/internal/domain/entity"
	"github.com/alqaim/estates-api/internal/domain/enum"
	"github.com/alqaim/estates-api/internal/domain/repository"
	"github.com/alqaim/estates-api/pkg/apperror"
	"github.com/alqaim/estates-api/pkg/pagination"
	"github.com/alqaim/estates-api/pkg/utils"
)

// PaymentService handles payment-related operations
type PaymentService struct {
	paymentRepo  repository.PaymentRepository
	customerRepo repository.CustomerRepository
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo repository.PaymentRepository, customerRepo repository.CustomerRepository) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
	}
}

// CreatePaymentInput represents the payment creation input
type CreatePaymentInput struct {
	CustomerID uuid.UUID
	Method     enum.PaymentMethod
	Date       time.Time
	Amount     string
}

// CreatePayment records a new installment payment and assigns it a receipt
// number derived from the creation instant.
func (s *PaymentService) CreatePayment(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error) {
	if !input.Method.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "method", Message: "Must be CASH or BANK"},
		})
	}

	amount, err := parseAmount(input.Amount, "amount")
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	payment := &entity.Payment{
		CustomerID: customer.ID,
		ReceiptNo:  utils.GenerateReceiptNo(time.Now()),
		Method:     input.Method,
		Date:       input.Date,
		Amount:     amount,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	payment.Customer = customer

	return payment, nil
}

// GetPayment returns a payment by ID with its customer preloaded
func (s *PaymentService) GetPayment(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}
	return payment, nil
}

// UpdatePaymentInput represents the payment update input. Nil fields are
// left unchanged. The receipt number is not updatable.
type UpdatePaymentInput struct {
	Method *enum.PaymentMethod
	Date   *time.Time
	Amount *string
}

// UpdatePayment applies a partial update to a payment
func (s *PaymentService) UpdatePayment(ctx context.Context, id uuid.UUID, input *UpdatePaymentInput) (*entity.Payment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperror.NewNotFoundError("Payment")
	}

	if input.Method != nil {
		if !input.Method.Valid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "method", Message: "Must be CASH or BANK"},
			})
		}
		payment.Method = *input.Method
	}
	if input.Date != nil {
		payment.Date = *input.Date
	}
	if input.Amount != nil {
		amount, err := parseAmount(*input.Amount, "amount")
		if err != nil {
			return nil, err
		}
		payment.Amount = amount
	}

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// DeletePayment removes a payment by ID
func (s *PaymentService) DeletePayment(ctx context.Context, id uuid.UUID) error {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return apperror.NewNotFoundError("Payment")
	}
	return s.paymentRepo.Delete(ctx, id)
}

// ListPayments returns a paginated payment list, newest payment date first
func (s *PaymentService) ListPayments(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Payment], error) {
	params.Validate()

	payments, total, err := s.paymentRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(payments, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}
