package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alqaim/estates-api/internal/domain/entity"
	"github.com/alqaim/estates-api/pkg/apperror"
)

func newCustomerService() *CustomerService {
	return NewCustomerService(&fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)})
}

func TestCreateCustomerRejectsDuplicateCNIC(t *testing.T) {
	svc := newCustomerService()

	input := &CreateCustomerInput{
		Name:        "Ali Khan",
		CNIC:        "12345-1234567-1",
		Phone:       "0300-1234567",
		Plot:        "B-17",
		BookingDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		TotalPrice:  "2500000",
	}

	first, err := svc.CreateCustomer(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "2500000", first.TotalPrice.String())

	second := *input
	second.Name = "Different Name"
	_, err = svc.CreateCustomer(context.Background(), &second)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusConflict, appErr.Code)
}

func TestUpdateCustomerCNICConflict(t *testing.T) {
	svc := newCustomerService()

	first, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:        "Ali Khan",
		CNIC:        "12345-1234567-1",
		Phone:       "0300-1234567",
		Plot:        "B-17",
		BookingDate: time.Now(),
		TotalPrice:  "2500000",
	})
	require.NoError(t, err)

	second, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:        "Sara Ahmed",
		CNIC:        "54321-7654321-2",
		Phone:       "0301-7654321",
		Plot:        "C-04",
		BookingDate: time.Now(),
		TotalPrice:  "1800000",
	})
	require.NoError(t, err)

	// Taking the first customer's CNIC must fail
	_, err = svc.UpdateCustomer(context.Background(), second.ID, &UpdateCustomerInput{
		CNIC: &first.CNIC,
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusConflict, appErr.Code)

	// Re-submitting its own CNIC is fine
	updated, err := svc.UpdateCustomer(context.Background(), second.ID, &UpdateCustomerInput{
		CNIC: &second.CNIC,
	})
	require.NoError(t, err)
	assert.Equal(t, second.CNIC, updated.CNIC)
}

func TestUpdateCustomerUnknownID(t *testing.T) {
	svc := newCustomerService()

	name := "New Name"
	_, err := svc.UpdateCustomer(context.Background(), uuid.New(), &UpdateCustomerInput{Name: &name})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "Customer not found", appErr.Message)
}
