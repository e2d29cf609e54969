package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/alqaim/estates-api/internal/application/service"
	"github.com/alqaim/estates-api/internal/presentation/http/dto/response"
	"github.com/alqaim/estates-api/pkg/pagination"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

const dateLayout = "2006-01-02"

// List handles listing customers with page-based pagination
func (h *CustomerHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	search := c.Query("search")

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.customerService.ListCustomers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		CNIC        string `json:"cnic" binding:"required"`
		Phone       string `json:"phone" binding:"required"`
		Address     string `json:"address"`
		Plot        string `json:"plot" binding:"required"`
		PlotSize    string `json:"plot_size"`
		PlotType    string `json:"plot_type"`
		Phase       string `json:"phase"`
		BookingDate string `json:"booking_date" binding:"required"`
		TotalPrice  string `json:"total_price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	bookingDate, err := time.Parse(dateLayout, req.BookingDate)
	if err != nil {
		response.BadRequest(c, "Invalid booking date, expected YYYY-MM-DD")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:        req.Name,
		CNIC:        req.CNIC,
		Phone:       req.Phone,
		Address:     req.Address,
		Plot:        req.Plot,
		PlotSize:    req.PlotSize,
		PlotType:    req.PlotType,
		Phase:       req.Phase,
		BookingDate: bookingDate,
		TotalPrice:  req.TotalPrice,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		Name        *string `json:"name"`
		CNIC        *string `json:"cnic"`
		Phone       *string `json:"phone"`
		Address     *string `json:"address"`
		Plot        *string `json:"plot"`
		PlotSize    *string `json:"plot_size"`
		PlotType    *string `json:"plot_type"`
		Phase       *string `json:"phase"`
		BookingDate *string `json:"booking_date"`
		TotalPrice  *string `json:"total_price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateCustomerInput{
		Name:       req.Name,
		CNIC:       req.CNIC,
		Phone:      req.Phone,
		Address:    req.Address,
		Plot:       req.Plot,
		PlotSize:   req.PlotSize,
		PlotType:   req.PlotType,
		Phase:      req.Phase,
		TotalPrice: req.TotalPrice,
	}
	if req.BookingDate != nil {
		bookingDate, err := time.Parse(dateLayout, *req.BookingDate)
		if err != nil {
			response.BadRequest(c, "Invalid booking date, expected YYYY-MM-DD")
			return
		}
		input.BookingDate = &bookingDate
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
