package entity

import (
	"time"

	"github.com/alqaim/estates-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment represents an installment payment made by a customer.
// ReceiptNo is assigned at creation time and never changes afterwards: it is
// embedded in printed receipts and download filenames.
type Payment struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerID uuid.UUID          `gorm:"type:uuid;not null;index" json:"customer_id"`
	ReceiptNo  string             `gorm:"size:50;unique;not null;column:receipt_no" json:"receipt_no"`
	Method     enum.PaymentMethod `gorm:"size:10;not null" json:"method"`
	Date       time.Time          `gorm:"not null" json:"date"`
	Amount     decimal.Decimal    `gorm:"type:numeric(14,2);not null" json:"amount"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
	DeletedAt  gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// BeforeCreate generates a UUID before creating a new payment
func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Payment model
func (Payment) TableName() string {
	return "customer_payments"
}
