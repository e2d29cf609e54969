package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Customer represents a plot buyer in the CRM
type Customer struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	CNIC        string          `gorm:"size:20;unique;not null;column:cnic" json:"cnic"`
	Phone       string          `gorm:"size:50;not null" json:"phone"`
	Address     string          `gorm:"type:text" json:"address"`
	Plot        string          `gorm:"size:50;not null" json:"plot"`
	PlotSize    string          `gorm:"size:50" json:"plot_size"`
	PlotType    string          `gorm:"size:50" json:"plot_type"`
	Phase       string          `gorm:"size:50" json:"phase"`
	BookingDate time.Time       `json:"booking_date"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(14,2)" json:"total_price"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Payments []Payment `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
