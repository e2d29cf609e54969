package repository

import (
	"context"
	"time"

	"github.com/alqaim/estates-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DashboardSummary aggregates the headline figures for the admin dashboard
type DashboardSummary struct {
	TotalCustomers     int64           `json:"total_customers"`
	PlotsSold          int64           `json:"plots_sold"`
	CollectedThisMonth decimal.Decimal `json:"collected_this_month"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	TotalPayments      decimal.Decimal `json:"total_payments"`
}

// DailyCollection is the payment total for a single day of the week
type DailyCollection struct {
	Day    string          `json:"day"`
	Amount decimal.Decimal `json:"amount"`
}

// AnalyticsRepository defines the aggregation queries behind the dashboard
type AnalyticsRepository interface {
	// GetSummary returns customer counts and payment totals. The collected
	// figure covers payments dated within the month containing now.
	GetSummary(ctx context.Context, now time.Time) (*DashboardSummary, error)

	// GetWeeklyCollection returns Sun..Sat totals for the week containing now.
	GetWeeklyCollection(ctx context.Context, now time.Time) ([]DailyCollection, error)

	// GetRecentPayments returns the latest payments by date with customers
	// preloaded.
	GetRecentPayments(ctx context.Context, limit int) ([]entity.Payment, error)
}
