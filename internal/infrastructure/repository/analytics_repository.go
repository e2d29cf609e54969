package repository

import (
	"context"
	"time"

	"github.com/alqaim/estates-api/internal/domain/entity"
	domainRepo "github.com/alqaim/estates-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetSummary(ctx context.Context, now time.Time) (*domainRepo.DashboardSummary, error) {
	summary := &domainRepo.DashboardSummary{}

	if err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&summary.TotalCustomers).Error; err != nil {
		return nil, err
	}
	// Every registered customer holds exactly one plot.
	summary.PlotsSold = summary.TotalCustomers

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	collected, err := r.sumPayments(ctx, &monthStart)
	if err != nil {
		return nil, err
	}
	summary.CollectedThisMonth = collected

	var outstanding decimal.NullDecimal
	err = r.db.WithContext(ctx).Model(&entity.Customer{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&outstanding).Error
	if err != nil {
		return nil, err
	}
	summary.OutstandingBalance = outstanding.Decimal

	total, err := r.sumPayments(ctx, nil)
	if err != nil {
		return nil, err
	}
	summary.TotalPayments = total

	return summary, nil
}

// sumPayments totals payment amounts, optionally restricted to payments
// dated on or after since.
func (r *analyticsRepository) sumPayments(ctx context.Context, since *time.Time) (decimal.Decimal, error) {
	query := r.db.WithContext(ctx).Model(&entity.Payment{}).
		Select("COALESCE(SUM(amount), 0)")
	if since != nil {
		query = query.Where("date >= ?", *since)
	}

	var sum decimal.NullDecimal
	if err := query.Scan(&sum).Error; err != nil {
		return decimal.Zero, err
	}
	return sum.Decimal, nil
}

func (r *analyticsRepository) GetWeeklyCollection(ctx context.Context, now time.Time) ([]domainRepo.DailyCollection, error) {
	// Week starts on Sunday, matching the dashboard chart.
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -int(now.Weekday()))

	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Where("date >= ?", weekStart).
		Order("date ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	buckets := make([]domainRepo.DailyCollection, 7)
	for i := range buckets {
		buckets[i] = domainRepo.DailyCollection{
			Day:    weekStart.AddDate(0, 0, i).Format("Mon"),
			Amount: decimal.Zero,
		}
	}
	for _, p := range payments {
		idx := int(p.Date.Weekday())
		buckets[idx].Amount = buckets[idx].Amount.Add(p.Amount)
	}

	return buckets, nil
}

func (r *analyticsRepository) GetRecentPayments(ctx context.Context, limit int) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Order("date DESC").
		Limit(limit).
		Find(&payments).Error
	return payments, err
}
