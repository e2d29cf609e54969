package service

import (
	"context"
	"time"

	"github.com/alqaim/estates-api/internal/domain/entity"
	"github.com/alqaim/estates-api/internal/domain/repository"
)

// DashboardService aggregates figures for the admin dashboard
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo}
}

// GetSummary returns the headline dashboard figures
func (s *DashboardService) GetSummary(ctx context.Context) (*repository.DashboardSummary, error) {
	return s.analyticsRepo.GetSummary(ctx, time.Now())
}

// GetWeeklyCollection returns per-day payment totals for the current week
func (s *DashboardService) GetWeeklyCollection(ctx context.Context) ([]repository.DailyCollection, error) {
	return s.analyticsRepo.GetWeeklyCollection(ctx, time.Now())
}

// GetRecentPayments returns the most recent payments with their customers
func (s *DashboardService) GetRecentPayments(ctx context.Context, limit int) ([]entity.Payment, error) {
	if limit < 1 || limit > 50 {
		limit = 5
	}
	return s.analyticsRepo.GetRecentPayments(ctx, limit)
}
