package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"stayhaven/internal/models"
	"stayhaven/internal/repository"
)

type AnalyticsService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) AnalyticsService {
	return &analyticsService{analyticsRepo: analyticsRepo}
}

// DashboardStats issues the count queries concurrently and reduces them
// into one flat object. If any sub-query fails the whole result is the
// zero-valued stats object: mixed-freshness numbers would mislead more
// than an obviously empty dashboard.
func (a *analyticsService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	type statQuery struct {
		dest *int64
		load func(context.Context) (int64, error)
	}

	queries := []statQuery{
		{&stats.TotalProperties, func(ctx context.Context) (int64, error) {
			return a.analyticsRepo.CountProperties(ctx, "")
		}},
		{&stats.AvailableProperties, func(ctx context.Context) (int64, error) {
			return a.analyticsRepo.CountProperties(ctx, models.PropertyAvailable)
		}},
		{&stats.RentedProperties, func(ctx context.Context) (int64, error) {
			return a.analyticsRepo.CountProperties(ctx, models.PropertyRented)
		}},
		{&stats.MaintenanceProperties, func(ctx context.Context) (int64, error) {
			return a.analyticsRepo.CountProperties(ctx, models.PropertyMaintenance)
		}},
		{&stats.TotalPosts, func(ctx context.Context) (int64, error) {
			return a.analyticsRepo.CountPosts(ctx, "")
		}},
		{&stats.PublishedPosts, func(ctx context.Context) (int64, error) {
			return a.analyticsRepo.CountPosts(ctx, models.PostPublished)
		}},
		{&stats.TotalAgents, func(ctx context.Context) (int64, error) {
			return a.analyticsRepo.CountAgents(ctx, "")
		}},
		{&stats.ActiveAgents, func(ctx context.Context) (int64, error) {
			return a.analyticsRepo.CountAgents(ctx, models.AgentActive)
		}},
		{&stats.TotalInquiries, func(ctx context.Context) (int64, error) {
			return a.analyticsRepo.CountInquiries(ctx, "")
		}},
		{&stats.NewInquiries, func(ctx context.Context) (int64, error) {
			return a.analyticsRepo.CountInquiries(ctx, models.InquiryNew)
		}},
		{&stats.PropertyViews, a.analyticsRepo.SumPropertyViews},
		{&stats.PostViews, a.analyticsRepo.SumPostViews},
	}

	var wg sync.WaitGroup
	var errOnce sync.Once
	var firstErr error

	for _, q := range queries {
		wg.Add(1)
		go func(q statQuery) {
			defer wg.Done()

			value, err := q.load(ctx)
			if err != nil {
				errOnce.Do(func() { firstErr = err })
				return
			}
			// each goroutine writes its own field, no lock needed
			*q.dest = value
		}(q)
	}

	wg.Wait()

	if firstErr != nil {
		log.Printf("Warning: dashboard stats aggregation failed, returning zeroed stats: %v", firstErr)
		return &models.DashboardStats{}, fmt.Errorf("failed to aggregate dashboard stats: %w", firstErr)
	}

	return stats, nil
}
