package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// AnalyticsRepositoryImpl holds the count/sum queries behind the admin
// dashboard and the server-side view-count increment functions.
type AnalyticsRepositoryImpl struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepositoryImpl {
	return &AnalyticsRepositoryImpl{db: db}
}

// IncrementPropertyViews bumps views_count through a stored function so the
// increment stays server-side and monotonic under concurrent readers. The
// function also appends a row to analytics_events.
func (r *AnalyticsRepositoryImpl) IncrementPropertyViews(ctx context.Context, propertyID string) error {
	_, err := r.db.ExecContext(ctx, `SELECT increment_property_views($1)`, propertyID)
	if err != nil {
		return fmt.Errorf("failed to increment property views: %w", err)
	}
	return nil
}

func (r *AnalyticsRepositoryImpl) IncrementPostViews(ctx context.Context, postID string) error {
	_, err := r.db.ExecContext(ctx, `SELECT increment_post_views($1)`, postID)
	if err != nil {
		return fmt.Errorf("failed to increment post views: %w", err)
	}
	return nil
}

func (r *AnalyticsRepositoryImpl) countRows(ctx context.Context, table, status string) (int64, error) {
	var count int64
	var err error

	if status == "" {
		err = r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM `+table)
	} else {
		err = r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM `+table+` WHERE status = $1`, status)
	}

	if err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}

	return count, nil
}

func (r *AnalyticsRepositoryImpl) CountProperties(ctx context.Context, status string) (int64, error) {
	return r.countRows(ctx, "properties", status)
}

func (r *AnalyticsRepositoryImpl) CountPosts(ctx context.Context, status string) (int64, error) {
	return r.countRows(ctx, "blog_posts", status)
}

func (r *AnalyticsRepositoryImpl) CountAgents(ctx context.Context, status string) (int64, error) {
	return r.countRows(ctx, "agents", status)
}

func (r *AnalyticsRepositoryImpl) CountInquiries(ctx context.Context, status string) (int64, error) {
	return r.countRows(ctx, "contact_inquiries", status)
}

func (r *AnalyticsRepositoryImpl) SumPropertyViews(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(views_count), 0) FROM properties`)
	if err != nil {
		return 0, fmt.Errorf("failed to sum property views: %w", err)
	}
	return total, nil
}

func (r *AnalyticsRepositoryImpl) SumPostViews(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(views_count), 0) FROM blog_posts`)
	if err != nil {
		return 0, fmt.Errorf("failed to sum post views: %w", err)
	}
	return total, nil
}
