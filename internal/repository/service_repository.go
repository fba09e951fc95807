package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stayhaven/internal/models"
)

type ServiceRepositoryImpl struct {
	db *sqlx.DB
}

func NewServiceRepository(db *sqlx.DB) *ServiceRepositoryImpl {
	return &ServiceRepositoryImpl{db: db}
}

func (r *ServiceRepositoryImpl) Create(ctx context.Context, service *models.Service) error {
	query := `
        INSERT INTO services
        (service_id, title, description, icon, featured, sort_order, active, created_at, updated_at)
        VALUES
        (:service_id, :title, :description, :icon, :featured, :sort_order, :active, :created_at, :updated_at)
    `

	if service.ServiceID == "" {
		service.ServiceID = uuid.New().String()
	}

	now := time.Now()
	service.CreatedAt = now
	service.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, service)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}

	return nil
}

func (r *ServiceRepositoryImpl) GetByID(ctx context.Context, serviceID string) (*models.Service, error) {
	query := `SELECT * FROM services WHERE service_id = $1`

	var service models.Service
	err := r.db.GetContext(ctx, &service, query, serviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("service %s: %w", serviceID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return &service, nil
}

func (r *ServiceRepositoryImpl) GetAll(ctx context.Context, activeOnly bool) ([]models.Service, error) {
	query := `SELECT * FROM services`
	var args []interface{}

	if activeOnly {
		query += ` WHERE active = $1`
		args = append(args, true)
	}

	// the public page orders by the admin-managed sort key, newest last
	query += ` ORDER BY sort_order ASC, created_at DESC`

	services := []models.Service{}
	err := r.db.SelectContext(ctx, &services, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return services, nil
}

func (r *ServiceRepositoryImpl) Update(ctx context.Context, service *models.Service) error {
	query := `
		UPDATE services SET
			title = :title,
			description = :description,
			icon = :icon,
			featured = :featured,
			sort_order = :sort_order,
			active = :active,
			updated_at = :updated_at
		WHERE service_id = :service_id
	`

	service.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, service)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("service %s: %w", service.ServiceID, ErrNotFound)
	}

	return nil
}

func (r *ServiceRepositoryImpl) Delete(ctx context.Context, serviceID string) error {
	query := `DELETE FROM services WHERE service_id = $1`

	result, err := r.db.ExecContext(ctx, query, serviceID)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("service %s: %w", serviceID, ErrNotFound)
	}

	return nil
}
