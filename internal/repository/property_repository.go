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

type PropertyRepositoryImpl struct {
	db *sqlx.DB
}

func NewPropertyRepository(db *sqlx.DB) *PropertyRepositoryImpl {
	return &PropertyRepositoryImpl{db: db}
}

func (r *PropertyRepositoryImpl) Create(ctx context.Context, property *models.Property) error {
	query := `
        INSERT INTO properties
        (property_id, title, description, location, type, bedrooms, bathrooms, area, price,
         images, amenities, featured, status, views_count, created_at, updated_at)
        VALUES
        (:property_id, :title, :description, :location, :type, :bedrooms, :bathrooms, :area, :price,
         :images, :amenities, :featured, :status, :views_count, :created_at, :updated_at)
    `

	if property.PropertyID == "" {
		property.PropertyID = uuid.New().String()
	}
	if property.Status == "" {
		property.Status = models.PropertyAvailable
	}

	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, property)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	return nil
}

func (r *PropertyRepositoryImpl) GetByID(ctx context.Context, propertyID string) (*models.Property, error) {
	query := `SELECT * FROM properties WHERE property_id = $1`

	var property models.Property
	err := r.db.GetContext(ctx, &property, query, propertyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("property %s: %w", propertyID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return &property, nil
}

func (r *PropertyRepositoryImpl) GetAll(ctx context.Context, filter PropertyFilter) ([]models.Property, error) {
	query := `SELECT * FROM properties`
	var args []interface{}

	// equality filters only, appended in a fixed order
	where := ""
	addCond := func(cond string, arg interface{}) {
		args = append(args, arg)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(args))
	}

	if filter.Status != "" {
		addCond("status = $%d", filter.Status)
	}
	if filter.Location != "" {
		addCond("location = $%d", filter.Location)
	}
	if filter.Type != "" {
		addCond("type = $%d", filter.Type)
	}
	if filter.Featured != nil {
		addCond("featured = $%d", *filter.Featured)
	}

	query += where + ` ORDER BY created_at DESC`

	properties := []models.Property{}
	err := r.db.SelectContext(ctx, &properties, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	return properties, nil
}

func (r *PropertyRepositoryImpl) Update(ctx context.Context, property *models.Property) error {
	query := `
		UPDATE properties SET
			title = :title,
			description = :description,
			location = :location,
			type = :type,
			bedrooms = :bedrooms,
			bathrooms = :bathrooms,
			area = :area,
			price = :price,
			images = :images,
			amenities = :amenities,
			featured = :featured,
			status = :status,
			updated_at = :updated_at
		WHERE property_id = :property_id
	`

	property.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, property)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("property %s: %w", property.PropertyID, ErrNotFound)
	}

	return nil
}

func (r *PropertyRepositoryImpl) Delete(ctx context.Context, propertyID string) error {
	query := `DELETE FROM properties WHERE property_id = $1`

	result, err := r.db.ExecContext(ctx, query, propertyID)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("property %s: %w", propertyID, ErrNotFound)
	}

	return nil
}

func (r *PropertyRepositoryImpl) SetStatus(ctx context.Context, propertyID, status string) error {
	query := `
		UPDATE properties SET
			status = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE property_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, propertyID)
	if err != nil {
		return fmt.Errorf("failed to update property status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("property %s: %w", propertyID, ErrNotFound)
	}

	return nil
}

func (r *PropertyRepositoryImpl) SetFeatured(ctx context.Context, propertyID string, featured bool) error {
	query := `
		UPDATE properties SET
			featured = $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE property_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, featured, propertyID)
	if err != nil {
		return fmt.Errorf("failed to update property featured flag: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("property %s: %w", propertyID, ErrNotFound)
	}

	return nil
}
