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

type InquiryRepositoryImpl struct {
	db *sqlx.DB
}

func NewInquiryRepository(db *sqlx.DB) *InquiryRepositoryImpl {
	return &InquiryRepositoryImpl{db: db}
}

func (r *InquiryRepositoryImpl) Create(ctx context.Context, inquiry *models.ContactInquiry) error {
	query := `
        INSERT INTO contact_inquiries
        (inquiry_id, name, email, phone, subject, message, status, admin_notes, created_at, updated_at)
        VALUES
        (:inquiry_id, :name, :email, :phone, :subject, :message, :status, :admin_notes, :created_at, :updated_at)
    `

	if inquiry.InquiryID == "" {
		inquiry.InquiryID = uuid.New().String()
	}
	if inquiry.Status == "" {
		inquiry.Status = models.InquiryNew
	}

	now := time.Now()
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, inquiry)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return nil
}

func (r *InquiryRepositoryImpl) GetByID(ctx context.Context, inquiryID string) (*models.ContactInquiry, error) {
	query := `SELECT * FROM contact_inquiries WHERE inquiry_id = $1`

	var inquiry models.ContactInquiry
	err := r.db.GetContext(ctx, &inquiry, query, inquiryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("inquiry %s: %w", inquiryID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}

	return &inquiry, nil
}

func (r *InquiryRepositoryImpl) GetAll(ctx context.Context, filter InquiryFilter) ([]models.ContactInquiry, error) {
	query := `SELECT * FROM contact_inquiries`
	var args []interface{}

	if filter.Status != "" {
		query += ` WHERE status = $1`
		args = append(args, filter.Status)
	}

	query += ` ORDER BY created_at DESC`

	inquiries := []models.ContactInquiry{}
	err := r.db.SelectContext(ctx, &inquiries, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}

	return inquiries, nil
}

func (r *InquiryRepositoryImpl) UpdateStatus(ctx context.Context, inquiryID, status, adminNotes string) error {
	query := `
		UPDATE contact_inquiries SET
			status = $1,
			admin_notes = $2,
			updated_at = CURRENT_TIMESTAMP
		WHERE inquiry_id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, adminNotes, inquiryID)
	if err != nil {
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("inquiry %s: %w", inquiryID, ErrNotFound)
	}

	return nil
}

// Delete exists for admin cleanup parity; inquiries are not deleted in the
// normal flow.
func (r *InquiryRepositoryImpl) Delete(ctx context.Context, inquiryID string) error {
	query := `DELETE FROM contact_inquiries WHERE inquiry_id = $1`

	result, err := r.db.ExecContext(ctx, query, inquiryID)
	if err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("inquiry %s: %w", inquiryID, ErrNotFound)
	}

	return nil
}
