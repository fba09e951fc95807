package repository

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayhaven/internal/models"
)

func inquiryColumns() []string {
	return []string{
		"inquiry_id", "name", "email", "phone", "subject", "message", "status",
		"admin_notes", "created_at", "updated_at",
	}
}

func inquiryRow(inquiryID, status string) []driver.Value {
	now := time.Now()
	return []driver.Value{
		inquiryID, "Jane", "jane@x.com", "", "", "Hello", status, "", now, now,
	}
}

func TestInquiryRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewInquiryRepository(sqlxDB)

	ctx := context.Background()

	inquiry := &models.ContactInquiry{
		Name:    "Jane",
		Email:   "jane@x.com",
		Message: "Hello",
	}

	mock.ExpectExec(`
        INSERT INTO contact_inquiries
        (inquiry_id, name, email, phone, subject, message, status, admin_notes, created_at, updated_at)
        VALUES
        (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `).
		WithArgs(
			sqlmock.AnyArg(),
			"Jane",
			"jane@x.com",
			"",
			"",
			"Hello",
			models.InquiryNew, // defaulted in the repository
			"",
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(ctx, inquiry)

	assert.NoError(t, err)
	assert.NotEmpty(t, inquiry.InquiryID)
	assert.Equal(t, models.InquiryNew, inquiry.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInquiryRepository_GetAll(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewInquiryRepository(sqlxDB)

	ctx := context.Background()

	t.Run("status filter", func(t *testing.T) {
		rows := sqlmock.NewRows(inquiryColumns()).
			AddRow(inquiryRow(uuid.New().String(), models.InquiryResponded)...)

		mock.ExpectQuery(`SELECT * FROM contact_inquiries WHERE status = $1 ORDER BY created_at DESC`).
			WithArgs(models.InquiryResponded).
			WillReturnRows(rows)

		inquiries, err := repo.GetAll(ctx, InquiryFilter{Status: models.InquiryResponded})

		require.NoError(t, err)
		require.Len(t, inquiries, 1)
		assert.Equal(t, models.InquiryResponded, inquiries[0].Status)
		assert.Equal(t, "Jane", inquiries[0].Name)
		assert.Equal(t, "jane@x.com", inquiries[0].Email)
		assert.Equal(t, "Hello", inquiries[0].Message)
	})

	t.Run("empty result is an empty slice, not an error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT * FROM contact_inquiries ORDER BY created_at DESC`).
			WillReturnRows(sqlmock.NewRows(inquiryColumns()))

		inquiries, err := repo.GetAll(ctx, InquiryFilter{})

		require.NoError(t, err)
		assert.Empty(t, inquiries)
	})
}

func TestInquiryRepository_UpdateStatus(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewInquiryRepository(sqlxDB)

	ctx := context.Background()
	inquiryID := uuid.New().String()

	t.Run("updates status and notes", func(t *testing.T) {
		mock.ExpectExec(`
		UPDATE contact_inquiries SET
			status = $1,
			admin_notes = $2,
			updated_at = CURRENT_TIMESTAMP
		WHERE inquiry_id = $3
	`).
			WithArgs(models.InquiryResponded, "called back", inquiryID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, inquiryID, models.InquiryResponded, "called back")
		assert.NoError(t, err)
	})

	t.Run("missing inquiry yields ErrNotFound", func(t *testing.T) {
		mock.ExpectExec(`
		UPDATE contact_inquiries SET
			status = $1,
			admin_notes = $2,
			updated_at = CURRENT_TIMESTAMP
		WHERE inquiry_id = $3
	`).
			WithArgs(models.InquiryResponded, "", "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, "missing", models.InquiryResponded, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
