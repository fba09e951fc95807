package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"

	"stayhaven/internal/models"
	"stayhaven/internal/notify"
	"stayhaven/internal/repository"
)

type SubmitInquiryRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

type InquiryService interface {
	SubmitInquiry(ctx context.Context, req SubmitInquiryRequest) (*models.ContactInquiry, error)
	GetInquiry(ctx context.Context, inquiryID string) (*models.ContactInquiry, error)
	ListForAdmin(ctx context.Context, filter repository.InquiryFilter) ([]models.ContactInquiry, error)
	UpdateStatus(ctx context.Context, inquiryID, status, adminNotes string) error
}

// inquiryService holds two typed repositories: the session-scope one used
// for every normal operation, and an elevated-scope one backed by the
// service-role connection. The elevated path exists only as a fallback for
// the admin list read and is never tried first.
type inquiryService struct {
	sessionRepo  repository.InquiryRepository
	elevatedRepo repository.InquiryRepository
	notifier     notify.Notifier
}

func NewInquiryService(sessionRepo, elevatedRepo repository.InquiryRepository, notifier notify.Notifier) InquiryService {
	return &inquiryService{
		sessionRepo:  sessionRepo,
		elevatedRepo: elevatedRepo,
		notifier:     notifier,
	}
}

// SubmitInquiry stores a public contact-form submission and publishes an
// email notification. The notification is best-effort: a publish failure
// is logged and the submission still succeeds.
func (s *inquiryService) SubmitInquiry(ctx context.Context, req SubmitInquiryRequest) (*models.ContactInquiry, error) {
	inquiry := &models.ContactInquiry{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.InquiryNew,
	}

	err := s.sessionRepo.Create(ctx, inquiry)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		err = s.notifier.InquiryReceived(notify.InquiryMessage{
			InquiryID: inquiry.InquiryID,
			Name:      inquiry.Name,
			Email:     inquiry.Email,
			Subject:   inquiry.Subject,
		})
		if err != nil {
			log.Printf("Warning: failed to publish inquiry notification %s: %v", inquiry.InquiryID, err)
		}
	}

	return inquiry, nil
}

func (s *inquiryService) GetInquiry(ctx context.Context, inquiryID string) (*models.ContactInquiry, error) {
	return s.sessionRepo.GetByID(ctx, inquiryID)
}

// ListForAdmin reads with session credentials first and escalates to the
// elevated repository only when the session read is denied by access
// control. Any other failure is returned as-is; escalating on arbitrary
// errors would mask outages behind the privileged credential.
func (s *inquiryService) ListForAdmin(ctx context.Context, filter repository.InquiryFilter) ([]models.ContactInquiry, error) {
	inquiries, err := s.sessionRepo.GetAll(ctx, filter)
	if err == nil {
		return inquiries, nil
	}

	if !isAuthorizationDenied(err) {
		return nil, err
	}

	if s.elevatedRepo == nil {
		return nil, fmt.Errorf("session read denied and no elevated credentials configured: %w", err)
	}

	log.Printf("Warning: session inquiry read denied, retrying with elevated credentials: %v", err)

	inquiries, err = s.elevatedRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("elevated inquiry read failed: %w", err)
	}

	return inquiries, nil
}

func (s *inquiryService) UpdateStatus(ctx context.Context, inquiryID, status, adminNotes string) error {
	switch status {
	case models.InquiryNew, models.InquiryInProgress, models.InquiryResponded:
	default:
		return fmt.Errorf("invalid inquiry status %q", status)
	}

	return s.sessionRepo.UpdateStatus(ctx, inquiryID, status, adminNotes)
}

// isAuthorizationDenied matches Postgres insufficient_privilege (42501)
// and row-level security rejections.
func isAuthorizationDenied(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "42501"
	}
	return strings.Contains(err.Error(), "permission denied")
}
