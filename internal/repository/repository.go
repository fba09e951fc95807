package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"stayhaven/internal/models"
)

// ErrNotFound is returned by single-row lookups when no row matches.
var ErrNotFound = errors.New("not found")

type PropertyFilter struct {
	Status   string
	Location string
	Type     string
	Featured *bool
}

type BlogFilter struct {
	Status   string
	Category string
	Featured *bool
}

type AgentFilter struct {
	Status string
}

type InquiryFilter struct {
	Status string
}

type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, propertyID string) (*models.Property, error)
	GetAll(ctx context.Context, filter PropertyFilter) ([]models.Property, error)
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, propertyID string) error
	SetStatus(ctx context.Context, propertyID, status string) error
	SetFeatured(ctx context.Context, propertyID string, featured bool) error
}

type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetByID(ctx context.Context, postID string) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	GetAll(ctx context.Context, filter BlogFilter) ([]models.BlogPost, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, postID string) error
	Publish(ctx context.Context, postID string) error
}

type AgentRepository interface {
	Create(ctx context.Context, agent *models.Agent) error
	GetByID(ctx context.Context, agentID string) (*models.Agent, error)
	GetAll(ctx context.Context, filter AgentFilter) ([]models.Agent, error)
	Update(ctx context.Context, agent *models.Agent) error
	Delete(ctx context.Context, agentID string) error
}

type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	GetByID(ctx context.Context, serviceID string) (*models.Service, error)
	GetAll(ctx context.Context, activeOnly bool) ([]models.Service, error)
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, serviceID string) error
}

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.ContactInquiry) error
	GetByID(ctx context.Context, inquiryID string) (*models.ContactInquiry, error)
	GetAll(ctx context.Context, filter InquiryFilter) ([]models.ContactInquiry, error)
	UpdateStatus(ctx context.Context, inquiryID, status, adminNotes string) error
	Delete(ctx context.Context, inquiryID string) error
}

type AnalyticsRepository interface {
	IncrementPropertyViews(ctx context.Context, propertyID string) error
	IncrementPostViews(ctx context.Context, postID string) error
	CountProperties(ctx context.Context, status string) (int64, error)
	CountPosts(ctx context.Context, status string) (int64, error)
	CountAgents(ctx context.Context, status string) (int64, error)
	CountInquiries(ctx context.Context, status string) (int64, error)
	SumPropertyViews(ctx context.Context) (int64, error)
	SumPostViews(ctx context.Context) (int64, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type Repository struct {
	Property  PropertyRepository
	Blog      BlogRepository
	Agent     AgentRepository
	Service   ServiceRepository
	Inquiry   InquiryRepository
	Analytics AnalyticsRepository
	User      UserRepository

	// ElevatedInquiry reads through the service-role connection.
	// Nil when the elevated connection is not configured.
	ElevatedInquiry InquiryRepository
}

func NewRepository(db *sqlx.DB, elevatedDB *sqlx.DB) *Repository {
	repo := &Repository{
		Property:  NewPropertyRepository(db),
		Blog:      NewBlogRepository(db),
		Agent:     NewAgentRepository(db),
		Service:   NewServiceRepository(db),
		Inquiry:   NewInquiryRepository(db),
		Analytics: NewAnalyticsRepository(db),
		User:      NewUserRepository(db),
	}

	if elevatedDB != nil {
		repo.ElevatedInquiry = NewInquiryRepository(elevatedDB)
	}

	return repo
}
