package test

import (
	"context"
	"io"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"stayhaven/internal/models"
	"stayhaven/internal/repository"
	"stayhaven/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

type MockPropertyService struct {
	mock.Mock
}

func (m *MockPropertyService) GetProperty(ctx context.Context, propertyID string) (*models.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) ListProperties(ctx context.Context, filter repository.PropertyFilter) ([]models.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyService) CreateProperty(ctx context.Context, req service.CreatePropertyRequest) (*models.Property, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) UpdateProperty(ctx context.Context, req service.UpdatePropertyRequest) (*models.Property, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyService) DeleteProperty(ctx context.Context, propertyID string) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

func (m *MockPropertyService) SetStatus(ctx context.Context, propertyID, status string) error {
	args := m.Called(ctx, propertyID, status)
	return args.Error(0)
}

func (m *MockPropertyService) SetFeatured(ctx context.Context, propertyID string, featured bool) error {
	args := m.Called(ctx, propertyID, featured)
	return args.Error(0)
}

func (m *MockPropertyService) AttachImage(ctx context.Context, propertyID, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, propertyID, fileName, file, size)
	return args.String(0), args.Error(1)
}

func (m *MockPropertyService) RemoveImage(ctx context.Context, propertyID, imageURL string) error {
	args := m.Called(ctx, propertyID, imageURL)
	return args.Error(0)
}

type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogService) GetPostByID(ctx context.Context, postID string) (*models.BlogPost, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogService) ListPosts(ctx context.Context, filter repository.BlogFilter) ([]models.BlogPost, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockBlogService) CreatePost(ctx context.Context, req service.CreateBlogPostRequest) (*models.BlogPost, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogService) UpdatePost(ctx context.Context, req service.UpdateBlogPostRequest) (*models.BlogPost, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogService) DeletePost(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockBlogService) PublishPost(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockBlogService) UploadCoverImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, fileName, file, size)
	return args.String(0), args.Error(1)
}

type MockInquiryService struct {
	mock.Mock
}

func (m *MockInquiryService) SubmitInquiry(ctx context.Context, req service.SubmitInquiryRequest) (*models.ContactInquiry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactInquiry), args.Error(1)
}

func (m *MockInquiryService) GetInquiry(ctx context.Context, inquiryID string) (*models.ContactInquiry, error) {
	args := m.Called(ctx, inquiryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactInquiry), args.Error(1)
}

func (m *MockInquiryService) ListForAdmin(ctx context.Context, filter repository.InquiryFilter) ([]models.ContactInquiry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactInquiry), args.Error(1)
}

func (m *MockInquiryService) UpdateStatus(ctx context.Context, inquiryID, status, adminNotes string) error {
	args := m.Called(ctx, inquiryID, status, adminNotes)
	return args.Error(0)
}

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}
