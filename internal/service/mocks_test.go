package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"stayhaven/internal/models"
	"stayhaven/internal/notify"
	"stayhaven/internal/repository"
)

type mockPropertyRepo struct {
	mock.Mock
}

func (m *mockPropertyRepo) Create(ctx context.Context, property *models.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *mockPropertyRepo) GetByID(ctx context.Context, propertyID string) (*models.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *mockPropertyRepo) GetAll(ctx context.Context, filter repository.PropertyFilter) ([]models.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *mockPropertyRepo) Update(ctx context.Context, property *models.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *mockPropertyRepo) Delete(ctx context.Context, propertyID string) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

func (m *mockPropertyRepo) SetStatus(ctx context.Context, propertyID, status string) error {
	args := m.Called(ctx, propertyID, status)
	return args.Error(0)
}

func (m *mockPropertyRepo) SetFeatured(ctx context.Context, propertyID string, featured bool) error {
	args := m.Called(ctx, propertyID, featured)
	return args.Error(0)
}

type mockBlogRepo struct {
	mock.Mock
}

func (m *mockBlogRepo) Create(ctx context.Context, post *models.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockBlogRepo) GetByID(ctx context.Context, postID string) (*models.BlogPost, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *mockBlogRepo) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *mockBlogRepo) GetAll(ctx context.Context, filter repository.BlogFilter) ([]models.BlogPost, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *mockBlogRepo) Update(ctx context.Context, post *models.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockBlogRepo) Delete(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *mockBlogRepo) Publish(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

type mockInquiryRepo struct {
	mock.Mock
}

func (m *mockInquiryRepo) Create(ctx context.Context, inquiry *models.ContactInquiry) error {
	args := m.Called(ctx, inquiry)
	return args.Error(0)
}

func (m *mockInquiryRepo) GetByID(ctx context.Context, inquiryID string) (*models.ContactInquiry, error) {
	args := m.Called(ctx, inquiryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactInquiry), args.Error(1)
}

func (m *mockInquiryRepo) GetAll(ctx context.Context, filter repository.InquiryFilter) ([]models.ContactInquiry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactInquiry), args.Error(1)
}

func (m *mockInquiryRepo) UpdateStatus(ctx context.Context, inquiryID, status, adminNotes string) error {
	args := m.Called(ctx, inquiryID, status, adminNotes)
	return args.Error(0)
}

func (m *mockInquiryRepo) Delete(ctx context.Context, inquiryID string) error {
	args := m.Called(ctx, inquiryID)
	return args.Error(0)
}

type mockAnalyticsRepo struct {
	mock.Mock
}

func (m *mockAnalyticsRepo) IncrementPropertyViews(ctx context.Context, propertyID string) error {
	args := m.Called(ctx, propertyID)
	return args.Error(0)
}

func (m *mockAnalyticsRepo) IncrementPostViews(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *mockAnalyticsRepo) CountProperties(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsRepo) CountPosts(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsRepo) CountAgents(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsRepo) CountInquiries(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsRepo) SumPropertyViews(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsRepo) SumPostViews(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshToken, expiryTime)
	return args.Error(0)
}

func (m *mockUserRepo) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadImage(ctx context.Context, bucket, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, bucket, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockStorage) DeleteImage(ctx context.Context, bucket, objectName string) error {
	args := m.Called(ctx, bucket, objectName)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) InquiryReceived(msg notify.InquiryMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *mockNotifier) Close() error {
	args := m.Called()
	return args.Error(0)
}
