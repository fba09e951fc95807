package service

import (
	"stayhaven/internal/config"
	"stayhaven/internal/notify"
	"stayhaven/internal/repository"
	"stayhaven/internal/storage"
)

type Service struct {
	Auth      AuthService
	Property  PropertyService
	Blog      BlogService
	Inquiry   InquiryService
	Analytics AnalyticsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, notifier notify.Notifier) *Service {
	return &Service{
		Auth:      NewAuthService(rep.User, cfg),
		Property:  NewPropertyService(rep.Property, rep.Analytics, storage, cfg),
		Blog:      NewBlogService(rep.Blog, rep.Analytics, storage, cfg),
		Inquiry:   NewInquiryService(rep.Inquiry, rep.ElevatedInquiry, notifier),
		Analytics: NewAnalyticsService(rep.Analytics),
	}
}
