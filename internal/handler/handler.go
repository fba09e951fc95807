package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"stayhaven/internal/config"
	"stayhaven/internal/repository"
	"stayhaven/internal/service"
	"stayhaven/internal/storage"
)

type Handlers struct {
	AuthService      service.AuthService
	PropertyService  service.PropertyService
	BlogService      service.BlogService
	InquiryService   service.InquiryService
	AnalyticsService service.AnalyticsService
	AgentRepo        repository.AgentRepository
	ServiceRepo      repository.ServiceRepository
	Storage          storage.Storage
	Cfg              *config.Config
	Validate         *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, storage storage.Storage, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:      service.Auth,
		PropertyService:  service.Property,
		BlogService:      service.Blog,
		InquiryService:   service.Inquiry,
		AnalyticsService: service.Analytics,
		AgentRepo:        repo.Agent,
		ServiceRepo:      repo.Service,
		Storage:          storage,
		Cfg:              config,
		Validate:         validator.New(),
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"service": "stayhaven-api",
	}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "ok",
	}, http.StatusOK)
}
