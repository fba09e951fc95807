package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"stayhaven/cmd/app"
	"stayhaven/internal/config"
	handlers "stayhaven/internal/handler"
	"stayhaven/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	application := app.New(cfg)
	defer application.Close()

	handler := handlers.NewHandlers(application.Repo, application.Services, application.Storage, cfg)

	router := mux.NewRouter()

	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	// public site
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)
	api.HandleFunc("/properties", handler.GetProperties).Methods(http.MethodGet)
	api.HandleFunc("/properties/{id}", handler.GetProperty).Methods(http.MethodGet)
	api.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts/{slug}", handler.GetPostBySlug).Methods(http.MethodGet)
	api.HandleFunc("/agents", handler.GetAgents).Methods(http.MethodGet)
	api.HandleFunc("/agents/{id}", handler.GetAgent).Methods(http.MethodGet)
	api.HandleFunc("/services", handler.GetServices).Methods(http.MethodGet)
	api.HandleFunc("/contact", handler.SubmitContactForm).Methods(http.MethodPost)

	// admin back office
	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(mux.MiddlewareFunc(middleware.AuthMiddleware(cfg)))
	admin.Use(mux.MiddlewareFunc(middleware.RoleMiddleware("admin")))

	admin.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	admin.HandleFunc("/me", handler.GetCurrentUser).Methods(http.MethodGet)

	admin.HandleFunc("/properties", handler.CreateProperty).Methods(http.MethodPost)
	admin.HandleFunc("/properties/{id}", handler.UpdateProperty).Methods(http.MethodPut)
	admin.HandleFunc("/properties/{id}", handler.DeleteProperty).Methods(http.MethodDelete)
	admin.HandleFunc("/properties/{id}/status", handler.SetPropertyStatus).Methods(http.MethodPut)
	admin.HandleFunc("/properties/{id}/featured", handler.SetPropertyFeatured).Methods(http.MethodPut)
	admin.HandleFunc("/properties/{id}/images", handler.UploadPropertyImage).Methods(http.MethodPost)
	admin.HandleFunc("/properties/{id}/images", handler.DeletePropertyImage).Methods(http.MethodDelete)

	admin.HandleFunc("/posts", handler.GetAdminPosts).Methods(http.MethodGet)
	admin.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	admin.HandleFunc("/posts/{id}", handler.GetAdminPost).Methods(http.MethodGet)
	admin.HandleFunc("/posts/{id}", handler.UpdatePost).Methods(http.MethodPut)
	admin.HandleFunc("/posts/{id}", handler.DeletePost).Methods(http.MethodDelete)
	admin.HandleFunc("/posts/{id}/publish", handler.PublishPost).Methods(http.MethodPut)
	admin.HandleFunc("/posts/cover", handler.UploadPostCover).Methods(http.MethodPost)

	admin.HandleFunc("/agents", handler.CreateAgent).Methods(http.MethodPost)
	admin.HandleFunc("/agents/{id}", handler.UpdateAgent).Methods(http.MethodPut)
	admin.HandleFunc("/agents/{id}", handler.DeleteAgent).Methods(http.MethodDelete)

	admin.HandleFunc("/services", handler.GetAdminServices).Methods(http.MethodGet)
	admin.HandleFunc("/services", handler.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", handler.GetService).Methods(http.MethodGet)
	admin.HandleFunc("/services/{id}", handler.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", handler.DeleteService).Methods(http.MethodDelete)

	admin.HandleFunc("/inquiries", handler.GetInquiries).Methods(http.MethodGet)
	admin.HandleFunc("/inquiries/{id}", handler.GetInquiry).Methods(http.MethodGet)
	admin.HandleFunc("/inquiries/{id}/status", handler.UpdateInquiryStatus).Methods(http.MethodPut)

	admin.HandleFunc("/stats", handler.GetDashboardStats).Methods(http.MethodGet)

	admin.HandleFunc("/uploads/{bucket}", handler.UploadImage).Methods(http.MethodPost)
	admin.HandleFunc("/uploads/{bucket}", handler.DeleteImage).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
