package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"stayhaven/internal/config"
	"stayhaven/internal/models"
	"stayhaven/internal/repository"
	"stayhaven/internal/storage"
)

type CreatePropertyRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location" validate:"required"`
	Type        string   `json:"type" validate:"required"`
	Bedrooms    int      `json:"bedrooms" validate:"min=0"`
	Bathrooms   int      `json:"bathrooms" validate:"min=0"`
	Area        float64  `json:"area" validate:"min=0"`
	Price       float64  `json:"price" validate:"min=0"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	Featured    bool     `json:"featured"`
	Status      string   `json:"status"`
}

type UpdatePropertyRequest struct {
	PropertyID  string   `json:"propertyId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Area        float64  `json:"area"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	Featured    bool     `json:"featured"`
	Status      string   `json:"status"`
}

type PropertyService interface {
	GetProperty(ctx context.Context, propertyID string) (*models.Property, error)
	ListProperties(ctx context.Context, filter repository.PropertyFilter) ([]models.Property, error)
	CreateProperty(ctx context.Context, req CreatePropertyRequest) (*models.Property, error)
	UpdateProperty(ctx context.Context, req UpdatePropertyRequest) (*models.Property, error)
	DeleteProperty(ctx context.Context, propertyID string) error
	SetStatus(ctx context.Context, propertyID, status string) error
	SetFeatured(ctx context.Context, propertyID string, featured bool) error
	AttachImage(ctx context.Context, propertyID, fileName string, file io.Reader, size int64) (string, error)
	RemoveImage(ctx context.Context, propertyID, imageURL string) error
}

type propertyService struct {
	propertyRepo  repository.PropertyRepository
	analyticsRepo repository.AnalyticsRepository
	storage       storage.Storage
	cfg           *config.Config
}

func NewPropertyService(propertyRepo repository.PropertyRepository, analyticsRepo repository.AnalyticsRepository, storage storage.Storage, cfg *config.Config) PropertyService {
	return &propertyService{
		propertyRepo:  propertyRepo,
		analyticsRepo: analyticsRepo,
		storage:       storage,
		cfg:           cfg,
	}
}

// GetProperty returns a single property and bumps its view counter.
// The counter is best-effort: a failed increment is logged and the read
// still succeeds.
func (p *propertyService) GetProperty(ctx context.Context, propertyID string) (*models.Property, error) {
	property, err := p.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if err := p.analyticsRepo.IncrementPropertyViews(ctx, propertyID); err != nil {
		log.Printf("Warning: failed to track view for property %s: %v", propertyID, err)
	}

	return property, nil
}

func (p *propertyService) ListProperties(ctx context.Context, filter repository.PropertyFilter) ([]models.Property, error) {
	return p.propertyRepo.GetAll(ctx, filter)
}

func (p *propertyService) CreateProperty(ctx context.Context, req CreatePropertyRequest) (*models.Property, error) {
	if req.Status != "" && !validPropertyStatus(req.Status) {
		return nil, fmt.Errorf("invalid property status %q", req.Status)
	}

	property := &models.Property{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Type:        req.Type,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Area:        req.Area,
		Price:       req.Price,
		Images:      req.Images,
		Amenities:   req.Amenities,
		Featured:    req.Featured,
		Status:      req.Status,
	}

	if property.Images == nil {
		property.Images = []string{}
	}
	if property.Amenities == nil {
		property.Amenities = []string{}
	}

	err := p.propertyRepo.Create(ctx, property)
	if err != nil {
		return nil, err
	}

	return property, nil
}

func (p *propertyService) UpdateProperty(ctx context.Context, req UpdatePropertyRequest) (*models.Property, error) {
	if req.Status != "" && !validPropertyStatus(req.Status) {
		return nil, fmt.Errorf("invalid property status %q", req.Status)
	}

	property, err := p.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	property.Title = req.Title
	property.Description = req.Description
	property.Location = req.Location
	property.Type = req.Type
	property.Bedrooms = req.Bedrooms
	property.Bathrooms = req.Bathrooms
	property.Area = req.Area
	property.Price = req.Price
	property.Featured = req.Featured
	if req.Status != "" {
		property.Status = req.Status
	}
	if req.Images != nil {
		property.Images = req.Images
	}
	if req.Amenities != nil {
		property.Amenities = req.Amenities
	}

	err = p.propertyRepo.Update(ctx, property)
	if err != nil {
		return nil, err
	}

	return property, nil
}

func (p *propertyService) DeleteProperty(ctx context.Context, propertyID string) error {
	property, err := p.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}

	if err := p.propertyRepo.Delete(ctx, propertyID); err != nil {
		return err
	}

	// orphaned objects are not worth failing the delete over
	for _, imageURL := range property.Images {
		objectName := objectNameFromURL(imageURL)
		if objectName == "" {
			continue
		}
		if err := p.storage.DeleteImage(ctx, storage.BucketProperties, objectName); err != nil {
			log.Printf("Warning: failed to delete image %s: %v", objectName, err)
		}
	}

	return nil
}

func (p *propertyService) SetStatus(ctx context.Context, propertyID, status string) error {
	if !validPropertyStatus(status) {
		return fmt.Errorf("invalid property status %q", status)
	}
	return p.propertyRepo.SetStatus(ctx, propertyID, status)
}

func (p *propertyService) SetFeatured(ctx context.Context, propertyID string, featured bool) error {
	return p.propertyRepo.SetFeatured(ctx, propertyID, featured)
}

func (p *propertyService) AttachImage(ctx context.Context, propertyID, fileName string, file io.Reader, size int64) (string, error) {
	property, err := p.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return "", err
	}

	objectName, imageURL, err := p.storage.UploadImage(ctx, storage.BucketProperties, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("failed to upload property image: %w", err)
	}

	property.Images = append(property.Images, imageURL)

	err = p.propertyRepo.Update(ctx, property)
	if err != nil {
		// compensate: drop the object we just stored
		p.storage.DeleteImage(ctx, storage.BucketProperties, objectName)
		return "", fmt.Errorf("failed to save property image: %w", err)
	}

	return imageURL, nil
}

func (p *propertyService) RemoveImage(ctx context.Context, propertyID, imageURL string) error {
	property, err := p.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}

	kept := property.Images[:0]
	found := false
	for _, url := range property.Images {
		if url == imageURL {
			found = true
			continue
		}
		kept = append(kept, url)
	}

	if !found {
		return fmt.Errorf("image %s: %w", imageURL, repository.ErrNotFound)
	}

	property.Images = kept

	if err := p.propertyRepo.Update(ctx, property); err != nil {
		return err
	}

	objectName := objectNameFromURL(imageURL)
	if objectName != "" {
		if err := p.storage.DeleteImage(ctx, storage.BucketProperties, objectName); err != nil {
			log.Printf("Warning: failed to delete image %s: %v", objectName, err)
		}
	}

	return nil
}

func validPropertyStatus(status string) bool {
	switch status {
	case models.PropertyAvailable, models.PropertyRented, models.PropertyMaintenance:
		return true
	}
	return false
}
