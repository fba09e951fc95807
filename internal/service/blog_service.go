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

type CreateBlogPostRequest struct {
	Title    string `json:"title" validate:"required"`
	Slug     string `json:"slug"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Image    string `json:"image"`
	Status   string `json:"status"`
	Featured bool   `json:"featured"`
}

type UpdateBlogPostRequest struct {
	PostID   string `json:"postId"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Image    string `json:"image"`
	Status   string `json:"status"`
	Featured bool   `json:"featured"`
}

type BlogService interface {
	GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	GetPostByID(ctx context.Context, postID string) (*models.BlogPost, error)
	ListPosts(ctx context.Context, filter repository.BlogFilter) ([]models.BlogPost, error)
	CreatePost(ctx context.Context, req CreateBlogPostRequest) (*models.BlogPost, error)
	UpdatePost(ctx context.Context, req UpdateBlogPostRequest) (*models.BlogPost, error)
	DeletePost(ctx context.Context, postID string) error
	PublishPost(ctx context.Context, postID string) error
	UploadCoverImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
}

type blogService struct {
	blogRepo      repository.BlogRepository
	analyticsRepo repository.AnalyticsRepository
	storage       storage.Storage
	cfg           *config.Config
}

func NewBlogService(blogRepo repository.BlogRepository, analyticsRepo repository.AnalyticsRepository, storage storage.Storage, cfg *config.Config) BlogService {
	return &blogService{
		blogRepo:      blogRepo,
		analyticsRepo: analyticsRepo,
		storage:       storage,
		cfg:           cfg,
	}
}

// GetPostBySlug is the public read path. It bumps the view counter
// best-effort: a failed increment is logged and the read still succeeds.
func (b *blogService) GetPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := b.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := b.analyticsRepo.IncrementPostViews(ctx, post.PostID); err != nil {
		log.Printf("Warning: failed to track view for post %s: %v", post.PostID, err)
	}

	return post, nil
}

// GetPostByID is the admin read path. No view tracking.
func (b *blogService) GetPostByID(ctx context.Context, postID string) (*models.BlogPost, error) {
	return b.blogRepo.GetByID(ctx, postID)
}

func (b *blogService) ListPosts(ctx context.Context, filter repository.BlogFilter) ([]models.BlogPost, error) {
	return b.blogRepo.GetAll(ctx, filter)
}

func (b *blogService) CreatePost(ctx context.Context, req CreateBlogPostRequest) (*models.BlogPost, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}
	if !ValidSlug(slug) {
		return nil, fmt.Errorf("invalid slug %q", slug)
	}

	if req.Status != "" && req.Status != models.PostDraft && req.Status != models.PostPublished {
		return nil, fmt.Errorf("invalid post status %q", req.Status)
	}

	post := &models.BlogPost{
		Title:    req.Title,
		Slug:     slug,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Author:   req.Author,
		Image:    req.Image,
		Status:   req.Status,
		Featured: req.Featured,
	}

	err := b.blogRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (b *blogService) UpdatePost(ctx context.Context, req UpdateBlogPostRequest) (*models.BlogPost, error) {
	post, err := b.blogRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if req.Slug != "" && req.Slug != post.Slug {
		if !ValidSlug(req.Slug) {
			return nil, fmt.Errorf("invalid slug %q", req.Slug)
		}
		post.Slug = req.Slug
	}

	if req.Status != "" {
		if req.Status != models.PostDraft && req.Status != models.PostPublished {
			return nil, fmt.Errorf("invalid post status %q", req.Status)
		}
		post.Status = req.Status
	}

	post.Title = req.Title
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.Category = req.Category
	post.Author = req.Author
	post.Image = req.Image
	post.Featured = req.Featured

	err = b.blogRepo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (b *blogService) DeletePost(ctx context.Context, postID string) error {
	post, err := b.blogRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := b.blogRepo.Delete(ctx, postID); err != nil {
		return err
	}

	if post.Image != "" {
		objectName := objectNameFromURL(post.Image)
		if objectName != "" {
			if err := b.storage.DeleteImage(ctx, storage.BucketBlog, objectName); err != nil {
				log.Printf("Warning: failed to delete cover image %s: %v", objectName, err)
			}
		}
	}

	return nil
}

func (b *blogService) PublishPost(ctx context.Context, postID string) error {
	return b.blogRepo.Publish(ctx, postID)
}

func (b *blogService) UploadCoverImage(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	_, imageURL, err := b.storage.UploadImage(ctx, storage.BucketBlog, fileName, file, size)
	if err != nil {
		return "", fmt.Errorf("failed to upload cover image: %w", err)
	}
	return imageURL, nil
}
