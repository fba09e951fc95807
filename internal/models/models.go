package models

import (
	"time"

	"github.com/lib/pq"
)

// Property statuses
const (
	PropertyAvailable   = "available"
	PropertyRented      = "rented"
	PropertyMaintenance = "maintenance"
)

// Blog post statuses
const (
	PostDraft     = "draft"
	PostPublished = "published"
)

// Agent statuses
const (
	AgentActive   = "active"
	AgentInactive = "inactive"
)

// Inquiry statuses
const (
	InquiryNew        = "new"
	InquiryInProgress = "in_progress"
	InquiryResponded  = "responded"
)

type Property struct {
	PropertyID  string         `json:"propertyId" db:"property_id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Location    string         `json:"location" db:"location"`
	Type        string         `json:"type" db:"type"`
	Bedrooms    int            `json:"bedrooms" db:"bedrooms"`
	Bathrooms   int            `json:"bathrooms" db:"bathrooms"`
	Area        float64        `json:"area" db:"area"`
	Price       float64        `json:"price" db:"price"`
	Images      pq.StringArray `json:"images" db:"images"`
	Amenities   pq.StringArray `json:"amenities" db:"amenities"`
	Featured    bool           `json:"featured" db:"featured"`
	Status      string         `json:"status" db:"status"`
	ViewsCount  int64          `json:"viewsCount" db:"views_count"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

type BlogPost struct {
	PostID     string    `json:"postId" db:"post_id"`
	Title      string    `json:"title" db:"title"`
	Slug       string    `json:"slug" db:"slug"`
	Excerpt    string    `json:"excerpt" db:"excerpt"`
	Content    string    `json:"content" db:"content"`
	Category   string    `json:"category" db:"category"`
	Author     string    `json:"author" db:"author"`
	Image      string    `json:"image" db:"image"`
	Status     string    `json:"status" db:"status"`
	Featured   bool      `json:"featured" db:"featured"`
	ViewsCount int64     `json:"viewsCount" db:"views_count"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

type Agent struct {
	AgentID     string         `json:"agentId" db:"agent_id"`
	Name        string         `json:"name" db:"name"`
	Role        string         `json:"role" db:"role"`
	Email       string         `json:"email" db:"email"`
	Bio         string         `json:"bio" db:"bio"`
	Experience  string         `json:"experience" db:"experience"`
	Portfolio   string         `json:"portfolio" db:"portfolio"`
	Specialties pq.StringArray `json:"specialties" db:"specialties"`
	ImageURL    string         `json:"imageUrl" db:"image_url"`
	Rating      float64        `json:"rating" db:"rating"`
	Status      string         `json:"status" db:"status"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

type ContactInquiry struct {
	InquiryID  string    `json:"inquiryId" db:"inquiry_id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Phone      string    `json:"phone" db:"phone"`
	Subject    string    `json:"subject" db:"subject"`
	Message    string    `json:"message" db:"message"`
	Status     string    `json:"status" db:"status"`
	AdminNotes string    `json:"adminNotes" db:"admin_notes"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// Service is a company offering shown on the public services page.
type Service struct {
	ServiceID   string    `json:"serviceId" db:"service_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Icon        string    `json:"icon" db:"icon"`
	Featured    bool      `json:"featured" db:"featured"`
	SortOrder   int       `json:"sortOrder" db:"sort_order"`
	Active      bool      `json:"active" db:"active"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	Role                   string    `json:"role" db:"role"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// DashboardStats is the flat aggregate shown on the admin dashboard.
type DashboardStats struct {
	TotalProperties       int64 `json:"totalProperties"`
	AvailableProperties   int64 `json:"availableProperties"`
	RentedProperties      int64 `json:"rentedProperties"`
	MaintenanceProperties int64 `json:"maintenanceProperties"`
	TotalPosts            int64 `json:"totalPosts"`
	PublishedPosts        int64 `json:"publishedPosts"`
	TotalAgents           int64 `json:"totalAgents"`
	ActiveAgents          int64 `json:"activeAgents"`
	TotalInquiries        int64 `json:"totalInquiries"`
	NewInquiries          int64 `json:"newInquiries"`
	PropertyViews         int64 `json:"propertyViews"`
	PostViews             int64 `json:"postViews"`
}
