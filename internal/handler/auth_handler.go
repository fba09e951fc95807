package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"stayhaven/internal/models"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type UserResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type AuthResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

// Register creates an admin account. The route sits behind the admin auth
// middleware, so only an existing admin can add another; the first account
// is seeded out of band.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Register(r.Context(), models.CreateUserRequest{
		Email:    req.Email,
		Password: req.Password,
		Role:     "admin",
	})
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			WriteError(w, "Email already registered", http.StatusConflict)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, UserResponse{
		UserID: user.UserID,
		Email:  user.Email,
		Role:   user.Role,
	}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	WriteSuccess(w, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			UserID: user.UserID,
			Email:  user.Email,
			Role:   user.Role,
		},
	}, http.StatusOK)
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, accessToken, refreshToken, err := h.AuthService.RefreshTokens(r.Context(), req.RefreshToken)
	if err != nil {
		WriteError(w, "Refresh token is expired or invalid", http.StatusUnauthorized)
		return
	}

	WriteSuccess(w, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: UserResponse{
			UserID: user.UserID,
			Email:  user.Email,
			Role:   user.Role,
		},
	}, http.StatusOK)
}

// GetCurrentUser returns the identity carried by the access token.
func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value("userID").(string)
	email, _ := r.Context().Value("email").(string)
	role, _ := r.Context().Value("role").(string)

	if userID == "" {
		WriteError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	WriteSuccess(w, UserResponse{
		UserID: userID,
		Email:  email,
		Role:   role,
	}, http.StatusOK)
}
