package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"stayhaven/internal/models"
	"stayhaven/internal/repository"
)

type AgentRequest struct {
	Name        string   `json:"name" validate:"required"`
	Role        string   `json:"role"`
	Email       string   `json:"email" validate:"required,email"`
	Bio         string   `json:"bio"`
	Experience  string   `json:"experience"`
	Portfolio   string   `json:"portfolio"`
	Specialties []string `json:"specialties"`
	ImageURL    string   `json:"imageUrl"`
	Rating      float64  `json:"rating" validate:"min=0,max=5"`
	Status      string   `json:"status" validate:"omitempty,oneof=active inactive"`
}

func (h *Handlers) GetAgents(w http.ResponseWriter, r *http.Request) {
	filter := repository.AgentFilter{
		Status: r.URL.Query().Get("status"),
	}

	agents, err := h.AgentRepo.GetAll(r.Context(), filter)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"agents": agents,
	}, http.StatusOK)
}

func (h *Handlers) GetAgent(w http.ResponseWriter, r *http.Request) {
	agentID := mux.Vars(r)["id"]

	agent, err := h.AgentRepo.GetByID(r.Context(), agentID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, agent, http.StatusOK)
}

func (h *Handlers) CreateAgent(w http.ResponseWriter, r *http.Request) {
	var req AgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	agent := &models.Agent{
		Name:        req.Name,
		Role:        req.Role,
		Email:       req.Email,
		Bio:         req.Bio,
		Experience:  req.Experience,
		Portfolio:   req.Portfolio,
		Specialties: req.Specialties,
		ImageURL:    req.ImageURL,
		Rating:      req.Rating,
		Status:      req.Status,
	}
	if agent.Specialties == nil {
		agent.Specialties = []string{}
	}

	if err := h.AgentRepo.Create(r.Context(), agent); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, agent, http.StatusCreated)
}

func (h *Handlers) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	agentID := mux.Vars(r)["id"]

	var req AgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	agent, err := h.AgentRepo.GetByID(r.Context(), agentID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	agent.Name = req.Name
	agent.Role = req.Role
	agent.Email = req.Email
	agent.Bio = req.Bio
	agent.Experience = req.Experience
	agent.Portfolio = req.Portfolio
	agent.ImageURL = req.ImageURL
	agent.Rating = req.Rating
	if req.Specialties != nil {
		agent.Specialties = req.Specialties
	}
	if req.Status != "" {
		agent.Status = req.Status
	}

	if err := h.AgentRepo.Update(r.Context(), agent); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, agent, http.StatusOK)
}

func (h *Handlers) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	agentID := mux.Vars(r)["id"]

	if err := h.AgentRepo.Delete(r.Context(), agentID); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}
