package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"stayhaven/internal/models"
)

type ServiceRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Featured    bool   `json:"featured"`
	SortOrder   int    `json:"sortOrder"`
	Active      *bool  `json:"active"`
}

// GetServices is the public services page: active entries only.
func (h *Handlers) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.ServiceRepo.GetAll(r.Context(), true)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"services": services,
	}, http.StatusOK)
}

func (h *Handlers) GetAdminServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.ServiceRepo.GetAll(r.Context(), false)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"services": services,
	}, http.StatusOK)
}

func (h *Handlers) GetService(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["id"]

	svc, err := h.ServiceRepo.GetByID(r.Context(), serviceID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, svc, http.StatusOK)
}

func (h *Handlers) CreateService(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	svc := &models.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		Featured:    req.Featured,
		SortOrder:   req.SortOrder,
		Active:      active,
	}

	if err := h.ServiceRepo.Create(r.Context(), svc); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, svc, http.StatusCreated)
}

func (h *Handlers) UpdateService(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["id"]

	var req ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	svc, err := h.ServiceRepo.GetByID(r.Context(), serviceID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	svc.Title = req.Title
	svc.Description = req.Description
	svc.Icon = req.Icon
	svc.Featured = req.Featured
	svc.SortOrder = req.SortOrder
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.ServiceRepo.Update(r.Context(), svc); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, svc, http.StatusOK)
}

func (h *Handlers) DeleteService(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["id"]

	if err := h.ServiceRepo.Delete(r.Context(), serviceID); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}
