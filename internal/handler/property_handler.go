package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"stayhaven/internal/repository"
	"stayhaven/internal/service"
)

func propertyFilterFromQuery(r *http.Request) repository.PropertyFilter {
	filter := repository.PropertyFilter{
		Status:   r.URL.Query().Get("status"),
		Location: r.URL.Query().Get("location"),
		Type:     r.URL.Query().Get("type"),
	}

	if raw := r.URL.Query().Get("featured"); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}

	return filter
}

func (h *Handlers) GetProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.PropertyService.ListProperties(r.Context(), propertyFilterFromQuery(r))
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"properties": properties,
	}, http.StatusOK)
}

func (h *Handlers) GetProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["id"]

	property, err := h.PropertyService.GetProperty(r.Context(), propertyID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, property, http.StatusOK)
}

func (h *Handlers) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req service.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	property, err := h.PropertyService.CreateProperty(r.Context(), req)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, property, http.StatusCreated)
}

func (h *Handlers) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	var req service.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.PropertyID = mux.Vars(r)["id"]

	property, err := h.PropertyService.UpdateProperty(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, property, http.StatusOK)
}

func (h *Handlers) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["id"]

	if err := h.PropertyService.DeleteProperty(r.Context(), propertyID); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}

func (h *Handlers) SetPropertyStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	propertyID := mux.Vars(r)["id"]

	if err := h.PropertyService.SetStatus(r.Context(), propertyID, req.Status); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": req.Status}, http.StatusOK)
}

func (h *Handlers) SetPropertyFeatured(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Featured bool `json:"featured"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	propertyID := mux.Vars(r)["id"]

	if err := h.PropertyService.SetFeatured(r.Context(), propertyID, req.Featured); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]bool{"featured": req.Featured}, http.StatusOK)
}

func (h *Handlers) UploadPropertyImage(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "File is too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Missing image file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	imageURL, err := h.PropertyService.AttachImage(r.Context(), propertyID, header.Filename, file, header.Size)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"imageUrl": imageURL}, http.StatusCreated)
}

func (h *Handlers) DeletePropertyImage(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["id"]

	var req struct {
		ImageURL string `json:"imageUrl" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.PropertyService.RemoveImage(r.Context(), propertyID, req.ImageURL); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}
