package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"stayhaven/internal/repository"
	"stayhaven/internal/service"
)

// SubmitContactForm is the public contact endpoint.
func (h *Handlers) SubmitContactForm(w http.ResponseWriter, r *http.Request) {
	var req service.SubmitInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	inquiry, err := h.InquiryService.SubmitInquiry(r.Context(), req)
	if err != nil {
		// generic, retry-able message for the public form
		WriteError(w, "Failed to submit your message, please try again", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, inquiry, http.StatusCreated)
}

func (h *Handlers) GetInquiries(w http.ResponseWriter, r *http.Request) {
	filter := repository.InquiryFilter{
		Status: r.URL.Query().Get("status"),
	}

	inquiries, err := h.InquiryService.ListForAdmin(r.Context(), filter)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"inquiries": inquiries,
	}, http.StatusOK)
}

func (h *Handlers) GetInquiry(w http.ResponseWriter, r *http.Request) {
	inquiryID := mux.Vars(r)["id"]

	inquiry, err := h.InquiryService.GetInquiry(r.Context(), inquiryID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, inquiry, http.StatusOK)
}

func (h *Handlers) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	inquiryID := mux.Vars(r)["id"]

	var req struct {
		Status     string `json:"status" validate:"required,oneof=new in_progress responded"`
		AdminNotes string `json:"adminNotes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.InquiryService.UpdateStatus(r.Context(), inquiryID, req.Status, req.AdminNotes); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": req.Status}, http.StatusOK)
}
