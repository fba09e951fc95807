package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"stayhaven/internal/storage"
)

func validBucket(bucket string) bool {
	switch bucket {
	case storage.BucketProperties, storage.BucketBlog, storage.BucketAgents:
		return true
	}
	return false
}

// UploadImage is the generic admin upload: one object into one bucket,
// response carries the storage path and the public URL.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	bucket := mux.Vars(r)["bucket"]
	if !validBucket(bucket) {
		WriteError(w, "Unknown bucket", http.StatusBadRequest)
		return
	}

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

	objectName, imageURL, err := h.Storage.UploadImage(r.Context(), bucket, header.Filename, file, header.Size)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]string{
		"path":     objectName,
		"imageUrl": imageURL,
	}, http.StatusCreated)
}

func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	bucket := mux.Vars(r)["bucket"]
	if !validBucket(bucket) {
		WriteError(w, "Unknown bucket", http.StatusBadRequest)
		return
	}

	var req struct {
		Path string `json:"path" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Storage.DeleteImage(r.Context(), bucket, req.Path); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}
