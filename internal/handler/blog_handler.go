package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"stayhaven/internal/models"
	"stayhaven/internal/repository"
	"stayhaven/internal/service"
)

func blogFilterFromQuery(r *http.Request) repository.BlogFilter {
	filter := repository.BlogFilter{
		Status:   r.URL.Query().Get("status"),
		Category: r.URL.Query().Get("category"),
	}

	if raw := r.URL.Query().Get("featured"); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}

	return filter
}

// GetPosts is the public blog listing: only published posts, whatever the
// query says.
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	filter := blogFilterFromQuery(r)
	filter.Status = models.PostPublished

	posts, err := h.BlogService.ListPosts(r.Context(), filter)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"posts": posts,
	}, http.StatusOK)
}

// GetAdminPosts lists posts for the back office, drafts included.
func (h *Handlers) GetAdminPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.BlogService.ListPosts(r.Context(), blogFilterFromQuery(r))
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"posts": posts,
	}, http.StatusOK)
}

func (h *Handlers) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := h.BlogService.GetPostBySlug(r.Context(), slug)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	// drafts are reachable by slug only through the back office
	if post.Status != models.PostPublished {
		WriteError(w, "Blog post not found", http.StatusNotFound)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) GetAdminPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.BlogService.GetPostByID(r.Context(), postID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req service.CreateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := h.BlogService.CreatePost(r.Context(), req)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateBlogPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.PostID = mux.Vars(r)["id"]

	post, err := h.BlogService.UpdatePost(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	if err := h.BlogService.DeletePost(r.Context(), postID); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": "deleted"}, http.StatusOK)
}

func (h *Handlers) PublishPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	if err := h.BlogService.PublishPost(r.Context(), postID); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteSuccess(w, map[string]string{"status": models.PostPublished}, http.StatusOK)
}

func (h *Handlers) UploadPostCover(w http.ResponseWriter, r *http.Request) {
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

	imageURL, err := h.BlogService.UploadCoverImage(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, map[string]string{"imageUrl": imageURL}, http.StatusCreated)
}
