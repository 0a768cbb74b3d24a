package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/bunkit/bunkit-be/internal/auth"
	"github.com/bunkit/bunkit-be/internal/media"
	"github.com/bunkit/bunkit-be/internal/services"
)

// maxUploadSize caps the multipart form held in memory per request.
const maxUploadSize = 10 << 20 // 10 MiB

// ProductHandler handles HTTP requests for product listings.
type ProductHandler struct {
	service  services.ProductServiceProvider
	uploader media.Uploader
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service services.ProductServiceProvider, uploader media.Uploader) *ProductHandler {
	return &ProductHandler{service: service, uploader: uploader}
}

// Create handles the multipart product creation request. The image goes to
// the media host first; if that fails, no record is written.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user id from context")
		writeError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	title := r.FormValue("title")
	description := r.FormValue("description")
	category := r.FormValue("category")
	priceStr := r.FormValue("price")

	file, header, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
	}
	if title == "" || description == "" || category == "" || err != nil {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	// price is optional; empty stores null
	var price *int64
	if priceStr != "" {
		parsed, err := strconv.ParseInt(priceStr, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Price must be an integer")
			return
		}
		price = &parsed
	}

	imageURL, err := h.uploader.Upload(r.Context(), file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Image upload failed")
		writeError(w, http.StatusInternalServerError, "Image upload failed")
		return
	}

	product, err := h.service.CreateProduct(title, description, category, price, imageURL, userID)
	if err != nil {
		log.Error().Err(err).Str("seller_id", userID).Msg("Failed to create product")
		writeError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// GetAll handles the public listing of all products, newest first.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve products")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetMine lists the authenticated caller's own products.
func (h *ProductHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user id from context")
		writeError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	products, err := h.service.GetProductsBySeller(userID)
	if err != nil {
		log.Error().Err(err).Str("seller_id", userID).Msg("Failed to retrieve products")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Delete removes a product owned by the caller.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user id from context")
		writeError(w, http.StatusInternalServerError, "Could not retrieve user from token")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.DeleteProduct(id, userID); err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			writeError(w, http.StatusNotFound, "Product not found")
		case errors.Is(err, services.ErrNotOwner):
			log.Warn().Str("product_id", id).Str("user_id", userID).Msg("Delete rejected: not the owner")
			writeError(w, http.StatusForbidden, "You are not the owner of this product")
		default:
			log.Error().Err(err).Str("product_id", id).Msg("Failed to delete product")
			writeError(w, http.StatusInternalServerError, "Failed to delete product")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}
