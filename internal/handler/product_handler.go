package handler

import (
	"net/http"
	"strconv"

	"mini-shop/internal/model"
	"mini-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service  service.ProductService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

// RegisterRoutes mounts the product routes on r.
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Get("/products", h.GetAll)
	r.Post("/products", h.Create)
	r.Get("/products/{id}", h.GetByID)
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if !decodeAndValidate(w, r, h.validate, &req, h.logger) {
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// GetAll handles GET /api/products requests with optional sort and
// min_stock query parameters.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	sortBy := r.URL.Query().Get("sort")

	var minStock *int
	if raw := r.URL.Query().Get("min_stock"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid min_stock parameter", h.logger)
			return
		}
		minStock = &v
	}

	products, err := h.service.GetAll(r.Context(), sortBy, minStock)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid product ID format", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}
