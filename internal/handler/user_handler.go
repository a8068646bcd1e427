package handler

import (
	"net/http"

	"mini-shop/internal/model"
	"mini-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// UserHandler handles user, cart and recommendation HTTP requests.
type UserHandler struct {
	service  service.UserService
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(service service.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.With().Str("handler", "user").Logger(),
	}
}

// RegisterRoutes mounts the user routes on r.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Get("/users", h.GetAll)
	r.Post("/users", h.Create)
	r.Get("/users/{id}", h.GetByID)
	r.Get("/users/{id}/cart", h.GetCart)
	r.Post("/users/{id}/cart", h.AddToCart)
	r.Delete("/users/{id}/cart", h.RemoveFromCart)
	r.Get("/users/{id}/recommendations", h.Recommend)
}

// Create handles POST /api/users requests.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.UserRequest
	if !decodeAndValidate(w, r, h.validate, &req, h.logger) {
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// GetAll handles GET /api/users requests.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// GetByID handles GET /api/users/{id} requests.
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// GetCart handles GET /api/users/{id}/cart requests.
func (h *UserHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	cart, err := h.service.GetCart(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// AddToCart handles POST /api/users/{id}/cart requests.
func (h *UserHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req model.CartItemRequest
	if !decodeAndValidate(w, r, h.validate, &req, h.logger) {
		return
	}

	cart, err := h.service.AddToCart(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// RemoveFromCart handles DELETE /api/users/{id}/cart requests.
func (h *UserHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req model.CartItemRequest
	if !decodeAndValidate(w, r, h.validate, &req, h.logger) {
		return
	}

	cart, err := h.service.RemoveFromCart(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cart)
}

// Recommend handles GET /api/users/{id}/recommendations requests.
func (h *UserHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r)
	if !ok {
		return
	}

	products, err := h.service.Recommend(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *UserHandler) userID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid user ID format", h.logger)
		return 0, false
	}
	return id, true
}
