package handler

import (
	"io"
	"net/http"

	"mini-shop/internal/model"
	"mini-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// RegisterRoutes mounts the order routes on r.
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/users/{id}/orders", h.Create)
	r.Get("/orders", h.GetAll)
	r.Get("/orders/{id}", h.GetByID)
	r.Get("/orders/{id}/receipt", h.Receipt)
}

// Create handles POST /api/users/{id}/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid user ID format", h.logger)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// GetAll handles GET /api/orders requests.
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.GetAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	order, err := h.service.GetByID(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// Receipt handles GET /api/orders/{id}/receipt requests, returning the
// order in its plain-text form.
func (h *OrderHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	orderID, ok := h.orderID(w, r)
	if !ok {
		return
	}

	receipt, err := h.service.Receipt(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, receipt)
}

func (h *OrderHandler) orderID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidID, "invalid order ID format", h.logger)
		return 0, false
	}
	return id, true
}
