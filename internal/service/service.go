package service

import (
	"context"
	"sync"

	"mini-shop/internal/model"
	"mini-shop/internal/platform"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// Create registers a product, replacing any product with the same ID.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// GetAll lists the catalogue, optionally sorted by price, name or stock
	// and filtered to products holding at least minStock units.
	GetAll(ctx context.Context, sortBy string, minStock *int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int) (*model.Product, error)
}

// UserService defines operations for users and their carts.
type UserService interface {
	// Create registers a user with an empty cart, replacing any user with the same ID.
	Create(ctx context.Context, req *model.UserRequest) (*model.User, error)

	// GetAll lists every registered user.
	GetAll(ctx context.Context) ([]model.User, error)

	// GetByID retrieves a single user by ID.
	GetByID(ctx context.Context, id int) (*model.User, error)

	// GetCart retrieves the user's cart.
	GetCart(ctx context.Context, userID int) (*model.CartResponse, error)

	// AddToCart adds a product to the user's cart.
	AddToCart(ctx context.Context, userID int, req *model.CartItemRequest) (*model.CartResponse, error)

	// RemoveFromCart removes a product quantity from the user's cart.
	RemoveFromCart(ctx context.Context, userID int, req *model.CartItemRequest) (*model.CartResponse, error)

	// Recommend returns product recommendations for the user.
	Recommend(ctx context.Context, userID int) ([]model.Product, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// CreateOrder checks out the user's cart.
	CreateOrder(ctx context.Context, userID int) (*model.OrderResponse, error)

	// GetAll lists every order in ID order.
	GetAll(ctx context.Context) ([]model.OrderResponse, error)

	// GetByID retrieves a single order by ID.
	GetByID(ctx context.Context, id int) (*model.OrderResponse, error)

	// Receipt renders an order in its plain-text form.
	Receipt(ctx context.Context, id int) (string, error)
}

// Shop serialises access to a single Platform shared by the services.
type Shop struct {
	mu       sync.Mutex
	platform *platform.Platform
}

// NewShop wraps p for use by the services.
func NewShop(p *platform.Platform) *Shop {
	return &Shop{platform: p}
}

// Do runs fn while holding the shop lock. It returns early if ctx is done.
func (s *Shop) Do(ctx context.Context, fn func(p *platform.Platform) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.platform)
}

func copyProducts(products []*model.Product) []model.Product {
	out := make([]model.Product, len(products))
	for i, p := range products {
		out[i] = *p
	}
	return out
}
