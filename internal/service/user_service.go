package service

import (
	"context"
	"errors"
	"fmt"

	"mini-shop/internal/model"
	"mini-shop/internal/platform"

	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	shop   *Shop
	logger zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(shop *Shop, logger zerolog.Logger) UserService {
	return &userService{
		shop:   shop,
		logger: logger.With().Str("service", "user").Logger(),
	}
}

// Create registers a user with an empty cart.
func (s *userService) Create(ctx context.Context, req *model.UserRequest) (*model.User, error) {
	if req == nil {
		return nil, fmt.Errorf("user request is nil")
	}

	user := model.NewUser(req.ID, req.Username, nil)

	err := s.shop.Do(ctx, func(p *platform.Platform) error {
		p.AddUser(user)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add user: %w", err)
	}

	s.logger.Info().
		Int("user_id", user.ID).
		Str("username", user.Username).
		Msg("user added")

	return &model.User{ID: user.ID, Username: user.Username}, nil
}

// GetAll lists every registered user.
func (s *userService) GetAll(ctx context.Context) ([]model.User, error) {
	var users []model.User

	err := s.shop.Do(ctx, func(p *platform.Platform) error {
		registered := p.Users()
		users = make([]model.User, len(registered))
		for i, u := range registered {
			users[i] = model.User{ID: u.ID, Username: u.Username}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return users, nil
}

// GetByID retrieves a single user by ID.
func (s *userService) GetByID(ctx context.Context, id int) (*model.User, error) {
	var user *model.User

	err := s.shop.Do(ctx, func(p *platform.Platform) error {
		found, ok := p.User(id)
		if !ok {
			return model.ErrUserNotFound
		}
		user = &model.User{ID: found.ID, Username: found.Username}
		return nil
	})
	if err != nil {
		return nil, s.wrap(err, "failed to get user", id)
	}

	return user, nil
}

// GetCart retrieves the user's cart.
func (s *userService) GetCart(ctx context.Context, userID int) (*model.CartResponse, error) {
	var cart *model.CartResponse

	err := s.shop.Do(ctx, func(p *platform.Platform) error {
		user, ok := p.User(userID)
		if !ok {
			return model.ErrUserNotFound
		}
		cart = model.NewCartResponse(user)
		return nil
	})
	if err != nil {
		return nil, s.wrap(err, "failed to get cart", userID)
	}

	return cart, nil
}

// AddToCart adds a product to the user's cart.
func (s *userService) AddToCart(ctx context.Context, userID int, req *model.CartItemRequest) (*model.CartResponse, error) {
	return s.updateCart(ctx, userID, req, (*platform.Platform).AddToCart, "added to cart")
}

// RemoveFromCart removes a product quantity from the user's cart.
func (s *userService) RemoveFromCart(ctx context.Context, userID int, req *model.CartItemRequest) (*model.CartResponse, error) {
	return s.updateCart(ctx, userID, req, (*platform.Platform).RemoveFromCart, "removed from cart")
}

// Recommend returns product recommendations for the user.
func (s *userService) Recommend(ctx context.Context, userID int) ([]model.Product, error) {
	var products []model.Product

	err := s.shop.Do(ctx, func(p *platform.Platform) error {
		user, ok := p.User(userID)
		if !ok {
			return model.ErrUserNotFound
		}
		products = copyProducts(p.RecommendProducts(user))
		return nil
	})
	if err != nil {
		return nil, s.wrap(err, "failed to recommend products", userID)
	}

	s.logger.Debug().
		Int("user_id", userID).
		Int("count", len(products)).
		Msg("recommendations served")

	return products, nil
}

type cartUpdate func(p *platform.Platform, user *model.User, product *model.Product, quantity int) error

func (s *userService) updateCart(
	ctx context.Context,
	userID int,
	req *model.CartItemRequest,
	update cartUpdate,
	action string,
) (*model.CartResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("cart item request is nil")
	}

	var cart *model.CartResponse

	err := s.shop.Do(ctx, func(p *platform.Platform) error {
		user, ok := p.User(userID)
		if !ok {
			return model.ErrUserNotFound
		}
		product, ok := p.Product(req.ProductID)
		if !ok {
			return model.ErrProductNotFound
		}
		if err := update(p, user, product, req.Quantity); err != nil {
			return err
		}
		cart = model.NewCartResponse(user)
		return nil
	})
	if err != nil {
		return nil, s.wrap(err, "failed to update cart", userID)
	}

	s.logger.Debug().
		Int("user_id", userID).
		Int("product_id", req.ProductID).
		Int("quantity", req.Quantity).
		Msg(action)

	return cart, nil
}

// wrap passes domain and validation errors through unchanged and wraps
// anything else with context.
func (s *userService) wrap(err error, msg string, userID int) error {
	var domainErr *model.DomainError
	var validationErr *model.ValidationError
	if errors.As(err, &domainErr) || errors.As(err, &validationErr) {
		s.logger.Debug().Err(err).Int("user_id", userID).Msg(msg)
		return err
	}

	s.logger.Error().Err(err).Int("user_id", userID).Msg(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
