package service

import (
	"context"
	"errors"
	"fmt"

	"mini-shop/internal/model"
	"mini-shop/internal/platform"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	shop   *Shop
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(shop *Shop, logger zerolog.Logger) OrderService {
	return &orderService{
		shop:   shop,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// CreateOrder checks out the user's cart.
func (s *orderService) CreateOrder(ctx context.Context, userID int) (*model.OrderResponse, error) {
	var resp *model.OrderResponse

	err := s.shop.Do(ctx, func(p *platform.Platform) error {
		user, ok := p.User(userID)
		if !ok {
			return model.ErrUserNotFound
		}

		order, err := p.CreateOrder(user)
		if err != nil {
			return err
		}
		resp = model.NewOrderResponse(order)
		return nil
	})
	if err != nil {
		var validationErr *model.ValidationError
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			s.logger.Debug().Int("user_id", userID).Msg("user not found")
			return nil, err
		case errors.As(err, &validationErr):
			s.logger.Warn().
				Err(err).
				Int("user_id", userID).
				Str("code", validationErr.Code).
				Msg("order rejected")
			return nil, err
		default:
			s.logger.Error().Err(err).Int("user_id", userID).Msg("failed to create order")
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
	}

	s.logger.Info().
		Int("order_id", resp.ID).
		Str("reference", resp.Reference.String()).
		Int("line_count", len(resp.Lines)).
		Msg("order created successfully")

	return resp, nil
}

// GetAll lists every order in ID order.
func (s *orderService) GetAll(ctx context.Context) ([]model.OrderResponse, error) {
	var orders []model.OrderResponse

	err := s.shop.Do(ctx, func(p *platform.Platform) error {
		all := p.Orders()
		orders = make([]model.OrderResponse, len(all))
		for i, o := range all {
			orders[i] = *model.NewOrderResponse(o)
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

// GetByID retrieves a single order by ID.
func (s *orderService) GetByID(ctx context.Context, id int) (*model.OrderResponse, error) {
	var resp *model.OrderResponse

	err := s.withOrder(ctx, id, func(o *model.Order) {
		resp = model.NewOrderResponse(o)
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Receipt renders an order in its plain-text form.
func (s *orderService) Receipt(ctx context.Context, id int) (string, error) {
	var receipt string

	err := s.withOrder(ctx, id, func(o *model.Order) {
		receipt = o.String()
	})
	if err != nil {
		return "", err
	}

	return receipt, nil
}

func (s *orderService) withOrder(ctx context.Context, id int, fn func(o *model.Order)) error {
	err := s.shop.Do(ctx, func(p *platform.Platform) error {
		order, ok := p.Order(id)
		if !ok {
			return model.ErrOrderNotFound
		}
		fn(order)
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			s.logger.Debug().Int("order_id", id).Msg("order not found")
			return err
		}
		s.logger.Error().Err(err).Int("order_id", id).Msg("failed to get order")
		return fmt.Errorf("failed to get order: %w", err)
	}
	return nil
}
