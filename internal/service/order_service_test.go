package service

import (
	"context"
	"testing"

	"mini-shop/internal/model"
	"mini-shop/internal/platform"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_CreateOrder(t *testing.T) {
	s := newTestServices(t, platform.PolicyPermissive)
	ctx := context.Background()

	_, err := s.users.AddToCart(ctx, 1, &model.CartItemRequest{ProductID: 1, Quantity: 2})
	require.NoError(t, err)
	_, err = s.users.AddToCart(ctx, 1, &model.CartItemRequest{ProductID: 3, Quantity: 1})
	require.NoError(t, err)

	order, err := s.orders.CreateOrder(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, order.ID)
	assert.Equal(t, 1, order.UserID)
	assert.NotEqual(t, uuid.Nil, order.Reference)
	assert.InDelta(t, 2199.97, order.TotalPrice, 1e-9)
	require.Len(t, order.Lines, 2)
	assert.Equal(t, 1, order.Lines[0].Product.ID)
	assert.InDelta(t, 1999.98, order.Lines[0].Cost, 1e-9)

	cart, err := s.users.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	laptop, err := s.products.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, laptop.Stock)
}

func TestOrderService_CreateOrder_Errors(t *testing.T) {
	tests := []struct {
		name        string
		policy      platform.Policy
		userID      int
		setup       func(t *testing.T, s *services)
		expectedErr error
	}{
		{
			name:        "unknown user",
			userID:      5,
			expectedErr: model.ErrUserNotFound,
		},
		{
			name:        "strict rejects empty cart",
			policy:      platform.PolicyStrict,
			userID:      1,
			expectedErr: model.ErrEmptyCart,
		},
		{
			name:   "strict rejects checkout beyond stock",
			policy: platform.PolicyStrict,
			userID: 1,
			setup: func(t *testing.T, s *services) {
				_, err := s.users.AddToCart(context.Background(), 1, &model.CartItemRequest{ProductID: 1, Quantity: 11})
				require.NoError(t, err)
			},
			expectedErr: model.ErrInsufficientStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices(t, tt.policy)
			if tt.setup != nil {
				tt.setup(t, s)
			}

			order, err := s.orders.CreateOrder(context.Background(), tt.userID)

			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, order)
			assert.Empty(t, s.platform.Orders())
		})
	}
}

func TestOrderService_GetAndReceipt(t *testing.T) {
	s := newTestServices(t, platform.PolicyPermissive)
	ctx := context.Background()

	_, err := s.users.AddToCart(ctx, 2, &model.CartItemRequest{ProductID: 2, Quantity: 3})
	require.NoError(t, err)
	created, err := s.orders.CreateOrder(ctx, 2)
	require.NoError(t, err)

	order, err := s.orders.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Reference, order.Reference)

	receipt, err := s.orders.Receipt(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t,
		"1 order for user 2. Details: \n\tSmartphone (Quantity: 3, Cost: 1499.97, Stock: 17)\nTotal cost: 1499.97",
		receipt)

	orders, err := s.orders.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	_, err = s.orders.GetByID(ctx, 99)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)

	receipt, err = s.orders.Receipt(ctx, 99)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
	assert.Empty(t, receipt)
}
