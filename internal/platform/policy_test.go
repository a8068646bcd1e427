package platform

import (
	"errors"
	"testing"

	"mini-shop/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Policy
		expectError bool
	}{
		{name: "Permissive", input: "permissive", expected: PolicyPermissive},
		{name: "Strict", input: "strict", expected: PolicyStrict},
		{name: "Unknown", input: "lenient", expectError: true},
		{name: "Empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, err := ParsePolicy(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid policy")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, policy)
			assert.Equal(t, tt.input, policy.String())
		})
	}

	assert.Equal(t, "Policy(7)", Policy(7).String())
}

func TestPlatform_RemoveFromCart_Boundary(t *testing.T) {
	tests := []struct {
		name         string
		policy       Policy
		expectedErr  error
		expectedQty  int
		expectedLine bool
	}{
		{
			name:         "Permissive stores a negative quantity",
			policy:       PolicyPermissive,
			expectedQty:  -2,
			expectedLine: true,
		},
		{
			name:         "Strict rejects the removal",
			policy:       PolicyStrict,
			expectedErr:  model.ErrCartUnderflow,
			expectedQty:  1,
			expectedLine: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWalkthrough(t, WithPolicy(tt.policy))
			require.NoError(t, w.platform.AddToCart(w.user1, w.mouse, 1))

			err := w.platform.RemoveFromCart(w.user1, w.mouse, 3)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expectedQty, w.user1.Cart.Quantity(w.mouse))
			assert.Equal(t, tt.expectedLine, w.user1.Cart.Contains(w.mouse))
		})
	}
}

func TestPlatform_RemoveFromCart_ZeroLine(t *testing.T) {
	tests := []struct {
		name         string
		policy       Policy
		expectedLine bool
	}{
		{name: "Permissive keeps the zero line", policy: PolicyPermissive, expectedLine: true},
		{name: "Strict prunes the zero line", policy: PolicyStrict, expectedLine: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWalkthrough(t, WithPolicy(tt.policy))
			require.NoError(t, w.platform.AddToCart(w.user1, w.mouse, 2))
			require.NoError(t, w.platform.AddToCart(w.user1, w.laptop, 1))

			require.NoError(t, w.platform.RemoveFromCart(w.user1, w.mouse, 2))

			assert.Equal(t, tt.expectedLine, w.user1.Cart.Contains(w.mouse))
			assert.Equal(t, 1, w.user1.Cart.Quantity(w.laptop))
		})
	}
}

func TestPlatform_CartQuantityValidation(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		op     func(w *walkthrough) error
		strict bool
	}{
		{
			name:   "Add zero",
			policy: PolicyStrict,
			op:     func(w *walkthrough) error { return w.platform.AddToCart(w.user1, w.mouse, 0) },
			strict: true,
		},
		{
			name:   "Add negative",
			policy: PolicyStrict,
			op:     func(w *walkthrough) error { return w.platform.AddToCart(w.user1, w.mouse, -1) },
			strict: true,
		},
		{
			name:   "Remove negative",
			policy: PolicyStrict,
			op:     func(w *walkthrough) error { return w.platform.RemoveFromCart(w.user1, w.mouse, -1) },
			strict: true,
		},
		{
			name:   "Permissive add negative",
			policy: PolicyPermissive,
			op:     func(w *walkthrough) error { return w.platform.AddToCart(w.user1, w.mouse, -1) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWalkthrough(t, WithPolicy(tt.policy))

			err := tt.op(w)

			if tt.strict {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidQuantity)
				assert.Equal(t, 0, w.user1.Cart.Len())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, -1, w.user1.Cart.Quantity(w.mouse))
		})
	}
}

func TestPlatform_CreateOrder_Strict(t *testing.T) {
	tests := []struct {
		name        string
		fill        func(w *walkthrough)
		expectedErr error
		productID   int
	}{
		{
			name:        "Empty cart",
			fill:        func(w *walkthrough) {},
			expectedErr: model.ErrEmptyCart,
		},
		{
			name: "Quantity exceeds stock",
			fill: func(w *walkthrough) {
				w.user1.AddToCart(w.mouse, 2)
				w.user1.AddToCart(w.laptop, 11)
			},
			expectedErr: model.ErrInsufficientStock,
			productID:   1,
		},
		{
			name: "Zero quantity line",
			fill: func(w *walkthrough) {
				w.user1.AddToCart(w.laptop, 1)
				w.user1.AddToCart(w.mouse, 1)
				w.user1.RemoveFromCart(w.mouse, 1)
			},
			expectedErr: model.ErrInvalidQuantity,
			productID:   3,
		},
		{
			name: "Negative quantity line",
			fill: func(w *walkthrough) {
				w.user1.RemoveFromCart(w.smartphone, 2)
			},
			expectedErr: model.ErrInvalidQuantity,
			productID:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWalkthrough(t, WithPolicy(PolicyStrict))
			tt.fill(w)
			cartBefore := w.user1.Cart.Lines()

			order, err := w.platform.CreateOrder(w.user1)

			require.Error(t, err)
			assert.Nil(t, order)
			assert.ErrorIs(t, err, tt.expectedErr)

			var vErr *model.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.productID, vErr.ProductID)

			// Nothing is mutated on rejection.
			assert.Equal(t, 10, w.laptop.Stock)
			assert.Equal(t, 20, w.smartphone.Stock)
			assert.Equal(t, 50, w.mouse.Stock)
			assert.Equal(t, cartBefore, w.user1.Cart.Lines())
			assert.Empty(t, w.platform.Orders())
		})
	}
}

func TestPlatform_CreateOrder_StrictSuccess(t *testing.T) {
	w := newWalkthrough(t, WithPolicy(PolicyStrict))
	require.NoError(t, w.platform.AddToCart(w.user1, w.laptop, 10))

	order, err := w.platform.CreateOrder(w.user1)

	require.NoError(t, err)
	assert.Equal(t, 1, order.ID)
	assert.Equal(t, 0, w.laptop.Stock)
	assert.Equal(t, 0, w.user1.Cart.Len())

	// A rejected checkout does not consume an order ID.
	require.NoError(t, w.platform.AddToCart(w.user1, w.laptop, 1))
	_, err = w.platform.CreateOrder(w.user1)
	require.ErrorIs(t, err, model.ErrInsufficientStock)

	require.NoError(t, w.platform.RemoveFromCart(w.user1, w.laptop, 1))
	require.NoError(t, w.platform.AddToCart(w.user1, w.mouse, 1))
	next, err := w.platform.CreateOrder(w.user1)
	require.NoError(t, err)
	assert.Equal(t, 2, next.ID)
}
