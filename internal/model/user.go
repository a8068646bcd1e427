package model

import "fmt"

// User represents a shopper account with an in-memory cart.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Cart     *Cart  `json:"-"`
}

// NewUser creates a new user. A nil cart is replaced with an empty one.
func NewUser(id int, username string, cart *Cart) *User {
	if cart == nil {
		cart = NewCart()
	}
	return &User{
		ID:       id,
		Username: username,
		Cart:     cart,
	}
}

// AddToCart adds quantity units of product to the cart without checking stock.
func (u *User) AddToCart(product *Product, quantity int) {
	u.cart().Add(product, quantity)
}

// RemoveFromCart subtracts quantity units of product from the cart. The
// resulting quantity may be zero or negative.
func (u *User) RemoveFromCart(product *Product, quantity int) {
	u.cart().Remove(product, quantity)
}

func (u *User) String() string {
	return fmt.Sprintf("User: id = %d, username = %s", u.ID, u.Username)
}

func (u *User) cart() *Cart {
	if u.Cart == nil {
		u.Cart = NewCart()
	}
	return u.Cart
}

// UserRequest represents the request payload for registering a user.
type UserRequest struct {
	ID       int    `json:"id"`
	Username string `json:"username" validate:"required"`
}

// CartItemRequest represents a cart addition or removal.
type CartItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity" validate:"required"`
}

// CartItemResponse represents a single cart line in API responses.
type CartItemResponse struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartResponse represents the response payload for a user's cart.
type CartResponse struct {
	UserID int                `json:"userId"`
	Items  []CartItemResponse `json:"items"`
}

// NewCartResponse copies a user's cart into its response payload.
func NewCartResponse(u *User) *CartResponse {
	lines := u.cart().Lines()
	items := make([]CartItemResponse, len(lines))
	for i, l := range lines {
		items[i] = CartItemResponse{Product: *l.Product, Quantity: l.Quantity}
	}
	return &CartResponse{UserID: u.ID, Items: items}
}
