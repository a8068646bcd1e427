package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderLine is a frozen cart line. Product still points at the live catalogue
// entry, so its stock reflects later changes.
type OrderLine struct {
	Product  *Product
	Quantity int
}

// Cost returns the line cost at the product's current price.
func (l OrderLine) Cost() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Order is an immutable priced snapshot of a cart at checkout.
type Order struct {
	ID         int
	UserID     int
	Lines      []OrderLine
	TotalPrice float64
	Reference  uuid.UUID
	CreatedAt  time.Time
}

// NewOrder creates an order and fixes its total price from the given lines.
func NewOrder(id, userID int, lines []OrderLine, createdAt time.Time) *Order {
	var total float64
	for _, l := range lines {
		total += l.Cost()
	}

	return &Order{
		ID:         id,
		UserID:     userID,
		Lines:      lines,
		TotalPrice: total,
		Reference:  uuid.New(),
		CreatedAt:  createdAt,
	}
}

// Products returns the products of every order line, in line order.
func (o *Order) Products() []*Product {
	products := make([]*Product, len(o.Lines))
	for i, l := range o.Lines {
		products[i] = l.Product
	}
	return products
}

func (o *Order) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d order for user %d. Details: ", o.ID, o.UserID)

	for i, l := range o.Lines {
		fmt.Fprintf(&b, "\n\t%s (Quantity: %d, Cost: %s, Stock: %d)",
			l.Product.Name, l.Quantity, FormatMoney(l.Cost()), l.Product.Stock)
		if i < len(o.Lines)-1 {
			b.WriteByte(',')
		}
	}

	fmt.Fprintf(&b, "\nTotal cost: %s", FormatMoney(o.TotalPrice))
	return b.String()
}

// OrderLineResponse represents a single order line in API responses.
type OrderLineResponse struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Cost     float64 `json:"cost"`
}

// OrderResponse represents the response payload for an order.
type OrderResponse struct {
	ID         int                 `json:"id"`
	Reference  uuid.UUID           `json:"reference"`
	UserID     int                 `json:"userId"`
	Lines      []OrderLineResponse `json:"lines"`
	TotalPrice float64             `json:"totalPrice"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// NewOrderResponse copies an order into its response payload.
func NewOrderResponse(o *Order) *OrderResponse {
	lines := make([]OrderLineResponse, len(o.Lines))
	for i, l := range o.Lines {
		lines[i] = OrderLineResponse{
			Product:  *l.Product,
			Quantity: l.Quantity,
			Cost:     l.Cost(),
		}
	}

	return &OrderResponse{
		ID:         o.ID,
		Reference:  o.Reference,
		UserID:     o.UserID,
		Lines:      lines,
		TotalPrice: o.TotalPrice,
		CreatedAt:  o.CreatedAt,
	}
}
