package model

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Product represents a catalogue line item.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// ProductKey is the comparable value identity of a product.
type ProductKey struct {
	ID    int
	Name  string
	Price float64
	Stock int
}

// NewProduct creates a new product. No field is validated.
func NewProduct(id int, name string, price float64, stock int) *Product {
	return &Product{
		ID:    id,
		Name:  name,
		Price: price,
		Stock: stock,
	}
}

// Less reports whether p sorts before other in the natural (price) order.
func (p *Product) Less(other *Product) bool {
	return p.Price < other.Price
}

// Key returns the value identity of the product at this moment.
func (p *Product) Key() ProductKey {
	return ProductKey{ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock}
}

// Equal reports whether both products hold the same id, name, price and stock.
func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Key() == other.Key()
}

func (p *Product) String() string {
	return fmt.Sprintf("Product: id = %d, name = %s, price = %s, stock = %d",
		p.ID, p.Name, FormatMoney(p.Price), p.Stock)
}

// FormatMoney renders an amount with two decimal places.
func FormatMoney(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', 2, 64)
	}
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// ProductRequest represents the request payload for adding a product.
type ProductRequest struct {
	ID    int     `json:"id"`
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}
