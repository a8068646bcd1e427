// Package demo runs the reference shopping walkthrough against a Platform.
package demo

import (
	"bufio"
	"fmt"
	"io"

	"mini-shop/internal/model"
	"mini-shop/internal/platform"

	"github.com/rs/zerolog"
)

// Catalogue holds the users and products added by Seed.
type Catalogue struct {
	Andrii     *model.User
	Dima       *model.User
	Laptop     *model.Product
	Smartphone *model.Product
	Mouse      *model.Product
}

// Seed registers the walkthrough users and products on p.
func Seed(p *platform.Platform) *Catalogue {
	c := &Catalogue{
		Andrii:     model.NewUser(1, "Andrii", nil),
		Dima:       model.NewUser(2, "Dima", nil),
		Laptop:     model.NewProduct(1, "Laptop", 999.99, 10),
		Smartphone: model.NewProduct(2, "Smartphone", 499.99, 20),
		Mouse:      model.NewProduct(3, "Mouse", 199.99, 50),
	}

	p.AddUser(c.Andrii)
	p.AddUser(c.Dima)

	p.AddProduct(c.Laptop)
	p.AddProduct(c.Smartphone)
	p.AddProduct(c.Mouse)

	return c
}

// Run seeds a fresh permissive Platform, places two orders and writes the
// final state and the first user's recommendations to w.
func Run(w io.Writer, logger zerolog.Logger) error {
	p := platform.New(platform.WithLogger(logger))
	c := Seed(p)

	c.Andrii.AddToCart(c.Laptop, 2)
	c.Andrii.AddToCart(c.Smartphone, 1)
	c.Andrii.AddToCart(c.Mouse, 3)
	c.Andrii.RemoveFromCart(c.Mouse, 1)

	if _, err := p.CreateOrder(c.Andrii); err != nil {
		return fmt.Errorf("failed to create first order: %w", err)
	}

	c.Dima.AddToCart(c.Smartphone, 3)
	if _, err := p.CreateOrder(c.Dima); err != nil {
		return fmt.Errorf("failed to create second order: %w", err)
	}

	recommended := p.RecommendProducts(c.Andrii)

	out := bufio.NewWriter(w)

	fmt.Fprintln(out, "Final State:")
	fmt.Fprintln(out, "Users:")
	for _, u := range p.Users() {
		fmt.Fprintln(out, u)
	}

	fmt.Fprintln(out, "Products:")
	for _, product := range p.AvailableProducts() {
		fmt.Fprintln(out, product)
	}

	fmt.Fprintln(out, "Orders:")
	for _, o := range p.Orders() {
		fmt.Fprintln(out, o)
	}

	fmt.Fprintln(out, "Recommendations for User 1:")
	for _, product := range recommended {
		fmt.Fprintln(out, product)
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write walkthrough: %w", err)
	}

	logger.Info().
		Int("orders", len(p.Orders())).
		Int("recommendations", len(recommended)).
		Msg("walkthrough complete")

	return nil
}
