package platform

import (
	"cmp"
	"slices"
	"strings"

	"mini-shop/internal/model"
)

// AvailableProducts returns every catalogue product in catalogue order.
func (p *Platform) AvailableProducts() []*model.Product {
	return p.products.Values()
}

// ProductsSortedByPrice returns the catalogue sorted by ascending price.
func (p *Platform) ProductsSortedByPrice() []*model.Product {
	return p.sortedProducts(func(a, b *model.Product) int {
		return cmp.Compare(a.Price, b.Price)
	})
}

// ProductsSortedByName returns the catalogue sorted lexicographically by name.
func (p *Platform) ProductsSortedByName() []*model.Product {
	return p.sortedProducts(func(a, b *model.Product) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// ProductsSortedByStock returns the catalogue sorted by ascending stock.
func (p *Platform) ProductsSortedByStock() []*model.Product {
	return p.sortedProducts(func(a, b *model.Product) int {
		return cmp.Compare(a.Stock, b.Stock)
	})
}

// FilterProductsByStock returns the products holding at least minStock units.
func (p *Platform) FilterProductsByStock(minStock int) []*model.Product {
	products := make([]*model.Product, 0)
	p.products.Each(func(_ int, product *model.Product) bool {
		if product.Stock >= minStock {
			products = append(products, product)
		}
		return true
	})
	return products
}

func (p *Platform) sortedProducts(compare func(a, b *model.Product) int) []*model.Product {
	products := p.products.Values()
	slices.SortStableFunc(products, compare)
	return products
}
