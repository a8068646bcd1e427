package platform

import "mini-shop/internal/model"

// similarLimit caps how many products findSimilarProducts returns.
const similarLimit = 2

// RecommendProducts suggests products for user. Each product in the user's
// cart, then each product of each past order, contributes its similar
// products; the pool is deduplicated by value, keeping first occurrences.
func (p *Platform) RecommendProducts(user *model.User) []*model.Product {
	var pool []*model.Product

	if user.Cart != nil {
		for _, l := range user.Cart.Lines() {
			pool = append(pool, p.findSimilarProducts(l.Product)...)
		}
	}

	for _, order := range p.OrdersByUser(user) {
		for _, product := range order.Products() {
			pool = append(pool, p.findSimilarProducts(product)...)
		}
	}

	seen := make(map[model.ProductKey]struct{}, len(pool))
	recommended := make([]*model.Product, 0, len(pool))
	for _, product := range pool {
		key := product.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		recommended = append(recommended, product)
	}

	p.logger.Debug().
		Int("user_id", user.ID).
		Int("candidates", len(pool)).
		Int("recommended", len(recommended)).
		Msg("recommendations computed")

	return recommended
}

// findSimilarProducts returns the first catalogue products that differ from
// target, in catalogue order. It knows nothing about categories or
// co-purchases.
func (p *Platform) findSimilarProducts(target *model.Product) []*model.Product {
	similar := make([]*model.Product, 0, similarLimit)
	p.products.Each(func(_ int, product *model.Product) bool {
		if !product.Equal(target) {
			similar = append(similar, product)
		}
		return len(similar) < similarLimit
	})
	return similar
}
