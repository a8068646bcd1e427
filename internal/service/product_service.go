package service

import (
	"context"
	"errors"
	"fmt"

	"mini-shop/internal/model"
	"mini-shop/internal/platform"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	shop   *Shop
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(shop *Shop, logger zerolog.Logger) ProductService {
	return &productService{
		shop:   shop,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// Create registers a product, replacing any product with the same ID.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if req == nil {
		return nil, fmt.Errorf("product request is nil")
	}

	product := model.NewProduct(req.ID, req.Name, req.Price, req.Stock)

	err := s.shop.Do(ctx, func(p *platform.Platform) error {
		p.AddProduct(product)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	s.logger.Info().
		Int("product_id", product.ID).
		Str("name", product.Name).
		Msg("product added")

	created := *product
	return &created, nil
}

// GetAll lists the catalogue, optionally sorted and filtered by stock.
func (s *productService) GetAll(ctx context.Context, sortBy string, minStock *int) ([]model.Product, error) {
	var products []model.Product

	err := s.shop.Do(ctx, func(p *platform.Platform) error {
		var listed []*model.Product
		switch sortBy {
		case "":
			listed = p.AvailableProducts()
		case "price":
			listed = p.ProductsSortedByPrice()
		case "name":
			listed = p.ProductsSortedByName()
		case "stock":
			listed = p.ProductsSortedByStock()
		default:
			return model.ErrInvalidSortKey
		}

		if minStock != nil {
			allowed := make(map[*model.Product]struct{})
			for _, product := range p.FilterProductsByStock(*minStock) {
				allowed[product] = struct{}{}
			}
			filtered := listed[:0]
			for _, product := range listed {
				if _, ok := allowed[product]; ok {
					filtered = append(filtered, product)
				}
			}
			listed = filtered
		}

		products = copyProducts(listed)
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidSortKey) {
			s.logger.Warn().Str("sort", sortBy).Msg("invalid sort key")
			return nil, err
		}
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("sort", sortBy).
		Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int) (*model.Product, error) {
	var product model.Product

	err := s.shop.Do(ctx, func(p *platform.Platform) error {
		found, ok := p.Product(id)
		if !ok {
			return model.ErrProductNotFound
		}
		product = *found
		return nil
	})
	if err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			s.logger.Debug().Int("product_id", id).Msg("product not found")
			return nil, err
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}
