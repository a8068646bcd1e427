// Package platform holds the in-memory aggregate of users, products and
// orders, and the operations that span them: checkout, catalogue queries and
// recommendations.
//
// A Platform is not safe for concurrent use. Callers sharing one across
// goroutines must serialise access themselves.
package platform

import (
	"time"

	"mini-shop/internal/model"
	"mini-shop/internal/repository"

	"github.com/rs/zerolog"
)

// Platform is the aggregate root for users, products and orders.
type Platform struct {
	users    *repository.Registry[int, *model.User]
	products *repository.Registry[int, *model.Product]
	orders   *repository.Registry[int, *model.Order]

	lastOrderID int
	policy      Policy
	now         func() time.Time
	logger      zerolog.Logger
}

// Option configures a Platform.
type Option func(*Platform)

// WithPolicy sets the error policy. The default is PolicyPermissive.
func WithPolicy(policy Policy) Option {
	return func(p *Platform) {
		p.policy = policy
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Platform) {
		p.logger = logger.With().Str("component", "platform").Logger()
	}
}

// WithClock sets the time source used to stamp new orders.
func WithClock(now func() time.Time) Option {
	return func(p *Platform) {
		p.now = now
	}
}

// New creates an empty platform.
func New(opts ...Option) *Platform {
	p := &Platform{
		users:    repository.NewRegistry[int, *model.User](),
		products: repository.NewRegistry[int, *model.Product](),
		orders:   repository.NewRegistry[int, *model.Order](),
		policy:   PolicyPermissive,
		now:      time.Now,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Policy returns the platform's error policy.
func (p *Platform) Policy() Policy {
	return p.policy
}

// AddUser registers user, replacing any user with the same ID.
func (p *Platform) AddUser(user *model.User) {
	replaced := p.users.Put(user.ID, user)
	p.logger.Debug().
		Int("user_id", user.ID).
		Bool("replaced", replaced).
		Msg("user registered")
}

// AddProduct registers product, replacing any product with the same ID.
func (p *Platform) AddProduct(product *model.Product) {
	replaced := p.products.Put(product.ID, product)
	p.logger.Debug().
		Int("product_id", product.ID).
		Bool("replaced", replaced).
		Msg("product registered")
}

// User retrieves a user by ID.
func (p *Platform) User(id int) (*model.User, bool) {
	return p.users.Get(id)
}

// Product retrieves a product by ID.
func (p *Platform) Product(id int) (*model.Product, bool) {
	return p.products.Get(id)
}

// Order retrieves an order by ID.
func (p *Platform) Order(id int) (*model.Order, bool) {
	return p.orders.Get(id)
}

// Users returns every registered user.
func (p *Platform) Users() []*model.User {
	return p.users.Values()
}

// Orders returns every order in ID order.
func (p *Platform) Orders() []*model.Order {
	return p.orders.Values()
}

// OrdersByUser returns the orders placed by user in ID order.
func (p *Platform) OrdersByUser(user *model.User) []*model.Order {
	var orders []*model.Order
	p.orders.Each(func(_ int, o *model.Order) bool {
		if o.UserID == user.ID {
			orders = append(orders, o)
		}
		return true
	})
	return orders
}

// CreateOrder turns the user's cart into an order. Cart lines are resolved
// against the catalogue by ID. Each ordered product has its stock reduced by
// the ordered quantity and the cart is emptied.
//
// Under PolicyStrict the cart is checked first and a *model.ValidationError
// is returned without touching stock, cart or orders. Under PolicyPermissive
// CreateOrder never fails, and stock may go negative.
func (p *Platform) CreateOrder(user *model.User) (*model.Order, error) {
	if user.Cart == nil {
		user.Cart = model.NewCart()
	}
	cartLines := user.Cart.Lines()
	for i, l := range cartLines {
		if current, ok := p.products.Get(l.Product.ID); ok {
			cartLines[i].Product = current
		}
	}

	if p.policy == PolicyStrict {
		if err := validateCheckout(cartLines); err != nil {
			p.logger.Warn().
				Err(err).
				Int("user_id", user.ID).
				Msg("checkout rejected")
			return nil, err
		}
	}

	lines := make([]model.OrderLine, len(cartLines))
	for i, l := range cartLines {
		l.Product.Stock -= l.Quantity
		lines[i] = model.OrderLine{Product: l.Product, Quantity: l.Quantity}
	}

	p.lastOrderID++
	order := model.NewOrder(p.lastOrderID, user.ID, lines, p.now())
	p.orders.Put(order.ID, order)

	user.Cart.Clear()

	p.logger.Info().
		Int("order_id", order.ID).
		Str("reference", order.Reference.String()).
		Int("user_id", user.ID).
		Int("line_count", len(lines)).
		Float64("total_price", order.TotalPrice).
		Msg("order created")

	return order, nil
}

// validateCheckout applies the strict checkout rules to a cart snapshot.
func validateCheckout(lines []model.CartLine) error {
	if len(lines) == 0 {
		return model.ErrEmptyCart
	}

	for _, l := range lines {
		if l.Quantity <= 0 {
			return model.NewValidationError(model.ErrCodeInvalidQuantity,
				model.ErrInvalidQuantity.Message, l.Product.ID)
		}
		if l.Quantity > l.Product.Stock {
			return model.NewValidationError(model.ErrCodeInsufficientStock,
				model.ErrInsufficientStock.Message, l.Product.ID)
		}
	}

	return nil
}
