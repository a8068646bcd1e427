package platform

import (
	"fmt"

	"mini-shop/internal/model"
)

// Policy decides how the platform reacts to nonsensical cart and order input.
type Policy int

const (
	// PolicyPermissive accepts every request: stock and cart quantities may
	// go negative and zero lines stay in the cart.
	PolicyPermissive Policy = iota
	// PolicyStrict rejects non-positive quantities, removals beyond what the
	// cart holds and checkouts that exceed stock.
	PolicyStrict
)

func (p Policy) String() string {
	switch p {
	case PolicyPermissive:
		return "permissive"
	case PolicyStrict:
		return "strict"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts a policy name into a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "permissive":
		return PolicyPermissive, nil
	case "strict":
		return PolicyStrict, nil
	default:
		return 0, fmt.Errorf("invalid policy: %s (must be permissive or strict)", name)
	}
}

// AddToCart adds quantity units of product to the user's cart.
// Under PolicyStrict a non-positive quantity is rejected.
func (p *Platform) AddToCart(user *model.User, product *model.Product, quantity int) error {
	if p.policy == PolicyStrict && quantity <= 0 {
		p.logger.Warn().
			Int("user_id", user.ID).
			Int("product_id", product.ID).
			Int("quantity", quantity).
			Msg("invalid cart quantity")
		return model.NewValidationError(model.ErrCodeInvalidQuantity, model.ErrInvalidQuantity.Message, product.ID)
	}

	user.AddToCart(product, quantity)
	return nil
}

// RemoveFromCart removes quantity units of product from the user's cart.
// Under PolicyStrict a non-positive quantity or a removal beyond what the cart
// holds is rejected, and a line that reaches zero is dropped.
func (p *Platform) RemoveFromCart(user *model.User, product *model.Product, quantity int) error {
	if p.policy != PolicyStrict {
		user.RemoveFromCart(product, quantity)
		return nil
	}

	if quantity <= 0 {
		return model.NewValidationError(model.ErrCodeInvalidQuantity, model.ErrInvalidQuantity.Message, product.ID)
	}

	held := 0
	if user.Cart != nil {
		held = user.Cart.Quantity(product)
	}
	if quantity > held {
		p.logger.Warn().
			Int("user_id", user.ID).
			Int("product_id", product.ID).
			Int("quantity", quantity).
			Int("held", held).
			Msg("cart removal exceeds held quantity")
		return model.NewValidationError(model.ErrCodeCartUnderflow, model.ErrCartUnderflow.Message, product.ID)
	}

	user.RemoveFromCart(product, quantity)
	user.Cart.Prune()
	return nil
}
