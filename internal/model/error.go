package model

import "fmt"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeInvalidID         = "INVALID_ID"
	ErrCodeInvalidSortKey    = "INVALID_SORT_KEY"
	ErrCodeValidationFailed  = "VALIDATION_FAILED"
	ErrCodeUserNotFound      = "USER_NOT_FOUND"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	ErrCodeEmptyCart         = "EMPTY_CART"
	ErrCodeCartUnderflow     = "CART_UNDERFLOW"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// Domain errors for lookups
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrUserNotFound    = NewDomainError(ErrCodeUserNotFound, "User not found")
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound   = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidSortKey  = NewDomainError(ErrCodeInvalidSortKey, "Sort must be one of price, name or stock")
)

// ValidationError is returned when the strict policy rejects a cart or order
// operation. Two validation errors match under errors.Is when their codes do.
type ValidationError struct {
	Code      string
	Message   string
	ProductID int
}

func (e *ValidationError) Error() string {
	if e.ProductID != 0 {
		return fmt.Sprintf("product %d: %s", e.ProductID, e.Message)
	}
	return e.Message
}

// Is matches validation errors by code.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Code == e.Code
}

// NewValidationError creates a validation error for the given product.
func NewValidationError(code, message string, productID int) *ValidationError {
	return &ValidationError{
		Code:      code,
		Message:   message,
		ProductID: productID,
	}
}

// Sentinel validation errors, for use with errors.Is
var (
	ErrInvalidQuantity   = NewValidationError(ErrCodeInvalidQuantity, "Quantity must be greater than zero", 0)
	ErrInsufficientStock = NewValidationError(ErrCodeInsufficientStock, "Requested quantity exceeds available stock", 0)
	ErrEmptyCart         = NewValidationError(ErrCodeEmptyCart, "Cart is empty", 0)
	ErrCartUnderflow     = NewValidationError(ErrCodeCartUnderflow, "Cannot remove more than the cart holds", 0)
)
