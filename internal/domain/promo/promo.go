package promo

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Type enumerates the supported promo discount strategies.
type Type string

const (
	// TypePercentage applies a percentage-based discount to the subtotal.
	TypePercentage Type = "percentage"
	// TypeFixed applies a fixed monetary discount capped at the subtotal.
	TypeFixed Type = "fixed"
	// TypeFreeLowest removes the cost of the cheapest item in the cart.
	TypeFreeLowest Type = "free_lowest"
)

var (
	// ErrInvalidCode is returned when a promo code is unknown or the
	// cart does not satisfy the rule's minimum item requirement.
	ErrInvalidCode = errors.New("invalid promo code")
	// ErrExpired is returned when a promo code is outside its valid
	// time window.
	ErrExpired = errors.New("promo code expired")
)

// Rule defines a promo code's discount behaviour and eligibility
// constraints.
type Rule struct {
	Code        string
	Type        Type
	Value       decimal.Decimal
	MinItems    int
	Description string
	ValidFrom   *time.Time
	ValidUntil  *time.Time
}

// Discount holds the computed discount amount and a human-readable
// description for display on the receipt.
type Discount struct {
	Amount      decimal.Decimal
	Description string
}

// Item is a cart line for discount calculation purposes.
type Item struct {
	ProductID string
	Price     decimal.Decimal
	Quantity  int
}
