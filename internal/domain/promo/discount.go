package promo

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Apply calculates the discount for the given rule and cart items.
// It returns ErrInvalidCode when the cart does not satisfy the rule's
// minimum item count requirement.
func Apply(rule *Rule, items []Item) (Discount, error) {
	if rule.MinItems > 0 && totalQuantity(items) < rule.MinItems {
		return Discount{}, ErrInvalidCode
	}

	switch rule.Type {
	case TypePercentage:
		amount := subtotal(items).Mul(rule.Value).Div(hundred)
		return newDiscount(rule, amount), nil
	case TypeFixed:
		amount := decimal.Min(rule.Value, subtotal(items))
		return newDiscount(rule, amount), nil
	case TypeFreeLowest:
		return newDiscount(rule, lowestUnitPrice(items)), nil
	default:
		return Discount{}, errors.Errorf("unsupported promo type: %q", rule.Type)
	}
}

// newDiscount clamps the amount at zero and rounds it to cents.
func newDiscount(rule *Rule, amount decimal.Decimal) Discount {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	return Discount{
		Amount:      amount.Round(2),
		Description: rule.Description,
	}
}

func subtotal(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

func totalQuantity(items []Item) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

// lowestUnitPrice returns the lowest unit price among the items, or
// zero when items is empty.
func lowestUnitPrice(items []Item) decimal.Decimal {
	if len(items) == 0 {
		return decimal.Zero
	}
	lowest := items[0].Price
	for _, item := range items[1:] {
		if item.Price.LessThan(lowest) {
			lowest = item.Price
		}
	}
	return lowest
}
