package promo

import (
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
)

// Validator validates a promo code against a set of cart items and
// returns the computed discount.
type Validator interface {
	Validate(code string, items []Item) (*Discount, error)
}

// SetValidator implements Validator over a fixed in-memory rule set.
// The storefront ships with a handful of static promo rules; there is
// no persistence or usage accounting behind them.
type SetValidator struct {
	rules map[string]*Rule
	clock clockwork.Clock
}

// NewSetValidator builds a SetValidator from the given rules. Codes
// are matched case-insensitively.
func NewSetValidator(clock clockwork.Clock, rules ...Rule) *SetValidator {
	byCode := make(map[string]*Rule, len(rules))
	for i := range rules {
		byCode[strings.ToUpper(rules[i].Code)] = &rules[i]
	}
	return &SetValidator{rules: byCode, clock: clock}
}

// Validate looks up the rule for code, checks its validity window,
// and applies it to the items.
func (v *SetValidator) Validate(code string, items []Item) (*Discount, error) {
	rule, ok := v.rules[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, ErrInvalidCode
	}

	now := v.clock.Now()
	if rule.ValidFrom != nil && now.Before(*rule.ValidFrom) {
		return nil, ErrExpired
	}
	if rule.ValidUntil != nil && now.After(*rule.ValidUntil) {
		return nil, ErrExpired
	}

	d, err := Apply(rule, items)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DefaultRules returns the promo codes the storefront honours out of
// the box.
func DefaultRules() []Rule {
	return []Rule{
		{
			Code:        "HAPPYHOURS",
			Type:        TypePercentage,
			Value:       decimal.NewFromInt(18),
			Description: "Happy Hours: 18% off entire order",
		},
		{
			Code:        "BUYGETONE",
			Type:        TypeFreeLowest,
			MinItems:    2,
			Description: "Buy one get one: lowest priced item free",
		},
	}
}
