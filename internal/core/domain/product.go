// internal/core/domain/product.go
package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product represents a single stock-keeping unit held by the inventory
type Product struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	QuantityInStock int             `json:"quantity_in_stock"`
	Price           decimal.Decimal `json:"price"`
}

// Violation describes one field failing its validity constraint
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v Violation) String() string {
	return v.Message
}

// productCheck returns a violation when the product breaks one rule
type productCheck func(p *Product) *Violation

// productChecks run in order; each yields at most one violation.
var productChecks = []productCheck{
	checkName,
	checkQuantity,
	checkPrice,
}

func checkName(p *Product) *Violation {
	if strings.TrimSpace(p.Name) == "" {
		return &Violation{Field: "name", Message: "name is required"}
	}
	return nil
}

func checkQuantity(p *Product) *Violation {
	if p.QuantityInStock < 0 {
		return &Violation{Field: "quantity_in_stock", Message: "quantity_in_stock cannot be negative"}
	}
	return nil
}

func checkPrice(p *Product) *Violation {
	if p.Price.IsNegative() {
		return &Violation{Field: "price", Message: "price cannot be negative"}
	}
	return nil
}

// Validate performs domain validation on the product and returns every
// violated constraint. An empty result means the product is valid.
func (p *Product) Validate() []Violation {
	var violations []Violation
	for _, check := range productChecks {
		if v := check(p); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}

// IsValid reports whether the product satisfies all field constraints
func (p *Product) IsValid() bool {
	return len(p.Validate()) == 0
}

// Value returns the stock value of the product (quantity * price)
func (p *Product) Value() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.QuantityInStock)))
}

// Scale returns the number of fractional digits carried by the price
func (p *Product) Scale() int32 {
	if exp := p.Price.Exponent(); exp < 0 {
		return -exp
	}
	return 0
}

// JoinViolations renders violations as a single human-readable line
func JoinViolations(violations []Violation) string {
	msgs := make([]string, len(violations))
	for i, v := range violations {
		msgs[i] = v.Message
	}
	return strings.Join(msgs, "; ")
}
