// internal/core/domain/outcome.go
package domain

import "github.com/shopspring/decimal"

// OutcomeKind classifies the result of an inventory operation
type OutcomeKind string

const (
	OutcomeSuccess          OutcomeKind = "success"
	OutcomeValidationFailed OutcomeKind = "validation_failed"
	OutcomeNotFound         OutcomeKind = "not_found"
	OutcomeInvalidQuantity  OutcomeKind = "invalid_quantity"
)

// Outcome messages reported by the inventory manager
const (
	MsgProductAdded     = "Product added successfully."
	MsgProductRemoved   = "Product removed successfully."
	MsgProductUpdated   = "Product updated successfully."
	MsgProductNotFound  = "Product not found, please try again."
	MsgNegativeQuantity = "Quantity should not be less than 0"
	MsgAddFailedPrefix  = "Failed to add product: "
	MsgTotalValuePrefix = "Total value of inventory: "
)

// Outcome is the structured result of an inventory operation
type Outcome struct {
	Kind       OutcomeKind     `json:"kind"`
	Message    string          `json:"message"`
	ProductID  int             `json:"product_id,omitempty"`
	Violations []Violation     `json:"violations,omitempty"`
	Total      decimal.Decimal `json:"total"`
}

// OK reports whether the operation succeeded
func (o Outcome) OK() bool {
	return o.Kind == OutcomeSuccess
}

func (o Outcome) String() string {
	return o.Message
}

// Success builds a successful outcome
func Success(msg string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Message: msg}
}

// NotFound builds the outcome for an unknown product id
func NotFound(id int) Outcome {
	return Outcome{Kind: OutcomeNotFound, Message: MsgProductNotFound, ProductID: id}
}

// InvalidQuantity builds the outcome for a negative quantity update
func InvalidQuantity(id int) Outcome {
	return Outcome{Kind: OutcomeInvalidQuantity, Message: MsgNegativeQuantity, ProductID: id}
}

// ValidationFailed builds the outcome for a product that failed validation
func ValidationFailed(violations []Violation) Outcome {
	return Outcome{
		Kind:       OutcomeValidationFailed,
		Message:    MsgAddFailedPrefix + JoinViolations(violations),
		Violations: violations,
	}
}
