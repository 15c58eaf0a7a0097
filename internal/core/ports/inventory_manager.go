// internal/core/ports/inventory_manager.go
package ports

import (
	"context"

	"github.com/ammerola/stockroom/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InventoryManager defines the application service port for inventory.
// This interface is implemented by the application service and consumed by
// the console.
type InventoryManager interface {
	AddNewProduct(ctx context.Context, name string, quantity int, price decimal.Decimal) domain.Outcome
	RemoveProduct(ctx context.Context, id int) domain.Outcome
	UpdateProduct(ctx context.Context, id int, newQuantity int) domain.Outcome
	GetTotalValue(ctx context.Context) domain.Outcome
	ListProducts(ctx context.Context) []domain.Product
}
