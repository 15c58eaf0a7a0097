// internal/core/services/inventory.go
package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ammerola/stockroom/internal/core/domain"
	"github.com/ammerola/stockroom/internal/core/ports"
)

// InventoryManager holds the in-memory product collection and enforces the
// stock rules around it
type InventoryManager struct {
	mu       sync.RWMutex
	products map[int]*domain.Product
	order    []int // insertion order of ids
	nextID   int
	logger   *slog.Logger
}

// Statically assert that *InventoryManager implements the InventoryManager interface.
var _ ports.InventoryManager = (*InventoryManager)(nil)

// NewInventoryManager creates an empty inventory
func NewInventoryManager(logger *slog.Logger) *InventoryManager {
	return &InventoryManager{
		products: make(map[int]*domain.Product),
		nextID:   1,
		logger:   logger.With(slog.String("service", "inventory")),
	}
}

// AddNewProduct validates and stores a new product under the next id.
// Ids are only consumed by admitted products.
func (m *InventoryManager) AddNewProduct(ctx context.Context, name string, quantity int, price decimal.Decimal) domain.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	product := &domain.Product{
		ID:              m.nextID,
		Name:            name,
		QuantityInStock: quantity,
		Price:           price,
	}

	if violations := product.Validate(); len(violations) > 0 {
		m.logger.WarnContext(ctx, "rejected invalid product",
			slog.String("name", name),
			slog.String("violations", domain.JoinViolations(violations)))
		return domain.ValidationFailed(violations)
	}

	m.products[product.ID] = product
	m.order = append(m.order, product.ID)
	m.nextID++

	m.logger.InfoContext(ctx, "added product",
		slog.Int("product_id", product.ID),
		slog.String("name", product.Name),
		slog.Int("quantity", product.QuantityInStock),
		slog.String("price", product.Price.String()))

	outcome := domain.Success(domain.MsgProductAdded)
	outcome.ProductID = product.ID
	return outcome
}

// RemoveProduct permanently deletes the product with the given id
func (m *InventoryManager) RemoveProduct(ctx context.Context, id int) domain.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		m.logger.WarnContext(ctx, "product not found", slog.Int("product_id", id))
		return domain.NotFound(id)
	}

	delete(m.products, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	m.logger.InfoContext(ctx, "removed product", slog.Int("product_id", id))

	outcome := domain.Success(domain.MsgProductRemoved)
	outcome.ProductID = id
	return outcome
}

// UpdateProduct sets the stock quantity of an existing product
func (m *InventoryManager) UpdateProduct(ctx context.Context, id int, newQuantity int) domain.Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, ok := m.products[id]
	if !ok {
		m.logger.WarnContext(ctx, "product not found", slog.Int("product_id", id))
		return domain.NotFound(id)
	}

	if newQuantity < 0 {
		m.logger.WarnContext(ctx, "rejected negative quantity",
			slog.Int("product_id", id),
			slog.Int("quantity", newQuantity))
		return domain.InvalidQuantity(id)
	}

	previous := product.QuantityInStock
	product.QuantityInStock = newQuantity

	m.logger.InfoContext(ctx, "updated product quantity",
		slog.Int("product_id", id),
		slog.Int("previous_quantity", previous),
		slog.Int("quantity", newQuantity))

	outcome := domain.Success(domain.MsgProductUpdated)
	outcome.ProductID = id
	return outcome
}

// GetTotalValue sums quantity * price over every stored product. The total
// is rendered with the widest fractional scale among the stored prices.
func (m *InventoryManager) GetTotalValue(ctx context.Context) domain.Outcome {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := decimal.Zero
	var scale int32
	for _, id := range m.order {
		product := m.products[id]
		total = total.Add(product.Value())
		if s := product.Scale(); s > scale {
			scale = s
		}
	}

	m.logger.DebugContext(ctx, "calculated inventory value",
		slog.Int("products", len(m.order)),
		slog.String("total", total.String()))

	outcome := domain.Success(domain.MsgTotalValuePrefix + total.StringFixed(scale))
	outcome.Total = total
	return outcome
}

// ListProducts returns a copy of the stored products in insertion order
func (m *InventoryManager) ListProducts(ctx context.Context) []domain.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()

	products := make([]domain.Product, 0, len(m.order))
	for _, id := range m.order {
		products = append(products, *m.products[id])
	}
	return products
}

// Len returns the number of stored products
func (m *InventoryManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}
