// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/stockroom/internal/core/domain"
	"github.com/ammerola/stockroom/internal/core/services"
	"github.com/ammerola/stockroom/internal/pkg/config"
)

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// LoadTestConfig returns a configuration suitable for tests
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "stockroom-test",
			Environment: "test",
			Version:     "test",
			LogLevel:    "error",
			LogFormat:   "text",
			LogOutput:   "stderr",
		},
		Console: config.ConsoleConfig{
			Prompt: "> ",
			Color:  false,
		},
	}
}

// CreateTestProduct creates a valid test product
func CreateTestProduct(overrides ...func(*domain.Product)) *domain.Product {
	product := &domain.Product{
		Name:            "Test Product",
		QuantityInStock: 1,
		Price:           decimal.RequireFromString("1.23"),
	}

	for _, override := range overrides {
		override(product)
	}

	return product
}

// CreateTestProducts creates multiple valid test products
func CreateTestProducts(count int) []domain.Product {
	products := make([]domain.Product, count)
	for i := 0; i < count; i++ {
		products[i] = *CreateTestProduct(func(p *domain.Product) {
			p.Name = fmt.Sprintf("Test Product %d", i+1)
			p.QuantityInStock = i + 1
			p.Price = decimal.NewFromInt(int64(10 * (i + 1)))
		})
	}
	return products
}

// SeedInventory adds products to a fresh inventory manager and fails the
// test if any of them is rejected
func SeedInventory(t testing.TB, products ...domain.Product) *services.InventoryManager {
	t.Helper()

	manager := services.NewInventoryManager(TestLogger())
	ctx := context.Background()
	for _, p := range products {
		outcome := manager.AddNewProduct(ctx, p.Name, p.QuantityInStock, p.Price)
		require.True(t, outcome.OK(), "seeding %q: %s", p.Name, outcome.Message)
	}
	return manager
}
