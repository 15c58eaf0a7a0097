package benchmarks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ammerola/stockroom/internal/core/services"
)

func benchLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func seededManager(b *testing.B, n int) *services.InventoryManager {
	b.Helper()

	manager := services.NewInventoryManager(benchLogger())
	ctx := context.Background()
	for i := 0; i < n; i++ {
		outcome := manager.AddNewProduct(ctx, fmt.Sprintf("Benchmark Product %d", i), i%50, decimal.New(int64(100+i), -2))
		if !outcome.OK() {
			b.Fatalf("seeding product %d: %s", i, outcome.Message)
		}
	}
	return manager
}

func BenchmarkInventoryOperations(b *testing.B) {
	ctx := context.Background()
	price := decimal.RequireFromString("19.99")

	b.Run("Add", func(b *testing.B) {
		manager := services.NewInventoryManager(benchLogger())
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			manager.AddNewProduct(ctx, "Benchmark Product", 1, price)
		}
	})

	b.Run("Update", func(b *testing.B) {
		manager := seededManager(b, 100)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			manager.UpdateProduct(ctx, i%100+1, i)
		}
	})

	b.Run("AddRemove", func(b *testing.B) {
		manager := seededManager(b, 100)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			outcome := manager.AddNewProduct(ctx, "Transient", 1, price)
			manager.RemoveProduct(ctx, outcome.ProductID)
		}
	})
}

func BenchmarkGetTotalValue(b *testing.B) {
	ctx := context.Background()

	for _, size := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("products_%d", size), func(b *testing.B) {
			manager := seededManager(b, size)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				manager.GetTotalValue(ctx)
			}
		})
	}
}
