// cmd/inventory/main.go
package main

import (
	"log/slog"
	"os"

	"github.com/ammerola/stockroom/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		slog.Error("inventory exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
