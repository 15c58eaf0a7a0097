// internal/console/console.go
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ammerola/stockroom/internal/core/ports"
	"github.com/ammerola/stockroom/internal/pkg/logger"
)

// ErrInvalidInput is returned when console text cannot be converted to the
// type an inventory operation expects
var ErrInvalidInput = errors.New("invalid input")

// MsgInvalidInput is shown to the user for any conversion failure
const MsgInvalidInput = "Invalid input, please try again."

type menuItem struct {
	key    string
	label  string
	action func(c *Console, ctx context.Context) error
}

var menu = []menuItem{
	{key: "1", label: "Add product", action: (*Console).addProduct},
	{key: "2", label: "Remove product", action: (*Console).removeProduct},
	{key: "3", label: "Update quantity", action: (*Console).updateProduct},
	{key: "4", label: "Total value", action: (*Console).totalValue},
	{key: "5", label: "List products", action: (*Console).listProducts},
	{key: "6", label: "Exit"},
}

// Options configures the console
type Options struct {
	Prompt string
	Color  bool
}

// Console is the interactive front end of the inventory manager. It owns
// all text parsing; the manager only ever receives typed arguments.
type Console struct {
	manager  ports.InventoryManager
	scanner  *bufio.Scanner
	out      io.Writer
	renderer *Renderer
	prompt   string
	logger   *slog.Logger
}

// New creates a console reading commands from in and writing to out
func New(manager ports.InventoryManager, in io.Reader, out io.Writer, opts Options, log *slog.Logger) *Console {
	return &Console{
		manager:  manager,
		scanner:  bufio.NewScanner(in),
		out:      out,
		renderer: NewRenderer(out, opts.Color),
		prompt:   opts.Prompt,
		logger:   log.With(slog.String("component", "console")),
	}
}

// Run shows the menu and executes commands until the user exits or the
// input is exhausted
func (c *Console) Run(ctx context.Context) error {
	ctx, sessionID := logger.WithSessionID(ctx)
	c.logger.InfoContext(ctx, "console session started", slog.String("session", sessionID))
	defer c.logger.InfoContext(ctx, "console session ended")

	for {
		fmt.Fprint(c.out, c.renderer.Menu())

		choice, err := c.readLine("Choose an option: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		item, ok := lookup(choice)
		if !ok {
			c.println(c.renderer.Error(MsgInvalidInput))
			continue
		}
		if item.action == nil {
			return nil
		}

		err = item.action(c, logger.WithCommand(ctx, item.label))
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, ErrInvalidInput):
			c.logger.DebugContext(ctx, "rejected console input", slog.String("error", err.Error()))
			c.println(c.renderer.Error(MsgInvalidInput))
		case err != nil:
			return err
		}
	}
}

func lookup(choice string) (menuItem, bool) {
	for _, item := range menu {
		if item.key == choice {
			return item, true
		}
	}
	return menuItem{}, false
}

func (c *Console) addProduct(ctx context.Context) error {
	name, err := c.readLine("Enter product name: ")
	if err != nil {
		return err
	}
	quantity, err := c.readInt("Enter quantity: ", "quantity")
	if err != nil {
		return err
	}
	price, err := c.readDecimal("Enter price: ", "price")
	if err != nil {
		return err
	}

	c.println(c.renderer.Outcome(c.manager.AddNewProduct(ctx, name, quantity, price)))
	return nil
}

func (c *Console) removeProduct(ctx context.Context) error {
	id, err := c.readInt("Enter product ID: ", "id")
	if err != nil {
		return err
	}

	c.println(c.renderer.Outcome(c.manager.RemoveProduct(ctx, id)))
	return nil
}

func (c *Console) updateProduct(ctx context.Context) error {
	id, err := c.readInt("Enter product ID: ", "id")
	if err != nil {
		return err
	}
	quantity, err := c.readInt("Enter new quantity: ", "quantity")
	if err != nil {
		return err
	}

	c.println(c.renderer.Outcome(c.manager.UpdateProduct(ctx, id, quantity)))
	return nil
}

func (c *Console) totalValue(ctx context.Context) error {
	c.println(c.renderer.Outcome(c.manager.GetTotalValue(ctx)))
	return nil
}

func (c *Console) listProducts(ctx context.Context) error {
	c.println(c.renderer.Products(c.manager.ListProducts(ctx)))
	return nil
}

func (c *Console) readLine(label string) (string, error) {
	fmt.Fprint(c.out, c.prompt+label)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.scanner.Text(), "\r"), nil
}

func (c *Console) readInt(label, field string) (int, error) {
	line, err := c.readLine(label)
	if err != nil {
		return 0, err
	}
	return ParseInt(field, line)
}

func (c *Console) readDecimal(label, field string) (decimal.Decimal, error) {
	line, err := c.readLine(label)
	if err != nil {
		return decimal.Zero, err
	}
	return ParseDecimal(field, line)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// ParseInt converts console text to an integer argument
func ParseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidInput, field, s)
	}
	return n, nil
}

// ParseDecimal converts console text to a decimal argument
func ParseDecimal(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q", ErrInvalidInput, field, s)
	}
	return d, nil
}
