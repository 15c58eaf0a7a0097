package console_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/stockroom/internal/console"
	"github.com/ammerola/stockroom/internal/core/domain"
	"github.com/ammerola/stockroom/internal/core/ports"
	"github.com/ammerola/stockroom/internal/core/services"
	"github.com/ammerola/stockroom/test/helpers"
	"github.com/ammerola/stockroom/test/mocks"
)

// decimalEq matches a decimal argument by numeric value
type decimalEq struct{ want decimal.Decimal }

func (m decimalEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string {
	return fmt.Sprintf("is decimal %s", m.want)
}

func script(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func runConsole(t *testing.T, manager ports.InventoryManager, in io.Reader) string {
	t.Helper()

	var out bytes.Buffer
	c := console.New(manager, in, &out, console.Options{Prompt: "> "}, helpers.TestLogger())
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestConsole_DelegatesToManager(t *testing.T) {
	tests := []struct {
		name       string
		input      io.Reader
		setupMocks func(*mocks.MockInventoryManager)
		contains   string
	}{
		{
			name:  "add_product",
			input: script("1", "TestProduct", "1", "1.23", "6"),
			setupMocks: func(m *mocks.MockInventoryManager) {
				m.EXPECT().
					AddNewProduct(gomock.Any(), "TestProduct", 1, decimalEq{decimal.RequireFromString("1.23")}).
					Return(domain.Success(domain.MsgProductAdded))
			},
			contains: "Product added successfully.",
		},
		{
			name:  "remove_product",
			input: script("2", "99", "6"),
			setupMocks: func(m *mocks.MockInventoryManager) {
				m.EXPECT().
					RemoveProduct(gomock.Any(), 99).
					Return(domain.NotFound(99))
			},
			contains: "Product not found, please try again.",
		},
		{
			name:  "update_product",
			input: script("3", "1", "-3", "6"),
			setupMocks: func(m *mocks.MockInventoryManager) {
				m.EXPECT().
					UpdateProduct(gomock.Any(), 1, -3).
					Return(domain.InvalidQuantity(1))
			},
			contains: "Quantity should not be less than 0",
		},
		{
			name:  "total_value",
			input: script("4", "6"),
			setupMocks: func(m *mocks.MockInventoryManager) {
				m.EXPECT().
					GetTotalValue(gomock.Any()).
					Return(domain.Success("Total value of inventory: 0"))
			},
			contains: "Total value of inventory: 0",
		},
		{
			name:  "list_empty",
			input: script("5", "6"),
			setupMocks: func(m *mocks.MockInventoryManager) {
				m.EXPECT().ListProducts(gomock.Any()).Return(nil)
			},
			contains: "No products in inventory.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockManager := mocks.NewMockInventoryManager(ctrl)
			tt.setupMocks(mockManager)

			out := runConsole(t, mockManager, tt.input)

			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestConsole_InvalidInputNeverReachesManager(t *testing.T) {
	tests := []struct {
		name  string
		input io.Reader
	}{
		{name: "alphabetic_quantity_on_update", input: script("3", "1", "AAA", "6")},
		{name: "special_characters_quantity_on_update", input: script("3", "1", "@@@", "6")},
		{name: "alphabetic_id_on_update", input: script("3", "one", "6")},
		{name: "alphabetic_id_on_remove", input: script("2", "abc", "6")},
		{name: "alphabetic_quantity_on_add", input: script("1", "Widget", "many", "6")},
		{name: "malformed_price_on_add", input: script("1", "Widget", "2", "1.2.3", "6")},
		{name: "unknown_menu_option", input: script("9", "6")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockManager := mocks.NewMockInventoryManager(ctrl)

			out := runConsole(t, mockManager, tt.input)

			assert.Contains(t, out, console.MsgInvalidInput)
		})
	}
}

func TestConsole_EndOfInputExits(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockManager := mocks.NewMockInventoryManager(ctrl)

	out := runConsole(t, mockManager, strings.NewReader("3\n1\n"))

	assert.Contains(t, out, "Enter new quantity: ")
}

func TestConsole_SessionWithInventoryManager(t *testing.T) {
	manager := services.NewInventoryManager(helpers.TestLogger())

	out := runConsole(t, manager, script(
		"1", "Product1", "1", "10.0",
		"1", "Product2", "2", "5.0",
		"1", "Product3", "3", "25.0",
		"1", "   ", "1", "1.0",
		"4",
		"3", "2", "AAA",
		"2", "1",
		"5",
		"6",
	))

	assert.Equal(t, 3, strings.Count(out, domain.MsgProductAdded))
	assert.Contains(t, out, "Failed to add product: name is required")
	assert.Contains(t, out, "Total value of inventory: 95.0")
	assert.Contains(t, out, console.MsgInvalidInput)
	assert.Contains(t, out, domain.MsgProductRemoved)
	assert.Contains(t, out, "ID: 2, Name: Product2, Quantity: 2, Price: 5")
	assert.Contains(t, out, "ID: 3, Name: Product3, Quantity: 3, Price: 25")
	assert.NotContains(t, out, "ID: 1,")
	assert.Equal(t, 2, manager.Len())
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "positive", input: "10", want: 10},
		{name: "negative", input: "-3", want: -3},
		{name: "surrounding_whitespace", input: "  7 ", want: 7},
		{name: "alphabetic", input: "AAA", wantErr: true},
		{name: "special_characters", input: "@@@", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "decimal", input: "1.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := console.ParseInt("quantity", tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, console.ErrInvalidInput))
				assert.Contains(t, err.Error(), "quantity")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDecimal(t *testing.T) {
	got, err := console.ParseDecimal("price", "79228162514264337593543950335")
	require.NoError(t, err)
	assert.Equal(t, "79228162514264337593543950335", got.String())

	got, err = console.ParseDecimal("price", " 2.56 ")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("2.56")))

	_, err = console.ParseDecimal("price", "two")
	assert.ErrorIs(t, err, console.ErrInvalidInput)
}
