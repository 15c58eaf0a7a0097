//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ammerola/stockroom/internal/cli"
)

type InventoryE2ESuite struct {
	suite.Suite
}

func (s *InventoryE2ESuite) SetupTest() {
	s.T().Setenv("APP_ENV", "test")
	s.T().Setenv("LOG_LEVEL", "error")
	s.T().Setenv("CONSOLE_COLOR", "false")
}

// run executes one console session fed with the given input lines
func (s *InventoryE2ESuite) run(lines ...string) string {
	cmd := cli.NewRootCmdForTest()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	cmd.SetArgs([]string{})

	s.Require().NoError(cmd.Execute())
	return out.String()
}

func (s *InventoryE2ESuite) TestCompleteInventoryWorkflow() {
	out := s.run(
		// 1. Add products
		"1", "Product1", "1", "10.0",
		"1", "Product2", "2", "5.0",
		"1", "Product3", "3", "25.0",
		// 2. Report the total value
		"4",
		// 3. Update a quantity
		"3", "2", "4",
		"4",
		// 4. Remove a product
		"2", "1",
		"4",
		// 5. List what is left
		"5",
		"6",
	)

	s.Equal(3, strings.Count(out, "Product added successfully."))
	s.Contains(out, "Total value of inventory: 95.0")
	s.Contains(out, "Product updated successfully.")
	s.Contains(out, "Total value of inventory: 105.0")
	s.Contains(out, "Product removed successfully.")
	s.Contains(out, "Total value of inventory: 95.0")
	s.Contains(out, "ID: 2, Name: Product2, Quantity: 4, Price: 5")
}

func (s *InventoryE2ESuite) TestRejectedOperationsLeaveInventoryUnchanged() {
	out := s.run(
		"1", "TestProduct", "1", "2.56",
		"1", "TestProduct", "1", "-1.0",
		"1", "   ", "1", "1.0",
		"3", "1", "-3",
		"3", "1", "AAA",
		"3", "1", "@@@",
		"3", "999", "10",
		"2", "99",
		"4",
		"6",
	)

	s.Equal(1, strings.Count(out, "Product added successfully."))
	s.Contains(out, "Failed to add product: price cannot be negative")
	s.Contains(out, "Failed to add product: name is required")
	s.Contains(out, "Quantity should not be less than 0")
	s.Equal(2, strings.Count(out, "Invalid input, please try again."))
	s.Equal(2, strings.Count(out, "Product not found, please try again."))
	s.Contains(out, "Total value of inventory: 2.56")
}

func (s *InventoryE2ESuite) TestEmptyInventory() {
	out := s.run("4", "5", "6")

	s.Contains(out, "Total value of inventory: 0")
	s.Contains(out, "No products in inventory.")
}

func TestInventoryE2ESuite(t *testing.T) {
	suite.Run(t, new(InventoryE2ESuite))
}
