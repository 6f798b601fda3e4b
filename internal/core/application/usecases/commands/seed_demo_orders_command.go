package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrSeedDemoOrdersCommandIsNotConstructed = errors.New(
		"SeedDemoOrdersCommand must be created via NewSeedDemoOrdersCommand constructor",
	)
	ErrCountIsInvalid = errors.New("count must be greater than 0")
)

// SeedDemoOrdersCommand requests generation of synthetic orders for demos
// and load experiments.
type SeedDemoOrdersCommand struct { //nolint:recvcheck //using for validation
	count int

	guard guard.ConstructorGuard
}

// NewSeedDemoOrdersCommand creates a command to seed the given number of
// synthetic orders.
func NewSeedDemoOrdersCommand(count int) (SeedDemoOrdersCommand, error) {
	seedCommand := SeedDemoOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := seedCommand.setCount(count); err != nil {
		return SeedDemoOrdersCommand{}, err
	}

	return seedCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SeedDemoOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSeedDemoOrdersCommandIsNotConstructed)
}

// Count returns the number of orders to generate.
func (c SeedDemoOrdersCommand) Count() int {
	return c.count
}

func (c *SeedDemoOrdersCommand) setCount(count int) error {
	if count <= 0 {
		return ErrCountIsInvalid
	}

	c.count = count
	return nil
}
