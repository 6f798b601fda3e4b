package commands_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/order"
)

func TestNewSeedDemoOrdersCommandHandler_RequiresRandomSource(t *testing.T) {
	_, err := commands.NewSeedDemoOrdersCommandHandler(new(MockOrderUoWFactory), nil)

	assert.Error(t, err)
}

func TestSeedDemoOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSeedDemoOrdersCommand(3)
	require.NoError(t, err)

	seen := make([]int, 0, 3)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("MaxCustomerID", ctx).Return(10, nil).Once(),
		repo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.Validate() == nil && o.Volume() > 0
		})).Run(func(args mock.Arguments) {
			seen = append(seen, args.Get(1).(*order.Order).CustomerID())
		}).Return(nil).Times(3),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h, err := commands.NewSeedDemoOrdersCommandHandler(factory, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	// Customer ids continue past the current maximum.
	assert.Equal(t, []int{11, 12, 13}, seen)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSeedDemoOrdersCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h, err := commands.NewSeedDemoOrdersCommandHandler(new(MockOrderUoWFactory), rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	err = h.Handle(ctx, commands.SeedDemoOrdersCommand{})
	require.Error(t, err)
}

func TestSeedDemoOrdersCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewSeedDemoOrdersCommand(2)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("MaxCustomerID", ctx).Return(0, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h, err := commands.NewSeedDemoOrdersCommandHandler(factory, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
