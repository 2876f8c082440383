package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/treedo/treedo-backend/models"
	"github.com/treedo/treedo-backend/repositories"
)

type TodoRepository struct {
	mock.Mock
}

func (r *TodoRepository) GetRootList(ctx context.Context, exec repositories.Executor) (models.List, error) {
	args := r.Called(ctx, exec)
	return args.Get(0).(models.List), args.Error(1)
}

func (r *TodoRepository) CreateRootListIfMissing(ctx context.Context, exec repositories.Executor,
	newListId string, title string,
) (bool, error) {
	args := r.Called(ctx, exec, newListId, title)
	return args.Bool(0), args.Error(1)
}

func (r *TodoRepository) GetListById(ctx context.Context, exec repositories.Executor, listId string) (models.List, error) {
	args := r.Called(ctx, exec, listId)
	return args.Get(0).(models.List), args.Error(1)
}

func (r *TodoRepository) GetListByLinkingItemId(ctx context.Context, exec repositories.Executor, itemId string) (models.List, error) {
	args := r.Called(ctx, exec, itemId)
	return args.Get(0).(models.List), args.Error(1)
}

func (r *TodoRepository) GetListContainingItem(ctx context.Context, exec repositories.Executor, itemId string) (models.List, error) {
	args := r.Called(ctx, exec, itemId)
	return args.Get(0).(models.List), args.Error(1)
}

func (r *TodoRepository) CreateList(ctx context.Context, exec repositories.Executor,
	attributes models.CreateListAttributes, newListId string,
) error {
	args := r.Called(ctx, exec, attributes, newListId)
	return args.Error(0)
}

func (r *TodoRepository) AppendItemSnapshot(ctx context.Context, exec repositories.Executor,
	listId string, snapshot models.ItemSnapshot,
) error {
	args := r.Called(ctx, exec, listId, snapshot)
	return args.Error(0)
}

func (r *TodoRepository) RemoveItemSnapshot(ctx context.Context, exec repositories.Executor, listId string, itemId string) error {
	args := r.Called(ctx, exec, listId, itemId)
	return args.Error(0)
}

func (r *TodoRepository) DeleteListByLinkingItemId(ctx context.Context, exec repositories.Executor, itemId string) error {
	args := r.Called(ctx, exec, itemId)
	return args.Error(0)
}

func (r *TodoRepository) CreateItem(ctx context.Context, exec repositories.Executor,
	attributes models.CreateItemAttributes, newItemId string,
) error {
	args := r.Called(ctx, exec, attributes, newItemId)
	return args.Error(0)
}

func (r *TodoRepository) GetItemById(ctx context.Context, exec repositories.Executor, itemId string) (models.Item, error) {
	args := r.Called(ctx, exec, itemId)
	if fn, ok := args.Get(0).(func(context.Context, repositories.Executor, string) models.Item); ok {
		return fn(ctx, exec, itemId), args.Error(1)
	}
	return args.Get(0).(models.Item), args.Error(1)
}

func (r *TodoRepository) DeleteItem(ctx context.Context, exec repositories.Executor, itemId string) error {
	args := r.Called(ctx, exec, itemId)
	return args.Error(0)
}

func (r *TodoRepository) Liveness(ctx context.Context, exec repositories.Executor) error {
	args := r.Called(ctx, exec)
	return args.Error(0)
}
