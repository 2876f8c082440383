package usecases

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/treedo/treedo-backend/models"
	"github.com/treedo/treedo-backend/repositories"
	"github.com/treedo/treedo-backend/usecases/executor_factory"
	"github.com/treedo/treedo-backend/utils"
)

type ItemUsecaseRepository interface {
	CreateItem(ctx context.Context, exec repositories.Executor, attributes models.CreateItemAttributes, newItemId string) error
	GetItemById(ctx context.Context, exec repositories.Executor, itemId string) (models.Item, error)
	DeleteItem(ctx context.Context, exec repositories.Executor, itemId string) error

	GetListById(ctx context.Context, exec repositories.Executor, listId string) (models.List, error)
	GetListByLinkingItemId(ctx context.Context, exec repositories.Executor, itemId string) (models.List, error)
	CreateList(ctx context.Context, exec repositories.Executor, attributes models.CreateListAttributes, newListId string) error
	AppendItemSnapshot(ctx context.Context, exec repositories.Executor, listId string, snapshot models.ItemSnapshot) error
	RemoveItemSnapshot(ctx context.Context, exec repositories.Executor, listId string, itemId string) error
	DeleteListByLinkingItemId(ctx context.Context, exec repositories.Executor, itemId string) error
}

type ItemUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      ItemUsecaseRepository
}

// CreateItem adds an item to the target list and gives it an empty child list titled with
// its text. It returns the target list as it is after the append.
//
// The steps are not transactional: if the target list is gone, the item record stays.
func (usecase *ItemUsecase) CreateItem(ctx context.Context, attributes models.CreateItemAttributes) (models.List, error) {
	if attributes.ListId == "" {
		return models.List{}, models.ErrMissingListId
	}
	exec := usecase.executorFactory.NewExecutor()
	tracer := utils.OpenTelemetryTracerFromContext(ctx)
	ctx, span := tracer.Start(
		ctx,
		"ItemUsecase.CreateItem",
		trace.WithAttributes(attribute.String("list_id", attributes.ListId)))
	defer span.End()

	itemId := uuid.NewString()
	if err := usecase.repository.CreateItem(ctx, exec, attributes, itemId); err != nil {
		return models.List{}, errors.Wrap(err, "could not create item")
	}
	// the snapshot is a copy of the stored record
	item, err := usecase.repository.GetItemById(ctx, exec, itemId)
	if err != nil {
		return models.List{}, errors.Wrapf(err, "could not read back item %s", itemId)
	}

	if err := usecase.repository.AppendItemSnapshot(ctx, exec, attributes.ListId, item.Snapshot()); err != nil {
		return models.List{}, err
	}

	err = usecase.repository.CreateList(ctx, exec, models.CreateListAttributes{
		LinkingItemId: &item.Id,
		Title:         item.Text,
	}, uuid.NewString())
	if err != nil {
		return models.List{}, errors.Wrapf(err, "could not create the child list of item %s", item.Id)
	}

	utils.MetricItemsCreated.Inc()
	utils.LoggerFromContext(ctx).DebugContext(ctx, "created item",
		"item_id", item.Id, "list_id", attributes.ListId)

	return usecase.repository.GetListById(ctx, exec, attributes.ListId)
}

// DeleteItemAndSubtree removes the item from its containing list, then deletes the item and
// every item below it together with their child lists. It returns the containing list as it
// is after the removal.
//
// Nothing is transactional. A failure leaves the subtree partially deleted, and running the
// deletion again finishes it since every delete is idempotent.
func (usecase *ItemUsecase) DeleteItemAndSubtree(ctx context.Context, attributes models.DeleteItemAttributes) (models.List, error) {
	if attributes.ItemId == "" {
		return models.List{}, models.ErrMissingItemId
	}
	if attributes.ContainingListId == "" {
		return models.List{}, models.ErrMissingListId
	}
	exec := usecase.executorFactory.NewExecutor()
	tracer := utils.OpenTelemetryTracerFromContext(ctx)
	ctx, span := tracer.Start(
		ctx,
		"ItemUsecase.DeleteItemAndSubtree",
		trace.WithAttributes(
			attribute.String("item_id", attributes.ItemId),
			attribute.String("list_id", attributes.ContainingListId),
		))
	defer span.End()

	err := usecase.repository.RemoveItemSnapshot(ctx, exec, attributes.ContainingListId, attributes.ItemId)
	if err != nil {
		return models.List{}, err
	}

	itemIds, err := usecase.subtreeDeletionOrder(ctx, exec, attributes.ItemId)
	if err != nil {
		return models.List{}, err
	}

	for _, itemId := range itemIds {
		if err := usecase.repository.DeleteListByLinkingItemId(ctx, exec, itemId); err != nil {
			return models.List{}, errors.Wrapf(err, "could not delete the child list of item %s", itemId)
		}
		if err := usecase.repository.DeleteItem(ctx, exec, itemId); err != nil {
			return models.List{}, errors.Wrapf(err, "could not delete item %s", itemId)
		}
	}

	span.SetAttributes(attribute.Int("deleted_items", len(itemIds)))
	utils.MetricSubtreeItemsDeleted.Add(float64(len(itemIds)))
	utils.LoggerFromContext(ctx).InfoContext(ctx, "deleted subtree",
		"item_id", attributes.ItemId, "list_id", attributes.ContainingListId, "deleted_items", len(itemIds))

	return usecase.repository.GetListById(ctx, exec, attributes.ContainingListId)
}

// subtreeDeletionOrder walks the subtree below itemId depth first and returns its item ids,
// each one after all of its descendants, itemId last. Items without a child list are leaves.
// An item reached twice is only kept once, so drifted data holding a cycle still terminates.
func (usecase *ItemUsecase) subtreeDeletionOrder(ctx context.Context, exec repositories.Executor, itemId string) ([]string, error) {
	visited := make(map[string]bool)
	var preOrder []string

	stack := []string{itemId}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[current] {
			continue
		}
		visited[current] = true
		preOrder = append(preOrder, current)

		childList, err := usecase.repository.GetListByLinkingItemId(ctx, exec, current)
		if errors.Is(err, models.NotFoundError) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "could not read the child list of item %s", current)
		}

		// pushed in reverse so that the first snapshot is visited first
		for i := len(childList.Items) - 1; i >= 0; i-- {
			stack = append(stack, childList.Items[i].Id)
		}
	}

	slices.Reverse(preOrder)
	return preOrder, nil
}
