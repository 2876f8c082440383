package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/treedo/treedo-backend/models"
	"github.com/treedo/treedo-backend/repositories"
	"github.com/treedo/treedo-backend/usecases/executor_factory"
	"github.com/treedo/treedo-backend/utils"
)

type ListUsecaseRepository interface {
	GetRootList(ctx context.Context, exec repositories.Executor) (models.List, error)
	CreateRootListIfMissing(ctx context.Context, exec repositories.Executor, newListId string, title string) (bool, error)
	GetListByLinkingItemId(ctx context.Context, exec repositories.Executor, itemId string) (models.List, error)
	GetListContainingItem(ctx context.Context, exec repositories.Executor, itemId string) (models.List, error)
}

type ListUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      ListUsecaseRepository
	rootListTitle   string
}

// GetOrCreateRootList returns the root list, creating it first if the store has none.
// created is true only for the caller whose insert produced the root.
func (usecase *ListUsecase) GetOrCreateRootList(ctx context.Context) (list models.List, created bool, err error) {
	exec := usecase.executorFactory.NewExecutor()

	list, err = usecase.repository.GetRootList(ctx, exec)
	if err == nil {
		return list, false, nil
	}
	if !errors.Is(err, models.NotFoundError) {
		return models.List{}, false, err
	}

	created, err = usecase.repository.CreateRootListIfMissing(ctx, exec, uuid.NewString(), usecase.rootListTitle)
	if err != nil {
		return models.List{}, false, errors.Wrap(err, "could not create the root list")
	}

	list, err = usecase.repository.GetRootList(ctx, exec)
	if err != nil {
		return models.List{}, false, errors.Wrap(err, "could not read the root list after creating it")
	}

	if created {
		utils.MetricRootListCreated.Inc()
		utils.LoggerFromContext(ctx).InfoContext(ctx, "created root list", "list_id", list.Id)
	}
	return list, created, nil
}

func (usecase *ListUsecase) GetListByLinkingItem(ctx context.Context, itemId string) (models.List, error) {
	if itemId == "" {
		return models.List{}, models.ErrMissingItemId
	}
	return usecase.repository.GetListByLinkingItemId(ctx, usecase.executorFactory.NewExecutor(), itemId)
}

// GetParentViewPath returns the view path of the list holding the item the given list is
// linked to. It falls back to the root path when that list cannot be found.
func (usecase *ListUsecase) GetParentViewPath(ctx context.Context, list models.List) string {
	if list.IsRoot() {
		return "/"
	}

	parent, err := usecase.repository.GetListContainingItem(ctx, usecase.executorFactory.NewExecutor(), *list.LinkingItemId)
	if err != nil {
		if !errors.Is(err, models.NotFoundError) {
			utils.LoggerFromContext(ctx).WarnContext(ctx, "could not find parent list",
				"list_id", list.Id, "error", err.Error())
		}
		return "/"
	}
	return parent.ViewPath()
}
