package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/treedo/treedo-backend/models"
	"github.com/treedo/treedo-backend/repositories/dbmodels"
)

func (repo *TodoDbRepository) CreateItem(ctx context.Context, exec Executor,
	attributes models.CreateItemAttributes, newItemId string,
) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_ITEMS).
			Columns(
				"id",
				"text",
			).
			Values(
				newItemId,
				attributes.Text,
			),
	)
	return err
}

func (repo *TodoDbRepository) GetItemById(ctx context.Context, exec Executor, itemId string) (models.Item, error) {
	if err := validateExecutor(exec); err != nil {
		return models.Item{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().Select(dbmodels.SelectItemColumn...).
			From(dbmodels.TABLE_ITEMS).
			Where(squirrel.Eq{"id": itemId}),
		dbmodels.AdaptItem,
	)
}

// DeleteItem is idempotent: deleting a missing item is not an error.
func (repo *TodoDbRepository) DeleteItem(ctx context.Context, exec Executor, itemId string) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_ITEMS).Where(squirrel.Eq{"id": itemId}),
	)
	return err
}
