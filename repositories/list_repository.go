package repositories

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/treedo/treedo-backend/models"
	"github.com/treedo/treedo-backend/repositories/dbmodels"
)

func selectLists() squirrel.SelectBuilder {
	return NewQueryBuilder().
		Select(dbmodels.SelectListColumn...).
		From(dbmodels.TABLE_LISTS)
}

func (repo *TodoDbRepository) GetRootList(ctx context.Context, exec Executor) (models.List, error) {
	if err := validateExecutor(exec); err != nil {
		return models.List{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		selectLists().Where(squirrel.Eq{"linking_item_id": nil}),
		dbmodels.AdaptList,
	)
}

// CreateRootListIfMissing inserts a root list unless one already exists. The single root
// unique index makes the check and the insert one atomic statement.
func (repo *TodoDbRepository) CreateRootListIfMissing(ctx context.Context, exec Executor,
	newListId string, title string,
) (created bool, err error) {
	if err := validateExecutor(exec); err != nil {
		return false, err
	}

	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_LISTS).
			Columns(
				"id",
				"title",
			).
			Values(
				newListId,
				title,
			).
			Suffix("ON CONFLICT DO NOTHING"),
	)
	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

func (repo *TodoDbRepository) GetListById(ctx context.Context, exec Executor, listId string) (models.List, error) {
	if err := validateExecutor(exec); err != nil {
		return models.List{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		selectLists().Where(squirrel.Eq{"id": listId}),
		dbmodels.AdaptList,
	)
}

func (repo *TodoDbRepository) GetListByLinkingItemId(ctx context.Context, exec Executor, itemId string) (models.List, error) {
	if err := validateExecutor(exec); err != nil {
		return models.List{}, err
	}

	return SqlToModel(
		ctx,
		exec,
		selectLists().Where(squirrel.Eq{"linking_item_id": itemId}),
		dbmodels.AdaptList,
	)
}

// GetListContainingItem finds the list holding a snapshot of the item, which is the parent of
// the item's own child list.
func (repo *TodoDbRepository) GetListContainingItem(ctx context.Context, exec Executor, itemId string) (models.List, error) {
	if err := validateExecutor(exec); err != nil {
		return models.List{}, err
	}

	containment, err := json.Marshal([]struct {
		Id string `json:"id"`
	}{{Id: itemId}})
	if err != nil {
		return models.List{}, errors.Wrap(err, "could not marshal containment document")
	}

	return SqlToModel(
		ctx,
		exec,
		selectLists().
			Where(squirrel.Expr("items @> ?::jsonb", string(containment))).
			OrderBy("created_at ASC").
			Limit(1),
		dbmodels.AdaptList,
	)
}

func (repo *TodoDbRepository) CreateList(ctx context.Context, exec Executor,
	attributes models.CreateListAttributes, newListId string,
) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_LISTS).
			Columns(
				"id",
				"linking_item_id",
				"title",
			).
			Values(
				newListId,
				attributes.LinkingItemId,
				attributes.Title,
			),
	)
	if IsUniqueViolationError(err) {
		return errors.Wrap(models.ConflictError, "there is already a list linked to this item or a root list")
	}
	return err
}

func (repo *TodoDbRepository) AppendItemSnapshot(ctx context.Context, exec Executor,
	listId string, snapshot models.ItemSnapshot,
) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	document, err := dbmodels.MarshalItemSnapshots(snapshot)
	if err != nil {
		return err
	}

	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_LISTS).
			Set("items", squirrel.Expr("items || ?::jsonb", document)).
			Where(squirrel.Eq{"id": listId}),
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.Wrapf(models.NotFoundError, "list %s does not exist", listId)
	}
	return nil
}

// RemoveItemSnapshot drops every snapshot of the item from the list, keeping the order of
// the others. Removing a snapshot the list does not hold is a no-op.
func (repo *TodoDbRepository) RemoveItemSnapshot(ctx context.Context, exec Executor, listId string, itemId string) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_LISTS).
			Set("items", squirrel.Expr(
				"COALESCE((SELECT jsonb_agg(snapshot ORDER BY position) "+
					"FROM jsonb_array_elements(items) WITH ORDINALITY AS s(snapshot, position) "+
					"WHERE snapshot->>'id' <> ?), '[]'::jsonb)",
				itemId,
			)).
			Where(squirrel.Eq{"id": listId}),
	)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.Wrapf(models.NotFoundError, "list %s does not exist", listId)
	}
	return nil
}

func (repo *TodoDbRepository) DeleteListByLinkingItemId(ctx context.Context, exec Executor, itemId string) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_LISTS).Where(squirrel.Eq{"linking_item_id": itemId}),
	)
	return err
}
