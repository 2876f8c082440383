package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/treedo/treedo-backend/models"
)

func NewQueryBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// ExecBuilder builds and runs a statement, returning the number of affected rows.
func ExecBuilder(ctx context.Context, exec Executor, builder squirrel.Sqlizer) (rowsAffected int64, err error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "can't build sql query")
	}

	tag, err := exec.Exec(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrapf(err, "error executing sql query: %s", query)
	}
	return tag.RowsAffected(), nil
}

// executes the sql query with the given executor and returns a list of models using the provided adapter
func SqlToListOfModels[DBModel, Model any](ctx context.Context, exec Executor,
	query squirrel.Sqlizer, adapter func(dbModel DBModel) (Model, error),
) ([]Model, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing sql query")
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Model, error) {
		dbModel, err := pgx.RowToStructByName[DBModel](row)
		if err != nil {
			var zeroModel Model
			return zeroModel, errors.Wrap(err, fmt.Sprintf("error scanning row to struct %T", dbModel))
		}
		return adapter(dbModel)
	})
}

// executes the sql query with the given executor and returns a model using the provided adapter
// If no result is returned by the query, returns nil
func SqlToOptionalModel[DBModel, Model any](ctx context.Context, exec Executor,
	query squirrel.Sqlizer, adapter func(dbModel DBModel) (Model, error),
) (*Model, error) {
	modelsList, err := SqlToListOfModels(ctx, exec, query, adapter)
	if err != nil {
		return nil, err
	}

	switch len(modelsList) {
	case 0:
		return nil, nil
	case 1:
		return &modelsList[0], nil
	default:
		return nil, errors.Newf("expected 1 or 0 %T, got %d rows in the result", modelsList[0], len(modelsList))
	}
}

// executes the sql query with the given executor and returns a model using the provided adapter
// if no result is returned by the query, or an id in the query is malformed, returns a NotFoundError
func SqlToModel[DBModel, Model any](ctx context.Context, exec Executor,
	query squirrel.Sqlizer, adapter func(dbModel DBModel) (Model, error),
) (Model, error) {
	model, err := SqlToOptionalModel(ctx, exec, query, adapter)
	var zeroModel Model
	if IsInvalidTextRepresentationError(err) {
		// nothing can be stored under an id postgres cannot even parse
		return zeroModel, errors.Wrap(models.NotFoundError, fmt.Sprintf("malformed identifier for %T", zeroModel))
	}
	if err != nil {
		return zeroModel, err
	}
	if model == nil {
		return zeroModel, errors.Wrap(models.NotFoundError, fmt.Sprintf("found no object of type %T", zeroModel))
	}
	return *model, nil
}
