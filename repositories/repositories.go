package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// TodoDbRepository holds every query on the lists and items tables. It is stateless: the
// executor is passed to each method.
type TodoDbRepository struct{}

type Repositories struct {
	ExecutorGetter   ExecutorGetter
	TodoDbRepository TodoDbRepository
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		ExecutorGetter:   NewExecutorGetter(pool),
		TodoDbRepository: TodoDbRepository{},
	}
}
