package usecases

import (
	"github.com/treedo/treedo-backend/models"
	"github.com/treedo/treedo-backend/repositories"
	"github.com/treedo/treedo-backend/usecases/executor_factory"
)

type Usecases struct {
	Repositories  repositories.Repositories
	rootListTitle string
}

type Option func(*options)

func WithRootListTitle(title string) Option {
	return func(o *options) {
		o.rootListTitle = title
	}
}

type options struct {
	rootListTitle string
}

func newUsecasesWithOptions(repositories repositories.Repositories, o *options) Usecases {
	if o.rootListTitle == "" {
		o.rootListTitle = models.DEFAULT_ROOT_LIST_TITLE
	}
	return Usecases{
		Repositories:  repositories,
		rootListTitle: o.rootListTitle,
	}
}

func NewUsecases(repositories repositories.Repositories, opts ...Option) Usecases {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return newUsecasesWithOptions(repositories, o)
}

func (usecases *Usecases) NewExecutorFactory() executor_factory.ExecutorFactory {
	return executor_factory.NewDbExecutorFactory(usecases.Repositories.ExecutorGetter)
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      &usecases.Repositories.TodoDbRepository,
	}
}

func (usecases *Usecases) NewListUsecase() ListUsecase {
	return ListUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      &usecases.Repositories.TodoDbRepository,
		rootListTitle:   usecases.rootListTitle,
	}
}

func (usecases *Usecases) NewItemUsecase() ItemUsecase {
	return ItemUsecase{
		executorFactory: usecases.NewExecutorFactory(),
		repository:      &usecases.Repositories.TodoDbRepository,
	}
}
