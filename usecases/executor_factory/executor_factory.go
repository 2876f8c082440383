package executor_factory

import (
	"github.com/treedo/treedo-backend/repositories"
)

type ExecutorFactory interface {
	NewExecutor() repositories.Executor
}

// interfaces used by the class
type executorGetter interface {
	GetExecutor() repositories.Executor
}

type DbExecutorFactory struct {
	executorGetter executorGetter
}

func NewDbExecutorFactory(executorGetter executorGetter) DbExecutorFactory {
	return DbExecutorFactory{
		executorGetter: executorGetter,
	}
}

func (factory DbExecutorFactory) NewExecutor() repositories.Executor {
	return factory.executorGetter.GetExecutor()
}
