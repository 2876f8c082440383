package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/treedo/treedo-backend/repositories"
	"github.com/treedo/treedo-backend/usecases/executor_factory"
)

const livenessProbeTimeout = 2 * time.Second

type LivenessRepository interface {
	Liveness(ctx context.Context, exec repositories.Executor) error
}

// LivenessUsecase reports whether the database answers within livenessProbeTimeout.
type LivenessUsecase struct {
	executorFactory executor_factory.ExecutorFactory
	repository      LivenessRepository
}

func (usecase *LivenessUsecase) Liveness(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, livenessProbeTimeout)
	defer cancel()

	if err := usecase.repository.Liveness(ctx, usecase.executorFactory.NewExecutor()); err != nil {
		return errors.Wrap(err, "database did not answer the liveness probe")
	}
	return nil
}
