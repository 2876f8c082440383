package repositories

import "context"

func (repo *TodoDbRepository) Liveness(ctx context.Context, exec Executor) error {
	if err := validateExecutor(exec); err != nil {
		return err
	}
	row := exec.QueryRow(ctx, "SELECT 1")
	var result int
	return row.Scan(&result)
}
