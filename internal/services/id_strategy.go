package services

import (
	"context"
	"fmt"

	"tasks-api/internal/config"
	"tasks-api/internal/repository"
)

// IDStrategy picks the id of the next created task.
type IDStrategy func(ctx context.Context, repo repository.TaskRepository) (int64, error)

// LengthIDs assigns the current number of tasks plus one. After a delete
// this can hand out an id that is still in use.
func LengthIDs(ctx context.Context, repo repository.TaskRepository) (int64, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	return int64(n) + 1, nil
}

// SequenceIDs assigns the highest id ever stored plus one.
func SequenceIDs(ctx context.Context, repo repository.TaskRepository) (int64, error) {
	maxID, err := repo.MaxID(ctx)
	if err != nil {
		return 0, err
	}
	return maxID + 1, nil
}

// IDStrategyFor returns the strategy registered under a config name.
func IDStrategyFor(name string) (IDStrategy, error) {
	switch name {
	case config.IDStrategyLength, "":
		return LengthIDs, nil
	case config.IDStrategySequence:
		return SequenceIDs, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", name)
	}
}
