package config

import (
	"context"
	"fmt"

	"tasks-api/internal/domain"
	"tasks-api/internal/repository"
	"tasks-api/internal/repository/memory"
	"tasks-api/internal/repository/sqlite"
)

// CreateRepository builds the configured task store and, unless disabled,
// loads the seed tasks into it
func CreateRepository(ctx context.Context, config *Config) (repository.TaskRepository, error) {
	var repo repository.TaskRepository

	switch config.Store.Backend {
	case BackendMemory:
		repo = memory.New()
	case BackendSQLite:
		sqliteRepo, err := sqlite.New(ctx, sqlite.MemoryDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		repo = sqliteRepo
	default:
		return nil, &ConfigError{Field: "store.backend", Message: fmt.Sprintf("unknown backend %q", config.Store.Backend)}
	}

	if config.Store.Seed {
		if err := repository.Seed(ctx, repo, domain.SeedTasks()); err != nil {
			repo.Close()
			return nil, fmt.Errorf("failed to seed store: %w", err)
		}
	}

	return repo, nil
}
