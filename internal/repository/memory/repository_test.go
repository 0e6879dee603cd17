package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"tasks-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_RemoveFirstOfDuplicates(t *testing.T) {
	repo := New()
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, &domain.Task{ID: 3, Name: "first"}))
	require.NoError(t, repo.Append(ctx, &domain.Task{ID: 3, Name: "second"}))

	removed, err := repo.RemoveByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "first", removed.Name)

	left, err := repo.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "second", left.Name)
}

func TestRepository_ConcurrentAppends(t *testing.T) {
	repo := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_ = repo.Append(ctx, &domain.Task{ID: id, Name: fmt.Sprintf("Task %d", id)})
		}(int64(i))
	}
	wg.Wait()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, count)

	maxID, err := repo.MaxID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(50), maxID)
}

func TestRepository_EmptyList(t *testing.T) {
	tasks, err := New().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}
