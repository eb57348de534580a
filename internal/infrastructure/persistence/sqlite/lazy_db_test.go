package sqlite_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	assert.False(t, lazy.IsInitialized(), "LazyDB should not be initialized before DB() is called")
}

func TestLazyDB_ConcurrentAccessSharesConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 10
	var wg sync.WaitGroup
	dbs := make([]any, goroutines)
	errs := make([]error, goroutines)

	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
	assert.True(t, lazy.IsInitialized())
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	assert.NoError(t, lazy.Close())
}

func TestLazyDB_UseAfterClose(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	_, err := lazy.DB(testCtx())
	require.NoError(t, err)

	require.NoError(t, lazy.Close())
	require.NoError(t, lazy.Close(), "second close is a no-op")
	assert.False(t, lazy.IsInitialized())

	_, err = lazy.DB(testCtx())
	assert.ErrorContains(t, err, "database closed")
}

func TestLazyDB_EmptyPathFails(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database initialization failed")
	assert.False(t, lazy.IsInitialized())
}

func TestLazyRepositories_OpenOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	overrides := sqlite.NewLazySiteOverrideRepository(lazy)
	convs := sqlite.NewLazyConversationRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	got, err := overrides.Get(ctx, "claude.ai")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.True(t, lazy.IsInitialized())

	conv := entity.NewConversation("lazy")
	require.NoError(t, convs.Create(ctx, conv))
	list, err := convs.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
