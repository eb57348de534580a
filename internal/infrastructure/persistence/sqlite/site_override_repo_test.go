package sqlite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatdeck/internal/domain/entity"
	"github.com/bnema/chatdeck/internal/infrastructure/persistence/sqlite"
)

func TestSiteOverrideRepository_SaveUpserts(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSiteOverrideRepository(openTestDB(t))

	require.NoError(t, repo.Save(ctx, &entity.SiteOverride{Host: "claude.ai", UserCSS: "a{}", Enabled: true}))
	require.NoError(t, repo.Save(ctx, &entity.SiteOverride{Host: "claude.ai", UserCSS: "b{}", UserJS: "x()", Enabled: false}))

	got, err := repo.Get(ctx, "claude.ai")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "b{}", got.UserCSS)
	assert.Equal(t, "x()", got.UserJS)
	assert.False(t, got.Enabled)
	assert.False(t, got.UpdatedAt.IsZero())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSiteOverrideRepository_GetMissingReturnsNil(t *testing.T) {
	repo := sqlite.NewSiteOverrideRepository(openTestDB(t))

	got, err := repo.Get(testCtx(), "poe.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSiteOverrideRepository_SetEnabled(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSiteOverrideRepository(openTestDB(t))

	assert.ErrorIs(t, repo.SetEnabled(ctx, "poe.com", true), entity.ErrOverrideNotFound)

	require.NoError(t, repo.Save(ctx, &entity.SiteOverride{Host: "poe.com", UserCSS: "a{}"}))
	require.NoError(t, repo.SetEnabled(ctx, "poe.com", true))

	got, err := repo.Get(ctx, "poe.com")
	require.NoError(t, err)
	assert.True(t, got.Enabled)
	assert.Equal(t, "a{}", got.UserCSS)
}

func TestSiteOverrideRepository_DeleteAndValidate(t *testing.T) {
	ctx := testCtx()
	repo := sqlite.NewSiteOverrideRepository(openTestDB(t))

	assert.ErrorIs(t, repo.Save(ctx, &entity.SiteOverride{Host: "*"}), entity.ErrInvalidOverride)

	require.NoError(t, repo.Save(ctx, &entity.SiteOverride{Host: "chatgpt.com"}))
	require.NoError(t, repo.Delete(ctx, "chatgpt.com"))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
