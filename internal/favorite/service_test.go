package favorite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/carlot/internal/favorite"
	"github.com/MrJamesThe3rd/carlot/internal/favorite/store"
)

func TestService_Toggle(t *testing.T) {
	ctx := context.Background()
	svc := favorite.NewService(store.NewMemory())

	on, err := svc.Toggle(ctx, "1")
	require.NoError(t, err)
	assert.True(t, on)

	fav, err := svc.IsFavorite(ctx, "1")
	require.NoError(t, err)
	assert.True(t, fav)

	off, err := svc.Toggle(ctx, "1")
	require.NoError(t, err)
	assert.False(t, off)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = svc.Toggle(ctx, "  ")
	assert.ErrorIs(t, err, favorite.ErrInvalidVehicle)
}

func TestService_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc := favorite.NewService(store.NewMemory())

	for _, id := range []string{"1", "3", "2"} {
		_, err := svc.Toggle(ctx, id)
		require.NoError(t, err)
	}

	ids, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "1"}, ids)
}

type failingRepo struct {
	favorite.Repository
}

func (failingRepo) Exists(context.Context, string) (bool, error) {
	return false, errors.New("db down")
}

func TestService_ToggleRepoError(t *testing.T) {
	svc := favorite.NewService(failingRepo{})

	_, err := svc.Toggle(context.Background(), "1")
	assert.ErrorContains(t, err, "db down")
}
