package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/bridgetunes-lottery/internal/repositories"
)

func TestPlayerRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPlayerRepository()

	require.NoError(t, repo.Create(ctx, newPlayer("Player1")))
	require.NoError(t, repo.Create(ctx, newPlayer("Player2")))

	err := repo.Create(ctx, newPlayer("Player1"))
	assert.ErrorIs(t, err, repositories.ErrPlayerExists)

	p, err := repo.FindByName(ctx, "Player2")
	require.NoError(t, err)
	assert.Equal(t, "Player2", p.Name)

	_, err = repo.FindByName(ctx, "Player9")
	assert.ErrorIs(t, err, repositories.ErrPlayerNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Player1", all[0].Name)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
