package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArowuTest/bridgetunes-lottery/internal/models"
	"github.com/ArowuTest/bridgetunes-lottery/internal/repositories"
	"github.com/ArowuTest/bridgetunes-lottery/internal/repositories/memory"
	"github.com/ArowuTest/bridgetunes-lottery/pkg/rng"
)

func newTestGame(t *testing.T, cfg models.LotteryConfig, random rng.Source) *GameServiceImpl {
	t.Helper()
	lottery, err := NewLottery(cfg, rng.NewMathSource(11), WithTicketGenerator(&sequentialGenerator{}))
	require.NoError(t, err)
	return NewGameService(lottery, memory.NewPlayerRepository(), random)
}

func TestGameServiceRegisterPlayer(t *testing.T) {
	ctx := context.Background()
	game := newTestGame(t, models.DefaultLotteryConfig(), rng.NewMathSource(1))

	p, err := game.RegisterPlayer(ctx, " Player1 ", decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "Player1", p.Name)
	assert.True(t, p.Balance().Equal(dollars("10")))

	p2, err := game.RegisterPlayer(ctx, "Player2", dollars("25"))
	require.NoError(t, err)
	assert.True(t, p2.Balance().Equal(dollars("25")))

	_, err = game.RegisterPlayer(ctx, "Player1", decimal.Zero)
	assert.ErrorIs(t, err, repositories.ErrPlayerExists)

	_, err = game.RegisterPlayer(ctx, "   ", decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = game.RegisterPlayer(ctx, "Player3", dollars("-1"))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	players, err := game.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Len(t, players, 2)
}

func TestGameServiceBuyTickets(t *testing.T) {
	ctx := context.Background()
	game := newTestGame(t, models.DefaultLotteryConfig(), rng.NewMathSource(1))
	_, err := game.RegisterPlayer(ctx, "Player1", decimal.Zero)
	require.NoError(t, err)

	p, err := game.BuyTickets(ctx, "Player1", 4)
	require.NoError(t, err)
	assert.True(t, p.Balance().Equal(dollars("6")))

	tickets, err := game.GetTickets(ctx, "Player1")
	require.NoError(t, err)
	assert.Len(t, tickets, 4)

	_, err = game.BuyTickets(ctx, "Player1", 7)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	_, err = game.BuyTickets(ctx, "Nobody", 1)
	assert.ErrorIs(t, err, repositories.ErrPlayerNotFound)

	_, err = game.BuyTickets(ctx, "Player1", 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	summary := game.Summary(ctx)
	assert.Equal(t, models.DrawStatusOpen, summary.Status)
	assert.Equal(t, 1, summary.Players)
	assert.Equal(t, 4, summary.TicketsInPool)
	assert.True(t, summary.TotalRevenue.Equal(dollars("4")))
}

func TestGameServiceSimulateCPUPlayers(t *testing.T) {
	ctx := context.Background()
	cfg := models.DefaultLotteryConfig()
	cfg.MinPlayers = 3
	cfg.MaxPlayers = 3
	game := newTestGame(t, cfg, rng.NewScriptedSource(3, 4, 10))

	_, err := game.RegisterPlayer(ctx, "Player1", decimal.Zero)
	require.NoError(t, err)

	players, err := game.SimulateCPUPlayers(ctx, 2)
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Player2", players[0].Name)
	assert.Equal(t, "Player3", players[1].Name)
	assert.True(t, players[0].Balance().Equal(dollars("6")))
	assert.True(t, players[1].Balance().IsZero())

	summary := game.Summary(ctx)
	assert.Equal(t, 3, summary.Players)
	assert.Equal(t, 14, summary.TicketsInPool)
	assert.True(t, summary.TotalRevenue.Equal(dollars("14")))
}

func TestGameServiceSimulateCPUPlayersWithRandomCounts(t *testing.T) {
	ctx := context.Background()
	game := newTestGame(t, models.DefaultLotteryConfig(), rng.NewMathSource(8))

	players, err := game.SimulateCPUPlayers(ctx, 1)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(players), 10)
	assert.LessOrEqual(t, len(players), 15)

	spent := decimal.Zero
	for _, p := range players {
		tickets, err := game.GetTickets(ctx, p.Name)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(tickets), 1)
		assert.LessOrEqual(t, len(tickets), 10)
		spent = spent.Add(dollars("10").Sub(p.Balance()))
	}
	assert.True(t, spent.Equal(game.Summary(ctx).TotalRevenue))
}

func TestGameServiceDraw(t *testing.T) {
	ctx := context.Background()
	game := newTestGame(t, models.DefaultLotteryConfig(), rng.NewMathSource(5))

	_, err := game.Result(ctx)
	assert.ErrorIs(t, err, ErrNoResult)

	_, err = game.Draw(ctx)
	assert.ErrorIs(t, err, ErrNoTickets)

	_, err = game.SimulateCPUPlayers(ctx, 1)
	require.NoError(t, err)

	result, err := game.Draw(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Winners)
	assert.True(t, result.TotalRevenue.Equal(result.TotalPrizesAwarded.Add(result.HouseProfit)))

	stored, err := game.Result(ctx)
	require.NoError(t, err)
	assert.Equal(t, result, stored)

	_, err = game.Draw(ctx)
	assert.ErrorIs(t, err, ErrDrawCompleted)

	_, err = game.SimulateCPUPlayers(ctx, 20)
	assert.ErrorIs(t, err, ErrLotteryClosed)

	assert.Equal(t, models.DrawStatusClosed, game.Summary(ctx).Status)
	assert.True(t, game.Summary(ctx).HouseProfit.Equal(result.HouseProfit))
}
