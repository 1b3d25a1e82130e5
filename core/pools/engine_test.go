// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package pools_test

import (
	"context"
	"testing"
	"time"

	"github.com/chuci-qin/1024-exchange-listing-program/core/pools"
	"github.com/chuci-qin/1024-exchange-listing-program/core/pools/mocks"
	"github.com/chuci-qin/1024-exchange-listing-program/core/types"
	"github.com/chuci-qin/1024-exchange-listing-program/libs/num"
	"github.com/chuci-qin/1024-exchange-listing-program/logging"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const creator = "creator-party"

type tstPoolEngine struct {
	*pools.Engine
	ctrl    *gomock.Controller
	vault   *mocks.MockVault
	markets *mocks.MockMarkets
	listing *mocks.MockListing
	oracles *mocks.MockOracles
	tsvc    *mocks.MockTimeService
	broker  *mocks.MockBroker

	now time.Time
}

func getTestPoolEngine(t *testing.T) *tstPoolEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	eng := &tstPoolEngine{
		ctrl:    ctrl,
		vault:   mocks.NewMockVault(ctrl),
		markets: mocks.NewMockMarkets(ctrl),
		listing: mocks.NewMockListing(ctrl),
		oracles: mocks.NewMockOracles(ctrl),
		tsvc:    mocks.NewMockTimeService(ctrl),
		broker:  mocks.NewMockBroker(ctrl),
		now:     time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	eng.tsvc.EXPECT().GetTimeNow().AnyTimes().DoAndReturn(func() time.Time {
		return eng.now
	})
	eng.broker.EXPECT().Send(gomock.Any()).AnyTimes()

	eng.Engine = pools.New(
		logging.NewTestLogger(),
		pools.NewDefaultConfig(),
		eng.vault, eng.markets, eng.listing, eng.oracles, eng.tsvc, eng.broker,
	)
	return eng
}

func (e *tstPoolEngine) newPool(t *testing.T) *types.LiquidityPool {
	t.Helper()
	e.listing.EXPECT().IsPaused().Times(1).Return(false)
	e.markets.EXPECT().IsMarketActive(types.MarketKindSpot, uint64(0)).Times(1).Return(true)
	pool, err := e.Create(
		context.Background(), creator, types.MarketKindSpot, 0,
		num.NewUint(100), num.NewUint(200), 10, 50,
	)
	require.NoError(t, err)
	return pool
}

func (e *tstPoolEngine) fundPool(t *testing.T, key types.PoolKey, base, quote uint64) {
	t.Helper()
	e.vault.EXPECT().TransferToPool(creator, key, gomock.Any(), gomock.Any()).Times(1).Return(nil)
	require.NoError(t, e.Fund(context.Background(), creator, key, num.NewUint(base), num.NewUint(quote)))
}

func TestPoolEngine(t *testing.T) {
	t.Run("Creating a pool on an active market", testPoolCreate)
	t.Run("Creating while paused fails", testPoolCreateWhilePaused)
	t.Run("Creating on an inactive market fails", testPoolCreateInactiveMarket)
	t.Run("Creating the same pool twice fails", testPoolCreateDuplicate)
	t.Run("Funding requires at least one leg", testPoolFund)
	t.Run("Only the creator can operate the pool", testPoolCreatorOnly)
	t.Run("Adjusting params revalidates the result", testPoolAdjustParams)
	t.Run("Refreshing is blocked on a stale oracle price", testPoolRefreshStaleOracle)
	t.Run("Withdrawals are capped by the pool balances", testPoolWithdraw)
	t.Run("Retiring is blocked while funds remain", testPoolRetire)
}

func testPoolCreate(t *testing.T) {
	eng := getTestPoolEngine(t)
	defer eng.ctrl.Finish()

	pool := eng.newPool(t)
	assert.True(t, pool.IsActive)
	assert.True(t, pool.BaseAmount.IsZero())
	assert.True(t, pool.QuoteAmount.IsZero())
	assert.True(t, pool.LPTokenSupply.IsZero())
	assert.Equal(t, eng.now, pool.CreatedAt)
	assert.True(t, pool.UnlockTime.IsZero())

	got, err := eng.GetPool(pool.Key)
	require.NoError(t, err)
	assert.Equal(t, pool.Key, got.Key)
}

func testPoolCreateWhilePaused(t *testing.T) {
	eng := getTestPoolEngine(t)
	defer eng.ctrl.Finish()

	eng.listing.EXPECT().IsPaused().Times(1).Return(true)
	_, err := eng.Create(
		context.Background(), creator, types.MarketKindSpot, 0,
		num.NewUint(100), num.NewUint(200), 10, 50,
	)
	require.ErrorIs(t, err, pools.ErrListingPaused)
}

func testPoolCreateInactiveMarket(t *testing.T) {
	eng := getTestPoolEngine(t)
	defer eng.ctrl.Finish()

	eng.listing.EXPECT().IsPaused().Times(1).Return(false)
	eng.markets.EXPECT().IsMarketActive(types.MarketKindPerp, uint64(3)).Times(1).Return(false)
	_, err := eng.Create(
		context.Background(), creator, types.MarketKindPerp, 3,
		num.NewUint(100), num.NewUint(200), 10, 50,
	)
	require.ErrorIs(t, err, pools.ErrMarketNotActive)
}

func testPoolCreateDuplicate(t *testing.T) {
	eng := getTestPoolEngine(t)
	defer eng.ctrl.Finish()

	eng.newPool(t)

	eng.listing.EXPECT().IsPaused().Times(1).Return(false)
	eng.markets.EXPECT().IsMarketActive(types.MarketKindSpot, uint64(0)).Times(1).Return(true)
	_, err := eng.Create(
		context.Background(), creator, types.MarketKindSpot, 0,
		num.NewUint(100), num.NewUint(200), 10, 50,
	)
	require.ErrorIs(t, err, pools.ErrPoolAlreadyExists)
}

func testPoolFund(t *testing.T) {
	eng := getTestPoolEngine(t)
	defer eng.ctrl.Finish()

	pool := eng.newPool(t)

	err := eng.Fund(context.Background(), creator, pool.Key, num.UintZero(), num.UintZero())
	require.ErrorIs(t, err, pools.ErrInvalidAmount)

	eng.fundPool(t, pool.Key, 1000, 0)
	eng.fundPool(t, pool.Key, 0, 5000)

	got, _ := eng.GetPool(pool.Key)
	assert.True(t, got.BaseAmount.EQUint64(1000))
	assert.True(t, got.QuoteAmount.EQUint64(5000))
}

func testPoolCreatorOnly(t *testing.T) {
	eng := getTestPoolEngine(t)
	defer eng.ctrl.Finish()

	pool := eng.newPool(t)
	ctx := context.Background()

	require.ErrorIs(t, eng.Fund(ctx, "someone", pool.Key, num.NewUint(1), num.UintZero()), pools.ErrNotPoolCreator)
	require.ErrorIs(t, eng.AdjustParams(ctx, "someone", pool.Key, types.PoolParamsUpdate{}), pools.ErrNotPoolCreator)
	require.ErrorIs(t, eng.RefreshOrders(ctx, "someone", pool.Key), pools.ErrNotPoolCreator)
	require.ErrorIs(t, eng.WithdrawProfit(ctx, "someone", pool.Key, num.NewUint(1), num.UintZero()), pools.ErrNotPoolCreator)
	require.ErrorIs(t, eng.Retire(ctx, "someone", pool.Key), pools.ErrNotPoolCreator)

	unknown := types.PoolKey{MarketKind: types.MarketKindPerp, MarketIndex: 9, Creator: creator}
	require.ErrorIs(t, eng.RefreshOrders(ctx, creator, unknown), pools.ErrPoolNotFound)

	// a market without a feed requotes off book state alone
	eng.oracles.EXPECT().LatestPrice(types.MarketKindSpot, uint64(0)).Times(1).Return(nil, errors.New("no feed"))
	require.NoError(t, eng.RefreshOrders(ctx, creator, pool.Key))
}

func testPoolRefreshStaleOracle(t *testing.T) {
	eng := getTestPoolEngine(t)
	defer eng.ctrl.Finish()

	pool := eng.newPool(t)
	ctx := context.Background()

	stale := &types.PriceObservation{
		Price:       num.NewUint(1_000_000),
		Confidence:  num.NewUint(100),
		Exponent:    6,
		PublishedAt: eng.now.Add(-2 * time.Minute),
	}
	eng.oracles.EXPECT().LatestPrice(types.MarketKindSpot, uint64(0)).Times(1).Return(stale, nil)
	require.ErrorIs(t, eng.RefreshOrders(ctx, creator, pool.Key), types.ErrStaleOraclePrice)

	fresh := &types.PriceObservation{
		Price:       num.NewUint(1_000_000),
		Confidence:  num.NewUint(100),
		Exponent:    6,
		PublishedAt: eng.now,
	}
	eng.oracles.EXPECT().LatestPrice(types.MarketKindSpot, uint64(0)).Times(1).Return(fresh, nil)
	require.NoError(t, eng.RefreshOrders(ctx, creator, pool.Key))
}

func testPoolAdjustParams(t *testing.T) {
	eng := getTestPoolEngine(t)
	defer eng.ctrl.Finish()

	pool := eng.newPool(t)
	ctx := context.Background()

	// moving the lower bound above the upper bound is refused
	err := eng.AdjustParams(ctx, creator, pool.Key, types.PoolParamsUpdate{
		PriceLower: num.NewUint(300),
	})
	require.ErrorIs(t, err, types.ErrInvalidPriceRange)

	density := uint64(20)
	require.NoError(t, eng.AdjustParams(ctx, creator, pool.Key, types.PoolParamsUpdate{
		PriceUpper:   num.NewUint(400),
		OrderDensity: &density,
	}))

	got, _ := eng.GetPool(pool.Key)
	assert.True(t, got.PriceLower.EQUint64(100))
	assert.True(t, got.PriceUpper.EQUint64(400))
	assert.EqualValues(t, 20, got.OrderDensity)
	assert.EqualValues(t, 50, got.SpreadBps)
}

func testPoolWithdraw(t *testing.T) {
	eng := getTestPoolEngine(t)
	defer eng.ctrl.Finish()

	pool := eng.newPool(t)
	eng.fundPool(t, pool.Key, 1000, 5000)
	ctx := context.Background()

	err := eng.WithdrawProfit(ctx, creator, pool.Key, num.UintZero(), num.UintZero())
	require.ErrorIs(t, err, pools.ErrInvalidAmount)

	err = eng.WithdrawProfit(ctx, creator, pool.Key, num.NewUint(1001), num.UintZero())
	require.ErrorIs(t, err, pools.ErrInsufficientPoolBalance)

	eng.vault.EXPECT().TransferFromPool(pool.Key, creator, gomock.Any(), gomock.Any()).Times(1).Return(nil)
	require.NoError(t, eng.WithdrawProfit(ctx, creator, pool.Key, num.NewUint(400), num.NewUint(5000)))

	got, _ := eng.GetPool(pool.Key)
	assert.True(t, got.BaseAmount.EQUint64(600))
	assert.True(t, got.QuoteAmount.IsZero())
}

func testPoolRetire(t *testing.T) {
	eng := getTestPoolEngine(t)
	defer eng.ctrl.Finish()

	pool := eng.newPool(t)
	eng.fundPool(t, pool.Key, 1000, 0)
	ctx := context.Background()

	err := eng.Retire(ctx, creator, pool.Key)
	require.ErrorIs(t, err, pools.ErrPoolHasRemainingFunds)

	eng.vault.EXPECT().TransferFromPool(pool.Key, creator, gomock.Any(), gomock.Any()).Times(1).Return(nil)
	require.NoError(t, eng.WithdrawProfit(ctx, creator, pool.Key, num.NewUint(1000), num.UintZero()))

	require.NoError(t, eng.Retire(ctx, creator, pool.Key))

	got, _ := eng.GetPool(pool.Key)
	assert.False(t, got.IsActive)
	assert.Equal(t, eng.now, got.RetireAt)

	// a retired pool accepts no further operations
	err = eng.Fund(ctx, creator, pool.Key, num.NewUint(1), num.UintZero())
	require.ErrorIs(t, err, pools.ErrPoolNotActive)
}
