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

package pools

import (
	"context"
	"time"

	"github.com/chuci-qin/1024-exchange-listing-program/core/events"
	"github.com/chuci-qin/1024-exchange-listing-program/core/types"
	"github.com/chuci-qin/1024-exchange-listing-program/libs/num"
	"github.com/chuci-qin/1024-exchange-listing-program/logging"
	"github.com/chuci-qin/1024-exchange-listing-program/metrics"

	"github.com/pkg/errors"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks github.com/chuci-qin/1024-exchange-listing-program/core/pools Vault,Markets,Listing,Oracles,TimeService,Broker

var (
	// ErrPoolNotFound is returned when no pool matches the key.
	ErrPoolNotFound = errors.New("liquidity pool not found")
	// ErrPoolAlreadyExists is returned when the creator already runs a pool on the market.
	ErrPoolAlreadyExists = errors.New("liquidity pool already exists")
	// ErrNotPoolCreator is returned on creator only operations called by anyone else.
	ErrNotPoolCreator = errors.New("not the pool creator")
	// ErrPoolNotActive is returned on operations against a retired pool.
	ErrPoolNotActive = errors.New("liquidity pool not active")
	// ErrMarketNotActive is returned when the target market is unknown or inactive.
	ErrMarketNotActive = errors.New("market not active")
	// ErrListingPaused is returned on pool creation while the protocol is paused.
	ErrListingPaused = errors.New("listing is paused")
	// ErrInvalidAmount is returned when both legs of a transfer are zero.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientPoolBalance is returned when a withdrawal exceeds a pool balance.
	ErrInsufficientPoolBalance = errors.New("insufficient pool balance")
	// ErrPoolHasRemainingFunds is returned on retiring a pool that still holds funds.
	ErrPoolHasRemainingFunds = errors.New("pool has remaining funds")
	// ErrArithmeticOverflow is returned when a checked balance update overflows.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)

// Vault moves pool funds between the creator and the pool custody accounts.
type Vault interface {
	TransferToPool(party string, key types.PoolKey, base, quote *num.Uint) error
	TransferFromPool(key types.PoolKey, party string, base, quote *num.Uint) error
}

// Markets resolves market activity from the registry.
type Markets interface {
	IsMarketActive(kind types.MarketKind, index uint64) bool
}

// Listing exposes the protocol pause flag.
type Listing interface {
	IsPaused() bool
}

// Oracles provides the latest observation of a market's price feed. An
// error means the market has no feed.
type Oracles interface {
	LatestPrice(kind types.MarketKind, index uint64) (*types.PriceObservation, error)
}

// TimeService gives the engine the current protocol time.
type TimeService interface {
	GetTimeNow() time.Time
}

// Broker makes events available to the rest of the system.
type Broker interface {
	Send(e events.Event)
}

// Engine manages bootstrap liquidity pools. A pool is creator funded,
// quotes both sides of one approved market inside a fixed price range, and
// can only be retired once it has been drained.
type Engine struct {
	Config
	log *logging.Logger

	vault   Vault
	markets Markets
	listing Listing
	oracles Oracles
	timeSvc TimeService
	broker  Broker

	pools map[types.PoolKey]*types.LiquidityPool
}

// New instantiates a new liquidity pool engine.
func New(
	log *logging.Logger,
	cfg Config,
	vault Vault,
	markets Markets,
	listing Listing,
	oracles Oracles,
	timeSvc TimeService,
	broker Broker,
) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		Config:  cfg,
		log:     log,
		vault:   vault,
		markets: markets,
		listing: listing,
		oracles: oracles,
		timeSvc: timeSvc,
		broker:  broker,
		pools:   map[types.PoolKey]*types.LiquidityPool{},
	}
}

// ReloadConf updates the internal configuration.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}
	e.Config = cfg
}

// Create opens an empty pool on an active market. The creator funds it
// separately through Fund.
func (e *Engine) Create(
	ctx context.Context,
	creator string,
	kind types.MarketKind,
	marketIndex uint64,
	priceLower, priceUpper *num.Uint,
	orderDensity, spreadBps uint64,
) (*types.LiquidityPool, error) {
	if e.listing.IsPaused() {
		return nil, ErrListingPaused
	}
	if !e.markets.IsMarketActive(kind, marketIndex) {
		return nil, ErrMarketNotActive
	}
	if err := types.ValidatePoolParams(priceLower, priceUpper, orderDensity, spreadBps); err != nil {
		return nil, err
	}
	key := types.PoolKey{
		MarketKind:  kind,
		MarketIndex: marketIndex,
		Creator:     creator,
	}
	if _, ok := e.pools[key]; ok {
		return nil, ErrPoolAlreadyExists
	}
	pool := &types.LiquidityPool{
		Key:           key,
		BaseAmount:    num.UintZero(),
		QuoteAmount:   num.UintZero(),
		LPTokenSupply: num.UintZero(),
		PriceLower:    priceLower.Clone(),
		PriceUpper:    priceUpper.Clone(),
		OrderDensity:  orderDensity,
		SpreadBps:     spreadBps,
		IsActive:      true,
		CreatedAt:     e.timeSvc.GetTimeNow(),
	}
	e.pools[key] = pool

	metrics.PoolOpInc("create")
	e.log.Info("liquidity pool created", logging.String("pool", key.String()))
	e.broker.Send(events.NewLiquidityPoolEvent(ctx, *pool))
	return pool.DeepClone(), nil
}

// Fund moves creator funds into the pool. At least one leg must be set.
func (e *Engine) Fund(ctx context.Context, caller string, key types.PoolKey, base, quote *num.Uint) error {
	pool, err := e.activePool(caller, key)
	if err != nil {
		return err
	}
	if base.IsZero() && quote.IsZero() {
		return ErrInvalidAmount
	}
	if err := e.vault.TransferToPool(caller, key, base, quote); err != nil {
		return err
	}
	newBase, overflow := num.UintZero().AddOverflow(pool.BaseAmount, base)
	if overflow {
		return ErrArithmeticOverflow
	}
	newQuote, overflow := num.UintZero().AddOverflow(pool.QuoteAmount, quote)
	if overflow {
		return ErrArithmeticOverflow
	}
	pool.BaseAmount = newBase
	pool.QuoteAmount = newQuote
	metrics.PoolOpInc("fund")
	e.log.Info("liquidity pool funded",
		logging.String("pool", key.String()),
		logging.String("base", base.String()),
		logging.String("quote", quote.String()),
	)
	e.broker.Send(events.NewLiquidityPoolEvent(ctx, *pool))
	return nil
}

// AdjustParams applies a partial update to the pool's quoting parameters,
// revalidating the result before committing it.
func (e *Engine) AdjustParams(ctx context.Context, caller string, key types.PoolKey, update types.PoolParamsUpdate) error {
	pool, err := e.activePool(caller, key)
	if err != nil {
		return err
	}
	lower, upper := pool.PriceLower, pool.PriceUpper
	density, spread := pool.OrderDensity, pool.SpreadBps
	if update.PriceLower != nil {
		lower = update.PriceLower
	}
	if update.PriceUpper != nil {
		upper = update.PriceUpper
	}
	if update.OrderDensity != nil {
		density = *update.OrderDensity
	}
	if update.SpreadBps != nil {
		spread = *update.SpreadBps
	}
	if err := types.ValidatePoolParams(lower, upper, density, spread); err != nil {
		return err
	}
	pool.PriceLower = lower.Clone()
	pool.PriceUpper = upper.Clone()
	pool.OrderDensity = density
	pool.SpreadBps = spread

	metrics.PoolOpInc("adjust")
	e.log.Info("liquidity pool params adjusted", logging.String("pool", key.String()))
	e.broker.Send(events.NewLiquidityPoolEvent(ctx, *pool))
	return nil
}

// RefreshOrders requotes the pool's resting orders on the market. The order
// placement itself is driven by the matching collaborators, this is the
// protocol level trigger. Markets with a price feed refuse to requote on a
// stale or unusable observation, markets without one quote off book state.
func (e *Engine) RefreshOrders(ctx context.Context, caller string, key types.PoolKey) error {
	pool, err := e.activePool(caller, key)
	if err != nil {
		return err
	}
	if obs, err := e.oracles.LatestPrice(key.MarketKind, key.MarketIndex); err == nil {
		if err := types.ValidateOraclePrice(obs.Price, obs.Confidence, obs.Exponent, obs.PublishedAt, e.timeSvc.GetTimeNow()); err != nil {
			return err
		}
	}
	metrics.PoolOpInc("refresh")
	if e.log.IsDebug() {
		e.log.Debug("liquidity pool orders refreshed", logging.String("pool", key.String()))
	}
	e.broker.Send(events.NewLiquidityPoolEvent(ctx, *pool))
	return nil
}

// WithdrawProfit moves funds from the pool back to the creator. At least
// one leg must be set and neither may exceed the pool balance.
func (e *Engine) WithdrawProfit(ctx context.Context, caller string, key types.PoolKey, base, quote *num.Uint) error {
	pool, err := e.activePool(caller, key)
	if err != nil {
		return err
	}
	if base.IsZero() && quote.IsZero() {
		return ErrInvalidAmount
	}
	if pool.BaseAmount.LT(base) || pool.QuoteAmount.LT(quote) {
		return ErrInsufficientPoolBalance
	}
	if err := e.vault.TransferFromPool(key, caller, base, quote); err != nil {
		return err
	}
	pool.BaseAmount.Sub(pool.BaseAmount, base)
	pool.QuoteAmount.Sub(pool.QuoteAmount, quote)

	metrics.PoolOpInc("withdraw")
	e.log.Info("liquidity pool profit withdrawn",
		logging.String("pool", key.String()),
		logging.String("base", base.String()),
		logging.String("quote", quote.String()),
	)
	e.broker.Send(events.NewLiquidityPoolEvent(ctx, *pool))
	return nil
}

// Retire deactivates a drained pool. A pool still holding funds on either
// leg cannot be retired.
func (e *Engine) Retire(ctx context.Context, caller string, key types.PoolKey) error {
	pool, err := e.activePool(caller, key)
	if err != nil {
		return err
	}
	if !pool.BaseAmount.IsZero() || !pool.QuoteAmount.IsZero() {
		return ErrPoolHasRemainingFunds
	}
	pool.IsActive = false
	pool.RetireAt = e.timeSvc.GetTimeNow()

	metrics.PoolOpInc("retire")
	e.log.Info("liquidity pool retired", logging.String("pool", key.String()))
	e.broker.Send(events.NewLiquidityPoolEvent(ctx, *pool))
	return nil
}

// GetPool returns a copy of the pool matching the key.
func (e *Engine) GetPool(key types.PoolKey) (*types.LiquidityPool, error) {
	pool, ok := e.pools[key]
	if !ok {
		return nil, ErrPoolNotFound
	}
	return pool.DeepClone(), nil
}

func (e *Engine) activePool(caller string, key types.PoolKey) (*types.LiquidityPool, error) {
	pool, ok := e.pools[key]
	if !ok {
		return nil, ErrPoolNotFound
	}
	if caller != key.Creator {
		return nil, ErrNotPoolCreator
	}
	if !pool.IsActive {
		return nil, ErrPoolNotActive
	}
	return pool, nil
}
