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

package registry

import (
	"context"

	"github.com/chuci-qin/1024-exchange-listing-program/core/events"
	"github.com/chuci-qin/1024-exchange-listing-program/core/types"
	"github.com/chuci-qin/1024-exchange-listing-program/logging"

	"github.com/pkg/errors"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks github.com/chuci-qin/1024-exchange-listing-program/core/registry Admins,Broker

var (
	// ErrNotAdmin is returned on admin only operations called by anyone else.
	ErrNotAdmin = errors.New("not the protocol admin")
	// ErrTokenNotFound is returned when no token exists at the given index.
	ErrTokenNotFound = errors.New("token not found")
	// ErrSpotMarketNotFound is returned when no spot market exists at the given index.
	ErrSpotMarketNotFound = errors.New("spot market not found")
	// ErrPerpMarketNotFound is returned when no perpetual market exists at the given index.
	ErrPerpMarketNotFound = errors.New("perpetual market not found")
)

// Admins tells the registry which party holds the admin role.
type Admins interface {
	IsAdmin(party string) bool
}

// Broker makes events available to the rest of the system.
type Broker interface {
	Send(e events.Event)
}

// Engine is the registry of approved tokens and markets. Records are stored
// in approval order, their position is their index, so indices are dense and
// never reused. Creation goes through the listing engine, the registry only
// exposes the admin maintenance operations directly.
type Engine struct {
	Config
	log    *logging.Logger
	admins Admins
	broker Broker

	tokens      []*types.TokenEntry
	spotMarkets []*types.SpotMarket
	perpMarkets []*types.PerpMarket
}

// New instantiates a new registry engine.
func New(log *logging.Logger, cfg Config, admins Admins, broker Broker) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		Config: cfg,
		log:    log,
		admins: admins,
		broker: broker,
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

// AddToken appends an approved token. The caller assigns the index from the
// global counter, it must equal the next position.
func (e *Engine) AddToken(ctx context.Context, entry *types.TokenEntry) {
	e.tokens = append(e.tokens, entry.DeepClone())
	e.log.Info("token registered",
		logging.Uint64("index", entry.Index),
		logging.String("symbol", entry.Symbol),
	)
	e.broker.Send(events.NewTokenEvent(ctx, *entry))
}

// AddSpotMarket appends an approved spot market.
func (e *Engine) AddSpotMarket(ctx context.Context, mkt *types.SpotMarket) {
	e.spotMarkets = append(e.spotMarkets, mkt.DeepClone())
	e.log.Info("spot market registered",
		logging.Uint64("index", mkt.Index),
		logging.String("symbol", mkt.Symbol),
	)
	e.broker.Send(events.NewSpotMarketEvent(ctx, *mkt))
}

// AddPerpMarket appends an approved perpetual market.
func (e *Engine) AddPerpMarket(ctx context.Context, mkt *types.PerpMarket) {
	e.perpMarkets = append(e.perpMarkets, mkt.DeepClone())
	e.log.Info("perpetual market registered",
		logging.Uint64("index", mkt.Index),
		logging.String("symbol", mkt.Symbol),
	)
	e.broker.Send(events.NewPerpMarketEvent(ctx, *mkt))
}

// GetToken returns a copy of the token at the given index.
func (e *Engine) GetToken(index uint64) (*types.TokenEntry, error) {
	if index >= uint64(len(e.tokens)) {
		return nil, ErrTokenNotFound
	}
	return e.tokens[index].DeepClone(), nil
}

// GetSpotMarket returns a copy of the spot market at the given index.
func (e *Engine) GetSpotMarket(index uint64) (*types.SpotMarket, error) {
	if index >= uint64(len(e.spotMarkets)) {
		return nil, ErrSpotMarketNotFound
	}
	return e.spotMarkets[index].DeepClone(), nil
}

// GetPerpMarket returns a copy of the perpetual market at the given index.
func (e *Engine) GetPerpMarket(index uint64) (*types.PerpMarket, error) {
	if index >= uint64(len(e.perpMarkets)) {
		return nil, ErrPerpMarketNotFound
	}
	return e.perpMarkets[index].DeepClone(), nil
}

// IsTokenActive returns whether a token exists at the index and is active.
func (e *Engine) IsTokenActive(index uint64) bool {
	if index >= uint64(len(e.tokens)) {
		return false
	}
	return e.tokens[index].IsActive
}

// IsMarketActive returns whether a market of the given kind exists at the
// index and is active.
func (e *Engine) IsMarketActive(kind types.MarketKind, index uint64) bool {
	switch kind {
	case types.MarketKindSpot:
		if index >= uint64(len(e.spotMarkets)) {
			return false
		}
		return e.spotMarkets[index].IsActive
	case types.MarketKindPerp:
		if index >= uint64(len(e.perpMarkets)) {
			return false
		}
		return e.perpMarkets[index].IsActive
	default:
		return false
	}
}

// UpdateTokenStatus flips a token's active flag. Admin only.
func (e *Engine) UpdateTokenStatus(ctx context.Context, caller string, index uint64, isActive bool) error {
	if !e.admins.IsAdmin(caller) {
		return ErrNotAdmin
	}
	if index >= uint64(len(e.tokens)) {
		return ErrTokenNotFound
	}
	tkn := e.tokens[index]
	tkn.IsActive = isActive
	e.broker.Send(events.NewTokenEvent(ctx, *tkn))
	return nil
}

// UpdateSpotMarketStatus flips a spot market's active and paused flags.
// Admin only.
func (e *Engine) UpdateSpotMarketStatus(ctx context.Context, caller string, index uint64, isActive, isPaused bool) error {
	if !e.admins.IsAdmin(caller) {
		return ErrNotAdmin
	}
	if index >= uint64(len(e.spotMarkets)) {
		return ErrSpotMarketNotFound
	}
	mkt := e.spotMarkets[index]
	mkt.IsActive = isActive
	mkt.IsPaused = isPaused
	e.broker.Send(events.NewSpotMarketEvent(ctx, *mkt))
	return nil
}

// UpdatePerpMarketStatus flips a perpetual market's active and paused flags.
// Admin only.
func (e *Engine) UpdatePerpMarketStatus(ctx context.Context, caller string, index uint64, isActive, isPaused bool) error {
	if !e.admins.IsAdmin(caller) {
		return ErrNotAdmin
	}
	if index >= uint64(len(e.perpMarkets)) {
		return ErrPerpMarketNotFound
	}
	mkt := e.perpMarkets[index]
	mkt.IsActive = isActive
	mkt.IsPaused = isPaused
	e.broker.Send(events.NewPerpMarketEvent(ctx, *mkt))
	return nil
}

// UpdateSpotMarketParams applies a partial parameter update to a spot
// market, revalidating the result before committing it. Admin only.
func (e *Engine) UpdateSpotMarketParams(ctx context.Context, caller string, index uint64, update types.SpotMarketParamsUpdate) error {
	if !e.admins.IsAdmin(caller) {
		return ErrNotAdmin
	}
	if index >= uint64(len(e.spotMarkets)) {
		return ErrSpotMarketNotFound
	}
	mkt := e.spotMarkets[index].DeepClone()
	if update.TickSize != nil {
		mkt.TickSize = update.TickSize.Clone()
	}
	if update.LotSize != nil {
		mkt.LotSize = update.LotSize.Clone()
	}
	if update.TakerFeeBps != nil {
		mkt.TakerFeeBps = *update.TakerFeeBps
	}
	if update.MakerFeeBps != nil {
		mkt.MakerFeeBps = *update.MakerFeeBps
	}
	if update.MinOrderSize != nil {
		mkt.MinOrderSize = update.MinOrderSize.Clone()
	}
	if update.MaxOrderSize != nil {
		mkt.MaxOrderSize = update.MaxOrderSize.Clone()
	}
	details := &types.SpotMarketDetails{
		Symbol:      mkt.Symbol,
		TickSize:    mkt.TickSize,
		LotSize:     mkt.LotSize,
		TakerFeeBps: mkt.TakerFeeBps,
		MakerFeeBps: mkt.MakerFeeBps,
	}
	if err := types.ValidateSpotMarketDetails(details); err != nil {
		return err
	}
	e.spotMarkets[index] = mkt
	e.broker.Send(events.NewSpotMarketEvent(ctx, *mkt))
	return nil
}

// UpdatePerpMarketParams applies a partial parameter update to a perpetual
// market, revalidating the result before committing it. When both margin
// rates change the incoming initial rate is the bound the maintenance rate
// is checked against. Admin only.
func (e *Engine) UpdatePerpMarketParams(ctx context.Context, caller string, index uint64, update types.PerpMarketParamsUpdate) error {
	if !e.admins.IsAdmin(caller) {
		return ErrNotAdmin
	}
	if index >= uint64(len(e.perpMarkets)) {
		return ErrPerpMarketNotFound
	}
	mkt := e.perpMarkets[index].DeepClone()
	if update.TickSize != nil {
		mkt.TickSize = update.TickSize.Clone()
	}
	if update.LotSize != nil {
		mkt.LotSize = update.LotSize.Clone()
	}
	if update.TakerFeeBps != nil {
		mkt.TakerFeeBps = *update.TakerFeeBps
	}
	if update.MakerFeeBps != nil {
		mkt.MakerFeeBps = *update.MakerFeeBps
	}
	if update.MaxLeverage != nil {
		mkt.MaxLeverage = *update.MaxLeverage
	}
	if update.InitialMarginRate != nil {
		mkt.InitialMarginRate = *update.InitialMarginRate
	}
	if update.MaintenanceMarginRate != nil {
		mkt.MaintenanceMarginRate = *update.MaintenanceMarginRate
	}
	if update.MinOrderSize != nil {
		mkt.MinOrderSize = update.MinOrderSize.Clone()
	}
	if update.MaxOrderSize != nil {
		mkt.MaxOrderSize = update.MaxOrderSize.Clone()
	}
	if update.MaxOpenInterest != nil {
		mkt.MaxOpenInterest = update.MaxOpenInterest.Clone()
	}
	details := &types.PerpMarketDetails{
		Symbol:                mkt.Symbol,
		Oracle:                mkt.Oracle,
		TickSize:              mkt.TickSize,
		LotSize:               mkt.LotSize,
		MaxLeverage:           mkt.MaxLeverage,
		InitialMarginRate:     mkt.InitialMarginRate,
		MaintenanceMarginRate: mkt.MaintenanceMarginRate,
		TakerFeeBps:           mkt.TakerFeeBps,
		MakerFeeBps:           mkt.MakerFeeBps,
	}
	if err := types.ValidatePerpMarketDetails(details); err != nil {
		return err
	}
	e.perpMarkets[index] = mkt
	e.broker.Send(events.NewPerpMarketEvent(ctx, *mkt))
	return nil
}
