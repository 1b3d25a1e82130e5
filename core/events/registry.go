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

package events

import (
	"context"

	"github.com/chuci-qin/1024-exchange-listing-program/core/types"
)

// Token is sent when a token registry entry is created or updated.
type Token struct {
	*Base
	t types.TokenEntry
}

func NewTokenEvent(ctx context.Context, t types.TokenEntry) *Token {
	return &Token{
		Base: newBase(ctx, TokenEvent),
		t:    *t.DeepClone(),
	}
}

func (t Token) Token() types.TokenEntry {
	return t.t
}

// SpotMarket is sent when a spot market registry entry is created or updated.
type SpotMarket struct {
	*Base
	m types.SpotMarket
}

func NewSpotMarketEvent(ctx context.Context, m types.SpotMarket) *SpotMarket {
	return &SpotMarket{
		Base: newBase(ctx, SpotMarketEvent),
		m:    *m.DeepClone(),
	}
}

func (m SpotMarket) Market() types.SpotMarket {
	return m.m
}

// PerpMarket is sent when a perpetual market registry entry is created or
// updated.
type PerpMarket struct {
	*Base
	m types.PerpMarket
}

func NewPerpMarketEvent(ctx context.Context, m types.PerpMarket) *PerpMarket {
	return &PerpMarket{
		Base: newBase(ctx, PerpMarketEvent),
		m:    *m.DeepClone(),
	}
}

func (m PerpMarket) Market() types.PerpMarket {
	return m.m
}

// LiquidityPool is sent when a bootstrap pool is created or mutated.
type LiquidityPool struct {
	*Base
	p types.LiquidityPool
}

func NewLiquidityPoolEvent(ctx context.Context, p types.LiquidityPool) *LiquidityPool {
	return &LiquidityPool{
		Base: newBase(ctx, LiquidityPoolEvent),
		p:    *p.DeepClone(),
	}
}

func (p LiquidityPool) Pool() types.LiquidityPool {
	return p.p
}
