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

package types

import (
	"fmt"
	"time"

	"github.com/chuci-qin/1024-exchange-listing-program/libs/num"
)

// PoolKey uniquely identifies a bootstrap liquidity pool. One creator can
// run at most one pool per market.
type PoolKey struct {
	MarketKind  MarketKind
	MarketIndex uint64
	Creator     string
}

func (k PoolKey) String() string {
	return fmt.Sprintf("%s/%d/%s", k.MarketKind, k.MarketIndex, k.Creator)
}

// LiquidityPool is a creator funded bootstrap pool quoting both sides of an
// approved market within a fixed price range.
type LiquidityPool struct {
	Key PoolKey

	BaseAmount    *num.Uint
	QuoteAmount   *num.Uint
	LPTokenSupply *num.Uint

	PriceLower *num.Uint
	PriceUpper *num.Uint

	// OrderDensity is the number of price levels quoted on each side,
	// SpreadBps the distance between the two innermost quotes.
	OrderDensity uint64
	SpreadBps    uint64

	IsActive   bool
	CreatedAt  time.Time
	UnlockTime time.Time
	RetireAt   time.Time
}

func (p LiquidityPool) DeepClone() *LiquidityPool {
	cpy := p
	cpy.BaseAmount = p.BaseAmount.Clone()
	cpy.QuoteAmount = p.QuoteAmount.Clone()
	cpy.LPTokenSupply = p.LPTokenSupply.Clone()
	cpy.PriceLower = p.PriceLower.Clone()
	cpy.PriceUpper = p.PriceUpper.Clone()
	return &cpy
}
