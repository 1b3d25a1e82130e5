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
	"time"

	"github.com/chuci-qin/1024-exchange-listing-program/libs/num"
)

// SpotMarketParamsUpdate is a partial update of the tunable parameters of a
// spot market. Nil fields are left untouched.
type SpotMarketParamsUpdate struct {
	TickSize     *num.Uint
	LotSize      *num.Uint
	TakerFeeBps  *uint64
	MakerFeeBps  *int64
	MinOrderSize *num.Uint
	MaxOrderSize *num.Uint
}

// PerpMarketParamsUpdate is a partial update of the tunable parameters of a
// perpetual market. Nil fields are left untouched.
type PerpMarketParamsUpdate struct {
	TickSize              *num.Uint
	LotSize               *num.Uint
	TakerFeeBps           *uint64
	MakerFeeBps           *int64
	MaxLeverage           *uint64
	InitialMarginRate     *uint64
	MaintenanceMarginRate *uint64
	MinOrderSize          *num.Uint
	MaxOrderSize          *num.Uint
	MaxOpenInterest       *num.Uint
}

// StakeConfigUpdate is a partial update of the listing economics. Nil fields
// are left untouched.
type StakeConfigUpdate struct {
	TokenStake      *num.Uint
	SpotStake       *num.Uint
	PerpStake       *num.Uint
	StakeLockPeriod *time.Duration
}

// ReviewPeriodsUpdate is a partial update of the review windows. Nil fields
// are left untouched.
type ReviewPeriodsUpdate struct {
	TokenReviewPeriod *time.Duration
	SpotReviewPeriod  *time.Duration
	PerpReviewPeriod  *time.Duration
}

// PoolParamsUpdate is a partial update of a bootstrap pool's quoting
// parameters. Nil fields are left untouched.
type PoolParamsUpdate struct {
	PriceLower   *num.Uint
	PriceUpper   *num.Uint
	OrderDensity *uint64
	SpreadBps    *uint64
}
