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

// TokenEntry is an approved token in the registry.
type TokenEntry struct {
	Index      uint64
	Symbol     string
	Mint       string
	Decimals   uint64
	Oracle     string
	IsActive   bool
	Proposer   string
	ApprovedAt time.Time
}

func (t TokenEntry) DeepClone() *TokenEntry {
	cpy := t
	return &cpy
}

// SpotMarket is an approved spot market in the registry.
type SpotMarket struct {
	Index        uint64
	Symbol       string
	BaseToken    uint64
	QuoteToken   uint64
	TickSize     *num.Uint
	LotSize      *num.Uint
	TakerFeeBps  uint64
	MakerFeeBps  int64
	MinOrderSize *num.Uint
	MaxOrderSize *num.Uint
	IsActive     bool
	IsPaused     bool
	Proposer     string
	ApprovedAt   time.Time
}

func (m SpotMarket) DeepClone() *SpotMarket {
	cpy := m
	cpy.TickSize = m.TickSize.Clone()
	cpy.LotSize = m.LotSize.Clone()
	cpy.MinOrderSize = m.MinOrderSize.Clone()
	cpy.MaxOrderSize = m.MaxOrderSize.Clone()
	return &cpy
}

// PerpMarket is an approved perpetual market in the registry. The open
// interest, funding and insurance fields are written once at creation and
// only ever mutated by the trading collaborators, the registry just keeps
// them addressable.
type PerpMarket struct {
	Index                 uint64
	Symbol                string
	BaseToken             uint64
	QuoteToken            uint64
	Oracle                string
	TickSize              *num.Uint
	LotSize               *num.Uint
	MaxLeverage           uint64
	InitialMarginRate     uint64
	MaintenanceMarginRate uint64
	TakerFeeBps           uint64
	MakerFeeBps           int64
	MinOrderSize          *num.Uint
	MaxOrderSize          *num.Uint
	MaxOpenInterest       *num.Uint
	OpenInterestLong      *num.Uint
	OpenInterestShort     *num.Uint
	InsuranceFundDeposit  *num.Uint
	FundingRate           num.Decimal
	LastFundingAt         time.Time
	IsActive              bool
	IsPaused              bool
	Proposer              string
	ApprovedAt            time.Time
}

func (m PerpMarket) DeepClone() *PerpMarket {
	cpy := m
	cpy.TickSize = m.TickSize.Clone()
	cpy.LotSize = m.LotSize.Clone()
	cpy.MinOrderSize = m.MinOrderSize.Clone()
	cpy.MaxOrderSize = m.MaxOrderSize.Clone()
	cpy.MaxOpenInterest = m.MaxOpenInterest.Clone()
	cpy.OpenInterestLong = m.OpenInterestLong.Clone()
	cpy.OpenInterestShort = m.OpenInterestShort.Clone()
	cpy.InsuranceFundDeposit = m.InsuranceFundDeposit.Clone()
	return &cpy
}
