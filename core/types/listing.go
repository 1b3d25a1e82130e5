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

// ProposalKind is the kind of record a listing proposal wants to create.
type ProposalKind int32

const (
	ProposalKindToken ProposalKind = iota
	ProposalKindSpotMarket
	ProposalKindPerpMarket
)

func (k ProposalKind) String() string {
	switch k {
	case ProposalKindToken:
		return "token"
	case ProposalKindSpotMarket:
		return "spot-market"
	case ProposalKindPerpMarket:
		return "perp-market"
	default:
		return "unknown"
	}
}

// ProposalStatus is the lifecycle state of a listing proposal.
// Pending is initial, the three other states are terminal.
type ProposalStatus int32

const (
	ProposalStatusPending ProposalStatus = iota
	ProposalStatusApproved
	ProposalStatusRejected
	ProposalStatusCancelled
)

func (s ProposalStatus) String() string {
	switch s {
	case ProposalStatusPending:
		return "pending"
	case ProposalStatusApproved:
		return "approved"
	case ProposalStatusRejected:
		return "rejected"
	case ProposalStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// MarketKind discriminates spot from perpetual markets where both are
// addressable by index, e.g. for liquidity pools.
type MarketKind int32

const (
	MarketKindSpot MarketKind = iota
	MarketKindPerp
)

func (k MarketKind) String() string {
	switch k {
	case MarketKindSpot:
		return "spot"
	case MarketKindPerp:
		return "perp"
	default:
		return "unknown"
	}
}

// Default listing economics. Stake amounts are expressed in the native
// token's smallest unit (9 decimals).
const (
	DefaultTokenStake = 1_000_000_000_000 // 1,000 native
	DefaultSpotStake  = 2_000_000_000_000 // 2,000 native
	DefaultPerpStake  = 5_000_000_000_000 // 5,000 native

	DefaultTokenReviewPeriod = 7 * 24 * time.Hour
	DefaultSpotReviewPeriod  = 7 * 24 * time.Hour
	DefaultPerpReviewPeriod  = 14 * 24 * time.Hour
	DefaultStakeLockPeriod   = 30 * 24 * time.Hour
)

// ListingConfig is the single global configuration record of the listing
// protocol. It is created once, owned by the listing engine and shared by
// reference with the engines that need to read it. The counters are the
// source of sequential indices for approved records, so every mutation is an
// explicit checked read-modify-write within one operation.
type ListingConfig struct {
	Admin    string
	Treasury string

	// external collaborator program references, held for provenance and
	// passed along to fund-custody calls, never interpreted here
	VaultProgram  string
	FundProgram   string
	LedgerProgram string

	TokenStake *num.Uint
	SpotStake  *num.Uint
	PerpStake  *num.Uint

	TokenReviewPeriod time.Duration
	SpotReviewPeriod  time.Duration
	PerpReviewPeriod  time.Duration
	StakeLockPeriod   time.Duration

	TotalTokens      uint64
	TotalSpotMarkets uint64
	TotalPerpMarkets uint64

	// TotalStaked is the aggregate of all value currently escrowed in the
	// treasury on behalf of proposals and objections.
	TotalStaked *num.Uint

	IsPaused bool
}

// DefaultListingConfig returns a listing configuration with the default
// economics and zeroed counters.
func DefaultListingConfig(admin, treasury, vault, fund, ledger string) *ListingConfig {
	return &ListingConfig{
		Admin:             admin,
		Treasury:          treasury,
		VaultProgram:      vault,
		FundProgram:       fund,
		LedgerProgram:     ledger,
		TokenStake:        num.NewUint(DefaultTokenStake),
		SpotStake:         num.NewUint(DefaultSpotStake),
		PerpStake:         num.NewUint(DefaultPerpStake),
		TokenReviewPeriod: DefaultTokenReviewPeriod,
		SpotReviewPeriod:  DefaultSpotReviewPeriod,
		PerpReviewPeriod:  DefaultPerpReviewPeriod,
		StakeLockPeriod:   DefaultStakeLockPeriod,
		TotalStaked:       num.UintZero(),
	}
}

// StakeForKind returns a copy of the stake currently required to submit a
// proposal of the given kind.
func (c *ListingConfig) StakeForKind(k ProposalKind) *num.Uint {
	switch k {
	case ProposalKindSpotMarket:
		return c.SpotStake.Clone()
	case ProposalKindPerpMarket:
		return c.PerpStake.Clone()
	default:
		return c.TokenStake.Clone()
	}
}

// ReviewPeriodForKind returns the review window currently applied to new
// proposals of the given kind.
func (c *ListingConfig) ReviewPeriodForKind(k ProposalKind) time.Duration {
	switch k {
	case ProposalKindSpotMarket:
		return c.SpotReviewPeriod
	case ProposalKindPerpMarket:
		return c.PerpReviewPeriod
	default:
		return c.TokenReviewPeriod
	}
}
