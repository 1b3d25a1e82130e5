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

// ProposalKey uniquely identifies a proposal. The nonce is chosen by the
// proposer, so the same party can hold several live proposals of the same
// kind at once.
type ProposalKey struct {
	Kind     ProposalKind
	Proposer string
	Nonce    uint64
}

func (k ProposalKey) String() string {
	return fmt.Sprintf("%s/%s/%d", k.Kind, k.Proposer, k.Nonce)
}

// TokenDetails is the payload of a token listing proposal.
type TokenDetails struct {
	Symbol   string
	Mint     string
	Decimals uint64
	// Oracle is optional, an empty string means no price feed.
	Oracle string
}

func (t TokenDetails) DeepClone() *TokenDetails {
	cpy := t
	return &cpy
}

// SpotMarketDetails is the payload of a spot market listing proposal.
// Base and quote reference already approved tokens by index.
type SpotMarketDetails struct {
	Symbol       string
	BaseToken    uint64
	QuoteToken   uint64
	TickSize     *num.Uint
	LotSize      *num.Uint
	TakerFeeBps  uint64
	MakerFeeBps  int64
	MinOrderSize *num.Uint
	MaxOrderSize *num.Uint
}

func (s SpotMarketDetails) DeepClone() *SpotMarketDetails {
	cpy := s
	cpy.TickSize = s.TickSize.Clone()
	cpy.LotSize = s.LotSize.Clone()
	cpy.MinOrderSize = s.MinOrderSize.Clone()
	cpy.MaxOrderSize = s.MaxOrderSize.Clone()
	return &cpy
}

// PerpMarketDetails is the payload of a perpetual market listing proposal.
// Margin rates are expressed with 6 decimals of precision, so 1_000_000
// equals 100%.
type PerpMarketDetails struct {
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
	InsuranceFundDeposit  *num.Uint
}

func (p PerpMarketDetails) DeepClone() *PerpMarketDetails {
	cpy := p
	cpy.TickSize = p.TickSize.Clone()
	cpy.LotSize = p.LotSize.Clone()
	cpy.MinOrderSize = p.MinOrderSize.Clone()
	cpy.MaxOrderSize = p.MaxOrderSize.Clone()
	cpy.MaxOpenInterest = p.MaxOpenInterest.Clone()
	cpy.InsuranceFundDeposit = p.InsuranceFundDeposit.Clone()
	return &cpy
}

// Proposal is a listing proposal at any point of its lifecycle. Exactly one
// of Token, SpotMarket, PerpMarket is set, matching Key.Kind.
type Proposal struct {
	Key ProposalKey

	Token      *TokenDetails
	SpotMarket *SpotMarketDetails
	PerpMarket *PerpMarketDetails

	// StakeAmount is a snapshot of the required stake at submission time.
	// Later configuration changes never affect it.
	StakeAmount *num.Uint

	Status         ProposalStatus
	CreatedAt      time.Time
	ReviewDeadline time.Time

	ObjectionCount uint64
	ObjectionStake *num.Uint

	StakeClaimed bool
	ApprovedAt   time.Time
	// EnactedIndex is the index of the record created on approval.
	EnactedIndex uint64

	// RejectReason is an opaque reason code, only meaningful off protocol.
	RejectReason    uint64
	SlashPercentage uint64

	// Reason is the machine readable code of the last protocol refusal
	// recorded against the proposal, unspecified while none happened.
	Reason ProposalError
}

func (p *Proposal) IsPending() bool {
	return p.Status == ProposalStatusPending
}

func (p *Proposal) IsApproved() bool {
	return p.Status == ProposalStatusApproved
}
