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

// Proposal is sent on every lifecycle transition of a listing proposal.
type Proposal struct {
	*Base
	p types.Proposal
}

func NewProposalEvent(ctx context.Context, p types.Proposal) *Proposal {
	cpy := p
	if p.StakeAmount != nil {
		cpy.StakeAmount = p.StakeAmount.Clone()
	}
	if p.ObjectionStake != nil {
		cpy.ObjectionStake = p.ObjectionStake.Clone()
	}
	return &Proposal{
		Base: newBase(ctx, ProposalEvent),
		p:    cpy,
	}
}

func (p Proposal) Proposal() types.Proposal {
	return p.p
}

func (p Proposal) ProposalKey() types.ProposalKey {
	return p.p.Key
}

// Objection is sent when a party stakes against a pending proposal.
type Objection struct {
	*Base
	key      types.ProposalKey
	objector string
	stake    string
}

func NewObjectionEvent(ctx context.Context, key types.ProposalKey, objector, stake string) *Objection {
	return &Objection{
		Base:     newBase(ctx, ObjectionEvent),
		key:      key,
		objector: objector,
		stake:    stake,
	}
}

func (o Objection) ProposalKey() types.ProposalKey {
	return o.key
}

func (o Objection) Objector() string {
	return o.objector
}

func (o Objection) Stake() string {
	return o.stake
}
