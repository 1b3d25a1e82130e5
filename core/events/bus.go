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

	vgrand "github.com/chuci-qin/1024-exchange-listing-program/libs/rand"
)

// Type is the type of an event emitted by the listing engines.
type Type int

const (
	// All event types, used for subscriptions only, no event carries it.
	All Type = iota
	ProposalEvent
	ObjectionEvent
	TokenEvent
	SpotMarketEvent
	PerpMarketEvent
	LiquidityPoolEvent
)

var eventStrings = map[Type]string{
	All:                "ALL",
	ProposalEvent:      "ProposalEvent",
	ObjectionEvent:     "ObjectionEvent",
	TokenEvent:         "TokenEvent",
	SpotMarketEvent:    "SpotMarketEvent",
	PerpMarketEvent:    "PerpMarketEvent",
	LiquidityPoolEvent: "LiquidityPoolEvent",
}

func (t Type) String() string {
	s, ok := eventStrings[t]
	if !ok {
		return "UNKNOWN EVENT"
	}
	return s
}

// Event is the interface shared by all events sent on the broker.
type Event interface {
	Type() Type
	Context() context.Context
	TraceID() string
	Sequence() uint64
	SetSequenceID(s uint64)
}

type traceIDKey int

const traceIDK traceIDKey = 0

// Base common denominator for all events.
type Base struct {
	ctx     context.Context
	traceID string
	seq     uint64
	et      Type
}

func newBase(ctx context.Context, t Type) *Base {
	trace, ok := ctx.Value(traceIDK).(string)
	if !ok {
		trace = vgrand.RandomStr(16)
		ctx = context.WithValue(ctx, traceIDK, trace)
	}
	return &Base{
		ctx:     ctx,
		traceID: trace,
		et:      t,
	}
}

// TraceID returns the... traceID obviously.
func (b Base) TraceID() string {
	return b.traceID
}

// SetSequenceID sets the sequence number, can be done only once.
func (b *Base) SetSequenceID(s uint64) {
	if b.seq != 0 {
		return
	}
	b.seq = s
}

// Sequence returns the event sequence number.
func (b Base) Sequence() uint64 {
	return b.seq
}

// Context returns the context of the event.
func (b Base) Context() context.Context {
	return b.ctx
}

// Type returns the event type.
func (b Base) Type() Type {
	return b.et
}
