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

package broker

import (
	"sync"

	"github.com/chuci-qin/1024-exchange-listing-program/core/events"
	"github.com/chuci-qin/1024-exchange-listing-program/logging"
)

// Subscriber receives events from the broker in the order they were sent.
type Subscriber interface {
	Push(evt events.Event)
	Types() []events.Type
}

// Broker fans events out to subscribers synchronously. Engines only ever
// call Send, the delivery order to each subscriber matches the send order.
type Broker struct {
	log *logging.Logger

	mu     sync.Mutex
	seq    uint64
	subs   map[int]Subscriber
	nextID int
}

// New instantiates a new broker.
func New(log *logging.Logger) *Broker {
	return &Broker{
		log:  log.Named("broker"),
		subs: map[int]Subscriber{},
	}
}

// Subscribe registers a subscriber and returns the key to unsubscribe with.
func (b *Broker) Subscribe(s Subscriber) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs[b.nextID] = s
	return b.nextID
}

// Unsubscribe removes a subscriber, unknown keys are ignored.
func (b *Broker) Unsubscribe(key int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, key)
}

// Send stamps the event with the next sequence number and delivers it to
// every subscriber interested in its type.
func (b *Broker) Send(evt events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	evt.SetSequenceID(b.seq)
	for _, sub := range b.subs {
		if !b.interested(sub, evt.Type()) {
			continue
		}
		sub.Push(evt)
	}
}

func (b *Broker) interested(sub Subscriber, t events.Type) bool {
	for _, st := range sub.Types() {
		if st == events.All || st == t {
			return true
		}
	}
	return false
}
