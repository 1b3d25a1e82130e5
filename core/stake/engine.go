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

package stake

import (
	"github.com/chuci-qin/1024-exchange-listing-program/libs/num"
	"github.com/chuci-qin/1024-exchange-listing-program/logging"

	"github.com/pkg/errors"
)

var (
	// ErrPartyNotFound is returned when a party holds no account at all.
	ErrPartyNotFound = errors.New("party not found")
	// ErrInsufficientBalance is returned when a debit exceeds the available balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrTreasuryUnderflow is returned when a refund exceeds the escrowed funds.
	ErrTreasuryUnderflow = errors.New("treasury underflow")
	// ErrBalanceOverflow is returned when a credit would overflow an account.
	ErrBalanceOverflow = errors.New("balance overflow")
)

// Engine is the stake ledger. It tracks native token balances per party plus
// a single treasury escrow account, and moves value between them on behalf
// of the listing engine. All amounts are in the token's smallest unit.
type Engine struct {
	Config
	log *logging.Logger

	balances map[string]*num.Uint
	treasury *num.Uint
}

// New instantiates a new stake ledger.
func New(log *logging.Logger, cfg Config) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		Config:   cfg,
		log:      log,
		balances: map[string]*num.Uint{},
		treasury: num.UintZero(),
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

// Deposit credits a party account. Used by the deposit gateway and by tests
// to set up balances.
func (e *Engine) Deposit(party string, amount *num.Uint) error {
	acc, ok := e.balances[party]
	if !ok {
		acc = num.UintZero()
		e.balances[party] = acc
	}
	if _, overflow := acc.AddOverflow(acc, amount); overflow {
		return ErrBalanceOverflow
	}
	return nil
}

// GetAvailableBalance returns the free balance of the given party.
func (e *Engine) GetAvailableBalance(party string) (*num.Uint, error) {
	acc, ok := e.balances[party]
	if !ok {
		return nil, ErrPartyNotFound
	}
	return acc.Clone(), nil
}

// TransferToTreasury moves the amount from the party account into the
// treasury escrow. The caller is expected to have checked the balance first,
// a failed debit still leaves the ledger untouched.
func (e *Engine) TransferToTreasury(party string, amount *num.Uint) error {
	acc, ok := e.balances[party]
	if !ok {
		return ErrPartyNotFound
	}
	if acc.LT(amount) {
		return ErrInsufficientBalance
	}
	acc.Sub(acc, amount)
	if _, overflow := e.treasury.AddOverflow(e.treasury, amount); overflow {
		// undo the debit so the ledger stays consistent
		acc.Add(acc, amount)
		return ErrBalanceOverflow
	}
	if e.log.IsDebug() {
		e.log.Debug("stake escrowed",
			logging.String("party", party),
			logging.String("amount", amount.String()),
		)
	}
	return nil
}

// RefundFromTreasury moves the amount from the treasury escrow back to the
// party account.
func (e *Engine) RefundFromTreasury(party string, amount *num.Uint) error {
	if e.treasury.LT(amount) {
		return ErrTreasuryUnderflow
	}
	acc, ok := e.balances[party]
	if !ok {
		acc = num.UintZero()
		e.balances[party] = acc
	}
	if _, overflow := acc.AddOverflow(acc, amount); overflow {
		return ErrBalanceOverflow
	}
	e.treasury.Sub(e.treasury, amount)
	if e.log.IsDebug() {
		e.log.Debug("stake refunded",
			logging.String("party", party),
			logging.String("amount", amount.String()),
		)
	}
	return nil
}

// TreasuryBalance returns the total value currently held in escrow.
func (e *Engine) TreasuryBalance() *num.Uint {
	return e.treasury.Clone()
}
