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

package listing

import (
	"context"
	"math"
	"time"

	"github.com/chuci-qin/1024-exchange-listing-program/core/events"
	"github.com/chuci-qin/1024-exchange-listing-program/core/types"
	"github.com/chuci-qin/1024-exchange-listing-program/libs/num"
	"github.com/chuci-qin/1024-exchange-listing-program/logging"
	"github.com/chuci-qin/1024-exchange-listing-program/metrics"

	"github.com/pkg/errors"
)

//go:generate go run github.com/golang/mock/mockgen -destination mocks/mocks.go -package mocks github.com/chuci-qin/1024-exchange-listing-program/core/listing Collateral,TimeService,Broker,OracleEngine,Registry

var (
	// ErrProtocolNotInitialized is returned on any operation before Initialize.
	ErrProtocolNotInitialized = errors.New("protocol not initialized")
	// ErrProtocolAlreadyInitialized is returned on a second Initialize.
	ErrProtocolAlreadyInitialized = errors.New("protocol already initialized")
	// ErrNotAdmin is returned on admin only operations called by anyone else.
	ErrNotAdmin = errors.New("not the protocol admin")
	// ErrNotProposer is returned on proposer only operations called by anyone else.
	ErrNotProposer = errors.New("not the proposer")
	// ErrListingPaused is returned on submissions while the protocol is paused.
	ErrListingPaused = errors.New("listing is paused")
	// ErrProposalAlreadyExists is returned when the (kind, proposer, nonce) key is taken.
	ErrProposalAlreadyExists = errors.New("proposal already exists")
	// ErrProposalNotFound is returned when no proposal matches the key.
	ErrProposalNotFound = errors.New("proposal not found")
	// ErrProposalNotPending is returned when the proposal reached a terminal state.
	ErrProposalNotPending = errors.New("proposal not pending")
	// ErrProposalNotApproved is returned on a stake claim for a proposal that is not approved.
	ErrProposalNotApproved = errors.New("proposal not approved")
	// ErrInsufficientStake is returned when the proposer cannot cover the stake.
	ErrInsufficientStake = errors.New("insufficient stake")
	// ErrReviewDeadlinePassed is returned on objections after the review window.
	ErrReviewDeadlinePassed = errors.New("review deadline passed")
	// ErrReviewDeadlineNotReached is returned on finalization during the review window.
	ErrReviewDeadlineNotReached = errors.New("review deadline not reached")
	// ErrProposalVetoed is returned when objections block permissionless finalization.
	ErrProposalVetoed = errors.New("proposal vetoed")
	// ErrStakeLockNotEnded is returned on stake claims before the lock expires.
	ErrStakeLockNotEnded = errors.New("stake lock period not ended")
	// ErrStakeAlreadyClaimed is returned when the stake was already refunded.
	ErrStakeAlreadyClaimed = errors.New("stake already claimed")
	// ErrInvalidSlashPercentage is returned when a slash percentage exceeds 100.
	ErrInvalidSlashPercentage = errors.New("invalid slash percentage")
	// ErrTokenNotRegistered is returned when a market references an unknown or inactive token.
	ErrTokenNotRegistered = errors.New("token not registered or inactive")
	// ErrSameTokenPair is returned when base and quote are the same token.
	ErrSameTokenPair = errors.New("base and quote are the same token")
	// ErrArithmeticOverflow is returned when a checked counter or sum overflows.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
)

// Collateral gives the listing engine access to the stake ledger.
type Collateral interface {
	GetAvailableBalance(party string) (*num.Uint, error)
	TransferToTreasury(party string, amount *num.Uint) error
	RefundFromTreasury(party string, amount *num.Uint) error
}

// TimeService gives the engine the current protocol time.
type TimeService interface {
	GetTimeNow() time.Time
}

// Broker makes events available to the rest of the system.
type Broker interface {
	Send(e events.Event)
}

// OracleEngine resolves oracle price feed references.
type OracleEngine interface {
	OracleExists(ref string) bool
}

// Registry stores the records created when proposals are enacted.
type Registry interface {
	AddToken(ctx context.Context, entry *types.TokenEntry)
	AddSpotMarket(ctx context.Context, mkt *types.SpotMarket)
	AddPerpMarket(ctx context.Context, mkt *types.PerpMarket)
	IsTokenActive(index uint64) bool
}

// Engine is the listing engine. It owns the protocol configuration and
// drives every proposal from submission to a terminal state, escrowing and
// releasing stake through the collateral ledger as it goes.
type Engine struct {
	Config
	log *logging.Logger

	collateral Collateral
	timeSvc    TimeService
	broker     Broker
	oracles    OracleEngine
	registry   Registry

	listing *types.ListingConfig

	// proposals in submission order plus a lookup index, the order matters
	// for deterministic iteration
	proposals    []*types.Proposal
	proposalKeys map[types.ProposalKey]*types.Proposal
}

// New instantiates a new listing engine.
func New(
	log *logging.Logger,
	cfg Config,
	collateral Collateral,
	timeSvc TimeService,
	broker Broker,
	oracles OracleEngine,
	registry Registry,
) *Engine {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	return &Engine{
		Config:       cfg,
		log:          log,
		collateral:   collateral,
		timeSvc:      timeSvc,
		broker:       broker,
		oracles:      oracles,
		registry:     registry,
		proposalKeys: map[types.ProposalKey]*types.Proposal{},
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

// Initialize creates the protocol configuration with default economics.
// It can only ever succeed once.
func (e *Engine) Initialize(ctx context.Context, admin, treasury, vault, fund, ledger string) error {
	if e.listing != nil {
		return ErrProtocolAlreadyInitialized
	}
	e.listing = types.DefaultListingConfig(admin, treasury, vault, fund, ledger)
	e.log.Info("listing protocol initialized",
		logging.String("admin", admin),
		logging.String("treasury", treasury),
	)
	return nil
}

// IsAdmin returns whether the given party holds the admin role.
func (e *Engine) IsAdmin(party string) bool {
	return e.listing != nil && party == e.listing.Admin
}

// IsPaused returns whether submissions are currently suspended.
func (e *Engine) IsPaused() bool {
	return e.listing != nil && e.listing.IsPaused
}

// ListingConfig returns the current protocol configuration. Callers must
// not mutate the shared Uint fields.
func (e *Engine) ListingConfig() (*types.ListingConfig, error) {
	if e.listing == nil {
		return nil, ErrProtocolNotInitialized
	}
	cpy := *e.listing
	cpy.TokenStake = e.listing.TokenStake.Clone()
	cpy.SpotStake = e.listing.SpotStake.Clone()
	cpy.PerpStake = e.listing.PerpStake.Clone()
	cpy.TotalStaked = e.listing.TotalStaked.Clone()
	return &cpy, nil
}

// UpdateAdmin hands the admin role over to another party. Admin only.
func (e *Engine) UpdateAdmin(ctx context.Context, caller, newAdmin string) error {
	if err := e.requireAdmin(caller); err != nil {
		return err
	}
	e.log.Info("admin updated",
		logging.String("old", e.listing.Admin),
		logging.String("new", newAdmin),
	)
	e.listing.Admin = newAdmin
	return nil
}

// UpdateStakeConfig applies a partial update of the listing economics.
// Running proposals keep the stake they were submitted with. Admin only.
func (e *Engine) UpdateStakeConfig(ctx context.Context, caller string, update types.StakeConfigUpdate) error {
	if err := e.requireAdmin(caller); err != nil {
		return err
	}
	if update.TokenStake != nil {
		e.listing.TokenStake = update.TokenStake.Clone()
	}
	if update.SpotStake != nil {
		e.listing.SpotStake = update.SpotStake.Clone()
	}
	if update.PerpStake != nil {
		e.listing.PerpStake = update.PerpStake.Clone()
	}
	if update.StakeLockPeriod != nil {
		e.listing.StakeLockPeriod = *update.StakeLockPeriod
	}
	e.log.Info("stake configuration updated", logging.String("caller", caller))
	return nil
}

// UpdateReviewPeriods applies a partial update of the review windows.
// Running proposals keep the deadline they were submitted with. Admin only.
func (e *Engine) UpdateReviewPeriods(ctx context.Context, caller string, update types.ReviewPeriodsUpdate) error {
	if err := e.requireAdmin(caller); err != nil {
		return err
	}
	if update.TokenReviewPeriod != nil {
		e.listing.TokenReviewPeriod = *update.TokenReviewPeriod
	}
	if update.SpotReviewPeriod != nil {
		e.listing.SpotReviewPeriod = *update.SpotReviewPeriod
	}
	if update.PerpReviewPeriod != nil {
		e.listing.PerpReviewPeriod = *update.PerpReviewPeriod
	}
	e.log.Info("review periods updated", logging.String("caller", caller))
	return nil
}

// SetPaused suspends or resumes proposal submissions. Running proposals are
// unaffected. Admin only.
func (e *Engine) SetPaused(ctx context.Context, caller string, paused bool) error {
	if err := e.requireAdmin(caller); err != nil {
		return err
	}
	e.listing.IsPaused = paused
	e.log.Info("listing paused flag updated", logging.Bool("paused", paused))
	return nil
}

// ProposeToken submits a token listing proposal, escrowing the configured
// stake with it.
func (e *Engine) ProposeToken(ctx context.Context, proposer string, nonce uint64, details *types.TokenDetails) (*types.Proposal, error) {
	if err := e.canSubmit(); err != nil {
		return nil, err
	}
	if err := types.ValidateTokenDetails(details); err != nil {
		return nil, err
	}
	if len(details.Oracle) > 0 && !e.oracles.OracleExists(details.Oracle) {
		return nil, types.ErrInvalidOracle
	}
	p := &types.Proposal{
		Key: types.ProposalKey{
			Kind:     types.ProposalKindToken,
			Proposer: proposer,
			Nonce:    nonce,
		},
		Token: details.DeepClone(),
	}
	return e.submit(ctx, p)
}

// ProposeSpotMarket submits a spot market listing proposal. Both legs of
// the pair must already be active tokens.
func (e *Engine) ProposeSpotMarket(ctx context.Context, proposer string, nonce uint64, details *types.SpotMarketDetails) (*types.Proposal, error) {
	if err := e.canSubmit(); err != nil {
		return nil, err
	}
	if err := types.ValidateSpotMarketDetails(details); err != nil {
		return nil, err
	}
	if err := e.checkTokenPair(details.BaseToken, details.QuoteToken); err != nil {
		return nil, err
	}
	p := &types.Proposal{
		Key: types.ProposalKey{
			Kind:     types.ProposalKindSpotMarket,
			Proposer: proposer,
			Nonce:    nonce,
		},
		SpotMarket: details.DeepClone(),
	}
	return e.submit(ctx, p)
}

// ProposePerpMarket submits a perpetual market listing proposal. The oracle
// feed must resolve on top of the token pair checks.
func (e *Engine) ProposePerpMarket(ctx context.Context, proposer string, nonce uint64, details *types.PerpMarketDetails) (*types.Proposal, error) {
	if err := e.canSubmit(); err != nil {
		return nil, err
	}
	if err := types.ValidatePerpMarketDetails(details); err != nil {
		return nil, err
	}
	if err := e.checkTokenPair(details.BaseToken, details.QuoteToken); err != nil {
		return nil, err
	}
	if !e.oracles.OracleExists(details.Oracle) {
		return nil, types.ErrInvalidOracle
	}
	p := &types.Proposal{
		Key: types.ProposalKey{
			Kind:     types.ProposalKindPerpMarket,
			Proposer: proposer,
			Nonce:    nonce,
		},
		PerpMarket: details.DeepClone(),
	}
	return e.submit(ctx, p)
}

// Object stakes against a pending proposal. Any party can object with any
// amount, the stake joins the treasury escrow and counts towards the veto
// threshold at finalization.
func (e *Engine) Object(ctx context.Context, party string, key types.ProposalKey, stake *num.Uint) error {
	p, ok := e.proposalKeys[key]
	if !ok {
		return ErrProposalNotFound
	}
	if !p.IsPending() {
		return ErrProposalNotPending
	}
	now := e.timeSvc.GetTimeNow()
	if now.After(p.ReviewDeadline) {
		return ErrReviewDeadlinePassed
	}
	balance, err := e.collateral.GetAvailableBalance(party)
	if err != nil || balance.LT(stake) {
		return ErrInsufficientStake
	}
	if err := e.collateral.TransferToTreasury(party, stake); err != nil {
		return err
	}
	total, overflow := num.UintZero().AddOverflow(e.listing.TotalStaked, stake)
	if overflow {
		// roll the escrow back, the ledger stays consistent
		e.collateral.RefundFromTreasury(party, stake)
		return ErrArithmeticOverflow
	}
	objection, overflow := num.UintZero().AddOverflow(p.ObjectionStake, stake)
	if overflow {
		e.collateral.RefundFromTreasury(party, stake)
		return ErrArithmeticOverflow
	}
	e.listing.TotalStaked = total
	p.ObjectionStake = objection
	p.ObjectionCount++
	e.updateStakedGauge()
	metrics.ObjectionCountInc(key.Kind.String())
	e.log.Info("objection recorded",
		logging.String("proposal", key.String()),
		logging.String("party", party),
		logging.String("stake", stake.String()),
	)
	e.broker.Send(events.NewObjectionEvent(ctx, key, party, stake.String()))
	e.broker.Send(events.NewProposalEvent(ctx, *p))
	return nil
}

// Approve enacts a pending proposal immediately, regardless of objections.
// Admin only.
func (e *Engine) Approve(ctx context.Context, caller string, key types.ProposalKey) error {
	if err := e.requireAdmin(caller); err != nil {
		return err
	}
	p, ok := e.proposalKeys[key]
	if !ok {
		return ErrProposalNotFound
	}
	if !p.IsPending() {
		return ErrProposalNotPending
	}
	return e.enact(ctx, p)
}

// Reject refuses a pending proposal, optionally slashing part of the stake.
// The reason code is opaque to the protocol, it only travels on the event.
// The escrowed funds stay with the treasury either way. Admin only.
func (e *Engine) Reject(ctx context.Context, caller string, key types.ProposalKey, reason, slashPercentage uint64) error {
	if err := e.requireAdmin(caller); err != nil {
		return err
	}
	p, ok := e.proposalKeys[key]
	if !ok {
		return ErrProposalNotFound
	}
	if !p.IsPending() {
		return ErrProposalNotPending
	}
	if slashPercentage > 100 {
		return ErrInvalidSlashPercentage
	}
	p.Status = types.ProposalStatusRejected
	p.RejectReason = reason
	p.SlashPercentage = slashPercentage
	metrics.ProposalCountInc(p.Key.Kind.String(), p.Status.String())
	e.log.Info("proposal rejected",
		logging.String("proposal", key.String()),
		logging.Uint64("reason", reason),
		logging.Uint64("slash-percentage", slashPercentage),
	)
	e.broker.Send(events.NewProposalEvent(ctx, *p))
	return nil
}

// Cancel withdraws a pending proposal. The proposer gets 95% of the stake
// back, the remainder stays with the treasury as a cancellation fee.
func (e *Engine) Cancel(ctx context.Context, caller string, key types.ProposalKey) error {
	p, ok := e.proposalKeys[key]
	if !ok {
		return ErrProposalNotFound
	}
	if caller != p.Key.Proposer {
		return ErrNotProposer
	}
	if !p.IsPending() {
		return ErrProposalNotPending
	}
	refund := num.UintZero().Div(
		num.UintZero().Mul(p.StakeAmount, num.NewUint(95)),
		num.NewUint(100),
	)
	if err := e.collateral.RefundFromTreasury(caller, refund); err != nil {
		return err
	}
	total, underflow := num.UintZero().SubOverflow(e.listing.TotalStaked, refund)
	if underflow {
		return ErrArithmeticOverflow
	}
	e.listing.TotalStaked = total
	p.Status = types.ProposalStatusCancelled
	e.updateStakedGauge()
	metrics.ProposalCountInc(p.Key.Kind.String(), p.Status.String())
	e.log.Info("proposal cancelled",
		logging.String("proposal", key.String()),
		logging.String("refund", refund.String()),
	)
	e.broker.Send(events.NewProposalEvent(ctx, *p))
	return nil
}

// Finalize enacts a pending proposal once its review window has passed.
// Anyone can call it, objections veto it. A token proposal is blocked by a
// single objection, market proposals need the objection stake to exceed
// half the proposal stake.
func (e *Engine) Finalize(ctx context.Context, key types.ProposalKey) error {
	p, ok := e.proposalKeys[key]
	if !ok {
		return ErrProposalNotFound
	}
	if !p.IsPending() {
		return ErrProposalNotPending
	}
	now := e.timeSvc.GetTimeNow()
	if !now.After(p.ReviewDeadline) {
		return ErrReviewDeadlineNotReached
	}
	if p.Key.Kind == types.ProposalKindToken {
		if p.ObjectionCount > 0 {
			return e.veto(ctx, p)
		}
	} else if p.ObjectionCount > 0 {
		half := num.UintZero().Div(p.StakeAmount, num.NewUint(2))
		if p.ObjectionStake.GT(half) {
			return e.veto(ctx, p)
		}
	}
	return e.enact(ctx, p)
}

// veto records a blocked finalization on the proposal and broadcasts it. The
// proposal stays pending, the admin can still approve or reject it.
func (e *Engine) veto(ctx context.Context, p *types.Proposal) error {
	p.Reason = ErrorCode(ErrProposalVetoed)
	e.log.Info("proposal finalization vetoed",
		logging.String("proposal", p.Key.String()),
		logging.Uint64("objections", p.ObjectionCount),
		logging.String("objection-stake", p.ObjectionStake.String()),
	)
	e.broker.Send(events.NewProposalEvent(ctx, *p))
	return ErrProposalVetoed
}

// ClaimStake refunds the full stake of an approved proposal to its proposer
// once the lock period has ended.
func (e *Engine) ClaimStake(ctx context.Context, caller string, key types.ProposalKey) error {
	p, ok := e.proposalKeys[key]
	if !ok {
		return ErrProposalNotFound
	}
	if caller != p.Key.Proposer {
		return ErrNotProposer
	}
	if !p.IsApproved() {
		return ErrProposalNotApproved
	}
	if p.StakeClaimed {
		return ErrStakeAlreadyClaimed
	}
	// the lock period is read from the live configuration, an admin update
	// moves the unlock time of already approved proposals
	unlock := p.ApprovedAt.Add(e.listing.StakeLockPeriod)
	if e.timeSvc.GetTimeNow().Before(unlock) {
		return ErrStakeLockNotEnded
	}
	if err := e.collateral.RefundFromTreasury(caller, p.StakeAmount); err != nil {
		return err
	}
	total, underflow := num.UintZero().SubOverflow(e.listing.TotalStaked, p.StakeAmount)
	if underflow {
		return ErrArithmeticOverflow
	}
	e.listing.TotalStaked = total
	p.StakeClaimed = true
	e.updateStakedGauge()
	e.log.Info("stake claimed",
		logging.String("proposal", key.String()),
		logging.String("amount", p.StakeAmount.String()),
	)
	e.broker.Send(events.NewProposalEvent(ctx, *p))
	return nil
}

// GetProposal returns the proposal matching the key.
func (e *Engine) GetProposal(key types.ProposalKey) (*types.Proposal, error) {
	p, ok := e.proposalKeys[key]
	if !ok {
		return nil, ErrProposalNotFound
	}
	cpy := *p
	cpy.StakeAmount = p.StakeAmount.Clone()
	cpy.ObjectionStake = p.ObjectionStake.Clone()
	return &cpy, nil
}

// Proposals returns all proposals in submission order.
func (e *Engine) Proposals() []*types.Proposal {
	out := make([]*types.Proposal, 0, len(e.proposals))
	for _, p := range e.proposals {
		cpy := *p
		cpy.StakeAmount = p.StakeAmount.Clone()
		cpy.ObjectionStake = p.ObjectionStake.Clone()
		out = append(out, &cpy)
	}
	return out
}

func (e *Engine) updateStakedGauge() {
	metrics.TotalStakedSet(num.DecimalFromUint(e.listing.TotalStaked).InexactFloat64())
}

func (e *Engine) requireAdmin(caller string) error {
	if e.listing == nil {
		return ErrProtocolNotInitialized
	}
	if caller != e.listing.Admin {
		return ErrNotAdmin
	}
	return nil
}

func (e *Engine) canSubmit() error {
	if e.listing == nil {
		return ErrProtocolNotInitialized
	}
	if e.listing.IsPaused {
		return ErrListingPaused
	}
	return nil
}

func (e *Engine) checkTokenPair(base, quote uint64) error {
	if base == quote {
		return ErrSameTokenPair
	}
	if !e.registry.IsTokenActive(base) || !e.registry.IsTokenActive(quote) {
		return ErrTokenNotRegistered
	}
	return nil
}

// submit runs the common tail of every proposal submission, the balance
// check, the stake escrow and the creation of the pending proposal.
func (e *Engine) submit(ctx context.Context, p *types.Proposal) (*types.Proposal, error) {
	if _, ok := e.proposalKeys[p.Key]; ok {
		return nil, ErrProposalAlreadyExists
	}
	stake := e.listing.StakeForKind(p.Key.Kind)
	balance, err := e.collateral.GetAvailableBalance(p.Key.Proposer)
	if err != nil || balance.LT(stake) {
		return nil, ErrInsufficientStake
	}
	if err := e.collateral.TransferToTreasury(p.Key.Proposer, stake); err != nil {
		return nil, err
	}
	total, overflow := num.UintZero().AddOverflow(e.listing.TotalStaked, stake)
	if overflow {
		// roll the escrow back, the ledger stays consistent
		e.collateral.RefundFromTreasury(p.Key.Proposer, stake)
		return nil, ErrArithmeticOverflow
	}
	e.listing.TotalStaked = total

	now := e.timeSvc.GetTimeNow()
	p.StakeAmount = stake
	p.Status = types.ProposalStatusPending
	p.CreatedAt = now
	p.ReviewDeadline = now.Add(e.listing.ReviewPeriodForKind(p.Key.Kind))
	p.ObjectionStake = num.UintZero()

	e.proposals = append(e.proposals, p)
	e.proposalKeys[p.Key] = p

	e.updateStakedGauge()
	metrics.ProposalCountInc(p.Key.Kind.String(), p.Status.String())
	e.log.Info("proposal submitted",
		logging.String("proposal", p.Key.String()),
		logging.String("stake", stake.String()),
	)
	e.broker.Send(events.NewProposalEvent(ctx, *p))
	return p, nil
}

// enact flips a pending proposal to approved and materializes its record in
// the registry under the next index of its kind.
func (e *Engine) enact(ctx context.Context, p *types.Proposal) error {
	now := e.timeSvc.GetTimeNow()
	var index uint64
	switch p.Key.Kind {
	case types.ProposalKindToken:
		index = e.listing.TotalTokens
		if index == math.MaxUint64 {
			return ErrArithmeticOverflow
		}
		e.registry.AddToken(ctx, &types.TokenEntry{
			Index:      index,
			Symbol:     p.Token.Symbol,
			Mint:       p.Token.Mint,
			Decimals:   p.Token.Decimals,
			Oracle:     p.Token.Oracle,
			IsActive:   true,
			Proposer:   p.Key.Proposer,
			ApprovedAt: now,
		})
		e.listing.TotalTokens++
	case types.ProposalKindSpotMarket:
		index = e.listing.TotalSpotMarkets
		if index == math.MaxUint64 {
			return ErrArithmeticOverflow
		}
		d := p.SpotMarket
		e.registry.AddSpotMarket(ctx, &types.SpotMarket{
			Index:        index,
			Symbol:       d.Symbol,
			BaseToken:    d.BaseToken,
			QuoteToken:   d.QuoteToken,
			TickSize:     d.TickSize.Clone(),
			LotSize:      d.LotSize.Clone(),
			TakerFeeBps:  d.TakerFeeBps,
			MakerFeeBps:  d.MakerFeeBps,
			MinOrderSize: d.MinOrderSize.Clone(),
			MaxOrderSize: d.MaxOrderSize.Clone(),
			IsActive:     true,
			IsPaused:     false,
			Proposer:     p.Key.Proposer,
			ApprovedAt:   now,
		})
		e.listing.TotalSpotMarkets++
	case types.ProposalKindPerpMarket:
		index = e.listing.TotalPerpMarkets
		if index == math.MaxUint64 {
			return ErrArithmeticOverflow
		}
		d := p.PerpMarket
		e.registry.AddPerpMarket(ctx, &types.PerpMarket{
			Index:                 index,
			Symbol:                d.Symbol,
			BaseToken:             d.BaseToken,
			QuoteToken:            d.QuoteToken,
			Oracle:                d.Oracle,
			TickSize:              d.TickSize.Clone(),
			LotSize:               d.LotSize.Clone(),
			MaxLeverage:           d.MaxLeverage,
			InitialMarginRate:     d.InitialMarginRate,
			MaintenanceMarginRate: d.MaintenanceMarginRate,
			TakerFeeBps:           d.TakerFeeBps,
			MakerFeeBps:           d.MakerFeeBps,
			MinOrderSize:          d.MinOrderSize.Clone(),
			MaxOrderSize:          d.MaxOrderSize.Clone(),
			MaxOpenInterest:       d.MaxOpenInterest.Clone(),
			OpenInterestLong:      num.UintZero(),
			OpenInterestShort:     num.UintZero(),
			InsuranceFundDeposit:  d.InsuranceFundDeposit.Clone(),
			FundingRate:           num.DecimalZero(),
			IsActive:              true,
			IsPaused:              false,
			Proposer:              p.Key.Proposer,
			ApprovedAt:            now,
		})
		e.listing.TotalPerpMarkets++
	}

	p.Status = types.ProposalStatusApproved
	p.ApprovedAt = now
	p.EnactedIndex = index
	p.Reason = types.ProposalErrorUnspecified

	metrics.ProposalCountInc(p.Key.Kind.String(), p.Status.String())
	e.log.Info("proposal enacted",
		logging.String("proposal", p.Key.String()),
		logging.Uint64("index", index),
	)
	e.broker.Send(events.NewProposalEvent(ctx, *p))
	return nil
}
