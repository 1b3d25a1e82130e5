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

package listing_test

import (
	"context"
	"testing"
	"time"

	"github.com/chuci-qin/1024-exchange-listing-program/core/listing"
	"github.com/chuci-qin/1024-exchange-listing-program/core/listing/mocks"
	"github.com/chuci-qin/1024-exchange-listing-program/core/stake"
	"github.com/chuci-qin/1024-exchange-listing-program/core/types"
	"github.com/chuci-qin/1024-exchange-listing-program/libs/num"
	vgrand "github.com/chuci-qin/1024-exchange-listing-program/libs/rand"
	"github.com/chuci-qin/1024-exchange-listing-program/logging"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	admin    = "admin-party"
	treasury = "treasury-account"
)

type tstEngine struct {
	*listing.Engine
	ctrl     *gomock.Controller
	ledger   *stake.Engine
	tsvc     *mocks.MockTimeService
	broker   *mocks.MockBroker
	oracles  *mocks.MockOracleEngine
	registry *mocks.MockRegistry

	now time.Time
}

func getTestEngine(t *testing.T) *tstEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	tsvc := mocks.NewMockTimeService(ctrl)
	broker := mocks.NewMockBroker(ctrl)
	oracles := mocks.NewMockOracleEngine(ctrl)
	reg := mocks.NewMockRegistry(ctrl)
	ledger := stake.New(logging.NewTestLogger(), stake.NewDefaultConfig())

	eng := &tstEngine{
		ctrl:     ctrl,
		ledger:   ledger,
		tsvc:     tsvc,
		broker:   broker,
		oracles:  oracles,
		registry: reg,
		now:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	tsvc.EXPECT().GetTimeNow().AnyTimes().DoAndReturn(func() time.Time {
		return eng.now
	})
	broker.EXPECT().Send(gomock.Any()).AnyTimes()

	eng.Engine = listing.New(
		logging.NewTestLogger(),
		listing.NewDefaultConfig(),
		ledger, tsvc, broker, oracles, reg,
	)
	require.NoError(t, eng.Initialize(context.Background(), admin, treasury, "vault", "fund", "book"))
	return eng
}

func (e *tstEngine) fund(t *testing.T, party string, amount uint64) {
	t.Helper()
	require.NoError(t, e.ledger.Deposit(party, num.NewUint(amount)))
}

func (e *tstEngine) newToken(t *testing.T, proposer string, nonce uint64) *types.Proposal {
	t.Helper()
	p, err := e.ProposeToken(context.Background(), proposer, nonce, &types.TokenDetails{
		Symbol:   "WIF",
		Mint:     "mint-" + vgrand.RandomStr(5),
		Decimals: 9,
	})
	require.NoError(t, err)
	return p
}

func (e *tstEngine) newSpotMarket(t *testing.T, proposer string, nonce uint64) *types.Proposal {
	t.Helper()
	e.registry.EXPECT().IsTokenActive(uint64(0)).Times(1).Return(true)
	e.registry.EXPECT().IsTokenActive(uint64(1)).Times(1).Return(true)
	p, err := e.ProposeSpotMarket(context.Background(), proposer, nonce, &types.SpotMarketDetails{
		Symbol:       "WIF/USDC",
		BaseToken:    1,
		QuoteToken:   0,
		TickSize:     num.NewUint(100),
		LotSize:      num.NewUint(1000),
		TakerFeeBps:  30,
		MakerFeeBps:  -5,
		MinOrderSize: num.NewUint(1),
		MaxOrderSize: num.NewUint(1_000_000),
	})
	require.NoError(t, err)
	return p
}

func (e *tstEngine) totalStaked(t *testing.T) *num.Uint {
	t.Helper()
	cfg, err := e.ListingConfig()
	require.NoError(t, err)
	return cfg.TotalStaked
}

func TestListingEngine(t *testing.T) {
	t.Run("Initializing twice fails", testInitializeOnce)
	t.Run("Submitting before initialization fails", testSubmitBeforeInit)
	t.Run("Submitting a token proposal escrows the stake", testTokenProposalEscrowsStake)
	t.Run("Submitting without enough balance fails", testSubmitInsufficientBalance)
	t.Run("Submitting a duplicate proposal fails", testSubmitDuplicate)
	t.Run("Submitting while paused fails", testSubmitWhilePaused)
	t.Run("Spot market proposal validates its token pair", testSpotTokenPairChecks)
	t.Run("Perp market proposal requires a live oracle", testPerpOracleCheck)
	t.Run("Objections escrow stake during the review window", testObjectionsEscrowStake)
	t.Run("Objections after the deadline fail", testObjectionAfterDeadline)
	t.Run("Admin approval enacts with dense indices", testApprovalDenseIndices)
	t.Run("Admin approval ignores objections", testApprovalIgnoresObjections)
	t.Run("Rejection keeps the stake with the treasury", testRejectionKeepsStake)
	t.Run("Cancellation refunds ninety five percent", testCancellationRefund)
	t.Run("Finalizing before the deadline fails", testFinalizeBeforeDeadline)
	t.Run("Finalizing a token proposal is blocked by one objection", testTokenVeto)
	t.Run("Market veto needs more than half the proposal stake", testMarketVetoThreshold)
	t.Run("A vetoed finalization records its reason code", testVetoRecordsReason)
	t.Run("An overflowing objection rolls the escrow back", testObjectionOverflowRollback)
	t.Run("Engine errors map to machine readable codes", testErrorCodes)
	t.Run("Stake claim is gated by the lock period", testStakeClaimLock)
	t.Run("Stake can only be claimed once", testStakeClaimOnce)
	t.Run("Stake claim needs an approved proposal", testStakeClaimNeedsApproval)
	t.Run("Ledger value is conserved across the lifecycle", testConservation)
	t.Run("Stake config updates only affect new proposals", testStakeConfigSnapshot)
	t.Run("Admin role can be handed over", testAdminHandover)
}

func testInitializeOnce(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	err := eng.Initialize(context.Background(), "other", treasury, "vault", "fund", "book")
	require.ErrorIs(t, err, listing.ErrProtocolAlreadyInitialized)
	assert.True(t, eng.IsAdmin(admin))
}

func testSubmitBeforeInit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	eng := listing.New(
		logging.NewTestLogger(),
		listing.NewDefaultConfig(),
		stake.New(logging.NewTestLogger(), stake.NewDefaultConfig()),
		mocks.NewMockTimeService(ctrl),
		mocks.NewMockBroker(ctrl),
		mocks.NewMockOracleEngine(ctrl),
		mocks.NewMockRegistry(ctrl),
	)

	_, err := eng.ProposeToken(context.Background(), "party-1", 1, &types.TokenDetails{
		Symbol: "WIF", Mint: "mint-1", Decimals: 9,
	})
	require.ErrorIs(t, err, listing.ErrProtocolNotInitialized)
}

func testTokenProposalEscrowsStake(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", 2*types.DefaultTokenStake)
	p := eng.newToken(t, "party-1", 1)

	assert.Equal(t, types.ProposalStatusPending, p.Status)
	assert.True(t, p.StakeAmount.EQUint64(types.DefaultTokenStake))
	assert.Equal(t, eng.now.Add(types.DefaultTokenReviewPeriod), p.ReviewDeadline)

	balance, err := eng.ledger.GetAvailableBalance("party-1")
	require.NoError(t, err)
	assert.True(t, balance.EQUint64(types.DefaultTokenStake))
	assert.True(t, eng.ledger.TreasuryBalance().EQUint64(types.DefaultTokenStake))
	assert.True(t, eng.totalStaked(t).EQUint64(types.DefaultTokenStake))
}

func testSubmitInsufficientBalance(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", types.DefaultTokenStake-1)
	_, err := eng.ProposeToken(context.Background(), "party-1", 1, &types.TokenDetails{
		Symbol: "WIF", Mint: "mint-1", Decimals: 9,
	})
	require.ErrorIs(t, err, listing.ErrInsufficientStake)
	assert.True(t, eng.totalStaked(t).IsZero())
}

func testSubmitDuplicate(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", 10*types.DefaultTokenStake)
	eng.newToken(t, "party-1", 1)

	_, err := eng.ProposeToken(context.Background(), "party-1", 1, &types.TokenDetails{
		Symbol: "BONK", Mint: "mint-2", Decimals: 6,
	})
	require.ErrorIs(t, err, listing.ErrProposalAlreadyExists)

	// a different nonce is a different proposal
	eng.newToken(t, "party-1", 2)
}

func testSubmitWhilePaused(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", 10*types.DefaultTokenStake)
	require.NoError(t, eng.SetPaused(context.Background(), admin, true))

	_, err := eng.ProposeToken(context.Background(), "party-1", 1, &types.TokenDetails{
		Symbol: "WIF", Mint: "mint-1", Decimals: 9,
	})
	require.ErrorIs(t, err, listing.ErrListingPaused)

	// resuming lifts the block
	require.NoError(t, eng.SetPaused(context.Background(), admin, false))
	eng.newToken(t, "party-1", 1)
}

func testSpotTokenPairChecks(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", 10*types.DefaultSpotStake)

	details := &types.SpotMarketDetails{
		Symbol:       "WIF/USDC",
		BaseToken:    1,
		QuoteToken:   1,
		TickSize:     num.NewUint(100),
		LotSize:      num.NewUint(1000),
		TakerFeeBps:  30,
		MakerFeeBps:  -5,
		MinOrderSize: num.NewUint(1),
		MaxOrderSize: num.NewUint(1_000_000),
	}
	_, err := eng.ProposeSpotMarket(context.Background(), "party-1", 1, details)
	require.ErrorIs(t, err, listing.ErrSameTokenPair)

	details.QuoteToken = 0
	eng.registry.EXPECT().IsTokenActive(uint64(1)).Times(1).Return(false)
	_, err = eng.ProposeSpotMarket(context.Background(), "party-1", 1, details)
	require.ErrorIs(t, err, listing.ErrTokenNotRegistered)

	eng.newSpotMarket(t, "party-1", 1)
}

func testPerpOracleCheck(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", 10*types.DefaultPerpStake)

	details := &types.PerpMarketDetails{
		Symbol:                "WIF-PERP",
		BaseToken:             1,
		QuoteToken:            0,
		Oracle:                "oracle-wif",
		TickSize:              num.NewUint(100),
		LotSize:               num.NewUint(1000),
		MaxLeverage:           20,
		InitialMarginRate:     50_000,
		MaintenanceMarginRate: 25_000,
		TakerFeeBps:           50,
		MakerFeeBps:           10,
		MinOrderSize:          num.NewUint(1),
		MaxOrderSize:          num.NewUint(1_000_000),
		MaxOpenInterest:       num.NewUint(10_000_000),
		InsuranceFundDeposit:  num.UintZero(),
	}

	eng.registry.EXPECT().IsTokenActive(gomock.Any()).Times(2).Return(true)
	eng.oracles.EXPECT().OracleExists("oracle-wif").Times(1).Return(false)
	_, err := eng.ProposePerpMarket(context.Background(), "party-1", 1, details)
	require.ErrorIs(t, err, types.ErrInvalidOracle)

	eng.registry.EXPECT().IsTokenActive(gomock.Any()).Times(2).Return(true)
	eng.oracles.EXPECT().OracleExists("oracle-wif").Times(1).Return(true)
	p, err := eng.ProposePerpMarket(context.Background(), "party-1", 1, details)
	require.NoError(t, err)
	assert.True(t, p.StakeAmount.EQUint64(types.DefaultPerpStake))
	assert.Equal(t, eng.now.Add(types.DefaultPerpReviewPeriod), p.ReviewDeadline)
}

func testObjectionsEscrowStake(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", types.DefaultTokenStake)
	eng.fund(t, "party-2", 1000)
	p := eng.newToken(t, "party-1", 1)

	// objecting with more than the balance fails
	err := eng.Object(context.Background(), "party-2", p.Key, num.NewUint(1001))
	require.ErrorIs(t, err, listing.ErrInsufficientStake)

	require.NoError(t, eng.Object(context.Background(), "party-2", p.Key, num.NewUint(600)))
	require.NoError(t, eng.Object(context.Background(), "party-2", p.Key, num.NewUint(400)))

	got, err := eng.GetProposal(p.Key)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.ObjectionCount)
	assert.True(t, got.ObjectionStake.EQUint64(1000))

	expected := num.NewUint(types.DefaultTokenStake + 1000)
	assert.True(t, eng.totalStaked(t).EQ(expected))
	assert.True(t, eng.ledger.TreasuryBalance().EQ(expected))
}

func testObjectionAfterDeadline(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", types.DefaultTokenStake)
	eng.fund(t, "party-2", 1000)
	p := eng.newToken(t, "party-1", 1)

	// at the deadline itself objections still count
	eng.now = p.ReviewDeadline
	require.NoError(t, eng.Object(context.Background(), "party-2", p.Key, num.NewUint(100)))

	eng.now = p.ReviewDeadline.Add(time.Second)
	err := eng.Object(context.Background(), "party-2", p.Key, num.NewUint(100))
	require.ErrorIs(t, err, listing.ErrReviewDeadlinePassed)
}

func testApprovalDenseIndices(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", 10*types.DefaultTokenStake)

	indices := []uint64{}
	eng.registry.EXPECT().AddToken(gomock.Any(), gomock.Any()).Times(3).
		Do(func(_ context.Context, entry *types.TokenEntry) {
			indices = append(indices, entry.Index)
			assert.True(t, entry.IsActive)
			assert.Equal(t, "party-1", entry.Proposer)
		})

	for nonce := uint64(1); nonce <= 3; nonce++ {
		p := eng.newToken(t, "party-1", nonce)
		require.NoError(t, eng.Approve(context.Background(), admin, p.Key))
	}

	assert.Equal(t, []uint64{0, 1, 2}, indices)

	cfg, _ := eng.ListingConfig()
	assert.EqualValues(t, 3, cfg.TotalTokens)

	// approving twice fails
	p, _ := eng.GetProposal(types.ProposalKey{Kind: types.ProposalKindToken, Proposer: "party-1", Nonce: 1})
	assert.Equal(t, types.ProposalStatusApproved, p.Status)
	err := eng.Approve(context.Background(), admin, p.Key)
	require.ErrorIs(t, err, listing.ErrProposalNotPending)

	// and non-admins cannot approve at all
	err = eng.Approve(context.Background(), "party-1", p.Key)
	require.ErrorIs(t, err, listing.ErrNotAdmin)
}

func testApprovalIgnoresObjections(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", types.DefaultTokenStake)
	eng.fund(t, "party-2", types.DefaultTokenStake)
	p := eng.newToken(t, "party-1", 1)

	require.NoError(t, eng.Object(context.Background(), "party-2", p.Key, num.NewUint(types.DefaultTokenStake)))

	eng.registry.EXPECT().AddToken(gomock.Any(), gomock.Any()).Times(1)
	require.NoError(t, eng.Approve(context.Background(), admin, p.Key))
}

func testRejectionKeepsStake(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", types.DefaultTokenStake)
	p := eng.newToken(t, "party-1", 1)

	err := eng.Reject(context.Background(), admin, p.Key, 1, 101)
	require.ErrorIs(t, err, listing.ErrInvalidSlashPercentage)

	require.NoError(t, eng.Reject(context.Background(), admin, p.Key, 1, 50))

	got, _ := eng.GetProposal(p.Key)
	assert.Equal(t, types.ProposalStatusRejected, got.Status)
	assert.EqualValues(t, 50, got.SlashPercentage)

	// the stake stays with the treasury, nothing flows back
	balance, _ := eng.ledger.GetAvailableBalance("party-1")
	assert.True(t, balance.IsZero())
	assert.True(t, eng.ledger.TreasuryBalance().EQUint64(types.DefaultTokenStake))
	assert.True(t, eng.totalStaked(t).EQUint64(types.DefaultTokenStake))
}

func testCancellationRefund(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", types.DefaultTokenStake)
	p := eng.newToken(t, "party-1", 1)

	err := eng.Cancel(context.Background(), "party-2", p.Key)
	require.ErrorIs(t, err, listing.ErrNotProposer)

	require.NoError(t, eng.Cancel(context.Background(), "party-1", p.Key))

	refund := uint64(types.DefaultTokenStake) / 100 * 95
	fee := uint64(types.DefaultTokenStake) - refund

	balance, _ := eng.ledger.GetAvailableBalance("party-1")
	assert.True(t, balance.EQUint64(refund))
	assert.True(t, eng.ledger.TreasuryBalance().EQUint64(fee))
	assert.True(t, eng.totalStaked(t).EQUint64(fee))

	got, _ := eng.GetProposal(p.Key)
	assert.Equal(t, types.ProposalStatusCancelled, got.Status)

	// terminal, cannot cancel twice
	err = eng.Cancel(context.Background(), "party-1", p.Key)
	require.ErrorIs(t, err, listing.ErrProposalNotPending)
}

func testFinalizeBeforeDeadline(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", types.DefaultTokenStake)
	p := eng.newToken(t, "party-1", 1)

	err := eng.Finalize(context.Background(), p.Key)
	require.ErrorIs(t, err, listing.ErrReviewDeadlineNotReached)

	// the deadline itself is still inside the window
	eng.now = p.ReviewDeadline
	err = eng.Finalize(context.Background(), p.Key)
	require.ErrorIs(t, err, listing.ErrReviewDeadlineNotReached)

	eng.now = p.ReviewDeadline.Add(time.Second)
	eng.registry.EXPECT().AddToken(gomock.Any(), gomock.Any()).Times(1)
	require.NoError(t, eng.Finalize(context.Background(), p.Key))
}

func testTokenVeto(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", types.DefaultTokenStake)
	eng.fund(t, "party-2", 1)
	p := eng.newToken(t, "party-1", 1)

	// the smallest possible objection blocks a token proposal
	require.NoError(t, eng.Object(context.Background(), "party-2", p.Key, num.NewUint(1)))

	eng.now = p.ReviewDeadline.Add(time.Second)
	err := eng.Finalize(context.Background(), p.Key)
	require.ErrorIs(t, err, listing.ErrProposalVetoed)

	// the admin can still push it through
	eng.registry.EXPECT().AddToken(gomock.Any(), gomock.Any()).Times(1)
	require.NoError(t, eng.Approve(context.Background(), admin, p.Key))
}

func testMarketVetoThreshold(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	half := uint64(types.DefaultSpotStake) / 2

	eng.fund(t, "party-1", 2*types.DefaultSpotStake)
	eng.fund(t, "party-2", 2*types.DefaultSpotStake)

	// exactly half the proposal stake does not veto
	p1 := eng.newSpotMarket(t, "party-1", 1)
	require.NoError(t, eng.Object(context.Background(), "party-2", p1.Key, num.NewUint(half)))
	eng.now = p1.ReviewDeadline.Add(time.Second)
	eng.registry.EXPECT().AddSpotMarket(gomock.Any(), gomock.Any()).Times(1)
	require.NoError(t, eng.Finalize(context.Background(), p1.Key))

	// one unit more does
	p2 := eng.newSpotMarket(t, "party-1", 2)
	require.NoError(t, eng.Object(context.Background(), "party-2", p2.Key, num.NewUint(half+1)))
	eng.now = p2.ReviewDeadline.Add(time.Second)
	err := eng.Finalize(context.Background(), p2.Key)
	require.ErrorIs(t, err, listing.ErrProposalVetoed)
}

func testVetoRecordsReason(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", types.DefaultTokenStake)
	eng.fund(t, "party-2", 1)
	p := eng.newToken(t, "party-1", 1)

	require.NoError(t, eng.Object(context.Background(), "party-2", p.Key, num.NewUint(1)))

	eng.now = p.ReviewDeadline.Add(time.Second)
	err := eng.Finalize(context.Background(), p.Key)
	require.ErrorIs(t, err, listing.ErrProposalVetoed)

	// the refusal code is recorded on the still pending proposal
	got, _ := eng.GetProposal(p.Key)
	assert.Equal(t, types.ProposalStatusPending, got.Status)
	assert.Equal(t, types.ProposalErrorVetoed, got.Reason)

	// an admin override clears it again
	eng.registry.EXPECT().AddToken(gomock.Any(), gomock.Any()).Times(1)
	require.NoError(t, eng.Approve(context.Background(), admin, p.Key))
	got, _ = eng.GetProposal(p.Key)
	assert.Equal(t, types.ProposalErrorUnspecified, got.Reason)
}

func testObjectionOverflowRollback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	collateral := mocks.NewMockCollateral(ctrl)
	tsvc := mocks.NewMockTimeService(ctrl)
	broker := mocks.NewMockBroker(ctrl)
	tsvc.EXPECT().GetTimeNow().AnyTimes().Return(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	broker.EXPECT().Send(gomock.Any()).AnyTimes()

	eng := listing.New(
		logging.NewTestLogger(),
		listing.NewDefaultConfig(),
		collateral, tsvc, broker,
		mocks.NewMockOracleEngine(ctrl),
		mocks.NewMockRegistry(ctrl),
	)
	require.NoError(t, eng.Initialize(context.Background(), admin, treasury, "vault", "fund", "book"))

	maxUint := num.UintZero().Sub(num.UintZero(), num.NewUint(1))
	collateral.EXPECT().GetAvailableBalance(gomock.Any()).AnyTimes().Return(maxUint.Clone(), nil)
	collateral.EXPECT().TransferToTreasury(gomock.Any(), gomock.Any()).AnyTimes().Return(nil)

	p, err := eng.ProposeToken(context.Background(), "party-1", 1, &types.TokenDetails{
		Symbol: "WIF", Mint: "mint-1", Decimals: 9,
	})
	require.NoError(t, err)

	// an objection pushing the aggregate past the maximum is refunded and
	// leaves no trace on the proposal
	tooMuch := num.UintZero().Sub(maxUint, num.NewUint(types.DefaultTokenStake-1))
	collateral.EXPECT().RefundFromTreasury("party-2", tooMuch).Times(1).Return(nil)
	err = eng.Object(context.Background(), "party-2", p.Key, tooMuch)
	require.ErrorIs(t, err, listing.ErrArithmeticOverflow)

	got, _ := eng.GetProposal(p.Key)
	assert.EqualValues(t, 0, got.ObjectionCount)
	assert.True(t, got.ObjectionStake.IsZero())

	cfg, _ := eng.ListingConfig()
	assert.True(t, cfg.TotalStaked.EQUint64(types.DefaultTokenStake))
}

func testErrorCodes(t *testing.T) {
	cases := []struct {
		err  error
		code types.ProposalError
	}{
		{listing.ErrNotAdmin, types.ProposalErrorInvalidAdmin},
		{listing.ErrListingPaused, types.ProposalErrorListingPaused},
		{listing.ErrProposalVetoed, types.ProposalErrorVetoed},
		{listing.ErrStakeLockNotEnded, types.ProposalErrorStakeLockNotEnded},
		{listing.ErrInsufficientStake, types.ProposalErrorInsufficientStake},
		{listing.ErrSameTokenPair, types.ProposalErrorSameTokenPair},
		{listing.ErrArithmeticOverflow, types.ProposalErrorArithmetic},
		{types.ErrInvalidSymbol, types.ProposalErrorInvalidSymbol},
		{types.ErrInvalidMarginRate, types.ProposalErrorInvalidMarginRate},
		{types.ErrStaleOraclePrice, types.ProposalErrorInvalidOracle},
	}
	for _, c := range cases {
		assert.Equal(t, c.code, listing.ErrorCode(c.err))
		// wrapping keeps the cause and therefore the code
		assert.Equal(t, c.code, listing.ErrorCode(errors.Wrap(c.err, "while objecting")))
	}
	assert.Equal(t, types.ProposalErrorUnspecified, listing.ErrorCode(errors.New("unrelated")))
	assert.Equal(t, "invalid-margin-rate", types.ProposalErrorInvalidMarginRate.String())
}

func testStakeClaimLock(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", types.DefaultTokenStake)
	p := eng.newToken(t, "party-1", 1)

	eng.registry.EXPECT().AddToken(gomock.Any(), gomock.Any()).Times(1)
	require.NoError(t, eng.Approve(context.Background(), admin, p.Key))

	approvedAt := eng.now
	err := eng.ClaimStake(context.Background(), "party-1", p.Key)
	require.ErrorIs(t, err, listing.ErrStakeLockNotEnded)

	// one second short of the unlock time is still locked
	eng.now = approvedAt.Add(types.DefaultStakeLockPeriod - time.Second)
	err = eng.ClaimStake(context.Background(), "party-1", p.Key)
	require.ErrorIs(t, err, listing.ErrStakeLockNotEnded)

	// at exactly the unlock time the full stake flows back
	eng.now = approvedAt.Add(types.DefaultStakeLockPeriod)
	require.NoError(t, eng.ClaimStake(context.Background(), "party-1", p.Key))

	balance, _ := eng.ledger.GetAvailableBalance("party-1")
	assert.True(t, balance.EQUint64(types.DefaultTokenStake))
	assert.True(t, eng.ledger.TreasuryBalance().IsZero())
	assert.True(t, eng.totalStaked(t).IsZero())
}

func testStakeClaimOnce(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", types.DefaultTokenStake)
	p := eng.newToken(t, "party-1", 1)

	eng.registry.EXPECT().AddToken(gomock.Any(), gomock.Any()).Times(1)
	require.NoError(t, eng.Approve(context.Background(), admin, p.Key))

	eng.now = eng.now.Add(types.DefaultStakeLockPeriod)
	require.NoError(t, eng.ClaimStake(context.Background(), "party-1", p.Key))

	err := eng.ClaimStake(context.Background(), "party-1", p.Key)
	require.ErrorIs(t, err, listing.ErrStakeAlreadyClaimed)
}

func testStakeClaimNeedsApproval(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", 10*types.DefaultTokenStake)

	// pending proposals cannot be claimed
	p1 := eng.newToken(t, "party-1", 1)
	err := eng.ClaimStake(context.Background(), "party-1", p1.Key)
	require.ErrorIs(t, err, listing.ErrProposalNotApproved)

	// neither can rejected ones
	p2 := eng.newToken(t, "party-1", 2)
	require.NoError(t, eng.Reject(context.Background(), admin, p2.Key, 0, 0))
	err = eng.ClaimStake(context.Background(), "party-1", p2.Key)
	require.ErrorIs(t, err, listing.ErrProposalNotApproved)

	// and only the proposer can claim
	p3 := eng.newToken(t, "party-1", 3)
	err = eng.ClaimStake(context.Background(), "party-2", p3.Key)
	require.ErrorIs(t, err, listing.ErrNotProposer)
}

func testConservation(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	total := uint64(3 * types.DefaultTokenStake)
	eng.fund(t, "party-1", 2*types.DefaultTokenStake)
	eng.fund(t, "party-2", types.DefaultTokenStake)

	sumLedger := func() *num.Uint {
		sum := eng.ledger.TreasuryBalance()
		for _, party := range []string{"party-1", "party-2"} {
			if b, err := eng.ledger.GetAvailableBalance(party); err == nil {
				sum.AddSum(b)
			}
		}
		return sum
	}

	p1 := eng.newToken(t, "party-1", 1)
	require.NoError(t, eng.Object(context.Background(), "party-2", p1.Key, num.NewUint(500)))
	assert.True(t, sumLedger().EQUint64(total))

	p2 := eng.newToken(t, "party-1", 2)
	require.NoError(t, eng.Cancel(context.Background(), "party-1", p2.Key))
	assert.True(t, sumLedger().EQUint64(total))

	eng.registry.EXPECT().AddToken(gomock.Any(), gomock.Any()).Times(1)
	require.NoError(t, eng.Approve(context.Background(), admin, p1.Key))
	eng.now = eng.now.Add(types.DefaultStakeLockPeriod)
	require.NoError(t, eng.ClaimStake(context.Background(), "party-1", p1.Key))
	assert.True(t, sumLedger().EQUint64(total))

	// the escrow exactly covers the outstanding claims at all times
	assert.True(t, eng.totalStaked(t).LTE(eng.ledger.TreasuryBalance()))
}

func testStakeConfigSnapshot(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	eng.fund(t, "party-1", 10*types.DefaultTokenStake)
	p1 := eng.newToken(t, "party-1", 1)

	// doubling the stake leaves the running proposal untouched
	require.NoError(t, eng.UpdateStakeConfig(context.Background(), admin, types.StakeConfigUpdate{
		TokenStake: num.NewUint(2 * types.DefaultTokenStake),
	}))

	got, _ := eng.GetProposal(p1.Key)
	assert.True(t, got.StakeAmount.EQUint64(types.DefaultTokenStake))

	p2 := eng.newToken(t, "party-1", 2)
	assert.True(t, p2.StakeAmount.EQUint64(2*types.DefaultTokenStake))

	// non-admins cannot touch the configuration
	err := eng.UpdateStakeConfig(context.Background(), "party-1", types.StakeConfigUpdate{})
	require.ErrorIs(t, err, listing.ErrNotAdmin)
}

func testAdminHandover(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.ctrl.Finish()

	require.NoError(t, eng.UpdateAdmin(context.Background(), admin, "new-admin"))
	assert.False(t, eng.IsAdmin(admin))
	assert.True(t, eng.IsAdmin("new-admin"))

	// the old admin lost its powers
	err := eng.SetPaused(context.Background(), admin, true)
	require.ErrorIs(t, err, listing.ErrNotAdmin)
	require.NoError(t, eng.SetPaused(context.Background(), "new-admin", true))
}
