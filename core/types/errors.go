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

// ProposalError enumerates the reasons an operation on the listing protocol
// can be refused. It travels on events so downstream consumers get a stable
// machine readable reason next to the human readable error.
type ProposalError int32

const (
	ProposalErrorUnspecified ProposalError = iota
	// ProposalErrorUnauthorized the caller is not allowed to perform the operation.
	ProposalErrorUnauthorized
	// ProposalErrorInvalidAdmin the caller is not the protocol admin.
	ProposalErrorInvalidAdmin
	// ProposalErrorNotProposer the caller is not the proposer of the proposal.
	ProposalErrorNotProposer
	// ProposalErrorAlreadyInitialized the protocol configuration already exists.
	ProposalErrorAlreadyInitialized
	// ProposalErrorNotPending the proposal already reached a terminal state.
	ProposalErrorNotPending
	// ProposalErrorReviewDeadlineNotReached finalization attempted during review.
	ProposalErrorReviewDeadlineNotReached
	// ProposalErrorReviewDeadlinePassed objection attempted after review ended.
	ProposalErrorReviewDeadlinePassed
	// ProposalErrorVetoed objections block permissionless finalization.
	ProposalErrorVetoed
	// ProposalErrorStakeLockNotEnded stake claim attempted before the lock ends.
	ProposalErrorStakeLockNotEnded
	// ProposalErrorStakeAlreadyClaimed the stake was already refunded.
	ProposalErrorStakeAlreadyClaimed
	// ProposalErrorListingPaused submissions are suspended by the admin.
	ProposalErrorListingPaused
	// ProposalErrorInsufficientStake the proposer cannot cover the required stake.
	ProposalErrorInsufficientStake
	// ProposalErrorInvalidSymbol the symbol fails format validation.
	ProposalErrorInvalidSymbol
	// ProposalErrorInvalidDecimals the token decimals are out of range.
	ProposalErrorInvalidDecimals
	// ProposalErrorInvalidFeeRate a fee rate is out of range.
	ProposalErrorInvalidFeeRate
	// ProposalErrorInvalidLeverage the max leverage is out of range.
	ProposalErrorInvalidLeverage
	// ProposalErrorInvalidMarginRate a margin rate is out of range or inconsistent.
	ProposalErrorInvalidMarginRate
	// ProposalErrorInvalidTickSize the tick size is zero.
	ProposalErrorInvalidTickSize
	// ProposalErrorInvalidLotSize the lot size is zero.
	ProposalErrorInvalidLotSize
	// ProposalErrorInvalidOracle the oracle reference fails validation.
	ProposalErrorInvalidOracle
	// ProposalErrorTokenNotRegistered a referenced token is unknown or inactive.
	ProposalErrorTokenNotRegistered
	// ProposalErrorSameTokenPair base and quote reference the same token.
	ProposalErrorSameTokenPair
	// ProposalErrorInvalidSlashPercentage the slash percentage exceeds 100.
	ProposalErrorInvalidSlashPercentage
	// ProposalErrorArithmetic a checked arithmetic operation overflowed.
	ProposalErrorArithmetic
)

func (e ProposalError) String() string {
	switch e {
	case ProposalErrorUnauthorized:
		return "unauthorized"
	case ProposalErrorInvalidAdmin:
		return "invalid-admin"
	case ProposalErrorNotProposer:
		return "not-proposer"
	case ProposalErrorAlreadyInitialized:
		return "already-initialized"
	case ProposalErrorNotPending:
		return "proposal-not-pending"
	case ProposalErrorReviewDeadlineNotReached:
		return "review-deadline-not-reached"
	case ProposalErrorReviewDeadlinePassed:
		return "review-deadline-passed"
	case ProposalErrorVetoed:
		return "vetoed"
	case ProposalErrorStakeLockNotEnded:
		return "stake-lock-not-ended"
	case ProposalErrorStakeAlreadyClaimed:
		return "stake-already-claimed"
	case ProposalErrorListingPaused:
		return "listing-paused"
	case ProposalErrorInsufficientStake:
		return "insufficient-stake"
	case ProposalErrorInvalidSymbol:
		return "invalid-symbol"
	case ProposalErrorInvalidDecimals:
		return "invalid-decimals"
	case ProposalErrorInvalidFeeRate:
		return "invalid-fee-rate"
	case ProposalErrorInvalidLeverage:
		return "invalid-leverage"
	case ProposalErrorInvalidMarginRate:
		return "invalid-margin-rate"
	case ProposalErrorInvalidTickSize:
		return "invalid-tick-size"
	case ProposalErrorInvalidLotSize:
		return "invalid-lot-size"
	case ProposalErrorInvalidOracle:
		return "invalid-oracle"
	case ProposalErrorTokenNotRegistered:
		return "token-not-registered"
	case ProposalErrorSameTokenPair:
		return "same-token-pair"
	case ProposalErrorInvalidSlashPercentage:
		return "invalid-slash-percentage"
	case ProposalErrorArithmetic:
		return "arithmetic"
	default:
		return "unspecified"
	}
}
