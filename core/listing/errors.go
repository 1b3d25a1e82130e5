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
	"github.com/chuci-qin/1024-exchange-listing-program/core/types"

	"github.com/pkg/errors"
)

// ErrorCode maps an engine or validation error to the machine readable code
// carried on proposal events and stored on the proposal itself.
func ErrorCode(err error) types.ProposalError {
	switch errors.Cause(err) {
	case ErrProtocolAlreadyInitialized:
		return types.ProposalErrorAlreadyInitialized
	case ErrNotAdmin:
		return types.ProposalErrorInvalidAdmin
	case ErrNotProposer:
		return types.ProposalErrorNotProposer
	case ErrListingPaused:
		return types.ProposalErrorListingPaused
	case ErrProposalNotPending, ErrProposalNotApproved:
		return types.ProposalErrorNotPending
	case ErrReviewDeadlineNotReached:
		return types.ProposalErrorReviewDeadlineNotReached
	case ErrReviewDeadlinePassed:
		return types.ProposalErrorReviewDeadlinePassed
	case ErrProposalVetoed:
		return types.ProposalErrorVetoed
	case ErrStakeLockNotEnded:
		return types.ProposalErrorStakeLockNotEnded
	case ErrStakeAlreadyClaimed:
		return types.ProposalErrorStakeAlreadyClaimed
	case ErrInsufficientStake:
		return types.ProposalErrorInsufficientStake
	case ErrTokenNotRegistered:
		return types.ProposalErrorTokenNotRegistered
	case ErrSameTokenPair:
		return types.ProposalErrorSameTokenPair
	case ErrInvalidSlashPercentage:
		return types.ProposalErrorInvalidSlashPercentage
	case ErrArithmeticOverflow:
		return types.ProposalErrorArithmetic
	case types.ErrInvalidSymbol:
		return types.ProposalErrorInvalidSymbol
	case types.ErrInvalidDecimals:
		return types.ProposalErrorInvalidDecimals
	case types.ErrInvalidFeeRate:
		return types.ProposalErrorInvalidFeeRate
	case types.ErrInvalidLeverage:
		return types.ProposalErrorInvalidLeverage
	case types.ErrInvalidMarginRate:
		return types.ProposalErrorInvalidMarginRate
	case types.ErrInvalidTickSize:
		return types.ProposalErrorInvalidTickSize
	case types.ErrInvalidLotSize:
		return types.ProposalErrorInvalidLotSize
	case types.ErrInvalidOracle, types.ErrStaleOraclePrice:
		return types.ProposalErrorInvalidOracle
	}
	return types.ProposalErrorUnspecified
}
