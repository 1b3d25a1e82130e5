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
	"strings"
	"time"

	"github.com/chuci-qin/1024-exchange-listing-program/libs/num"

	"github.com/pkg/errors"
)

// Validation bounds applied to listing payloads. Margin rates use 6 decimals
// of precision, fees and spreads are in basis points.
const (
	MinTokenSymbolLen  = 2
	MaxTokenSymbolLen  = 8
	MinMarketSymbolLen = 5
	MaxMarketSymbolLen = 16

	MaxTokenDecimals = 18

	MaxTakerFeeBps = 1000
	MakerFeeBpsCap = 500

	MinLeverage = 1
	MaxLeverage = 100

	MaxMarginRate = 1_000_000

	MinOrderDensity = 1
	MaxOrderDensity = 100
	MaxSpreadBps    = 10_000

	// MaxOracleStaleness is the oldest a price update may be to still be
	// considered live.
	MaxOracleStaleness = 60 * time.Second
	// MaxOracleConfidenceBps caps the confidence interval relative to the
	// price, 500 bps is 5%.
	MaxOracleConfidenceBps = 500
	MaxOracleExponent      = 18
)

var (
	ErrInvalidSymbol       = errors.New("invalid symbol")
	ErrInvalidTokenMint    = errors.New("invalid token mint")
	ErrInvalidDecimals     = errors.New("invalid decimals")
	ErrInvalidFeeRate      = errors.New("invalid fee rate")
	ErrInvalidLeverage     = errors.New("invalid leverage")
	ErrInvalidMarginRate   = errors.New("invalid margin rate")
	ErrInvalidTickSize     = errors.New("invalid tick size")
	ErrInvalidLotSize      = errors.New("invalid lot size")
	ErrInvalidOracle       = errors.New("invalid oracle")
	ErrInvalidPriceRange   = errors.New("invalid price range")
	ErrInvalidOrderDensity = errors.New("invalid order density")
	ErrInvalidSpreadBps    = errors.New("invalid spread")
	ErrStaleOraclePrice    = errors.New("stale oracle price")
)

// ValidateTokenDetails checks a token listing payload against the protocol
// bounds. Token symbols are upper case alphanumerics only.
func ValidateTokenDetails(t *TokenDetails) error {
	if len(t.Symbol) < MinTokenSymbolLen || len(t.Symbol) > MaxTokenSymbolLen {
		return ErrInvalidSymbol
	}
	for _, c := range t.Symbol {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return ErrInvalidSymbol
		}
	}
	if len(t.Mint) == 0 {
		return ErrInvalidTokenMint
	}
	if t.Decimals > MaxTokenDecimals {
		return ErrInvalidDecimals
	}
	return nil
}

// ValidateSpotMarketDetails checks a spot market listing payload. Spot
// symbols are pair symbols, BASE/QUOTE.
func ValidateSpotMarketDetails(s *SpotMarketDetails) error {
	if len(s.Symbol) < MinMarketSymbolLen || len(s.Symbol) > MaxMarketSymbolLen || !strings.Contains(s.Symbol, "/") {
		return ErrInvalidSymbol
	}
	if err := validateMarketSizes(s.TickSize, s.LotSize); err != nil {
		return err
	}
	return validateFees(s.TakerFeeBps, s.MakerFeeBps)
}

// ValidatePerpMarketDetails checks a perpetual market listing payload. Perp
// symbols use a dash separator, e.g. BTC-PERP.
func ValidatePerpMarketDetails(p *PerpMarketDetails) error {
	if len(p.Symbol) < MinMarketSymbolLen || len(p.Symbol) > MaxMarketSymbolLen || !strings.Contains(p.Symbol, "-") {
		return ErrInvalidSymbol
	}
	if len(p.Oracle) == 0 {
		return ErrInvalidOracle
	}
	if err := validateMarketSizes(p.TickSize, p.LotSize); err != nil {
		return err
	}
	if err := validateFees(p.TakerFeeBps, p.MakerFeeBps); err != nil {
		return err
	}
	if p.MaxLeverage < MinLeverage || p.MaxLeverage > MaxLeverage {
		return ErrInvalidLeverage
	}
	return ValidateMarginRates(p.InitialMarginRate, p.MaintenanceMarginRate)
}

// ValidateMarginRates checks margin rates are within (0, 100%] and that the
// maintenance rate sits strictly below the initial one.
func ValidateMarginRates(initial, maintenance uint64) error {
	if initial == 0 || initial > MaxMarginRate {
		return ErrInvalidMarginRate
	}
	if maintenance == 0 || maintenance > MaxMarginRate {
		return ErrInvalidMarginRate
	}
	if maintenance >= initial {
		return ErrInvalidMarginRate
	}
	return nil
}

// ValidatePoolParams checks the quoting parameters of a bootstrap pool.
func ValidatePoolParams(priceLower, priceUpper *num.Uint, density, spreadBps uint64) error {
	if priceLower.IsZero() || priceUpper.IsZero() || !priceLower.LT(priceUpper) {
		return ErrInvalidPriceRange
	}
	if density < MinOrderDensity || density > MaxOrderDensity {
		return ErrInvalidOrderDensity
	}
	if spreadBps == 0 || spreadBps > MaxSpreadBps {
		return ErrInvalidSpreadBps
	}
	return nil
}

// ValidateOraclePrice checks a price update is live, positive, within
// exponent bounds and not too uncertain to act on.
func ValidateOraclePrice(price, confidence *num.Uint, exponent int32, publishedAt, now time.Time) error {
	if price.IsZero() {
		return ErrInvalidOracle
	}
	if exponent > MaxOracleExponent || exponent < -MaxOracleExponent {
		return ErrInvalidOracle
	}
	if now.Sub(publishedAt) > MaxOracleStaleness {
		return ErrStaleOraclePrice
	}
	// confidence * 10000 <= price * 500
	lhs := num.UintZero().Mul(confidence, num.NewUint(10_000))
	rhs := num.UintZero().Mul(price, num.NewUint(MaxOracleConfidenceBps))
	if lhs.GT(rhs) {
		return ErrInvalidOracle
	}
	return nil
}

func validateMarketSizes(tick, lot *num.Uint) error {
	if tick == nil || tick.IsZero() {
		return ErrInvalidTickSize
	}
	if lot == nil || lot.IsZero() {
		return ErrInvalidLotSize
	}
	return nil
}

func validateFees(takerBps uint64, makerBps int64) error {
	if takerBps > MaxTakerFeeBps {
		return ErrInvalidFeeRate
	}
	if makerBps > MakerFeeBpsCap || makerBps < -MakerFeeBpsCap {
		return ErrInvalidFeeRate
	}
	return nil
}
