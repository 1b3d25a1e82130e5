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
	"time"

	"github.com/chuci-qin/1024-exchange-listing-program/libs/num"
)

// PriceObservation is one price update from an oracle feed. The price is
// scaled by 10^Exponent, the confidence interval shares the scale.
type PriceObservation struct {
	Price       *num.Uint
	Confidence  *num.Uint
	Exponent    int32
	PublishedAt time.Time
}
