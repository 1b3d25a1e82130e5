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

package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ErrMetricsAlreadySetup is returned on a second Setup call.
	ErrMetricsAlreadySetup = errors.New("metrics already setup")

	proposalCounter  *prometheus.CounterVec
	objectionCounter *prometheus.CounterVec
	poolCounter      *prometheus.CounterVec
	totalStaked      prometheus.Gauge
)

// Setup registers the listing protocol collectors with the default
// registerer. The engines degrade to no-ops when it was never called, so
// tests don't need a registry.
func Setup() error {
	if proposalCounter != nil {
		return ErrMetricsAlreadySetup
	}
	proposalCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "listing",
			Name:      "proposals_total",
			Help:      "Number of proposal transitions by kind and status",
		},
		[]string{"kind", "status"},
	)
	if err := prometheus.Register(proposalCounter); err != nil {
		return err
	}
	objectionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "listing",
			Name:      "objections_total",
			Help:      "Number of objections by proposal kind",
		},
		[]string{"kind"},
	)
	if err := prometheus.Register(objectionCounter); err != nil {
		return err
	}
	poolCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "listing",
			Name:      "liquidity_pools_total",
			Help:      "Number of bootstrap pool operations by type",
		},
		[]string{"op"},
	)
	if err := prometheus.Register(poolCounter); err != nil {
		return err
	}
	totalStaked = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "listing",
			Name:      "total_staked",
			Help:      "Total value escrowed with the treasury",
		},
	)
	return prometheus.Register(totalStaked)
}

// ProposalCountInc increments the proposal transition counter.
func ProposalCountInc(kind, status string) {
	if proposalCounter == nil {
		return
	}
	proposalCounter.WithLabelValues(kind, status).Inc()
}

// ObjectionCountInc increments the objection counter.
func ObjectionCountInc(kind string) {
	if objectionCounter == nil {
		return
	}
	objectionCounter.WithLabelValues(kind).Inc()
}

// PoolOpInc increments the pool operation counter.
func PoolOpInc(op string) {
	if poolCounter == nil {
		return
	}
	poolCounter.WithLabelValues(op).Inc()
}

// TotalStakedSet updates the escrow gauge.
func TotalStakedSet(v float64) {
	if totalStaked == nil {
		return
	}
	totalStaked.Set(v)
}
