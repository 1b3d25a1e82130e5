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

package config

import (
	"bytes"
	"os"

	"github.com/chuci-qin/1024-exchange-listing-program/core/listing"
	"github.com/chuci-qin/1024-exchange-listing-program/core/pools"
	"github.com/chuci-qin/1024-exchange-listing-program/core/registry"
	"github.com/chuci-qin/1024-exchange-listing-program/core/stake"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration of the listing protocol node, one
// section per engine.
type Config struct {
	Listing  listing.Config  `toml:"Listing"`
	Registry registry.Config `toml:"Registry"`
	Stake    stake.Config    `toml:"Stake"`
	Pools    pools.Config    `toml:"Pools"`
}

// NewDefaultConfig returns the root configuration with every engine on its
// defaults.
func NewDefaultConfig() Config {
	return Config{
		Listing:  listing.NewDefaultConfig(),
		Registry: registry.NewDefaultConfig(),
		Stake:    stake.NewDefaultConfig(),
		Pools:    pools.NewDefaultConfig(),
	}
}

// Read loads the configuration from a toml file.
func Read(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Write saves the configuration to a toml file.
func Write(path string, cfg Config) error {
	buf := &bytes.Buffer{}
	if err := toml.NewEncoder(buf).Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
