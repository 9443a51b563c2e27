// config.go - process-wide settings
// Copyright (C) 2024  The ash developers.
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

// Package config loads and saves the process-wide "settings" blob
// described in spec.md §6, following mailproxy.go's TOML templating
// convention for configuration.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultRelayURL is the build-time constant default relay URL,
// overridable at link time with -ldflags "-X ...DefaultRelayURL=...".
var DefaultRelayURL = "https://relay.ash.example"

// Settings is the process-wide settings record of spec.md §6.
type Settings struct {
	RelayURL             string `toml:"RelayURL"`
	BiometricLockEnabled bool   `toml:"BiometricLockEnabled"`
	LockOnBackground     bool   `toml:"LockOnBackground"`
}

// Defaults returns the out-of-the-box settings.
func Defaults() Settings {
	return Settings{
		RelayURL:             DefaultRelayURL,
		BiometricLockEnabled: false,
		LockOnBackground:     true,
	}
}

// Load reads settings from a TOML file, falling back to Defaults if
// the file does not exist.
func Load(path string) (Settings, error) {
	s := Defaults()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save writes settings to a TOML file.
func Save(path string, s Settings) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(s)
}
