// logging.go - logger construction
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

// Package logging wires up gopkg.in/op/go-logging.v1 the way the
// catshadow/katzenpost tree does: one backend configured at the
// composition root, one *logging.Logger per component obtained via
// GetLogger.
package logging

import (
	"os"

	logging "gopkg.in/op/go-logging.v1"
)

var initialized bool

// Init installs a leveled, formatted stderr backend. Safe to call
// more than once; only the first call takes effect.
func Init(level string) {
	if initialized {
		return
	}
	initialized = true

	format := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{level:.4s} %{module}: %{message}`,
	)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.NOTICE
	}
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
}

// GetLogger returns a component-scoped logger, e.g. GetLogger("pad").
func GetLogger(component string) *logging.Logger {
	if !initialized {
		Init("NOTICE")
	}
	return logging.MustGetLogger(component)
}
