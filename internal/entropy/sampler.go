// sampler.go - entropy to pad sampler (spec.md C1)
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

// Package entropy turns user gesture entropy plus the system CSPRNG
// into a fixed-size one-time pad, per spec.md §4.1.
package entropy

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

// MinObservations is the minimum number of (x, y, t) observations the
// spec requires before entropy collection may end.
const MinObservations = 500

// BytesPerObservation is the number of raw bytes each (x, y, t)
// observation is assumed to contribute.
const BytesPerObservation = 3

// MinEntropyBytes is the minimum number of raw entropy bytes required.
const MinEntropyBytes = MinObservations * BytesPerObservation

const extractSalt = "ash/pad-extract/v1"
const expandInfo = "ash/pad/v1"

// ErrInsufficientEntropy is returned when the caller supplies fewer
// than MinEntropyBytes of gesture entropy, or the system CSPRNG is
// unavailable.
var ErrInsufficientEntropy = errors.New("entropy: insufficient entropy")

// Sampler produces pads from entropy. The zero value reads system
// entropy from crypto/rand.Reader; Rand may be overridden in tests.
type Sampler struct {
	Rand io.Reader
}

// NewSampler returns a Sampler backed by the system CSPRNG.
func NewSampler() *Sampler {
	return &Sampler{Rand: rand.Reader}
}

// Sample derives an N-byte pad from userEntropy and a fresh system
// CSPRNG snapshot. Fails with ErrInsufficientEntropy if userEntropy is
// too short or the CSPRNG read fails.
func (s *Sampler) Sample(userEntropy []byte, n int) ([]byte, error) {
	if len(userEntropy) < MinEntropyBytes {
		return nil, ErrInsufficientEntropy
	}
	if n <= 0 {
		return nil, errors.New("entropy: pad length must be positive")
	}
	rnd := s.Rand
	if rnd == nil {
		rnd = rand.Reader
	}
	systemSnapshot := make([]byte, 64)
	if _, err := io.ReadFull(rnd, systemSnapshot); err != nil {
		return nil, ErrInsufficientEntropy
	}

	ikm := make([]byte, 0, len(userEntropy)+len(systemSnapshot))
	ikm = append(ikm, userEntropy...)
	ikm = append(ikm, systemSnapshot...)

	kdf := hkdf.New(sha256.New, ikm, []byte(extractSalt), []byte(expandInfo))
	pad := make([]byte, n)
	if _, err := io.ReadFull(kdf, pad); err != nil {
		return nil, err
	}
	return pad, nil
}
