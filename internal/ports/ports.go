// ports.go - capability interfaces for external collaborators
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

// Package ports declares the small capability interfaces that separate
// the core (spec.md's C1-C10) from platform services: QR rendering and
// decoding, the device secret for at-rest sealing, user-gesture
// entropy, and the system clock. Design
// Notes §9 calls for the core to be generic over these; production
// code wires concrete adapters, tests inject fakes.
package ports

import "time"

// Clock abstracts time.Now so tests can control expiry/backoff.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by the real wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// SecretStore supplies the device-level passphrase/key used to seal
// pad and conversation records at rest (spec.md §4.5's "encrypted
// key-value store"). Concrete implementations might pull from a
// platform keychain or biometric-gated secure enclave; those are
// external collaborators per spec.md §1.
type SecretStore interface {
	// DeviceSecret returns the bytes used to derive the at-rest
	// encryption key. Implementations MUST return the same bytes for
	// the lifetime of a device identity.
	DeviceSecret() ([]byte, error)
}

// QRRenderer turns an encoded ceremony frame into a displayable QR
// image. Platform service; out of the core's scope (spec.md §1).
type QRRenderer interface {
	RenderQR(frame []byte) error
}

// QRDecoder turns camera frames into decoded ceremony frame bytes.
// Platform service; out of the core's scope (spec.md §1).
type QRDecoder interface {
	NextFrame() ([]byte, error)
}

// EntropySource supplies raw user-gesture entropy bytes (spec.md §4.1).
type EntropySource interface {
	// ReadEntropy blocks until at least min bytes of entropy have been
	// collected (e.g. from a drag-gesture canvas) and returns them.
	ReadEntropy(min int) ([]byte, error)
}
