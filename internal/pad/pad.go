// pad.go - pad manager (spec.md C6)
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

// Package pad wraps a loaded one-time pad plus its consumption state
// (spec.md §4.6), serialized behind a per-conversation mutex the way
// ratchet.go guards its own key state, and keeps the pad bytes
// themselves inside a memguard.LockedBuffer so they're never paged
// to swap and are wiped from process memory on Destroy.
package pad

import (
	"errors"
	"sync"

	"github.com/awnumar/memguard"

	"github.com/monadial/ash/internal/padstore"
)

// Role is which side of the ceremony a conversation's pad manager is
// playing, fixing which end of the pad it consumes from.
type Role int

const (
	// Initiator consumes the pad front-growing-up.
	Initiator Role = iota
	// Responder consumes the pad back-growing-down.
	Responder
)

var (
	// ErrPadExhausted is returned by ConsumeForSending when the
	// remaining span is smaller than the requested length.
	ErrPadExhausted = errors.New("pad: exhausted")
	// ErrOutOfRange is returned by KeyForDecryption when the
	// requested range falls outside [0, N].
	ErrOutOfRange = errors.New("pad: range out of bounds")
	// ErrAlreadyConsumedBySelf is returned by KeyForDecryption when the
	// requested range overlaps the caller's own send region.
	ErrAlreadyConsumedBySelf = errors.New("pad: range already consumed by self")
)

// Manager is an in-memory session over one stored pad (spec.md §4.6).
// All mutating methods are serialized by mu, satisfying §5's
// requirement that consume_for_sending calls are serialized per
// conversation.
type Manager struct {
	mu             sync.Mutex
	conversationID string
	role           Role
	store          *padstore.Store
	buf            *memguard.LockedBuffer
	n              uint64
	consumedFront  uint64
	consumedBack   uint64
}

// Load reads the stored record for conversationID and locks its bytes
// into guarded memory.
func Load(store *padstore.Store, conversationID string, role Role) (*Manager, error) {
	rec, err := store.Get(conversationID)
	if err != nil {
		return nil, err
	}
	buf := memguard.NewBufferFromBytes(rec.Bytes)
	return &Manager{
		conversationID: conversationID,
		role:           role,
		store:          store,
		buf:            buf,
		n:              uint64(len(rec.Bytes)),
		consumedFront:  rec.ConsumedFront,
		consumedBack:   rec.ConsumedBack,
	}, nil
}

// remaining returns N - consumed_front - consumed_back. Caller must
// hold mu.
func (m *Manager) remaining() uint64 {
	return m.n - m.consumedFront - m.consumedBack
}

// CanSend reports whether at least length bytes of pad remain
// (spec.md §4.6, can_send).
func (m *Manager) CanSend(length uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remaining() >= length
}

// IsOwnMessage implements the "is this my own message?" test of
// spec.md §4.8 directly from this manager's own counters: Initiator
// owns seq < consumed_front; Responder owns seq ≥ N − consumed_back.
func (m *Manager) IsOwnMessage(seq uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.role == Initiator {
		return seq < m.consumedFront
	}
	return seq >= m.n-m.consumedBack
}

// KeySlice is a borrowed view into pad bytes. Callers MUST NOT retain
// it past the AEAD call it was obtained for (spec.md §5, Shared
// resources).
type KeySlice []byte

// ConsumeForSending returns exactly length bytes from the sender's
// next region and atomically advances the corresponding counter
// (spec.md §4.6, consume_for_sending). The returned offset is the
// absolute pad position the caller must use as `sequence`.
func (m *Manager) ConsumeForSending(length uint64) (offset uint64, slice KeySlice, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.remaining() < length {
		return 0, nil, ErrPadExhausted
	}

	var start uint64
	switch m.role {
	case Initiator:
		start = m.consumedFront
		m.consumedFront += length
	case Responder:
		start = m.n - m.consumedBack - length
		m.consumedBack += length
	}

	out := make([]byte, length)
	copy(out, m.buf.Bytes()[start:start+length])

	if err := m.persistLocked(); err != nil {
		// Roll back the in-memory counters: the on-disk update and the
		// counter advance must be atomic (spec.md §4.6 invariant 4).
		switch m.role {
		case Initiator:
			m.consumedFront -= length
		case Responder:
			m.consumedBack -= length
		}
		return 0, nil, err
	}

	return start, KeySlice(out), nil
}

// NextSendOffset reports where the next ConsumeForSending call of the
// given length would start, without consuming anything (spec.md §4.6,
// next_send_offset).
func (m *Manager) NextSendOffset(length uint64) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.role == Initiator {
		return m.consumedFront
	}
	return m.n - m.consumedBack - length
}

// KeyForDecryption returns pad[offset:offset+length], rejecting
// ranges outside [0, N] or that overlap the caller's own send region
// (spec.md §4.6, key_for_decryption).
func (m *Manager) KeyForDecryption(offset, length uint64) (KeySlice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if offset > m.n || length > m.n-offset {
		return nil, ErrOutOfRange
	}
	end := offset + length

	switch m.role {
	case Initiator:
		if offset < m.consumedFront {
			return nil, ErrAlreadyConsumedBySelf
		}
	case Responder:
		if end > m.n-m.consumedBack {
			return nil, ErrAlreadyConsumedBySelf
		}
	}

	out := make([]byte, length)
	copy(out, m.buf.Bytes()[offset:end])
	return KeySlice(out), nil
}

// UpdatePeerConsumption advances the peer's counter monotonically
// (spec.md §4.6, update_peer_consumption): writes are the max of the
// current and new value, never a decrease.
func (m *Manager) UpdatePeerConsumption(consumed uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.role {
	case Initiator:
		// peer is Responder, consuming from the back.
		if consumed > m.consumedBack {
			m.consumedBack = consumed
		}
	case Responder:
		if consumed > m.consumedFront {
			m.consumedFront = consumed
		}
	}
	return m.persistLocked()
}

// ZeroRange overwrites pad bytes with zeros, idempotently (spec.md
// §4.6, zero_range), for forward secrecy once a message's server TTL
// has elapsed.
func (m *Manager) ZeroRange(offset, length uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if offset > m.n || length > m.n-offset {
		return ErrOutOfRange
	}
	b := m.buf.Bytes()
	for i := offset; i < offset+length; i++ {
		b[i] = 0
	}
	return m.persistLocked()
}

// Wipe zeros all pad bytes, persists the zeroed state, deletes the
// stored record, and destroys the guarded buffer (spec.md §4.6,
// wipe()).
func (m *Manager) Wipe() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buf.Wipe()
	err := m.store.Wipe(m.conversationID)
	m.buf.Destroy()
	return err
}

// persistLocked writes the current counters and bytes back to the
// store. Caller must hold mu.
func (m *Manager) persistLocked() error {
	return m.store.Put(m.conversationID, padstore.Record{
		Bytes:         m.buf.Bytes(),
		ConsumedFront: m.consumedFront,
		ConsumedBack:  m.consumedBack,
	})
}

// Destroy releases the guarded pad buffer without wiping the stored
// record, for clean process shutdown of an otherwise-live pad.
func (m *Manager) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buf.Destroy()
}
