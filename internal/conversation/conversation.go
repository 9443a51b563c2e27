// conversation.go - conversation state and duplicate filtering (spec.md C8)
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

// Package conversation holds the durable per-session record of
// spec.md §4.8: role, totals, the sliding duplicate-rejection window,
// the own-message filter, and the in-RAM bookkeeping the orchestrator
// needs to drop the relay's echoes of a peer's own submissions. The
// window/bloom combination is grounded on the same duplicate-suppression
// shape used by yawning/bloom-backed caches elsewhere in the pack: a
// cheap probabilistic pre-check in front of an exact structure.
package conversation

import (
	"encoding/binary"

	"github.com/yawning/bloom"

	"github.com/monadial/ash/internal/pad"
)

const (
	// WindowSize is the number of most recently accepted incoming
	// sequences retained exactly (spec.md §4.8).
	WindowSize = 2048

	bloomFilterBits = 1 << 16 // generous headroom over WindowSize entries
	bloomHashFuncs  = 4
)

// State is the durable record backing one open conversation.
type State struct {
	ConversationID string
	Role           pad.Role

	// ProcessedIncomingSequences is the sliding window of the most
	// recently accepted incoming sequences, oldest first.
	ProcessedIncomingSequences []uint64
	MaxProcessed               uint64
	maxProcessedSet            bool

	// SentSequences and SentBlobIDs let the orchestrator recognize the
	// relay echoing back its own submissions without consulting C6.
	SentSequences map[uint64]struct{}
	SentBlobIDs   map[string]struct{}

	PeerBurnedAt int64 // unix seconds, 0 if not burned

	windowSet map[uint64]struct{}
	filter    *bloom.BloomFilter
}

// New constructs an empty conversation state.
func New(conversationID string, role pad.Role) *State {
	return &State{
		ConversationID: conversationID,
		Role:           role,
		SentSequences:  make(map[uint64]struct{}),
		SentBlobIDs:    make(map[string]struct{}),
		windowSet:      make(map[uint64]struct{}),
		filter:         bloom.New(bloomFilterBits, bloomHashFuncs),
	}
}

// Restore rebuilds a State (and its derived bloom/window index) from a
// persisted snapshot, e.g. one loaded from the encrypted key-value
// store's `conversation_<id>` record.
func Restore(conversationID string, role pad.Role, window []uint64, maxProcessed uint64, sentSequences []uint64, sentBlobIDs []string, peerBurnedAt int64) *State {
	s := New(conversationID, role)
	s.PeerBurnedAt = peerBurnedAt
	for _, seq := range window {
		s.ProcessedIncomingSequences = append(s.ProcessedIncomingSequences, seq)
		s.windowSet[seq] = struct{}{}
		s.filter.Add(seqBytes(seq))
	}
	s.MaxProcessed = maxProcessed
	s.maxProcessedSet = true
	for _, seq := range sentSequences {
		s.SentSequences[seq] = struct{}{}
	}
	for _, id := range sentBlobIDs {
		s.SentBlobIDs[id] = struct{}{}
	}
	return s
}

func seqBytes(seq uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, seq)
	return b
}

// IsDuplicate reports whether an incoming sequence has already been
// accepted, per spec.md §4.8: rejected if it's in the window, or if
// it's older than the window span behind the high-water mark.
func (s *State) IsDuplicate(seq uint64) bool {
	// The bloom filter is a cheap pre-check: a negative here is
	// certain, so only a positive needs the exact window lookup.
	if s.filter.Test(seqBytes(seq)) {
		if _, ok := s.windowSet[seq]; ok {
			return true
		}
	}

	if s.maxProcessedSet && seq < s.MaxProcessed && s.MaxProcessed-seq > WindowSize {
		return true
	}
	return false
}

// AcceptIncoming records seq as processed, truncating the window to
// its most recent WindowSize entries and advancing the high-water
// mark (spec.md §4.8, "On accept").
func (s *State) AcceptIncoming(seq uint64) {
	s.ProcessedIncomingSequences = append(s.ProcessedIncomingSequences, seq)
	if len(s.ProcessedIncomingSequences) > WindowSize {
		evicted := s.ProcessedIncomingSequences[:len(s.ProcessedIncomingSequences)-WindowSize]
		s.ProcessedIncomingSequences = append([]uint64(nil), s.ProcessedIncomingSequences[len(evicted):]...)
		s.rebuildWindowSet()
	} else {
		s.windowSet[seq] = struct{}{}
	}
	s.filter.Add(seqBytes(seq))

	if !s.maxProcessedSet || seq > s.MaxProcessed {
		s.MaxProcessed = seq
		s.maxProcessedSet = true
	}
}

func (s *State) rebuildWindowSet() {
	s.windowSet = make(map[uint64]struct{}, len(s.ProcessedIncomingSequences))
	for _, seq := range s.ProcessedIncomingSequences {
		s.windowSet[seq] = struct{}{}
	}
}

// IsOwnMessage implements the "is this my own message?" test of
// spec.md §4.8 for a candidate N (pad size, needed since the
// threshold differs by role and the caller already has it from C6).
func (s *State) IsOwnMessage(seq, padSize, consumedFront, consumedBack uint64) bool {
	switch s.Role {
	case pad.Initiator:
		return seq < consumedFront
	case pad.Responder:
		return seq >= padSize-consumedBack
	default:
		return false
	}
}

// MarkSent records that this device submitted seq/blobID, so a
// subsequent poll that echoes it back can be recognized and dropped.
func (s *State) MarkSent(seq uint64, blobID string) {
	s.SentSequences[seq] = struct{}{}
	s.SentBlobIDs[blobID] = struct{}{}
}

// IsEcho reports whether an incoming record matches something this
// device itself submitted (spec.md §4.8, relay echo filtering).
func (s *State) IsEcho(seq uint64, blobID string) bool {
	if _, ok := s.SentSequences[seq]; ok {
		return true
	}
	_, ok := s.SentBlobIDs[blobID]
	return ok
}

// MarkPeerBurned records the peer-initiated burn timestamp (spec.md
// §4.10, "On burn signal").
func (s *State) MarkPeerBurned(unixSeconds int64) {
	s.PeerBurnedAt = unixSeconds
}

// IsBurned reports whether this conversation has been tombstoned by a
// peer burn.
func (s *State) IsBurned() bool {
	return s.PeerBurnedAt != 0
}
