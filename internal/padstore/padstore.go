// padstore.go - pad store (spec.md C5)
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

// Package padstore provides atomic {bytes, consumed_front,
// consumed_back} persistence keyed by conversation id (spec.md §4.5),
// backed by go.etcd.io/bbolt and sealed at rest the way disk.go's
// StateWriter seals the catshadow statefile: argon2 stretches a
// device passphrase, nacl/secretbox authenticates and encrypts the
// CBOR-encoded record, and writes are journaled so a crash between
// the counter update and the byte content leaves a recoverable state.
package padstore

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"go.etcd.io/bbolt"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"

	logging "gopkg.in/op/go-logging.v1"
)

const (
	keySize   = 32
	nonceSize = 24
	bucketPad = "pads"
)

// ErrPadNotFound is returned when no record exists for a conversation
// id, or after it has been wiped (spec.md property 9).
var ErrPadNotFound = errors.New("padstore: pad not found")

// ErrTamper is returned when a sealed record fails to authenticate.
var ErrTamper = errors.New("padstore: record failed to authenticate")

// Record is the persisted pad record of spec.md §6:
// `{ bytes_b64, consumed_front, consumed_back }`, here kept as raw
// bytes (not base64) once past the legacy-upgrade boundary; Bytes may
// legitimately be stale/zeroed inside
// [0, ConsumedFront) ∪ [N-ConsumedBack, N) after a crash, which is why
// the pad manager (internal/pad) treats counters as authoritative and
// never trusts byte content in the consumed ranges.
type Record struct {
	Bytes         []byte
	ConsumedFront uint64
	ConsumedBack  uint64
}

// legacyRecord is the bare-base64 format mentioned in spec.md §6 that
// must be accepted on read and upgraded on next write.
type legacyRecord struct {
	BytesB64      string `cbor:"bytes_b64"`
	ConsumedFront uint64 `cbor:"consumed_front"`
	ConsumedBack  uint64 `cbor:"consumed_back"`
}

type sealedEnvelope struct {
	Nonce      [nonceSize]byte
	Ciphertext []byte
}

// Store is the bbolt-backed pad store.
type Store struct {
	db   *bbolt.DB
	key  [keySize]byte
	log  *logging.Logger
}

// Open opens (creating if absent) a bbolt database at path, deriving
// the at-rest sealing key from passphrase via argon2, matching
// disk.go's GetStateFromFile key stretch (time=3, memory=32MiB,
// threads=4).
func Open(path string, passphrase []byte, log *logging.Logger) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("padstore: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketPad))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db, log: log}
	secret := argon2.IDKey(passphrase, []byte("ash/padstore/v1"), 3, 32*1024, 4, keySize)
	copy(s.key[:], secret)
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put atomically persists rec for conversationID. The write is
// journaled: a new sealed value is fully constructed before bbolt's
// own transaction commit replaces the old one, so a crash mid-write
// leaves either the old or the new value intact, never a torn one
// (mirrors disk.go's writeState tmp-then-rename sequence, expressed
// here as bbolt's own atomic page-level commit).
func (s *Store) Put(conversationID string, rec Record) error {
	plain, err := cbor.Marshal(rec)
	if err != nil {
		return fmt.Errorf("padstore: marshal: %w", err)
	}
	sealed, err := s.seal(plain)
	if err != nil {
		return fmt.Errorf("padstore: seal: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketPad))
		return b.Put([]byte(conversationID), sealed)
	})
}

// Get loads and authenticates the record for conversationID, upgrading
// a legacy bare-base64 record in place if one is found.
func (s *Store) Get(conversationID string) (Record, error) {
	var sealed []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketPad))
		v := b.Get([]byte(conversationID))
		if v == nil {
			return ErrPadNotFound
		}
		sealed = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return Record{}, err
	}

	plain, err := s.open(sealed)
	if err != nil {
		return Record{}, err
	}

	var rec Record
	if err := cbor.Unmarshal(plain, &rec); err == nil && rec.Bytes != nil {
		return rec, nil
	}

	// fall back to legacy bare-base64 shape and rewrite it in the current shape now.
	var legacy legacyRecord
	if err := cbor.Unmarshal(plain, &legacy); err != nil {
		return Record{}, fmt.Errorf("padstore: unrecognized record shape: %w", err)
	}
	raw, err := base64.StdEncoding.DecodeString(legacy.BytesB64)
	if err != nil {
		return Record{}, fmt.Errorf("padstore: legacy record has invalid base64: %w", err)
	}
	upgraded := Record{Bytes: raw, ConsumedFront: legacy.ConsumedFront, ConsumedBack: legacy.ConsumedBack}
	if err := s.Put(conversationID, upgraded); err != nil {
		s.log.Warningf("padstore: failed to upgrade legacy record for %s: %s", conversationID, err)
	}
	return upgraded, nil
}

// Wipe overwrites the pad bytes with zeros in place and then deletes
// the record, per spec.md §4.5's wipe contract.
func (s *Store) Wipe(conversationID string) error {
	rec, err := s.Get(conversationID)
	if err == nil {
		for i := range rec.Bytes {
			rec.Bytes[i] = 0
		}
		_ = s.Put(conversationID, rec)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketPad))
		return b.Delete([]byte(conversationID))
	})
}

func (s *Store) seal(plain []byte) ([]byte, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}
	ciphertext := secretbox.Seal(nil, plain, &nonce, &s.key)
	env := sealedEnvelope{Nonce: nonce, Ciphertext: ciphertext}
	return cbor.Marshal(env)
}

func (s *Store) open(sealed []byte) ([]byte, error) {
	var env sealedEnvelope
	if err := cbor.Unmarshal(sealed, &env); err != nil {
		return nil, fmt.Errorf("padstore: malformed envelope: %w", err)
	}
	plain, ok := secretbox.Open(nil, env.Ciphertext, &env.Nonce, &s.key)
	if !ok {
		return nil, ErrTamper
	}
	return plain, nil
}
