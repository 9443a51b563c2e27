// message.go - message codec (spec.md C7)
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

// Package message implements the AEAD message codec of spec.md §4.7:
// ChaCha20-Poly1305 keyed from a one-time-pad key slice of exactly
// L_p + τ bytes, with no bucket padding and no content-discriminator
// overhead in the sealed plaintext. See the internal/message entry in
// DESIGN.md for why this departs from §4.7's literal "key =
// slice[0:32], nonce = slice[32:44]" wording: the consumed slice for a
// short message (spec.md §8 S1/S2/S5) is too short to be sliced that
// way, so key, nonce and tag mask are instead derived from the whole
// slice via HKDF-Expand, which works for any input length and still
// consumes the slice exactly once.
package message

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const (
	// TagSize is the ChaCha20-Poly1305 authentication tag length τ.
	TagSize = 16

	keyLen   = 32
	nonceLen = chacha20poly1305.NonceSize // 12 bytes = 96 bits
	maskLen  = TagSize

	hkdfInfo = "ash-message-key-nonce-mask-v1"

	// locationContentLen is the fixed wire size of an encoded Location
	// content value: one sentinel byte plus two float64 fields.
	locationContentLen = 17
	locationSentinel   = 0x00

	// maxContentLen bounds plaintext size. Not in the original
	// bucket scheme; guards against pathological allocations now that
	// padding no longer imposes an implicit ceiling.
	maxContentLen = 1 << 20
)

// Content discriminator bytes, used only by callers that need to ask
// "what kind of content is this" — on the wire, Text carries no
// discriminator at all (see package doc).
const (
	ContentText     byte = 0x01
	ContentLocation byte = 0x02
)

var (
	// ErrMessageTooLarge is returned when encoded content exceeds maxContentLen.
	ErrMessageTooLarge = errors.New("message: plaintext too large")
	// ErrContentMalformed is returned when decoded content doesn't
	// match its discriminator's expected shape.
	ErrContentMalformed = errors.New("message: content malformed")
	// ErrDecryptFailed is returned on AEAD authentication failure.
	ErrDecryptFailed = errors.New("message: decryption failed")
)

// Content is the discriminated payload carried inside a message,
// spec.md §4.7 "Content discriminator".
type Content struct {
	Kind byte
	Text string
	Lat  float64
	Lon  float64
}

// TextContent builds a Text content value.
func TextContent(text string) Content {
	return Content{Kind: ContentText, Text: text}
}

// LocationContent builds a Location content value.
func LocationContent(lat, lon float64) Content {
	return Content{Kind: ContentLocation, Lat: lat, Lon: lon}
}

// encode returns the exact bytes that get AEAD-sealed. Text is carried
// as-is with zero framing overhead so that L_p equals the true UTF-8
// byte length (spec.md §8 S1/S2/S5 depend on this). Location is
// distinguished by a fixed 17-byte shape with a leading sentinel byte
// that UTF-8 text never legitimately starts with.
func (c Content) encode() ([]byte, error) {
	switch c.Kind {
	case ContentText:
		if len(c.Text) > maxContentLen {
			return nil, ErrMessageTooLarge
		}
		return []byte(c.Text), nil
	case ContentLocation:
		out := make([]byte, locationContentLen)
		out[0] = locationSentinel
		binary.LittleEndian.PutUint64(out[1:9], math.Float64bits(c.Lat))
		binary.LittleEndian.PutUint64(out[9:17], math.Float64bits(c.Lon))
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown content kind 0x%02x", ErrContentMalformed, c.Kind)
	}
}

// decodeContent recovers a Content from decrypted plaintext. A
// Location is recognized by its fixed length and leading sentinel;
// everything else is Text.
func decodeContent(b []byte) (Content, error) {
	if len(b) == locationContentLen && b[0] == locationSentinel {
		lat := math.Float64frombits(binary.LittleEndian.Uint64(b[1:9]))
		lon := math.Float64frombits(binary.LittleEndian.Uint64(b[9:17]))
		return LocationContent(lat, lon), nil
	}
	return TextContent(string(b)), nil
}

// Encrypt seals content into a transmittable ciphertext using key
// slice material consumed from the pad manager for sequence. The
// slice must be exactly PadLength(content) bytes.
func Encrypt(slice []byte, sequence uint64, content Content) ([]byte, error) {
	plaintext, err := content.encode()
	if err != nil {
		return nil, err
	}

	key, nonce, mask, err := deriveKeyMaterial(slice)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	ad := associatedData(sequence)

	sealed := aead.Seal(nil, nonce, plaintext, ad)
	maskTagInPlace(sealed, mask)
	return sealed, nil
}

// Decrypt opens a blob produced by Encrypt, given the same key slice
// and sequence.
func Decrypt(slice []byte, sequence uint64, blob []byte) (Content, error) {
	if len(blob) < TagSize {
		return Content{}, fmt.Errorf("%w: blob shorter than tag", ErrDecryptFailed)
	}

	key, nonce, mask, err := deriveKeyMaterial(slice)
	if err != nil {
		return Content{}, err
	}

	unmasked := append([]byte(nil), blob...)
	maskTagInPlace(unmasked, mask)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return Content{}, err
	}
	ad := associatedData(sequence)

	plaintext, err := aead.Open(nil, nonce, unmasked, ad)
	if err != nil {
		return Content{}, ErrDecryptFailed
	}

	return decodeContent(plaintext)
}

// PadLength returns how many pad bytes a message of this content
// requires: L_p + τ (spec.md §4.7, "Key slicing"; §8 S1/S2/S5 fix the
// exact values this must produce).
func PadLength(content Content) (int, error) {
	encoded, err := content.encode()
	if err != nil {
		return 0, err
	}
	return len(encoded) + TagSize, nil
}

// associatedData is the 8-byte little-endian sequence (spec.md §4.7).
func associatedData(sequence uint64) []byte {
	ad := make([]byte, 8)
	binary.LittleEndian.PutUint64(ad, sequence)
	return ad
}

// deriveKeyMaterial expands the consumed pad slice (the entire
// L_p+τ-byte region, one-time by construction) into a key, nonce and
// tag mask via HKDF-Expand over a SHA-256 extraction of the slice.
// Unlike raw slicing this has no minimum-length requirement, which is
// what lets a message as short as spec.md §8's "hi" (18-byte slice)
// still yield a usable AEAD key and nonce.
func deriveKeyMaterial(slice []byte) (key, nonce, mask []byte, err error) {
	if len(slice) == 0 {
		return nil, nil, nil, fmt.Errorf("message: empty key slice")
	}
	r := hkdf.New(sha256.New, slice, nil, []byte(hkdfInfo))
	out := make([]byte, keyLen+nonceLen+maskLen)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, nil, nil, fmt.Errorf("message: derive key material: %w", err)
	}
	return out[:keyLen], out[keyLen : keyLen+nonceLen], out[keyLen+nonceLen:], nil
}

// maskTagInPlace XORs mask over the final len(mask) bytes of sealed,
// which is where the AEAD tag lives (ChaCha20-Poly1305 appends the tag
// to the ciphertext). Applying this twice is its own inverse, which is
// how a single helper serves both Encrypt's masking and Decrypt's
// unmasking.
func maskTagInPlace(sealed []byte, mask []byte) {
	if len(mask) == 0 {
		return
	}
	start := len(sealed) - len(mask)
	for i, m := range mask {
		sealed[start+i] ^= m
	}
}
