// token.go - token deriver (spec.md C4)
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

// Package token derives a conversation id, auth token, burn token, and
// verification mnemonic from a one-time pad, per spec.md §4.4.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

const (
	domainConvID = "ash/conv-id/v1"
	domainAuth   = "ash/auth/v1"
	domainBurn   = "ash/burn/v1"
	domainVerify = "ash/verify/v1"
)

// Tokens bundles the pad-derived identifiers of spec.md §4.4.
type Tokens struct {
	ConversationID string
	AuthToken      string
	BurnToken      string
	Mnemonic       [6]string
}

func keyedHash(domain string, pad []byte) []byte {
	mac := hmac.New(sha256.New, []byte(domain))
	mac.Write(pad)
	return mac.Sum(nil)
}

// Derive computes all pad-derived tokens. Running Derive on the same
// pad on two devices yields identical output (spec.md property 10).
func Derive(pad []byte) Tokens {
	convHash := keyedHash(domainConvID, pad)
	authHash := keyedHash(domainAuth, pad)
	burnHash := keyedHash(domainBurn, pad)
	verifyHash := keyedHash(domainVerify, pad)

	return Tokens{
		ConversationID: hex.EncodeToString(convHash[:16]),
		AuthToken:      base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(authHash),
		BurnToken:      base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(burnHash),
		Mnemonic:       mnemonicFromHash(verifyHash),
	}
}

// mnemonicFromHash splits a hash into six 11-bit chunks and maps each
// to a word in the fixed list, per spec.md §4.4.
func mnemonicFromHash(h []byte) [6]string {
	var words [6]string
	bitOffset := 0
	for i := 0; i < 6; i++ {
		words[i] = wordlist[read11Bits(h, bitOffset)]
		bitOffset += 11
	}
	return words
}

// read11Bits reads an 11-bit big-endian value starting at bitOffset
// from h, treating h as a bitstream MSB-first.
func read11Bits(h []byte, bitOffset int) uint16 {
	var v uint16
	for i := 0; i < 11; i++ {
		bitIdx := bitOffset + i
		byteIdx := bitIdx / 8
		bitInByte := 7 - (bitIdx % 8)
		var bit uint16
		if byteIdx < len(h) {
			bit = uint16((h[byteIdx] >> uint(bitInByte)) & 1)
		}
		v = (v << 1) | bit
	}
	return v
}

// HashToken returns SHA-256(token) hex-encoded, the form in which
// tokens are sent to the relay (spec.md §4.4: "Tokens are sent to the
// relay only as SHA-256(token) hashes").
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
