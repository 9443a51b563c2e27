// frame.go - ceremony frame wire format (spec.md C3 / §3 / §6)
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

package ceremony

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/text/unicode/norm"

	"crypto/sha256"
)

// Method identifies the fountain-coding scheme used to produce a frame.
type Method uint8

const (
	// MethodRaptorLT is the default LT-style rateless code.
	MethodRaptorLT Method = 0
	// MethodPlainRepeat cycles through source blocks without coding.
	MethodPlainRepeat Method = 1
)

// FrameVersion is the only wire version this codec emits/accepts.
const FrameVersion uint8 = 1

// DefaultBlockSize is spec.md's default source block size.
const DefaultBlockSize = 1500

var (
	// ErrFrameCorrupt is returned on CRC mismatch.
	ErrFrameCorrupt = errors.New("ceremony: frame corrupt")
	// ErrFrameIncompatible is returned on version/method/block_size/K mismatch.
	ErrFrameIncompatible = errors.New("ceremony: frame incompatible")
	// ErrFrameMalformed is returned on a truncated frame.
	ErrFrameMalformed = errors.New("ceremony: frame malformed")
)

// Frame is a single coded block plus header and CRC, per spec.md §3:
//
//	u8 version | u8 method | u16 block_size | u32 source_block_count |
//	u32 seed | u32 payload_len | payload[payload_len] | u32 crc32
//
// spec.md §4.3(4) additionally requires that, when a passphrase is
// set, "the entire serialized frame" up to the CRC is XOR-enciphered
// with a keystream derived from HKDF(passphrase, ..., seed) -- but the
// receiver cannot derive that keystream without already knowing seed,
// which is itself inside the thing being decrypted. ash resolves this
// by carrying Seed in the clear ahead of the encrypted span (on the
// wire Seed comes first, before version): seed is not secret,
// only frame content confidentiality/integrity matter. CRC32 is always
// computed over the plaintext frame (matching §3's literal wording),
// never the ciphertext.
type Frame struct {
	Version          uint8
	Method           Method
	BlockSize        uint16
	SourceBlockCount uint32
	Seed             uint32
	Payload          []byte
}

// restHeaderSize is the size of the fixed fields after Seed and before Payload.
const restHeaderSize = 1 + 1 + 2 + 4 + 4 // version, method, block_size, source_block_count, payload_len

// crc32Table is the spec-mandated polynomial 0xEDB88320, the standard
// IEEE polynomial in its reflected (table-driven) form.
var crc32Table = crc32.MakeTable(crc32.IEEE)

// marshalRest serializes every header field except Seed, plus Payload.
func (f *Frame) marshalRest() []byte {
	buf := make([]byte, restHeaderSize+len(f.Payload))
	buf[0] = f.Version
	buf[1] = byte(f.Method)
	binary.LittleEndian.PutUint16(buf[2:4], f.BlockSize)
	binary.LittleEndian.PutUint32(buf[4:8], f.SourceBlockCount)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(len(f.Payload)))
	copy(buf[12:], f.Payload)
	return buf
}

// Marshal serializes the frame to its wire form: cleartext seed,
// optionally-enciphered rest-of-header+payload, then CRC32 over the
// plaintext rest-of-header+payload.
func (f *Frame) Marshal(passphrase string) []byte {
	rest := f.marshalRest()
	crc := crc32.Checksum(rest, crc32Table)

	body := rest
	if passphrase != "" {
		ks := frameKeystream(passphrase, f.Seed, len(rest))
		body = make([]byte, len(rest))
		for i := range rest {
			body[i] = rest[i] ^ ks[i]
		}
	}

	out := make([]byte, 4+len(body)+4)
	binary.LittleEndian.PutUint32(out[0:4], f.Seed)
	copy(out[4:], body)
	binary.LittleEndian.PutUint32(out[4+len(body):], crc)
	return out
}

// UnmarshalFrame parses a wire-form frame, reversing passphrase
// encryption (if passphrase != "") and validating its CRC. On CRC
// mismatch it returns ErrFrameCorrupt; per spec.md, a wrong passphrase
// manifests as CRC failure on virtually every frame, and the decoder
// never advances.
func UnmarshalFrame(raw []byte, passphrase string) (*Frame, error) {
	if len(raw) < 4+restHeaderSize+4 {
		return nil, fmt.Errorf("%w: frame shorter than header", ErrFrameMalformed)
	}
	seed := binary.LittleEndian.Uint32(raw[0:4])
	bodyLen := len(raw) - 4 - 4
	body := raw[4 : 4+bodyLen]
	wantCRC := binary.LittleEndian.Uint32(raw[4+bodyLen:])

	rest := body
	if passphrase != "" {
		ks := frameKeystream(passphrase, seed, len(body))
		rest = make([]byte, len(body))
		for i := range body {
			rest[i] = body[i] ^ ks[i]
		}
	}

	gotCRC := crc32.Checksum(rest, crc32Table)
	if gotCRC != wantCRC {
		return nil, ErrFrameCorrupt
	}

	f := &Frame{
		Version:          rest[0],
		Method:           Method(rest[1]),
		BlockSize:        binary.LittleEndian.Uint16(rest[2:4]),
		SourceBlockCount: binary.LittleEndian.Uint32(rest[4:8]),
		Seed:             seed,
	}
	payloadLen := binary.LittleEndian.Uint32(rest[8:12])
	if uint32(len(rest)-restHeaderSize) != payloadLen {
		return nil, fmt.Errorf("%w: payload length mismatch", ErrFrameMalformed)
	}
	f.Payload = append([]byte(nil), rest[restHeaderSize:]...)

	if f.Version != FrameVersion {
		return nil, fmt.Errorf("%w: version %d", ErrFrameIncompatible, f.Version)
	}
	return f, nil
}

// frameKeystream derives a keystream of the given length from a
// ceremony passphrase and a frame seed, per spec.md §4.3 (4):
// HKDF(passphrase, "ash/qr-frame/v1", seed).
func frameKeystream(passphrase string, seed uint32, length int) []byte {
	normalized := norm.NFKC.String(passphrase)
	info := make([]byte, len("ash/qr-frame/v1")+4)
	copy(info, "ash/qr-frame/v1")
	binary.LittleEndian.PutUint32(info[len("ash/qr-frame/v1"):], seed)

	kdf := hkdf.New(sha256.New, []byte(normalized), nil, info)
	ks := make([]byte, length)
	if _, err := io.ReadFull(kdf, ks); err != nil {
		panic(err) // hkdf.Reader only errors past its output limit, unreachable at frame sizes
	}
	return ks
}
