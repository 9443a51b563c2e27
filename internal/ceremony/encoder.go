// encoder.go - ceremony fountain encoder (spec.md C3 encoding)
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

// Encoder emits an unbounded lazy sequence of coded frames for a
// payload, per spec.md §4.3 "Encoding (sender)".
type Encoder struct {
	blockSize uint32
	method    Method
	passphrase string
	blocks    [][]byte // source blocks, zero-padded to blockSize
	k         uint32
}

// NewEncoder pads payload with zeros to a multiple of blockSize (or
// DefaultBlockSize if 0) and splits it into source blocks.
func NewEncoder(payload []byte, blockSize uint32, method Method, passphrase string) *Encoder {
	if blockSize == 0 {
		blockSize = DefaultBlockSize
	}
	k := (uint32(len(payload)) + blockSize - 1) / blockSize
	if k == 0 {
		k = 1
	}
	padded := make([]byte, k*blockSize)
	copy(padded, payload)

	blocks := make([][]byte, k)
	for i := uint32(0); i < k; i++ {
		blocks[i] = padded[i*blockSize : (i+1)*blockSize]
	}

	return &Encoder{
		blockSize:  blockSize,
		method:     method,
		passphrase: passphrase,
		blocks:     blocks,
		k:          k,
	}
}

// SourceBlockCount returns K, the number of source blocks.
func (e *Encoder) SourceBlockCount() uint32 { return e.k }

// Frame produces the coded frame at index i (i >= 0). The same (k,
// seed) pair always yields the same coded block, on any device running
// this codec (spec.md §4.3's determinism guarantee).
func (e *Encoder) Frame(i uint32) *Frame {
	var payload []byte
	switch e.method {
	case MethodPlainRepeat:
		src := e.blocks[i%e.k]
		payload = append([]byte(nil), src...)
	default: // MethodRaptorLT
		d := robustSolitonDegree(e.k, i)
		idxs := sourceIndices(e.k, i, d)
		payload = make([]byte, e.blockSize)
		for _, idx := range idxs {
			xorInto(payload, e.blocks[idx])
		}
	}
	return &Frame{
		Version:          FrameVersion,
		Method:           e.method,
		BlockSize:        uint16(e.blockSize),
		SourceBlockCount: e.k,
		Seed:             i,
		Payload:          payload,
	}
}

// MarshalFrame produces the wire-encoded bytes of Frame(i), applying
// passphrase encryption if the encoder was constructed with one.
func (e *Encoder) MarshalFrame(i uint32) []byte {
	return e.Frame(i).Marshal(e.passphrase)
}

func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}
