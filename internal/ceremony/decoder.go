// decoder.go - ceremony fountain decoder (spec.md C3 decoding)
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
	"errors"
	"fmt"
)

// equation is a pending coded equation: payload is the XOR of the
// still-unsolved source blocks in unknowns.
type equation struct {
	unknowns map[uint32]struct{}
	payload  []byte
}

// Decoder reconstructs a payload from an unordered, lossy,
// duplicate-prone stream of frames, per spec.md §4.3 "Decoding
// (receiver)": a peeling / belief-propagation decoder over XOR
// equations.
type Decoder struct {
	passphrase string

	started          bool
	method           Method
	blockSize        uint32
	sourceBlockCount uint32

	solved    []bool
	blocks    [][]byte
	numSolved uint32

	seenSeeds map[uint32]struct{}
	pending   []*equation // non-singleton equations awaiting more solved blocks
}

// NewDecoder returns a fresh decoder. passphrase must match the
// encoder's; an empty string means no passphrase protection.
func NewDecoder(passphrase string) *Decoder {
	return &Decoder{
		passphrase: passphrase,
		seenSeeds:  make(map[uint32]struct{}),
	}
}

// Progress returns unique_source_blocks_solved / source_block_count,
// per spec.md §4.3 step 5. Before the first accepted frame it returns
// (0, 0).
func (d *Decoder) Progress() (solved, total uint32) {
	return d.numSolved, d.sourceBlockCount
}

// Done reports whether every source block has been solved.
func (d *Decoder) Done() bool {
	return d.started && d.numSolved == d.sourceBlockCount
}

// AddFrame ingests one wire-encoded frame. Corrupt, incompatible, or
// duplicate frames are dropped silently (returning nil), per
// spec.md §7: "Ceremony frame errors are silently dropped -- a noisy
// channel is expected." Malformed frames (truncated beyond recovery)
// return ErrFrameMalformed so a caller can distinguish "noise" from "a
// decoder bug", but callers are expected to ignore that error too in
// production use over a lossy channel.
func (d *Decoder) AddFrame(raw []byte) error {
	f, err := UnmarshalFrame(raw, d.passphrase)
	if err != nil {
		if errors.Is(err, ErrFrameCorrupt) || errors.Is(err, ErrFrameIncompatible) {
			return nil
		}
		return err
	}
	return d.addParsedFrame(f)
}

func (d *Decoder) addParsedFrame(f *Frame) error {
	if !d.started {
		d.started = true
		d.method = f.Method
		d.blockSize = uint32(f.BlockSize)
		d.sourceBlockCount = f.SourceBlockCount
		d.solved = make([]bool, d.sourceBlockCount)
		d.blocks = make([][]byte, d.sourceBlockCount)
	}

	if f.SourceBlockCount != d.sourceBlockCount || uint32(f.BlockSize) != d.blockSize || f.Method != d.method {
		return nil // incompatible, drop silently
	}
	if _, dup := d.seenSeeds[f.Seed]; dup {
		return nil // duplicate seed, drop
	}
	d.seenSeeds[f.Seed] = struct{}{}

	var unknowns []uint32
	switch f.Method {
	case MethodPlainRepeat:
		unknowns = []uint32{f.Seed % d.sourceBlockCount}
	default:
		deg := robustSolitonDegree(d.sourceBlockCount, f.Seed)
		unknowns = sourceIndices(d.sourceBlockCount, f.Seed, deg)
	}

	eq := &equation{
		unknowns: make(map[uint32]struct{}, len(unknowns)),
		payload:  append([]byte(nil), f.Payload...),
	}
	for _, u := range unknowns {
		eq.unknowns[u] = struct{}{}
	}

	// XOR out already-solved blocks.
	for idx := range eq.unknowns {
		if d.solved[idx] {
			xorInto(eq.payload, d.blocks[idx])
			delete(eq.unknowns, idx)
		}
	}

	d.resolve(eq)
	return nil
}

// resolve runs the peeling/belief-propagation loop: if eq reduces to a
// single unknown, solve it and propagate that solution into every
// pending equation, recursively solving any further singletons.
func (d *Decoder) resolve(eq *equation) {
	queue := []*equation{eq}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if len(cur.unknowns) == 0 {
			continue // fully cancelled-out duplicate information
		}
		if len(cur.unknowns) > 1 {
			d.pending = append(d.pending, cur)
			continue
		}

		var idx uint32
		for k := range cur.unknowns {
			idx = k
		}
		if d.solved[idx] {
			continue
		}
		d.solved[idx] = true
		d.blocks[idx] = cur.payload
		d.numSolved++

		// propagate into all pending equations
		remaining := d.pending[:0]
		for _, pend := range d.pending {
			if _, ok := pend.unknowns[idx]; ok {
				xorInto(pend.payload, d.blocks[idx])
				delete(pend.unknowns, idx)
				queue = append(queue, pend)
			} else {
				remaining = append(remaining, pend)
			}
		}
		d.pending = remaining
	}
}

// Reassemble returns the concatenated, solved source blocks once
// Done() is true.
func (d *Decoder) Reassemble() ([]byte, error) {
	if !d.Done() {
		return nil, fmt.Errorf("ceremony: decoder not done (%d/%d blocks solved)", d.numSolved, d.sourceBlockCount)
	}
	out := make([]byte, 0, uint32(len(d.blocks))*d.blockSize)
	for _, b := range d.blocks {
		out = append(out, b...)
	}
	return out, nil
}
