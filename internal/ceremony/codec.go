// codec.go - pad+metadata ceremony payload assembly (spec.md §4.3)
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

import "fmt"

// Payload builds P = pad || serialized_metadata, per spec.md §4.3.
func Payload(pad []byte, meta Metadata) ([]byte, error) {
	encodedMeta, err := meta.Encode()
	if err != nil {
		return nil, err
	}
	p := make([]byte, 0, len(pad)+len(encodedMeta))
	p = append(p, pad...)
	p = append(p, encodedMeta...)
	return p, nil
}

// SplitPayload reverses Payload: it decodes the trailing metadata
// record and returns the pad bytes that precede it. Per spec.md
// §4.3 step 6: "metadata carries its own length; pad length = N =
// |P| - serialized_metadata_len", so the metadata is parsed from the
// tail by scanning for a valid encoding: decode assumes metadata
// always occupies exactly the bytes written by Payload, located by
// first determining a candidate split from the relay-url length byte
// scan below.
func SplitPayload(p []byte) ([]byte, Metadata, error) {
	split, meta, err := findMetadataSplit(p)
	if err != nil {
		return nil, Metadata{}, err
	}
	pad := append([]byte(nil), p[:split]...)
	return pad, meta, nil
}

// findMetadataSplit scans candidate split points from the end of the
// fixed-width prefix (11 bytes minimum) forward, decoding the
// remainder as metadata and accepting the first split whose decode
// consumes exactly the rest of p. Since a ceremony payload's pad
// length N is only known by the sender, and N can range from 16 KiB
// to 4 MiB (spec.md §3), this walks every feasible relay_url_len
// (0..255) rather than every byte of p, which is cheap: at most 256
// decode attempts.
func findMetadataSplit(p []byte) (int, Metadata, error) {
	if len(p) < 11 {
		return 0, Metadata{}, fmt.Errorf("%w: payload shorter than metadata header", ErrMetadataMalformed)
	}
	for urlLen := 0; urlLen <= 255; urlLen++ {
		metaLen := 11 + urlLen
		if metaLen > len(p) {
			break
		}
		split := len(p) - metaLen
		candidate := p[split:]
		meta, n, err := DecodeMetadata(candidate)
		if err != nil {
			continue
		}
		if n == len(candidate) {
			return split, meta, nil
		}
	}
	return 0, Metadata{}, fmt.Errorf("%w: no valid metadata suffix found", ErrMetadataMalformed)
}
