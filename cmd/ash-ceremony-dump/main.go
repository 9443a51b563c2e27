// main.go - ash-ceremony-dump fixture tool
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

// Command ash-ceremony-dump exercises the QR ceremony codec (C1-C3)
// end to end off the wire: sample a pad, attach metadata, encode it to
// a stream of QR-ready frames, decode those frames back, and report
// whether the round trip reconstructed the original payload. Useful
// for checking frame counts and timing without a camera or display.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"

	"github.com/monadial/ash/internal/ceremony"
	"github.com/monadial/ash/internal/entropy"
)

func main() {
	var (
		padSize    = flag.Int("pad-size", 64*1024, "pad size in bytes")
		passphrase = flag.String("passphrase", "", "ceremony passphrase (empty for none)")
		blockSize  = flag.Int("block-size", ceremony.DefaultBlockSize, "source block size in bytes")
		relayURL   = flag.String("relay-url", "https://relay.ash.example", "relay URL embedded in metadata")
	)
	flag.Parse()

	userEntropy := make([]byte, entropy.MinEntropyBytes)
	if _, err := rand.Read(userEntropy); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture entropy: %s\n", err)
		os.Exit(1)
	}

	sampler := entropy.NewSampler()
	pad, err := sampler.Sample(userEntropy, *padSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sample pad: %s\n", err)
		os.Exit(1)
	}

	meta := ceremony.Metadata{
		TTLSeconds: 86400,
		RelayURL:   *relayURL,
	}
	payload, err := ceremony.Payload(pad, meta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build payload: %s\n", err)
		os.Exit(1)
	}

	enc := ceremony.NewEncoder(payload, uint32(*blockSize), ceremony.MethodRaptorLT, *passphrase)
	k := enc.SourceBlockCount()
	fmt.Printf("payload=%d bytes K=%d blocks block_size=%d\n", len(payload), k, *blockSize)

	dec := ceremony.NewDecoder(*passphrase)
	var frames uint32
	for !dec.Done() {
		raw := enc.MarshalFrame(frames)
		qr, err := ceremony.EncodeQR(raw)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode qr frame %d: %s\n", frames, err)
			os.Exit(1)
		}
		decodedRaw, err := ceremony.DecodeQR(qr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "decode qr frame %d: %s\n", frames, err)
			os.Exit(1)
		}
		if err := dec.AddFrame(decodedRaw); err != nil {
			fmt.Fprintf(os.Stderr, "add frame %d: %s\n", frames, err)
			os.Exit(1)
		}
		frames++
		if frames > k*10 {
			fmt.Fprintf(os.Stderr, "decoder failed to converge within %d frames\n", frames)
			os.Exit(1)
		}
	}

	got, err := dec.Reassemble()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reassemble: %s\n", err)
		os.Exit(1)
	}

	gotPad, gotMeta, err := ceremony.SplitPayload(got)
	if err != nil {
		fmt.Fprintf(os.Stderr, "split payload: %s\n", err)
		os.Exit(1)
	}

	ok := string(gotPad) == string(pad) && gotMeta.RelayURL == meta.RelayURL
	fmt.Printf("frames_used=%d round_trip_ok=%v\n", frames, ok)
	if !ok {
		os.Exit(1)
	}
}
