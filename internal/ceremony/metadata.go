// metadata.go - ceremony metadata codec (spec.md C2)
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
	"net/url"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

// Flag bits, per spec.md §3.
const (
	FlagNotifyNew uint16 = 1 << iota
	FlagNotifyExpiring
	FlagNotifyExpired
	FlagDeliveryFailed
	FlagPersistenceConsent
	// bits 5-7: padding-size class (3 bits)
	// bits 8-11: reserved
	// bits 12-15: color index
)

const (
	paddingClassShift = 5
	paddingClassMask  = 0x7 // 3 bits
	colorShift        = 12
	colorMask         = 0xF // 4 bits
)

// ErrMetadataMalformed is returned when a ceremony metadata record
// cannot be parsed (spec.md §4.2).
var ErrMetadataMalformed = errors.New("ceremony: metadata malformed")

// Metadata is the fixed-layout ceremony metadata record of spec.md §3:
//
//	u32 ttl_seconds | u32 disappearing_seconds | u16 flags |
//	u8 relay_url_len | relay_url[relay_url_len]
type Metadata struct {
	TTLSeconds           uint32
	DisappearingSeconds  uint32
	Flags                uint16
	RelayURL             string
}

// PaddingClass returns the 3-bit padding-size class carried in bits 5-7.
func (m Metadata) PaddingClass() uint8 {
	return uint8((m.Flags >> paddingClassShift) & paddingClassMask)
}

// WithPaddingClass returns a copy of m with bits 5-7 set to class.
func (m Metadata) WithPaddingClass(class uint8) Metadata {
	m.Flags = (m.Flags &^ (paddingClassMask << paddingClassShift)) | (uint16(class&paddingClassMask) << paddingClassShift)
	return m
}

// ColorIndex returns the 4-bit color index carried in bits 12-15.
func (m Metadata) ColorIndex() uint8 {
	return uint8((m.Flags >> colorShift) & colorMask)
}

// WithColorIndex returns a copy of m with bits 12-15 set to idx.
func (m Metadata) WithColorIndex(idx uint8) Metadata {
	m.Flags = (m.Flags &^ (colorMask << colorShift)) | (uint16(idx&colorMask) << colorShift)
	return m
}

// Encode serializes m to its bit-exact wire layout.
func (m Metadata) Encode() ([]byte, error) {
	if !utf8.ValidString(m.RelayURL) {
		return nil, fmt.Errorf("%w: relay_url is not valid UTF-8", ErrMetadataMalformed)
	}
	if len(m.RelayURL) > 255 {
		return nil, fmt.Errorf("%w: relay_url exceeds 255 bytes", ErrMetadataMalformed)
	}
	if err := validateRelayURL(m.RelayURL); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMetadataMalformed, err)
	}

	buf := make([]byte, 4+4+2+1+len(m.RelayURL))
	binary.LittleEndian.PutUint32(buf[0:4], m.TTLSeconds)
	binary.LittleEndian.PutUint32(buf[4:8], m.DisappearingSeconds)
	binary.LittleEndian.PutUint16(buf[8:10], m.Flags)
	buf[10] = byte(len(m.RelayURL))
	copy(buf[11:], m.RelayURL)
	return buf, nil
}

// DecodeMetadata parses the bit-exact wire layout. Unknown flag bits
// are preserved verbatim in the returned Metadata.Flags.
func DecodeMetadata(buf []byte) (Metadata, int, error) {
	if len(buf) < 11 {
		return Metadata{}, 0, fmt.Errorf("%w: truncated header", ErrMetadataMalformed)
	}
	ttl := binary.LittleEndian.Uint32(buf[0:4])
	disappearing := binary.LittleEndian.Uint32(buf[4:8])
	flags := binary.LittleEndian.Uint16(buf[8:10])
	urlLen := int(buf[10])
	if len(buf) < 11+urlLen {
		return Metadata{}, 0, fmt.Errorf("%w: truncated relay_url", ErrMetadataMalformed)
	}
	relayURL := string(buf[11 : 11+urlLen])
	if !utf8.ValidString(relayURL) {
		return Metadata{}, 0, fmt.Errorf("%w: relay_url is not valid UTF-8", ErrMetadataMalformed)
	}
	if err := validateRelayURL(relayURL); err != nil {
		return Metadata{}, 0, fmt.Errorf("%w: %s", ErrMetadataMalformed, err)
	}
	m := Metadata{
		TTLSeconds:          ttl,
		DisappearingSeconds: disappearing,
		Flags:               flags,
		RelayURL:            relayURL,
	}
	return m, 11 + urlLen, nil
}

// validateRelayURL checks scheme (http/https) and, for non-empty
// hosts, that the hostname is a valid (possibly internationalized)
// domain name.
func validateRelayURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid relay url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("relay url scheme must be http or https, got %q", u.Scheme)
	}
	host := u.Hostname()
	if host == "" {
		return errors.New("relay url has no host")
	}
	if _, err := idna.Lookup.ToASCII(host); err != nil {
		return fmt.Errorf("invalid relay url host: %w", err)
	}
	return nil
}
