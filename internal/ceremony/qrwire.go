// qrwire.go - QR transport packing for ceremony frames (spec.md §6)
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
	"encoding/base64"
	"fmt"
)

// MaxQRChars is the base64url character budget per QR code at error
// correction level L, per spec.md §6.
const MaxQRChars = 2900

// EncodeQR base64url-encodes a wire-form frame for display in one QR
// code, per spec.md §6: "Frames are base64-url encoded inside each QR
// code". Returns an error if the frame would not fit.
func EncodeQR(wireFrame []byte) (string, error) {
	s := base64.URLEncoding.WithPadding(base64.NoPadding).EncodeToString(wireFrame)
	if len(s) > MaxQRChars {
		return "", fmt.Errorf("ceremony: encoded frame (%d chars) exceeds QR budget of %d", len(s), MaxQRChars)
	}
	return s, nil
}

// DecodeQR reverses EncodeQR.
func DecodeQR(s string) ([]byte, error) {
	return base64.URLEncoding.WithPadding(base64.NoPadding).DecodeString(s)
}
