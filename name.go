// seehuhn.de/go/afp - a library for writing AFP print data streams
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package afp

import (
	"log/slog"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// NameSize is the number of bytes in the name of an AFP object.
const NameSize = 8

// Name is the 8-byte name carried by Begin and End structured fields.
type Name [NameSize]byte

// DefaultEncoding is the EBCDIC code page used for object names and,
// unless configured otherwise, for character strings.
var DefaultEncoding encoding.Encoding = charmap.CodePage037

// ebcdicBlank is the space character in all EBCDIC code pages.
const ebcdicBlank = 0x40

// NewName converts s to an object name.
//
// Short names are padded with blanks.  If s is longer than 8 characters,
// the last 8 characters are kept.
func NewName(s string) Name {
	r := []rune(s)
	if len(r) > NameSize {
		truncated := string(r[len(r)-NameSize:])
		Logger().Warn("object name truncated",
			slog.String("name", s), slog.String("truncated", truncated))
		r = r[len(r)-NameSize:]
	}

	var name Name
	for i := range name {
		name[i] = ebcdicBlank
	}
	copy(name[:], EncodeText(DefaultEncoding, string(r)))
	return name
}

// String returns the name, decoded from EBCDIC, without trailing blanks.
func (n Name) String() string {
	s, err := DefaultEncoding.NewDecoder().Bytes(n[:])
	if err != nil {
		return string(n[:])
	}
	return strings.TrimRight(string(s), " ")
}

// EncodeText converts s to the given single-byte encoding.
// Characters which cannot be represented are replaced by the
// substitution character of the encoding.
func EncodeText(enc encoding.Encoding, s string) []byte {
	if enc == nil {
		enc = DefaultEncoding
	}
	e := encoding.ReplaceUnsupported(enc.NewEncoder())
	b, err := e.Bytes([]byte(s))
	if err != nil {
		// Only invalid UTF-8 input can get here.
		b, _ = e.Bytes([]byte(string([]rune(s))))
	}
	return b
}
