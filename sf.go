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
	"errors"
	"fmt"
)

// Type is the type code of a structured field identifier.
type Type byte

// Structured field type codes.
const (
	TypeBegin      Type = 0xA8
	TypeEnd        Type = 0xA9
	TypeDescriptor Type = 0xA6
	TypePosition   Type = 0xAC
	TypeData       Type = 0xEE
)

// Category is the category code of a structured field identifier.
type Category byte

// Structured field category codes.
const (
	CategoryObjectArea       Category = 0x6B
	CategoryGraphics         Category = 0xBB
	CategoryEnvironmentGroup Category = 0xC7
)

// sfClass is the class code shared by all MO:DCA structured fields.
const sfClass = 0xD3

const (
	// IntroducerSize is the number of bytes in a structured field
	// introducer, including the leading 0x5A carriage control byte.
	IntroducerSize = 9

	// BeginEndSize is the size of a Begin or End structured field
	// which carries only the name of the object.
	BeginEndSize = IntroducerSize + NameSize

	// MaxFieldLen is the largest value allowed in the length field of a
	// structured field.  The length field counts all bytes of the field
	// except the leading 0x5A.
	MaxFieldLen = 32767

	// MaxDataLen is the largest number of data bytes which can follow
	// a structured field introducer.
	MaxDataLen = MaxFieldLen - (IntroducerSize - 1)
)

// ErrFieldTooLong is returned when the data of a structured field does
// not fit into the length field.
var ErrFieldTooLong = errors.New("afp: structured field too long")

// AppendIntroducer appends a structured field introducer to buf.
// The dataLen argument is the number of data bytes which will follow
// the introducer.
func AppendIntroducer(buf []byte, typ Type, cat Category, dataLen int) ([]byte, error) {
	if dataLen < 0 || dataLen > MaxDataLen {
		return buf, fmt.Errorf("%w (%d data bytes)", ErrFieldTooLong, dataLen)
	}
	fieldLen := dataLen + IntroducerSize - 1
	buf = append(buf,
		0x5A,
		byte(fieldLen>>8), byte(fieldLen),
		sfClass, byte(typ), byte(cat),
		0x00,       // flags
		0x00, 0x00, // reserved
	)
	return buf, nil
}

// AppendBegin appends a Begin structured field for an object of the
// given category to buf.
func AppendBegin(buf []byte, cat Category, name Name) []byte {
	return appendNamed(buf, TypeBegin, cat, name)
}

// AppendEnd appends an End structured field for an object of the
// given category to buf.
func AppendEnd(buf []byte, cat Category, name Name) []byte {
	return appendNamed(buf, TypeEnd, cat, name)
}

func appendNamed(buf []byte, typ Type, cat Category, name Name) []byte {
	// The name always fits, so the error can be ignored.
	buf, _ = AppendIntroducer(buf, typ, cat, NameSize)
	return append(buf, name[:]...)
}
