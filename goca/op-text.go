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

package goca

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// CharString is the "Character String" order.
//
// The absolute form (GCHST) places the text at a given position, the
// relative form (GCCHST) continues at the current position.  The text is
// stored in the encoding of the active character set.
type CharString struct {
	x, y     int16
	text     []byte
	relative bool
}

// NewCharString returns a character string order at position (x, y).
// The text must already be encoded and may be at most [MaxStringLen]
// bytes long.
func NewCharString(text []byte, x, y int) (*CharString, error) {
	if len(text) > MaxStringLen {
		return nil, &OperandError{
			Order:  "character string",
			Reason: fmt.Sprintf("%d bytes exceed the limit of %d", len(text), MaxStringLen),
		}
	}
	cx, err := toInt16("character string", x)
	if err != nil {
		return nil, err
	}
	cy, err := toInt16("character string", y)
	if err != nil {
		return nil, err
	}
	return &CharString{x: cx, y: cy, text: slices.Clone(text)}, nil
}

// NewCharStringAt returns a character string order at the current
// position.  The text must already be encoded and may be at most 255 bytes
// long.
func NewCharStringAt(text []byte) (*CharString, error) {
	if len(text) > maxOperandLen {
		return nil, &OperandError{
			Order:  "character string",
			Reason: fmt.Sprintf("%d bytes exceed the limit of %d", len(text), maxOperandLen),
		}
	}
	return &CharString{text: slices.Clone(text), relative: true}, nil
}

func (o *CharString) encode(e encoder) {
	if o.relative {
		e.putByte(codeCharStringAt)
		e.putByte(byte(len(o.text)))
		e.putBytes(o.text)
		return
	}
	e.putByte(codeCharString)
	e.putByte(byte(4 + len(o.text)))
	e.putInt16(o.x)
	e.putInt16(o.y)
	e.putBytes(o.text)
}
