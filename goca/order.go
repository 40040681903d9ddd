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
	"math"
)

// An Order is a single GOCA drawing order.
//
// The set of orders is closed: all implementations are defined in this
// package.  Orders are immutable once constructed, except that the data
// length of a [SegmentBoundary] grows while its segment is filled.
type Order interface {
	encode(e encoder)
}

// Order codes.
const (
	codeSetLineType        = 0x18
	codeSetLineWidth       = 0x19
	codeSetCurrentPosition = 0x21
	codeSetArcParameters   = 0x22
	codeSetPatternSymbol   = 0x28
	codeSetCharacterSet    = 0x38
	codeEndArea            = 0x60
	codeBeginArea          = 0x68
	codeBeginSegment       = 0x70
	codeLineAt             = 0x81
	codeCharStringAt       = 0x83
	codeFilletAt           = 0x85
	codeSetProcessColor    = 0xB2
	codeBox                = 0xC0
	codeLine               = 0xC1
	codeCharString         = 0xC3
	codeFillet             = 0xC5
	codeFullArc            = 0xC7
)

const (
	// maxOperandLen is the largest value of the one-byte length field
	// of a long-format order.
	maxOperandLen = 255

	// MaxPoints is the largest number of (x, y) pairs in a single line
	// or fillet order.
	MaxPoints = maxOperandLen / 4

	// MaxStringLen is the largest number of characters in a single
	// character string order at a given position.
	MaxStringLen = maxOperandLen - 4
)

// OperandError is reported when the operands of a drawing order cannot
// be encoded.
type OperandError struct {
	Order  string
	Reason string
}

func (err *OperandError) Error() string {
	return "goca: invalid " + err.Order + " order: " + err.Reason
}

func toInt16(order string, x int) (int16, error) {
	if x < math.MinInt16 || x > math.MaxInt16 {
		return 0, &OperandError{
			Order:  order,
			Reason: fmt.Sprintf("coordinate %d out of range", x),
		}
	}
	return int16(x), nil
}

func toByte(order string, x int) (byte, error) {
	if x < 0 || x > 255 {
		return 0, &OperandError{
			Order:  order,
			Reason: fmt.Sprintf("value %d out of range 0...255", x),
		}
	}
	return byte(x), nil
}

func toCoords(order string, coords []int) ([]int16, error) {
	if len(coords)%2 != 0 {
		return nil, &OperandError{
			Order:  order,
			Reason: fmt.Sprintf("odd number of coordinates (%d)", len(coords)),
		}
	}
	res := make([]int16, len(coords))
	for i, x := range coords {
		c, err := toInt16(order, x)
		if err != nil {
			return nil, err
		}
		res[i] = c
	}
	return res, nil
}
