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
	"errors"
	"fmt"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func must[T any](x T, err error) T {
	if err != nil {
		panic(err)
	}
	return x
}

func TestOrderEncoding(t *testing.T) {
	type testCase struct {
		order Order
		want  []byte
	}
	testCases := []testCase{
		{ // 0
			NewProcessColor(color.RGBA{R: 255, A: 255}),
			[]byte{0xB2, 13, 0x00, 0x01, 0, 0, 0, 0, 8, 8, 8, 0, 0xFF, 0x00, 0x00},
		},
		{ // 1
			NewProcessColor(color.CMYK{C: 1, M: 2, Y: 3, K: 4}),
			[]byte{0xB2, 14, 0x00, 0x04, 0, 0, 0, 0, 8, 8, 8, 8, 1, 2, 3, 4},
		},
		{ // 2
			must(NewCurrentPosition(256, -1)),
			[]byte{0x21, 4, 0x01, 0x00, 0xFF, 0xFF},
		},
		{ // 3
			must(NewLineWidth(3)),
			[]byte{0x19, 3},
		},
		{ // 4
			NewLineType(LineTypeDotted),
			[]byte{0x18, 1},
		},
		{ // 5
			NewPatternSymbol(PatternSolidFill),
			[]byte{0x28, 0x10},
		},
		{ // 6
			NewPatternSymbol(PatternNoFill),
			[]byte{0x28, 0x0F},
		},
		{ // 7
			must(NewCharacterSet(2)),
			[]byte{0x38, 2},
		},
		{ // 8
			must(NewLine([]int{0, 0, 10, 10}, false)),
			[]byte{0xC1, 8, 0, 0, 0, 0, 0, 10, 0, 10},
		},
		{ // 9
			must(NewLine([]int{10, 10}, true)),
			[]byte{0x81, 4, 0, 10, 0, 10},
		},
		{ // 10
			must(NewBox([]int{1, 2, 3, 4})),
			[]byte{0xC0, 10, 0x20, 0x00, 0, 1, 0, 2, 0, 3, 0, 4},
		},
		{ // 11
			must(NewFillet([]int{0, 0, 5, 5, 10, 0}, false)),
			[]byte{0xC5, 12, 0, 0, 0, 0, 0, 5, 0, 5, 0, 10, 0, 0},
		},
		{ // 12
			must(NewFillet([]int{5, 5}, true)),
			[]byte{0x85, 4, 0, 5, 0, 5},
		},
		{ // 13
			must(NewArcParameters(1, 2, 3, 4)),
			[]byte{0x22, 8, 0, 1, 0, 2, 0, 3, 0, 4},
		},
		{ // 14
			must(NewFullArc(100, 200, 1, 128)),
			[]byte{0xC7, 6, 0, 100, 0, 200, 1, 128},
		},
		{ // 15
			must(NewCharString([]byte{0xC8, 0x89}, 1, 2)),
			[]byte{0xC3, 6, 0, 1, 0, 2, 0xC8, 0x89},
		},
		{ // 16
			must(NewCharStringAt([]byte{0xC8, 0x89})),
			[]byte{0x83, 2, 0xC8, 0x89},
		},
		{ // 17
			NewBeginArea(false),
			[]byte{0x68, 0x80},
		},
		{ // 18
			NewBeginArea(true),
			[]byte{0x68, 0xC0},
		},
		{ // 19
			EndArea{},
			[]byte{0x60, 0x00},
		},
		{ // 20
			&SegmentBoundary{
				name:        [4]byte{0xF0, 0xF0, 0xF0, 0xF2},
				predecessor: [4]byte{0xF0, 0xF0, 0xF0, 0xF1},
				dataLen:     300,
			},
			[]byte{0x70, 12, 0xF0, 0xF0, 0xF0, 0xF2, 0x00, 0x00, 0x01, 0x2C,
				0xF0, 0xF0, 0xF0, 0xF1},
		},
		{ // 21
			&SegmentBoundary{dataLen: 70000},
			[]byte{0x70, 12, 0, 0, 0, 0, 0x00, 0x00, 0xFF, 0xFF, 0, 0, 0, 0},
		},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("test%02d", i), func(t *testing.T) {
			got := Encode(tc.order)
			if d := cmp.Diff(tc.want, got); d != "" {
				t.Errorf("encoding mismatch (-want +got):\n%s", d)
			}
			if n := Len(tc.order); n != len(got) {
				t.Errorf("Len() = %d, but %d bytes were encoded", n, len(got))
			}
		})
	}
}

// TestLengthFidelity checks that the reported length matches the encoded
// length for all sizes of variable length orders.
func TestLengthFidelity(t *testing.T) {
	for k := 0; k <= MaxPoints; k++ {
		coords := make([]int, 2*k)
		for i := range coords {
			coords[i] = i*500 - 30000
		}
		for _, relative := range []bool{false, true} {
			line := must(NewLine(coords, relative))
			fillet := must(NewFillet(coords, relative))
			for _, o := range []Order{line, fillet} {
				buf := Encode(o)
				if Len(o) != len(buf) {
					t.Errorf("%d points: Len() = %d, encoded %d bytes", k, Len(o), len(buf))
				}
				if int(buf[1]) != len(buf)-2 {
					t.Errorf("%d points: length byte %d, want %d", k, buf[1], len(buf)-2)
				}
			}
		}
	}

	for k := 0; k <= MaxStringLen; k++ {
		o := must(NewCharString(make([]byte, k), 0, 0))
		buf := Encode(o)
		if Len(o) != len(buf) || int(buf[1]) != len(buf)-2 {
			t.Errorf("string of length %d: Len()=%d, encoded=%d, length byte=%d",
				k, Len(o), len(buf), buf[1])
		}
	}
}

func TestOperandErrors(t *testing.T) {
	tests := []func() error{
		func() error { _, err := NewLine([]int{1, 2, 3}, false); return err },
		func() error { _, err := NewLine(make([]int, 2*MaxPoints+2), false); return err },
		func() error { _, err := NewLine([]int{0, 40000}, false); return err },
		func() error { _, err := NewFillet([]int{-40000, 0}, true); return err },
		func() error { _, err := NewBox([]int{1, 2, 3}); return err },
		func() error { _, err := NewLineWidth(256); return err },
		func() error { _, err := NewLineWidth(-1); return err },
		func() error { _, err := NewCharacterSet(1000); return err },
		func() error { _, err := NewFullArc(0, 0, 1, 256); return err },
		func() error { _, err := NewArcParameters(0, 0, 0, 1<<15); return err },
		func() error { _, err := NewCurrentPosition(1<<15, 0); return err },
		func() error { _, err := NewCharString(make([]byte, MaxStringLen+1), 0, 0); return err },
		func() error { _, err := NewCharStringAt(make([]byte, 256)); return err },
	}
	for i, f := range tests {
		err := f()
		var opErr *OperandError
		if !errors.As(err, &opErr) {
			t.Errorf("%d: expected OperandError, got %v", i, err)
		}
	}
}

func TestOrdersImmutable(t *testing.T) {
	text := []byte{1, 2, 3}
	o := must(NewCharString(text, 0, 0))
	text[0] = 99
	if got := Encode(o)[6]; got != 1 {
		t.Errorf("order changed after construction: %d", got)
	}
}
