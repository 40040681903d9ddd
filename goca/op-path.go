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

import "fmt"

// This file implements the line and curve drawing orders.

// Line is the "Line" order, in one of its two forms.
//
// The absolute form (GLINE) starts at the first point and draws to each
// of the following points.  The relative form (GCLINE) starts at the
// current position and draws to each of its points.
type Line struct {
	coords   []int16
	relative bool
}

// NewLine returns a line order.  The coordinates are given as a sequence
// of x, y pairs.  At most [MaxPoints] pairs are allowed.
func NewLine(coords []int, relative bool) (*Line, error) {
	c, err := newCoordList("line", coords)
	if err != nil {
		return nil, err
	}
	return &Line{coords: c, relative: relative}, nil
}

func (o *Line) encode(e encoder) {
	if o.relative {
		e.putByte(codeLineAt)
	} else {
		e.putByte(codeLine)
	}
	encodeCoords(e, o.coords)
}

// Fillet is the "Fillet" order, in one of its two forms.
//
// A fillet is a curve tangent to the lines joining consecutive points.
// The relative form starts at the current position.
type Fillet struct {
	coords   []int16
	relative bool
}

// NewFillet returns a fillet order.  The coordinates are given as a
// sequence of x, y pairs.  At most [MaxPoints] pairs are allowed.
func NewFillet(coords []int, relative bool) (*Fillet, error) {
	c, err := newCoordList("fillet", coords)
	if err != nil {
		return nil, err
	}
	return &Fillet{coords: c, relative: relative}, nil
}

func (o *Fillet) encode(e encoder) {
	if o.relative {
		e.putByte(codeFilletAt)
	} else {
		e.putByte(codeFillet)
	}
	encodeCoords(e, o.coords)
}

func newCoordList(order string, coords []int) ([]int16, error) {
	if len(coords) > 2*MaxPoints {
		return nil, &OperandError{
			Order:  order,
			Reason: fmt.Sprintf("%d points exceed the limit of %d", len(coords)/2, MaxPoints),
		}
	}
	return toCoords(order, coords)
}

func encodeCoords(e encoder, coords []int16) {
	e.putByte(byte(2 * len(coords)))
	for _, c := range coords {
		e.putInt16(c)
	}
}

// Box is the "Box" (GBOX) order.  The box is given by two opposite
// corners.
type Box struct {
	x0, y0, x1, y1 int16
}

// NewBox returns a box order.  The coordinates are x0, y0, x1, y1.
func NewBox(coords []int) (*Box, error) {
	if len(coords) != 4 {
		return nil, &OperandError{
			Order:  "box",
			Reason: fmt.Sprintf("need 4 coordinates, got %d", len(coords)),
		}
	}
	c, err := toCoords("box", coords)
	if err != nil {
		return nil, err
	}
	return &Box{x0: c[0], y0: c[1], x1: c[2], y1: c[3]}, nil
}

func (o *Box) encode(e encoder) {
	e.putByte(codeBox)
	e.putByte(10)
	e.putByte(0x20) // flags
	e.putByte(0x00) // reserved
	e.putInt16(o.x0)
	e.putInt16(o.y0)
	e.putInt16(o.x1)
	e.putInt16(o.y1)
}

// FullArc is the "Full Arc" (GFARC) order at a given position.
//
// The arc is the ellipse set by the last [ArcParameters] order, centred
// at (x, y) and scaled by the multiplier mh + mfr/256.
type FullArc struct {
	x, y    int16
	mh, mfr byte
}

// NewFullArc returns a full arc order.  The multiplier is given as an
// integer part mh and a fractional part mfr, in units of 1/256.
func NewFullArc(x, y, mh, mfr int) (*FullArc, error) {
	cx, err := toInt16("full arc", x)
	if err != nil {
		return nil, err
	}
	cy, err := toInt16("full arc", y)
	if err != nil {
		return nil, err
	}
	bh, err := toByte("full arc", mh)
	if err != nil {
		return nil, err
	}
	bfr, err := toByte("full arc", mfr)
	if err != nil {
		return nil, err
	}
	return &FullArc{x: cx, y: cy, mh: bh, mfr: bfr}, nil
}

func (o *FullArc) encode(e encoder) {
	e.putByte(codeFullArc)
	e.putByte(6)
	e.putInt16(o.x)
	e.putInt16(o.y)
	e.putByte(o.mh)
	e.putByte(o.mfr)
}
