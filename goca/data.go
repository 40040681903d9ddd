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
	"io"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/afp"
)

// Data is a physical segment of a graphics object: the drawing orders
// carried by one Graphics Data (GAD) structured field.
//
// Data values are created and filled by [Object].  Drawing orders are
// never split between two Data values.
type Data struct {
	orders   []Order
	dataLen  int
	areaOpen bool

	// markerLen is the part of dataLen taken by segment boundaries.
	markerLen int
}

// append adds an order of length n to the segment.
func (d *Data) append(o Order, n int) {
	d.orders = append(d.orders, o)
	d.dataLen += n
	switch o.(type) {
	case *BeginArea:
		d.areaOpen = true
	case EndArea, *EndArea:
		d.areaOpen = false
	case *SegmentBoundary:
		d.markerLen += n
	}
}

// Orders returns the drawing orders in the segment, in the order they
// were added.
func (d *Data) Orders() []Order {
	return slices.Clone(d.orders)
}

// DataLen returns the total length of the drawing orders in the segment.
func (d *Data) DataLen() int {
	return d.dataLen
}

// FieldLen returns the value of the length field of the GAD structured
// field.
func (d *Data) FieldLen() int {
	return afp.IntroducerSize - 1 + d.dataLen
}

// AreaOpen reports whether an area is open at the end of the segment.
func (d *Data) AreaOpen() bool {
	return d.areaOpen
}

// Len returns the number of bytes written by WriteTo.
// This implements the [afp.Object] interface.
func (d *Data) Len() int {
	return afp.IntroducerSize + d.dataLen
}

// WriteTo writes the GAD structured field to w.
// This implements the [io.WriterTo] interface.
func (d *Data) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, d.Len())
	buf, err := afp.AppendIntroducer(buf, afp.TypeData, afp.CategoryGraphics, d.dataLen)
	if err != nil {
		return 0, err
	}
	for _, o := range d.orders {
		buf = AppendEncoded(buf, o)
	}
	n, err := w.Write(buf)
	return int64(n), err
}
