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

// This file implements the structural orders: area brackets and logical
// segment boundaries.

// BeginArea is the "Begin Area" (GBAR) order.
type BeginArea struct {
	boundary bool
}

// NewBeginArea returns a begin area order.  If boundary is set, the
// outline of the area is drawn in addition to the fill.
func NewBeginArea(boundary bool) *BeginArea {
	return &BeginArea{boundary: boundary}
}

func (o *BeginArea) encode(e encoder) {
	e.putByte(codeBeginArea)
	if o.boundary {
		e.putByte(0xC0)
	} else {
		e.putByte(0x80)
	}
}

// EndArea is the "End Area" (GEAR) order.
type EndArea struct{}

func (EndArea) encode(e encoder) {
	e.putByte(codeEndArea)
	e.putByte(0x00)
}

// SegmentBoundary is the "Begin Segment" introducer, which starts a new
// logical segment of the picture.
//
// Boundaries are created by [Object.NewSegment].  The object keeps the
// data length of the segment up to date while orders are added.
type SegmentBoundary struct {
	name        [4]byte
	predecessor [4]byte
	dataLen     int
}

// segmentHeaderLen is the encoded length of a Begin Segment introducer.
const segmentHeaderLen = 14

// maxSegmentDataLen is the largest segment data length which can be
// represented in a Begin Segment introducer.
const maxSegmentDataLen = 0xFFFF

// DataLen returns the total length of the drawing orders in the segment.
func (o *SegmentBoundary) DataLen() int {
	return o.dataLen
}

func (o *SegmentBoundary) encode(e encoder) {
	e.putByte(codeBeginSegment)
	e.putByte(segmentHeaderLen - 2)
	e.putBytes(o.name[:])
	e.putByte(0x00) // FLAG1
	e.putByte(0x00) // FLAG2: new segment, not a prolog
	n := min(o.dataLen, maxSegmentDataLen)
	e.putByte(byte(n >> 8))
	e.putByte(byte(n))
	e.putBytes(o.predecessor[:])
}
