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
	"io"

	"seehuhn.de/go/afp"
	"seehuhn.de/go/afp/modca"
)

// DataDescriptor is the Graphics Data Descriptor (GDD) structured field.
// It declares the drawing order subset and the graphics window, which
// has its origin at (0, 0).
type DataDescriptor struct {
	width, height       int
	widthRes, heightRes int
}

// gddDataLen is the number of data bytes in a GDD field: the drawing
// order subset (9 bytes) and the window specification (20 bytes).
const gddDataLen = 9 + 20

// NewDataDescriptor returns the data descriptor for an object area.
func NewDataDescriptor(info *modca.AreaInfo) (*DataDescriptor, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	if info.Width > 0x7FFF || info.Height > 0x7FFF {
		return nil, fmt.Errorf("goca: window size %dx%d too large", info.Width, info.Height)
	}
	return &DataDescriptor{
		width:     info.Width,
		height:    info.Height,
		widthRes:  info.WidthRes,
		heightRes: info.HeightRes,
	}, nil
}

// Len returns the number of bytes written by WriteTo.
func (d *DataDescriptor) Len() int {
	return afp.IntroducerSize + gddDataLen
}

// WriteTo writes the GDD structured field to w.
func (d *DataDescriptor) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, d.Len())
	buf, err := afp.AppendIntroducer(buf, afp.TypeDescriptor, afp.CategoryGraphics, gddDataLen)
	if err != nil {
		return 0, err
	}

	// Set GOCA Drawing Order Subset
	buf = append(buf,
		0xF7, 7,
		0xB0,       // drawing order subset
		0x00, 0x00, // reserved
		0x02,       // SUBLEV
		0x00,       // VERSION
		0x01,       // LENGTH
		0x00,       // GEOM
	)

	// Set Picture Descriptor
	xRes := d.widthRes * 10 // units per ten inches
	yRes := d.heightRes * 10
	buf = append(buf,
		0xF6, 18,
		0x02|0x08, // FLAGS: absolute, image resolution present
		0x00,      // reserved
		0x00,      // CFORMAT: 16 bit signed, high byte first
		0x00,      // UBASE: ten inches
	)
	buf = appendUint16(buf, xRes, yRes, xRes) // XRESOL, YRESOL, IMXYRES
	buf = appendUint16(buf, 0, d.width)       // XLWIND, XRWIND
	buf = appendUint16(buf, 0, d.height)      // YBWIND, YTWIND

	n, err := w.Write(buf)
	return int64(n), err
}

func appendUint16(buf []byte, xx ...int) []byte {
	for _, x := range xx {
		buf = append(buf, byte(x>>8), byte(x))
	}
	return buf
}
