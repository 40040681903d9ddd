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

// Package modca implements the object environment group of MO:DCA data
// objects, which describes the size, resolution and placement of an
// object.
package modca

import (
	"errors"
	"fmt"
)

// AreaInfo describes the area occupied by a data object.
//
// The layout code computes these values once the position of the object
// on the page is known.
type AreaInfo struct {
	// X and Y give the position of the object area, relative to the
	// origin of the including page or overlay.
	X, Y int

	// Width and Height are the size of the object area, in units of the
	// resolution.
	Width, Height int

	// WidthRes and HeightRes are the resolution, in units per inch.
	WidthRes, HeightRes int

	// Rotation is the rotation of the object area, in degrees.
	// The valid values are 0, 90, 180 and 270.
	Rotation int
}

// errRange is wrapped by all validation errors of AreaInfo.
var errRange = errors.New("value out of range")

// Validate checks that all fields can be represented in the MO:DCA
// structured fields.
func (a *AreaInfo) Validate() error {
	if a == nil {
		return errors.New("modca: missing area info")
	}
	if a.Width < 0 || a.Height < 0 || a.Width > maxUint24 || a.Height > maxUint24 {
		return fmt.Errorf("modca: area size %dx%d: %w", a.Width, a.Height, errRange)
	}
	if a.WidthRes <= 0 || a.HeightRes <= 0 || a.WidthRes*10 > 0xFFFF || a.HeightRes*10 > 0xFFFF {
		return fmt.Errorf("modca: resolution %dx%d: %w", a.WidthRes, a.HeightRes, errRange)
	}
	if a.X < minInt24 || a.X > maxInt24 || a.Y < minInt24 || a.Y > maxInt24 {
		return fmt.Errorf("modca: area position (%d, %d): %w", a.X, a.Y, errRange)
	}
	switch a.Rotation {
	case 0, 90, 180, 270:
	default:
		return fmt.Errorf("modca: rotation %d: %w", a.Rotation, errRange)
	}
	return nil
}

const (
	maxUint24 = 1<<24 - 1
	maxInt24  = 1<<23 - 1
	minInt24  = -1 << 23
)

func appendUint24(buf []byte, x int) []byte {
	return append(buf, byte(x>>16), byte(x>>8), byte(x))
}
