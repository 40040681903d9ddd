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

package modca

import (
	"io"

	"seehuhn.de/go/afp"
)

// EnvironmentGroup is an Object Environment Group (BOG ... EOG).
type EnvironmentGroup struct {
	Name afp.Name

	AreaDescriptor *AreaDescriptor
	AreaPosition   *AreaPosition

	// DataDescriptor is the descriptor specific to the object type,
	// for example a Graphics Data Descriptor.
	DataDescriptor afp.Object
}

// NewEnvironmentGroup returns an object environment group with the
// object area descriptor and position for the given area.  The data
// descriptor is left empty.
func NewEnvironmentGroup(name afp.Name, info *AreaInfo) (*EnvironmentGroup, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	return &EnvironmentGroup{
		Name: name,
		AreaDescriptor: &AreaDescriptor{
			Width:     info.Width,
			Height:    info.Height,
			WidthRes:  info.WidthRes,
			HeightRes: info.HeightRes,
		},
		AreaPosition: &AreaPosition{
			X:        info.X,
			Y:        info.Y,
			Rotation: info.Rotation,
		},
	}, nil
}

func (g *EnvironmentGroup) members() []afp.Object {
	var objs []afp.Object
	if g.AreaDescriptor != nil {
		objs = append(objs, g.AreaDescriptor)
	}
	if g.AreaPosition != nil {
		objs = append(objs, g.AreaPosition)
	}
	if g.DataDescriptor != nil {
		objs = append(objs, g.DataDescriptor)
	}
	return objs
}

// Len returns the number of bytes written by WriteTo.
func (g *EnvironmentGroup) Len() int {
	n := 2 * afp.BeginEndSize
	for _, obj := range g.members() {
		n += obj.Len()
	}
	return n
}

// WriteTo writes the environment group to w.
func (g *EnvironmentGroup) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(afp.AppendBegin(nil, afp.CategoryEnvironmentGroup, g.Name))
	total := int64(n)
	if err != nil {
		return total, err
	}

	k, err := afp.WriteObjects(w, g.members()...)
	total += k
	if err != nil {
		return total, err
	}

	n, err = w.Write(afp.AppendEnd(nil, afp.CategoryEnvironmentGroup, g.Name))
	total += int64(n)
	return total, err
}

// AreaDescriptor is the Object Area Descriptor (OAD) structured field.
type AreaDescriptor struct {
	Width, Height       int
	WidthRes, HeightRes int
}

// oadDataLen is the length of the three triplets of an OAD field.
const oadDataLen = 3 + 8 + 9

// Len returns the number of bytes written by WriteTo.
func (d *AreaDescriptor) Len() int {
	return afp.IntroducerSize + oadDataLen
}

// WriteTo writes the OAD structured field to w.
func (d *AreaDescriptor) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, d.Len())
	buf, err := afp.AppendIntroducer(buf, afp.TypeDescriptor, afp.CategoryObjectArea, oadDataLen)
	if err != nil {
		return 0, err
	}

	// descriptor position triplet
	buf = append(buf, 0x03, 0x43, 0x01)

	// measurement units triplet, in units per ten inches
	xRes := d.WidthRes * 10
	yRes := d.HeightRes * 10
	buf = append(buf, 0x08, 0x4B, 0x00, 0x00,
		byte(xRes>>8), byte(xRes), byte(yRes>>8), byte(yRes))

	// object area size triplet
	buf = append(buf, 0x09, 0x4C, 0x02)
	buf = appendUint24(buf, d.Width)
	buf = appendUint24(buf, d.Height)

	n, err := w.Write(buf)
	return int64(n), err
}

// AreaPosition is the Object Area Position (OAP) structured field.
type AreaPosition struct {
	X, Y     int
	Rotation int
}

const oapDataLen = 24

// Len returns the number of bytes written by WriteTo.
func (p *AreaPosition) Len() int {
	return afp.IntroducerSize + oapDataLen
}

// WriteTo writes the OAP structured field to w.
func (p *AreaPosition) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, p.Len())
	buf, err := afp.AppendIntroducer(buf, afp.TypePosition, afp.CategoryObjectArea, oapDataLen)
	if err != nil {
		return 0, err
	}

	buf = append(buf, 0x01, 0x17) // OAPosID, RGLength
	buf = appendUint24(buf, p.X&maxUint24)
	buf = appendUint24(buf, p.Y&maxUint24)
	buf = append(buf, orientation(p.Rotation)...)
	buf = append(buf, 0x00) // reserved

	// the object content is not offset or rotated within the area
	buf = append(buf, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00)
	buf = append(buf, 0x00, 0x00, 0x2D, 0x00)

	buf = append(buf, 0x01) // RefCSys: page or overlay coordinate system

	n, err := w.Write(buf)
	return int64(n), err
}

// orientation returns the X and Y axis orientations of the object area
// for the given rotation.
func orientation(rotation int) []byte {
	switch rotation {
	case 90:
		return []byte{0x2D, 0x00, 0x5A, 0x00}
	case 180:
		return []byte{0x5A, 0x00, 0x87, 0x00}
	case 270:
		return []byte{0x87, 0x00, 0x00, 0x00}
	default:
		return []byte{0x00, 0x00, 0x2D, 0x00}
	}
}
