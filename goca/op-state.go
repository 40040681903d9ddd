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
	"image/color"
)

// This file implements the attribute setting orders.

// ColorSpace identifies the color space of a [ProcessColor] order.
type ColorSpace byte

// The supported process color spaces.
const (
	ColorSpaceRGB  ColorSpace = 0x01
	ColorSpaceCMYK ColorSpace = 0x04
)

// ProcessColor is the "Set Process Color" (GSPCOL) order.
type ProcessColor struct {
	space      ColorSpace
	components []byte
}

// NewProcessColor returns an order which sets the current color.
//
// CMYK colors are written in the CMYK color space, all other colors
// are converted to 8-bit RGB.
func NewProcessColor(c color.Color) *ProcessColor {
	if cmyk, ok := c.(color.CMYK); ok {
		return &ProcessColor{
			space:      ColorSpaceCMYK,
			components: []byte{cmyk.C, cmyk.M, cmyk.Y, cmyk.K},
		}
	}
	r, g, b, _ := c.RGBA()
	return &ProcessColor{
		space:      ColorSpaceRGB,
		components: []byte{byte(r >> 8), byte(g >> 8), byte(b >> 8)},
	}
}

func (o *ProcessColor) encode(e encoder) {
	e.putByte(codeSetProcessColor)
	e.putByte(byte(10 + len(o.components)))
	e.putByte(0x00)
	e.putByte(byte(o.space))
	e.putBytes([]byte{0x00, 0x00, 0x00, 0x00})
	for i := range 4 {
		if i < len(o.components) {
			e.putByte(8) // bits per component
		} else {
			e.putByte(0)
		}
	}
	e.putBytes(o.components)
}

// CurrentPosition is the "Set Current Position" (GSCP) order.
type CurrentPosition struct {
	x, y int16
}

// NewCurrentPosition returns an order which moves the current position
// to (x, y).
func NewCurrentPosition(x, y int) (*CurrentPosition, error) {
	cx, err := toInt16("set current position", x)
	if err != nil {
		return nil, err
	}
	cy, err := toInt16("set current position", y)
	if err != nil {
		return nil, err
	}
	return &CurrentPosition{x: cx, y: cy}, nil
}

func (o *CurrentPosition) encode(e encoder) {
	e.putByte(codeSetCurrentPosition)
	e.putByte(4)
	e.putInt16(o.x)
	e.putInt16(o.y)
}

// LineWidth is the "Set Line Width" (GSLW) order.
type LineWidth struct {
	multiplier byte
}

// NewLineWidth returns an order which sets the line width, as a multiple
// of the default line width.
func NewLineWidth(multiplier int) (*LineWidth, error) {
	mh, err := toByte("set line width", multiplier)
	if err != nil {
		return nil, err
	}
	return &LineWidth{multiplier: mh}, nil
}

func (o *LineWidth) encode(e encoder) {
	e.putByte(codeSetLineWidth)
	e.putByte(o.multiplier)
}

// LineType selects the dash pattern used for lines.
type LineType byte

// These are the line types defined by GOCA.
const (
	LineTypeDefault LineType = iota
	LineTypeDotted
	LineTypeShortDashed
	LineTypeDashDot
	LineTypeDoubleDotted
	LineTypeLongDashed
	LineTypeDashDoubleDot
	LineTypeSolid
	LineTypeInvisible
)

// SetLineType is the "Set Line Type" (GSLT) order.
type SetLineType struct {
	lineType LineType
}

// NewLineType returns an order which sets the line type.
func NewLineType(t LineType) *SetLineType {
	return &SetLineType{lineType: t}
}

func (o *SetLineType) encode(e encoder) {
	e.putByte(codeSetLineType)
	e.putByte(byte(o.lineType))
}

// PatternSymbol selects the pattern used to fill areas.
type PatternSymbol byte

// The pattern symbols used for filling.
const (
	PatternNoFill    PatternSymbol = 0x0F
	PatternSolidFill PatternSymbol = 0x10
)

// SetPatternSymbol is the "Set Pattern Symbol" (GSPT) order.
type SetPatternSymbol struct {
	symbol PatternSymbol
}

// NewPatternSymbol returns an order which sets the fill pattern.
func NewPatternSymbol(s PatternSymbol) *SetPatternSymbol {
	return &SetPatternSymbol{symbol: s}
}

func (o *SetPatternSymbol) encode(e encoder) {
	e.putByte(codeSetPatternSymbol)
	e.putByte(byte(o.symbol))
}

// CharacterSet is the "Set Character Set" (GSCS) order.
type CharacterSet struct {
	lcid byte
}

// NewCharacterSet returns an order which selects the font with the given
// local identifier for subsequent character strings.
func NewCharacterSet(fontReference int) (*CharacterSet, error) {
	lcid, err := toByte("set character set", fontReference)
	if err != nil {
		return nil, err
	}
	return &CharacterSet{lcid: lcid}, nil
}

func (o *CharacterSet) encode(e encoder) {
	e.putByte(codeSetCharacterSet)
	e.putByte(o.lcid)
}

// ArcParameters is the "Set Arc Parameters" (GSAP) order.
//
// The four values define the transform from the unit circle to the
// ellipse used by subsequent arc orders.
type ArcParameters struct {
	xMaj, yMin, xMin, yMaj int16
}

// NewArcParameters returns an order which sets the arc parameters.
func NewArcParameters(xMaj, yMin, xMin, yMaj int) (*ArcParameters, error) {
	var vals [4]int16
	for i, x := range []int{xMaj, yMin, xMin, yMaj} {
		v, err := toInt16("set arc parameters", x)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return &ArcParameters{xMaj: vals[0], yMin: vals[1], xMin: vals[2], yMaj: vals[3]}, nil
}

func (o *ArcParameters) encode(e encoder) {
	e.putByte(codeSetArcParameters)
	e.putByte(8)
	e.putInt16(o.xMaj)
	e.putInt16(o.yMin)
	e.putInt16(o.xMin)
	e.putInt16(o.yMaj)
}
