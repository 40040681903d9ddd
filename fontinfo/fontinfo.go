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

// Package fontinfo describes fonts available to the AFP renderer: where
// the metrics and the font program are found, and how the font is to be
// encoded and embedded.
package fontinfo

import (
	"bytes"
	"net/url"
	"strconv"
	"strings"

	"seehuhn.de/go/sfnt"
)

// EncodingMode selects how text is encoded for a font.
type EncodingMode int

// These are the supported encoding modes.
const (
	EncodingAuto EncodingMode = iota
	EncodingSingleByte
	EncodingCID
)

func (m EncodingMode) String() string {
	switch m {
	case EncodingAuto:
		return "auto"
	case EncodingSingleByte:
		return "single-byte"
	case EncodingCID:
		return "cid"
	default:
		return "EncodingMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// EmbeddingMode selects whether a font is embedded completely or as a
// subset.
type EmbeddingMode int

// These are the supported embedding modes.
const (
	EmbeddingAuto EmbeddingMode = iota
	EmbeddingFull
	EmbeddingSubset
)

func (m EmbeddingMode) String() string {
	switch m {
	case EmbeddingAuto:
		return "auto"
	case EmbeddingFull:
		return "full"
	case EmbeddingSubset:
		return "subset"
	default:
		return "EmbeddingMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Triplet identifies a font by family name, style and weight.
type Triplet struct {
	Name   string
	Style  string // "normal" or "italic"
	Weight int    // 100, ..., 900
}

func (t Triplet) String() string {
	return t.Name + "," + t.Style + "," + strconv.Itoa(t.Weight)
}

// Info contains meta information about a font.
type Info struct {
	// MetricsURI is the location of the font metrics.
	MetricsURI *url.URL

	// EmbedURI is the location of the font program.
	// If this is nil, the font is only referenced.
	EmbedURI *url.URL

	// Kerning enables kerning.
	Kerning bool

	// Advanced enables advanced typographic features.
	Advanced bool

	EncodingMode  EncodingMode
	EmbeddingMode EmbeddingMode

	// PostScriptName is the PostScript name of the font.
	PostScriptName string

	// SubFontName selects a font from a TrueType collection.
	// This is empty for all other fonts.
	SubFontName string

	// Triplets lists the font triplets which map to this font.
	Triplets []Triplet

	// Referenced, if set, prevents the font from being embedded even
	// though EmbedURI is set.
	Referenced bool
}

// IsEmbedded reports whether the font program is embedded.
func (info *Info) IsEmbedded() bool {
	return info.EmbedURI != nil && !info.Referenced
}

func (info *Info) String() string {
	b := &strings.Builder{}
	b.WriteString("metrics-uri=" + uriString(info.MetricsURI))
	b.WriteString(", embed-uri=" + uriString(info.EmbedURI))
	b.WriteString(", kerning=" + strconv.FormatBool(info.Kerning))
	b.WriteString(", advanced=" + strconv.FormatBool(info.Advanced))
	b.WriteString(", enc-mode=" + info.EncodingMode.String())
	b.WriteString(", font-triplet=[")
	for i, t := range info.Triplets {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(t.String())
	}
	b.WriteString("]")
	if info.SubFontName != "" {
		b.WriteString(", sub-font=" + info.SubFontName)
	}
	if !info.IsEmbedded() {
		b.WriteString(", NOT embedded")
	}
	return b.String()
}

func uriString(u *url.URL) string {
	if u == nil {
		return "<nil>"
	}
	return u.String()
}

// FromSFNT reads an OpenType or TrueType font and returns its information.
// The font triplet is derived from the family name and the style flags of
// the font.  The embed URI is left to the caller.
func FromSFNT(data []byte) (*Info, error) {
	f, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	style := "normal"
	if f.IsItalic {
		style = "italic"
	}
	weight := 400
	if f.IsBold {
		weight = 700
	}

	info := &Info{
		Kerning:        true,
		PostScriptName: string(f.PostScriptName()),
		Triplets: []Triplet{
			{Name: f.FamilyName, Style: style, Weight: weight},
		},
	}
	if f.IsCFF() {
		info.EncodingMode = EncodingCID
	}
	return info, nil
}
