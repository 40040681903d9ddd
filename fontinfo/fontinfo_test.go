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

package fontinfo

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFromSFNT(t *testing.T) {
	type testCase struct {
		name string
		data []byte
		want Triplet
	}
	testCases := []testCase{
		{"regular", goregular.TTF, Triplet{"Go", "normal", 400}},
		{"bold", gobold.TTF, Triplet{"Go", "normal", 700}},
		{"italic", goitalic.TTF, Triplet{"Go", "italic", 400}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			info, err := FromSFNT(tc.data)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff([]Triplet{tc.want}, info.Triplets); d != "" {
				t.Errorf("triplets (-want +got):\n%s", d)
			}
			if info.PostScriptName == "" {
				t.Error("missing PostScript name")
			}
			if info.EncodingMode != EncodingAuto {
				t.Errorf("encoding mode %s for a glyf font", info.EncodingMode)
			}
			if info.IsEmbedded() {
				t.Error("font without embed URI is embedded")
			}
		})
	}
}

func TestFromSFNTInvalid(t *testing.T) {
	_, err := FromSFNT([]byte("not a font"))
	if err == nil {
		t.Error("invalid font data accepted")
	}
}

func TestEmbedding(t *testing.T) {
	u, err := url.Parse("file:///fonts/GoRegular.ttf")
	if err != nil {
		t.Fatal(err)
	}
	info := &Info{EmbedURI: u}
	if !info.IsEmbedded() {
		t.Error("font with embed URI is not embedded")
	}
	info.Referenced = true
	if info.IsEmbedded() {
		t.Error("referenced font is embedded")
	}
}

func TestString(t *testing.T) {
	u, _ := url.Parse("file:///fonts/go.xml")
	info := &Info{
		MetricsURI:   u,
		Kerning:      true,
		EncodingMode: EncodingSingleByte,
		Triplets: []Triplet{
			{"Go", "normal", 400},
			{"sans-serif", "normal", 400},
		},
	}
	want := "metrics-uri=file:///fonts/go.xml, embed-uri=<nil>, kerning=true," +
		" advanced=false, enc-mode=single-byte," +
		" font-triplet=[Go,normal,400 sans-serif,normal,400], NOT embedded"
	if got := info.String(); got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}

	if got := EmbeddingMode(7).String(); got != "EmbeddingMode(7)" {
		t.Errorf("got %q", got)
	}
}
