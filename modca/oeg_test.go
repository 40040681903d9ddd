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
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/afp"
)

func TestAreaDescriptor(t *testing.T) {
	d := &AreaDescriptor{Width: 100, Height: 50, WidthRes: 240, HeightRes: 240}
	buf := &bytes.Buffer{}
	n, err := d.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x5A, 0x00, 0x1C, 0xD3, 0xA6, 0x6B, 0x00, 0x00, 0x00,
		0x03, 0x43, 0x01,
		0x08, 0x4B, 0x00, 0x00, 0x09, 0x60, 0x09, 0x60,
		0x09, 0x4C, 0x02, 0x00, 0x00, 0x64, 0x00, 0x00, 0x32,
	}
	if d := cmp.Diff(want, buf.Bytes()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if int(n) != d.Len() {
		t.Errorf("wrote %d bytes, Len() = %d", n, d.Len())
	}
}

func TestAreaPosition(t *testing.T) {
	type testCase struct {
		rotation int
		orient   []byte
	}
	testCases := []testCase{
		{0, []byte{0x00, 0x00, 0x2D, 0x00}},
		{90, []byte{0x2D, 0x00, 0x5A, 0x00}},
		{180, []byte{0x5A, 0x00, 0x87, 0x00}},
		{270, []byte{0x87, 0x00, 0x00, 0x00}},
	}
	for _, tc := range testCases {
		p := &AreaPosition{X: 1, Y: -1, Rotation: tc.rotation}
		buf := &bytes.Buffer{}
		_, err := p.WriteTo(buf)
		if err != nil {
			t.Fatal(err)
		}
		want := append([]byte{
			0x5A, 0x00, 0x20, 0xD3, 0xAC, 0x6B, 0x00, 0x00, 0x00,
			0x01, 0x17,
			0x00, 0x00, 0x01,
			0xFF, 0xFF, 0xFF,
		}, tc.orient...)
		want = append(want,
			0x00,
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x2D, 0x00,
			0x01)
		if d := cmp.Diff(want, buf.Bytes()); d != "" {
			t.Errorf("rotation %d (-want +got):\n%s", tc.rotation, d)
		}
		if buf.Len() != p.Len() {
			t.Errorf("rotation %d: wrote %d bytes, Len() = %d", tc.rotation, buf.Len(), p.Len())
		}
	}
}

func TestEnvironmentGroup(t *testing.T) {
	name := afp.NewName("OEG1")
	g, err := NewEnvironmentGroup(name, &AreaInfo{Width: 10, Height: 20, WidthRes: 300, HeightRes: 300})
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	n, err := g.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if int(n) != g.Len() || buf.Len() != g.Len() {
		t.Errorf("wrote %d bytes (%d reported), Len() = %d", buf.Len(), n, g.Len())
	}

	data := buf.Bytes()
	begin := afp.AppendBegin(nil, afp.CategoryEnvironmentGroup, name)
	end := afp.AppendEnd(nil, afp.CategoryEnvironmentGroup, name)
	if !bytes.HasPrefix(data, begin) || !bytes.HasSuffix(data, end) {
		t.Error("missing BOG or EOG")
	}
}

func TestValidate(t *testing.T) {
	bad := []*AreaInfo{
		nil,
		{Width: -1, Height: 1, WidthRes: 1, HeightRes: 1},
		{Width: 1, Height: 1 << 24, WidthRes: 1, HeightRes: 1},
		{Width: 1, Height: 1, WidthRes: 0, HeightRes: 1},
		{Width: 1, Height: 1, WidthRes: 7000, HeightRes: 1},
		{Width: 1, Height: 1, WidthRes: 1, HeightRes: 1, Rotation: 45},
		{X: 1 << 23, Width: 1, Height: 1, WidthRes: 1, HeightRes: 1},
	}
	for i, info := range bad {
		if err := info.Validate(); err == nil {
			t.Errorf("%d: invalid area info accepted", i)
		}
	}

	info := &AreaInfo{X: -5, Y: 5, Width: 1, Height: 1, WidthRes: 1440, HeightRes: 1440, Rotation: 270}
	if err := info.Validate(); err != nil {
		t.Error(err)
	}

	_, err := NewEnvironmentGroup(afp.NewName("x"), &AreaInfo{Rotation: 1, WidthRes: 1, HeightRes: 1})
	if !errors.Is(err, errRange) {
		t.Errorf("expected range error, got %v", err)
	}
}
