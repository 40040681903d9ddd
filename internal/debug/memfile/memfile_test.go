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

package memfile

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLimit(t *testing.T) {
	f := NewLimited(5)

	n, err := f.Write([]byte("abc"))
	if n != 3 || err != nil {
		t.Fatalf("first write: n=%d, err=%v", n, err)
	}
	n, err = f.Write([]byte("defg"))
	if n != 2 || !errors.Is(err, ErrFull) {
		t.Fatalf("second write: n=%d, err=%v", n, err)
	}
	if d := cmp.Diff([]byte("abcde"), f.Data); d != "" {
		t.Error(d)
	}
}

func TestUnlimited(t *testing.T) {
	f := New()
	for range 3 {
		n, err := f.Write([]byte("hello"))
		if n != 5 || err != nil {
			t.Fatalf("n=%d, err=%v", n, err)
		}
	}
	if d := cmp.Diff([]byte("hellohellohello"), f.Data); d != "" {
		t.Error(d)
	}
}

func TestOverfull(t *testing.T) {
	f := NewLimited(2)
	if _, err := f.Write([]byte("ab")); err != nil {
		t.Fatal(err)
	}
	n, err := f.Write([]byte("c"))
	if n != 0 || !errors.Is(err, ErrFull) {
		t.Errorf("n=%d, err=%v", n, err)
	}
}
