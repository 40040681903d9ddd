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

package afp

import "io"

// An Object is a sequence of complete structured fields.
type Object interface {
	io.WriterTo

	// Len returns the number of bytes written by WriteTo.
	Len() int
}

// WriteObjects writes each of the given objects to w, in order.
// Every object is expected to write one or more complete structured fields.
//
// The total number of bytes written is returned.  Writing stops at the
// first error; bytes which have already been written are not undone.
func WriteObjects(w io.Writer, objs ...Object) (int64, error) {
	var total int64
	for _, obj := range objs {
		n, err := obj.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
