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

// Package afp implements the structured field layer of the Mixed Object
// Document Content Architecture (MO:DCA), the container format of AFP print
// data streams.
//
// Every object in an AFP data stream is a sequence of structured fields.
// Each structured field starts with a 9-byte introducer: the carriage control
// character 0x5A, a two-byte length, a three-byte identifier, a flag byte and
// two reserved bytes.  Begin and End fields carry the 8-byte name of the
// object they delimit.
//
// The drawing orders of graphics objects are implemented in the
// sub-package [seehuhn.de/go/afp/goca].  The object environment group
// which describes the placement of an object is implemented in
// [seehuhn.de/go/afp/modca].
package afp
