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

// Package memfile provides an in-memory writer for tests, which can be
// made to fail after a given number of bytes.
package memfile

import "errors"

// ErrFull is returned by Write when the size limit is reached.
var ErrFull = errors.New("memfile: size limit reached")

// MemFile is an in-memory file which is only ever appended to.
type MemFile struct {
	// Data are the file contents.
	Data []byte

	// Limit, if positive, is the maximum size of the file.
	// Writes beyond the limit are truncated and return ErrFull.
	Limit int
}

// New creates a new MemFile without a size limit.
func New() *MemFile {
	return &MemFile{}
}

// NewLimited creates a new MemFile which fails after limit bytes.
func NewLimited(limit int) *MemFile {
	return &MemFile{Limit: limit}
}

// Write appends p to the file.
// This implements the [io.Writer] interface.
func (f *MemFile) Write(p []byte) (int, error) {
	if f.Limit > 0 && len(f.Data)+len(p) > f.Limit {
		room := max(f.Limit-len(f.Data), 0)
		f.Data = append(f.Data, p[:room]...)
		return room, ErrFull
	}
	f.Data = append(f.Data, p...)
	return len(p), nil
}
