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

// encoder receives the bytes of a drawing order.
//
// Every order has a single encode method.  Running it against a sizer
// gives the length of the order, running it against an appender gives
// the bytes, so both can never disagree.
type encoder interface {
	putByte(b byte)
	putInt16(x int16)
	putBytes(b []byte)
}

// sizer counts the bytes of an order without storing them.
type sizer int

func (s *sizer) putByte(byte)      { *s++ }
func (s *sizer) putInt16(int16)    { *s += 2 }
func (s *sizer) putBytes(b []byte) { *s += sizer(len(b)) }

// appender collects the bytes of an order.
type appender struct {
	buf []byte
}

func (a *appender) putByte(b byte) {
	a.buf = append(a.buf, b)
}

func (a *appender) putInt16(x int16) {
	a.buf = append(a.buf, byte(uint16(x)>>8), byte(x))
}

func (a *appender) putBytes(b []byte) {
	a.buf = append(a.buf, b...)
}

// Len returns the number of bytes occupied by the encoded order.
func Len(o Order) int {
	var s sizer
	o.encode(&s)
	return int(s)
}

// Encode returns the encoded order.
func Encode(o Order) []byte {
	return AppendEncoded(nil, o)
}

// AppendEncoded appends the encoded order to buf.
func AppendEncoded(buf []byte, o Order) []byte {
	a := &appender{buf: buf}
	o.encode(a)
	return a.buf
}
