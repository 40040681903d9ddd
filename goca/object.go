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
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"

	"golang.org/x/text/encoding"

	"seehuhn.de/go/afp"
	"seehuhn.de/go/afp/modca"
)

// ErrWritten is reported when a graphics object is modified or written
// after it has already been written.
var ErrWritten = errors.New("goca: graphics object already written")

// minFieldLen is the smallest allowed segment limit.  It leaves room for
// the longest possible drawing order in an otherwise empty segment.
const minFieldLen = afp.IntroducerSize - 1 + 2 + maxOperandLen + 1

// Options can be used to change the defaults for a graphics object.
type Options struct {
	// MaxFieldLen is the limit for the length field of the Graphics Data
	// structured fields.  A new structured field is started whenever an
	// order would make the length reach this value.  The default is
	// [afp.MaxFieldLen].
	MaxFieldLen int

	// Encoding is used to encode character strings.
	// The default is [afp.DefaultEncoding].
	Encoding encoding.Encoding

	// AreaBoundary, if set, causes areas to be outlined as well as filled.
	AreaBoundary bool
}

// Object is a GOCA graphics object (BGR ... EGR).
//
// An Object collects drawing orders and splits them into Graphics Data
// structured fields, each of which stays below the length limit.  Logical
// segment boundaries, set by [Object.NewSegment], are independent of this.
//
// Errors in the arguments of drawing methods are recorded in Err; once
// Err is set, all further drawing operations are ignored.  An Object can
// be written only once.
type Object struct {
	Name afp.Name

	// Err is the first error encountered while building the object.
	Err error

	maxFieldLen  int
	enc          encoding.Encoding
	areaBoundary bool

	env      *modca.EnvironmentGroup
	segments []*Data
	written  bool

	// boundary is the most recent segment boundary, or nil.
	boundary    *SegmentBoundary
	numBoundary int
}

// New allocates a new graphics object.
// If opt is nil, default options are used.
func New(name string, opt *Options) *Object {
	if opt == nil {
		opt = &Options{}
	}
	o := &Object{
		Name:         afp.NewName(name),
		maxFieldLen:  opt.MaxFieldLen,
		enc:          opt.Encoding,
		areaBoundary: opt.AreaBoundary,
	}
	if o.maxFieldLen <= 0 || o.maxFieldLen > afp.MaxFieldLen {
		o.maxFieldLen = afp.MaxFieldLen
	} else if o.maxFieldLen < minFieldLen {
		o.maxFieldLen = minFieldLen
	}
	if o.enc == nil {
		o.enc = afp.DefaultEncoding
	}
	return o
}

func (o *Object) String() string {
	return "GraphicsObject: " + o.Name.String()
}

// isValid reports whether the object can still be modified.
// Otherwise, it sets o.Err (if not set already) and returns false.
func (o *Object) isValid(cmd string) bool {
	if o.Err != nil {
		return false
	}
	if o.written {
		o.Err = fmt.Errorf("%s: %w", cmd, ErrWritten)
		return false
	}
	return true
}

// setErr records err, unless an earlier error has been recorded.
func (o *Object) setErr(cmd string, err error) {
	afp.Logger().Warn("invalid operands, call ignored",
		slog.String("object", o.Name.String()),
		slog.String("cmd", cmd),
		slog.Any("error", err))
	if o.Err == nil {
		o.Err = err
	}
}

// current returns the segment which receives new orders.
// The second return value is false, if no segment has been allocated yet.
func (o *Object) current() (*Data, bool) {
	if len(o.segments) == 0 {
		return nil, false
	}
	return o.segments[len(o.segments)-1], true
}

// newData starts a new physical segment.  An area which is open at the
// end of the previous segment remains open in the new one.
func (o *Object) newData() *Data {
	d := &Data{}
	if prev, ok := o.current(); ok {
		d.areaOpen = prev.areaOpen
		afp.Logger().Debug("graphics data full",
			slog.String("object", o.Name.String()),
			slog.Int("segment", len(o.segments)),
			slog.Int("length", prev.FieldLen()))
	}
	o.segments = append(o.segments, d)
	return d
}

// ensureData returns the current segment, allocating one if needed.
func (o *Object) ensureData() *Data {
	if d, ok := o.current(); ok {
		return d
	}
	return o.newData()
}

// fits reports whether an order of length n can be added to d without
// the length field reaching the limit.  Segment boundaries are not
// counted against the limit, only against the maximal field length.
func (o *Object) fits(d *Data, n int) bool {
	return d.FieldLen()-d.markerLen+n < o.maxFieldLen &&
		d.FieldLen()+n <= afp.MaxFieldLen
}

// AddOrder adds a drawing order to the graphics object.
//
// If the order does not fit into the current Graphics Data structured
// field, a new one is started first.  Area brackets and segment
// boundaries are handled like calls to [Object.BeginArea],
// [Object.EndArea] and [Object.NewSegment].
func (o *Object) AddOrder(order Order) {
	if !o.isValid("AddOrder") {
		return
	}
	switch order := order.(type) {
	case nil:
		o.setErr("AddOrder", &OperandError{Order: "drawing", Reason: "missing order"})
	case *BeginArea:
		boundary := o.areaBoundary
		if order != nil {
			boundary = order.boundary
		}
		o.beginArea(boundary)
	case EndArea, *EndArea:
		o.endArea()
	case *SegmentBoundary:
		o.newSegment()
	default:
		o.addOrder(order)
	}
}

func (o *Object) addOrder(order Order) {
	n := Len(order)
	d, ok := o.current()
	if !ok || !o.fits(d, n) {
		d = o.newData()
	}
	d.append(order, n)

	if o.boundary != nil {
		if o.boundary.dataLen <= maxSegmentDataLen && o.boundary.dataLen+n > maxSegmentDataLen {
			afp.Logger().Warn("segment data length overflow",
				slog.String("object", o.Name.String()),
				slog.Int("segment", o.numBoundary))
		}
		o.boundary.dataLen += n
	}
}

// SetViewport attaches the object area description to the object.
// The data descriptor of the object environment group is derived from
// the width, height and resolution.
//
// Only the first call has an effect.
func (o *Object) SetViewport(info *modca.AreaInfo) {
	if !o.isValid("SetViewport") {
		return
	}
	if o.env != nil {
		afp.Logger().Warn("viewport already set",
			slog.String("object", o.Name.String()))
		return
	}

	gdd, err := NewDataDescriptor(info)
	if err != nil {
		o.setErr("SetViewport", err)
		return
	}
	env, err := modca.NewEnvironmentGroup(o.Name, info)
	if err != nil {
		o.setErr("SetViewport", err)
		return
	}
	env.DataDescriptor = gdd
	o.env = env
}

// Viewport returns the object environment group set by SetViewport,
// or nil if no viewport has been set.
func (o *Object) Viewport() *modca.EnvironmentGroup {
	return o.env
}

// BeginArea starts an area.  The shapes drawn until the matching call
// to EndArea are filled with the current pattern.
//
// Areas cannot be nested.  A call while an area is open is ignored.
func (o *Object) BeginArea() {
	if !o.isValid("BeginArea") {
		return
	}
	o.beginArea(o.areaBoundary)
}

func (o *Object) beginArea(boundary bool) {
	d := o.ensureData()
	if d.areaOpen {
		afp.Logger().Warn("nested BeginArea ignored",
			slog.String("object", o.Name.String()))
		return
	}
	o.addOrder(NewBeginArea(boundary))
}

// EndArea ends the current area.
// If no area is open, the call is ignored.
func (o *Object) EndArea() {
	if !o.isValid("EndArea") {
		return
	}
	o.endArea()
}

func (o *Object) endArea() {
	d, ok := o.current()
	if !ok {
		return
	}
	if !d.areaOpen {
		afp.Logger().Warn("EndArea without BeginArea ignored",
			slog.String("object", o.Name.String()))
		return
	}
	o.addOrder(EndArea{})
}

// AreaOpen reports whether an area is currently open.
func (o *Object) AreaOpen() bool {
	d, ok := o.current()
	return ok && d.areaOpen
}

// NewSegment starts a new logical segment, by adding a Begin Segment
// introducer.  Segments are named "0001", "0002", ..., and each segment
// names its predecessor.
//
// This does not start a new Graphics Data structured field, unless the
// current one has reached the maximal field length.
func (o *Object) NewSegment() {
	if !o.isValid("NewSegment") {
		return
	}
	o.newSegment()
}

func (o *Object) newSegment() {
	o.numBoundary++
	b := &SegmentBoundary{}
	copy(b.name[:], afp.EncodeText(afp.DefaultEncoding, fmt.Sprintf("%04d", o.numBoundary%10000)))
	if o.boundary != nil {
		b.predecessor = o.boundary.name
	}
	o.boundary = b

	d := o.ensureData()
	if d.FieldLen()+segmentHeaderLen > afp.MaxFieldLen {
		d = o.newData()
	}
	d.append(b, segmentHeaderLen)
}

// SetColor sets the current color.
func (o *Object) SetColor(c color.Color) {
	if !o.isValid("SetColor") {
		return
	}
	o.addOrder(NewProcessColor(c))
}

// SetCurrentPosition sets the current position.
func (o *Object) SetCurrentPosition(x, y int) {
	if !o.isValid("SetCurrentPosition") {
		return
	}
	order, err := NewCurrentPosition(x, y)
	if err != nil {
		o.setErr("SetCurrentPosition", err)
		return
	}
	o.addOrder(order)
}

// SetLineWidth sets the line width, as a multiple of the default width.
func (o *Object) SetLineWidth(multiplier int) {
	if !o.isValid("SetLineWidth") {
		return
	}
	order, err := NewLineWidth(multiplier)
	if err != nil {
		o.setErr("SetLineWidth", err)
		return
	}
	o.addOrder(order)
}

// SetLineType sets the line type.
func (o *Object) SetLineType(t LineType) {
	if !o.isValid("SetLineType") {
		return
	}
	o.addOrder(NewLineType(t))
}

// SetFill sets whether the following areas are filled.
func (o *Object) SetFill(fill bool) {
	if !o.isValid("SetFill") {
		return
	}
	symbol := PatternNoFill
	if fill {
		symbol = PatternSolidFill
	}
	o.addOrder(NewPatternSymbol(symbol))
}

// SetCharacterSet selects the font used for character strings.
func (o *Object) SetCharacterSet(fontReference int) {
	if !o.isValid("SetCharacterSet") {
		return
	}
	order, err := NewCharacterSet(fontReference)
	if err != nil {
		o.setErr("SetCharacterSet", err)
		return
	}
	o.addOrder(order)
}

// AddLine adds a polyline.  The coordinates are a sequence of x, y pairs.
// If relative is false, the line starts at the first point.  Otherwise
// the line starts at the current position.
//
// Long polylines are written as several line orders.
func (o *Object) AddLine(coords []int, relative bool) {
	if !o.isValid("AddLine") {
		return
	}
	if len(coords)%2 != 0 {
		o.setErr("AddLine", &OperandError{
			Order:  "line",
			Reason: fmt.Sprintf("odd number of coordinates (%d)", len(coords)),
		})
		return
	}

	var orders []Order
	for {
		chunk := coords
		if len(chunk) > 2*MaxPoints {
			chunk = chunk[:2*MaxPoints]
		}
		order, err := NewLine(chunk, relative)
		if err != nil {
			o.setErr("AddLine", err)
			return
		}
		orders = append(orders, order)

		coords = coords[len(chunk):]
		if len(coords) == 0 {
			break
		}
		// continue from the end of the previous order
		relative = true
	}
	for _, order := range orders {
		o.addOrder(order)
	}
}

// AddBox adds a box with corners (coords[0], coords[1]) and
// (coords[2], coords[3]).
func (o *Object) AddBox(coords []int) {
	if !o.isValid("AddBox") {
		return
	}
	order, err := NewBox(coords)
	if err != nil {
		o.setErr("AddBox", err)
		return
	}
	o.addOrder(order)
}

// AddFillet adds a fillet curve through the given points.  The
// coordinates are a sequence of x, y pairs.  If relative is set, the
// curve starts at the current position.
func (o *Object) AddFillet(coords []int, relative bool) {
	if !o.isValid("AddFillet") {
		return
	}
	order, err := NewFillet(coords, relative)
	if err != nil {
		o.setErr("AddFillet", err)
		return
	}
	o.addOrder(order)
}

// SetArcParams sets the parameters for subsequent arcs.
func (o *Object) SetArcParams(xMaj, yMin, xMin, yMaj int) {
	if !o.isValid("SetArcParams") {
		return
	}
	order, err := NewArcParameters(xMaj, yMin, xMin, yMaj)
	if err != nil {
		o.setErr("SetArcParams", err)
		return
	}
	o.addOrder(order)
}

// AddFullArc adds a full arc centred at (x, y).  The arc size is
// multiplied by mh + mhr/256.
func (o *Object) AddFullArc(x, y, mh, mhr int) {
	if !o.isValid("AddFullArc") {
		return
	}
	order, err := NewFullArc(x, y, mh, mhr)
	if err != nil {
		o.setErr("AddFullArc", err)
		return
	}
	o.addOrder(order)
}

// AddString adds a character string at position (x, y).
//
// The text is encoded with the encoding from the object options.  Long
// strings are written as several character string orders.
func (o *Object) AddString(s string, x, y int) {
	if !o.isValid("AddString") {
		return
	}
	text := afp.EncodeText(o.enc, s)

	head := text
	if len(head) > MaxStringLen {
		head = head[:MaxStringLen]
	}
	first, err := NewCharString(head, x, y)
	if err != nil {
		o.setErr("AddString", err)
		return
	}
	orders := []Order{first}
	for rest := text[len(head):]; len(rest) > 0; {
		chunk := rest
		if len(chunk) > maxOperandLen {
			chunk = chunk[:maxOperandLen]
		}
		order, err := NewCharStringAt(chunk)
		if err != nil {
			o.setErr("AddString", err)
			return
		}
		orders = append(orders, order)
		rest = rest[len(chunk):]
	}
	for _, order := range orders {
		o.addOrder(order)
	}
}

// NumSegments returns the number of Graphics Data structured fields.
func (o *Object) NumSegments() int {
	return len(o.segments)
}

// Segments returns the physical segments of the object, in output order.
func (o *Object) Segments() []*Data {
	res := make([]*Data, len(o.segments))
	copy(res, o.segments)
	return res
}

// LogicalSegments returns the drawing orders of the object, grouped by the
// logical segment boundaries set using NewSegment.  Orders before the
// first boundary form the first group, unless there are none.  The
// boundary markers themselves are not included.
func (o *Object) LogicalSegments() [][]Order {
	var res [][]Order
	var group []Order
	started := false
	for _, d := range o.segments {
		for _, order := range d.orders {
			if _, isBoundary := order.(*SegmentBoundary); isBoundary {
				if started || len(group) > 0 {
					res = append(res, group)
				}
				group = nil
				started = true
				continue
			}
			group = append(group, order)
		}
	}
	if started || len(group) > 0 {
		res = append(res, group)
	}
	return res
}

// Len returns the number of bytes written by WriteTo.
func (o *Object) Len() int {
	n := 2 * afp.BeginEndSize
	if o.env != nil {
		n += o.env.Len()
	}
	for _, d := range o.segments {
		n += d.Len()
	}
	return n
}

// WriteTo writes the graphics object to w: the Begin Graphics field, the
// object environment group (if a viewport is set), all Graphics Data
// fields in order, and the End Graphics field.
//
// If an I/O error occurs, the output is incomplete and must be discarded.
// This implements the [io.WriterTo] interface.
func (o *Object) WriteTo(w io.Writer) (int64, error) {
	if o.Err != nil {
		return 0, o.Err
	}
	if o.written {
		return 0, ErrWritten
	}
	o.written = true

	afp.Logger().Debug("writing graphics object",
		slog.String("object", o.Name.String()),
		slog.Int("segments", len(o.segments)),
		slog.Int("length", o.Len()))

	objs := make([]afp.Object, 0, len(o.segments)+3)
	objs = append(objs, beginEnd{typ: afp.TypeBegin, name: o.Name})
	if o.env != nil {
		objs = append(objs, o.env)
	}
	for _, d := range o.segments {
		objs = append(objs, d)
	}
	objs = append(objs, beginEnd{typ: afp.TypeEnd, name: o.Name})

	n, err := afp.WriteObjects(w, objs...)
	if err != nil {
		return n, fmt.Errorf("goca: writing %q: %w", o.Name.String(), err)
	}
	return n, nil
}

// Write writes the graphics object to w.  See [Object.WriteTo].
func (o *Object) Write(w io.Writer) error {
	_, err := o.WriteTo(w)
	return err
}

// beginEnd is the Begin Graphics (BGR) or End Graphics (EGR) field.
type beginEnd struct {
	typ  afp.Type
	name afp.Name
}

func (f beginEnd) Len() int {
	return afp.BeginEndSize
}

func (f beginEnd) WriteTo(w io.Writer) (int64, error) {
	var buf []byte
	if f.typ == afp.TypeBegin {
		buf = afp.AppendBegin(nil, afp.CategoryGraphics, f.name)
	} else {
		buf = afp.AppendEnd(nil, afp.CategoryGraphics, f.name)
	}
	n, err := w.Write(buf)
	return int64(n), err
}
