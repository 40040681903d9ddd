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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultTolerance is the maximal distance, in GOCA coordinate units,
// between a curve and the lines used to approximate it.
const DefaultTolerance = 0.5

// DrawPath outlines a path.  All points are mapped through m and rounded
// to integer GOCA coordinates.  Quadratic and cubic curves are
// approximated by lines.  Each subpath becomes one polyline.
func (o *Object) DrawPath(p *path.Data, m matrix.Matrix) {
	if !o.isValid("DrawPath") {
		return
	}
	for _, coords := range flattenPath(p, m, DefaultTolerance) {
		o.AddLine(coords, false)
	}
}

// FillPath fills a path, using the current fill pattern.  See
// [Object.DrawPath] for how the path is converted.
//
// If an area is already open, the path becomes part of that area.
func (o *Object) FillPath(p *path.Data, m matrix.Matrix) {
	if !o.isValid("FillPath") {
		return
	}
	opened := !o.AreaOpen()
	if opened {
		o.BeginArea()
	}
	o.DrawPath(p, m)
	if opened {
		o.EndArea()
	}
}

// flattenPath converts a path into polylines, one per subpath.
// Each polyline is given as a sequence of x, y pairs.
func flattenPath(p *path.Data, m matrix.Matrix, tol float64) [][]int {
	if p == nil {
		return nil
	}
	if m == (matrix.Matrix{}) {
		m = matrix.Identity
	}

	var res [][]int
	var cur []int
	var current, subpath vec.Vec2

	add := func(v vec.Vec2) {
		x, y := apply(m, v)
		cur = append(cur, x, y)
	}
	flush := func() {
		if len(cur) >= 4 {
			res = append(res, cur)
		}
		cur = nil
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			current = p.Coords[coordIdx]
			subpath = current
			add(current)
			coordIdx++

		case path.CmdLineTo:
			current = p.Coords[coordIdx]
			add(current)
			coordIdx++

		case path.CmdQuadTo:
			p1, p2 := p.Coords[coordIdx], p.Coords[coordIdx+1]
			n := curveSteps(m, tol, current, p1, p2)
			for i := 1; i <= n; i++ {
				add(quadAt(current, p1, p2, float64(i)/float64(n)))
			}
			current = p2
			coordIdx += 2

		case path.CmdCubeTo:
			p1, p2, p3 := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			n := curveSteps(m, tol, current, p1, p2, p3)
			for i := 1; i <= n; i++ {
				add(cubeAt(current, p1, p2, p3, float64(i)/float64(n)))
			}
			current = p3
			coordIdx += 3

		case path.CmdClose:
			if current != subpath {
				add(subpath)
			}
			current = subpath
		}
	}
	flush()
	return res
}

// apply maps v through m and rounds the result.
func apply(m matrix.Matrix, v vec.Vec2) (int, int) {
	x := m[0]*v.X + m[2]*v.Y + m[4]
	y := m[1]*v.X + m[3]*v.Y + m[5]
	return int(math.Round(x)), int(math.Round(y))
}

// curveSteps returns the number of line segments needed to approximate
// the Bezier curve with the given control points.  The bound uses the
// largest second difference of the control polygon in device space.
func curveSteps(m matrix.Matrix, tol float64, pts ...vec.Vec2) int {
	dd := 0.0
	for i := 2; i < len(pts); i++ {
		x := pts[i-2].X - 2*pts[i-1].X + pts[i].X
		y := pts[i-2].Y - 2*pts[i-1].Y + pts[i].Y
		dx := m[0]*x + m[2]*y
		dy := m[1]*x + m[3]*y
		dd = math.Max(dd, math.Hypot(dx, dy))
	}
	deg := float64(len(pts) - 1)
	n := int(math.Ceil(math.Sqrt(deg * (deg - 1) * dd / (8 * tol))))
	return min(max(n, 1), 100)
}

func quadAt(p0, p1, p2 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	return vec.Vec2{
		X: s*s*p0.X + 2*s*t*p1.X + t*t*p2.X,
		Y: s*s*p0.Y + 2*s*t*p1.Y + t*t*p2.Y,
	}
}

func cubeAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	a, b, c, d := s*s*s, 3*s*s*t, 3*s*t*t, t*t*t
	return vec.Vec2{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}
