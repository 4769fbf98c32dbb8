// seehuhn.de/go/icon - render 3D objects to icon images
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

// Package raster computes anti-aliased pixel coverage for polygonal paths.
//
// Coverage is the exact fraction of each pixel's area inside the polygon,
// so edges come out smooth without supersampling.  Polygons which share an
// edge and are filled as subpaths of the same path join without a seam.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a polygon side in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// xAt returns the x coordinate of the edge at height y.
func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rule selects how overlapping subpaths combine.
type Rule int

const (
	// NonZero fills every point with a non-zero winding number.
	NonZero Rule = iota

	// EvenOdd fills points with an odd winding number.
	EvenOdd
)

// EmitFunc receives the coverage of one scanline.  Coverage values are in
// the range [0, 1], coverage[i] belongs to pixel (xMin+i, y).  The slice is
// only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasterizer converts polygonal paths into per-pixel coverage.
// Internal buffers are reused between calls, so a single Rasterizer should
// be kept for all paths rendered into the same target.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps path coordinates to device pixels.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts output to this device rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// smallPathThreshold is the largest bounding box area, in pixels, for
	// which the dense 2D accumulation buffers are used.  Larger paths are
	// processed one scanline at a time with an active edge list.
	smallPathThreshold int

	cover     []float32 // signed vertical extent per pixel, reused as output
	area      []float32 // area to the right of the edge within the pixel
	edges     []edge
	activeIdx []int
	rowXMin   []int
	rowXMax   []int
	crossings []float64

	first            bool
	devXMin, devXMax float64
	devYMin, devYMax float64
}

// NewRasterizer returns a Rasterizer which clips to the given rectangle and
// uses the identity CTM.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:                matrix.Identity,
		Clip:               clip,
		smallPathThreshold: smallPathThreshold,
	}
}

// Reset prepares the Rasterizer for a new target, keeping buffer capacity.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.rowXMin = r.rowXMin[:0]
	r.rowXMax = r.rowXMax[:0]
	r.crossings = r.crossings[:0]
}

// Fill rasterizes the path using the given fill rule.
//
// Only straight segments are supported.  Curve commands are replaced by a
// line to their final point.
func (r *Rasterizer) Fill(p *path.Data, rule Rule, emit EmitFunc) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillDense(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillScanlines(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// FillNonZero is shorthand for Fill(p, NonZero, emit).
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd is shorthand for Fill(p, EvenOdd, emit).
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.Fill(p, EvenOdd, emit)
}

// collectEdges transforms the path to device space and returns the integer
// bounding box of all edges, clamped to the clip rectangle.
func (r *Rasterizer) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.first = true

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.addEdge(current, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.addEdge(current, p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	m := r.CTM
	x0 := m[0]*a.X + m[2]*a.Y + m[4]
	y0 := m[1]*a.X + m[3]*a.Y + m[5]
	x1 := m[0]*b.X + m[2]*b.Y + m[4]
	y1 := m[1]*b.X + m[3]*b.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.first {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
		r.first = false
		return
	}
	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, y0, y1)
	r.devYMax = max(r.devYMax, y0, y1)
}

// The coverage of a pixel is accumulated from two quantities per column:
//
//	cover: signed height of all edge pieces inside the pixel
//	area:  cover weighted by the part of the pixel right of the edge
//
// Integrating a scanline from left to right, the signed area inside the
// path for pixel i is sum(cover[0:i]) + area[i].  Edges which lie left of
// the bounding box fold into column 0.

// accumulate adds the part of e which lies in scanline y.
func (r *Rasterizer) accumulate(e *edge, y int, cover, area []float32, bxMin, bxMax int) {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	if xa > xb {
		xa, xb = xb, xa
	}
	pixLeft := int(math.Floor(xa))
	pixRight := int(math.Floor(xb))

	if pixRight < bxMin {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if pixLeft >= bxMax {
		return
	}
	if pixLeft == pixRight {
		r.deposit(e, yTop, yBot, sign, pixLeft, cover, area, bxMin, bxMax)
		return
	}

	// split the piece where it crosses pixel columns
	r.crossings = append(r.crossings[:0], yTop, yBot)
	dydx := 1 / e.dxdy
	for x := pixLeft + 1; x <= pixRight; x++ {
		yx := e.y0 + dydx*(float64(x)-e.x0)
		if yx > yTop && yx < yBot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		xMid := e.xAt((y0 + y1) / 2)
		r.deposit(e, y0, y1, sign, int(math.Floor(xMid)), cover, area, bxMin, bxMax)
	}
}

// deposit records an edge piece between yTop and yBot which lies inside
// pixel column pix.
func (r *Rasterizer) deposit(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bxMin, bxMax int) {
	c := sign * float32(yBot-yTop)
	if pix < bxMin {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= bxMax {
		return
	}
	xMid := e.xAt((yTop + yBot) / 2)
	frac := xMid - float64(pix)
	i := pix - bxMin
	cover[i] += c
	area[i] += c * float32(1-frac)
}

// integrate turns the accumulated cover/area of one scanline into coverage
// values, in place.
func integrate(cover, area []float32, rule Rule) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		if rule == EvenOdd {
			m := raw - 2*float32(int(raw/2))
			raw = 1 - abs32(1-m)
		} else if raw > 1 {
			raw = 1
		}
		cover[i] = raw
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the part of coverage between the first and last
// non-zero value.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillDense accumulates all edges into a width×height buffer first.
func (r *Rasterizer) fillDense(xMin, xMax, yMin, yMax int, rule Rule, emit EmitFunc) {
	width := xMax - xMin
	height := yMax - yMin
	size := width * height

	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)

	r.rowXMin = slices.Grow(r.rowXMin[:0], height)[:height]
	r.rowXMax = slices.Grow(r.rowXMax[:0], height)[:height]
	for i := range height {
		r.rowXMin[i] = width
		r.rowXMax[i] = -1
	}

	for i := range r.edges {
		e := &r.edges[i]
		lo := max(int(math.Floor(e.yMin())), yMin)
		hi := min(int(math.Floor(e.yMax()))+1, yMax)
		for y := lo; y < hi; y++ {
			row := y - yMin
			off := row * width
			r.accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)

			yTop := max(float64(y), e.yMin())
			yBot := min(float64(y+1), e.yMax())
			x := min(max(int(math.Floor(e.xAt((yTop+yBot)/2))), xMin), xMax-1) - xMin
			r.rowXMin[row] = min(r.rowXMin[row], x)
			r.rowXMax[row] = max(r.rowXMax[row], x)
		}
	}

	for row := range height {
		if r.rowXMax[row] < 0 {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrate(coverage, r.area[off:off+width], rule)
		if trimmed, k := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+k, trimmed)
		}
	}
}

// fillScanlines walks the scanlines top to bottom, keeping a list of the
// edges which intersect the current scanline.
func (r *Rasterizer) fillScanlines(xMin, xMax, yMin, yMax int, rule Rule, emit EmitFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf, yfNext := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].yMin() < yfNext {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if e.yMax() <= yf {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			r.accumulate(e, y, r.cover, r.area, xMin, xMax)
			if min(yfNext, e.yMax()) > max(yf, e.yMin()) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area, rule)
		if trimmed, k := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+k, trimmed)
		}
	}
}

const (
	// horizontalEdgeThreshold is the smallest vertical extent for which an
	// edge contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the default switch-over area, in pixels,
	// between dense buffers and the active edge list.
	smallPathThreshold = 65536
)
