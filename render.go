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

// Package icon captures 3D objects into square icon images.
//
// A capture copies the object onto a private layer, frames an orthographic
// camera around the bounds of the copy, renders the copy into a working
// buffer with a transparent background and finally resizes the buffer to
// the icon size.  The source hierarchy is never modified.
package icon

import (
	"cmp"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/icon/raster"
	"seehuhn.de/go/icon/scene"
)

// DefaultLight is the direction towards the key light, in camera
// coordinates: above, to the left and in front of the object.
var DefaultLight = mgl64.Vec3{-0.4, 0.6, 0.7}

// DefaultAmbient is the fraction of light which reaches faces turned away
// from the key light.
const DefaultAmbient = 0.35

// Renderer draws the surfaces of a scene as flat shaded polygons.
//
// Faces are sorted back to front by their mean depth and painted over each
// other.  Edges are anti-aliased by exact area coverage.  Coplanar
// triangles of the same surface are filled together, so that no seams
// appear along their shared edges.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	// Light points towards the key light, in camera coordinates.
	Light mgl64.Vec3

	// Ambient is the fraction of light which reaches every face.
	Ambient float64

	rast  *raster.Rasterizer
	world []mgl64.Vec3
	ndc   []mgl64.Vec3
}

// NewRenderer returns a Renderer with the default lighting.
func NewRenderer() *Renderer {
	return &Renderer{
		Light:   DefaultLight,
		Ambient: DefaultAmbient,
		rast:    raster.NewRasterizer(rect.Rect{}),
	}
}

// face is a set of coplanar triangles which are filled in one go.
type face struct {
	path  *path.Data
	depth float64 // mean NDC depth of the vertices; larger is farther
	n     int
	color [4]float64 // premultiplied, in [0,1]
}

type faceKey struct {
	s          *scene.Surface
	nx, ny, nz int64
	d          int64
}

// quant rounds x for use in a faceKey.
func quant(x float64) int64 {
	return int64(math.Round(x * 1e6))
}

// Render draws all enabled surfaces below root which are on the given
// layer, as seen by the camera f.  The result is a square image of the
// given resolution.  Pixels not covered by any surface are transparent.
func (r *Renderer) Render(root *scene.Node, f Frame, layer int, resolution int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, resolution, resolution))
	faces, tris := r.collect(root, f, layer)

	slices.SortStableFunc(faces, func(a, b *face) int {
		return cmp.Compare(b.depth, a.depth)
	})

	res := float64(resolution)
	if r.rast == nil {
		r.rast = raster.NewRasterizer(rect.Rect{})
	}
	r.rast.Reset(rect.Rect{URx: res, URy: res})
	r.rast.CTM = matrix.Matrix{res / 2, 0, 0, -res / 2, res / 2, res / 2}
	for _, fc := range faces {
		if fc.color[3] <= 0 {
			continue
		}
		src := fc.color
		r.rast.FillNonZero(fc.path, func(y, xMin int, coverage []float32) {
			composite(img, y, xMin, coverage, src)
		})
	}

	Logger().Debug("rendered",
		"resolution", resolution,
		"triangles", tris,
		"faces", len(faces))
	return img
}

// collect projects the triangles of all visible surfaces and groups them
// into faces.
func (r *Renderer) collect(root *scene.Node, f Frame, layer int) ([]*face, int) {
	vp := f.ViewProjection()
	toCamera := f.Rotation.Normalize().Conjugate()
	light := r.Light
	if light.Len() == 0 {
		light = DefaultLight
	}
	light = light.Normalize()
	mask := scene.MaskOf(layer)

	var faces []*face
	index := make(map[faceKey]*face)
	tris := 0
	for _, n := range scene.All(root) {
		s := n.Surface
		if s == nil || !s.Enabled || s.Mesh == nil || s.Kind == scene.KindParticles || !mask.Has(n.Layer) {
			continue
		}

		world := n.World()
		mvp := vp.Mul4(world)
		m := s.Mesh
		r.world = r.world[:0]
		r.ndc = r.ndc[:0]
		for _, v := range m.Vertices {
			r.world = append(r.world, mgl64.TransformCoordinate(v, world))
			r.ndc = append(r.ndc, mgl64.TransformCoordinate(v, mvp))
		}

		for _, t := range m.Triangles {
			a, b, c := r.world[t[0]], r.world[t[1]], r.world[t[2]]
			nrm := b.Sub(a).Cross(c.Sub(a))
			l := nrm.Len()
			if !(l > 0) || math.IsInf(l, 0) {
				continue
			}
			nrm = nrm.Mul(1 / l)

			pa, pb, pc := r.ndc[t[0]], r.ndc[t[1]], r.ndc[t[2]]
			if outsideDepth(pa[2], pb[2], pc[2]) {
				continue
			}

			key := faceKey{
				s:  s,
				nx: quant(nrm[0]),
				ny: quant(nrm[1]),
				nz: quant(nrm[2]),
				d:  quant(nrm.Dot(a)),
			}
			fc := index[key]
			if fc == nil {
				fc = &face{
					path:  &path.Data{},
					color: shade(s.Color, toCamera.Rotate(nrm), light, r.Ambient),
				}
				index[key] = fc
				faces = append(faces, fc)
			}
			fc.path.Cmds = append(fc.path.Cmds,
				path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose)
			fc.path.Coords = append(fc.path.Coords,
				vec.Vec2{X: pa[0], Y: pa[1]},
				vec.Vec2{X: pb[0], Y: pb[1]},
				vec.Vec2{X: pc[0], Y: pc[1]})
			fc.depth += pa[2] + pb[2] + pc[2]
			fc.n += 3
			tris++
		}
	}

	for _, fc := range faces {
		fc.depth /= float64(fc.n)
	}
	return faces, tris
}

// outsideDepth reports whether a triangle lies completely in front of the
// near plane or behind the far plane.
func outsideDepth(za, zb, zc float64) bool {
	return (za < -1 && zb < -1 && zc < -1) || (za > 1 && zb > 1 && zc > 1)
}

// shade applies two-sided Lambert lighting with an ambient term.  The
// normal and the light direction are unit vectors in camera coordinates.
func shade(c color.NRGBA, normal, light mgl64.Vec3, ambient float64) [4]float64 {
	k := ambient + (1-ambient)*math.Abs(normal.Dot(light))
	k = min(max(k, 0), 1)
	a := float64(c.A) / 255
	return [4]float64{
		float64(c.R) / 255 * k * a,
		float64(c.G) / 255 * k * a,
		float64(c.B) / 255 * k * a,
		a,
	}
}

// composite paints one row of coverage values onto img with the
// premultiplied colour src, using the source-over operator.
func composite(img *image.RGBA, y, xMin int, coverage []float32, src [4]float64) {
	row := img.Pix[y*img.Stride+4*xMin:]
	for i, c := range coverage {
		if c <= 0 {
			continue
		}
		a := float64(c)
		k := 1 - a*src[3]
		p := row[4*i : 4*i+4 : 4*i+4]
		for j := range 4 {
			v := a*src[j]*255 + float64(p[j])*k
			p[j] = uint8(min(math.Round(v), 255))
		}
	}
}
