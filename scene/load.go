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

package scene

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// nodeDesc is the YAML form of a node.
type nodeDesc struct {
	Name     string       `yaml:"name"`
	Position []float64    `yaml:"position"`
	Rotation []float64    `yaml:"rotation"` // Euler angles in degrees
	Scale    []float64    `yaml:"scale"`
	Active   *bool        `yaml:"active"`
	Tag      string       `yaml:"tag"`
	Surface  *surfaceDesc `yaml:"surface"`
	Children []*nodeDesc  `yaml:"children"`
}

// surfaceDesc is the YAML form of a surface.  Shape selects a built-in
// mesh; alternatively the mesh is given by vertices and triangles.
type surfaceDesc struct {
	Shape     string      `yaml:"shape"` // quad, box or sphere
	Size      []float64   `yaml:"size"`
	Segments  int         `yaml:"segments"`
	Vertices  [][]float64 `yaml:"vertices"`
	Triangles [][3]int    `yaml:"triangles"`
	Kind      string      `yaml:"kind"` // mesh, skinned or particles
	Enabled   *bool       `yaml:"enabled"`
	Color     string      `yaml:"color"` // #rrggbb or #rrggbbaa
}

// ReadFile loads a scene description from a YAML file.
func ReadFile(name string) (*Node, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

// Read decodes a scene description in YAML format.
func Read(r io.Reader) (*Node, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var desc nodeDesc
	if err := dec.Decode(&desc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty scene description")
		}
		return nil, err
	}
	return desc.build("root")
}

func (d *nodeDesc) build(where string) (*Node, error) {
	n := New(d.Name)
	if n.Name == "" {
		n.Name = where
	}
	where = n.Name

	var err error
	if n.Local.Position, err = vec3(d.Position, mgl64.Vec3{}); err != nil {
		return nil, fmt.Errorf("%s: position: %w", where, err)
	}
	rot, err := vec3(d.Rotation, mgl64.Vec3{})
	if err != nil {
		return nil, fmt.Errorf("%s: rotation: %w", where, err)
	}
	n.Local.Rotation = Euler(rot)
	if n.Local.Scale, err = vec3(d.Scale, mgl64.Vec3{1, 1, 1}); err != nil {
		return nil, fmt.Errorf("%s: scale: %w", where, err)
	}
	if d.Active != nil {
		n.Active = *d.Active
	}
	n.Tag = d.Tag

	if d.Surface != nil {
		s, err := d.Surface.build()
		if err != nil {
			return nil, fmt.Errorf("%s: surface: %w", where, err)
		}
		n.Surface = s
	}

	for i, cd := range d.Children {
		if cd == nil {
			continue
		}
		c, err := cd.build(fmt.Sprintf("%s/%d", where, i))
		if err != nil {
			return nil, err
		}
		n.Add(c)
	}
	return n, nil
}

func (d *surfaceDesc) build() (*Surface, error) {
	s := &Surface{
		Enabled: true,
		Color:   color.NRGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF},
	}
	if d.Enabled != nil {
		s.Enabled = *d.Enabled
	}

	switch strings.ToLower(d.Kind) {
	case "", "mesh":
		s.Kind = KindMesh
	case "skinned":
		s.Kind = KindSkinned
	case "particles":
		s.Kind = KindParticles
	default:
		return nil, fmt.Errorf("unknown kind %q", d.Kind)
	}

	if d.Color != "" {
		c, err := ParseColor(d.Color)
		if err != nil {
			return nil, err
		}
		s.Color = c
	}

	size, err := vec3(d.Size, mgl64.Vec3{1, 1, 1})
	if err != nil {
		return nil, fmt.Errorf("size: %w", err)
	}
	switch strings.ToLower(d.Shape) {
	case "quad":
		s.Mesh = Quad(size[0], size[1])
	case "box", "cube":
		s.Mesh = Box(size)
	case "sphere":
		seg := d.Segments
		if seg == 0 {
			seg = 24
		}
		s.Mesh = Sphere(size[0]/2, seg)
	case "":
		m := &Mesh{Triangles: d.Triangles}
		for _, v := range d.Vertices {
			p, err := vec3(v, mgl64.Vec3{})
			if err != nil {
				return nil, fmt.Errorf("vertex: %w", err)
			}
			m.Vertices = append(m.Vertices, p)
		}
		for _, t := range m.Triangles {
			for _, k := range t {
				if k < 0 || k >= len(m.Vertices) {
					return nil, fmt.Errorf("triangle index %d out of range", k)
				}
			}
		}
		s.Mesh = m
	default:
		return nil, fmt.Errorf("unknown shape %q", d.Shape)
	}
	return s, nil
}

// vec3 converts a YAML list to a vector.  An empty list gives def, a single
// number is used for all three components.
func vec3(v []float64, def mgl64.Vec3) (mgl64.Vec3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 1:
		return mgl64.Vec3{v[0], v[0], v[0]}, nil
	case 3:
		return mgl64.Vec3{v[0], v[1], v[2]}, nil
	default:
		return def, fmt.Errorf("expected 3 components, got %d", len(v))
	}
}

// ParseColor parses colours of the form #rgb, #rrggbb and #rrggbbaa.
func ParseColor(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
