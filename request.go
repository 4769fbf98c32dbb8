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

package icon

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Default values for the fields of a [Request].
const (
	DefaultZoom       = 100
	DefaultResolution = 2048
	DefaultSize       = 256

	// ThumbnailSize is the edge length of preview images.
	ThumbnailSize = 256
)

// Direction selects one of the standard viewing directions.
type Direction int

const (
	// Front looks at the object from the +Z side.
	Front Direction = iota

	// Rear looks at the object from the -Z side.
	Rear

	// Left places the camera on the +X side.
	Left

	// Right places the camera on the -X side.
	Right
)

var directionNames = []string{"front", "rear", "left", "right"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection converts a direction name, as returned by
// [Direction.String], back into a Direction.  Case is ignored.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(i), nil
		}
	}
	return Front, fmt.Errorf("unknown direction %q", s)
}

// offset returns the unit vector from the object centre towards the camera.
// Unknown values are treated as Front.
func (d Direction) offset() mgl64.Vec3 {
	switch d {
	case Rear:
		return mgl64.Vec3{0, 0, -1}
	case Left:
		return mgl64.Vec3{1, 0, 0}
	case Right:
		return mgl64.Vec3{-1, 0, 0}
	default:
		return mgl64.Vec3{0, 0, 1}
	}
}

// Request describes how an icon is captured.
type Request struct {
	Direction Direction

	// CustomAngle gives Euler angles in degrees.  It is used instead of
	// Direction if UseCustomAngle is set.
	CustomAngle    mgl64.Vec3
	UseCustomAngle bool

	// Zoom is a percentage.  Values above 100 make the object appear
	// larger.
	Zoom int

	// Resolution is the edge length of the working buffer.
	Resolution int

	// Size is the edge length of the final icon.
	Size int
}

// normalize replaces non-positive values by the defaults.
func (r Request) normalize() Request {
	if r.Zoom <= 0 {
		r.Zoom = DefaultZoom
	}
	if r.Resolution <= 0 {
		r.Resolution = DefaultResolution
	}
	if r.Size <= 0 {
		r.Size = DefaultSize
	}
	return r
}

// View describes the viewing direction in the form used in file names,
// for example "front" or "CustomAngle(30,45,0)".
func (r Request) View() string {
	if !r.UseCustomAngle {
		return r.Direction.String()
	}
	a := r.CustomAngle
	return fmt.Sprintf("CustomAngle(%d,%d,%d)",
		int(math.Round(a[0])), int(math.Round(a[1])), int(math.Round(a[2])))
}
