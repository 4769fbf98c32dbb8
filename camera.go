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
	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/icon/scene"
)

// Clip plane distances of the capture camera.
const (
	NearPlane = 0.001
	FarPlane  = 10000
)

const (
	// orthoMargin is the space left around the object at 100% zoom.
	orthoMargin = 1.1

	// orthoPadding keeps anti-aliased edges away from the image border.
	orthoPadding = 1.01
)

// Frame is an orthographic camera placed to capture a [Volume].  The
// camera looks along its local -Z axis, with +Y up.
type Frame struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat

	// HalfSize is half the height of the visible area, in world units.
	HalfSize float64

	Near, Far float64
}

// NewFrame places the camera for the given volume and request.  The
// camera is pulled back from the centre of the volume by twice the length
// of the extents vector, so that the whole volume lies between the clip
// planes.
func NewFrame(vol Volume, req Request) Frame {
	req = req.normalize()
	dist := 2 * vol.Extents.Len()

	var f Frame
	if req.UseCustomAngle {
		f.Rotation = scene.Euler(req.CustomAngle)
		f.Position = vol.Center.Add(f.Rotation.Rotate(mgl64.Vec3{0, 0, 1}).Mul(dist))
	} else {
		f.Position = vol.Center.Add(req.Direction.offset().Mul(dist))
		f.Rotation = lookAt(f.Position, vol.Center, mgl64.Vec3{0, 1, 0})
	}

	const aspect = 1
	half := max(vol.Extents.Y(), vol.Extents.X()/aspect)
	half *= orthoMargin * float64(DefaultZoom) / float64(req.Zoom)
	half *= orthoPadding
	f.HalfSize = half

	f.Near = NearPlane
	f.Far = FarPlane
	return f
}

// lookAt returns the rotation which turns the local -Z axis of a camera
// at eye towards target, keeping the local +Y axis as close to up as
// possible.
func lookAt(eye, target, up mgl64.Vec3) mgl64.Quat {
	back := eye.Sub(target)
	if back.Len() == 0 {
		return mgl64.QuatIdent()
	}
	back = back.Normalize()
	right := up.Cross(back)
	if right.Len() < 1e-9 {
		// looking straight up or down
		right = mgl64.Vec3{1, 0, 0}
	}
	right = right.Normalize()
	upward := back.Cross(right)
	m := mgl64.Mat3FromCols(right, upward, back)
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize()
}

// View returns the matrix which maps world coordinates to camera
// coordinates.
func (f Frame) View() mgl64.Mat4 {
	p := f.Position
	return f.Rotation.Normalize().Conjugate().Mat4().Mul4(mgl64.Translate3D(-p[0], -p[1], -p[2]))
}

// ViewProjection returns the matrix which maps world coordinates to
// normalized device coordinates.  The visible volume maps to [-1,1]³,
// with z = -1 on the near plane.
func (f Frame) ViewProjection() mgl64.Mat4 {
	h := f.HalfSize
	return mgl64.Ortho(-h, h, -h, h, f.Near, f.Far).Mul4(f.View())
}
