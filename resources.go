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
	"sync"
	"sync/atomic"
)

// tracker counts the temporary objects held by captures in flight: the
// prepared copy of the scene, the camera and the working buffer.
type tracker struct {
	live atomic.Int64
}

// hold registers one resource and returns the function which releases it.
// Calling the release function more than once has no effect.
func (t *tracker) hold(kind string) (release func()) {
	t.live.Add(1)
	Logger().Debug("acquire", "resource", kind)
	var once sync.Once
	return func() {
		once.Do(func() {
			t.live.Add(-1)
			Logger().Debug("release", "resource", kind)
		})
	}
}

func (t *tracker) count() int {
	return int(t.live.Load())
}
