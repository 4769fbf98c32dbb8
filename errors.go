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
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when none of the requested nodes can take part
	// in a capture.
	ErrEmpty = errors.New("icon: no active objects to capture")

	// ErrNoRenderers is returned when the prepared copy of an object
	// carries no surfaces at all.
	ErrNoRenderers = errors.New("icon: no surfaces to render")
)

// CaptureError reports an unexpected failure while capturing an object.
// Panics inside the pipeline are converted into a CaptureError, with the
// stack of the panicking goroutine.
type CaptureError struct {
	Object string
	Err    error
	Stack  []byte
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("icon: capturing %q: %v", e.Object, e.Err)
}

func (e *CaptureError) Unwrap() error {
	return e.Err
}
