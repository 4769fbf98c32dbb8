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
	"image"

	"seehuhn.de/go/icon/scene"
)

// Saver stores finished icons.  Save returns the location the icon was
// written to.
type Saver interface {
	Save(object string, req Request, img image.Image) (string, error)
}

// ProgressFunc is called before and after each object of a batch.
// fraction runs from 0 to 1.
type ProgressFunc func(title, message string, fraction float64)

// Outcome describes the result of one item of a batch.
type Outcome struct {
	Object string
	Path   string // empty if nothing was saved
	Result *Result
	Err    error
}

// Batch captures a list of objects and saves the resulting icons.
type Batch struct {
	Pipeline *Pipeline
	Saver    Saver
	Progress ProgressFunc // may be nil
}

func (b *Batch) progress(message string, fraction float64) {
	if b.Progress == nil {
		return
	}
	f := b.Pipeline.Formatter()
	b.Progress(f.Format(MsgProgressTitle), message, fraction)
}

// Individual captures each object on its own.  Nil entries are skipped.
// A failure for one object does not stop the batch.
func (b *Batch) Individual(objects []*scene.Node, req Request) []Outcome {
	f := b.Pipeline.Formatter()
	req = req.normalize()

	var res []Outcome
	total := len(objects)
	for i, obj := range objects {
		if obj == nil {
			Logger().Warn("skipping nil object", "index", i)
			continue
		}

		b.progress(f.Format(MsgProcessing, obj.Name, i+1, total), float64(i)/float64(total))
		out := b.capture(obj.Name, req, func() (*Result, error) {
			return b.Pipeline.CaptureObject(obj, req)
		})
		if failed(out) {
			Logger().Error(f.Format(MsgFailed, obj.Name), "error", out.Err)
		}
		res = append(res, out)
		b.progress(f.Format(MsgFinalizing, obj.Name), float64(i+1)/float64(total))
	}
	return res
}

// Combined captures all objects into one icon, named after src.
func (b *Batch) Combined(src *scene.Node, objects []*scene.Node, req Request) Outcome {
	f := b.Pipeline.Formatter()
	req = req.normalize()

	name := ""
	if src != nil {
		name = src.Name
	}
	out := b.capture(name, req, func() (*Result, error) {
		return b.Pipeline.Capture(src, objects, req)
	})
	if failed(out) && !errors.Is(out.Err, ErrEmpty) {
		Logger().Error(f.Format(MsgFailed, name)+" ("+f.Format(MsgCombined)+")", "error", out.Err)
	}
	return out
}

// failed reports whether out is a capture failure which has not been logged
// yet.  Panics are logged by the pipeline and failed saves by the Saver.
func failed(out Outcome) bool {
	if out.Err == nil || out.Result != nil {
		return false
	}
	var ce *CaptureError
	return !errors.As(out.Err, &ce)
}

// capture runs one capture and saves the result.
func (b *Batch) capture(name string, req Request, capture func() (*Result, error)) Outcome {
	out := Outcome{Object: name}
	out.Result, out.Err = capture()
	if out.Err != nil || b.Saver == nil {
		return out
	}
	out.Path, out.Err = b.Saver.Save(name, req, out.Result.Image)
	return out
}
