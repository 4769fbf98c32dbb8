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
	"image"
	"runtime/debug"
	"sync"

	"seehuhn.de/go/icon/scene"
)

// Result is the outcome of a successful capture.
type Result struct {
	Image *image.RGBA

	// Degenerate is set if the captured objects had no usable bounds and
	// the camera was framed around a small default box.
	Degenerate bool

	// Transparent is set if nothing was visible.  Image is then a fully
	// transparent image of the requested size.
	Transparent bool
}

// Option configures a [Pipeline].
type Option func(*Pipeline)

// WithLayer selects the layer on which captured copies are placed.  Each
// pipeline which runs concurrently with others must use its own layer,
// see [scene.LayerPool].  Values outside 0..[scene.MaxLayer] are ignored.
func WithLayer(layer int) Option {
	return func(p *Pipeline) {
		if layer >= 0 && layer <= scene.MaxLayer {
			p.layer = layer
		}
	}
}

// WithFormatter sets the source of user visible messages.
func WithFormatter(f Formatter) Option {
	return func(p *Pipeline) {
		if f != nil {
			p.fmt = f
		}
	}
}

// WithRenderer replaces the default renderer.
func WithRenderer(r *Renderer) Option {
	return func(p *Pipeline) {
		if r != nil {
			p.renderer = r
		}
	}
}

// Pipeline captures objects into icons.
//
// Captures run synchronously.  A Pipeline is safe for concurrent use, but
// runs only one capture at a time.
type Pipeline struct {
	mu       sync.Mutex
	layer    int
	fmt      Formatter
	renderer *Renderer
	res      tracker
}

// NewPipeline returns a pipeline which captures on [scene.CaptureLayer],
// unless configured otherwise.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		layer:    scene.CaptureLayer,
		fmt:      keyFormatter{},
		renderer: NewRenderer(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Layer returns the capture layer of the pipeline.
func (p *Pipeline) Layer() int {
	return p.layer
}

// Formatter returns the message source of the pipeline.
func (p *Pipeline) Formatter() Formatter {
	return p.fmt
}

// Live returns the number of temporary resources currently held by
// captures.  Outside of a call to Capture or CaptureObject this is zero.
func (p *Pipeline) Live() int {
	return p.res.count()
}

// CaptureObject captures obj together with all its descendants.
//
// If obj is nil, [ErrEmpty] is returned.  If obj has no surfaces,
// [ErrNoRenderers] is returned.  Unexpected failures are reported as a
// [*CaptureError].
func (p *Pipeline) CaptureObject(obj *scene.Node, req Request) (*Result, error) {
	if obj == nil {
		Logger().Warn(p.fmt.Format(MsgNothingCombined))
		return nil, ErrEmpty
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.run(obj.Name, req, func() *scene.Node {
		return scene.PrepareSingle(obj, p.layer)
	})
}

// Capture renders the given nodes into a single icon.  The nodes keep
// their local transforms and are arranged below a temporary parent which
// is placed at the world position and orientation of root.  Nodes which
// are nil or inactive are left out.
//
// If no node qualifies, [ErrEmpty] is returned.
func (p *Pipeline) Capture(root *scene.Node, nodes []*scene.Node, req Request) (*Result, error) {
	if root == nil || len(nodes) == 0 {
		Logger().Warn(p.fmt.Format(MsgNothingCombined))
		return nil, ErrEmpty
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.run(root.Name, req, func() *scene.Node {
		return scene.PrepareCombined(root, nodes, p.layer)
	})
}

// run performs one capture.  The caller must hold p.mu.
func (p *Pipeline) run(name string, req Request, prepare func() *scene.Node) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				e = fmt.Errorf("%v", r)
			}
			ce := &CaptureError{Object: name, Err: e, Stack: debug.Stack()}
			Logger().Error(p.fmt.Format(MsgInternalError, name, e),
				"stack", string(ce.Stack))
			res, err = nil, ce
		}
	}()

	req = req.normalize()

	clone := prepare()
	if clone == nil {
		Logger().Warn(p.fmt.Format(MsgNothingCombined))
		return nil, ErrEmpty
	}
	releaseClone := p.res.hold("clone")
	defer releaseClone()

	if !hasSurfaces(clone) {
		Logger().Warn(p.fmt.Format(MsgNoRenderers), "object", name)
		return nil, ErrNoRenderers
	}

	vol := Aggregate(clone, p.layer)
	if vol.Degenerate {
		Logger().Warn(p.fmt.Format(MsgInvalidBounds, clone.Name))
	}

	frame := NewFrame(vol, req)
	releaseCamera := p.res.hold("camera")
	defer releaseCamera()
	Logger().Debug("framed",
		"object", name,
		"center", vol.Center,
		"extents", vol.Extents,
		"halfSize", frame.HalfSize)

	releaseTarget := p.res.hold("target")
	defer releaseTarget()
	buf := p.renderer.Render(clone, frame, p.layer, req.Resolution)

	img, transparent := Finish(buf, req.Size)
	if transparent {
		Logger().Warn(p.fmt.Format(MsgFullyTransparent, name, req.Size))
	}
	return &Result{
		Image:       img,
		Degenerate:  vol.Degenerate,
		Transparent: transparent,
	}, nil
}

func hasSurfaces(root *scene.Node) bool {
	found := false
	scene.Walk(root, func(n *scene.Node) bool {
		if n.Surface != nil {
			found = true
		}
		return !found
	})
	return found
}
