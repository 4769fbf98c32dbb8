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
	"sync"
)

// Layers are small integers which isolate the nodes taking part in one
// capture.
const (
	// DefaultLayer is the layer of newly created nodes.
	DefaultLayer = 0

	// CaptureLayer is the layer used by a single capture pipeline.
	CaptureLayer = 21

	// MaxLayer is the largest valid layer number.
	MaxLayer = 31
)

// Mask is a set of layers.
type Mask uint32

// MaskOf returns the mask containing the given layers.
func MaskOf(layers ...int) Mask {
	var m Mask
	for _, l := range layers {
		if l >= 0 && l <= MaxLayer {
			m |= 1 << l
		}
	}
	return m
}

// Has reports whether layer is contained in the mask.
func (m Mask) Has(layer int) bool {
	return layer >= 0 && layer <= MaxLayer && m&(1<<layer) != 0
}

// ErrNoLayer is returned by [LayerPool.Acquire] when all layers are in use.
var ErrNoLayer = errors.New("no free capture layer")

// LayerPool hands out distinct capture layers to pipelines which run
// concurrently.
type LayerPool struct {
	mu   sync.Mutex
	free []int
	used map[int]bool
}

// NewLayerPool returns a pool containing the given layers.
func NewLayerPool(layers ...int) (*LayerPool, error) {
	p := &LayerPool{used: make(map[int]bool)}
	seen := make(map[int]bool)
	for _, l := range layers {
		if l < 0 || l > MaxLayer {
			return nil, fmt.Errorf("invalid layer %d", l)
		}
		if l == DefaultLayer || seen[l] {
			return nil, fmt.Errorf("layer %d cannot be used for capturing", l)
		}
		seen[l] = true
		p.free = append(p.free, l)
	}
	return p, nil
}

// Acquire takes a layer out of the pool.
func (p *LayerPool) Acquire() (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) == 0 {
		return 0, ErrNoLayer
	}
	l := p.free[0]
	p.free = p.free[1:]
	p.used[l] = true
	return l, nil
}

// Release returns a layer obtained from Acquire.
func (p *LayerPool) Release(layer int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.used[layer] {
		return
	}
	delete(p.used, layer)
	p.free = append(p.free, layer)
}
