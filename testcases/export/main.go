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

// Command export renders every test case and writes the icons to
// testdata/reference, for visual inspection.
// Run from the module root directory.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/icon"
	"seehuhn.de/go/icon/sink"
	"seehuhn.de/go/icon/testcases"
)

const outDir = "testdata/reference"

func main() {
	icon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p := icon.NewPipeline()
	failed := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(p, name, tc); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				failed++
			}
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func export(p *icon.Pipeline, name string, tc testcases.TestCase) error {
	root := tc.Build()
	var res *icon.Result
	var err error
	if tc.Combine != nil {
		res, err = p.Capture(root, tc.Combine(root), tc.Request)
	} else {
		res, err = p.CaptureObject(root, tc.Request)
	}
	if tc.Want.Err != nil && errors.Is(err, tc.Want.Err) {
		return nil
	} else if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(outDir, name+".png"))
	if err != nil {
		return err
	}
	err = sink.Encode(f, res.Image, sink.PNG)
	return errors.Join(err, f.Close())
}
