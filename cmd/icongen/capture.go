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

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"seehuhn.de/go/icon"
	"seehuhn.de/go/icon/config"
	"seehuhn.de/go/icon/messages"
	"seehuhn.de/go/icon/scene"
)

// captureFlags override the settings from the configuration file.
type captureFlags struct {
	dir        string
	format     string
	direction  string
	angle      []float64
	zoom       int
	resolution int
	size       int
	lang       string
	combined   bool
	individual bool
	inactive   bool
}

func (f *captureFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("dir") {
		cfg.OutputDir = f.dir
	}
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("direction") {
		cfg.Direction = f.direction
		cfg.UseCustomAngle = false
	}
	if changed("angle") {
		if len(f.angle) != 3 {
			return fmt.Errorf("--angle needs three values, got %d", len(f.angle))
		}
		cfg.UseCustomAngle = true
		copy(cfg.CustomAngle[:], f.angle)
	}
	if changed("zoom") {
		cfg.Zoom = f.zoom
	}
	if changed("resolution") {
		cfg.Resolution = f.resolution
	}
	if changed("size") {
		cfg.Size = f.size
	}
	if changed("lang") {
		cfg.Language = f.lang
	}
	if changed("combined") {
		cfg.Combined = f.combined
	}
	if changed("individual") {
		cfg.Individual = f.individual
	}
	if changed("include-inactive") {
		cfg.IncludeInactive = f.inactive
	}
	return cfg.Validate()
}

func newCaptureCmd(opts *options) *cobra.Command {
	f := &captureFlags{}
	cmd := &cobra.Command{
		Use:   "capture [flags] scene.yaml...",
		Short: "Generate icons for the objects in scene description files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := *opts.cfg
			if err := f.apply(cmd, &cfg); err != nil {
				return err
			}
			return runCapture(cmd, &cfg, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.dir, "dir", "o", "", "output directory")
	flags.StringVar(&f.format, "format", "", "image format, png or ico")
	flags.StringVarP(&f.direction, "direction", "d", "", "view from front, rear, left or right")
	flags.Float64SliceVar(&f.angle, "angle", nil, "view from custom Euler angles x,y,z in degrees")
	flags.IntVar(&f.zoom, "zoom", 0, "zoom in percent")
	flags.IntVar(&f.resolution, "resolution", 0, "edge length of the working buffer")
	flags.IntVarP(&f.size, "size", "s", 0, "edge length of the icons")
	flags.StringVar(&f.lang, "lang", "", "language of messages (en, ko, ja)")
	flags.BoolVar(&f.combined, "combined", false, "generate one icon for the whole scene")
	flags.BoolVar(&f.individual, "individual", true, "generate one icon per object")
	flags.BoolVar(&f.inactive, "include-inactive", false, "include inactive objects")
	return cmd
}

func runCapture(cmd *cobra.Command, cfg *config.Config, files []string) error {
	req, err := cfg.Request()
	if err != nil {
		return err
	}
	msgs := messages.New(cfg.Language)
	out, err := cfg.Sink(msgs)
	if err != nil {
		return err
	}
	out.Notify = func(path string) {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	b := &icon.Batch{
		Pipeline: icon.NewPipeline(icon.WithFormatter(msgs)),
		Saver:    out,
		Progress: func(title, message string, fraction float64) {
			icon.Logger().Debug(title, "message", message, "done", fraction)
		},
	}

	failed := 0
	for _, name := range files {
		root, err := scene.ReadFile(name)
		if err != nil {
			return err
		}
		objects := scene.FindRenderable(root, cfg.IncludeInactive)

		if cfg.Combined {
			res := b.Combined(root, objects, req)
			if res.Err != nil && !errors.Is(res.Err, icon.ErrEmpty) {
				failed++
			}
		}
		if cfg.Individual {
			for _, res := range b.Individual(objects, req) {
				if res.Err != nil {
					failed++
				}
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d icons could not be generated", failed)
	}
	return nil
}
