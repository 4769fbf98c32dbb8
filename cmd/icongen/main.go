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

// Command icongen renders scene descriptions into icon images.
//
// Usage:
//
//	icongen capture [flags] scene.yaml...
//	icongen thumbnail icon.png [preview.png]
//	icongen config show|init|languages
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/icon"
	"seehuhn.de/go/icon/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds the settings shared by all subcommands.
type options struct {
	configFile string
	verbose    bool

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "icongen",
		Short:        "Render 3D objects into icon images",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			icon.SetLogger(slog.New(h))

			if opts.configFile == "" {
				p, err := config.Path()
				if err != nil {
					return err
				}
				opts.configFile = p
			}
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "configuration file (default "+config.DefaultFile+")")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages")

	root.AddCommand(
		newCaptureCmd(opts),
		newThumbnailCmd(),
		newConfigCmd(opts),
	)
	return root
}
