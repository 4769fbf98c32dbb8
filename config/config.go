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

// Package config stores the preferences of the icon generator in a TOML
// file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/icon"
	"seehuhn.de/go/icon/sink"
)

// DefaultFile is the location of the configuration file, relative to the
// home directory.
const DefaultFile = "~/.config/icongen/config.toml"

// Config holds the user preferences.
type Config struct {
	// OutputDir is where icons are saved.  A leading "~" refers to the home
	// directory.
	OutputDir string `toml:"output_dir"`

	// Format is the file format of saved icons, "png" or "ico".
	Format string `toml:"format"`

	Resolution int `toml:"resolution"`
	Zoom       int `toml:"zoom"`
	Size       int `toml:"size"`

	// Direction is one of front, rear, left and right.
	Direction      string     `toml:"direction"`
	UseCustomAngle bool       `toml:"use_custom_angle"`
	CustomAngle    [3]float64 `toml:"custom_angle"`

	// Language is a BCP 47 tag.  If empty, the language of the operating
	// system is used.
	Language string `toml:"language"`

	// IncludeInactive makes the scene query pick up inactive objects.
	IncludeInactive bool `toml:"include_inactive"`

	// Individual and Combined select which icons a batch produces.
	Individual bool `toml:"individual"`
	Combined   bool `toml:"combined"`
}

// Default returns the default preferences.
func Default() *Config {
	return &Config{
		OutputDir:  "icons",
		Format:     sink.PNG.String(),
		Resolution: icon.DefaultResolution,
		Zoom:       icon.DefaultZoom,
		Size:       icon.DefaultSize,
		Direction:  icon.Front.String(),
		Individual: true,
	}
}

// Path returns the expanded location of the configuration file.
func Path() (string, error) {
	return homedir.Expand(DefaultFile)
}

// Load reads the configuration from a file.  Settings missing from the
// file keep their default values.  If the file does not exist, the
// defaults are returned.
func Load(name string) (*Config, error) {
	c := Default()
	name, err := homedir.Expand(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	} else if err != nil {
		return nil, err
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c, nil
}

// Save writes the configuration to a file, creating the directory if
// needed.
func Save(name string, c *Config) error {
	name, err := homedir.Expand(name)
	if err != nil {
		return err
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}
	return os.WriteFile(name, data, 0o644)
}

// Write encodes the configuration as TOML.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks that all settings have usable values.  Zero values for
// the numeric settings are allowed and select the defaults.
func (c *Config) Validate() error {
	if _, err := icon.ParseDirection(c.Direction); err != nil {
		return err
	}
	if _, err := sink.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Resolution < 0 || c.Zoom < 0 || c.Size < 0 {
		return errors.New("resolution, zoom and size must not be negative")
	}
	if c.Size > c.Resolution && c.Resolution > 0 {
		return fmt.Errorf("icon size %d exceeds working resolution %d", c.Size, c.Resolution)
	}
	return nil
}

// Request returns the capture settings.
func (c *Config) Request() (icon.Request, error) {
	dir, err := icon.ParseDirection(c.Direction)
	if err != nil {
		return icon.Request{}, err
	}
	return icon.Request{
		Direction:      dir,
		CustomAngle:    c.CustomAngle,
		UseCustomAngle: c.UseCustomAngle,
		Zoom:           c.Zoom,
		Resolution:     c.Resolution,
		Size:           c.Size,
	}, nil
}

// Sink returns a sink which writes into the configured output directory.
func (c *Config) Sink(f icon.Formatter) (*sink.Sink, error) {
	dir, err := homedir.Expand(c.OutputDir)
	if err != nil {
		return nil, err
	}
	format, err := sink.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}
	return &sink.Sink{Dir: dir, Format: format, Formatter: f}, nil
}
