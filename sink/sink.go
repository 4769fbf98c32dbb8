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

// Package sink writes finished icons to disk.
package sink

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	ico "github.com/sergeymakinen/go-ico"

	"seehuhn.de/go/icon"
)

// Format selects the file format of saved icons.
type Format int

const (
	// PNG writes portable network graphics files.
	PNG Format = iota

	// ICO writes Windows icon files.  The icon size is limited to 256
	// pixels.
	ICO
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case ICO:
		return "ico"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts a file extension, with or without the leading dot,
// into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "ico":
		return ICO, nil
	default:
		return PNG, fmt.Errorf("unsupported image format %q", s)
	}
}

// maxICOSize is the largest edge length an ICO file can describe.
const maxICOSize = 256

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case ICO:
		b := img.Bounds()
		if b.Dx() > maxICOSize || b.Dy() > maxICOSize {
			return fmt.Errorf("icon size %dx%d exceeds %dx%d", b.Dx(), b.Dy(), maxICOSize, maxICOSize)
		}
		return ico.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %s", f)
	}
}

// Sink saves icons into a directory.  It implements [icon.Saver].
type Sink struct {
	Dir    string
	Format Format

	// Formatter provides the texts of log messages.  If nil, the message
	// keys are logged.
	Formatter icon.Formatter

	// Notify, if set, is called with the path of every saved file.
	Notify func(path string)
}

var _ icon.Saver = (*Sink)(nil)

// Save writes img to a file named after the object and the capture
// request, and returns the path of the file.
func (s *Sink) Save(object string, req icon.Request, img image.Image) (string, error) {
	if err := s.ensureDir(); err != nil {
		return "", err
	}

	name := FileName(object, req, s.Format)
	fullPath := filepath.Join(s.Dir, name)
	if err := writeFile(fullPath, img, s.Format); err != nil {
		icon.Logger().Error(s.format(icon.MsgSaveError, fullPath, err))
		return "", err
	}

	icon.Logger().Info(s.format(icon.MsgComplete, fullPath))
	if s.Notify != nil {
		s.Notify(fullPath)
	}
	return fullPath, nil
}

func (s *Sink) ensureDir() error {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		icon.Logger().Error(s.format(icon.MsgDirectoryError, dir, err))
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

func (s *Sink) format(key string, args ...any) string {
	if s.Formatter == nil {
		return fmt.Sprint(append([]any{key, ": "}, args...)...)
	}
	return s.Formatter.Format(key, args...)
}

func writeFile(name string, img image.Image, f Format) (err error) {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, fd.Close())
		if err != nil {
			os.Remove(name)
		}
	}()
	return Encode(fd, img, f)
}

// FileName returns the name under which the icon of an object is saved,
// for example "Robot_icon_front_256x256.png".
func FileName(object string, req icon.Request, f Format) string {
	size := req.Size
	if size <= 0 {
		size = icon.DefaultSize
	}
	return fmt.Sprintf("%s_icon_%s_%dx%d.%s",
		SanitizeFileName(object), req.View(), size, size, f)
}

// invalidName matches characters which are not allowed in file names on
// common systems, as well as trailing dots.
var invalidName = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]*\.+$|[<>:"/\\|?*\x00-\x1f]`)

// SanitizeFileName replaces characters which cannot be used in file names
// by underscores.  The empty name is replaced by "Unnamed".
func SanitizeFileName(name string) string {
	if name == "" {
		return "Unnamed"
	}
	return invalidName.ReplaceAllString(name, "_")
}
