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

package testcases

import (
	"embed"

	"seehuhn.de/go/icon"
	"seehuhn.de/go/icon/scene"
)

//go:embed scenes/*.yaml
var scenes embed.FS

// fromFile returns a function which loads a scene description from the
// scenes directory.
func fromFile(name string) func() *scene.Node {
	return func() *scene.Node {
		f, err := scenes.Open("scenes/" + name)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		n, err := scene.Read(f)
		if err != nil {
			panic(err)
		}
		return n
	}
}

var fileCases = []TestCase{
	{
		Name:    "lamp",
		Build:   fromFile("lamp.yaml"),
		Request: small,
		Want:    Want{Inside: true},
	},
	{
		Name:    "lamp_left",
		Build:   fromFile("lamp.yaml"),
		Request: view(icon.Left),
		Want:    Want{Inside: true},
	},
}
