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

// Package messages provides the user visible texts of the icon generator
// in English, Korean and Japanese.
package messages

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"seehuhn.de/go/icon"
)

// supported lists the available languages.  The first entry is the
// fallback.
var supported = []language.Tag{
	language.English,
	language.Korean,
	language.Japanese,
}

var tables = map[language.Tag]map[string]string{
	language.English:  english,
	language.Korean:   korean,
	language.Japanese: japanese,
}

var builder = sync.OnceValue(func() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, table := range tables {
		for key, msg := range table {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("messages: %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
})

var matcher = language.NewMatcher(supported)

// Catalog formats messages in one language.  It implements
// [icon.Formatter].
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

var _ icon.Formatter = (*Catalog)(nil)

// New returns a catalog for the best match of the given BCP 47 language
// tag.  If lang is empty, the language of the operating system is used.
// Unsupported languages fall back to English.
func New(lang string) *Catalog {
	if lang == "" {
		lang = SystemLanguage()
	}
	tag := Match(lang)
	return &Catalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder())),
	}
}

// Match returns the supported language which best matches lang.
func Match(lang string) language.Tag {
	req, err := language.Parse(lang)
	if err != nil {
		return supported[0]
	}
	_, idx, conf := matcher.Match(req)
	if conf == language.No {
		return supported[0]
	}
	return supported[idx]
}

// SystemLanguage returns the language configured in the operating system,
// or "en" if it cannot be determined.
func SystemLanguage() string {
	l, err := locale.GetLocale()
	if err != nil || l == "" {
		return "en"
	}
	// POSIX locales look like "ko_KR.UTF-8"
	l, _, _ = strings.Cut(l, ".")
	return strings.ReplaceAll(l, "_", "-")
}

// Supported returns the languages for which translations exist.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// DisplayName returns the name of the language tag in that language, for
// example "한국어" for Korean.
func DisplayName(tag language.Tag) string {
	return display.Self.Name(tag)
}

// Language returns the language of the catalog.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Format returns the text for the given key, with the arguments filled in.
// Unknown keys are returned as they are, followed by the arguments.
func (c *Catalog) Format(key string, args ...any) string {
	if _, ok := english[key]; !ok {
		icon.Logger().Warn("unknown message key", "key", key)
		if len(args) == 0 {
			return key
		}
		return key + ": " + strings.TrimSuffix(fmt.Sprintln(args...), "\n")
	}
	return c.printer.Sprintf(key, args...)
}
