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
	"strings"
)

// Message keys passed to a [Formatter].  The comment after each key lists
// the arguments.
const (
	MsgNoRenderers      = "NoRenderersInClone"                 // object
	MsgInvalidBounds    = "InvalidBoundsForClone"              // object
	MsgFullyTransparent = "FullyTransparent"                   // object, size
	MsgInternalError    = "InternalGenerationError"            // object, error
	MsgNothingCombined  = "NoActiveProcessableObjectsCombined" // -
	MsgComplete         = "GenerationComplete"                 // file
	MsgFailed           = "GenerationFailedError"              // object
	MsgError            = "GenerationError"                    // object, error
	MsgDirectoryError   = "DirectoryCreationError"             // directory, error
	MsgSaveError        = "ErrorSavingTextureFile"             // file, error
	MsgProgressTitle    = "IconGenerationProgress"             // -
	MsgProcessing       = "ProcessingIndividual"               // object, index, count
	MsgFinalizing       = "FinalizingProgress"                 // object
	MsgCombined         = "CombinedIcon"                       // -
)

// Formatter turns message keys into user visible text.
type Formatter interface {
	Format(key string, args ...any) string
}

// keyFormatter is used when no Formatter is configured.  It prints the key
// followed by the arguments.
type keyFormatter struct{}

func (keyFormatter) Format(key string, args ...any) string {
	if len(args) == 0 {
		return key
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return key + ": " + strings.Join(parts, ", ")
}
