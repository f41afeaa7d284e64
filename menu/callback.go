// This file is part of MacMenu.
//
// MacMenu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MacMenu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MacMenu.  If not, see <https://www.gnu.org/licenses/>.

package menu

import (
	"github.com/retrogui/macmenu/logger"
)

// LegacyCallback receives selections with the item label in its original
// Mac Roman bytes. Items created from Unicode text are encoded on the way
// out.
type LegacyCallback func(action int, label []byte)

// UnicodeCallback receives selections with the item label as a string.
// Items created from legacy text are decoded on the way out.
type UnicodeCallback func(action int, label string)

// a single callback slot holds exactly one of the two variants. whichever
// registration call was made last wins
type commandCallback struct {
	legacy  LegacyCallback
	unicode UnicodeCallback
}

// SetLegacyCallback registers the legacy selection callback, replacing any
// callback of either variant registered before it.
func (b *Bar) SetLegacyCallback(callback LegacyCallback) {
	if b.callback.legacy != nil || b.callback.unicode != nil {
		logger.Log("menu", "selection callback replaced")
	}
	b.callback = commandCallback{legacy: callback}
}

// SetUnicodeCallback registers the Unicode selection callback, replacing
// any callback of either variant registered before it.
func (b *Bar) SetUnicodeCallback(callback UnicodeCallback) {
	if b.callback.legacy != nil || b.callback.unicode != nil {
		logger.Log("menu", "selection callback replaced")
	}
	b.callback = commandCallback{unicode: callback}
}

// fire invokes whichever callback variant is registered with the item's
// action and label. Items never fire through here unless they are enabled
// leaves; callers guarantee that.
func (b *Bar) fire(it *Item) {
	switch {
	case b.callback.unicode != nil:
		b.callback.unicode(it.action, it.label())
	case b.callback.legacy != nil:
		b.callback.legacy(it.action, it.legacyLabel())
	}
}
