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
	"image"

	"github.com/retrogui/macmenu/fonts"
)

// NoAction is the action id of items that exist only to carry a submenu or
// to act as a separator.
const NoAction = -1

// Item is a single entry in a menu: either a top-level title on the menu
// bar, a selectable command, a separator, or the parent of a nested submenu.
//
// Item text is stored in exactly one of two flavours: a Unicode string or
// the single-byte Mac Roman encoding found in legacy menu resources. The
// flavour is preserved so that the legacy callback variant can be handed
// the original bytes.
type Item struct {
	text       string
	legacyText []byte

	action   int
	style    fonts.Style
	shortcut rune
	enabled  bool
	checked  bool

	// owned submenu. an item with a submenu never fires its action; it
	// opens the submenu instead
	submenu *SubMenu

	// screen position. only meaningful for top-level titles; dropdown rows
	// derive their position from the owning submenu's bounds
	bounds image.Rectangle
}

// label returns the display text of the item, decoding the legacy flavour
// if that is the one populated.
func (it *Item) label() string {
	if it.legacyText != nil {
		return decodeLegacy(it.legacyText)
	}
	return it.text
}

// legacyLabel returns the Mac Roman bytes of the item text, encoding the
// Unicode flavour if that is the one populated.
func (it *Item) legacyLabel() []byte {
	if it.legacyText != nil {
		return it.legacyText
	}
	return encodeLegacy(it.text)
}

// setLabel replaces the item text, preserving the flavour the item was
// created with.
func (it *Item) setLabel(label string) {
	if it.legacyText != nil {
		it.legacyText = encodeLegacy(label)
		return
	}
	it.text = label
}

// separator returns true if the item renders as a horizontal rule. A
// separator is never selectable and never matches a shortcut scan.
func (it *Item) separator() bool {
	return len(it.text) == 0 && len(it.legacyText) == 0
}

// selectable returns true if pointing at the item may highlight it.
func (it *Item) selectable() bool {
	return it.enabled && !it.separator()
}
