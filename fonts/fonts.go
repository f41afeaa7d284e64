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

package fonts

import (
	"image/color"
	"image/draw"
)

// Style is the QuickDraw style bitset carried by every menu item. The values
// are the same as the style byte found in menu resources, so a decoded style
// byte can be used directly.
type Style int

// List of style bits.
const (
	StyleRegular   Style = 0x00
	StyleBold      Style = 0x01
	StyleItalic    Style = 0x02
	StyleUnderline Style = 0x04
	StyleOutline   Style = 0x08
	StyleShadow    Style = 0x10
	StyleCondensed Style = 0x20
	StyleExtended  Style = 0x40
)

// Font is the text measurement/drawing capability a menu needs from its
// host. A Font implementation is expected to honour at least the bold,
// italic and underline style bits; the remaining bits may be ignored.
type Font interface {
	// Measure returns the width in pixels of text when drawn in the given
	// style.
	Measure(text string, style Style) int

	// Height returns the row height of the font in pixels. It does not vary
	// with style.
	Height() int

	// Draw renders text onto dst with the top-left of the text at (x, y).
	Draw(dst draw.Image, text string, x int, y int, style Style, col color.RGBA)
}
