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
	"image/color"

	"github.com/retrogui/macmenu/fonts"
)

// dropdown and title strip geometry, in pixels
const (
	frameWidth    = 1
	titleVPadding = 2
	titleHPadding = 8
	barLeftMargin = 8
	rowVPadding   = 1
	checkGutter   = 12
	arrowGutter   = 12
	shortcutGap   = 8
)

// the classic two colour palette. disabled text is a mid grey rather than
// the original's dither pattern
var (
	colBack      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colText      = color.RGBA{A: 255}
	colDim       = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colSeparator = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Dirty returns true if the surface no longer reflects the menu state and
// Draw would repaint it.
func (b *Bar) Dirty() bool {
	return b.contentDirty || b.dimensionsDirty
}

// CalcDimensions recomputes the screen bounds of every title and of every
// open dropdown. It is called lazily by Draw when dimensions are dirty but
// hosts may call it directly, after a font change for instance.
func (b *Bar) CalcDimensions() {
	x := barLeftMargin
	for _, title := range b.items {
		w := b.font.Measure(title.label(), title.style) + 2*titleHPadding
		title.bounds = image.Rect(x, 0, x+w, b.barHeight)
		x += w
	}

	// reposition any dropdowns that are already open. nested dropdowns
	// hang off the owning item in their parent
	for i, sub := range b.menustack {
		if i == 0 {
			b.placeTitleSubMenu(b.items[b.activeTitle], sub)
			continue
		}
		for _, it := range sub.parent.items {
			if it.submenu == sub {
				b.placeNestedSubMenu(sub.parent, it)
				break
			}
		}
	}

	b.dimensionsDirty = false
	b.contentDirty = true
}

// subMenuSize returns the width and height of a dropdown's bounding box.
func (b *Bar) subMenuSize(sub *SubMenu) (int, int) {
	w := 0
	h := 2 * frameWidth
	for _, it := range sub.items {
		if it.separator() {
			h += b.sepHeight
			continue
		}
		h += b.rowHeight

		tw := b.font.Measure(it.label(), it.style)
		if it.shortcut != 0 {
			tw += shortcutGap + b.font.Measure(acceleratorString(it), fonts.StyleRegular)
		}
		if tw > w {
			w = tw
		}
	}
	return checkGutter + w + arrowGutter + 2*frameWidth, h
}

// placeTitleSubMenu positions a title's dropdown directly below its title,
// nudged left if it would otherwise fall off the surface.
func (b *Bar) placeTitleSubMenu(title *Item, sub *SubMenu) {
	w, h := b.subMenuSize(sub)
	x := title.bounds.Min.X
	if x+w > b.scr.Bounds().Max.X {
		x = b.scr.Bounds().Max.X - w
	}
	sub.bounds = image.Rect(x, b.barHeight, x+w, b.barHeight+h)
}

// placeNestedSubMenu positions the dropdown owned by an item of parent to
// the right of the item's row, slightly overlapping the parent.
func (b *Bar) placeNestedSubMenu(parent *SubMenu, it *Item) {
	w, h := b.subMenuSize(it.submenu)
	x := parent.bounds.Max.X - frameWidth*4
	if x+w > b.scr.Bounds().Max.X {
		x = parent.bounds.Min.X - w + frameWidth*4
	}
	y := b.rowTop(parent, it)
	if y+h > b.scr.Bounds().Max.Y {
		y = b.scr.Bounds().Max.Y - h
	}
	it.submenu.bounds = image.Rect(x, y, x+w, y+h)
}

// rowTop returns the y coordinate of the top of the given item's row.
func (b *Bar) rowTop(sub *SubMenu, target *Item) int {
	y := sub.bounds.Min.Y + frameWidth
	for _, it := range sub.items {
		if it == target {
			return y
		}
		if it.separator() {
			y += b.sepHeight
		} else {
			y += b.rowHeight
		}
	}
	return y
}

// Draw repaints the surface if the menu state has changed since the last
// call, or unconditionally when force is true. Returns true if the surface
// was repainted. Drawing is idempotent: a second call with no intervening
// state change repaints nothing and leaves the pixels untouched.
func (b *Bar) Draw(force bool) bool {
	if b.dimensionsDirty {
		b.CalcDimensions()
	}
	if !b.contentDirty && !force {
		return false
	}
	b.contentDirty = false

	b.scr.Clear()
	if !b.visible {
		return true
	}

	b.drawTitleStrip()
	for _, sub := range b.menustack {
		b.drawSubMenu(sub)
	}

	return true
}

func (b *Bar) drawTitleStrip() {
	strip := b.Bounds()
	b.scr.Fill(strip, colBack)
	b.scr.HLine(strip.Min.X, strip.Max.X, strip.Max.Y-1, colText)

	for i, title := range b.items {
		fg := colText
		if !title.enabled {
			fg = colDim
		}
		b.font.Draw(b.scr, title.label(), title.bounds.Min.X+titleHPadding, titleVPadding, title.style, fg)

		// the active title is highlighted by inverting it in place,
		// stopping short of the strip's bottom rule
		if i == b.activeTitle {
			hl := title.bounds
			hl.Max.Y -= frameWidth
			b.scr.Invert(hl, colBack, colText)
		}
	}
}

func (b *Bar) drawSubMenu(sub *SubMenu) {
	b.scr.Fill(sub.bounds, colBack)
	b.scr.FrameRect(sub.bounds, colText)

	y := sub.bounds.Min.Y + frameWidth
	for i, it := range sub.items {
		if it.separator() {
			ry := y + b.sepHeight/2
			b.scr.HLine(sub.bounds.Min.X+frameWidth, sub.bounds.Max.X-frameWidth, ry, colSeparator)
			y += b.sepHeight
			continue
		}

		fg := colText
		if !it.enabled {
			fg = colDim
		}

		ty := y + rowVPadding
		b.font.Draw(b.scr, it.label(), b.itemTextX(sub, it), ty, it.style, fg)

		if it.checked {
			b.drawCheckMark(sub.bounds.Min.X+frameWidth+2, ty, fg)
		}

		if it.shortcut != 0 {
			accel := acceleratorString(it)
			ax := sub.bounds.Max.X - frameWidth - arrowGutter - b.font.Measure(accel, fonts.StyleRegular)
			b.font.Draw(b.scr, accel, ax, ty, fonts.StyleRegular, fg)
		}

		if it.submenu != nil {
			b.drawSubMenuArrow(sub.bounds.Max.X-frameWidth-arrowGutter+2, y+b.rowHeight/2, fg)
		}

		// the highlighted row is inverted in place rather than being
		// repainted. only selectable rows are ever highlighted so the
		// row is plain black-on-white before the swap
		if i == sub.highlight {
			row := image.Rect(sub.bounds.Min.X+frameWidth, y, sub.bounds.Max.X-frameWidth, y+b.rowHeight)
			b.scr.Invert(row, colBack, colText)
		}

		y += b.rowHeight
	}
}

// itemTextX returns the x coordinate item text starts at, honouring the
// bar's alignment setting.
func (b *Bar) itemTextX(sub *SubMenu, it *Item) int {
	left := sub.bounds.Min.X + frameWidth + checkGutter
	right := sub.bounds.Max.X - frameWidth - arrowGutter
	w := b.font.Measure(it.label(), it.style)

	switch b.align {
	case AlignCenter:
		return left + (right-left-w)/2
	case AlignRight:
		return right - w
	}
	return left
}

// acceleratorString is the text drawn in the shortcut column of an item.
func acceleratorString(it *Item) string {
	if it.shortcut == 0 {
		return ""
	}
	return "Cmd+" + string(it.shortcut)
}

// drawCheckMark draws the check glyph with its top-left at (x, y).
func (b *Bar) drawCheckMark(x int, y int, col color.RGBA) {
	h := b.font.Height()
	// a simple two stroke check scaled to the font height
	for i := 0; i < h/3; i++ {
		b.scr.Set(x+i, y+h/2+i, col)
		b.scr.Set(x+i, y+h/2+i+1, col)
	}
	for i := 0; i < h/2; i++ {
		b.scr.Set(x+h/3+i, y+h/2+h/3-i-1, col)
		b.scr.Set(x+h/3+i, y+h/2+h/3-i, col)
	}
}

// drawSubMenuArrow draws a right-pointing triangle centred vertically on
// cy.
func (b *Bar) drawSubMenuArrow(x int, cy int, col color.RGBA) {
	for i := 0; i < 4; i++ {
		b.scr.VLine(x+i, cy-(3-i), cy+(4-i), col)
	}
}
