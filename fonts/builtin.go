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
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Builtin is a Font built on the basicfont face from x/image. Bold is
// synthesised by double-striking one pixel to the right, italic by shearing
// the glyph rows, underline by a one pixel rule under the baseline.
//
// It exists so the package is usable without the host wiring in a real font
// backend. Hosts with proper bitmap fonts should implement Font themselves.
type Builtin struct {
	face *basicfont.Face
}

// NewBuiltin is the preferred method of initialisation for the Builtin type.
func NewBuiltin() *Builtin {
	return &Builtin{face: basicfont.Face7x13}
}

// Measure implements the Font interface.
func (f *Builtin) Measure(text string, style Style) int {
	w := font.MeasureString(f.face, text).Ceil()
	if style&StyleBold == StyleBold {
		w++
	}
	if style&StyleItalic == StyleItalic {
		w += f.shear(0)
	}
	return w
}

// Height implements the Font interface.
func (f *Builtin) Height() int {
	return f.face.Height
}

// Draw implements the Font interface.
func (f *Builtin) Draw(dst draw.Image, text string, x int, y int, style Style, col color.RGBA) {
	h := f.face.Height
	w := f.Measure(text, style)
	if w == 0 {
		return
	}

	// glyphs are drawn to a scratch image first so that style synthesis can
	// work on whole rows of pixels
	scratch := image.NewRGBA(image.Rect(0, 0, w, h))

	d := font.Drawer{
		Dst:  scratch,
		Src:  &image.Uniform{col},
		Face: f.face,
		Dot:  fixed.P(0, f.face.Ascent),
	}
	d.DrawString(text)

	if style&StyleBold == StyleBold {
		d.Dot = fixed.P(1, f.face.Ascent)
		d.DrawString(text)
	}

	if style&StyleUnderline == StyleUnderline {
		ry := f.face.Ascent + 1
		for rx := 0; rx < w; rx++ {
			scratch.SetRGBA(rx, ry, col)
		}
	}

	if style&StyleItalic == StyleItalic {
		f.italicise(scratch)
	}

	draw.Draw(dst, image.Rect(x, y, x+w, y+h), scratch, image.Point{}, draw.Over)
}

// shear returns the horizontal offset applied to scratch row ry when
// synthesising italics.
func (f *Builtin) shear(ry int) int {
	return (f.face.Height - ry) / 4
}

// italicise shifts each row of the scratch image to the right according to
// its distance from the bottom of the glyph.
func (f *Builtin) italicise(scratch *image.RGBA) {
	b := scratch.Bounds()
	for ry := b.Min.Y; ry < b.Max.Y; ry++ {
		off := f.shear(ry)
		if off == 0 {
			continue
		}
		for rx := b.Max.X - 1; rx >= b.Min.X; rx-- {
			var p color.RGBA
			if rx-off >= b.Min.X {
				p = scratch.RGBAAt(rx-off, ry)
			}
			scratch.SetRGBA(rx, ry, p)
		}
	}
}
