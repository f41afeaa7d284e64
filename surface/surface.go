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

package surface

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/retrogui/macmenu/curated"
)

// InvalidSize is returned when a surface is created with a width or height
// of less than one pixel.
const InvalidSize = "surface: invalid size (%dx%d)"

// number of bytes per pixel. the pixel format is RGBA with one byte per
// channel, which is also what the SDL streaming texture in the gui package
// expects.
const pixelDepth = 4

// Surface is an owned RGBA pixel buffer. It implements draw.Image so that
// text drawing through the x/image font.Drawer can target it directly.
//
// A Surface is exclusively owned by whatever widget renders into it. The
// owner draws, the host blits. Nothing else touches the pixels.
type Surface struct {
	rgba *image.RGBA
}

// NewSurface is the preferred method of initialisation for the Surface type.
func NewSurface(w, h int) (*Surface, error) {
	if w < 1 || h < 1 {
		return nil, curated.Errorf(InvalidSize, w, h)
	}
	return &Surface{
		rgba: image.NewRGBA(image.Rect(0, 0, w, h)),
	}, nil
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return s.rgba.ColorModel()
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return s.rgba.Bounds()
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.rgba.At(x, y)
}

// Set implements the draw.Image interface.
func (s *Surface) Set(x, y int, c color.Color) {
	s.rgba.Set(x, y, c)
}

// Pixels returns the raw RGBA pixel data. The slice aliases the surface's
// backing store; it is valid until the surface is discarded.
func (s *Surface) Pixels() []byte {
	return s.rgba.Pix
}

// Pitch returns the number of bytes in one row of pixels.
func (s *Surface) Pitch() int {
	return s.rgba.Stride
}

// Clear sets every pixel, including alpha, to zero. A cleared pixel is
// transparent to the compositing host.
func (s *Surface) Clear() {
	for i := range s.rgba.Pix {
		s.rgba.Pix[i] = 0
	}
}

// Fill floods the intersection of r and the surface bounds with a single
// colour.
func (s *Surface) Fill(r image.Rectangle, c color.RGBA) {
	draw.Draw(s.rgba, r.Intersect(s.rgba.Bounds()), &image.Uniform{c}, image.Point{}, draw.Src)
}

// FrameRect outlines the intersection of r and the surface bounds. The
// outline is one pixel wide and sits just inside r.
func (s *Surface) FrameRect(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(s.rgba.Bounds())
	if r.Empty() {
		return
	}
	s.HLine(r.Min.X, r.Max.X, r.Min.Y, c)
	s.HLine(r.Min.X, r.Max.X, r.Max.Y-1, c)
	s.VLine(r.Min.X, r.Min.Y, r.Max.Y, c)
	s.VLine(r.Max.X-1, r.Min.Y, r.Max.Y, c)
}

// HLine draws a horizontal run of pixels on row y, from x0 up to but not
// including x1.
func (s *Surface) HLine(x0, x1, y int, c color.RGBA) {
	b := s.rgba.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if x0 < b.Min.X {
		x0 = b.Min.X
	}
	if x1 > b.Max.X {
		x1 = b.Max.X
	}
	for x := x0; x < x1; x++ {
		s.rgba.SetRGBA(x, y, c)
	}
}

// VLine draws a vertical run of pixels on column x, from y0 up to but not
// including y1.
func (s *Surface) VLine(x, y0, y1 int, c color.RGBA) {
	b := s.rgba.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	if y0 < b.Min.Y {
		y0 = b.Min.Y
	}
	if y1 > b.Max.Y {
		y1 = b.Max.Y
	}
	for y := y0; y < y1; y++ {
		s.rgba.SetRGBA(x, y, c)
	}
}

// Invert swaps every pixel in the intersection of r and the surface bounds
// between the two supplied colours. Pixels matching neither colour are left
// alone. This is how highlighted rows are drawn without repainting text.
func (s *Surface) Invert(r image.Rectangle, a, b color.RGBA) {
	r = r.Intersect(s.rgba.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p := s.rgba.RGBAAt(x, y)
			switch p {
			case a:
				s.rgba.SetRGBA(x, y, b)
			case b:
				s.rgba.SetRGBA(x, y, a)
			}
		}
	}
}
