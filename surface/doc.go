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

// Package surface provides the pixel buffer that widgets render into. It is
// deliberately small: an RGBA buffer with the handful of primitives a
// software-rendered widget needs (fill, frame, horizontal/vertical lines,
// row inversion) and nothing resembling a drawing library.
//
// The Pixels() and Pitch() functions expose the buffer in the form expected
// by SDL streaming textures, which is how the gui package presents the
// surface on screen.
package surface
