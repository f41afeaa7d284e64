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

// Package fonts defines the Font capability the menu package measures and
// draws text with, along with the QuickDraw style bitset shared by menu
// items and menu resources.
//
// The Builtin implementation wraps the fixed-size basicfont face from
// x/image and synthesises the bold/italic/underline styles in software.
package fonts
