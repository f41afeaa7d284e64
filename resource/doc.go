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

// Package resource decodes binary menu resources into a menu.Bar. Two
// encodings are supported.
//
// Resource fork menus (ReadMenu, ReadMenuBar) are the native big-endian
// format: a length-prefixed Mac Roman title followed by item records, each
// a length-prefixed label plus icon, shortcut-key, mark and style bytes,
// ended by a zero-length label. An item whose key byte is 0x1b opens the
// submenu whose resource id is held in its mark byte; the referenced
// resource is fetched from the Provider and decoded recursively. A
// reference cycle fails the decode.
//
// Executable menu tables (ReadExecutableTable) are the little-endian
// format found embedded in executables: a table of templates with UTF-16
// labels and a flat item list whose nesting is carried by a per-record
// depth field.
//
// Both decoders are atomic. On any failure they return an error matching
// the MalformedResource pattern and the target Bar keeps its previous
// tree, empty or otherwise.
package resource
