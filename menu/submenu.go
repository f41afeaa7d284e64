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
)

// SubMenu is an ordered list of items displayed as a dropdown panel.
// Insertion order is display order.
type SubMenu struct {
	items []*Item

	// screen position while open. assigned when the submenu is pushed onto
	// the navigation stack; the width/height pair is recomputed whenever
	// the bar's dimensions are dirty
	bounds image.Rectangle

	// the submenu whose item owns this submenu. nil when owned by a
	// top-level title. the back-reference locates the owning level when
	// open dropdowns are repositioned after a dimension change
	parent *SubMenu

	// index of the currently highlighted item, -1 for none. kept per
	// submenu so that a parent row stays highlighted while its child is
	// open
	highlight int
}

func newSubMenu(parent *SubMenu) *SubMenu {
	return &SubMenu{
		parent:    parent,
		highlight: -1,
	}
}

// Len returns the number of items in the submenu, separators included.
func (s *SubMenu) Len() int {
	return len(s.items)
}

// itemAt returns the indexed item, or nil when the index is out of range.
func (s *SubMenu) itemAt(idx int) *Item {
	if idx < 0 || idx >= len(s.items) {
		return nil
	}
	return s.items[idx]
}

// findByLabel searches the submenu and, recursively, any nested submenus
// for an item with the given display label. Returns nil when there is no
// match.
func (s *SubMenu) findByLabel(label string) *Item {
	for _, it := range s.items {
		if !it.separator() && it.label() == label {
			return it
		}
	}
	for _, it := range s.items {
		if it.submenu != nil {
			if m := it.submenu.findByLabel(label); m != nil {
				return m
			}
		}
	}
	return nil
}
