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

package resource

import (
	"fmt"

	"github.com/retrogui/macmenu/curated"
	"github.com/retrogui/macmenu/fonts"
	"github.com/retrogui/macmenu/logger"
	"github.com/retrogui/macmenu/menu"
)

// item record flag bits in an executable menu template
const (
	exeFlagEnabled = 0x01
	exeFlagChecked = 0x02
)

// staging records. nothing touches the target Bar until the whole table
// has decoded cleanly
type exeMenu struct {
	title string
	items []exeItem
}

type exeItem struct {
	depth    int
	action   int
	style    byte
	shortcut byte
	flags    byte
	label    string
}

// ReadExecutableTable decodes a menu template table embedded in an
// executable and appends its menus to the bar. The layout, all
// little-endian:
//
//	uint16          number of menu templates
//	per template:
//	  utf16 string  title (uint16 character count, then UTF-16LE text)
//	  uint16        item count
//	  per item:
//	    uint16        nesting depth (0 = directly below the title)
//	    int16         action id
//	    uint8         style byte
//	    uint8         shortcut character
//	    uint8         flags (bit 0 enabled, bit 1 checked)
//	    utf16 string  label (empty = separator)
//
// Submenu structure is carried by the depth fields: a record one deeper
// than its predecessor opens a submenu under that predecessor, a shallower
// record closes levels. A depth that skips levels fails the decode.
func ReadExecutableTable(bar *menu.Bar, data []byte) error {
	r := &reader{data: data}

	n, err := r.uint16LE()
	if err != nil {
		return curated.Errorf(MalformedResource, err)
	}

	menus := make([]*exeMenu, 0, n)
	for i := 0; i < int(n); i++ {
		m, err := decodeExeMenu(r)
		if err != nil {
			return curated.Errorf(MalformedResource, err)
		}
		menus = append(menus, m)
	}

	for _, m := range menus {
		if err := attachExe(bar, m); err != nil {
			// structure errors are caught before attaching begins; this
			// cannot happen halfway through a menu
			return curated.Errorf(MalformedResource, err)
		}
	}
	logger.Logf("resource", "executable menu table: %d menus", len(menus))
	return nil
}

func decodeExeMenu(r *reader) (*exeMenu, error) {
	m := &exeMenu{}

	var err error
	if m.title, err = r.utf16String(); err != nil {
		return nil, err
	}

	n, err := r.uint16LE()
	if err != nil {
		return nil, err
	}

	prev := -1
	for i := 0; i < int(n); i++ {
		var it exeItem

		d, err := r.uint16LE()
		if err != nil {
			return nil, err
		}
		it.depth = int(d)

		a, err := r.uint16LE()
		if err != nil {
			return nil, err
		}
		it.action = int(int16(a))

		if it.style, err = r.readByte(); err != nil {
			return nil, err
		}
		if it.shortcut, err = r.readByte(); err != nil {
			return nil, err
		}
		if it.flags, err = r.readByte(); err != nil {
			return nil, err
		}
		if it.label, err = r.utf16String(); err != nil {
			return nil, err
		}

		if it.depth > prev+1 {
			return nil, fmt.Errorf("invalid nesting depth (%d)", it.depth)
		}
		prev = it.depth

		m.items = append(m.items, it)
	}

	return m, nil
}

// attachExe converts the flat, depth-coded item list into the owned tree
// shape shared with the resource fork decoder.
func attachExe(bar *menu.Bar, m *exeMenu) error {
	idx := bar.AddItem(nil, m.title, menu.NoAction, 0, 0, true, false)
	stack := []*menu.SubMenu{bar.AddSubMenu(nil, idx)}

	for _, it := range m.items {
		if it.depth > len(stack)-1 {
			// a deeper record opens a submenu under the last item added at
			// the previous level
			parent := stack[len(stack)-1]
			sub := bar.AddSubMenu(parent, -1)
			if sub == nil {
				return fmt.Errorf("invalid nesting depth (%d)", it.depth)
			}
			stack = append(stack, sub)
		} else {
			stack = stack[:it.depth+1]
		}

		var shortcut rune
		if it.shortcut != 0 {
			shortcut = rune(it.shortcut)
		}

		bar.AddItem(stack[len(stack)-1], it.label, it.action, fonts.Style(it.style), shortcut,
			it.flags&exeFlagEnabled == exeFlagEnabled,
			it.flags&exeFlagChecked == exeFlagChecked)
	}

	return nil
}
