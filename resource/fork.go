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

// MalformedResource is returned when a menu resource cannot be decoded:
// a truncated record, an unterminated item list, or a cyclic submenu
// reference. The target Bar is left exactly as it was.
const MalformedResource = "malformed menu resource: %v"

// Provider supplies raw menu resource records by id. How the record bytes
// are located (resource fork, archive, test fixture) is the provider's
// business.
type Provider interface {
	MenuResource(id uint16) ([]byte, error)
}

// an item whose shortcut-key byte holds this marker opens the submenu
// whose resource id is in the mark byte, rather than binding a shortcut
const hierarchicalMarker = 0x1b

// staging tree. nothing touches the target Bar until the whole resource
// chain has decoded cleanly
type forkMenu struct {
	title []byte
	items []forkItem
}

type forkItem struct {
	label   []byte
	key     byte
	mark    byte
	style   byte
	submenu *forkMenu
}

// ReadMenu decodes the menu resource with the given id and appends it to
// the bar as a new title. Hierarchical items are resolved through prov
// recursively; a resource that leads back to an id already on the
// recursion path fails the decode.
func ReadMenu(bar *menu.Bar, prov Provider, id uint16) error {
	m, err := decodeFork(prov, id, map[uint16]bool{})
	if err != nil {
		return curated.Errorf(MalformedResource, err)
	}

	attachFork(bar, m)
	logger.Logf("resource", "menu resource %d: %d items", id, len(m.items))
	return nil
}

// ReadMenuBar decodes a menu bar resource: a count followed by the
// resource ids of the menus on the bar, each of which is decoded as by
// ReadMenu. Nothing is attached unless every menu decodes.
func ReadMenuBar(bar *menu.Bar, prov Provider, id uint16) error {
	data, err := prov.MenuResource(id)
	if err != nil {
		return curated.Errorf(MalformedResource, err)
	}

	r := &reader{data: data}
	n, err := r.uint16BE()
	if err != nil {
		return curated.Errorf(MalformedResource, err)
	}

	menus := make([]*forkMenu, 0, n)
	for i := 0; i < int(n); i++ {
		mid, err := r.uint16BE()
		if err != nil {
			return curated.Errorf(MalformedResource, err)
		}
		m, err := decodeFork(prov, mid, map[uint16]bool{})
		if err != nil {
			return curated.Errorf(MalformedResource, err)
		}
		menus = append(menus, m)
	}

	for _, m := range menus {
		attachFork(bar, m)
	}
	logger.Logf("resource", "menu bar resource %d: %d menus", id, len(menus))
	return nil
}

func decodeFork(prov Provider, id uint16, path map[uint16]bool) (*forkMenu, error) {
	if path[id] {
		return nil, fmt.Errorf("cyclic submenu reference (id %d)", id)
	}
	path[id] = true
	defer delete(path, id)

	data, err := prov.MenuResource(id)
	if err != nil {
		return nil, err
	}

	r := &reader{data: data}
	m := &forkMenu{}

	m.title, err = r.pstring()
	if err != nil {
		return nil, err
	}

	for {
		label, err := r.pstring()
		if err != nil {
			return nil, fmt.Errorf("unterminated item list: %v", err)
		}
		if len(label) == 0 {
			break // end-of-submenu marker
		}

		it := forkItem{label: label}
		if _, err = r.readByte(); err != nil { // icon index, unused
			return nil, err
		}
		if it.key, err = r.readByte(); err != nil {
			return nil, err
		}
		if it.mark, err = r.readByte(); err != nil {
			return nil, err
		}
		if it.style, err = r.readByte(); err != nil {
			return nil, err
		}

		if it.key == hierarchicalMarker {
			it.submenu, err = decodeFork(prov, uint16(it.mark), path)
			if err != nil {
				return nil, err
			}
			it.key = 0
			it.mark = 0
		}

		m.items = append(m.items, it)
	}

	return m, nil
}

// attachFork builds the staged tree into the bar. Leaf items are assigned
// sequential action ids in display order; parents and separators get
// NoAction. Resource forks carry no action field of their own so display
// order is the only stable identity the host can hook on.
func attachFork(bar *menu.Bar, m *forkMenu) {
	idx := bar.AddLegacyItem(nil, m.title, menu.NoAction, 0, 0, true, false)
	sub := bar.AddSubMenu(nil, idx)

	action := 0
	attachForkItems(bar, sub, m.items, &action)
}

func attachForkItems(bar *menu.Bar, sub *menu.SubMenu, items []forkItem, action *int) {
	for _, it := range items {
		label := it.label

		// the classic one-dash separator convention
		if len(label) == 1 && label[0] == '-' {
			label = nil
		}

		a := menu.NoAction
		if it.submenu == nil && label != nil {
			a = *action
			*action++
		}

		var shortcut rune
		if it.key != 0 {
			shortcut = rune(it.key)
		}

		i := bar.AddLegacyItem(sub, label, a, fonts.Style(it.style), shortcut, true, it.mark != 0)

		if it.submenu != nil {
			child := bar.AddSubMenu(sub, i)
			attachForkItems(bar, child, it.submenu.items, action)
		}
	}
}
