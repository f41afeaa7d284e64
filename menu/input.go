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
	"unicode"

	"github.com/retrogui/macmenu/userinput"
)

// State describes where the menu is in its input cycle.
type State int

// List of valid State values. TitleHighlighted occurs only for titles with
// no attached submenu; a title with a submenu, even an empty one, moves
// straight to SubmenuOpen with the submenu as the first navigation level.
const (
	Closed State = iota
	TitleHighlighted
	SubmenuOpen
)

// State returns the current input state.
func (b *Bar) State() State {
	if b.activeTitle == -1 {
		return Closed
	}
	if len(b.menustack) == 0 {
		return TitleHighlighted
	}
	return SubmenuOpen
}

// Depth returns the number of open submenu levels. Zero when the menu is
// closed or only a bare title is highlighted.
func (b *Bar) Depth() int {
	return len(b.menustack)
}

// ActiveTitleIndex returns the position of the open title, or -1 when the
// menu is closed.
func (b *Bar) ActiveTitleIndex() int {
	return b.activeTitle
}

// ActiveSubIndex returns the highlighted item position within the deepest
// open submenu, or -1 when nothing is highlighted.
func (b *Bar) ActiveSubIndex() int {
	if len(b.menustack) == 0 {
		return -1
	}
	return b.menustack[len(b.menustack)-1].highlight
}

// CloseMenu collapses the whole navigation stack without firing a
// callback. Safe to call in any state.
func (b *Bar) CloseMenu() {
	if b.activeTitle == -1 {
		return
	}
	for _, sub := range b.menustack {
		sub.highlight = -1
	}
	b.menustack = b.menustack[:0]
	b.activeTitle = -1
	b.hoverCount = 0
	b.contentDirty = true
}

// ProcessEvent applies one input event to the menu. The return value tells
// the host whether the menu consumed the event; a consumed event must not
// be forwarded to any other input handler. While the menu is open every
// pointer and key event is consumed, which is what gives the menu its
// exclusive capture.
func (b *Bar) ProcessEvent(event userinput.Event) bool {
	if !b.visible {
		return false
	}

	switch ev := event.(type) {
	case userinput.EventMouseButton:
		if ev.Button != userinput.MouseButtonLeft {
			return b.State() != Closed
		}
		if ev.Down {
			return b.mouseDown(ev.X, ev.Y)
		}
		return b.mouseUp(ev.X, ev.Y)

	case userinput.EventMouseMotion:
		return b.mouseMove(ev.X, ev.Y)

	case userinput.EventKeyboard:
		return b.keyEvent(ev)

	case userinput.EventFocus:
		if !ev.Focused {
			open := b.State() != Closed
			b.CloseMenu()
			return open
		}

	case userinput.EventQuit:
		// close but leave the event for the host
		b.CloseMenu()
	}

	return false
}

// RunModal drives the menu from src until it returns to the Closed state,
// drawing after every processed event. commit, if not nil, is called
// whenever the surface may have changed so the host can present it.
//
// The loop busy-polls the source, mirroring the exclusive-focus menus this
// system imitates. Hosts that cannot afford a blocked thread can feed
// ProcessEvent directly instead; the two paths are equivalent.
func (b *Bar) RunModal(src userinput.Source, commit func()) {
	for b.State() != Closed {
		ev := src.PollEvent()
		if ev == nil {
			continue
		}
		b.ProcessEvent(ev)
		if b.Draw(false) && commit != nil {
			commit()
		}
	}
}

func (b *Bar) mouseDown(x int, y int) bool {
	if y < b.barHeight {
		if idx := b.titleAt(x, y); idx != -1 {
			if b.items[idx].enabled && idx != b.activeTitle {
				b.openTitle(idx)
			}
			return true
		}
		// clicks on the empty part of the strip are not the menu's
		return b.State() != Closed
	}

	if b.State() == Closed {
		return false
	}

	// pointer-down while open behaves like motion. the decision to select
	// or dismiss belongs to pointer-up
	b.mouseMove(x, y)
	return true
}

func (b *Bar) mouseUp(x int, y int) bool {
	if b.State() == Closed {
		return false
	}

	var selected *Item
	if sub, idx := b.submenuAt(x, y); sub != nil && idx != -1 {
		it := sub.itemAt(idx)
		if it != nil && it.selectable() && it.submenu == nil {
			selected = it
		}
	}

	// the menu always closes on pointer-up, whether or not a selection was
	// made. the callback must fire after the state has collapsed so that a
	// callback which reopens or mutates the menu sees it closed
	b.CloseMenu()

	if selected != nil {
		b.fire(selected)
	}
	return true
}

func (b *Bar) mouseMove(x int, y int) bool {
	if b.State() == Closed {
		return false
	}

	// dragging across the title strip switches menus
	if y < b.barHeight {
		if idx := b.titleAt(x, y); idx != -1 && idx != b.activeTitle && b.items[idx].enabled {
			b.openTitle(idx)
		}
		return true
	}

	sub, idx := b.submenuAt(x, y)
	if sub == nil {
		// outside every open dropdown. clear the deepest highlight but
		// keep the menu open; the event is still captured
		b.setHighlight(b.deepest(), -1)
		return true
	}

	// pointer is over sub. anything deeper than it is popped, except when
	// the pointer is on the very row that owns the deeper level
	b.popTo(sub, idx)
	b.setHighlight(sub, idx)

	// push the highlighted item's submenu after the hover delay
	if it := sub.itemAt(idx); it != nil && it.selectable() && it.submenu != nil && b.deepest() == sub {
		if b.hoverCount >= b.hoverDelay {
			b.push(it)
		} else {
			b.hoverCount++
		}
	}

	return true
}

func (b *Bar) keyEvent(ev userinput.EventKeyboard) bool {
	open := b.State() != Closed

	if !ev.Down {
		return open
	}

	if ev.Mod == b.shortcutMod && len(ev.Key) > 0 {
		if b.shortcut([]rune(ev.Key)[0]) {
			return true
		}
		return open
	}

	if open && ev.Key == "Escape" {
		b.CloseMenu()
		return true
	}

	return open
}

// shortcut scans for an enabled leaf item bound to the given character and
// fires the callback on a match. Titles are scanned left to right, items
// top to bottom and depth first. A disabled title or a disabled ancestor
// item vetoes its whole branch. Returns true if a callback fired.
//
// The scan never opens the menu; a shortcut selection from the Closed
// state is externally indistinguishable from an instantaneous one.
func (b *Bar) shortcut(key rune) bool {
	key = unicode.ToUpper(key)

	for _, title := range b.items {
		if !title.enabled || title.submenu == nil {
			continue
		}
		if it := scanShortcut(title.submenu, key); it != nil {
			b.CloseMenu()
			b.fire(it)
			return true
		}
	}
	return false
}

func scanShortcut(sub *SubMenu, key rune) *Item {
	for _, it := range sub.items {
		if !it.selectable() {
			continue
		}
		if it.submenu != nil {
			if m := scanShortcut(it.submenu, key); m != nil {
				return m
			}
			continue
		}
		if it.shortcut != 0 && unicode.ToUpper(it.shortcut) == key {
			return it
		}
	}
	return nil
}

// openTitle makes the indexed title active, collapsing any previously open
// chain and pushing the title's submenu as the first navigation level.
func (b *Bar) openTitle(idx int) {
	for _, sub := range b.menustack {
		sub.highlight = -1
	}
	b.menustack = b.menustack[:0]
	b.activeTitle = idx
	b.hoverCount = 0

	if sub := b.items[idx].submenu; sub != nil {
		b.placeTitleSubMenu(b.items[idx], sub)
		b.menustack = append(b.menustack, sub)
	}
	b.contentDirty = true
}

// push opens the submenu owned by it, which must be the highlighted item
// of the deepest open submenu.
func (b *Bar) push(it *Item) {
	parent := b.deepest()
	b.placeNestedSubMenu(parent, it)
	it.submenu.highlight = -1
	b.menustack = append(b.menustack, it.submenu)
	b.hoverCount = 0
	b.contentDirty = true
}

// popTo collapses the stack down to sub. The level directly above sub
// survives when the pointer is on the row that owns it, so that moving
// along a parent row does not flicker its child away.
func (b *Bar) popTo(sub *SubMenu, idx int) {
	d := -1
	for i, s := range b.menustack {
		if s == sub {
			d = i
			break
		}
	}
	if d == -1 {
		return
	}

	keep := d + 1
	if keep < len(b.menustack) {
		if it := sub.itemAt(idx); it != nil && it.submenu == b.menustack[keep] {
			keep++
		}
	}
	if keep >= len(b.menustack) {
		return
	}

	for _, s := range b.menustack[keep:] {
		s.highlight = -1
	}
	b.menustack = b.menustack[:keep]
	b.hoverCount = 0
	b.contentDirty = true
}

func (b *Bar) deepest() *SubMenu {
	if len(b.menustack) == 0 {
		return nil
	}
	return b.menustack[len(b.menustack)-1]
}

func (b *Bar) setHighlight(sub *SubMenu, idx int) {
	if sub == nil {
		return
	}
	if it := sub.itemAt(idx); it == nil || !it.selectable() {
		idx = -1
	}
	if sub.highlight == idx {
		return
	}
	sub.highlight = idx
	b.hoverCount = 0
	b.contentDirty = true
}

// titleAt returns the index of the title whose strip bounds contain the
// point, or -1.
func (b *Bar) titleAt(x int, y int) int {
	for i, title := range b.items {
		if x >= title.bounds.Min.X && x < title.bounds.Max.X && y >= title.bounds.Min.Y && y < title.bounds.Max.Y {
			return i
		}
	}
	return -1
}

// submenuAt returns the innermost open submenu whose bounds contain the
// point, along with the index of the row under the point (-1 when the
// point is on the frame or padding). Returns (nil, -1) when the point is
// outside every open dropdown.
func (b *Bar) submenuAt(x int, y int) (*SubMenu, int) {
	for i := len(b.menustack) - 1; i >= 0; i-- {
		sub := b.menustack[i]
		if x >= sub.bounds.Min.X && x < sub.bounds.Max.X && y >= sub.bounds.Min.Y && y < sub.bounds.Max.Y {
			return sub, b.rowAt(sub, y)
		}
	}
	return nil, -1
}

// rowAt converts a y coordinate inside sub's bounds to an item index,
// accounting for the reduced height of separator rows.
func (b *Bar) rowAt(sub *SubMenu, y int) int {
	ry := sub.bounds.Min.Y + frameWidth
	for i, it := range sub.items {
		h := b.rowHeight
		if it.separator() {
			h = b.sepHeight
		}
		if y >= ry && y < ry+h {
			return i
		}
		ry += h
	}
	return -1
}
