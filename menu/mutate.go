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
	"github.com/retrogui/macmenu/fonts"
)

// Item addressing. Every mutator and query below comes in two forms: a
// numeric (menu, item) pair, where menu is the title's position on the bar
// and item is the position in its dropdown; and a ByName form addressed by
// the title's label and the item's label. Both forms route through a single
// resolver so they always land on the same item.
//
// An unresolved pair is never an error. Mutators silently do nothing and
// queries return the zero answer for their type (false, empty string,
// NoAction or StyleRegular). Menu layouts vary between builds and callers
// probe
// optimistically.

// findItem resolves a numeric (menu, item) pair to the item, or nil.
func (b *Bar) findItem(menunum int, itemnum int) *Item {
	if menunum < 0 || menunum >= len(b.items) {
		return nil
	}
	sub := b.items[menunum].submenu
	if sub == nil {
		return nil
	}
	return sub.itemAt(itemnum)
}

// findItemByName resolves a (title label, item label) pair to the item, or
// nil. The item search recurses through nested submenus so that every item
// in the tree is reachable by label.
func (b *Bar) findItemByName(menu string, item string) *Item {
	for _, title := range b.items {
		if title.label() != menu || title.submenu == nil {
			continue
		}
		if it := title.submenu.findByLabel(item); it != nil {
			return it
		}
	}
	return nil
}

// SetChecked sets the check mark of the addressed item. No-op when the
// address does not resolve.
func (b *Bar) SetChecked(menunum int, itemnum int, checked bool) {
	b.setChecked(b.findItem(menunum, itemnum), checked)
}

// SetCheckedByName is the label-addressed form of SetChecked.
func (b *Bar) SetCheckedByName(menu string, item string, checked bool) {
	b.setChecked(b.findItemByName(menu, item), checked)
}

func (b *Bar) setChecked(it *Item, checked bool) {
	if it == nil {
		return
	}
	it.checked = checked
	b.contentDirty = true
}

// Checked returns the check mark state of the addressed item. Returns
// false when the address does not resolve.
func (b *Bar) Checked(menunum int, itemnum int) bool {
	it := b.findItem(menunum, itemnum)
	return it != nil && it.checked
}

// CheckedByName is the label-addressed form of Checked.
func (b *Bar) CheckedByName(menu string, item string) bool {
	it := b.findItemByName(menu, item)
	return it != nil && it.checked
}

// SetEnabled sets the enabled state of the addressed item. No-op when the
// address does not resolve.
func (b *Bar) SetEnabled(menunum int, itemnum int, enabled bool) {
	b.setEnabled(b.findItem(menunum, itemnum), enabled)
}

// SetEnabledByName is the label-addressed form of SetEnabled.
func (b *Bar) SetEnabledByName(menu string, item string, enabled bool) {
	b.setEnabled(b.findItemByName(menu, item), enabled)
}

func (b *Bar) setEnabled(it *Item, enabled bool) {
	if it == nil {
		return
	}
	it.enabled = enabled
	b.contentDirty = true
}

// Enabled returns the enabled state of the addressed item. Returns false
// when the address does not resolve.
func (b *Bar) Enabled(menunum int, itemnum int) bool {
	it := b.findItem(menunum, itemnum)
	return it != nil && it.enabled
}

// EnabledByName is the label-addressed form of Enabled.
func (b *Bar) EnabledByName(menu string, item string) bool {
	it := b.findItemByName(menu, item)
	return it != nil && it.enabled
}

// SetTitleEnabled sets the enabled state of a top-level title. A disabled
// title cannot be opened and vetoes the shortcuts of everything beneath
// it. No-op when menunum does not resolve.
func (b *Bar) SetTitleEnabled(menunum int, enabled bool) {
	if menunum < 0 || menunum >= len(b.items) {
		return
	}
	b.items[menunum].enabled = enabled
	b.contentDirty = true
}

// TitleEnabled returns the enabled state of a top-level title. Returns
// false when menunum does not resolve.
func (b *Bar) TitleEnabled(menunum int) bool {
	return menunum >= 0 && menunum < len(b.items) && b.items[menunum].enabled
}

// SetLabel renames the addressed item, preserving the text flavour
// (legacy or Unicode) the item was created with. No-op when the address
// does not resolve.
func (b *Bar) SetLabel(menunum int, itemnum int, label string) {
	b.setLabel(b.findItem(menunum, itemnum), label)
}

// SetLabelByName is the label-addressed form of SetLabel.
func (b *Bar) SetLabelByName(menu string, item string, label string) {
	b.setLabel(b.findItemByName(menu, item), label)
}

func (b *Bar) setLabel(it *Item, label string) {
	if it == nil {
		return
	}
	it.setLabel(label)
	b.contentDirty = true
}

// Label returns the display text of the addressed item. Returns the empty
// string when the address does not resolve.
func (b *Bar) Label(menunum int, itemnum int) string {
	it := b.findItem(menunum, itemnum)
	if it == nil {
		return ""
	}
	return it.label()
}

// LabelByName is the label-addressed form of Label.
func (b *Bar) LabelByName(menu string, item string) string {
	it := b.findItemByName(menu, item)
	if it == nil {
		return ""
	}
	return it.label()
}

// SetActionID reassigns the action fired when the addressed item is
// selected. No-op when the address does not resolve.
func (b *Bar) SetActionID(menunum int, itemnum int, action int) {
	if it := b.findItem(menunum, itemnum); it != nil {
		it.action = action
	}
}

// SetActionIDByName is the label-addressed form of SetActionID.
func (b *Bar) SetActionIDByName(menu string, item string, action int) {
	if it := b.findItemByName(menu, item); it != nil {
		it.action = action
	}
}

// ActionID returns the action of the addressed item. Returns NoAction when
// the address does not resolve.
func (b *Bar) ActionID(menunum int, itemnum int) int {
	it := b.findItem(menunum, itemnum)
	if it == nil {
		return NoAction
	}
	return it.action
}

// ActionIDByName is the label-addressed form of ActionID.
func (b *Bar) ActionIDByName(menu string, item string) int {
	it := b.findItemByName(menu, item)
	if it == nil {
		return NoAction
	}
	return it.action
}

// SetStyle replaces the text style bits of the addressed item. No-op when
// the address does not resolve.
func (b *Bar) SetStyle(menunum int, itemnum int, style fonts.Style) {
	if it := b.findItem(menunum, itemnum); it != nil {
		it.style = style
		b.contentDirty = true
	}
}

// SetStyleByName is the label-addressed form of SetStyle.
func (b *Bar) SetStyleByName(menu string, item string, style fonts.Style) {
	if it := b.findItemByName(menu, item); it != nil {
		it.style = style
		b.contentDirty = true
	}
}

// Style returns the text style bits of the addressed item. Returns
// StyleRegular when the address does not resolve.
func (b *Bar) Style(menunum int, itemnum int) fonts.Style {
	it := b.findItem(menunum, itemnum)
	if it == nil {
		return fonts.StyleRegular
	}
	return it.style
}

// StyleByName is the label-addressed form of Style.
func (b *Bar) StyleByName(menu string, item string) fonts.Style {
	it := b.findItemByName(menu, item)
	if it == nil {
		return fonts.StyleRegular
	}
	return it.style
}

// DisableAllMenus disables every title and every item in one pass.
func (b *Bar) DisableAllMenus() {
	for _, title := range b.items {
		title.enabled = false
		if title.submenu != nil {
			disableSubMenu(title.submenu)
		}
	}
	b.contentDirty = true
}

func disableSubMenu(sub *SubMenu) {
	for _, it := range sub.items {
		it.enabled = false
		if it.submenu != nil {
			disableSubMenu(it.submenu)
		}
	}
}
