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
	"strings"

	"github.com/retrogui/macmenu/fonts"
	"github.com/retrogui/macmenu/surface"
	"github.com/retrogui/macmenu/userinput"
)

// Align controls how item text is placed within a dropdown row.
type Align int

// List of valid Align values.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Bar is a menu bar: an ordered list of titles across the top of the owned
// surface, each opening a dropdown submenu. A Bar is built either
// incrementally with AddItem/AddSubMenu, in bulk with AddStaticMenus, or by
// the decoders in the resource package.
//
// The Bar exclusively owns its surface and its item tree. It is not safe
// for concurrent use; like the windowing systems it imitates it assumes a
// single cooperative thread.
type Bar struct {
	scr  *surface.Surface
	font fonts.Font

	align Align

	// top-level titles in display order. the position of a title in this
	// slice is its menu number
	items []*Item

	visible bool

	// contentDirty means pixels must be redrawn. dimensionsDirty means
	// title and dropdown bounds must be recomputed first. only Draw and
	// CalcDimensions ever clear these
	contentDirty    bool
	dimensionsDirty bool

	// navigation state. activeTitle is -1 when the menu is closed. the
	// menustack holds the chain of open submenus, outermost first
	activeTitle int
	menustack   []*SubMenu

	callback commandCallback

	// number of motion events a submenu-owning item must stay highlighted
	// for before its child is pushed
	hoverDelay int
	hoverCount int

	shortcutMod userinput.KeyMod

	// row geometry. computed from the font at construction
	barHeight int
	rowHeight int
	sepHeight int
}

// NewBar is the preferred method of initialisation for the Bar type. The
// width and height describe the screen area the bar may draw over, which
// must be large enough for the title strip and any open dropdowns.
func NewBar(w int, h int, font fonts.Font) (*Bar, error) {
	scr, err := surface.NewSurface(w, h)
	if err != nil {
		return nil, err
	}

	bar := &Bar{
		scr:         scr,
		font:        font,
		visible:     true,
		activeTitle: -1,
		shortcutMod: userinput.KeyModSuper,
	}
	bar.barHeight = font.Height() + 2*titleVPadding
	bar.rowHeight = font.Height() + 2*rowVPadding
	bar.sepHeight = font.Height()/2 + 2*rowVPadding
	bar.contentDirty = true
	bar.dimensionsDirty = true

	return bar, nil
}

// Surface returns the pixel surface the bar renders into. The host blits
// the region reported by Intersects whenever Draw returns true.
func (b *Bar) Surface() *surface.Surface {
	return b.scr
}

// Bounds returns the screen area of the title strip.
func (b *Bar) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.scr.Bounds().Dx(), b.barHeight)
}

// Intersects returns true if rect touches the title strip or any currently
// open dropdown.
func (b *Bar) Intersects(rect image.Rectangle) bool {
	if rect.Overlaps(b.Bounds()) {
		return true
	}
	for _, sub := range b.menustack {
		if rect.Overlaps(sub.bounds) {
			return true
		}
	}
	return false
}

// Visible returns true if the bar is being rendered at all.
func (b *Bar) Visible() bool {
	return b.visible
}

// SetVisible changes whether the bar renders. Hiding the bar also closes
// any open menu.
func (b *Bar) SetVisible(visible bool) {
	if !visible {
		b.CloseMenu()
	}
	b.visible = visible
	b.contentDirty = true
}

// SetAlignment changes dropdown item text alignment.
func (b *Bar) SetAlignment(align Align) {
	b.align = align
	b.contentDirty = true
}

// SetFont replaces the font used for measurement and drawing. All bounds
// are recomputed before the next draw.
func (b *Bar) SetFont(font fonts.Font) {
	b.font = font
	b.barHeight = font.Height() + 2*titleVPadding
	b.rowHeight = font.Height() + 2*rowVPadding
	b.sepHeight = font.Height()/2 + 2*rowVPadding
	b.dimensionsDirty = true
	b.contentDirty = true
}

// SetHoverDelay sets the number of pointer-motion events a submenu-owning
// item must remain highlighted for before its submenu opens. The default of
// zero opens nested submenus as soon as their parent item is highlighted.
func (b *Bar) SetHoverDelay(events int) {
	b.hoverDelay = events
}

// SetShortcutModifier changes the modifier key that triggers shortcut
// scanning. The default is KeyModSuper, the command key.
func (b *Bar) SetShortcutModifier(mod userinput.KeyMod) {
	b.shortcutMod = mod
}

// Titles returns the number of top-level titles.
func (b *Bar) Titles() int {
	return len(b.items)
}

// AddSubMenu attaches a fresh submenu to the indexed item of parent and
// returns it. A nil parent addresses the title strip, so that
// AddSubMenu(nil, 0) creates the dropdown of the first title. An index of
// -1 addresses the last item. Any previously attached submenu is replaced.
//
// Returns nil when the index does not resolve.
func (b *Bar) AddSubMenu(parent *SubMenu, index int) *SubMenu {
	items := b.items
	if parent != nil {
		items = parent.items
	}
	if index == -1 {
		index = len(items) - 1
	}
	if index < 0 || index >= len(items) {
		return nil
	}

	items[index].submenu = newSubMenu(parent)
	b.dimensionsDirty = true

	return items[index].submenu
}

// Submenu returns the submenu attached to the indexed item of parent, or
// nil when there is none. A nil parent addresses the title strip.
func (b *Bar) Submenu(parent *SubMenu, index int) *SubMenu {
	items := b.items
	if parent != nil {
		items = parent.items
	}
	if index < 0 || index >= len(items) {
		return nil
	}
	return items[index].submenu
}

// AddItem appends an item to parent and returns its index. A nil parent
// appends a new top-level title instead; a title's action id is ignored.
// An empty text creates a separator.
func (b *Bar) AddItem(parent *SubMenu, text string, action int, style fonts.Style, shortcut rune, enabled bool, checked bool) int {
	it := &Item{
		text:     text,
		action:   action,
		style:    style,
		shortcut: shortcut,
		enabled:  enabled,
		checked:  checked,
	}
	return b.appendItem(parent, it)
}

// AddLegacyItem is the same as AddItem for text in the legacy Mac Roman
// encoding. The original bytes are preserved and handed to the legacy
// callback variant on selection.
func (b *Bar) AddLegacyItem(parent *SubMenu, text []byte, action int, style fonts.Style, shortcut rune, enabled bool, checked bool) int {
	it := &Item{
		action:   action,
		style:    style,
		shortcut: shortcut,
		enabled:  enabled,
		checked:  checked,
	}
	if len(text) > 0 {
		it.legacyText = text
	}
	return b.appendItem(parent, it)
}

func (b *Bar) appendItem(parent *SubMenu, it *Item) int {
	b.dimensionsDirty = true
	if parent == nil {
		b.items = append(b.items, it)
		return len(b.items) - 1
	}
	parent.items = append(parent.items, it)
	return len(parent.items) - 1
}

// MenuData is one row of the flat table accepted by AddStaticMenus.
type MenuData struct {
	// MenuNum is the position of the title the item belongs to. A value of
	// HighLevel introduces a new title instead
	MenuNum  int
	Title    string
	Action   int
	Shortcut rune
	Enabled  bool
}

// HighLevel marks a MenuData row as a top-level title.
const HighLevel = -1

// AddStaticMenus builds titles and items from a flat table. Rows with
// MenuNum equal to HighLevel create titles; other rows append an item to
// the indexed title's submenu, creating the submenu if necessary. A row
// with an empty Title is a separator.
func (b *Bar) AddStaticMenus(data []MenuData) {
	for _, d := range data {
		if d.MenuNum == HighLevel {
			idx := b.AddItem(nil, d.Title, NoAction, 0, 0, d.Enabled, false)
			b.AddSubMenu(nil, idx)
			continue
		}
		sub := b.Submenu(nil, d.MenuNum)
		if sub == nil {
			sub = b.AddSubMenu(nil, d.MenuNum)
			if sub == nil {
				continue
			}
		}
		b.AddItem(sub, d.Title, d.Action, 0, d.Shortcut, d.Enabled, false)
	}
}

// ClearSubMenu empties the dropdown of the indexed title in place. The
// title itself survives. No-op when the index does not resolve.
func (b *Bar) ClearSubMenu(menunum int) {
	if menunum < 0 || menunum >= len(b.items) {
		return
	}
	if b.items[menunum].submenu == nil {
		return
	}
	b.items[menunum].submenu.items = nil
	b.items[menunum].submenu.highlight = -1
	b.dimensionsDirty = true
}

// CreateSubMenuFromString builds the dropdown of the indexed title from a
// menu definition string. Items are separated by semicolons. Within an
// item: a leading '(' disables it; a trailing "/K" assigns shortcut K; a
// '!' followed by any character sets the check mark; a bare '-' or an
// empty definition is a separator. Actions are assigned sequentially from
// actionBase.
//
// This is the format game scripts define menus in. No-op when menunum does
// not resolve to a title.
func (b *Bar) CreateSubMenuFromString(menunum int, def string, actionBase int) {
	if menunum < 0 || menunum >= len(b.items) {
		return
	}

	sub := b.items[menunum].submenu
	if sub == nil {
		sub = b.AddSubMenu(nil, menunum)
	}

	action := actionBase
	for _, part := range strings.Split(def, ";") {
		enabled := true
		checked := false
		var shortcut rune

		if strings.HasPrefix(part, "(") {
			enabled = false
			part = part[1:]
		}
		if i := strings.LastIndex(part, "/"); i >= 0 && i+1 < len(part) {
			shortcut = []rune(part[i+1:])[0]
			part = part[:i]
		}
		if r := []rune(part); len(r) > 0 {
			// a '!' sets the check mark. the character following it is the
			// mark glyph and is stripped along with the '!'
			for j, c := range r {
				if c == '!' {
					checked = true
					if j+1 < len(r) {
						r = append(r[:j], r[j+2:]...)
					} else {
						r = r[:j]
					}
					part = string(r)
					break
				}
			}
		}
		if part == "-" {
			part = ""
		}

		b.AddItem(sub, part, action, 0, shortcut, enabled, checked)
		action++
	}
}

// String returns an indented dump of the menu tree, suitable for logging.
func (b *Bar) String() string {
	s := strings.Builder{}
	for _, title := range b.items {
		s.WriteString(strings.TrimRight(title.label(), " "))
		if !title.enabled {
			s.WriteString(" (disabled)")
		}
		s.WriteString("\n")
		if title.submenu != nil {
			b.printSubMenu(&s, title.submenu, 1)
		}
	}
	return s.String()
}

func (b *Bar) printSubMenu(s *strings.Builder, sub *SubMenu, depth int) {
	for _, it := range sub.items {
		s.WriteString(strings.Repeat("  ", depth))
		if it.separator() {
			s.WriteString("--------\n")
			continue
		}
		s.WriteString(it.label())
		if it.checked {
			s.WriteString(" [x]")
		}
		if !it.enabled {
			s.WriteString(" (disabled)")
		}
		if it.shortcut != 0 {
			s.WriteString(" <" + string(it.shortcut) + ">")
		}
		s.WriteString("\n")
		if it.submenu != nil {
			b.printSubMenu(s, it.submenu, depth+1)
		}
	}
}
