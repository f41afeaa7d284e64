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

package resource_test

import (
	"testing"

	"github.com/retrogui/macmenu/curated"
	"github.com/retrogui/macmenu/fonts"
	"github.com/retrogui/macmenu/resource"
	"github.com/retrogui/macmenu/test"
)

func u16(b []byte, v uint16) []byte {
	return append(b, byte(v), byte(v>>8))
}

// wstr appends a character-count-prefixed UTF-16LE string. test text stays
// within the basic multilingual plane
func wstr(b []byte, s string) []byte {
	r := []rune(s)
	b = u16(b, uint16(len(r)))
	for _, c := range r {
		b = u16(b, uint16(c))
	}
	return b
}

// exeItem appends one item record: depth, action, style, shortcut, flags
// and label.
func exeItem(b []byte, depth int, action int, style byte, shortcut byte, flags byte, label string) []byte {
	b = u16(b, uint16(depth))
	b = u16(b, uint16(int16(action)))
	b = append(b, style, shortcut, flags)
	return wstr(b, label)
}

func TestReadExecutableTable(t *testing.T) {
	res := u16(nil, 2) // two menus

	res = wstr(res, "File")
	res = u16(res, 3)
	res = exeItem(res, 0, 1, 0, 'N', 0x01, "New")
	res = exeItem(res, 0, -1, 0, 0, 0x00, "")
	res = exeItem(res, 0, 2, 0, 'Q', 0x01, "Quit")

	res = wstr(res, "Options")
	res = u16(res, 5)
	res = exeItem(res, 0, 20, 0x04, 'F', 0x01, "Full Screen")
	res = exeItem(res, 0, -1, 0, 0, 0x01, "View")
	res = exeItem(res, 1, 30, 0, 0, 0x03, "Icons")
	res = exeItem(res, 1, 31, 0, 0, 0x01, "List")
	res = exeItem(res, 0, 21, 0, 0, 0x00, "Colour")

	bar := newResourceBar(t)
	err := resource.ReadExecutableTable(bar, res)
	test.ExpectedSuccess(t, err)

	expected := `File
  New <N>
  --------
  Quit <Q>
Options
  Full Screen <F>
  View
    Icons [x]
    List
  Colour (disabled)
`
	test.Equate(t, bar.String(), expected)

	// actions come from the table, not from display order
	test.Equate(t, bar.ActionID(0, 2), 2)
	test.Equate(t, bar.ActionIDByName("Options", "Icons"), 30)
	test.Equate(t, bar.CheckedByName("Options", "Icons"), true)
	test.Equate(t, bar.EnabledByName("Options", "Colour"), false)
	test.Equate(t, int(bar.StyleByName("Options", "Full Screen")), int(fonts.StyleUnderline))
	test.Equate(t, int(bar.Style(0, 0)), int(fonts.StyleRegular))

	// the depth 1 records are invisible to numeric addressing of the
	// title: its third direct child is Colour, not Icons
	test.Equate(t, bar.ActionID(1, 2), 21)
}

func TestReadExecutableTableEmpty(t *testing.T) {
	bar := newResourceBar(t)
	err := resource.ReadExecutableTable(bar, u16(nil, 0))
	test.ExpectedSuccess(t, err)
	test.Equate(t, bar.Titles(), 0)
}

// a menu with no items is legal: a title whose dropdown is empty
func TestReadExecutableTableEmptyMenu(t *testing.T) {
	res := u16(nil, 1)
	res = wstr(res, "Special")
	res = u16(res, 0)

	bar := newResourceBar(t)
	err := resource.ReadExecutableTable(bar, res)
	test.ExpectedSuccess(t, err)
	test.Equate(t, bar.Titles(), 1)
}

func TestReadExecutableTableDepthJump(t *testing.T) {
	res := u16(nil, 1)
	res = wstr(res, "File")
	res = u16(res, 2)
	res = exeItem(res, 0, 1, 0, 0, 0x01, "New")
	res = exeItem(res, 2, 2, 0, 0, 0x01, "Too Deep")

	bar := newResourceBar(t)
	err := resource.ReadExecutableTable(bar, res)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, resource.MalformedResource), true)
	test.Equate(t, bar.Titles(), 0)
}

// the first record of a menu cannot open a submenu; there is no item for
// it to hang off
func TestReadExecutableTableLeadingDepth(t *testing.T) {
	res := u16(nil, 1)
	res = wstr(res, "File")
	res = u16(res, 1)
	res = exeItem(res, 1, 1, 0, 0, 0x01, "Orphan")

	bar := newResourceBar(t)
	err := resource.ReadExecutableTable(bar, res)
	test.ExpectedFailure(t, err)
	test.Equate(t, bar.Titles(), 0)
}

func TestReadExecutableTableTruncated(t *testing.T) {
	res := u16(nil, 1)
	res = wstr(res, "File")
	res = u16(res, 2)
	res = exeItem(res, 0, 1, 0, 'N', 0x01, "New")
	// second item record missing entirely

	bar := newResourceBar(t)
	err := resource.ReadExecutableTable(bar, res)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, resource.MalformedResource), true)
	test.Equate(t, bar.Titles(), 0)

	// a label cut short mid-character
	res = u16(nil, 1)
	res = wstr(res, "File")
	res = u16(res, 1)
	res = u16(res, 0)             // depth
	res = u16(res, 1)             // action
	res = append(res, 0, 'N', 1)  // style, shortcut, flags
	res = u16(res, 3)             // three characters promised...
	res = append(res, 'N', 0, 'e') // ...but only one and a half supplied

	err = resource.ReadExecutableTable(bar, res)
	test.ExpectedFailure(t, err)
	test.Equate(t, bar.Titles(), 0)

	// no menu count at all
	err = resource.ReadExecutableTable(bar, nil)
	test.ExpectedFailure(t, err)
}

// a deeper record following a separator hangs off the separator, which is
// legal if pointless; it decodes without error
func TestReadExecutableTableDeepAfterSeparator(t *testing.T) {
	res := u16(nil, 1)
	res = wstr(res, "File")
	res = u16(res, 2)
	res = exeItem(res, 0, -1, 0, 0, 0x00, "")
	res = exeItem(res, 1, 1, 0, 0, 0x01, "Hidden")

	bar := newResourceBar(t)
	err := resource.ReadExecutableTable(bar, res)
	test.ExpectedSuccess(t, err)
	test.Equate(t, bar.Titles(), 1)
}
