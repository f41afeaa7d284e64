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
	"fmt"
	"testing"

	"github.com/retrogui/macmenu/curated"
	"github.com/retrogui/macmenu/fonts"
	"github.com/retrogui/macmenu/menu"
	"github.com/retrogui/macmenu/resource"
	"github.com/retrogui/macmenu/test"
	"github.com/retrogui/macmenu/userinput"
)

// forkProvider is a test fixture standing in for a resource fork.
type forkProvider map[uint16][]byte

func (p forkProvider) MenuResource(id uint16) ([]byte, error) {
	d, ok := p[id]
	if !ok {
		return nil, fmt.Errorf("no resource with id %d", id)
	}
	return d, nil
}

func newResourceBar(t *testing.T) *menu.Bar {
	t.Helper()
	bar, err := menu.NewBar(512, 342, fonts.NewBuiltin())
	if !test.ExpectedSuccess(t, err) {
		t.FailNow()
	}
	return bar
}

// pstr appends a length-prefixed string.
func pstr(b []byte, s string) []byte {
	b = append(b, byte(len(s)))
	return append(b, s...)
}

// forkItem appends one item record: label, icon, key, mark and style bytes.
func forkItem(b []byte, label string, key byte, mark byte, style byte) []byte {
	b = pstr(b, label)
	return append(b, 0, key, mark, style)
}

func forkEnd(b []byte) []byte {
	return append(b, 0)
}

func TestReadMenu(t *testing.T) {
	res := pstr(nil, "File")
	res = forkItem(res, "New", 'N', 0, 0)
	res = forkItem(res, "-", 0, 0, 0)
	res = forkItem(res, "Quit", 'Q', 0, 0)
	res = forkEnd(res)

	bar := newResourceBar(t)
	err := resource.ReadMenu(bar, forkProvider{128: res}, 128)
	test.ExpectedSuccess(t, err)

	expected := `File
  New <N>
  --------
  Quit <Q>
`
	test.Equate(t, bar.String(), expected)

	// leaf items take sequential action ids in display order. separators
	// take none
	test.Equate(t, bar.ActionID(0, 0), 0)
	test.Equate(t, bar.ActionID(0, 1), menu.NoAction)
	test.Equate(t, bar.ActionID(0, 2), 1)
}

func TestReadMenuHierarchical(t *testing.T) {
	edit := pstr(nil, "Edit")
	edit = forkItem(edit, "Undo", 'Z', 0, 0)
	edit = forkItem(edit, "Style", 0x1b, 129, 0)
	edit = forkItem(edit, "Copy", 'C', 0, 0)
	edit = forkEnd(edit)

	style := pstr(nil, "Style")
	style = forkItem(style, "Bold", 'B', 0, 0x01)
	style = forkItem(style, "Italic", 'I', 0, 0x02)
	style = forkEnd(style)

	bar := newResourceBar(t)
	err := resource.ReadMenu(bar, forkProvider{128: edit, 129: style}, 128)
	test.ExpectedSuccess(t, err)

	expected := `Edit
  Undo <Z>
  Style
    Bold <B>
    Italic <I>
  Copy <C>
`
	test.Equate(t, bar.String(), expected)

	// depth first action numbering. the parent item carries no action
	test.Equate(t, bar.ActionID(0, 0), 0)
	test.Equate(t, bar.ActionID(0, 1), menu.NoAction)
	test.Equate(t, bar.ActionIDByName("Edit", "Bold"), 1)
	test.Equate(t, bar.ActionIDByName("Edit", "Italic"), 2)
	test.Equate(t, bar.ActionID(0, 2), 3)

	// the style byte survives the decode
	test.Equate(t, int(bar.StyleByName("Edit", "Bold")), int(fonts.StyleBold))
	test.Equate(t, int(bar.StyleByName("Edit", "Italic")), int(fonts.StyleItalic))
	test.Equate(t, int(bar.Style(0, 0)), int(fonts.StyleRegular))
}

func TestReadMenuMarkByte(t *testing.T) {
	res := pstr(nil, "View")
	res = forkItem(res, "Icons", 0, 0x12, 0)
	res = forkItem(res, "List", 0, 0, 0)
	res = forkEnd(res)

	bar := newResourceBar(t)
	err := resource.ReadMenu(bar, forkProvider{128: res}, 128)
	test.ExpectedSuccess(t, err)

	test.Equate(t, bar.Checked(0, 0), true)
	test.Equate(t, bar.Checked(0, 1), false)
}

// menu text in a resource fork is Mac Roman
func TestReadMenuLegacyText(t *testing.T) {
	res := pstr(nil, "Caf\x8e") // 0x8e is e-acute in Mac Roman
	res = forkItem(res, "Entr\x8ee", 0, 0, 0)
	res = forkEnd(res)

	bar := newResourceBar(t)
	err := resource.ReadMenu(bar, forkProvider{128: res}, 128)
	test.ExpectedSuccess(t, err)

	test.Equate(t, bar.Label(0, 0), "Entrée")
	test.Equate(t, bar.ActionIDByName("Café", "Entrée"), 0)
}

// a legacy callback gets the item label back in its original Mac Roman
// bytes, not a UTF-8 re-encoding
func TestReadMenuLegacyCallback(t *testing.T) {
	res := pstr(nil, "Caf\x8e")
	res = forkItem(res, "Entr\x8ee", 'E', 0, 0)
	res = forkEnd(res)

	bar := newResourceBar(t)
	err := resource.ReadMenu(bar, forkProvider{128: res}, 128)
	test.ExpectedSuccess(t, err)

	action := menu.NoAction
	var label []byte
	bar.SetLegacyCallback(func(a int, l []byte) {
		action = a
		label = l
	})

	handled := bar.ProcessEvent(userinput.EventKeyboard{Key: "E", Down: true, Mod: userinput.KeyModSuper})
	test.Equate(t, handled, true)
	test.Equate(t, action, 0)
	test.Equate(t, string(label), "Entr\x8ee")
}

func TestReadMenuCycle(t *testing.T) {
	a := pstr(nil, "A")
	a = forkItem(a, "Deeper", 0x1b, 129, 0)
	a = forkEnd(a)

	b := pstr(nil, "B")
	b = forkItem(b, "Back Again", 0x1b, 128, 0)
	b = forkEnd(b)

	bar := newResourceBar(t)
	err := resource.ReadMenu(bar, forkProvider{128: a, 129: b}, 128)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, resource.MalformedResource), true)

	// nothing was attached
	test.Equate(t, bar.Titles(), 0)
}

func TestReadMenuTruncated(t *testing.T) {
	res := pstr(nil, "File")
	res = forkItem(res, "New", 'N', 0, 0)
	// no terminator

	bar := newResourceBar(t)
	err := resource.ReadMenu(bar, forkProvider{128: res}, 128)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, resource.MalformedResource), true)
	test.Equate(t, bar.Titles(), 0)

	// an item record cut short mid-field
	res = pstr(nil, "File")
	res = pstr(res, "New")
	res = append(res, 0, 'N') // mark and style bytes missing

	err = resource.ReadMenu(bar, forkProvider{128: res}, 128)
	test.ExpectedFailure(t, err)
	test.Equate(t, bar.Titles(), 0)
}

func TestReadMenuMissingResource(t *testing.T) {
	bar := newResourceBar(t)
	err := resource.ReadMenu(bar, forkProvider{}, 128)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, resource.MalformedResource), true)
}

func TestReadMenuBar(t *testing.T) {
	file := pstr(nil, "File")
	file = forkItem(file, "Quit", 'Q', 0, 0)
	file = forkEnd(file)

	edit := pstr(nil, "Edit")
	edit = forkItem(edit, "Cut", 'X', 0, 0)
	edit = forkEnd(edit)

	mbar := []byte{0x00, 0x02, 0x00, 128, 0x00, 130}

	bar := newResourceBar(t)
	prov := forkProvider{100: mbar, 128: file, 130: edit}
	err := resource.ReadMenuBar(bar, prov, 100)
	test.ExpectedSuccess(t, err)

	test.Equate(t, bar.Titles(), 2)
	test.Equate(t, bar.ActionIDByName("File", "Quit"), 0)
	test.Equate(t, bar.ActionIDByName("Edit", "Cut"), 0)
}

// a menu bar attaches all of its menus or none of them
func TestReadMenuBarAtomic(t *testing.T) {
	file := pstr(nil, "File")
	file = forkItem(file, "Quit", 'Q', 0, 0)
	file = forkEnd(file)

	mbar := []byte{0x00, 0x02, 0x00, 128, 0x00, 131}

	bar := newResourceBar(t)
	err := resource.ReadMenuBar(bar, forkProvider{100: mbar, 128: file}, 100)
	test.ExpectedFailure(t, err)
	test.Equate(t, bar.Titles(), 0)
}
