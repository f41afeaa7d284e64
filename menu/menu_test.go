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

package menu_test

import (
	"testing"

	"github.com/retrogui/macmenu/fonts"
	"github.com/retrogui/macmenu/menu"
	"github.com/retrogui/macmenu/test"
	"github.com/retrogui/macmenu/userinput"
)

// the File/Edit fixture used by most tests in this file.
func newTestBar(t *testing.T) *menu.Bar {
	t.Helper()

	bar, err := menu.NewBar(512, 342, fonts.NewBuiltin())
	if !test.ExpectedSuccess(t, err) {
		t.FailNow()
	}

	bar.AddStaticMenus([]menu.MenuData{
		{MenuNum: menu.HighLevel, Title: "File", Enabled: true},
		{MenuNum: 0, Title: "New", Action: 1, Shortcut: 'N', Enabled: true},
		{MenuNum: 0, Title: "Open", Action: 2, Shortcut: 'O', Enabled: true},
		{MenuNum: 0},
		{MenuNum: 0, Title: "Quit", Action: 3, Shortcut: 'Q', Enabled: true},
		{MenuNum: menu.HighLevel, Title: "Edit", Enabled: true},
		{MenuNum: 1, Title: "Undo", Action: 10, Shortcut: 'Z', Enabled: false},
		{MenuNum: 1},
		{MenuNum: 1, Title: "Cut", Action: 11, Shortcut: 'X', Enabled: true},
		{MenuNum: 1, Title: "Copy", Action: 12, Shortcut: 'C', Enabled: true},
	})

	return bar
}

func keyDown(key string, mod userinput.KeyMod) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: key, Down: true, Mod: mod}
}

func TestStaticMenus(t *testing.T) {
	bar := newTestBar(t)
	test.Equate(t, bar.Titles(), 2)

	expected := `File
  New <N>
  Open <O>
  --------
  Quit <Q>
Edit
  Undo (disabled) <Z>
  --------
  Cut <X>
  Copy <C>
`
	test.Equate(t, bar.String(), expected)
}

func TestMutators(t *testing.T) {
	bar := newTestBar(t)

	test.Equate(t, bar.Checked(0, 1), false)
	bar.SetChecked(0, 1, true)
	test.Equate(t, bar.Checked(0, 1), true)
	bar.SetChecked(0, 1, false)
	test.Equate(t, bar.Checked(0, 1), false)

	test.Equate(t, bar.Enabled(1, 0), false)
	bar.SetEnabled(1, 0, true)
	test.Equate(t, bar.Enabled(1, 0), true)

	test.Equate(t, bar.Label(0, 1), "Open")
	bar.SetLabel(0, 1, "Open...")
	test.Equate(t, bar.Label(0, 1), "Open...")

	test.Equate(t, bar.ActionID(0, 3), 3)
	bar.SetActionID(0, 3, 30)
	test.Equate(t, bar.ActionID(0, 3), 30)

	test.Equate(t, bar.TitleEnabled(1), true)
	bar.SetTitleEnabled(1, false)
	test.Equate(t, bar.TitleEnabled(1), false)

	test.Equate(t, int(bar.Style(0, 1)), int(fonts.StyleRegular))
	bar.SetStyle(0, 1, fonts.StyleBold)
	test.Equate(t, int(bar.Style(0, 1)), int(fonts.StyleBold))
}

func TestMutatorsByName(t *testing.T) {
	bar := newTestBar(t)

	bar.SetCheckedByName("Edit", "Copy", true)
	test.Equate(t, bar.CheckedByName("Edit", "Copy"), true)
	test.Equate(t, bar.Checked(1, 3), true)

	bar.SetEnabledByName("Edit", "Undo", true)
	test.Equate(t, bar.EnabledByName("Edit", "Undo"), true)

	bar.SetLabelByName("File", "New", "New Window")
	test.Equate(t, bar.Label(0, 0), "New Window")

	bar.SetActionIDByName("File", "Quit", 99)
	test.Equate(t, bar.ActionIDByName("File", "Quit"), 99)

	bar.SetStyleByName("Edit", "Cut", fonts.StyleItalic)
	test.Equate(t, int(bar.StyleByName("Edit", "Cut")), int(fonts.StyleItalic))
}

// addresses that do not resolve are silent no-ops and read back as the
// zero of the property
func TestUnresolvedAddresses(t *testing.T) {
	bar := newTestBar(t)

	bar.SetChecked(5, 0, true)
	bar.SetChecked(0, 100, true)
	bar.SetCheckedByName("Nonsense", "New", true)

	test.Equate(t, bar.Checked(5, 0), false)
	test.Equate(t, bar.Enabled(0, 100), false)
	test.Equate(t, bar.Label(9, 9), "")
	test.Equate(t, bar.ActionID(9, 9), menu.NoAction)
	test.Equate(t, bar.TitleEnabled(9), false)

	// the menu is unchanged
	test.Equate(t, bar.Checked(0, 0), false)
}

// symbolic addressing reaches into nested submenus; numeric addressing
// only ever sees the direct children of a title
func TestByNameRecursesNestedSubmenus(t *testing.T) {
	bar := newTestBar(t)

	file := bar.Submenu(nil, 0)
	bar.AddItem(file, "Open Recent", menu.NoAction, fonts.StyleRegular, 0, true, false)
	recent := bar.AddSubMenu(file, -1)
	bar.AddItem(recent, "report.txt", 40, fonts.StyleRegular, 0, true, false)

	test.Equate(t, bar.ActionIDByName("File", "report.txt"), 40)

	// itemnum 4 is "Open Recent" itself; the nested item is invisible to
	// numeric addressing
	test.Equate(t, bar.ActionID(0, 4), menu.NoAction)
}

func TestDisableAllMenus(t *testing.T) {
	bar := newTestBar(t)
	bar.DisableAllMenus()

	test.Equate(t, bar.TitleEnabled(0), false)
	test.Equate(t, bar.TitleEnabled(1), false)
	test.Equate(t, bar.Enabled(0, 0), false)
	test.Equate(t, bar.Enabled(1, 3), false)
}

func TestCreateSubMenuFromString(t *testing.T) {
	bar, err := menu.NewBar(512, 342, fonts.NewBuiltin())
	if !test.ExpectedSuccess(t, err) {
		t.FailNow()
	}

	bar.AddItem(nil, "Options", menu.NoAction, fonts.StyleRegular, 0, true, false)
	bar.CreateSubMenuFromString(0, "About/A;(Colour;!xSound;-;Quit/Q", 100)

	test.Equate(t, bar.Label(0, 0), "About")
	test.Equate(t, bar.ActionID(0, 0), 100)

	test.Equate(t, bar.Label(0, 1), "Colour")
	test.Equate(t, bar.Enabled(0, 1), false)
	test.Equate(t, bar.ActionID(0, 1), 101)

	test.Equate(t, bar.Label(0, 2), "Sound")
	test.Equate(t, bar.Checked(0, 2), true)

	// the '-' row is a separator. it still occupies an action id
	test.Equate(t, bar.Label(0, 3), "")

	test.Equate(t, bar.Label(0, 4), "Quit")
	test.Equate(t, bar.ActionID(0, 4), 104)

	expected := `Options
  About <A>
  Colour (disabled)
  Sound [x]
  --------
  Quit <Q>
`
	test.Equate(t, bar.String(), expected)
}

func TestClearSubMenu(t *testing.T) {
	bar := newTestBar(t)

	bar.ClearSubMenu(0)
	test.Equate(t, bar.Label(0, 0), "")
	test.Equate(t, bar.Titles(), 2)

	// the emptied dropdown can be rebuilt in place
	bar.CreateSubMenuFromString(0, "Close/W", 50)
	test.Equate(t, bar.Label(0, 0), "Close")
	test.Equate(t, bar.ActionID(0, 0), 50)
}

func TestShortcutFiresWithoutOpening(t *testing.T) {
	bar := newTestBar(t)

	var gotAction int
	var gotLabel string
	bar.SetUnicodeCallback(func(action int, label string) {
		gotAction = action
		gotLabel = label
	})

	test.Equate(t, bar.ProcessEvent(keyDown("O", userinput.KeyModSuper)), true)
	test.Equate(t, gotAction, 2)
	test.Equate(t, gotLabel, "Open")
	test.Equate(t, int(bar.State()), int(menu.Closed))
}

func TestShortcutCaseInsensitive(t *testing.T) {
	bar := newTestBar(t)

	gotAction := menu.NoAction
	bar.SetUnicodeCallback(func(action int, label string) {
		gotAction = action
	})

	test.Equate(t, bar.ProcessEvent(keyDown("q", userinput.KeyModSuper)), true)
	test.Equate(t, gotAction, 3)
}

func TestShortcutDisabledVeto(t *testing.T) {
	bar := newTestBar(t)

	fired := false
	bar.SetUnicodeCallback(func(action int, label string) {
		fired = true
	})

	// Undo is disabled
	test.Equate(t, bar.ProcessEvent(keyDown("Z", userinput.KeyModSuper)), false)
	test.Equate(t, fired, false)

	// a disabled title vetoes its whole branch
	bar.SetTitleEnabled(0, false)
	test.Equate(t, bar.ProcessEvent(keyDown("O", userinput.KeyModSuper)), false)
	test.Equate(t, fired, false)
}

func TestShortcutWrongModifier(t *testing.T) {
	bar := newTestBar(t)

	fired := false
	bar.SetUnicodeCallback(func(action int, label string) {
		fired = true
	})

	test.Equate(t, bar.ProcessEvent(keyDown("O", userinput.KeyModNone)), false)
	test.Equate(t, bar.ProcessEvent(keyDown("O", userinput.KeyModCtrl)), false)
	test.Equate(t, fired, false)

	bar.SetShortcutModifier(userinput.KeyModCtrl)
	test.Equate(t, bar.ProcessEvent(keyDown("O", userinput.KeyModCtrl)), true)
	test.Equate(t, fired, true)
}

// the registration made last wins, whichever variant it is
func TestCallbackReplacement(t *testing.T) {
	bar := newTestBar(t)

	unicodeFired := false
	legacyFired := false

	bar.SetUnicodeCallback(func(action int, label string) {
		unicodeFired = true
	})
	bar.SetLegacyCallback(func(action int, label []byte) {
		legacyFired = true
		test.Equate(t, string(label), "Open")
	})

	bar.ProcessEvent(keyDown("O", userinput.KeyModSuper))
	test.Equate(t, unicodeFired, false)
	test.Equate(t, legacyFired, true)
}

func TestInvisibleBarIgnoresInput(t *testing.T) {
	bar := newTestBar(t)
	bar.SetVisible(false)

	fired := false
	bar.SetUnicodeCallback(func(action int, label string) {
		fired = true
	})

	test.Equate(t, bar.ProcessEvent(keyDown("O", userinput.KeyModSuper)), false)
	test.Equate(t, fired, false)
}

func TestDrawIdempotent(t *testing.T) {
	bar := newTestBar(t)

	test.Equate(t, bar.Draw(false), true)
	test.Equate(t, bar.Draw(false), false)
	test.Equate(t, bar.Dirty(), false)

	// a forced draw always repaints
	test.Equate(t, bar.Draw(true), true)

	// any mutation dirties the content
	bar.SetChecked(0, 0, true)
	test.Equate(t, bar.Dirty(), true)
	test.Equate(t, bar.Draw(false), true)
	test.Equate(t, bar.Draw(false), false)
}
