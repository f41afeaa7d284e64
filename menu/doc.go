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

// Package menu implements a classic drop-down menu bar: a strip of titles
// rendered across the top of an owned pixel surface, each opening a
// dropdown of items which may nest further submenus.
//
// A Bar is populated incrementally (AddItem/AddSubMenu), from a flat table
// (AddStaticMenus), from a definition string (CreateSubMenuFromString), or
// from binary menu resources by the resource package. Items are mutated
// afterwards by position or by label; both address forms resolve through
// the same lookup and silently no-op when nothing matches.
//
// Input arrives as userinput events through ProcessEvent, which reports
// whether the menu consumed the event. While a menu is open the bar
// consumes everything, giving it exclusive capture. RunModal wraps
// ProcessEvent in the traditional blocking poll loop for hosts that want
// the classic behaviour of a menu owning the world until it closes.
//
// Selections are reported through a single callback slot carrying the
// item's action id and label. Two registration variants exist, one
// receiving the label as legacy Mac Roman bytes and one as a string;
// whichever was registered last is the one that fires.
package menu
