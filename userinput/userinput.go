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

package userinput

// Event represents a single input event from the host. The underlying type
// is one of the Event* types in this package.
type Event interface{}

// EventQuit is sent when the host window is closed.
type EventQuit struct{}

// EventFocus is sent when the host window gains or loses input focus.
type EventFocus struct {
	Focused bool
}

// EventMouseMotion is the pointer moving to a new position. Coordinates are
// in the pixel space of the widget surface.
type EventMouseMotion struct {
	X int
	Y int
}

// EventMouseButton is a pointer button changing state at the given position.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X      int
	Y      int
}

// EventKeyboard is a key changing state. Key is the host's name for the key;
// for printable keys it is the character itself, upper-cased.
type EventKeyboard struct {
	Key  string
	Down bool
	Mod  KeyMod
}

// MouseButton identifies which pointer button an EventMouseButton refers to.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// KeyMod identifies the modifier held during an EventKeyboard.
type KeyMod int

// List of valid key modifiers. KeyModSuper is the command/meta key, which
// is the modifier classic menu shortcuts hang off.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
	KeyModSuper
)

// Source is a pollable supply of input events. PollEvent returns nil when
// no event is pending; it never blocks.
type Source interface {
	PollEvent() Event
}
