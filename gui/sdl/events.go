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

package sdl

import (
	"github.com/retrogui/macmenu/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// PollEvent implements the userinput.Source interface. SDL events that
// have no userinput equivalent are swallowed; nil is returned when the
// SDL queue is empty.
func (g *GUI) PollEvent() userinput.Event {
	sdlEvent := sdl.PollEvent()
	if sdlEvent == nil {
		return nil
	}

	switch sdlEvent := sdlEvent.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.WindowEvent:
		switch sdlEvent.Event {
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			return userinput.EventFocus{Focused: true}
		case sdl.WINDOWEVENT_FOCUS_LOST:
			return userinput.EventFocus{Focused: false}
		}

	case *sdl.KeyboardEvent:
		if sdlEvent.Repeat != 0 {
			return nil
		}
		return userinput.EventKeyboard{
			Key:  sdl.GetKeyName(sdlEvent.Keysym.Sym),
			Down: sdlEvent.Type == sdl.KEYDOWN,
			Mod:  keyMod(sdlEvent.Keysym.Mod),
		}

	case *sdl.MouseButtonEvent:
		x, y := g.surfaceCoords(sdlEvent.X, sdlEvent.Y)
		return userinput.EventMouseButton{
			Button: mouseButton(sdlEvent.Button),
			Down:   sdlEvent.Type == sdl.MOUSEBUTTONDOWN,
			X:      x,
			Y:      y,
		}

	case *sdl.MouseMotionEvent:
		x, y := g.surfaceCoords(sdlEvent.X, sdlEvent.Y)
		return userinput.EventMouseMotion{X: x, Y: y}
	}

	return nil
}

// surfaceCoords converts window coordinates to surface coordinates,
// undoing the renderer scale.
func (g *GUI) surfaceCoords(x, y int32) (int, int) {
	return int(float32(x) / g.scale), int(float32(y) / g.scale)
}

func keyMod(mod uint16) userinput.KeyMod {
	switch {
	case mod&sdl.KMOD_GUI != 0:
		return userinput.KeyModSuper
	case mod&sdl.KMOD_CTRL != 0:
		return userinput.KeyModCtrl
	case mod&sdl.KMOD_ALT != 0:
		return userinput.KeyModAlt
	case mod&sdl.KMOD_SHIFT != 0:
		return userinput.KeyModShift
	}
	return userinput.KeyModNone
}

func mouseButton(button uint8) userinput.MouseButton {
	switch button {
	case sdl.BUTTON_RIGHT:
		return userinput.MouseButtonRight
	case sdl.BUTTON_MIDDLE:
		return userinput.MouseButtonMiddle
	}
	return userinput.MouseButtonLeft
}
