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
	"github.com/retrogui/macmenu/curated"
	"github.com/retrogui/macmenu/surface"

	"github.com/veandco/go-sdl2/sdl"
)

// InitError is returned when the SDL window, renderer or texture cannot
// be created.
const InitError = "sdl: %v"

// GUI is an SDL window presenting a widget surface through a streaming
// texture. It also acts as the userinput.Source for the widget, turning
// SDL events into userinput events.
//
// All functions must be called from the main thread, which is the usual
// SDL restriction.
type GUI struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	scr   *surface.Surface
	scale float32
}

// NewGUI is the preferred method of initialisation for the GUI type.
func NewGUI(title string, scr *surface.Surface, scale float32) (*GUI, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf(InitError, err)
	}

	g := &GUI{
		scr:   scr,
		scale: scale,
	}

	w := int32(float32(scr.Bounds().Dx()) * scale)
	h := int32(float32(scr.Bounds().Dy()) * scale)

	var err error
	g.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf(InitError, err)
	}

	g.renderer, err = sdl.CreateRenderer(g.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf(InitError, err)
	}
	if err = g.renderer.SetScale(scale, scale); err != nil {
		return nil, curated.Errorf(InitError, err)
	}

	g.texture, err = g.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		sdl.TEXTUREACCESS_STREAMING,
		int32(scr.Bounds().Dx()), int32(scr.Bounds().Dy()))
	if err != nil {
		return nil, curated.Errorf(InitError, err)
	}
	if err = g.texture.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		return nil, curated.Errorf(InitError, err)
	}

	return g, nil
}

// Commit uploads the current surface pixels and presents them.
func (g *GUI) Commit() error {
	if err := g.texture.Update(nil, g.scr.Pixels(), g.scr.Pitch()); err != nil {
		return curated.Errorf(InitError, err)
	}

	g.renderer.SetDrawColor(190, 190, 190, 255)
	g.renderer.Clear()
	if err := g.renderer.Copy(g.texture, nil, nil); err != nil {
		return curated.Errorf(InitError, err)
	}
	g.renderer.Present()

	return nil
}

// Destroy cleans up the SDL resources used by the GUI.
func (g *GUI) Destroy() {
	g.texture.Destroy()
	g.renderer.Destroy()
	g.window.Destroy()
	sdl.Quit()
}
