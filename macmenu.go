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

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/retrogui/macmenu/fonts"
	"github.com/retrogui/macmenu/gui/sdl"
	"github.com/retrogui/macmenu/logger"
	"github.com/retrogui/macmenu/menu"
	"github.com/retrogui/macmenu/modalflag"
	"github.com/retrogui/macmenu/resource"
	"github.com/retrogui/macmenu/statsview"
	"github.com/retrogui/macmenu/treeviz"
	"github.com/retrogui/macmenu/userinput"
	"github.com/retrogui/macmenu/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "DUMP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DUMP":
		err = dump(md)

	case "VERSION":
		vers, rev, _ := version.Version()
		fmt.Printf("%s (%s)\n", vers, rev)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// quitAction is wired to the File -> Quit item of the demonstration menu.
const quitAction = 99

func demoBar(width int, height int) (*menu.Bar, error) {
	bar, err := menu.NewBar(width, height, fonts.NewBuiltin())
	if err != nil {
		return nil, err
	}

	bar.AddStaticMenus([]menu.MenuData{
		{MenuNum: menu.HighLevel, Title: "File", Enabled: true},
		{MenuNum: 0, Title: "New", Action: 1, Shortcut: 'N', Enabled: true},
		{MenuNum: 0, Title: "Open...", Action: 2, Shortcut: 'O', Enabled: true},
		{MenuNum: 0},
		{MenuNum: 0, Title: "Quit", Action: quitAction, Shortcut: 'Q', Enabled: true},
		{MenuNum: menu.HighLevel, Title: "Edit", Enabled: true},
		{MenuNum: 1, Title: "Undo", Action: 10, Shortcut: 'Z', Enabled: false},
		{MenuNum: 1},
		{MenuNum: 1, Title: "Cut", Action: 11, Shortcut: 'X', Enabled: true},
		{MenuNum: 1, Title: "Copy", Action: 12, Shortcut: 'C', Enabled: true},
		{MenuNum: 1, Title: "Paste", Action: 13, Shortcut: 'V', Enabled: true},
	})

	// a third title demonstrating the definition string format and nested
	// submenus
	bar.AddItem(nil, "Options", menu.NoAction, fonts.StyleRegular, 0, true, false)
	bar.CreateSubMenuFromString(2, "Full Screen/F;(Colour;-", 20)
	opts := bar.Submenu(nil, 2)
	bar.AddItem(opts, "View", menu.NoAction, fonts.StyleRegular, 0, true, false)
	view := bar.AddSubMenu(opts, -1)
	bar.AddItem(view, "Icons", 30, fonts.StyleRegular, 0, true, true)
	bar.AddItem(view, "List", 31, fonts.StyleRegular, 0, true, false)

	return bar, nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	scale := md.AddInt("scale", 2, "window scaling factor")
	width := md.AddInt("width", 512, "width of the menu surface")
	height := md.AddInt("height", 342, "height of the menu surface")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* stats server not available")
		}
	}

	bar, err := demoBar(*width, *height)
	if err != nil {
		return err
	}

	g, err := sdl.NewGUI(version.ApplicationName, bar.Surface(), float32(*scale))
	if err != nil {
		return err
	}
	defer g.Destroy()

	running := true
	bar.SetUnicodeCallback(func(action int, label string) {
		fmt.Printf("selected: %d (%s)\n", action, label)
		if action == quitAction {
			running = false
		}
	})

	bar.Draw(true)
	if err := g.Commit(); err != nil {
		return err
	}

	for running {
		ev := g.PollEvent()
		if ev == nil {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		if _, ok := ev.(userinput.EventQuit); ok {
			running = false
		}
		bar.ProcessEvent(ev)

		if bar.Draw(false) {
			if err := g.Commit(); err != nil {
				return err
			}
		}
	}

	return nil
}

// singleResource satisfies resource.Provider with one MENU resource loaded
// from a file. Good enough for the DUMP mode; a real resource fork walker
// would index every resource in the file.
type singleResource struct {
	id   uint16
	data []byte
}

func (r singleResource) MenuResource(id uint16) ([]byte, error) {
	if id != r.id {
		return nil, fmt.Errorf("no MENU resource with id %d", id)
	}
	return r.data, nil
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	fork := md.AddBool("fork", false, "decode as a resource fork MENU rather than an executable table")
	id := md.AddInt("id", 128, "resource id of the MENU (with -fork)")
	viz := md.AddBool("viz", false, "write graphviz dot output instead of a text dump")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("menu data file required for %s mode", md)
	}

	data, err := os.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	bar, err := menu.NewBar(512, 342, fonts.NewBuiltin())
	if err != nil {
		return err
	}

	if *fork {
		err = resource.ReadMenu(bar, singleResource{id: uint16(*id), data: data}, uint16(*id))
	} else {
		err = resource.ReadExecutableTable(bar, data)
	}
	if err != nil {
		return err
	}

	if *viz {
		treeviz.Write(os.Stdout, bar)
		return nil
	}

	fmt.Print(bar.String())
	return nil
}
