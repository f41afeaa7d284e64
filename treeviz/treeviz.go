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

// Package treeviz renders a menu tree as a graphviz dot graph, item
// ownership, back-references and all. Useful when a decoded resource
// doesn't produce the menu structure you expected:
//
//	dot -Tsvg menu.dot -o menu.svg
package treeviz

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/retrogui/macmenu/menu"
)

// Write the dot-graph representation of the bar's menu tree to w.
func Write(w io.Writer, bar *menu.Bar) {
	memviz.Map(w, bar)
}
