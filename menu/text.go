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
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// legacy menu text is Mac Roman, the single-byte encoding used by the
// resource formats this menu system is loaded from

var legacyDecoder = charmap.Macintosh.NewDecoder()
var legacyEncoder = encoding.ReplaceUnsupported(charmap.Macintosh.NewEncoder())

func decodeLegacy(b []byte) string {
	s, err := legacyDecoder.Bytes(b)
	if err != nil {
		// the Macintosh charmap decodes every byte value so this cannot
		// fail in practice. fall back to a lossy conversion regardless
		return string(b)
	}
	return string(s)
}

func encodeLegacy(s string) []byte {
	b, err := legacyEncoder.Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return b
}
