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

package resource

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

var utf16Decoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()

// errTruncated is wrapped in the MalformedResource pattern by the decoders.
var errTruncated = fmt.Errorf("truncated stream")

// reader walks a raw resource record. all read functions return
// errTruncated when the record ends early.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errTruncated
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// uint16BE reads a big-endian value, the byte order of resource forks.
func (r *reader) uint16BE() (uint16, error) {
	if r.pos+2 > len(r.data) {
		return 0, errTruncated
	}
	v := uint16(r.data[r.pos])<<8 | uint16(r.data[r.pos+1])
	r.pos += 2
	return v, nil
}

// uint16LE reads a little-endian value, the byte order of executable
// resource tables.
func (r *reader) uint16LE() (uint16, error) {
	if r.pos+2 > len(r.data) {
		return 0, errTruncated
	}
	v := uint16(r.data[r.pos]) | uint16(r.data[r.pos+1])<<8
	r.pos += 2
	return v, nil
}

// pstring reads a length-prefixed run of bytes. the bytes are returned
// undecoded; menu text in resource forks is Mac Roman and is kept that way
// until display.
func (r *reader) pstring() ([]byte, error) {
	n, err := r.readByte()
	if err != nil {
		return nil, err
	}
	if r.pos+int(n) > len(r.data) {
		return nil, errTruncated
	}
	s := r.data[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return s, nil
}

// utf16String reads a character-count-prefixed UTF-16LE string and decodes
// it to a Go string.
func (r *reader) utf16String() (string, error) {
	n, err := r.uint16LE()
	if err != nil {
		return "", err
	}
	if r.pos+int(n)*2 > len(r.data) {
		return "", errTruncated
	}
	raw := r.data[r.pos : r.pos+int(n)*2]
	r.pos += int(n) * 2

	s, err := utf16Decoder.Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("bad utf16 text: %v", err)
	}
	return string(s), nil
}
