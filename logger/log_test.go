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

package logger_test

import (
	"strings"
	"testing"

	"github.com/retrogui/macmenu/logger"
	"github.com/retrogui/macmenu/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}
	test.ExpectedFailure(t, logger.Write(s))
	test.Equate(t, s.String(), "")

	logger.Log("test", "this is a test")
	test.ExpectedSuccess(t, logger.Write(s))
	test.Equate(t, s.String(), "test: this is a test\n")
}

func TestRepeatCollapse(t *testing.T) {
	logger.Clear()

	logger.Log("test", "same detail")
	logger.Log("test", "same detail")
	logger.Log("test", "same detail")

	s := &strings.Builder{}
	test.ExpectedSuccess(t, logger.Write(s))
	test.Equate(t, s.String(), "test: same detail (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("test", "a")
	logger.Log("test", "b")
	logger.Log("test", "c")

	s := &strings.Builder{}
	logger.Tail(s, 2)
	test.Equate(t, s.String(), "test: b\ntest: c\n")
}
