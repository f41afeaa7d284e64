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

package test

import (
	"testing"
)

// Equate is used to test equality between one value and another. Both
// values must be of the same type. Because a literal number value is of
// type int, a value of type int may be compared with a rune too.
//
// This is by no means a comprehensive comparison function. It covers the
// types that turn up in this project's tests and no more.
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch v := value.(type) {
	default:
		t.Fatalf("unhandled type for Equate() function (%T)", v)

	case nil:
		if expectedValue != nil {
			t.Errorf("equation of type %T failed (%v - wanted nil)", v, v)
		}

	case bool:
		switch ev := expectedValue.(type) {
		case bool:
			if v != ev {
				t.Errorf("equation of type %T failed (%v - wanted %v)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case int:
		switch ev := expectedValue.(type) {
		case int:
			if v != ev {
				t.Errorf("equation of type %T failed (%d - wanted %d)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case rune:
		switch ev := expectedValue.(type) {
		case rune:
			if v != ev {
				t.Errorf("equation of type %T failed (%c - wanted %c)", v, v, ev)
			}
		case int:
			if v != rune(ev) {
				t.Errorf("equation of type %T failed (%c - wanted %c)", v, v, rune(ev))
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case string:
		switch ev := expectedValue.(type) {
		case string:
			if v != ev {
				t.Errorf("equation of type %T failed (%s - wanted %s)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}
	}
}

// DemandEquality is used to test equality between one value and another.
// If the test fails it is a testing fatality - the test will not continue.
//
// This is particularly useful if the values being tested are used in
// further tests; there is no point in going on if the values are wrong.
func DemandEquality(t *testing.T, value, expectedValue int) {
	t.Helper()

	if value != expectedValue {
		t.Fatalf("equation failed (%d - wanted %d)", value, expectedValue)
	}
}
