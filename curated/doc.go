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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with
// a specific pattern. Packages export their patterns as constants for this
// purpose. For example:
//
//	err := resource.ReadMenu(bar, prov, id)
//
//	if curated.Is(err, resource.MalformedResource) {
//		fmt.Println("bad resource, menu left untouched")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain, rather than only at the outermost level.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of the difference as being
// 'expected' and 'unexpected' depending on how we choose to handle the
// result of the function call.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts.
package curated
