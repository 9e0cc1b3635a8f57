// This file is part of TTClock.
//
// TTClock is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TTClock is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TTClock.  If not, see <https://www.gnu.org/licenses/>.

// Package curated provides the error type used throughout the project. A
// curated error keeps the pattern string it was created with, meaning errors
// can be matched against that pattern without the need for package level
// sentinel values.
//
// Create errors with Errorf, in the same way as fmt.Errorf:
//
//	curated.Errorf("sdlclock: %v", err)
//
// And test for them with Is() and Has(). Is() matches the outermost error
// only, while Has() searches the whole error chain:
//
//	if curated.Has(err, console.Quit) {
//		...
//	}
//
// Error messages are normalised on retrieval so that repeated adjacent parts
// of a message chain only appear once.
package curated
