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

package display

// MapHours derives the displayed hour digits and the PM flag from the stored
// 24-hour value. In 24-hour mode the digits pass through unchanged and PM is
// always false. In 12-hour mode midnight and noon both display as 12, with
// PM distinguishing them.
//
// The mapping is presentation only. The time register always stores the
// 24-hour value.
func MapHours(hours int, hour12 bool) (ht uint8, ho uint8, pm bool) {
	if !hour12 {
		return uint8(hours / 10), uint8(hours % 10), false
	}

	pm = hours >= 12

	h := hours % 12
	if h == 0 {
		h = 12
	}

	return uint8(h / 10), uint8(h % 10), pm
}
