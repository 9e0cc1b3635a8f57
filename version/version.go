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

// Package version records the name and version of the application.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "TTClock"

// Version string of the current build. "unreleased" if the build carries no
// vcs information.
var Version = func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unreleased"
	}

	var revision string
	var modified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if revision == "" {
		return "unreleased"
	}
	if modified {
		return revision + "+dirty"
	}
	return revision
}()
