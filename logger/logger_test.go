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

package logger_test

import (
	"strings"
	"testing"

	"github.com/sixseg/ttclock/logger"
	"github.com/sixseg/ttclock/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	b := &strings.Builder{}
	logger.Write(b)
	test.ExpectEquality(t, b.String(), "")

	logger.Log("divider", "pps resync")
	b.Reset()
	logger.Write(b)
	test.ExpectEquality(t, b.String(), "divider: pps resync\n")
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()

	logger.Log("chip", "reset")
	logger.Log("chip", "reset")
	logger.Log("chip", "reset")

	b := &strings.Builder{}
	logger.Write(b)
	test.ExpectEquality(t, b.String(), "chip: reset (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("test", "a")
	logger.Log("test", "b")
	logger.Log("test", "c")

	b := &strings.Builder{}
	logger.Tail(b, 2)
	test.ExpectEquality(t, b.String(), "test: b\ntest: c\n")
}
