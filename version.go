/*
 * version.go, part of dftd3.
 *
 * Copyright 2021 Raul Mera <rmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package dftd3

import "fmt"

//VersionCompact returns major, minor and patch version of the engine.
func VersionCompact() [3]int {
	v := currentEngine().Version()
	return [3]int{v / 10000, v / 100 % 100, v % 100}
}

//Version returns the engine version as "major.minor.patch".
func Version() string {
	v := VersionCompact()
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}
