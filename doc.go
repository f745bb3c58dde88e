/*
 * doc.go, part of molbox.
 *
 * Copyright 2023 Raul Mera <rauldotmeraatusachdotcl>
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
 * molbox is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

/*Package molbox provides the box, the parallelepiped bounding volume of a
molecular simulation system, and lossless conversions between the conventions
different simulation programs use to describe it. A box is a value: it is
built once, validated once, and never changes, so it can be shared freely
between goroutines.

	**molbox Capabilities**

    Builds boxes from Bravais lengths and angles, from LAMMPS-style diagonal
	lengths and tilt factors, from lo/hi bounds plus tilt factors, from
	minimum and maximum coordinates plus angles, from unit direction
	vectors plus lengths, from a raw 3x3 vector matrix (any gonum matrix
	works) and from the flat 9-element slice used by trajectory readers.

    Recovers lengths, angles, tilt factors, Lx/Ly/Lz, Bravais parameters and
	the volume from any box, rounded to a per-box number of decimals.
	The underlying vectors are always kept, and returned, at full
	precision, so no conversion chain loses information.

    Rejects, at construction, anything that does not span a volume: zero or
	negative lengths, angles at or beyond 0 or 180 degrees, angle
	combinations impossible in space, and collinear or coplanar vectors.

    Computes the smallest rectangular box around a set of coordinates given
	as a gonum matrix.

    Boxes can be JSON encoded and decoded, with the decoded document going
	through the same validation as any other construction.

    The boxplot subpackage draws a box, projected on the Cartesian planes,
	using the gonum plotting library.

The box matrix is row-major: each row of the matrix returned by Vectors is
one edge vector of the cell. The same order applies to the flat form used
by Flat and FromFlat.*/
package molbox
