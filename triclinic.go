/*
 * triclinic.go, part of molbox.
 *
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
 *
 * molbox is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package molbox

//The math for going between the 3 descriptions of a triclinic cell:
//Bravais lengths and angles, the LAMMPS-style upper-triangular form
//(lengths plus tilt factors) and the raw vector matrix.

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//vectorsFromLengthsAngles builds the box matrix for the given cell lengths
//and angles (alpha, beta, gamma, in degrees). The first vector lies along
//the X axis and the second on the XY plane, so the matrix comes out in the
//upper-triangular form. Inputs must have been validated by the caller.
func vectorsFromLengthsAngles(lengths, angles []float64) *mat.Dense {
	a, b, c := lengths[0], lengths[1], lengths[2]
	cosa := math.Cos(angles[0] * Deg2Rad)
	cosb := math.Cos(angles[1] * Deg2Rad)
	cosg := math.Cos(angles[2] * Deg2Rad)
	sing := math.Sin(angles[2] * Deg2Rad)
	cx := c * cosb
	cy := c * (cosa - cosb*cosg) / sing
	//a jointly impossible set of angles makes the radicand negative, which
	//clampSqrt turns into a zero-volume matrix, rejected by newBox.
	cz := clampSqrt(c*c - cx*cx - cy*cy)
	return mat.NewDense(3, 3, []float64{
		a, 0, 0,
		b * cosg, b * sing, 0,
		cx, cy, cz,
	})
}

//canonicalForm returns the parameters of the upper-triangular form of the
//box, i.e. the Lx, Ly, Lz diagonal and the xy, xz, yz tilt factors of the
//rotated matrix [[Lx,0,0],[xy,Ly,0],[xz,yz,Lz]] that has the same lengths
//and angles as the box. The tilt factors carry length units, as in LAMMPS.
func canonicalForm(vectors *mat.Dense) (Lx, Ly, Lz, xy, xz, yz float64) {
	v0 := vectors.RawRowView(0)
	v1 := vectors.RawRowView(1)
	v2 := vectors.RawRowView(2)
	Lx = floats.Norm(v0, 2)
	xy = floats.Dot(v1, v0) / Lx
	Ly = clampSqrt(floats.Dot(v1, v1) - xy*xy)
	xz = floats.Dot(v2, v0) / Lx
	yz = (floats.Dot(v2, v1) - xy*xz) / Ly
	Lz = clampSqrt(floats.Dot(v2, v2) - xz*xz - yz*yz)
	return Lx, Ly, Lz, xy, xz, yz
}

//cellAngles returns the alpha, beta and gamma angles of the box, in
//degrees. Alpha is the angle between the second and third vectors, beta
//between the first and third, and gamma between the first and second.
func cellAngles(vectors *mat.Dense) (alpha, beta, gamma float64) {
	v0 := vectors.RawRowView(0)
	v1 := vectors.RawRowView(1)
	v2 := vectors.RawRowView(2)
	alpha = vecAngle(v1, v2)
	beta = vecAngle(v0, v2)
	gamma = vecAngle(v0, v1)
	return alpha, beta, gamma
}

//vecAngle returns the angle between 2 vectors, in degrees.
func vecAngle(v1, v2 []float64) float64 {
	normproduct := floats.Norm(v1, 2) * floats.Norm(v2, 2)
	dotprod := floats.Dot(v1, v2)
	argument := dotprod / normproduct
	//Take care of floating point math errors
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.0
	}
	return angle * Rad2Deg
}
