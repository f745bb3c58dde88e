/*
 * box.go, part of molbox.
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

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//DefPrecision is the number of decimal places to which the derived values
//of a box are rounded when no precision is given at construction.
const DefPrecision int = 6

//Box represents the parallelepiped bounding volume of a simulation system.
//It holds the 3 edge vectors of the cell, one per row of a 3x3 matrix, plus
//the number of decimals to which every derived quantity (lengths, angles,
//tilt factors, volume) is rounded before being returned.
//
//A Box is immutable. None of its methods alters it, so the same Box can be
//read from any number of goroutines without locking. To "change" a box,
//build a new one.
type Box struct {
	vectors   *mat.Dense //row i is the ith edge vector of the cell
	precision int
}

//New returns a box with the given edge lengths and the given angles between
//the edges, in degrees. The first vector of the box will lie along X and the
//second on the XY plane. If angles is nil, a rectangular box (all angles 90)
//is built. The optional precision (default DefPrecision) sets the decimals
//kept by the derived values of the box.
//Lengths must be finite and strictly positive, and angles must lie strictly
//between 0 and 180 degrees, but not every combination of valid angles
//describes a cell that can exist in space; those that don't are rejected too.
func New(lengths, angles []float64, precision ...int) (*Box, error) {
	if lengths == nil {
		return nil, InvalidBoxError{NilInput, []string{"New"}}
	}
	if len(lengths) != 3 {
		return nil, InvalidBoxError{fmt.Sprintf("expected 3 edge lengths, got %d", len(lengths)), []string{"New"}}
	}
	for _, v := range lengths {
		//NaN is not greater than zero, so it fails here too
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, InvalidBoxError{fmt.Sprintf("%s: %v", NonPositiveLengths, lengths), []string{"New"}}
		}
	}
	if angles == nil {
		angles = []float64{90, 90, 90}
	}
	if len(angles) != 3 {
		return nil, InvalidBoxError{fmt.Sprintf("expected 3 angles, got %d", len(angles)), []string{"New"}}
	}
	for _, v := range angles {
		if !(v > 0 && v < 180) {
			return nil, InvalidBoxError{fmt.Sprintf("%s: %v", AnglesOutOfRange, angles), []string{"New"}}
		}
	}
	B, err := newBox(vectorsFromLengthsAngles(lengths, angles), precision...)
	if err != nil {
		return nil, errDecorate(err, "New")
	}
	return B, nil
}

//newBox is the one constructor behind every exported factory. It takes
//ownership of vectors, which must be 3x3, and checks that they are finite
//and span an actual volume. Every box in existence has gone through it.
func newBox(vectors *mat.Dense, precision ...int) (*Box, error) {
	prec := DefPrecision
	if len(precision) > 0 {
		prec = precision[0]
	}
	if prec < 0 {
		return nil, InvalidBoxError{fmt.Sprintf("%s: %d", NegativePrecision, prec), []string{"newBox"}}
	}
	if r, c := vectors.Dims(); r != 3 || c != 3 {
		return nil, InvalidBoxError{fmt.Sprintf("expected a 3x3 vector matrix, got %dx%d", r, c), []string{"newBox"}}
	}
	for _, v := range vectors.RawMatrix().Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, InvalidBoxError{NonFiniteVectors, []string{"newBox"}}
		}
	}
	//phrased as "not above the tolerance" so a NaN determinant, should one
	//ever get here, is rejected rather than accepted
	if !(math.Abs(det(vectors)) > degenerateTol) {
		return nil, InvalidBoxError{DegenerateVectors, []string{"newBox"}}
	}
	return &Box{vectors: vectors, precision: prec}, nil
}

//Vectors returns a copy of the box matrix. Each row is one edge vector of
//the cell. The values are exact, not rounded to the box precision, so a
//box can always be rebuilt, without loss, from what Vectors returns.
func (B *Box) Vectors() *mat.Dense {
	return mat.DenseCopyOf(B.vectors)
}

//Precision returns the number of decimal places to which the derived
//values of the box are rounded.
func (B *Box) Precision() int {
	return B.precision
}

//Lengths returns the Euclidean lengths a, b, c of the 3 box vectors,
//rounded to the box precision. If a slice with at least 3 elements is
//given, the result is put there, and no new memory is allocated.
func (B *Box) Lengths(dest ...[]float64) []float64 {
	d := getCopySlice(3, dest...)
	for i := 0; i < 3; i++ {
		d[i] = floats.Norm(B.vectors.RawRowView(i), 2)
	}
	return roundAllTo(d, B.precision)
}

//Angles returns the alpha, beta, gamma angles between the box vectors, in
//degrees, rounded to the box precision. Alpha is the angle between the
//second and third vectors, beta between the first and third, and gamma
//between the first and second. If a slice with at least 3 elements is
//given, the result is put there, and no new memory is allocated.
func (B *Box) Angles(dest ...[]float64) []float64 {
	d := getCopySlice(3, dest...)
	d[0], d[1], d[2] = cellAngles(B.vectors)
	return roundAllTo(d, B.precision)
}

//TiltFactors returns the xy, xz, yz tilt factors of the box, rounded to
//the box precision. The tilt factors carry length units, following the
//LAMMPS convention. If a slice with at least 3 elements is given, the
//result is put there, and no new memory is allocated.
func (B *Box) TiltFactors(dest ...[]float64) []float64 {
	d := getCopySlice(3, dest...)
	_, _, _, d[0], d[1], d[2] = canonicalForm(B.vectors)
	return roundAllTo(d, B.precision)
}

//BravaisParameters returns the 3 lengths followed by the 3 angles of the
//box, rounded to the box precision. If a slice with at least 6 elements is
//given, the result is put there, and no new memory is allocated.
func (B *Box) BravaisParameters(dest ...[]float64) []float64 {
	d := getCopySlice(6, dest...)
	B.Lengths(d[:3])
	B.Angles(d[3:])
	return d
}

//Lx returns the first diagonal element of the upper-triangular form of the
//box, rounded to the box precision.
func (B *Box) Lx() float64 {
	Lx, _, _, _, _, _ := canonicalForm(B.vectors)
	return roundTo(Lx, B.precision)
}

//Ly returns the second diagonal element of the upper-triangular form of
//the box, rounded to the box precision.
func (B *Box) Ly() float64 {
	_, Ly, _, _, _, _ := canonicalForm(B.vectors)
	return roundTo(Ly, B.precision)
}

//Lz returns the third diagonal element of the upper-triangular form of the
//box, rounded to the box precision.
func (B *Box) Lz() float64 {
	_, _, Lz, _, _, _ := canonicalForm(B.vectors)
	return roundTo(Lz, B.precision)
}

//XY returns the xy tilt factor of the box, rounded to the box precision.
func (B *Box) XY() float64 {
	_, _, _, xy, _, _ := canonicalForm(B.vectors)
	return roundTo(xy, B.precision)
}

//XZ returns the xz tilt factor of the box, rounded to the box precision.
func (B *Box) XZ() float64 {
	_, _, _, _, xz, _ := canonicalForm(B.vectors)
	return roundTo(xz, B.precision)
}

//YZ returns the yz tilt factor of the box, rounded to the box precision.
func (B *Box) YZ() float64 {
	_, _, _, _, _, yz := canonicalForm(B.vectors)
	return roundTo(yz, B.precision)
}

//Volume returns the volume of the box, i.e. the absolute value of the
//determinant of its matrix, rounded to the box precision.
func (B *Box) Volume() float64 {
	return roundTo(math.Abs(det(B.vectors)), B.precision)
}

//Flat returns the 9 elements of the box matrix in row-major order, the
//convention used for the box argument of trajectory readers and writers.
//The values are exact, not rounded, matching Vectors. If a slice with at
//least 9 elements is given, the result is put there, and no new memory is
//allocated.
func (B *Box) Flat(dest ...[]float64) []float64 {
	d := getCopySlice(9, dest...)
	for i := 0; i < 3; i++ {
		copy(d[3*i:3*(i+1)], B.vectors.RawRowView(i))
	}
	return d
}

//String returns a one-line description of the box in its upper-triangular
//parameters, with the number of decimals given by the box precision.
func (B *Box) String() string {
	Lx, Ly, Lz, xy, xz, yz := canonicalForm(B.vectors)
	p := B.precision
	return fmt.Sprintf("Box: Lx=%.*f, Ly=%.*f, Lz=%.*f, xy=%.*f, xz=%.*f, yz=%.*f",
		p, roundTo(Lx, p), p, roundTo(Ly, p), p, roundTo(Lz, p),
		p, roundTo(xy, p), p, roundTo(xz, p), p, roundTo(yz, p))
}
