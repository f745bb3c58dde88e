/*
 * conventions.go, part of molbox.
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

//Factories for every convention in which simulation programs and file
//formats describe a box. They all end up in the same place, newBox, so a
//box is validated in the same way no matter where it came from.

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//FromVectors returns a box with the given edge vectors, one per row of a
//3x3 matrix. The matrix is copied, not kept, so the caller can do whatever
//with it afterwards. The optional precision (default DefPrecision) sets
//the decimals kept by the derived values of the box.
func FromVectors(vectors mat.Matrix, precision ...int) (*Box, error) {
	if vectors == nil {
		return nil, InvalidBoxError{NilInput, []string{"FromVectors"}}
	}
	if r, c := vectors.Dims(); r != 3 || c != 3 {
		return nil, InvalidBoxError{fmt.Sprintf("expected a 3x3 vector matrix, got %dx%d", r, c), []string{"FromVectors"}}
	}
	B, err := newBox(mat.DenseCopyOf(vectors), precision...)
	if err != nil {
		return nil, errDecorate(err, "FromVectors")
	}
	return B, nil
}

//FromLengthsAngles returns a box with the given edge lengths and angles,
//in degrees. It is a synonym of New, under the name used by the other
//conventions.
func FromLengthsAngles(lengths, angles []float64, precision ...int) (*Box, error) {
	B, err := New(lengths, angles, precision...)
	if err != nil {
		return nil, errDecorate(err, "FromLengthsAngles")
	}
	return B, nil
}

//FromLengthsTiltFactors returns the box whose upper-triangular form has
//the diagonal lengths (Lx, Ly, Lz) and the tilt factors tilt (xy, xz, yz),
//in length units, as used by LAMMPS and HOOMD. If tilt is nil, a
//rectangular box is built. The box matrix it produces is exactly
//[[Lx,0,0],[xy,Ly,0],[xz,yz,Lz]], so the given parameters are recovered
//without loss from the accessors.
func FromLengthsTiltFactors(lengths, tilt []float64, precision ...int) (*Box, error) {
	if lengths == nil {
		return nil, InvalidBoxError{NilInput, []string{"FromLengthsTiltFactors"}}
	}
	if len(lengths) != 3 {
		return nil, InvalidBoxError{fmt.Sprintf("expected 3 diagonal lengths, got %d", len(lengths)), []string{"FromLengthsTiltFactors"}}
	}
	for _, v := range lengths {
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, InvalidBoxError{fmt.Sprintf("%s: %v", NonPositiveLengths, lengths), []string{"FromLengthsTiltFactors"}}
		}
	}
	if tilt == nil {
		tilt = []float64{0, 0, 0}
	}
	if len(tilt) != 3 {
		return nil, InvalidBoxError{fmt.Sprintf("expected 3 tilt factors, got %d", len(tilt)), []string{"FromLengthsTiltFactors"}}
	}
	vectors := mat.NewDense(3, 3, []float64{
		lengths[0], 0, 0,
		tilt[0], lengths[1], 0,
		tilt[1], tilt[2], lengths[2],
	})
	B, err := newBox(vectors, precision...)
	if err != nil {
		return nil, errDecorate(err, "FromLengthsTiltFactors")
	}
	return B, nil
}

//FromLoHiTiltFactors returns a box from the lower and upper bounds and the
//tilt factors (xy, xz, yz) of a LAMMPS triclinic cell. The bounds are the
//ones LAMMPS prints, which include the extra extent produced by the tilts,
//so the tilted spans are taken back out of hi-lo before building the box.
//The origin information in lo is discarded: boxes only describe the shape
//of the cell. If tilt is nil, a rectangular box is built.
func FromLoHiTiltFactors(lo, hi, tilt []float64, precision ...int) (*Box, error) {
	if lo == nil || hi == nil {
		return nil, InvalidBoxError{NilInput, []string{"FromLoHiTiltFactors"}}
	}
	if len(lo) != 3 || len(hi) != 3 {
		return nil, InvalidBoxError{fmt.Sprintf("expected 3 lower and 3 upper bounds, got %d and %d", len(lo), len(hi)), []string{"FromLoHiTiltFactors"}}
	}
	if tilt == nil {
		tilt = []float64{0, 0, 0}
	}
	if len(tilt) != 3 {
		return nil, InvalidBoxError{fmt.Sprintf("expected 3 tilt factors, got %d", len(tilt)), []string{"FromLoHiTiltFactors"}}
	}
	xy, xz, yz := tilt[0], tilt[1], tilt[2]
	lengths := []float64{
		(hi[0] - lo[0]) - math.Max(0, xy) + math.Min(0, xy) - math.Max(0, xz) + math.Min(0, xz),
		(hi[1] - lo[1]) - math.Max(0, yz) + math.Min(0, yz),
		hi[2] - lo[2],
	}
	B, err := FromLengthsTiltFactors(lengths, tilt, precision...)
	if err != nil {
		return nil, errDecorate(err, "FromLoHiTiltFactors")
	}
	return B, nil
}

//FromMinsMaxsAngles returns a box whose edge lengths are the per-axis
//spans maxs-mins, with the given angles between the edges, in degrees. If
//angles is nil, a rectangular box is built. As with FromLoHiTiltFactors,
//only the spans survive; where the cell sits in space is not a property of
//a box.
func FromMinsMaxsAngles(mins, maxs, angles []float64, precision ...int) (*Box, error) {
	if mins == nil || maxs == nil {
		return nil, InvalidBoxError{NilInput, []string{"FromMinsMaxsAngles"}}
	}
	if len(mins) != 3 || len(maxs) != 3 {
		return nil, InvalidBoxError{fmt.Sprintf("expected 3 minimum and 3 maximum coordinates, got %d and %d", len(mins), len(maxs)), []string{"FromMinsMaxsAngles"}}
	}
	lengths := []float64{maxs[0] - mins[0], maxs[1] - mins[1], maxs[2] - mins[2]}
	B, err := New(lengths, angles, precision...)
	if err != nil {
		return nil, errDecorate(err, "FromMinsMaxsAngles")
	}
	return B, nil
}

//FromUvecLengths returns a box whose ith edge vector is the ith row of
//uvec scaled by the ith length. uvec must be a 3x3 matrix of unit vectors;
//rows whose norm strays from 1 by more than about 1e-6 are rejected, since
//silently normalizing them would hide broken input.
func FromUvecLengths(uvec mat.Matrix, lengths []float64, precision ...int) (*Box, error) {
	if uvec == nil || lengths == nil {
		return nil, InvalidBoxError{NilInput, []string{"FromUvecLengths"}}
	}
	if r, c := uvec.Dims(); r != 3 || c != 3 {
		return nil, InvalidBoxError{fmt.Sprintf("expected a 3x3 unit vector matrix, got %dx%d", r, c), []string{"FromUvecLengths"}}
	}
	if len(lengths) != 3 {
		return nil, InvalidBoxError{fmt.Sprintf("expected 3 edge lengths, got %d", len(lengths)), []string{"FromUvecLengths"}}
	}
	for _, v := range lengths {
		if !(v > 0) || math.IsInf(v, 0) {
			return nil, InvalidBoxError{fmt.Sprintf("%s: %v", NonPositiveLengths, lengths), []string{"FromUvecLengths"}}
		}
	}
	vectors := mat.NewDense(3, 3, nil)
	row := make([]float64, 3)
	for i := 0; i < 3; i++ {
		row[0], row[1], row[2] = uvec.At(i, 0), uvec.At(i, 1), uvec.At(i, 2)
		norm := floats.Norm(row, 2)
		//a NaN norm fails this comparison as well
		if !(math.Abs(norm-1) <= unitTol) {
			return nil, InvalidBoxError{fmt.Sprintf("row %d is not a unit vector, its norm is %v", i, norm), []string{"FromUvecLengths"}}
		}
		floats.Scale(lengths[i], row)
		vectors.SetRow(i, row)
	}
	B, err := newBox(vectors, precision...)
	if err != nil {
		return nil, errDecorate(err, "FromUvecLengths")
	}
	return B, nil
}

//FromFlat returns a box from the 9 elements of its matrix in row-major
//order, the convention used for the box argument of trajectory readers and
//writers. It is the inverse of the Flat method. The slice is copied, not
//kept.
func FromFlat(flat []float64, precision ...int) (*Box, error) {
	if flat == nil {
		return nil, InvalidBoxError{NilInput, []string{"FromFlat"}}
	}
	if len(flat) != 9 {
		return nil, InvalidBoxError{fmt.Sprintf("expected 9 elements, got %d", len(flat)), []string{"FromFlat"}}
	}
	data := make([]float64, 9)
	copy(data, flat)
	B, err := newBox(mat.NewDense(3, 3, data), precision...)
	if err != nil {
		return nil, errDecorate(err, "FromFlat")
	}
	return B, nil
}

//BoundingBox returns the smallest rectangular box that spans all the given
//coordinates, one point per row of an Nx3 matrix. Only the per-axis spans
//are kept, not where the points sit. Coordinates that are flat along some
//axis (a single point, or a planar molecule) don't span a volume, and are
//rejected like any other degenerate input.
func BoundingBox(coords mat.Matrix, precision ...int) (*Box, error) {
	if coords == nil {
		return nil, InvalidBoxError{NilInput, []string{"BoundingBox"}}
	}
	r, c := coords.Dims()
	if c != 3 || r < 1 {
		return nil, InvalidBoxError{fmt.Sprintf("expected an Nx3 coordinate matrix, got %dx%d", r, c), []string{"BoundingBox"}}
	}
	mins := []float64{coords.At(0, 0), coords.At(0, 1), coords.At(0, 2)}
	maxs := []float64{mins[0], mins[1], mins[2]}
	for i := 1; i < r; i++ {
		for j := 0; j < 3; j++ {
			v := coords.At(i, j)
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}
	B, err := FromMinsMaxsAngles(mins, maxs, nil, precision...)
	if err != nil {
		return nil, errDecorate(err, "BoundingBox")
	}
	return B, nil
}
