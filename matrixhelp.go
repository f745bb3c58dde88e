package molbox

//A bunch of unexported mathematical functions, most of them just for convenience.

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//degenerateTol is the smallest absolute value the determinant of a box
//matrix can take. At or below it, the vectors are considered collinear
//or coplanar.
const degenerateTol float64 = 1e-10

//unitTol is how far from 1.0 the norm of a direction vector can be while
//still being accepted as a unit vector.
const unitTol float64 = 1e-6

//Conversions
const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

//det returns the determinant of a 3x3 matrix. Panics if the matrix is not 3x3.
func det(A mat.Matrix) float64 {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic("Determinants are only available for 3x3 matrices")
	}
	return (A.At(0, 0)*(A.At(1, 1)*A.At(2, 2)-A.At(2, 1)*A.At(1, 2)) - A.At(1, 0)*(A.At(0, 1)*A.At(2, 2)-A.At(2, 1)*A.At(0, 2)) + A.At(2, 0)*(A.At(0, 1)*A.At(1, 2)-A.At(1, 1)*A.At(0, 2)))
}

//clampSqrt returns the square root of val, truncating small negative
//values to zero. In this package a negative radicand can only come from
//floating point noise in an otherwise valid box, or from a jointly
//impossible set of angles, which the determinant check catches later.
func clampSqrt(val float64) float64 {
	if val < 0 {
		return 0
	}
	return math.Sqrt(val)
}

//roundTo returns v rounded to prec decimal places. Ties round to the
//nearest even value, the same convention of numpy, so boxes match those
//produced by the Python simulation tools. A precision past the resolution
//of a float64 leaves the value as it is.
func roundTo(v float64, prec int) float64 {
	pow := math.Pow(10, float64(prec))
	scaled := v * pow
	if math.IsInf(pow, 1) || math.IsInf(scaled, 0) {
		//scaling overflowed, so v has no decimals left at this precision
		return v
	}
	r := math.RoundToEven(scaled) / pow
	if r == 0 {
		return 0 //avoids -0
	}
	return r
}

//roundAllTo rounds every element of v, in place, to prec decimal places.
func roundAllTo(v []float64, prec int) []float64 {
	for i, w := range v {
		v[i] = roundTo(w, prec)
	}
	return v
}

//getCopySlice returns dest[0], cut to N elements, if a dest is given and
//large enough, or a newly allocated slice of N elements otherwise.
func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0]
		if len(dest[0]) > N {
			d = dest[0][:N]
		}
	} else {
		d = make([]float64, N)
	}
	return d
}
