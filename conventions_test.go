package molbox

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/mat"
)

//TestLengthsAnglesRoundTrip builds boxes from known cell parameters and
//checks that the same parameters come back out of the accessors.
func TestLengthsAnglesRoundTrip(Te *testing.T) {
	cases := [][]float64{
		{2, 2, 2, 90, 90, 90},
		{3.5, 4.1, 5.2, 90, 90, 90},
		{2, 3, 4, 90, 90, 120},
		{5, 5, 5, 60, 60, 60},
		{4.9, 5.1, 6.3, 77.3, 88.1, 101.7},
	}
	approx := cmpopts.EquateApprox(0, 1e-6)
	for _, c := range cases {
		B, err := New(c[:3], c[3:])
		if err != nil {
			Te.Fatal(err)
		}
		if diff := cmp.Diff(c, B.BravaisParameters(), approx); diff != "" {
			Te.Errorf("parameters %v did not survive the trip (-want +got):\n%s", c, diff)
		}
		//a box rebuilt from the derived values describes the same cell
		B2, err := New(B.Lengths(), B.Angles())
		if err != nil {
			Te.Fatal(err)
		}
		if diff := cmp.Diff(B.BravaisParameters(), B2.BravaisParameters(), approx); diff != "" {
			Te.Errorf("rebuilt box drifted (-want +got):\n%s", diff)
		}
	}
}

//TestVectorsRoundTrip derives cell parameters from a matrix already in
//upper-triangular orientation, rebuilds a box from them, and checks that
//the original matrix comes back.
func TestVectorsRoundTrip(Te *testing.T) {
	f := []float64{2, 0, 0, -1.5, 2.598076, 0, 0, 0, 4}
	B, err := FromFlat(f)
	if err != nil {
		Te.Fatal(err)
	}
	C, err := FromLengthsAngles(B.Lengths(), B.Angles())
	if err != nil {
		Te.Fatal(err)
	}
	approx := cmpopts.EquateApprox(0, 1e-5)
	if diff := cmp.Diff(B.Flat(), C.Flat(), approx); diff != "" {
		Te.Errorf("vectors not recovered (-want +got):\n%s", diff)
	}
}

//TestRandomRoundTrip does the same with random cells. Not every random
//angle triple describes a cell that can exist in space; those are
//rejected by New and skipped here.
func TestRandomRoundTrip(Te *testing.T) {
	r := rand.New(rand.NewSource(42))
	approx := cmpopts.EquateApprox(0, 1e-5)
	built := 0
	for i := 0; i < 200; i++ {
		params := []float64{
			1 + 9*r.Float64(), 1 + 9*r.Float64(), 1 + 9*r.Float64(),
			30 + 120*r.Float64(), 30 + 120*r.Float64(), 30 + 120*r.Float64(),
		}
		B, err := New(params[:3], params[3:])
		if err != nil {
			continue
		}
		built++
		if diff := cmp.Diff(params, B.BravaisParameters(), approx); diff != "" {
			Te.Fatalf("parameters %v did not survive the trip (-want +got):\n%s", params, diff)
		}
	}
	if built < 50 {
		Te.Errorf("only %d of 200 random cells were buildable", built)
	}
	fmt.Println("random cells built:", built)
}

//TestFromVectors checks construction from a raw matrix, and that the
//matrix is copied rather than kept.
func TestFromVectors(Te *testing.T) {
	m := mat.NewDense(3, 3, []float64{2, 0, 0, -1.5, 2.598076, 0, 0, 0, 4})
	B, err := FromVectors(m)
	if err != nil {
		Te.Fatal(err)
	}
	m.Set(0, 0, 1000) //the box must not notice
	if B.Vectors().At(0, 0) != 2 {
		Te.Error("the box kept a reference to the caller's matrix")
	}
	approx := cmpopts.EquateApprox(0, 1e-3)
	if diff := cmp.Diff([]float64{90, 90, 120}, B.Angles(), approx); diff != "" {
		Te.Errorf("angles mismatch (-want +got):\n%s", diff)
	}
}

//TestTiltRoundTrip builds boxes straight from upper-triangular parameters
//and checks that exactly the same numbers come back.
func TestTiltRoundTrip(Te *testing.T) {
	cases := [][]float64{
		{6, 7, 8, 0, 0, 0},
		{6, 7, 8, 1.2, -0.8, 0.5},
		{10, 10, 10, 5, -5, 5},
		{2, 3, 4, 0.001, 0.002, -0.003},
	}
	for _, c := range cases {
		B, err := FromLengthsTiltFactors(c[:3], c[3:])
		if err != nil {
			Te.Fatal(err)
		}
		got := []float64{B.Lx(), B.Ly(), B.Lz()}
		got = append(got, B.TiltFactors()...)
		if diff := cmp.Diff(c, got); diff != "" {
			Te.Errorf("upper-triangular parameters %v not recovered (-want +got):\n%s", c, diff)
		}
		//the scalar accessors must agree, in order, with the slice form
		scalar := []float64{B.XY(), B.XZ(), B.YZ()}
		if diff := cmp.Diff(c[3:], scalar); diff != "" {
			Te.Errorf("XY/XZ/YZ for %v (-want +got):\n%s", c, diff)
		}
	}
}

//TestFromLoHi reproduces by hand the bound adjustment of a tilted cell
//and checks it against the direct construction.
func TestFromLoHi(Te *testing.T) {
	lo := []float64{-5, -5, -5}
	hi := []float64{5, 5, 5}
	tilt := []float64{2, 1, -0.5}
	B, err := FromLoHiTiltFactors(lo, hi, tilt)
	if err != nil {
		Te.Fatal(err)
	}
	//the x span of 10 loses both positive tilts, the y span the negative yz
	want, err := FromLengthsTiltFactors([]float64{7, 9.5, 10}, tilt)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(want.Flat(), B.Flat()); diff != "" {
		Te.Errorf("boxes differ (-want +got):\n%s", diff)
	}
	R, err := FromLoHiTiltFactors([]float64{0, 0, 0}, []float64{4, 5, 6}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]float64{4, 5, 6}, R.Lengths()); diff != "" {
		Te.Errorf("lengths from plain bounds (-want +got):\n%s", diff)
	}
}

//TestFromMinsMaxs checks the span-based construction.
func TestFromMinsMaxs(Te *testing.T) {
	B, err := FromMinsMaxsAngles([]float64{-2, -1.5, 0}, []float64{2, 4.5, 8}, []float64{90, 90, 60})
	if err != nil {
		Te.Fatal(err)
	}
	approx := cmpopts.EquateApprox(0, 1e-6)
	if diff := cmp.Diff([]float64{4, 6, 8, 90, 90, 60}, B.BravaisParameters(), approx); diff != "" {
		Te.Errorf("parameters mismatch (-want +got):\n%s", diff)
	}
	//maxs not above mins means no extent on that axis
	if _, err = FromMinsMaxsAngles([]float64{0, 0, 0}, []float64{1, 1, 0}, nil); err == nil {
		Te.Error("empty z span accepted")
	}
}

//TestFromUvecLengths checks construction from unit directions plus
//lengths, and that almost-unit rows are caught.
func TestFromUvecLengths(Te *testing.T) {
	s := math.Sqrt(3) / 2
	uvec := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		-0.5, s, 0,
		0, 0, 1,
	})
	B, err := FromUvecLengths(uvec, []float64{2, 3, 4})
	if err != nil {
		Te.Fatal(err)
	}
	approx := cmpopts.EquateApprox(0, 1e-6)
	if diff := cmp.Diff([]float64{2, 3, 4, 90, 90, 120}, B.BravaisParameters(), approx); diff != "" {
		Te.Errorf("parameters mismatch (-want +got):\n%s", diff)
	}
	scaled := mat.NewDense(3, 3, []float64{
		2, 0, 0,
		-0.5, s, 0,
		0, 0, 1,
	})
	if _, err = FromUvecLengths(scaled, []float64{2, 3, 4}); err == nil {
		Te.Error("non-unit row accepted")
	}
	undirected := mat.NewDense(3, 3, []float64{
		math.NaN(), 0, 0,
		-0.5, s, 0,
		0, 0, 1,
	})
	if _, err = FromUvecLengths(undirected, []float64{2, 3, 4}); err == nil {
		Te.Error("NaN direction accepted")
	}
}

//TestFlatRoundTrip checks the flat 9-element form against its factory.
func TestFlatRoundTrip(Te *testing.T) {
	f := []float64{2, 0, 0, -1.5, 2.598076, 0, 0.1, -0.2, 4}
	B, err := FromFlat(f)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff(f, B.Flat()); diff != "" {
		Te.Errorf("flat form not preserved (-want +got):\n%s", diff)
	}
	C, err := FromFlat(B.Flat(), B.Precision())
	if err != nil {
		Te.Fatal(err)
	}
	if !mat.Equal(B.Vectors(), C.Vectors()) {
		Te.Error("flat round trip changed the vectors")
	}
	if _, err = FromFlat([]float64{1, 2, 3}); err == nil {
		Te.Error("short slice accepted")
	}
}

//TestBoundingBox checks the box around a small set of points.
func TestBoundingBox(Te *testing.T) {
	coords := mat.NewDense(5, 3, []float64{
		0, 0, 0,
		1, 2, 0.5,
		-1, 0.5, 3,
		0.5, -2, 1,
		0.25, 0.25, 0.25,
	})
	B, err := BoundingBox(coords)
	if err != nil {
		Te.Fatal(err)
	}
	if diff := cmp.Diff([]float64{2, 4, 3}, B.Lengths()); diff != "" {
		Te.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{90, 90, 90}, B.Angles()); diff != "" {
		Te.Errorf("a bounding box must be rectangular (-want +got):\n%s", diff)
	}
	//a single point spans nothing
	if _, err = BoundingBox(mat.NewDense(1, 3, []float64{1, 2, 3})); err == nil {
		Te.Error("zero-extent coordinates accepted")
	}
	fmt.Println("bounding box:", B)
}
