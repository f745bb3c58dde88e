/*
 * boxplot_test.go
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
 */

/*Tests for the box drawing, in the form of little functions that put
actual figures in the test directory.*/

package boxplot

import (
	"fmt"
	"math"
	"testing"

	"github.com/mosdef-hub/molbox"
)

//TestProjectionPlot draws a tilted box on the 3 Cartesian planes.
func TestProjectionPlot(Te *testing.T) {
	B, err := molbox.FromLengthsTiltFactors([]float64{6, 7, 8}, []float64{2, 1, -0.5})
	if err != nil {
		Te.Fatal(err)
	}
	for _, plane := range []Plane{XY, XZ, YZ} {
		name := fmt.Sprintf("../test/box_%s", plane)
		err = ProjectionPlot(B, plane, "Tilted box, "+plane.String()+" projection", name)
		if err != nil {
			Te.Error(err)
		}
	}
}

//TestVertices checks the corners of a rectangular box.
func TestVertices(Te *testing.T) {
	B, err := molbox.New([]float64{1, 2, 3}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	v := Vertices(B)
	if r, c := v.Dims(); r != 8 || c != 3 {
		Te.Fatalf("wrong dimensions %dx%d", r, c)
	}
	//corner 7 is the far one, the sum of the 3 edge vectors
	want := []float64{1, 2, 3}
	for i, w := range want {
		if math.Abs(v.At(7, i)-w) > 1e-9 {
			Te.Errorf("far corner off along axis %d: %v", i, v.At(7, i))
		}
	}
	for i := 0; i < 3; i++ {
		if v.At(0, i) != 0 {
			Te.Error("the first corner must sit at the origin")
		}
	}
}

//TestBadInput checks the error paths.
func TestBadInput(Te *testing.T) {
	if err := ProjectionPlot(nil, XY, "", "nope"); err == nil {
		Te.Error("nil box accepted")
	}
	B, err := molbox.New([]float64{1, 1, 1}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if err := ProjectionPlot(B, Plane(42), "", "nope"); err == nil {
		Te.Error("unknown plane accepted")
	}
}
