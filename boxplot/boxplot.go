/*
 * boxplot.go, part of molbox.
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

/*Package boxplot draws simulation boxes with the gonum plotting library.
A box is drawn as its 12 edges projected onto one of the Cartesian planes,
which is normally all one needs to eyeball whether a triclinic cell has the
tilts one meant to give it.*/
package boxplot

import (
	"fmt"
	"image/color"

	"github.com/mosdef-hub/molbox"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Plane selects the Cartesian plane onto which the box is projected.
type Plane int

const (
	XY Plane = iota
	XZ
	YZ
)

//String returns the name of the plane, e.g. "XY".
func (P Plane) String() string {
	switch P {
	case XY:
		return "XY"
	case XZ:
		return "XZ"
	case YZ:
		return "YZ"
	}
	return fmt.Sprintf("Plane(%d)", int(P))
}

//axes returns the column indexes, in a coordinate matrix, of the 2
//Cartesian axes spanning the plane.
func (P Plane) axes() (x, y int, err error) {
	switch P {
	case XY:
		return 0, 1, nil
	case XZ:
		return 0, 2, nil
	case YZ:
		return 1, 2, nil
	}
	return 0, 0, fmt.Errorf("boxplot: not a projection plane: %d", int(P))
}

//Vertices returns the 8 corners of the box as an 8x3 matrix, one corner
//per row, with the first corner at the origin. Corner i is the sum of the
//edge vectors selected by the 3 lowest bits of i, so corners 1, 2 and 4
//are the tips of the first, second and third edge vector.
func Vertices(B *molbox.Box) *mat.Dense {
	vectors := B.Vectors()
	corners := mat.NewDense(8, 3, nil)
	for i := 0; i < 8; i++ {
		for j := 0; j < 3; j++ {
			var v float64
			if i&1 != 0 {
				v += vectors.At(0, j)
			}
			if i&2 != 0 {
				v += vectors.At(1, j)
			}
			if i&4 != 0 {
				v += vectors.At(2, j)
			}
			corners.Set(i, j, v)
		}
	}
	return corners
}

//basicBoxPlot builds the empty plot on which a projection is drawn.
func basicBoxPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

/*ProjectionPlot draws the 12 edges of the box projected onto the given
  Cartesian plane, plus a marker on each projected corner, and saves the
  drawing, in png format, as plotname.png. The extension must not be
  included in plotname. Returns an error or nil.*/
func ProjectionPlot(B *molbox.Box, plane Plane, title, plotname string) error {
	if B == nil {
		return fmt.Errorf("boxplot.ProjectionPlot: given nil box")
	}
	xi, yi, err := plane.axes()
	if err != nil {
		return err
	}
	p := basicBoxPlot(title, string(plane.String()[0]), string(plane.String()[1]))
	corners := Vertices(B)
	//2 corners are joined by an edge when their indexes differ in exactly
	//one bit: each bit toggles one of the 3 edge vectors.
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit != 0 {
				continue
			}
			k := i | bit
			seg := make(plotter.XYs, 2)
			seg[0].X = corners.At(i, xi)
			seg[0].Y = corners.At(i, yi)
			seg[1].X = corners.At(k, xi)
			seg[1].Y = corners.At(k, yi)
			l, err := plotter.NewLine(seg)
			if err != nil {
				return err
			}
			l.LineStyle.Width = vg.Points(1.5)
			l.LineStyle.Color = color.RGBA{B: 255, A: 255}
			p.Add(l)
		}
	}
	points := make(plotter.XYs, 8)
	for i := 0; i < 8; i++ {
		points[i].X = corners.At(i, xi)
		points[i].Y = corners.At(i, yi)
	}
	s, err := plotter.NewScatter(points)
	if err != nil {
		return err
	}
	s.GlyphStyle.Color = color.RGBA{R: 255, A: 255}
	p.Add(s)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(4*vg.Inch, 4*vg.Inch, filename); err != nil {
		return err
	}
	return nil
}
