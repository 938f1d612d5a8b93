/*
 * diagplot.go, part of gochem.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

// Package diagplot renders the scalar records a mcstep.StepLog collects --
// step number, bond/angle acceptance ratio, intramolecular energy -- as PNG
// plots. It never touches atom coordinates; it is a consumer of already
//-written diagnostics records, not a participant in the step loop.
package diagplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Record mirrors the scalar tuple a mcstep.StepLog writes for a single step.
type Record struct {
	StepNum               int
	BondRatio, AngleRatio float64
	Energy                float64
}

func basicDiagPlot(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "step"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

// RatioPlot plots bond and angle acceptance ratios against step number, one
// line each, and saves it as plotname.png. It is meant to be called
// offline against the records a CompressedStepLog wrote, not from inside
// a running simulation.
func RatioPlot(records []Record, title, plotname string) error {
	if records == nil {
		panic("diagplot: given nil records")
	}
	p := basicDiagPlot(title, "acceptance ratio")
	bond := make(plotter.XYs, len(records))
	angle := make(plotter.XYs, len(records))
	for i, r := range records {
		bond[i].X = float64(r.StepNum)
		bond[i].Y = r.BondRatio
		angle[i].X = float64(r.StepNum)
		angle[i].Y = r.AngleRatio
	}
	bondLine, err := plotter.NewLine(bond)
	if err != nil {
		return err
	}
	angleLine, err := plotter.NewLine(angle)
	if err != nil {
		return err
	}
	angleLine.Color = color.RGBA{R: 220, G: 60, B: 30, A: 255}
	p.Add(bondLine, angleLine)
	p.Legend.Add("bond", bondLine)
	p.Legend.Add("angle", angleLine)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}

// EnergyPlot plots intramolecular energy against step number and saves it
// as plotname.png.
func EnergyPlot(records []Record, title, plotname string) error {
	if records == nil {
		panic("diagplot: given nil records")
	}
	p := basicDiagPlot(title, "energy")
	pts := make(plotter.XYs, len(records))
	for i, r := range records {
		pts[i].X = float64(r.StepNum)
		pts[i].Y = r.Energy
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, fmt.Sprintf("%s.png", plotname))
}
