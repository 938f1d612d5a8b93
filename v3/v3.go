/*
 * v3.go, part of gochem.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * Gochem is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space, row-major (one atom per row).
type Matrix struct {
	*mat.Dense
}

// NewVecs builds a Matrix with 3 columns from a flat, row-major slice of data.
func NewVecs(data []float64) (*Matrix, error) {
	const cols = 3
	l := len(data)
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("input slice length %d not divisible by %d", l, cols), []string{"NewVecs"}}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

// Zeros returns a zero-filled Matrix with vecs rows.
func Zeros(vecs int) *Matrix {
	const cols = 3
	return &Matrix{mat.NewDense(vecs, cols, make([]float64, cols*vecs))}
}

// NVecs returns the number of 3D vectors (rows) held by the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

// VecView returns a view of the i-th vector (row) of the matrix.
func (F *Matrix) VecView(i int) *Matrix {
	return &Matrix{F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

// SetVec copies the 3 components of vec into row i of the matrix.
func (F *Matrix) SetVec(i int, vec [3]float64) {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	F.Set(i, 0, vec[0])
	F.Set(i, 1, vec[1])
	F.Set(i, 2, vec[2])
}

// Vec returns the 3 components of row i.
func (F *Matrix) Vec(i int) [3]float64 {
	if i >= F.NVecs() {
		panic(ErrIndexOutOfRange)
	}
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

// Error is v3's implementation of the decoration-capable error convention used
// throughout the rest of the dependency pack (see the root package's Error type).
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string { return err.message }

func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// PanicMsg is used for the package's few panic-worthy programmer errors.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrIndexOutOfRange = PanicMsg("v3: index out of range")
)
