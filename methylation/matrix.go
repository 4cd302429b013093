// Copyright 2021 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package methylation

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// BetaMatrix is a dense probes x samples matrix of methylation beta
// values. Missing measurements are stored as NaN. Read-only once
// constructed.
type BetaMatrix struct {
	nRow, nCol int
	data       []float64 // row-major nRow*nCol array.
}

// NewBetaMatrix wraps data, a row-major nRow*nCol array, without
// copying it.
func NewBetaMatrix(nRow, nCol int, data []float64) *BetaMatrix {
	if len(data) != nRow*nCol {
		panic(fmt.Sprintf("matrix data has %d values, want %d x %d", len(data), nRow, nCol))
	}
	return &BetaMatrix{
		nRow: nRow,
		nCol: nCol,
		data: data,
	}
}

// NRow returns the number of probes (rows).
func (m *BetaMatrix) NRow() int { return m.nRow }

// NCol returns the number of samples (columns).
func (m *BetaMatrix) NCol() int { return m.nCol }

// At returns the beta value of probe i in sample j. NaN means missing.
func (m *BetaMatrix) At(i, j int) float64 { return m.data[i*m.nCol+j] }

// Row returns the beta values of probe i across all samples, as a view
// into the matrix.
func (m *BetaMatrix) Row(i int) []float64 { return m.data[i*m.nCol : (i+1)*m.nCol] }

// rowRange returns the smallest and largest non-missing beta value in
// row i. ok is false when every sample in the row is missing.
func (m *BetaMatrix) rowRange(i int) (lo, hi float64, ok bool) {
	for _, v := range m.Row(i) {
		if math.IsNaN(v) {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, ok
}

// validateValues checks that every non-missing value lies in [0, 1].
func (m *BetaMatrix) validateValues() error {
	for i, v := range m.data {
		if math.IsNaN(v) {
			continue
		}
		if v < 0 || v > 1 {
			return errors.Wrapf(ErrInvalidInput, "beta value out of [0, 1] at probe %d, sample %d: %v",
				i/m.nCol, i%m.nCol, v)
		}
	}
	return nil
}
