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
	"math"
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/pkg/errors"
)

func TestRowRange(t *testing.T) {
	nan := math.NaN()
	m := NewBetaMatrix(3, 3, []float64{
		0.05, 0.95, 0.50,
		nan, 0.30, nan,
		nan, nan, nan,
	})

	lo, hi, ok := m.rowRange(0)
	expect.True(t, ok)
	expect.EQ(t, lo, 0.05)
	expect.EQ(t, hi, 0.95)

	lo, hi, ok = m.rowRange(1)
	expect.True(t, ok)
	expect.EQ(t, lo, 0.30)
	expect.EQ(t, hi, 0.30)

	_, _, ok = m.rowRange(2)
	expect.False(t, ok)
}

func TestValidateValues(t *testing.T) {
	expect.NoError(t, NewBetaMatrix(1, 3, []float64{0, math.NaN(), 1}).validateValues())

	err := NewBetaMatrix(2, 2, []float64{0.5, 0.5, 0.5, 1.5}).validateValues()
	expect.True(t, err != nil)
	expect.EQ(t, errors.Cause(err), ErrInvalidInput)

	err = NewBetaMatrix(1, 2, []float64{-0.1, 0.5}).validateValues()
	expect.True(t, err != nil)
	expect.EQ(t, errors.Cause(err), ErrInvalidInput)
}

func TestMatrixAccessors(t *testing.T) {
	m := NewBetaMatrix(2, 2, []float64{0.1, 0.2, 0.3, 0.4})
	expect.EQ(t, m.NRow(), 2)
	expect.EQ(t, m.NCol(), 2)
	expect.EQ(t, m.At(1, 0), 0.3)
	expect.EQ(t, m.Row(1), []float64{0.3, 0.4})
}
