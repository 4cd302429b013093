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

	"github.com/grailbio/methyl/annotation"
	"github.com/pkg/errors"
)

// Opts configures informative site selection.
type Opts struct {
	// MaxSites is the total panel size. It must be a non-negative even
	// integer: half the budget goes to hyper-methylated sites, half to
	// hypo-methylated ones.
	MaxSites int
	// MinDistance is the minimum base-pair separation enforced between
	// any two retained sites on the same chromosome. Truncated to a
	// whole number of bases before use.
	MinDistance float64
	// HyperRange is the {low, high} beta spread gate for the
	// hyper-methylated pool: a probe qualifies when its smallest
	// per-sample beta is below low and its largest is above high.
	// It must hold exactly two values.
	HyperRange []float64
	// HypoRange is the equivalent gate for the hypo-methylated pool.
	HypoRange []float64
	// Platform and Genome pick the probe annotation table resolved
	// through the Provider.
	Platform annotation.Platform
	Genome   annotation.Genome
}

// DefaultOpts sets the default values to Opts.
var DefaultOpts = Opts{
	MaxSites:    20,
	MinDistance: 1000000,
	HyperRange:  []float64{0.40, 0.90},
	HypoRange:   []float64{0.10, 0.60},
	Platform:    annotation.HM450,
	Genome:      annotation.HG19,
}

func validateOpts(opts Opts) error {
	if opts.MaxSites < 0 || opts.MaxSites%2 != 0 {
		return errors.Wrapf(ErrInvalidParameter, "max-sites must be a non-negative even integer, got %d", opts.MaxSites)
	}
	// Conversion of NaN or an out-of-range float to int is
	// implementation-defined, so reject those before truncating.
	if math.IsNaN(opts.MinDistance) || opts.MinDistance >= math.MaxInt64 || opts.MinDistance <= math.MinInt64 {
		return errors.Wrapf(ErrInvalidParameter, "min-distance must be a finite base-pair count, got %v", opts.MinDistance)
	}
	if int(opts.MinDistance) < 0 {
		return errors.Wrapf(ErrInvalidParameter, "min-distance must be non-negative, got %v", opts.MinDistance)
	}
	if len(opts.HyperRange) != 2 {
		return errors.Wrapf(ErrInvalidParameter, "hyper-range must hold exactly two values, got %v", opts.HyperRange)
	}
	if len(opts.HypoRange) != 2 {
		return errors.Wrapf(ErrInvalidParameter, "hypo-range must hold exactly two values, got %v", opts.HypoRange)
	}
	return nil
}
