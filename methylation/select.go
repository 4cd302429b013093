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
	"context"
	"math"
	"sort"

	"github.com/grailbio/base/log"
	"github.com/grailbio/methyl/annotation"
	"github.com/pkg/errors"
)

// AUC cutoffs for pool membership. The ranges in Opts gate the beta
// spread; these gate the discriminative score. Fixed by design.
//
// TODO: expose these through Opts if a caller ever needs to loosen them.
const (
	hyperAUCMin = 0.80
	hypoAUCMax  = 0.20
)

// Selection holds the two retained site panels, as 0-based row indices
// into the input matrix, in decreasing priority order: hyper sites by
// descending AUC, hypo sites by ascending AUC.
type Selection struct {
	Hyper []int
	Hypo  []int
}

// SelectInformativeSites picks up to opts.MaxSites spatially diverse
// informative probes from a beta matrix (rows are probes, columns are
// samples) and a per-probe AUC score vector. The matrix, scores, and
// the annotation table resolved through provider must be aligned row
// for row; the alignment is checked by row count only.
//
// Probes whose beta spread across samples exceeds the configured range
// gates and whose AUC clears the fixed cutoffs form a hyper- and a
// hypo-methylated candidate pool. Each pool is ranked by AUC and
// independently reduced so that no two retained probes on one
// chromosome lie within opts.MinDistance bases of each other, keeping
// at most opts.MaxSites/2 probes per pool.
//
// All validation happens before any computation; on error the returned
// Selection is empty and the error wraps one of ErrInvalidParameter,
// ErrDimensionMismatch, or ErrInvalidInput.
func SelectInformativeSites(ctx context.Context, matrix *BetaMatrix, scores []float64,
	opts Opts, provider annotation.Provider) (Selection, error) {
	if err := validateOpts(opts); err != nil {
		return Selection{}, err
	}
	probes, err := provider.Table(ctx, opts.Platform, opts.Genome)
	if err != nil {
		return Selection{}, err
	}
	if matrix.NRow() != len(scores) || matrix.NRow() != probes.NRows() {
		return Selection{}, errors.Wrapf(ErrDimensionMismatch,
			"matrix has %d rows and %d scores, but the %s/%s annotation lists %d probes; supply one matrix row per probe, with non-probe rows excluded",
			matrix.NRow(), len(scores), opts.Platform, opts.Genome, probes.NRows())
	}
	if err := matrix.validateValues(); err != nil {
		return Selection{}, err
	}
	if err := validateScores(scores); err != nil {
		return Selection{}, err
	}

	minDistance := int(opts.MinDistance)
	target := opts.MaxSites / 2
	log.Printf("selecting informative sites: genome %s, platform %s, target %d+%d, min distance %dbp, hyper range %v, hypo range %v",
		opts.Genome, opts.Platform, target, target, minDistance, opts.HyperRange, opts.HypoRange)

	stats := Stats{Sites: matrix.NRow(), Samples: matrix.NCol()}
	var hyper, hypo []int
	for i := 0; i < matrix.NRow(); i++ {
		lo, hi, ok := matrix.rowRange(i)
		if !ok {
			stats.AllMissingSites++
			continue
		}
		// A missing score fails both comparisons, excluding the probe.
		if lo < opts.HyperRange[0] && hi > opts.HyperRange[1] && scores[i] > hyperAUCMin {
			hyper = append(hyper, i)
		}
		if lo < opts.HypoRange[0] && hi > opts.HypoRange[1] && scores[i] < hypoAUCMax {
			hypo = append(hypo, i)
		}
	}
	stats.RawHyper, stats.RawHypo = len(hyper), len(hypo)

	// Best discriminators first: highest AUC for hyper sites, lowest for
	// hypo sites. Stable, so ties keep their input row order.
	sort.SliceStable(hyper, func(i, j int) bool { return scores[hyper[i]] > scores[hyper[j]] })
	sort.SliceStable(hypo, func(i, j int) bool { return scores[hypo[i]] < scores[hypo[j]] })

	sel := Selection{
		Hyper: ReduceClusters(hyper, target, minDistance, probes),
		Hypo:  ReduceClusters(hypo, target, minDistance, probes),
	}
	stats.Hyper, stats.Hypo = len(sel.Hyper), len(sel.Hypo)
	log.Printf("informative site selection done: %s", stats)
	return sel, nil
}

func validateScores(scores []float64) error {
	for i, v := range scores {
		if math.IsNaN(v) {
			continue
		}
		if v < 0 || v > 1 {
			return errors.Wrapf(ErrInvalidInput, "AUC score out of [0, 1] at probe %d: %v", i, v)
		}
	}
	return nil
}
