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
	"testing"

	"github.com/grailbio/methyl/annotation"
	"github.com/grailbio/testutil/expect"
)

func TestReduceTargetZero(t *testing.T) {
	// The nil table proves the distance check is never consulted.
	expect.EQ(t, ReduceClusters([]int{0, 1, 2}, 0, 1000, nil), []int(nil))
}

func TestReduceEmptyCandidates(t *testing.T) {
	expect.EQ(t, ReduceClusters(nil, 5, 1000, nil), []int(nil))
}

func TestReduceSameChromPair(t *testing.T) {
	tbl := testTable(
		annotation.Probe{Name: "cg0", Chrom: "chr7", Pos: 100},
		annotation.Probe{Name: "cg1", Chrom: "chr7", Pos: 200},
	)
	// The higher-priority probe wins; the other is within 1000bp of it.
	expect.EQ(t, ReduceClusters([]int{0, 1}, 2, 1000, tbl), []int{0})
	expect.EQ(t, ReduceClusters([]int{1, 0}, 2, 1000, tbl), []int{1})
}

func TestReduceDifferentChrom(t *testing.T) {
	tbl := testTable(
		annotation.Probe{Name: "cg0", Chrom: "chr1", Pos: 5000},
		annotation.Probe{Name: "cg1", Chrom: "chr2", Pos: 5000},
	)
	expect.EQ(t, ReduceClusters([]int{0, 1}, 2, 1000000, tbl), []int{0, 1})
}

func TestReduceOrderPreserved(t *testing.T) {
	tbl := testTable(
		annotation.Probe{Name: "cg0", Chrom: "chr1", Pos: 0},
		annotation.Probe{Name: "cg1", Chrom: "chr1", Pos: 2000},
		annotation.Probe{Name: "cg2", Chrom: "chr1", Pos: 4000},
		annotation.Probe{Name: "cg3", Chrom: "chr1", Pos: 500},
	)
	// cg3 falls within 1000bp of cg0; the rest survive in input order,
	// leaving fewer probes than the target without padding or error.
	expect.EQ(t, ReduceClusters([]int{0, 3, 1, 2}, 4, 1000, tbl), []int{0, 1, 2})
}

func TestReduceStopsAtTarget(t *testing.T) {
	tbl := testTable(
		annotation.Probe{Name: "cg0", Chrom: "chr1", Pos: 0},
		annotation.Probe{Name: "cg1", Chrom: "chr2", Pos: 0},
		annotation.Probe{Name: "cg2", Chrom: "chr3", Pos: 0},
	)
	expect.EQ(t, ReduceClusters([]int{0, 1, 2}, 2, 1000000, tbl), []int{0, 1})
}

func TestReduceIdempotent(t *testing.T) {
	tbl := testTable(
		annotation.Probe{Name: "cg0", Chrom: "chr1", Pos: 0},
		annotation.Probe{Name: "cg1", Chrom: "chr1", Pos: 900},
		annotation.Probe{Name: "cg2", Chrom: "chr1", Pos: 1800},
		annotation.Probe{Name: "cg3", Chrom: "chr2", Pos: 100},
	)
	out := ReduceClusters([]int{0, 1, 2, 3}, 4, 1000, tbl)
	expect.EQ(t, out, []int{0, 2, 3})
	expect.EQ(t, ReduceClusters(out, len(out), 1000, tbl), out)
}

func TestReduceMinDistanceZero(t *testing.T) {
	tbl := testTable(
		annotation.Probe{Name: "cg0", Chrom: "chr1", Pos: 100},
		annotation.Probe{Name: "cg1", Chrom: "chr1", Pos: 100},
	)
	// No separation requirement: even identical placements survive.
	expect.EQ(t, ReduceClusters([]int{0, 1}, 2, 0, tbl), []int{0, 1})
}
