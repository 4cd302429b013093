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
	"github.com/grailbio/base/log"
	"github.com/grailbio/methyl/annotation"
)

// ReduceClusters walks candidates in priority order and greedily keeps
// probes, skipping any probe that lies within minDistance bases of a
// previously kept probe on the same chromosome. It stops once
// targetCount probes have been kept or the candidates are exhausted,
// whichever comes first, so the result may be shorter than targetCount.
//
// The result is a subsequence of candidates. The walk is first-fit
// greedy with no look-ahead and no optimality guarantee: a different
// candidate order can retain a different number of probes. Re-running
// ReduceClusters on its own output returns it unchanged.
func ReduceClusters(candidates []int, targetCount, minDistance int, probes *annotation.Table) []int {
	if targetCount <= 0 || len(candidates) == 0 {
		return nil
	}
	accepted := make([]int, 0, targetCount)
	for _, c := range candidates {
		if tooClose(c, accepted, minDistance, probes) {
			continue
		}
		accepted = append(accepted, c)
		if len(accepted) == targetCount {
			break
		}
	}
	log.Printf("cluster reduction: kept %d of %d candidate sites (min distance %dbp)",
		len(accepted), len(candidates), minDistance)
	return accepted
}
