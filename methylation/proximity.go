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
	"github.com/grailbio/methyl/annotation"
)

// tooClose reports whether the candidate probe lies within minDistance
// bases of any probe in accepted on the same chromosome. The first
// candidate is never too close. A probe without a known placement never
// blocks: a missing coordinate or chromosome on either side of a
// pairwise comparison resolves that comparison to "not too close".
func tooClose(candidate int, accepted []int, minDistance int, probes *annotation.Table) bool {
	cPos, ok := probes.Pos(candidate)
	if !ok {
		return false
	}
	cChrom := probes.Chrom(candidate)
	if cChrom == "" {
		return false
	}
	// cChrom is non-empty here, so accepted probes with an unknown
	// chromosome never compare equal and are skipped below.
	for _, a := range accepted {
		if probes.Chrom(a) != cChrom {
			continue
		}
		aPos, ok := probes.Pos(a)
		if !ok {
			continue
		}
		if abs(cPos-aPos) < minDistance {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
