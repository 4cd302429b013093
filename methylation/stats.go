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

import "fmt"

// Stats summarizes one informative-site selection run.
type Stats struct {
	// Sites and Samples are the input matrix dimensions.
	Sites   int
	Samples int
	// AllMissingSites is the number of probes excluded from both pools
	// because every sample measurement was missing.
	AllMissingSites int
	// RawHyper and RawHypo count probes passing the threshold filters
	// before cluster reduction.
	RawHyper int
	RawHypo  int
	// Hyper and Hypo count probes retained after cluster reduction.
	Hyper int
	Hypo  int
}

func (s Stats) String() string {
	return fmt.Sprintf("%d sites x %d samples, %d all-missing; hyper %d -> %d, hypo %d -> %d",
		s.Sites, s.Samples, s.AllMissingSites, s.RawHyper, s.Hyper, s.RawHypo, s.Hypo)
}
