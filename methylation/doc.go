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

// Package methylation selects small, spatially diverse panels of
// informative CpG sites from Illumina methylation array data. The
// selected sites are intended as input to downstream tumor purity
// estimation.
//
// Selection is a two-stage pass over a beta-value matrix (rows are
// probes, columns are samples) and a per-probe AUC score vector:
//
//  1. Threshold filtering splits probes into a hyper-methylated and a
//     hypo-methylated candidate pool based on the per-probe beta spread
//     across samples and on the AUC, then ranks each pool by AUC.
//  2. Greedy cluster reduction walks each ranked pool and keeps a probe
//     only if it lies at least a minimum genomic distance away from
//     every probe already kept on the same chromosome, stopping once
//     half the requested panel size has been kept.
//
// The reduction is first-fit greedy and deliberately so: its exact
// output, including its non-optimality, is part of the contract relied
// on by downstream consumers.
//
// The whole computation is a pure function of its inputs; probe
// placements come from an injected annotation.Provider.
package methylation
