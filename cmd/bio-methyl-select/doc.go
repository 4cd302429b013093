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

/*
bio-methyl-select picks a small, spatially diverse panel of informative
CpG sites from a methylation beta-value matrix and a per-probe AUC
score file, for downstream tumor purity estimation.

Example:

	bio-methyl-select -beta betas.tsv -auc auc.tsv \
	    -annotation-dir /path/to/manifests -platform 450K -genome hg19 \
	    -out purity_panel

The run writes purity_panel.hyper.tsv and purity_panel.hypo.tsv, each
listing the retained probes in ranked order.
*/
package main
