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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/methyl/annotation"
	"github.com/grailbio/methyl/methylation"
)

var (
	betaPath      = flag.String("beta", "", "Input beta matrix TSV; rows are probes, columns are samples, NA cells are missing. Required")
	aucPath       = flag.String("auc", "", "Input per-probe AUC TSV with probe_id and auc columns. Required")
	annotationDir = flag.String("annotation-dir", "", "Directory holding <platform>.<genome>.manifest.tsv probe annotations. Required")
	platformFlag  = flag.String("platform", methylation.DefaultOpts.Platform.String(), "Array platform; '450K' or 'EPIC'")
	genomeFlag    = flag.String("genome", methylation.DefaultOpts.Genome.String(), "Genome build; 'hg19' or 'hg38'")
	maxSites      = flag.Int("max-sites", methylation.DefaultOpts.MaxSites, "Total panel size; must be even, split equally between hyper- and hypo-methylated sites")
	minDistance   = flag.Float64("min-distance", methylation.DefaultOpts.MinDistance, "Minimum base-pair distance between any two retained sites on one chromosome")
	hyperRange    = flag.String("hyper-range", "0.40,0.90", "Beta spread gate for hyper-methylated candidates, as 'low,high'")
	hypoRange     = flag.String("hypo-range", "0.10,0.60", "Beta spread gate for hypo-methylated candidates, as 'low,high'")
	outPrefix     = flag.String("out", "bio-methyl-select", "Output path prefix")
)

func methylSelectUsage() {
	fmt.Printf("Usage: %s -beta betas.tsv -auc auc.tsv -annotation-dir dir [OPTIONS]\n", os.Args[0])
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = methylSelectUsage
	shutdown := grail.Init()
	defer shutdown()

	if *betaPath == "" || *aucPath == "" {
		log.Fatalf("both -beta and -auc are required")
	}
	if *annotationDir == "" {
		log.Fatalf("-annotation-dir is required")
	}
	platform, err := annotation.ParsePlatform(*platformFlag)
	if err != nil {
		log.Fatalf("-platform: %v", err)
	}
	genome, err := annotation.ParseGenome(*genomeFlag)
	if err != nil {
		log.Fatalf("-genome: %v", err)
	}
	hyper, err := parseRange(*hyperRange)
	if err != nil {
		log.Fatalf("-hyper-range: %v", err)
	}
	hypo, err := parseRange(*hypoRange)
	if err != nil {
		log.Fatalf("-hypo-range: %v", err)
	}

	ctx := vcontext.Background()
	matrix, probeNames, err := readBetaMatrix(ctx, *betaPath)
	if err != nil {
		log.Fatalf("read %s: %v", *betaPath, err)
	}
	scoreNames, scores, err := readScores(ctx, *aucPath)
	if err != nil {
		log.Fatalf("read %s: %v", *aucPath, err)
	}
	if len(probeNames) == len(scoreNames) {
		for i := range probeNames {
			if probeNames[i] != scoreNames[i] {
				log.Fatalf("probe order disagrees between %s and %s at row %d: %q vs %q",
					*betaPath, *aucPath, i, probeNames[i], scoreNames[i])
			}
		}
	}

	opts := methylation.Opts{
		MaxSites:    *maxSites,
		MinDistance: *minDistance,
		HyperRange:  hyper,
		HypoRange:   hypo,
		Platform:    platform,
		Genome:      genome,
	}
	provider := annotation.NewDirProvider(*annotationDir)
	sel, err := methylation.SelectInformativeSites(ctx, matrix, scores, opts, provider)
	if err != nil {
		log.Fatalf("selection failed: %v", err)
	}

	// Cached in the provider; resolved again only to annotate the output.
	probes, err := provider.Table(ctx, platform, genome)
	if err != nil {
		log.Fatalf("annotation: %v", err)
	}
	if err := writeSelection(ctx, *outPrefix+".hyper.tsv", sel.Hyper, scores, probes); err != nil {
		log.Fatalf("write hyper output: %v", err)
	}
	if err := writeSelection(ctx, *outPrefix+".hypo.tsv", sel.Hypo, scores, probes); err != nil {
		log.Fatalf("write hypo output: %v", err)
	}
	log.Printf("wrote %s.{hyper,hypo}.tsv", *outPrefix)
}
