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

// Package annotation maps Illumina methylation array probes to their
// genomic placement: for each probe on a supported platform, the
// chromosome and base-pair coordinate under a supported genome build.
//
// Source manifests spell the placement columns differently depending on
// the genome build (MAPINFO for hg19-era manifests, CpG_beg for hg38
// liftover manifests); the loader normalizes both into one canonical
// schema so that consumers never branch on column presence.
package annotation

import (
	"github.com/pkg/errors"
)

// Platform identifies an Illumina methylation array.
type Platform int

const (
	// HM450 is the Illumina HumanMethylation450 array (~450k probes).
	HM450 Platform = iota
	// EPIC is the Illumina MethylationEPIC array (~850k probes).
	EPIC
)

// String returns the canonical platform name used in flags and
// manifest file names.
func (p Platform) String() string {
	switch p {
	case HM450:
		return "450K"
	case EPIC:
		return "EPIC"
	}
	return "unknown"
}

// ParsePlatform parses a platform name. It accepts the canonical names
// as well as the "HM450"/"HM850" spellings found in older manifests.
func ParsePlatform(s string) (Platform, error) {
	switch s {
	case "450K", "450k", "HM450":
		return HM450, nil
	case "EPIC", "850K", "850k", "HM850":
		return EPIC, nil
	}
	return 0, errors.Errorf("unknown platform %q; supported platforms are 450K and EPIC", s)
}

// Genome identifies a reference genome build.
type Genome int

const (
	// HG19 is the GRCh37/hg19 build.
	HG19 Genome = iota
	// HG38 is the GRCh38/hg38 build.
	HG38
)

// String returns the canonical genome build name.
func (g Genome) String() string {
	switch g {
	case HG19:
		return "hg19"
	case HG38:
		return "hg38"
	}
	return "unknown"
}

// ParseGenome parses a genome build name.
func ParseGenome(s string) (Genome, error) {
	switch s {
	case "hg19", "GRCh37":
		return HG19, nil
	case "hg38", "GRCh38":
		return HG38, nil
	}
	return 0, errors.Errorf("unknown genome build %q; supported builds are hg19 and hg38", s)
}

// Probe records the genomic placement of one array probe.
type Probe struct {
	// Name is the Illumina probe ID, e.g. "cg00035864".
	Name string
	// Chrom is the chromosome label, e.g. "chr13". Empty when the probe
	// is unplaced in this build.
	Chrom string
	// Pos is the base-pair coordinate. Negative when the probe is
	// unplaced in this build.
	Pos int
}

// Table is an immutable probe annotation table. Row i of a beta matrix
// and score vector corresponds to probe i of the table; keeping that
// alignment is the caller's responsibility.
type Table struct {
	probes []Probe
}

// NewTable wraps probes, without copying, into a Table.
func NewTable(probes []Probe) *Table {
	return &Table{probes: probes}
}

// NRows returns the number of probes in the table.
func (t *Table) NRows() int { return len(t.probes) }

// Name returns the probe ID of probe i.
func (t *Table) Name(i int) string { return t.probes[i].Name }

// Chrom returns the chromosome label of probe i, or "" if the probe is
// unplaced.
func (t *Table) Chrom(i int) string { return t.probes[i].Chrom }

// Pos returns the base-pair coordinate of probe i. ok is false when the
// probe has no placement in this build.
func (t *Table) Pos(i int) (pos int, ok bool) {
	p := t.probes[i].Pos
	if p < 0 {
		return 0, false
	}
	return p, true
}
