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

package annotation

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/grailbio/base/compress"
	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
)

// Provider resolves the probe annotation table for a platform/genome
// pair. Implementations must return a table whose row order matches
// the row order of the beta matrices the caller will pass alongside it.
type Provider interface {
	Table(ctx context.Context, platform Platform, genome Genome) (*Table, error)
}

type tableKey struct {
	platform Platform
	genome   Genome
}

// DirProvider is a Provider backed by a directory of manifest TSVs
// named <platform>.<genome>.manifest.tsv, optionally gzipped. Loaded
// tables are cached for the lifetime of the provider. Thread safe.
type DirProvider struct {
	dir string

	mu    sync.Mutex
	cache map[tableKey]*Table
}

// NewDirProvider returns a DirProvider reading manifests from dir. The
// directory may be any path understood by grailbio/base/file, including
// S3 URLs.
func NewDirProvider(dir string) *DirProvider {
	return &DirProvider{
		dir:   dir,
		cache: map[tableKey]*Table{},
	}
}

// Table implements Provider.
func (p *DirProvider) Table(ctx context.Context, platform Platform, genome Genome) (*Table, error) {
	key := tableKey{platform, genome}
	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.cache[key]; ok {
		return t, nil
	}
	base := file.Join(p.dir, platform.String()+"."+genome.String()+".manifest.tsv")
	t, err := Load(ctx, base)
	if err != nil {
		var gzErr error
		if t, gzErr = Load(ctx, base+".gz"); gzErr != nil {
			return nil, errors.Wrapf(err, "no annotation for platform %s, genome %s under %s", platform, genome, p.dir)
		}
	}
	p.cache[key] = t
	return t, nil
}

// Alternative header spellings across manifest generations. hg19-era
// manifests use IlmnID/CHR/MAPINFO; hg38 liftover manifests use
// Probe_ID/CpG_chrm/CpG_beg.
var (
	nameCols  = []string{"Probe_ID", "IlmnID"}
	chromCols = []string{"CpG_chrm", "CHR"}
	posCols   = []string{"CpG_beg", "MAPINFO"}
)

func findColumn(header []string, names []string) int {
	for _, name := range names {
		for i, h := range header {
			if h == name {
				return i
			}
		}
	}
	return -1
}

// Load reads a probe manifest TSV from path. The file must carry a
// header row naming a probe ID column, a chromosome column, and a
// coordinate column in either the hg19 or the hg38 spelling. "NA" or
// empty placement cells load as unplaced probes.
func Load(ctx context.Context, path string) (t *Table, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer file.CloseAndReport(ctx, in, &err)
	var inr io.Reader = in.Reader(ctx)
	if u := compress.NewReaderPath(inr, in.Name()); u != nil {
		inr = u
	}
	scanner := bufio.NewScanner(inr)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrapf(err, "%s: reading header", path)
		}
		return nil, errors.Errorf("%s: empty manifest", path)
	}
	header := strings.Split(scanner.Text(), "\t")
	nameCol := findColumn(header, nameCols)
	chromCol := findColumn(header, chromCols)
	posCol := findColumn(header, posCols)
	if nameCol < 0 || chromCol < 0 || posCol < 0 {
		return nil, errors.Errorf("%s: header %v lacks a probe ID (%v), chromosome (%v), or coordinate (%v) column",
			path, header, nameCols, chromCols, posCols)
	}

	var probes []Probe
	nLine := 1
	for scanner.Scan() {
		nLine++
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) != len(header) {
			return nil, errors.Errorf("%s:%d: %d columns, header has %d", path, nLine, len(fields), len(header))
		}
		probe := Probe{Name: fields[nameCol], Pos: -1}
		if c := fields[chromCol]; c != "" && c != "NA" {
			probe.Chrom = c
		}
		if v := fields[posCol]; v != "" && v != "NA" {
			pos, err := strconv.Atoi(v)
			if err != nil {
				return nil, errors.Wrapf(err, "%s:%d: bad coordinate %q", path, nLine, v)
			}
			probe.Pos = pos
		}
		probes = append(probes, probe)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "%s: read", path)
	}
	return NewTable(probes), nil
}
