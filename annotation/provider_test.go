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
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hg38Manifest = `CpG_chrm	CpG_beg	CpG_end	Probe_ID
chr13	53139172	53139174	cg00035864
chr6	30697762	30697764	cg00061679
NA	NA	NA	cg00050873
`

const hg19Manifest = `IlmnID	CHR	MAPINFO	Strand
cg00035864	chr13	53713306	F
cg00061679	chr6	30665622	F
`

func writeManifest(t *testing.T, dir, name, data string) {
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, name), []byte(data), 0644))
}

func TestLoadHg38Schema(t *testing.T) {
	dir, err := ioutil.TempDir("", "annotation")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	writeManifest(t, dir, "m.tsv", hg38Manifest)

	tbl, err := Load(context.Background(), filepath.Join(dir, "m.tsv"))
	require.NoError(t, err)
	require.Equal(t, 3, tbl.NRows())
	assert.Equal(t, "cg00035864", tbl.Name(0))
	assert.Equal(t, "chr13", tbl.Chrom(0))
	pos, ok := tbl.Pos(0)
	assert.True(t, ok)
	assert.Equal(t, 53139172, pos)

	// Unplaced probe loads, but exposes no placement.
	assert.Equal(t, "", tbl.Chrom(2))
	_, ok = tbl.Pos(2)
	assert.False(t, ok)
}

func TestLoadHg19Schema(t *testing.T) {
	dir, err := ioutil.TempDir("", "annotation")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	writeManifest(t, dir, "m.tsv", hg19Manifest)

	tbl, err := Load(context.Background(), filepath.Join(dir, "m.tsv"))
	require.NoError(t, err)
	require.Equal(t, 2, tbl.NRows())
	assert.Equal(t, "cg00061679", tbl.Name(1))
	assert.Equal(t, "chr6", tbl.Chrom(1))
	pos, ok := tbl.Pos(1)
	assert.True(t, ok)
	assert.Equal(t, 30665622, pos)
}

func TestLoadErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "annotation")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	ctx := context.Background()

	writeManifest(t, dir, "noheader.tsv", "a\tb\tc\nx\ty\tz\n")
	_, err = Load(ctx, filepath.Join(dir, "noheader.tsv"))
	assert.Error(t, err)

	writeManifest(t, dir, "ragged.tsv", "IlmnID\tCHR\tMAPINFO\ncg0\tchr1\n")
	_, err = Load(ctx, filepath.Join(dir, "ragged.tsv"))
	assert.Error(t, err)

	writeManifest(t, dir, "badpos.tsv", "IlmnID\tCHR\tMAPINFO\ncg0\tchr1\tnotanumber\n")
	_, err = Load(ctx, filepath.Join(dir, "badpos.tsv"))
	assert.Error(t, err)
}

func TestDirProvider(t *testing.T) {
	dir, err := ioutil.TempDir("", "annotation")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	writeManifest(t, dir, "450K.hg38.manifest.tsv", hg38Manifest)
	ctx := context.Background()

	p := NewDirProvider(dir)
	tbl, err := p.Table(ctx, HM450, HG38)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.NRows())

	// Second resolution hits the cache and returns the same table.
	again, err := p.Table(ctx, HM450, HG38)
	require.NoError(t, err)
	assert.True(t, tbl == again)

	_, err = p.Table(ctx, EPIC, HG38)
	assert.Error(t, err)
}
